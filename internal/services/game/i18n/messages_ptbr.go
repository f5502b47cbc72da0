package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.MustParse("pt-BR")

	message.SetString(lang, KindBashingKey, "contusivo")
	message.SetString(lang, KindLethalKey, "letal")
	message.SetString(lang, KindAggravatedKey, "agravado")

	message.SetString(lang, StatusHeaderKey, "Vitalidade de %[1]s (%[2]d/%[3]d de dano)")
	message.SetString(lang, StatusPenaltyKey, "Penalidade por ferimentos: %[1]d")
	message.SetString(lang, StatusIncapacitatedKey, "%[1]s está incapacitado.")

	message.SetString(lang, DamageAppliedKey, "%[1]s sofre %[2]d de dano %[3]s.")
	message.SetString(lang, DamagePartialKey, "%[1]s sofre %[2]d de %[3]d de dano %[4]s; o resto não cabe.")
	message.SetString(lang, DamageNoneKey, "Não há espaço na trilha de %[1]s para dano %[2]s.")

	message.SetString(lang, HealAppliedKey, "%[1]s cura %[2]d de dano %[3]s.")
	message.SetString(lang, HealPartialKey, "%[1]s cura %[2]d de %[3]d de dano %[4]s.")
	message.SetString(lang, HealNoneKey, "%[1]s não tem dano %[2]s para curar.")

	message.SetString(lang, SetBoxKey, "A caixa %[2]d de %[1]s agora é %[3]s.")
	message.SetString(lang, SetClearedKey, "A caixa %[2]d de %[1]s foi limpa.")
	message.SetString(lang, ClearDoneKey, "A trilha de vitalidade de %[1]s foi limpa.")
	message.SetString(lang, ResizeDoneKey, "A trilha de vitalidade de %[1]s agora tem %[2]d caixas.")
	message.SetString(lang, CreatedKey, "%[1]s criado (%[2]s).")

	message.SetString(lang, ErrorUnknownKey, "Algo deu errado.")
	message.SetString(lang, ErrorCharacterEmptyIDKey, "Um personagem é obrigatório.")
	message.SetString(lang, ErrorCharacterEmptyNameKey, "O nome do personagem é obrigatório.")
	message.SetString(lang, ErrorHealthInvalidAmountKey, "A quantidade deve ser um número inteiro positivo, recebido %[1]q.")
	message.SetString(lang, ErrorHealthInvalidKindKey, "O dano deve ser contusivo, letal ou agravado.")
	message.SetString(lang, ErrorHealthInvalidMaxKey, "A vitalidade deve ser pelo menos 1, recebido %[1]q.")
	message.SetString(lang, ErrorHealthPositionOutOfRangeKey, "A caixa %[1]s está fora da trilha (1-%[2]s).")
	message.SetString(lang, ErrorCommandUnknownKey, "Comando desconhecido %[1]q.")
	message.SetString(lang, ErrorCommandInvalidSwitchKey, "Opção desconhecida /%[1]s.")
	message.SetString(lang, ErrorCommandInvalidSyntaxKey, "Uso: %[1]s")
	message.SetString(lang, ErrorCallerMissingKey, "Identifique-se para o jogo primeiro.")
	message.SetString(lang, ErrorStaffTokenInvalidKey, "Seu token de staff não foi aceito.")
	message.SetString(lang, ErrorStaffTokenExpiredKey, "Seu token de staff expirou.")
	message.SetString(lang, ErrorPermissionDeniedKey, "Permissão negada.")
	message.SetString(lang, ErrorNotFoundKey, "Personagem não encontrado.")
}
