package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, KindBashingKey, "bashing")
	message.SetString(lang, KindLethalKey, "lethal")
	message.SetString(lang, KindAggravatedKey, "aggravated")

	message.SetString(lang, StatusHeaderKey, "%[1]s's health (%[2]d/%[3]d damage)")
	message.SetString(lang, StatusPenaltyKey, "Wound penalty: %[1]d")
	message.SetString(lang, StatusIncapacitatedKey, "%[1]s is incapacitated.")

	message.SetString(lang, DamageAppliedKey, "%[1]s takes %[2]d %[3]s damage.")
	message.SetString(lang, DamagePartialKey, "%[1]s takes %[2]d of %[3]d %[4]s damage; the rest does not fit.")
	message.SetString(lang, DamageNoneKey, "No room on %[1]s's track for %[2]s damage.")

	message.SetString(lang, HealAppliedKey, "%[1]s heals %[2]d %[3]s damage.")
	message.SetString(lang, HealPartialKey, "%[1]s heals %[2]d of %[3]d %[4]s damage.")
	message.SetString(lang, HealNoneKey, "%[1]s has no %[2]s damage to heal.")

	message.SetString(lang, SetBoxKey, "%[1]s's box %[2]d is now %[3]s.")
	message.SetString(lang, SetClearedKey, "%[1]s's box %[2]d is cleared.")
	message.SetString(lang, ClearDoneKey, "%[1]s's health track is cleared.")
	message.SetString(lang, ResizeDoneKey, "%[1]s's health track now has %[2]d boxes.")
	message.SetString(lang, CreatedKey, "Created %[1]s (%[2]s).")

	message.SetString(lang, ErrorUnknownKey, "Something went wrong.")
	message.SetString(lang, ErrorCharacterEmptyIDKey, "A character is required.")
	message.SetString(lang, ErrorCharacterEmptyNameKey, "A character name is required.")
	message.SetString(lang, ErrorHealthInvalidAmountKey, "Amount must be a positive whole number, got %[1]q.")
	message.SetString(lang, ErrorHealthInvalidKindKey, "Damage must be bashing, lethal or aggravated.")
	message.SetString(lang, ErrorHealthInvalidMaxKey, "Health must be at least 1, got %[1]q.")
	message.SetString(lang, ErrorHealthPositionOutOfRangeKey, "Box %[1]s is outside the track (1-%[2]s).")
	message.SetString(lang, ErrorCommandUnknownKey, "Unknown command %[1]q.")
	message.SetString(lang, ErrorCommandInvalidSwitchKey, "Unknown switch /%[1]s.")
	message.SetString(lang, ErrorCommandInvalidSyntaxKey, "Usage: %[1]s")
	message.SetString(lang, ErrorCallerMissingKey, "Tell the game who you are first.")
	message.SetString(lang, ErrorStaffTokenInvalidKey, "Your staff token was not accepted.")
	message.SetString(lang, ErrorStaffTokenExpiredKey, "Your staff token has expired.")
	message.SetString(lang, ErrorPermissionDeniedKey, "Permission denied.")
	message.SetString(lang, ErrorNotFoundKey, "No such character.")
}
