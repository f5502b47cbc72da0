package i18n

// Catalog keys. Positional arguments are documented per key.
const (
	KindBashingKey    = "health.kind.bashing"
	KindLethalKey     = "health.kind.lethal"
	KindAggravatedKey = "health.kind.aggravated"

	// name, total, max
	StatusHeaderKey = "health.status.header"
	// penalty
	StatusPenaltyKey = "health.status.penalty"
	// name
	StatusIncapacitatedKey = "health.status.incapacitated"

	// name, applied, kind
	DamageAppliedKey = "health.damage.applied"
	// name, applied, requested, kind
	DamagePartialKey = "health.damage.partial"
	// name, kind
	DamageNoneKey = "health.damage.none"

	// name, healed, kind
	HealAppliedKey = "health.heal.applied"
	// name, healed, requested, kind
	HealPartialKey = "health.heal.partial"
	// name, kind
	HealNoneKey = "health.heal.none"

	// name, position, kind
	SetBoxKey = "health.set.box"
	// name, position
	SetClearedKey = "health.set.cleared"
	// name
	ClearDoneKey = "health.clear.done"
	// name, max
	ResizeDoneKey = "health.max.done"
	// name, id
	CreatedKey = "health.character.created"

	ErrorUnknownKey                  = "error.unknown"
	ErrorCharacterEmptyIDKey         = "error.character.empty_id"
	ErrorCharacterEmptyNameKey       = "error.character.empty_name"
	ErrorHealthInvalidAmountKey      = "error.health.invalid_amount"
	ErrorHealthInvalidKindKey        = "error.health.invalid_kind"
	ErrorHealthInvalidMaxKey         = "error.health.invalid_max"
	ErrorHealthPositionOutOfRangeKey = "error.health.position_out_of_range"
	ErrorCommandUnknownKey           = "error.command.unknown"
	ErrorCommandInvalidSwitchKey     = "error.command.invalid_switch"
	ErrorCommandInvalidSyntaxKey     = "error.command.invalid_syntax"
	ErrorCallerMissingKey            = "error.auth.caller_missing"
	ErrorStaffTokenInvalidKey        = "error.auth.staff_token_invalid"
	ErrorStaffTokenExpiredKey        = "error.auth.staff_token_expired"
	ErrorPermissionDeniedKey         = "error.auth.permission_denied"
	ErrorNotFoundKey                 = "error.not_found"
)
