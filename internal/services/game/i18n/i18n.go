// Package i18n holds localized copy for health commands and errors.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	apperrors "github.com/louisbranch/chronicles.mud/internal/platform/errors"
	"github.com/louisbranch/chronicles.mud/internal/services/game/domain/systems/cofd"
)

var supportedTags = []language.Tag{
	language.English,
	language.MustParse("pt-BR"),
}

var tagMatcher = language.NewMatcher(supportedTags)

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.English
}

// ResolveTag maps a locale string onto the closest supported tag.
func ResolveTag(locale string) language.Tag {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return Default()
	}
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return Default()
	}
	_, index, confidence := tagMatcher.Match(tag)
	if confidence == language.No {
		return Default()
	}
	return supportedTags[index]
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// KindLabel returns the localized name of a damage kind.
func KindLabel(p *message.Printer, kind cofd.DamageKind) string {
	switch kind {
	case cofd.DamageBashing:
		return p.Sprintf(KindBashingKey)
	case cofd.DamageLethal:
		return p.Sprintf(KindLethalKey)
	case cofd.DamageAggravated:
		return p.Sprintf(KindAggravatedKey)
	default:
		return kind.String()
	}
}

// errorMessage lists the catalog key and the metadata fields, in argument
// order, for each code with user-facing copy.
var errorMessages = map[apperrors.Code]struct {
	key    string
	fields []string
}{
	apperrors.CodeCharacterEmptyID:         {key: ErrorCharacterEmptyIDKey},
	apperrors.CodeCharacterEmptyName:       {key: ErrorCharacterEmptyNameKey},
	apperrors.CodeHealthInvalidAmount:      {key: ErrorHealthInvalidAmountKey, fields: []string{"Amount"}},
	apperrors.CodeHealthInvalidKind:        {key: ErrorHealthInvalidKindKey},
	apperrors.CodeHealthInvalidMax:         {key: ErrorHealthInvalidMaxKey, fields: []string{"Max"}},
	apperrors.CodeHealthPositionOutOfRange: {key: ErrorHealthPositionOutOfRangeKey, fields: []string{"Position", "Max"}},
	apperrors.CodeCommandUnknown:           {key: ErrorCommandUnknownKey, fields: []string{"Command"}},
	apperrors.CodeCommandInvalidSwitch:     {key: ErrorCommandInvalidSwitchKey, fields: []string{"Switch"}},
	apperrors.CodeCommandInvalidSyntax:     {key: ErrorCommandInvalidSyntaxKey, fields: []string{"Usage"}},
	apperrors.CodeCallerMissing:            {key: ErrorCallerMissingKey},
	apperrors.CodeStaffTokenInvalid:        {key: ErrorStaffTokenInvalidKey},
	apperrors.CodeStaffTokenExpired:        {key: ErrorStaffTokenExpiredKey},
	apperrors.CodePermissionDenied:         {key: ErrorPermissionDeniedKey},
	apperrors.CodeNotFound:                 {key: ErrorNotFoundKey},
}

// ErrorMessage renders the user-facing message for a domain error.
func ErrorMessage(p *message.Printer, err *apperrors.Error) string {
	if err == nil {
		return ""
	}
	entry, ok := errorMessages[err.Code]
	if !ok {
		return p.Sprintf(ErrorUnknownKey)
	}
	args := make([]any, 0, len(entry.fields))
	for _, field := range entry.fields {
		args = append(args, err.Metadata[field])
	}
	return p.Sprintf(entry.key, args...)
}
