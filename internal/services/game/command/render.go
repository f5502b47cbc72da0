package command

import (
	"fmt"
	"strings"

	"golang.org/x/text/message"

	"github.com/louisbranch/chronicles.mud/internal/services/game/domain/systems/cofd"
	"github.com/louisbranch/chronicles.mud/internal/services/game/health"
	"github.com/louisbranch/chronicles.mud/internal/services/game/i18n"
)

// GlyphStyle selects how boxes are drawn.
type GlyphStyle string

const (
	GlyphsASCII   GlyphStyle = "ascii"
	GlyphsUnicode GlyphStyle = "unicode"
)

var glyphs = map[GlyphStyle]map[cofd.BoxMarker]string{
	GlyphsASCII: {
		cofd.MarkerEmpty:      "[ ]",
		cofd.MarkerBashing:    "[/]",
		cofd.MarkerLethal:     "[X]",
		cofd.MarkerAggravated: "[*]",
	},
	GlyphsUnicode: {
		cofd.MarkerEmpty:      "☐",
		cofd.MarkerBashing:    "⧄",
		cofd.MarkerLethal:     "☒",
		cofd.MarkerAggravated: "✱",
	},
}

// ParseGlyphStyle resolves a style name.
func ParseGlyphStyle(name string) (GlyphStyle, error) {
	style := GlyphStyle(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := glyphs[style]; !ok {
		return "", fmt.Errorf("unknown glyph style %q", name)
	}
	return style, nil
}

// Boxes draws the marker row in style. Unicode glyphs are space separated.
func Boxes(markers []cofd.BoxMarker, style GlyphStyle) string {
	table, ok := glyphs[style]
	if !ok {
		table = glyphs[GlyphsASCII]
	}
	separator := ""
	if style == GlyphsUnicode {
		separator = " "
	}
	parts := make([]string, 0, len(markers))
	for _, marker := range markers {
		parts = append(parts, table[marker])
	}
	return strings.Join(parts, separator)
}

// RenderStatus draws the header, the box row, the wound penalty and, when it
// applies, the incapacitated notice.
func RenderStatus(p *message.Printer, status health.Status, style GlyphStyle) string {
	lines := []string{
		p.Sprintf(i18n.StatusHeaderKey, status.Name, status.TotalDamage, status.MaxHealth),
		Boxes(status.Markers, style),
		p.Sprintf(i18n.StatusPenaltyKey, status.WoundPenalty),
	}
	if status.Incapacitated {
		lines = append(lines, p.Sprintf(i18n.StatusIncapacitatedKey, status.Name))
	}
	return strings.Join(lines, "\n")
}

func renderDamage(p *message.Printer, result health.Result, damageKind cofd.DamageKind) string {
	name := result.Status.Name
	kind := i18n.KindLabel(p, damageKind)
	switch {
	case result.Applied == 0:
		return p.Sprintf(i18n.DamageNoneKey, name, kind)
	case result.Applied < result.Requested:
		return p.Sprintf(i18n.DamagePartialKey, name, result.Applied, result.Requested, kind)
	default:
		return p.Sprintf(i18n.DamageAppliedKey, name, result.Applied, kind)
	}
}

func renderHeal(p *message.Printer, result health.Result, damageKind cofd.DamageKind) string {
	name := result.Status.Name
	kind := i18n.KindLabel(p, damageKind)
	switch {
	case result.Healed == 0:
		return p.Sprintf(i18n.HealNoneKey, name, kind)
	case result.Healed < result.Requested:
		return p.Sprintf(i18n.HealPartialKey, name, result.Healed, result.Requested, kind)
	default:
		return p.Sprintf(i18n.HealAppliedKey, name, result.Healed, kind)
	}
}
