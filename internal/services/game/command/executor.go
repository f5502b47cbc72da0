package command

import (
	"context"
	"strings"

	"golang.org/x/text/language"

	"github.com/louisbranch/chronicles.mud/internal/services/game/authz"
	"github.com/louisbranch/chronicles.mud/internal/services/game/health"
	"github.com/louisbranch/chronicles.mud/internal/services/game/i18n"
)

// selfAlias names the caller's own character.
const selfAlias = "me"

// Executor runs parsed +health commands against the health service.
type Executor struct {
	service *health.Service
	style   GlyphStyle
}

// NewExecutor returns an executor drawing boxes in style.
func NewExecutor(service *health.Service, style GlyphStyle) *Executor {
	if _, ok := glyphs[style]; !ok {
		style = GlyphsASCII
	}
	return &Executor{service: service, style: style}
}

// Reply is the text shown to the caller.
type Reply struct {
	Text        string
	CharacterID string
}

// Execute parses input and runs it for the caller carried by ctx. Errors are
// domain errors; callers localize them with i18n.ErrorMessage.
func (e *Executor) Execute(ctx context.Context, input string, tag language.Tag) (Reply, error) {
	inv, err := Parse(input)
	if err != nil {
		return Reply{}, err
	}
	caller, _ := authz.CallerFromContext(ctx)
	target := resolveTarget(inv.Target, caller)
	p := i18n.Printer(tag)

	switch inv.Switch {
	case SwitchView:
		status, err := e.service.Status(ctx, target)
		if err != nil {
			return Reply{}, err
		}
		return e.reply(target, RenderStatus(p, status, e.style)), nil

	case SwitchDamage:
		result, err := e.service.ApplyDamage(ctx, target, inv.Amount, inv.Kind)
		if err != nil {
			return Reply{}, err
		}
		return e.reply(target, renderDamage(p, result, inv.Kind), RenderStatus(p, result.Status, e.style)), nil

	case SwitchHeal:
		result, err := e.service.HealDamage(ctx, target, inv.Amount, inv.Kind)
		if err != nil {
			return Reply{}, err
		}
		return e.reply(target, renderHeal(p, result, inv.Kind), RenderStatus(p, result.Status, e.style)), nil

	case SwitchSet:
		status, err := e.service.SetBox(ctx, target, inv.Position, inv.SetKind)
		if err != nil {
			return Reply{}, err
		}
		line := p.Sprintf(i18n.SetClearedKey, status.Name, inv.Position)
		if inv.SetKind != nil {
			line = p.Sprintf(i18n.SetBoxKey, status.Name, inv.Position, i18n.KindLabel(p, *inv.SetKind))
		}
		return e.reply(target, line, RenderStatus(p, status, e.style)), nil

	case SwitchClear:
		status, err := e.service.ClearAll(ctx, target)
		if err != nil {
			return Reply{}, err
		}
		return e.reply(target, p.Sprintf(i18n.ClearDoneKey, status.Name), RenderStatus(p, status, e.style)), nil

	default:
		status, err := e.service.Resize(ctx, target, inv.Max)
		if err != nil {
			return Reply{}, err
		}
		return e.reply(target, p.Sprintf(i18n.ResizeDoneKey, status.Name, status.MaxHealth), RenderStatus(p, status, e.style)), nil
	}
}

func (e *Executor) reply(characterID string, lines ...string) Reply {
	return Reply{Text: strings.Join(lines, "\n"), CharacterID: characterID}
}

func resolveTarget(target string, caller authz.Caller) string {
	target = strings.TrimSpace(target)
	if target == "" || strings.EqualFold(target, selfAlias) {
		return caller.ID
	}
	return target
}
