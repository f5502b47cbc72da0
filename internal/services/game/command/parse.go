package command

import (
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/chronicles.mud/internal/platform/errors"
	"github.com/louisbranch/chronicles.mud/internal/services/game/domain/systems/cofd"
)

// Name is the command word.
const Name = "+health"

// Switch selects the +health operation.
type Switch string

const (
	SwitchView   Switch = ""
	SwitchDamage Switch = "damage"
	SwitchHeal   Switch = "heal"
	SwitchSet    Switch = "set"
	SwitchClear  Switch = "clear"
	SwitchMax    Switch = "max"
)

const clearLabel = "clear"

var usage = map[Switch]string{
	SwitchView:   "+health [<character>]",
	SwitchDamage: "+health/damage [<character>=]<amount> [bashing|lethal|aggravated]",
	SwitchHeal:   "+health/heal [<character>=]<amount> [bashing|lethal|aggravated]",
	SwitchSet:    "+health/set <character>/<position>=<bashing|lethal|aggravated|clear>",
	SwitchClear:  "+health/clear [<character>]",
	SwitchMax:    "+health/max <character>=<boxes>",
}

// Invocation is a parsed +health command line.
type Invocation struct {
	Switch Switch
	// Target is the named character, empty for the caller.
	Target string
	Amount int
	Kind   cofd.DamageKind
	// Position is the 1-based box for SwitchSet.
	Position int
	// SetKind is nil when SwitchSet clears the box.
	SetKind *cofd.DamageKind
	Max     int
}

// Usage returns the syntax line for sw.
func Usage(sw Switch) string {
	return usage[sw]
}

// Parse reads a +health command line.
func Parse(input string) (Invocation, error) {
	input = strings.TrimSpace(input)
	word, args, _ := strings.Cut(input, " ")
	args = strings.TrimSpace(args)

	command, switchName, hasSwitch := strings.Cut(word, "/")
	if !strings.EqualFold(command, Name) {
		return Invocation{}, apperrors.WithMetadata(apperrors.CodeCommandUnknown, "unknown command",
			map[string]string{"Command": command})
	}
	sw := Switch(strings.ToLower(strings.TrimSpace(switchName)))
	if _, ok := usage[sw]; !ok || (hasSwitch && sw == SwitchView) {
		return Invocation{}, apperrors.WithMetadata(apperrors.CodeCommandInvalidSwitch, "unknown switch",
			map[string]string{"Switch": switchName})
	}

	switch sw {
	case SwitchView, SwitchClear:
		return Invocation{Switch: sw, Target: args}, nil
	case SwitchDamage, SwitchHeal:
		return parseAmount(sw, args)
	case SwitchSet:
		return parseSet(args)
	default:
		return parseMax(args)
	}
}

func parseAmount(sw Switch, args string) (Invocation, error) {
	target, rhs := splitTarget(args)
	fields := strings.Fields(rhs)
	if len(fields) == 0 || len(fields) > 2 {
		return Invocation{}, syntaxError(sw)
	}
	amount, err := parsePositive(fields[0])
	if err != nil {
		return Invocation{}, apperrors.WithMetadata(apperrors.CodeHealthInvalidAmount, "amount must be a positive integer",
			map[string]string{"Amount": fields[0]})
	}
	kind := cofd.DamageBashing
	if len(fields) == 2 {
		kind = cofd.DamageKindOrBashing(fields[1])
	}
	return Invocation{Switch: sw, Target: target, Amount: amount, Kind: kind}, nil
}

func parseSet(args string) (Invocation, error) {
	lhs, rhs, ok := strings.Cut(args, "=")
	if !ok {
		return Invocation{}, syntaxError(SwitchSet)
	}
	slash := strings.LastIndex(lhs, "/")
	if slash < 0 {
		return Invocation{}, syntaxError(SwitchSet)
	}
	target := strings.TrimSpace(lhs[:slash])
	positionText := strings.TrimSpace(lhs[slash+1:])
	label := strings.TrimSpace(rhs)
	if target == "" || positionText == "" || label == "" {
		return Invocation{}, syntaxError(SwitchSet)
	}
	position, err := strconv.Atoi(positionText)
	if err != nil {
		return Invocation{}, syntaxError(SwitchSet)
	}

	inv := Invocation{Switch: SwitchSet, Target: target, Position: position}
	if !strings.EqualFold(label, clearLabel) {
		kind := cofd.DamageKindOrBashing(label)
		inv.SetKind = &kind
	}
	return inv, nil
}

func parseMax(args string) (Invocation, error) {
	target, rhs, ok := strings.Cut(args, "=")
	target = strings.TrimSpace(target)
	rhs = strings.TrimSpace(rhs)
	if !ok || target == "" || rhs == "" {
		return Invocation{}, syntaxError(SwitchMax)
	}
	value, err := parsePositive(rhs)
	if err != nil {
		return Invocation{}, apperrors.WithMetadata(apperrors.CodeHealthInvalidMax, "max health must be a positive integer",
			map[string]string{"Max": rhs})
	}
	return Invocation{Switch: SwitchMax, Target: target, Max: value}, nil
}

// splitTarget separates an optional "<target>=" prefix.
func splitTarget(args string) (string, string) {
	target, rhs, ok := strings.Cut(args, "=")
	if !ok {
		return "", args
	}
	return strings.TrimSpace(target), strings.TrimSpace(rhs)
}

func parsePositive(value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, strconv.ErrRange
	}
	return n, nil
}

func syntaxError(sw Switch) error {
	return apperrors.WithMetadata(apperrors.CodeCommandInvalidSyntax, "invalid syntax",
		map[string]string{"Usage": Usage(sw)})
}
