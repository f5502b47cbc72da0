package authz

import (
	"context"

	apperrors "github.com/louisbranch/chronicles.mud/internal/platform/errors"
)

// Action names what a caller wants to do to a character's health.
type Action int

const (
	// ActionView reads the track.
	ActionView Action = iota
	// ActionModify applies damage or heals.
	ActionModify
	// ActionOverride sets boxes directly, clears the track or resizes it.
	ActionOverride
)

// Policy answers permission questions for health operations.
type Policy struct{}

// CanView reports whether caller may see targetID's track.
func (Policy) CanView(caller Caller, targetID string) bool {
	return caller.Staff || isSelf(caller, targetID)
}

// CanModify reports whether caller may damage or heal targetID.
func (Policy) CanModify(caller Caller, targetID string) bool {
	return caller.Staff || isSelf(caller, targetID)
}

// CanOverride reports whether caller may issue direct overrides.
func (Policy) CanOverride(caller Caller) bool {
	return caller.Staff
}

// Allows reports whether caller may perform action on targetID.
func (p Policy) Allows(caller Caller, action Action, targetID string) bool {
	switch action {
	case ActionView:
		return p.CanView(caller, targetID)
	case ActionModify:
		return p.CanModify(caller, targetID)
	case ActionOverride:
		return p.CanOverride(caller)
	default:
		return false
	}
}

// Authorize checks the caller carried by ctx against action on targetID.
func (p Policy) Authorize(ctx context.Context, action Action, targetID string) error {
	caller, ok := CallerFromContext(ctx)
	if !ok || (caller.ID == "" && !caller.Staff) {
		return apperrors.New(apperrors.CodeCallerMissing, "caller identity is required")
	}
	if !p.Allows(caller, action, targetID) {
		return apperrors.WithMetadata(apperrors.CodePermissionDenied, "permission denied", map[string]string{
			"CallerID":    caller.ID,
			"CharacterID": targetID,
		})
	}
	return nil
}

func isSelf(caller Caller, targetID string) bool {
	return caller.ID != "" && caller.ID == targetID
}
