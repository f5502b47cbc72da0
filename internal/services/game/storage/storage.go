package storage

import (
	"context"

	apperrors "github.com/louisbranch/chronicles.mud/internal/platform/errors"
	"github.com/louisbranch/chronicles.mud/internal/services/game/domain/character"
)

// ErrNotFound indicates a requested character record is missing.
var ErrNotFound = apperrors.New(apperrors.CodeNotFound, "record not found")

// CharacterStore persists character records.
type CharacterStore interface {
	// PutCharacter creates or replaces a character, including its advantages
	// and damage map.
	PutCharacter(ctx context.Context, c character.Character) error
	// GetCharacter returns the character or ErrNotFound.
	GetCharacter(ctx context.Context, id string) (character.Character, error)
	// PutHealthDamage replaces the character's full damage map.
	PutHealthDamage(ctx context.Context, id string, damage map[int]string) error
	// PutHealth writes the health advantage and the full damage map together.
	PutHealth(ctx context.Context, id string, maxHealth int, damage map[int]string) error
	// Close releases backend resources.
	Close() error
}
