package character

import (
	"strings"
	"time"

	apperrors "github.com/louisbranch/chronicles.mud/internal/platform/errors"
	"github.com/louisbranch/chronicles.mud/internal/services/game/domain/systems/cofd"
)

// AdvantageHealth names the advantage holding the health track length.
const AdvantageHealth = "health"

// Character is the persisted character record.
type Character struct {
	ID           string
	Name         string
	Advantages   map[string]int
	HealthDamage map[int]string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks the identity fields required before a character is stored.
func (c Character) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return apperrors.New(apperrors.CodeCharacterEmptyID, "character id is required")
	}
	if strings.TrimSpace(c.Name) == "" {
		return apperrors.New(apperrors.CodeCharacterEmptyName, "character name is required")
	}
	return nil
}

// MaxHealth returns the health track length, defaulting when the advantage
// is unset or not positive.
func (c Character) MaxHealth() int {
	value, ok := c.Advantages[AdvantageHealth]
	if !ok || value < 1 {
		return cofd.HealthMaxDefault
	}
	return value
}

// HealthTrack decodes the stored damage into a dense track.
func (c Character) HealthTrack() cofd.HealthTrack {
	return cofd.LoadTrack(c.MaxHealth(), DecodeDamage(c.HealthDamage))
}

// WithHealthTrack returns a copy whose damage map is replaced by the track's.
func (c Character) WithHealthTrack(track cofd.HealthTrack) Character {
	c.HealthDamage = EncodeDamage(track.DamageMap())
	return c
}

// Clone returns a deep copy of the character.
func (c Character) Clone() Character {
	if c.Advantages != nil {
		advantages := make(map[string]int, len(c.Advantages))
		for name, value := range c.Advantages {
			advantages[name] = value
		}
		c.Advantages = advantages
	}
	if c.HealthDamage != nil {
		damage := make(map[int]string, len(c.HealthDamage))
		for position, label := range c.HealthDamage {
			damage[position] = label
		}
		c.HealthDamage = damage
	}
	return c
}

// DecodeDamage converts stored labels into engine kinds. Labels that are not
// a known damage kind are skipped.
func DecodeDamage(stored map[int]string) cofd.DamageMap {
	damage := make(cofd.DamageMap, len(stored))
	for position, label := range stored {
		kind, ok := cofd.ParseDamageKind(label)
		if !ok {
			continue
		}
		damage[position] = kind
	}
	return damage
}

// EncodeDamage converts engine kinds into storage labels.
func EncodeDamage(damage cofd.DamageMap) map[int]string {
	stored := make(map[int]string, len(damage))
	for position, kind := range damage {
		if !kind.Valid() {
			continue
		}
		stored[position] = kind.String()
	}
	return stored
}
