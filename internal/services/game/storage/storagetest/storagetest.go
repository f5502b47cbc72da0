// Package storagetest holds the behavior every CharacterStore backend must
// satisfy, shared by the backend test suites.
package storagetest

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/louisbranch/chronicles.mud/internal/services/game/domain/character"
	"github.com/louisbranch/chronicles.mud/internal/services/game/storage"
)

// Opener returns a fresh, empty store for one subtest.
type Opener func(t *testing.T) storage.CharacterStore

// RunCharacterStoreTests exercises the CharacterStore contract.
func RunCharacterStoreTests(t *testing.T, open Opener) {
	t.Helper()

	t.Run("put then get round trips", func(t *testing.T) {
		store := open(t)
		ctx := context.Background()
		created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		want := character.Character{
			ID:           "char-1",
			Name:         "Alice",
			Advantages:   map[string]int{character.AdvantageHealth: 8, "willpower": 3},
			HealthDamage: map[int]string{1: "aggravated", 2: "lethal", 5: "bashing"},
			CreatedAt:    created,
			UpdatedAt:    created,
		}
		if err := store.PutCharacter(ctx, want); err != nil {
			t.Fatalf("put character: %v", err)
		}
		got, err := store.GetCharacter(ctx, want.ID)
		if err != nil {
			t.Fatalf("get character: %v", err)
		}
		if got.ID != want.ID || got.Name != want.Name {
			t.Fatalf("identity = %s/%s, want %s/%s", got.ID, got.Name, want.ID, want.Name)
		}
		if !reflect.DeepEqual(got.Advantages, want.Advantages) {
			t.Fatalf("advantages = %v, want %v", got.Advantages, want.Advantages)
		}
		if !reflect.DeepEqual(got.HealthDamage, want.HealthDamage) {
			t.Fatalf("health damage = %v, want %v", got.HealthDamage, want.HealthDamage)
		}
		if !got.CreatedAt.Equal(created) {
			t.Fatalf("created at = %v, want %v", got.CreatedAt, created)
		}
	})

	t.Run("missing character", func(t *testing.T) {
		store := open(t)
		_, err := store.GetCharacter(context.Background(), "nobody")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("get missing = %v, want ErrNotFound", err)
		}
	})

	t.Run("put health damage replaces map", func(t *testing.T) {
		store := open(t)
		ctx := context.Background()
		putCharacter(t, store, character.Character{
			ID:           "char-1",
			Name:         "Alice",
			HealthDamage: map[int]string{1: "lethal", 2: "bashing", 3: "bashing"},
		})
		if err := store.PutHealthDamage(ctx, "char-1", map[int]string{1: "aggravated"}); err != nil {
			t.Fatalf("put health damage: %v", err)
		}
		got := getCharacter(t, store, "char-1")
		want := map[int]string{1: "aggravated"}
		if !reflect.DeepEqual(got.HealthDamage, want) {
			t.Fatalf("health damage = %v, want %v", got.HealthDamage, want)
		}
	})

	t.Run("put empty damage clears map", func(t *testing.T) {
		store := open(t)
		putCharacter(t, store, character.Character{
			ID:           "char-1",
			Name:         "Alice",
			HealthDamage: map[int]string{1: "lethal"},
		})
		if err := store.PutHealthDamage(context.Background(), "char-1", map[int]string{}); err != nil {
			t.Fatalf("put health damage: %v", err)
		}
		if got := getCharacter(t, store, "char-1"); len(got.HealthDamage) != 0 {
			t.Fatalf("health damage = %v, want empty", got.HealthDamage)
		}
	})

	t.Run("put health writes advantage and damage", func(t *testing.T) {
		store := open(t)
		putCharacter(t, store, character.Character{
			ID:           "char-1",
			Name:         "Alice",
			Advantages:   map[string]int{character.AdvantageHealth: 10, "willpower": 2},
			HealthDamage: map[int]string{1: "lethal", 8: "bashing"},
		})
		if err := store.PutHealth(context.Background(), "char-1", 6, map[int]string{1: "lethal"}); err != nil {
			t.Fatalf("put health: %v", err)
		}
		got := getCharacter(t, store, "char-1")
		if got.MaxHealth() != 6 {
			t.Fatalf("max health = %d, want 6", got.MaxHealth())
		}
		if got.Advantages["willpower"] != 2 {
			t.Fatalf("willpower = %d, want 2", got.Advantages["willpower"])
		}
		if !reflect.DeepEqual(got.HealthDamage, map[int]string{1: "lethal"}) {
			t.Fatalf("health damage = %v", got.HealthDamage)
		}
	})

	t.Run("writes to missing character", func(t *testing.T) {
		store := open(t)
		ctx := context.Background()
		if err := store.PutHealthDamage(ctx, "nobody", map[int]string{1: "lethal"}); !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("put health damage = %v, want ErrNotFound", err)
		}
		if err := store.PutHealth(ctx, "nobody", 5, nil); !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("put health = %v, want ErrNotFound", err)
		}
	})

	t.Run("put character replaces advantages", func(t *testing.T) {
		store := open(t)
		putCharacter(t, store, character.Character{
			ID:         "char-1",
			Name:       "Alice",
			Advantages: map[string]int{character.AdvantageHealth: 9, "willpower": 2},
		})
		putCharacter(t, store, character.Character{
			ID:         "char-1",
			Name:       "Alicia",
			Advantages: map[string]int{character.AdvantageHealth: 7},
		})
		got := getCharacter(t, store, "char-1")
		if got.Name != "Alicia" {
			t.Fatalf("name = %q, want Alicia", got.Name)
		}
		if !reflect.DeepEqual(got.Advantages, map[string]int{character.AdvantageHealth: 7}) {
			t.Fatalf("advantages = %v", got.Advantages)
		}
	})

	t.Run("invalid character rejected", func(t *testing.T) {
		store := open(t)
		if err := store.PutCharacter(context.Background(), character.Character{ID: "char-1"}); err == nil {
			t.Fatal("expected error for missing name")
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		store := open(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := store.GetCharacter(ctx, "char-1"); !errors.Is(err, context.Canceled) {
			t.Fatalf("get character = %v, want context.Canceled", err)
		}
	})
}

func putCharacter(t *testing.T, store storage.CharacterStore, c character.Character) {
	t.Helper()
	if err := store.PutCharacter(context.Background(), c); err != nil {
		t.Fatalf("put character: %v", err)
	}
}

func getCharacter(t *testing.T, store storage.CharacterStore, id string) character.Character {
	t.Helper()
	c, err := store.GetCharacter(context.Background(), id)
	if err != nil {
		t.Fatalf("get character: %v", err)
	}
	return c
}
