package health

import (
	"context"

	"github.com/louisbranch/chronicles.mud/internal/services/game/domain/character"
	"github.com/louisbranch/chronicles.mud/internal/services/game/storage"
)

type fakeStore struct {
	characters map[string]character.Character
	puts       int
	putErr     error
}

func newFakeStore(characters ...character.Character) *fakeStore {
	store := &fakeStore{characters: make(map[string]character.Character)}
	for _, c := range characters {
		store.characters[c.ID] = c.Clone()
	}
	return store
}

func (s *fakeStore) PutCharacter(_ context.Context, c character.Character) error {
	if err := c.Validate(); err != nil {
		return err
	}
	s.characters[c.ID] = c.Clone()
	return nil
}

func (s *fakeStore) GetCharacter(_ context.Context, id string) (character.Character, error) {
	c, ok := s.characters[id]
	if !ok {
		return character.Character{}, storage.ErrNotFound
	}
	return c.Clone(), nil
}

func (s *fakeStore) PutHealthDamage(_ context.Context, id string, damage map[int]string) error {
	if s.putErr != nil {
		return s.putErr
	}
	c, ok := s.characters[id]
	if !ok {
		return storage.ErrNotFound
	}
	s.puts++
	c.HealthDamage = damage
	s.characters[id] = c.Clone()
	return nil
}

func (s *fakeStore) PutHealth(_ context.Context, id string, maxHealth int, damage map[int]string) error {
	if s.putErr != nil {
		return s.putErr
	}
	c, ok := s.characters[id]
	if !ok {
		return storage.ErrNotFound
	}
	s.puts++
	c = c.Clone()
	if c.Advantages == nil {
		c.Advantages = map[string]int{}
	}
	c.Advantages[character.AdvantageHealth] = maxHealth
	c.HealthDamage = damage
	s.characters[id] = c.Clone()
	return nil
}

func (s *fakeStore) Close() error { return nil }
