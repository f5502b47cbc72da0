// Package bbolt implements the character store on an embedded BoltDB file.
package bbolt

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/chronicles.mud/internal/services/game/domain/character"
	"github.com/louisbranch/chronicles.mud/internal/services/game/storage"
	"go.etcd.io/bbolt"
)

const characterBucket = "characters"

var _ storage.CharacterStore = (*Store)(nil)

// characterDocument is the JSON shape stored per character key.
type characterDocument struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Advantages   map[string]int `json:"advantages,omitempty"`
	HealthDamage map[int]string `json:"health_damage,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// Store provides a BoltDB-backed character store.
type Store struct {
	db  *bbolt.DB
	now func() time.Time
}

// Open opens a BoltDB-backed store at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	db, err := bbolt.Open(cleanPath, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	store := &Store{db: db, now: time.Now}
	if err := store.ensureBuckets(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying BoltDB database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// PutCharacter creates or replaces a character document.
func (s *Store) PutCharacter(ctx context.Context, c character.Character) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}

	now := s.now().UTC()
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := charactersBucket(tx)
		if err != nil {
			return err
		}
		doc := toDocument(c)
		if existing := bucket.Get(characterKey(c.ID)); existing != nil && doc.CreatedAt.IsZero() {
			var previous characterDocument
			if err := json.Unmarshal(existing, &previous); err == nil {
				doc.CreatedAt = previous.CreatedAt
			}
		}
		if doc.CreatedAt.IsZero() {
			doc.CreatedAt = now
		}
		if doc.UpdatedAt.IsZero() {
			doc.UpdatedAt = now
		}
		return putDocument(bucket, doc)
	})
}

// GetCharacter fetches a character by id.
func (s *Store) GetCharacter(ctx context.Context, id string) (character.Character, error) {
	if err := s.ready(ctx); err != nil {
		return character.Character{}, err
	}
	if strings.TrimSpace(id) == "" {
		return character.Character{}, fmt.Errorf("character id is required")
	}

	var doc characterDocument
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket, err := charactersBucket(tx)
		if err != nil {
			return err
		}
		doc, err = getDocument(bucket, id)
		return err
	})
	if err != nil {
		return character.Character{}, err
	}
	return doc.character(), nil
}

// PutHealthDamage replaces the character's full damage map.
func (s *Store) PutHealthDamage(ctx context.Context, id string, damage map[int]string) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	return s.update(id, func(doc *characterDocument) {
		doc.HealthDamage = copyDamage(damage)
	})
}

// PutHealth writes the health advantage and the full damage map together.
func (s *Store) PutHealth(ctx context.Context, id string, maxHealth int, damage map[int]string) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	return s.update(id, func(doc *characterDocument) {
		if doc.Advantages == nil {
			doc.Advantages = make(map[string]int, 1)
		}
		doc.Advantages[character.AdvantageHealth] = maxHealth
		doc.HealthDamage = copyDamage(damage)
	})
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

// update applies mutate to an existing document inside one write transaction.
func (s *Store) update(id string, mutate func(*characterDocument)) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("character id is required")
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := charactersBucket(tx)
		if err != nil {
			return err
		}
		doc, err := getDocument(bucket, id)
		if err != nil {
			return err
		}
		mutate(&doc)
		doc.UpdatedAt = s.now().UTC()
		return putDocument(bucket, doc)
	})
}

func (s *Store) ensureBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(characterBucket)); err != nil {
			return fmt.Errorf("create character bucket: %w", err)
		}
		return nil
	})
}

func charactersBucket(tx *bbolt.Tx) (*bbolt.Bucket, error) {
	bucket := tx.Bucket([]byte(characterBucket))
	if bucket == nil {
		return nil, fmt.Errorf("character bucket is missing")
	}
	return bucket, nil
}

func getDocument(bucket *bbolt.Bucket, id string) (characterDocument, error) {
	payload := bucket.Get(characterKey(id))
	if payload == nil {
		return characterDocument{}, storage.ErrNotFound
	}
	var doc characterDocument
	if err := json.Unmarshal(payload, &doc); err != nil {
		return characterDocument{}, fmt.Errorf("unmarshal character: %w", err)
	}
	return doc, nil
}

func putDocument(bucket *bbolt.Bucket, doc characterDocument) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal character: %w", err)
	}
	return bucket.Put(characterKey(doc.ID), payload)
}

func characterKey(id string) []byte {
	return []byte(id)
}

func toDocument(c character.Character) characterDocument {
	c = c.Clone()
	return characterDocument{
		ID:           c.ID,
		Name:         c.Name,
		Advantages:   c.Advantages,
		HealthDamage: c.HealthDamage,
		CreatedAt:    c.CreatedAt.UTC(),
		UpdatedAt:    c.UpdatedAt.UTC(),
	}
}

func (d characterDocument) character() character.Character {
	c := character.Character{
		ID:           d.ID,
		Name:         d.Name,
		Advantages:   d.Advantages,
		HealthDamage: d.HealthDamage,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
	if c.Advantages == nil {
		c.Advantages = map[string]int{}
	}
	if c.HealthDamage == nil {
		c.HealthDamage = map[int]string{}
	}
	return c
}

func copyDamage(damage map[int]string) map[int]string {
	out := make(map[int]string, len(damage))
	for position, kind := range damage {
		out[position] = kind
	}
	return out
}
