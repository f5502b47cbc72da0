package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/chronicles.mud/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/chronicles.mud/internal/services/game/domain/character"
	"github.com/louisbranch/chronicles.mud/internal/services/game/storage"
	"github.com/louisbranch/chronicles.mud/internal/services/game/storage/sqlite/migrations"

	_ "modernc.org/sqlite"
)

var _ storage.CharacterStore = (*Store)(nil)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Store is a SQLite-backed character store.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Open opens the SQLite database at path and applies embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := "file:" + cleanPath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.CharactersFS, "characters"); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the underlying database. It is nil-safe.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutCharacter creates or replaces a character with its advantages and damage.
func (s *Store) PutCharacter(ctx context.Context, c character.Character) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}

	now := s.now().UTC()
	created := c.CreatedAt
	if created.IsZero() {
		created = now
	}
	updated := c.UpdatedAt
	if updated.IsZero() {
		updated = now
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO characters (id, name, created_at, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    name = excluded.name,
    updated_at = excluded.updated_at`,
			c.ID, c.Name, toMillis(created), toMillis(updated)); err != nil {
			return fmt.Errorf("put character: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM character_advantages WHERE character_id = ?`, c.ID); err != nil {
			return fmt.Errorf("clear advantages: %w", err)
		}
		for name, value := range c.Advantages {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO character_advantages (character_id, name, value) VALUES (?, ?, ?)`,
				c.ID, name, value); err != nil {
				return fmt.Errorf("put advantage %s: %w", name, err)
			}
		}
		return replaceDamage(ctx, tx, c.ID, c.HealthDamage)
	})
}

// GetCharacter loads a character by id.
func (s *Store) GetCharacter(ctx context.Context, id string) (character.Character, error) {
	if err := s.ready(ctx); err != nil {
		return character.Character{}, err
	}
	if strings.TrimSpace(id) == "" {
		return character.Character{}, fmt.Errorf("character id is required")
	}

	var (
		c                  character.Character
		created, updatedAt int64
	)
	row := s.sqlDB.QueryRowContext(ctx, `SELECT id, name, created_at, updated_at FROM characters WHERE id = ?`, id)
	if err := row.Scan(&c.ID, &c.Name, &created, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return character.Character{}, storage.ErrNotFound
		}
		return character.Character{}, fmt.Errorf("get character: %w", err)
	}
	c.CreatedAt = fromMillis(created)
	c.UpdatedAt = fromMillis(updatedAt)

	advantages, err := s.loadAdvantages(ctx, id)
	if err != nil {
		return character.Character{}, err
	}
	c.Advantages = advantages

	damage, err := s.loadDamage(ctx, id)
	if err != nil {
		return character.Character{}, err
	}
	c.HealthDamage = damage
	return c, nil
}

// PutHealthDamage replaces the character's full damage map.
func (s *Store) PutHealthDamage(ctx context.Context, id string, damage map[int]string) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := s.touch(ctx, tx, id); err != nil {
			return err
		}
		return replaceDamage(ctx, tx, id, damage)
	})
}

// PutHealth writes the health advantage and the full damage map together.
func (s *Store) PutHealth(ctx context.Context, id string, maxHealth int, damage map[int]string) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := s.touch(ctx, tx, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
INSERT INTO character_advantages (character_id, name, value)
VALUES (?, ?, ?)
ON CONFLICT(character_id, name) DO UPDATE SET value = excluded.value`,
			id, character.AdvantageHealth, maxHealth); err != nil {
			return fmt.Errorf("put health advantage: %w", err)
		}
		return replaceDamage(ctx, tx, id, damage)
	})
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

func (s *Store) withTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// touch bumps updated_at and reports ErrNotFound for unknown characters.
func (s *Store) touch(ctx context.Context, tx *sql.Tx, id string) error {
	result, err := tx.ExecContext(ctx, `UPDATE characters SET updated_at = ? WHERE id = ?`, toMillis(s.now()), id)
	if err != nil {
		return fmt.Errorf("touch character: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("touch character: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func replaceDamage(ctx context.Context, tx *sql.Tx, id string, damage map[int]string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM character_health_damage WHERE character_id = ?`, id); err != nil {
		return fmt.Errorf("clear health damage: %w", err)
	}
	for position, kind := range damage {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO character_health_damage (character_id, position, kind) VALUES (?, ?, ?)`,
			id, position, kind); err != nil {
			return fmt.Errorf("put health damage %d: %w", position, err)
		}
	}
	return nil
}

func (s *Store) loadAdvantages(ctx context.Context, id string) (map[string]int, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT name, value FROM character_advantages WHERE character_id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("list advantages: %w", err)
	}
	defer rows.Close()

	advantages := make(map[string]int)
	for rows.Next() {
		var (
			name  string
			value int
		)
		if err := rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("scan advantage: %w", err)
		}
		advantages[name] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read advantages: %w", err)
	}
	return advantages, nil
}

func (s *Store) loadDamage(ctx context.Context, id string) (map[int]string, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT position, kind FROM character_health_damage WHERE character_id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("list health damage: %w", err)
	}
	defer rows.Close()

	damage := make(map[int]string)
	for rows.Next() {
		var (
			position int
			kind     string
		)
		if err := rows.Scan(&position, &kind); err != nil {
			return nil, fmt.Errorf("scan health damage: %w", err)
		}
		damage[position] = kind
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read health damage: %w", err)
	}
	return damage, nil
}
