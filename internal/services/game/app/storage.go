package server

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/louisbranch/chronicles.mud/internal/services/game/storage"
	storagebbolt "github.com/louisbranch/chronicles.mud/internal/services/game/storage/bbolt"
	storagesqlite "github.com/louisbranch/chronicles.mud/internal/services/game/storage/sqlite"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendBBolt  = "bbolt"
)

var defaultDBPaths = map[string]string{
	BackendSQLite: filepath.Join("data", "game.db"),
	BackendBBolt:  filepath.Join("data", "game.bolt"),
}

// openCharacterStore opens the configured backend, creating the parent
// directory when needed. An empty backend selects SQLite.
func openCharacterStore(ctx context.Context, backend, path string) (storage.CharacterStore, error) {
	backend = strings.ToLower(strings.TrimSpace(backend))
	if backend == "" {
		backend = BackendSQLite
	}
	defaultPath, ok := defaultDBPaths[backend]
	if !ok {
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
	path = strings.TrimSpace(path)
	if path == "" {
		path = defaultPath
	}
	if err := ensureDir(path); err != nil {
		return nil, err
	}

	switch backend {
	case BackendBBolt:
		store, err := storagebbolt.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open bbolt store: %w", err)
		}
		return store, nil
	default:
		store, err := storagesqlite.Open(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return store, nil
	}
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}
	return nil
}
