// Package bootstrap opens the configured store and workspace for the
// entry points
package bootstrap

import (
	"fmt"

	"github.com/rs/zerolog"

	"simplenotes/internal/adapters/bolt"
	"simplenotes/internal/adapters/sqlite"
	"simplenotes/internal/application"
	"simplenotes/internal/config"
	"simplenotes/internal/ports"
)

// OpenStore opens the key-value backend named by cfg.Store in cfg.Dir
func OpenStore(cfg config.Config) (ports.KeyValueStore, error) {
	return OpenBackend(cfg.Store, cfg.Dir)
}

// OpenBackend opens a named backend in dir
func OpenBackend(name, dir string) (ports.KeyValueStore, error) {
	switch name {
	case config.StoreBolt:
		return bolt.OpenDir(dir)
	case config.StoreSQLite:
		return sqlite.OpenDir(dir)
	default:
		return nil, fmt.Errorf("unknown store %q (expected bolt or sqlite)", name)
	}
}

// OpenWorkspace opens the store and loads the workspace over it. Closing
// the workspace closes the store.
func OpenWorkspace(cfg config.Config, log zerolog.Logger) (*application.Workspace, error) {
	kv, err := OpenStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store in %s: %w", cfg.Store, cfg.Dir, err)
	}

	log.Debug().Str("store", cfg.Store).Str("dir", cfg.Dir).Msg("store opened")

	ws, err := application.Open(kv, application.Options{
		Logger:           &log,
		AutoSaveInterval: cfg.AutoSaveInterval,
	})
	if err != nil {
		kv.Close()
		return nil, err
	}
	return ws, nil
}

// Migrate copies every persisted key from one backend to another in dir
// and returns how many were copied. Keys absent from the source are
// removed from the destination, so it ends up as an exact copy.
func Migrate(dir, from, to string) (int, error) {
	if from == to {
		return 0, fmt.Errorf("source and destination are both %s", from)
	}

	src, err := OpenBackend(from, dir)
	if err != nil {
		return 0, err
	}
	defer src.Close()

	values := make(map[string][]byte)
	copied := 0
	for _, key := range []string{ports.KeyNotes, ports.KeyGroups, ports.KeyExpandedGroups, ports.KeyLastOpenedNote} {
		v, ok, err := src.Get(key)
		if err != nil {
			return 0, fmt.Errorf("failed to read %s: %w", key, err)
		}
		if !ok {
			values[key] = nil
			continue
		}
		if v == nil {
			v = []byte{}
		}
		values[key] = v
		copied++
	}

	dst, err := OpenBackend(to, dir)
	if err != nil {
		return 0, err
	}
	defer dst.Close()

	imp, ok := dst.(interface{ Import(map[string][]byte) error })
	if !ok {
		return 0, fmt.Errorf("store %s does not support import", to)
	}
	if err := imp.Import(values); err != nil {
		return 0, fmt.Errorf("failed to write %s store: %w", to, err)
	}
	return copied, nil
}
