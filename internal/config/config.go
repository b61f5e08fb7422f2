package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultStore            = StoreBolt
	DefaultAutoSaveInterval = 60 * time.Second
	DefaultLogLevel         = "info"

	EnvDir              = "SIMPLENOTES_DIR"
	EnvStore            = "SIMPLENOTES_STORE"
	EnvAutoSaveInterval = "SIMPLENOTES_AUTOSAVE_INTERVAL"
	EnvLogLevel         = "SIMPLENOTES_LOG_LEVEL"
	EnvLogFormat        = "SIMPLENOTES_LOG_FORMAT"
)

// Storage backends
const (
	StoreBolt   = "bolt"
	StoreSQLite = "sqlite"
)

// Config holds the runtime settings shared by every entry point
type Config struct {
	Dir              string
	Store            string
	AutoSaveInterval time.Duration
	LogLevel         string
	LogFormat        string // "console" or "json"
}

// Load reads settings from the environment. A .env file in the working
// directory, then one in the data directory, fill in variables that are
// not already set.
func Load() (Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return Config{}, err
	}
	if err := loadDotEnv(filepath.Join(DataDir(), ".env")); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Dir:              DataDir(),
		Store:            DefaultStore,
		AutoSaveInterval: DefaultAutoSaveInterval,
		LogLevel:         DefaultLogLevel,
		LogFormat:        "console",
	}

	if v := strings.TrimSpace(os.Getenv(EnvStore)); v != "" {
		cfg.Store = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvAutoSaveInterval)); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvAutoSaveInterval, err)
		}
		cfg.AutoSaveInterval = d
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.LogFormat = strings.ToLower(v)
	}

	return cfg, cfg.Validate()
}

// Validate checks the settings that have a fixed set of values
func (c Config) Validate() error {
	switch c.Store {
	case StoreBolt, StoreSQLite:
	default:
		return fmt.Errorf("%s: unknown store %q (expected bolt or sqlite)", EnvStore, c.Store)
	}
	if c.AutoSaveInterval <= 0 {
		return fmt.Errorf("%s: interval must be positive, got %s", EnvAutoSaveInterval, c.AutoSaveInterval)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("%s: unknown format %q (expected console or json)", EnvLogFormat, c.LogFormat)
	}
	return nil
}

// LogFile is where the TUI writes its log
func (c Config) LogFile() string {
	return filepath.Join(c.Dir, "simplenotes.log")
}

// DataDir returns the data directory from SIMPLENOTES_DIR, falling back to
// $XDG_DATA_HOME/simplenotes or ~/.local/share/simplenotes
func DataDir() string {
	if env := os.Getenv(EnvDir); env != "" {
		return ExpandHome(env)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "simplenotes")
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", path, err)
}
