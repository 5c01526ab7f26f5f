// Package config handles the XDG configuration directory, the optional
// config.toml file, and environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"taskeasy/internal/storage"
	"taskeasy/internal/task"
)

const (
	// AppName is the application directory name.
	AppName = "taskeasy"

	// ConfigFile is the optional settings filename inside the config directory.
	ConfigFile = "config.toml"

	// Environment overrides.
	EnvStorage        = "TASKEASY_STORAGE"
	EnvLogLevel       = "TASKEASY_LOG_LEVEL"
	EnvMinTitleLength = "TASKEASY_MIN_TITLE_LENGTH"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Storage is the backend kind: file, sqlite or memory.
	Storage string

	// StorageKey is the slot the task collection is stored under.
	StorageKey string

	// DataDir overrides where backends keep their files. Defaults to Dir.
	DataDir string

	// MinTitleLength is the minimum task title length. 0 only rejects blank titles.
	MinTitleLength int

	// LogLevel is the charmbracelet/log level name.
	LogLevel string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// fileConfig mirrors config.toml. Pointers distinguish unset keys.
type fileConfig struct {
	Storage        *string `toml:"storage"`
	StorageKey     *string `toml:"storage_key"`
	DataDir        *string `toml:"data_dir"`
	MinTitleLength *int    `toml:"min_title_length"`
	LogLevel       *string `toml:"log_level"`
}

// New creates a Config with defaults and the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/taskeasy or $HOME/.config/taskeasy.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir:            dir,
		Storage:        storage.KindFile,
		StorageKey:     storage.DefaultKey,
		MinTitleLength: task.DefaultMinTitleLength,
		LogLevel:       "warn",
	}, nil
}

// Load builds a Config from defaults, then config.toml in the config
// directory, then environment variables. Flags are applied by the caller.
func Load(configDir string) (*Config, error) {
	cfg, err := New(configDir)
	if err != nil {
		return nil, err
	}
	if err := cfg.loadFile(cfg.FilePath()); err != nil {
		return nil, err
	}
	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// FilePath returns the path to config.toml.
func (c *Config) FilePath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// StorageDir returns the directory backends store data in.
func (c *Config) StorageDir() string {
	if c.DataDir != "" {
		return c.DataDir
	}
	return c.Dir
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// Validate checks settings that cannot be fixed up silently.
func (c *Config) Validate() error {
	if !storage.ValidKind(c.Storage) {
		return fmt.Errorf("unknown storage: %s (want file, sqlite or memory)", c.Storage)
	}
	if c.StorageKey == "" {
		return errors.New("storage_key must not be empty")
	}
	if c.MinTitleLength < 0 {
		return fmt.Errorf("min_title_length must not be negative: %d", c.MinTitleLength)
	}
	return nil
}

func (c *Config) loadFile(path string) error {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("invalid %s: %w", ConfigFile, err)
	}

	if fc.Storage != nil {
		c.Storage = *fc.Storage
	}
	if fc.StorageKey != nil {
		c.StorageKey = *fc.StorageKey
	}
	if fc.DataDir != nil {
		c.DataDir = *fc.DataDir
	}
	if fc.MinTitleLength != nil {
		c.MinTitleLength = *fc.MinTitleLength
	}
	if fc.LogLevel != nil {
		c.LogLevel = *fc.LogLevel
	}
	return nil
}

func (c *Config) loadEnv() error {
	if v := os.Getenv(EnvStorage); v != "" {
		c.Storage = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvMinTitleLength); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %s", EnvMinTitleLength, v)
		}
		c.MinTitleLength = n
	}
	return nil
}
