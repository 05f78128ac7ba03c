package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"addressbook/internal/store"
)

const (
	// EnvPrefix prefixes every environment variable, e.g. ADDRESSBOOK_HOME.
	EnvPrefix = "ADDRESSBOOK"

	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 12

	defaultHomeDir = ".addressbook"
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minPassphraseLength,
	)
)

// Config holds runtime options for building the app.
// Values come from ADDRESSBOOK_* environment variables (ADDRESSBOOK_HOME,
// ADDRESSBOOK_FORMAT, ADDRESSBOOK_LOG_LEVEL, ...); command-line flags
// override them. Fields carry no envconfig tags so that unprefixed
// variables such as HOME are never picked up.
type Config struct {
	// Home is the directory holding the book (default: $HOME/.addressbook)
	Home string

	// File is the book's base name, without extension (default: addressbook)
	File string `default:"addressbook"`

	// Format is the storage encoding: json or yaml (default: json)
	Format string `default:"json"`

	// Passphrase encrypts the book at rest when set
	Passphrase string

	Log LogConfig `ignored:"true"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	// Level is the log level: debug, info, warn, error (default: warn)
	Level string `default:"warn"`

	// Mode is dev (console) or prod (json) (default: dev)
	Mode string `default:"dev"`
}

// LoadConfig reads an optional dotenv file and then the environment.
// Variables already present in the environment win over the dotenv file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if err := envconfig.Process(EnvPrefix+"_LOG", &cfg.Log); err != nil {
		return Config{}, fmt.Errorf("failed to load log config: %w", err)
	}
	return cfg, nil
}

// Validate fills defaults that depend on the host and checks the values.
func (c *Config) Validate() error {
	if c.Home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		c.Home = filepath.Join(dir, defaultHomeDir)
	}
	if c.File == "" {
		c.File = store.DefaultBookFile
	}
	if _, err := store.ParseFormat(c.Format); err != nil {
		return err
	}
	if c.Passphrase != "" && !isSecurePassphrase(c.Passphrase) {
		return ErrWeakPassphrase
	}
	return nil
}

// StoreConfig maps c to the book store settings.
func (c Config) StoreConfig() store.BookFileStoreConfig {
	format, _ := store.ParseFormat(c.Format)
	return store.BookFileStoreConfig{
		Dir:        c.Home,
		File:       c.File,
		Format:     format,
		Passphrase: c.Passphrase,
	}
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len(passphrase) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}
