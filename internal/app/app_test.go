package app_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"addressbook/internal/app"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("ADDRESSBOOK_FORMAT", "")
	os.Unsetenv("ADDRESSBOOK_FORMAT")

	cfg, err := app.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.File != "addressbook" || cfg.Format != "json" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Log.Level != "warn" || cfg.Log.Mode != "dev" {
		t.Fatalf("unexpected log defaults: %+v", cfg.Log)
	}
}

func TestLoadConfig_EnvAndDotenv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := "ADDRESSBOOK_FORMAT=yaml\nADDRESSBOOK_LOG_LEVEL=debug\nADDRESSBOOK_FILE=from-dotenv\n"
	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv("ADDRESSBOOK_HOME", dir)
	t.Setenv("ADDRESSBOOK_FILE", "from-env")
	t.Cleanup(func() {
		os.Unsetenv("ADDRESSBOOK_FORMAT")
		os.Unsetenv("ADDRESSBOOK_LOG_LEVEL")
	})

	cfg, err := app.LoadConfig(envFile)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Home != dir {
		t.Fatalf("Home = %q", cfg.Home)
	}
	if cfg.Format != "yaml" || cfg.Log.Level != "debug" {
		t.Fatalf("dotenv values not applied: %+v", cfg)
	}
	if cfg.File != "from-env" {
		t.Fatalf("environment must win over dotenv, File = %q", cfg.File)
	}
}

func TestLoadConfig_MissingDotenvIsFine(t *testing.T) {
	if _, err := app.LoadConfig(filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := app.Config{Home: t.TempDir(), Format: "xml"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown format")
	}

	cfg = app.Config{Home: t.TempDir(), Format: "json", Passphrase: "short"}
	if err := cfg.Validate(); !errors.Is(err, app.ErrWeakPassphrase) {
		t.Fatalf("want ErrWeakPassphrase, got %v", err)
	}

	cfg = app.Config{Home: t.TempDir(), Format: "yaml", Passphrase: "Str0ng-Passphrase!"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.File != "addressbook" {
		t.Fatalf("File default not applied: %q", cfg.File)
	}
	sc := cfg.StoreConfig()
	if sc.Format != "yaml" || sc.Passphrase != cfg.Passphrase || sc.Dir != cfg.Home {
		t.Fatalf("StoreConfig = %+v", sc)
	}
}

func TestNew_WiresAndPersists(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested")
	cfg := app.Config{Home: home, Format: "json", Log: app.LogConfig{Level: "error", Mode: "dev"}}
	now := func() time.Time { return time.Date(2024, time.June, 2, 9, 0, 0, 0, time.UTC) }

	a, err := app.New(cfg, now)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := a.Contacts.AddContact("Alice", "1111111111"); err != nil {
		t.Fatalf("AddContact: %v", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, "addressbook.json")); err != nil {
		t.Fatalf("book not written: %v", err)
	}

	b, err := app.New(cfg, now)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if len(b.Contacts.All()) != 1 {
		t.Fatal("book not reloaded")
	}
}
