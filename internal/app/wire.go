package app

import (
	"os"
	"time"

	"addressbook/internal/logger"
	"addressbook/internal/services/contacts"
	"addressbook/internal/store"
)

// New validates cfg and constructs the dependency graph: logger, book store
// and the contacts service with the book already loaded. A nil now uses the
// wall clock.
func New(cfg Config, now func() time.Time) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Mode, cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}
	bookStore := store.NewBookFileStore(cfg.StoreConfig())
	bookLog := log.With("path", bookStore.Path())
	bookLog.Debug("using address book", "encrypted", bookStore.Encrypted())
	if !bookStore.Exists() {
		if siblings := bookStore.Siblings(); len(siblings) > 0 {
			bookLog.Warn("address book not found; other books exist under a different format or passphrase setting",
				"found", siblings)
		}
	}

	svc, err := contacts.Open(bookStore, bookLog, now)
	if err != nil {
		bookLog.Error("open address book", "error", err)
		log.Sync()
		return nil, err
	}

	return &App{
		Config:   cfg,
		Contacts: svc,
		Log:      log,
	}, nil
}
