package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"addressbook/internal/domain"
	"addressbook/internal/util/memzero"
)

const (
	// DefaultBookFile is the file name used when none is configured.
	DefaultBookFile = "addressbook"

	encryptedSuffix = ".enc"
)

// BookFileStoreConfig describes where and how the book is stored.
type BookFileStoreConfig struct {
	Dir        string // directory holding the file, e.g. $HOME/.addressbook
	File       string // base name without extension; defaults to DefaultBookFile
	Format     Format // json (default) or yaml
	Passphrase string // when set, the document is sealed in an encrypted envelope
}

// BookFileStore persists a single AddressBook to disk.
type BookFileStore struct {
	dir        string
	file       string
	path       string
	format     Format
	passphrase string
	params     scryptParams
	mu         sync.Mutex
}

// NewBookFileStore returns a BookFileStore for cfg.
func NewBookFileStore(cfg BookFileStoreConfig) *BookFileStore {
	format := cfg.Format
	if format == "" {
		format = FormatJSON
	}
	file := cfg.File
	if file == "" {
		file = DefaultBookFile
	}
	path := filepath.Join(cfg.Dir, file+"."+string(format))
	if cfg.Passphrase != "" {
		path += encryptedSuffix
	}
	return &BookFileStore{
		dir:        cfg.Dir,
		file:       file,
		path:       path,
		format:     format,
		passphrase: cfg.Passphrase,
		params:     defaultScryptParams(),
	}
}

// Path returns the file the store reads and writes.
func (s *BookFileStore) Path() string { return s.path }

// Encrypted reports whether the book is sealed with a passphrase.
func (s *BookFileStore) Encrypted() bool { return s.passphrase != "" }

// Exists reports whether the book file is present on disk.
func (s *BookFileStore) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Siblings lists books with the same base name but another format or
// encryption setting, e.g. addressbook.json when the store reads
// addressbook.yaml. A store never reads its siblings.
func (s *BookFileStore) Siblings() []string {
	var out []string
	for _, f := range []Format{FormatJSON, FormatYAML} {
		for _, suffix := range []string{"", encryptedSuffix} {
			p := filepath.Join(s.dir, s.file+"."+string(f)+suffix)
			if p == s.path {
				continue
			}
			if _, err := os.Stat(p); err == nil {
				out = append(out, p)
			}
		}
	}
	return out
}

// LoadBook reads the book from disk. A missing file yields an empty book.
func (s *BookFileStore) LoadBook() (*domain.AddressBook, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.path)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return domain.NewAddressBook(), nil
	}
	if s.Encrypted() {
		pt, err := open(s.passphrase, b)
		if err != nil {
			return nil, err
		}
		defer memzero.Zero(pt)
		b = pt
	}
	book, err := DecodeBook(b, s.format)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.path, err)
	}
	return book, nil
}

// SaveBook writes book to disk, replacing the previous file atomically.
func (s *BookFileStore) SaveBook(book *domain.AddressBook) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := marshal(toDocument(book), s.format)
	if err != nil {
		return err
	}
	if s.Encrypted() {
		sealed, err := seal(s.passphrase, b, s.params)
		memzero.Zero(b)
		if err != nil {
			return err
		}
		b = sealed
	}
	return writeFile(s.path, b, 0o600)
}

// Compile-time assertion that BookFileStore implements domain.BookStore.
var _ domain.BookStore = (*BookFileStore)(nil)
