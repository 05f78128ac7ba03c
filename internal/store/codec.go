package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"addressbook/internal/domain"
)

// Format selects the document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

const (
	// bookFormatVersion is the current version of the address book document.
	bookFormatVersion = 1

	// dateLayout stores birthdays as plain calendar dates.
	dateLayout = "2006-01-02"
)

// ParseFormat maps a user-supplied name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q (want json or yaml)", s)
	}
}

// bookDocument is the versioned on-disk form of an AddressBook.
type bookDocument struct {
	Version  int               `json:"version" yaml:"version"`
	Contacts []contactDocument `json:"contacts" yaml:"contacts"`
}

type contactDocument struct {
	Name     string   `json:"name" yaml:"name"`
	Phones   []string `json:"phones" yaml:"phones"`
	Birthday string   `json:"birthday,omitempty" yaml:"birthday,omitempty"`
}

func toDocument(book *domain.AddressBook) bookDocument {
	doc := bookDocument{
		Version:  bookFormatVersion,
		Contacts: make([]contactDocument, 0, book.Len()),
	}
	for _, r := range book.Records() {
		s := r.Snapshot()
		c := contactDocument{Name: s.Name, Phones: s.Phones}
		if s.Birthday != nil {
			c.Birthday = s.Birthday.Format(dateLayout)
		}
		doc.Contacts = append(doc.Contacts, c)
	}
	return doc
}

func fromDocument(doc bookDocument) (*domain.AddressBook, error) {
	if doc.Version > bookFormatVersion {
		return nil, fmt.Errorf("unsupported address book version %d", doc.Version)
	}
	book := domain.NewAddressBook()
	for _, c := range doc.Contacts {
		s := domain.RecordSnapshot{Name: c.Name, Phones: c.Phones}
		if c.Birthday != "" {
			d, err := time.Parse(dateLayout, c.Birthday)
			if err != nil {
				return nil, fmt.Errorf("contact %q: birthday %q: %w", c.Name, c.Birthday, err)
			}
			s.Birthday = &d
		}
		r, err := domain.RestoreRecord(s)
		if err != nil {
			return nil, err
		}
		book.AddRecord(r)
	}
	return book, nil
}

// EncodeBook writes book to w as a versioned document.
func EncodeBook(w io.Writer, book *domain.AddressBook, format Format) error {
	b, err := marshal(toDocument(book), format)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// DecodeBook parses a document produced by EncodeBook.
func DecodeBook(data []byte, format Format) (*domain.AddressBook, error) {
	var doc bookDocument
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
	return fromDocument(doc)
}

func marshal(doc bookDocument, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatJSON:
		b, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
