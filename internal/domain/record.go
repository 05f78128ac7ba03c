package domain

import (
	"fmt"
	"strings"
	"time"
)

// Record is one contact: a name, an ordered list of phones and an optional birthday.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday // nil until AddBirthday succeeds
}

// NewRecord creates a record with no phones and no birthday.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the contact name.
func (r *Record) Name() Name { return r.name }

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// Birthday returns the birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone validates phone and appends it. Duplicates are allowed.
func (r *Record) AddPhone(phone string) error {
	p, err := NewPhone(phone)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone drops the first phone equal to phone.
func (r *Record) RemovePhone(phone string) error {
	i := r.indexOf(phone)
	if i < 0 {
		return r.phoneNotFound(phone)
	}
	r.phones = append(r.phones[:i], r.phones[i+1:]...)
	return nil
}

// EditPhone replaces the first phone equal to old with next, keeping its position.
func (r *Record) EditPhone(old, next string) error {
	i := r.indexOf(old)
	if i < 0 {
		return r.phoneNotFound(old)
	}
	p, err := NewPhone(next)
	if err != nil {
		return err
	}
	r.phones[i] = p
	return nil
}

// FindPhone returns the first phone equal to phone.
func (r *Record) FindPhone(phone string) (Phone, bool) {
	i := r.indexOf(phone)
	if i < 0 {
		return Phone{}, false
	}
	return r.phones[i], true
}

// AddBirthday validates date and sets or overwrites the birthday.
func (r *Record) AddBirthday(date string) error {
	b, err := NewBirthday(date)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// JoinedPhones renders the phones separated by "; ".
func (r *Record) JoinedPhones() string {
	parts := make([]string, len(r.phones))
	for i, p := range r.phones {
		parts[i] = p.String()
	}
	return strings.Join(parts, "; ")
}

// String renders the record on a single line.
func (r *Record) String() string {
	birthday := "not specified"
	if b, ok := r.Birthday(); ok {
		birthday = b.String()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s, birthday: %s", r.name, r.JoinedPhones(), birthday)
}

func (r *Record) indexOf(phone string) int {
	for i, p := range r.phones {
		if p.value == phone {
			return i
		}
	}
	return -1
}

func (r *Record) phoneNotFound(phone string) error {
	return NewNotFoundError(fmt.Sprintf("Phone '%s' not found in contact '%s'.", phone, r.name))
}

// RecordSnapshot is the structural form of a Record used by persistence.
// Birthday is nil when unset.
type RecordSnapshot struct {
	Name     string
	Phones   []string
	Birthday *time.Time
}

// Snapshot captures r's fields.
func (r *Record) Snapshot() RecordSnapshot {
	s := RecordSnapshot{
		Name:   r.name.String(),
		Phones: make([]string, len(r.phones)),
	}
	for i, p := range r.phones {
		s.Phones[i] = p.String()
	}
	if b, ok := r.Birthday(); ok {
		d := b.Date()
		s.Birthday = &d
	}
	return s
}

// RestoreRecord rebuilds a Record from a snapshot, checking that every field
// still satisfies its invariant.
func RestoreRecord(s RecordSnapshot) (*Record, error) {
	r, err := NewRecord(s.Name)
	if err != nil {
		return nil, err
	}
	r.phones = make([]Phone, 0, len(s.Phones))
	for _, raw := range s.Phones {
		if err := r.AddPhone(raw); err != nil {
			return nil, fmt.Errorf("contact %q: %w", s.Name, err)
		}
	}
	if s.Birthday != nil {
		y, m, d := s.Birthday.Date()
		b, err := BirthdayFromDate(y, m, d)
		if err != nil {
			return nil, fmt.Errorf("contact %q: %w", s.Name, err)
		}
		r.birthday = &b
	}
	return r, nil
}
