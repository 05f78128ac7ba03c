package contacts

import (
	"sync"
	"time"

	"addressbook/internal/domain"
	"addressbook/internal/logger"
)

// Service applies contact operations to a single address book.
type Service struct {
	mu    sync.Mutex
	book  *domain.AddressBook
	store domain.BookStore
	now   func() time.Time
	log   *logger.Logger
	dirty bool
}

// Open loads the book from store. A nil now defaults to time.Now and a nil
// log discards output.
func Open(store domain.BookStore, log *logger.Logger, now func() time.Time) (*Service, error) {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = logger.NewNop()
	}
	book, err := store.LoadBook()
	if err != nil {
		return nil, err
	}
	log.Debug("address book loaded", "contacts", book.Len())
	return &Service{book: book, store: store, now: now, log: log}, nil
}

// AddContact creates name if needed and appends phone when it is not empty.
// It reports whether a new contact was created. An invalid phone leaves the
// book unchanged.
func (s *Service) AddContact(name, phone string) (created bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.book.Find(name)
	if !ok {
		if r, err = domain.NewRecord(name); err != nil {
			return false, err
		}
	}
	if phone != "" {
		if err := r.AddPhone(phone); err != nil {
			return false, err
		}
	}
	if !ok {
		s.book.AddRecord(r)
	}
	s.touch("add contact", "name", name, "created", !ok)
	return !ok, nil
}

// ChangePhone replaces old with next in name's phone list.
func (s *Service) ChangePhone(name, old, next string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.record(name)
	if err != nil {
		return err
	}
	if err := r.EditPhone(old, next); err != nil {
		return err
	}
	s.touch("change phone", "name", name)
	return nil
}

// RemovePhone drops phone from name's phone list.
func (s *Service) RemovePhone(name, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.record(name)
	if err != nil {
		return err
	}
	if err := r.RemovePhone(phone); err != nil {
		return err
	}
	s.touch("remove phone", "name", name)
	return nil
}

// Phones returns name's phones in order.
func (s *Service) Phones(name string) ([]domain.Phone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.record(name)
	if err != nil {
		return nil, err
	}
	return r.Phones(), nil
}

// AddBirthday sets name's birthday from DD.MM.YYYY text.
func (s *Service) AddBirthday(name, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.record(name)
	if err != nil {
		return err
	}
	if err := r.AddBirthday(date); err != nil {
		return err
	}
	s.touch("add birthday", "name", name)
	return nil
}

// Birthday returns name's birthday; ok is false when none is set.
func (s *Service) Birthday(name string) (b domain.Birthday, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.record(name)
	if err != nil {
		return domain.Birthday{}, false, err
	}
	b, ok = r.Birthday()
	return b, ok, nil
}

// UpcomingBirthdays lists who to congratulate during the coming week.
func (s *Service) UpcomingBirthdays() []domain.UpcomingBirthday {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.book.UpcomingBirthdays(s.now())
}

// All returns every contact sorted by name.
func (s *Service) All() []*domain.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.book.Records()
}

// Delete removes name from the book.
func (s *Service) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.record(name); err != nil {
		return err
	}
	s.book.Delete(name)
	s.touch("delete contact", "name", name)
	return nil
}

// Book exposes the underlying book for read-only use such as export.
func (s *Service) Book() *domain.AddressBook {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.book
}

// Dirty reports whether there are unsaved changes.
func (s *Service) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.dirty
}

// Save writes the book back to the store when it has unsaved changes.
func (s *Service) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return nil
	}
	if err := s.store.SaveBook(s.book); err != nil {
		s.log.Error("save address book", "error", err)
		return err
	}
	s.dirty = false
	s.log.Info("address book saved", "contacts", s.book.Len())
	return nil
}

func (s *Service) record(name string) (*domain.Record, error) {
	r, ok := s.book.Find(name)
	if !ok {
		return nil, domain.NewContactNotFoundError(name)
	}
	return r, nil
}

func (s *Service) touch(op string, keysAndValues ...interface{}) {
	s.dirty = true
	s.log.Debug(op, keysAndValues...)
}
