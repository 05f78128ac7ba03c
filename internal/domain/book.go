package domain

import (
	"sort"
	"time"
)

const (
	// UpcomingWindowDays is how far ahead UpcomingBirthdays looks, inclusive.
	UpcomingWindowDays = 7
)

// AddressBook maps contact names to records. It is not safe for concurrent
// mutation; callers that share one must serialise access.
type AddressBook struct {
	records map[Name]*Record
}

// NewAddressBook returns an empty book.
func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[Name]*Record)}
}

// AddRecord stores r under its own name, replacing any previous record.
func (b *AddressBook) AddRecord(r *Record) {
	b.records[r.Name()] = r
}

// Find looks up a record by exact name.
func (b *AddressBook) Find(name string) (*Record, bool) {
	r, ok := b.records[Name(name)]
	return r, ok
}

// Delete removes name if present.
func (b *AddressBook) Delete(name string) {
	delete(b.records, Name(name))
}

// Len returns the number of records.
func (b *AddressBook) Len() int { return len(b.records) }

// Records returns all records sorted by name.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, 0, len(b.records))
	for _, r := range b.records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// UpcomingBirthday is a contact to congratulate and the (weekday) date to do it on.
type UpcomingBirthday struct {
	Name Name
	Date time.Time
}

// DateString renders Date as DD.MM.YYYY.
func (u UpcomingBirthday) DateString() string { return u.Date.Format(BirthdayLayout) }

// UpcomingBirthdays lists contacts whose next birthday falls within
// UpcomingWindowDays of today, inclusive on both ends. Birthdays on a Saturday
// or Sunday are congratulated on the following Monday. Results are ordered by
// congratulation date, then by name.
func (b *AddressBook) UpcomingBirthdays(today time.Time) []UpcomingBirthday {
	y, m, d := today.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, UpcomingWindowDays)

	out := make([]UpcomingBirthday, 0)
	for _, r := range b.records {
		bday, ok := r.Birthday()
		if !ok {
			continue
		}
		next := bday.OccurrenceIn(y)
		if next.Before(start) {
			next = bday.OccurrenceIn(y + 1)
		}
		if next.After(end) {
			continue
		}
		out = append(out, UpcomingBirthday{Name: r.Name(), Date: shiftOffWeekend(next)})
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func shiftOffWeekend(t time.Time) time.Time {
	switch t.Weekday() {
	case time.Saturday:
		return t.AddDate(0, 0, 2)
	case time.Sunday:
		return t.AddDate(0, 0, 1)
	default:
		return t
	}
}
