package domain

import (
	"fmt"
	"time"
)

const (
	// PhoneLength is the exact number of digits in a phone number.
	PhoneLength = 10

	// BirthdayLayout is the only accepted textual form of a birthday (DD.MM.YYYY).
	BirthdayLayout = "02.01.2006"
)

// Name identifies a contact and keys it inside an AddressBook.
type Name string

// NewName validates that name is not empty.
func NewName(name string) (Name, error) {
	if name == "" {
		return "", NewValidationError("name", "Contact name must not be empty.")
	}
	return Name(name), nil
}

// String returns the string form of the name.
func (n Name) String() string { return string(n) }

// Phone is a phone number made of exactly ten decimal digits.
// Always valid in memory; use NewPhone to construct.
type Phone struct {
	value string
}

// NewPhone validates raw and wraps it.
func NewPhone(raw string) (Phone, error) {
	if !isPhoneDigits(raw) {
		return Phone{}, NewValidationError(
			"phone",
			fmt.Sprintf("Phone number must consist of %d digits, got: '%s'", PhoneLength, raw),
		)
	}
	return Phone{value: raw}, nil
}

// String returns the ten digits.
func (p Phone) String() string { return p.value }

func isPhoneDigits(s string) bool {
	if len(s) != PhoneLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Birthday is a calendar date stored as UTC midnight.
type Birthday struct {
	date time.Time
}

// NewBirthday parses raw in DD.MM.YYYY form. time.Parse rejects dates that do
// not exist on the calendar, such as 31.02.2024.
func NewBirthday(raw string) (Birthday, error) {
	t, err := time.Parse(BirthdayLayout, raw)
	if err != nil {
		return Birthday{}, NewValidationError("birthday", "Invalid date format. Use DD.MM.YYYY")
	}
	return Birthday{date: t}, nil
}

// BirthdayFromDate builds a Birthday from its components without going
// through the textual form. Out-of-range components are rejected rather than
// normalised.
func BirthdayFromDate(year int, month time.Month, day int) (Birthday, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Birthday{}, NewValidationError(
			"birthday",
			fmt.Sprintf("%04d-%02d-%02d is not a calendar date", year, int(month), day),
		)
	}
	return Birthday{date: t}, nil
}

// Date returns the birthday as UTC midnight.
func (b Birthday) Date() time.Time { return b.date }

// String renders DD.MM.YYYY.
func (b Birthday) String() string { return b.date.Format(BirthdayLayout) }

// OccurrenceIn returns the anniversary of b in year. 29 February maps to
// 28 February when year is not a leap year.
func (b Birthday) OccurrenceIn(year int) time.Time {
	month, day := b.date.Month(), b.date.Day()
	if month == time.February && day == 29 && !isLeap(year) {
		day = 28
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
