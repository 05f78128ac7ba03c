// Package domain defines the address book model and the contracts around it.
//
// Value types (Name, Phone, Birthday) validate on construction, so a value
// that exists is always well formed. Record groups them into one contact and
// AddressBook keys records by name and answers the upcoming-birthdays query.
// Everything here is plain in-memory computation; "today" is always passed in.
package domain
