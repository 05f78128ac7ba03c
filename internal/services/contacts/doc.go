// Package contacts implements the address book use cases behind every command.
//
// A Service owns one in-memory AddressBook for the length of a session. It
// loads the book from a domain.BookStore when opened, applies edits in
// memory, and writes the book back on Save. "Today" comes from an injected
// clock so birthday queries stay deterministic under test.
package contacts
