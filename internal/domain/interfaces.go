package domain

// BookStore loads and saves the whole address book.
type BookStore interface {
	LoadBook() (*AddressBook, error)
	SaveBook(book *AddressBook) error
}
