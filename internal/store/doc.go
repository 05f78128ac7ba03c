// Package store provides file-based persistence for the address book.
//
// The book is written as an explicit, versioned document (JSON or YAML)
// rather than an opaque snapshot, so files stay portable and inspectable.
// When a passphrase is configured the document is sealed in an
// scrypt + ChaCha20-Poly1305 envelope before it touches disk.
//
// All writes go through a temp file and an atomic rename, and every store
// method is concurrency-safe via internal locking.
package store
