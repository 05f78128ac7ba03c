// Package memzero scrubs sensitive buffers such as derived keys and decrypted
// documents once they are no longer needed.
package memzero

import (
	"crypto/subtle"
	"runtime"
)

// Zero overwrites every buffer with zeros. Best effort; the runtime may
// still hold copies.
//
//go:noinline
func Zero(bufs ...[]byte) {
	for _, b := range bufs {
		if len(b) == 0 {
			continue
		}
		subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
	}
	runtime.KeepAlive(bufs)
}
