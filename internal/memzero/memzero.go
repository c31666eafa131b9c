// Package memzero provides best-effort wiping of sensitive byte buffers.
package memzero

import "crypto/subtle"

// Zero overwrites b with zeros in a way the compiler will not elide.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
}
