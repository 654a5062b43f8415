package crypto

import "runtime"

// Wipe zeroes b in place so key material does not linger after use.
//
//go:noinline
func Wipe(b []byte) {
	clear(b)
	runtime.KeepAlive(b)
}
