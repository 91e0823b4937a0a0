package newhope

import "runtime"

// wipeBytes zeroes b. The KeepAlive fence orders the stores after every
// prior use of the buffer so they are not elided as dead.
func wipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
