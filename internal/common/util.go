package common

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// Used on password buffers read from the terminal once they have been copied
// into a form value.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
