package fileio

// ProbeMarker are the leading bytes of [ProbePattern], which the consistency
// probe expects to read back through an independent handle.
//
//nolint:gochecknoglobals
var ProbeMarker = []byte{9, 81, 'A', 'q', '0'}

// ProbePattern returns a buffer of size n starting with [ProbeMarker] and
// continuing with the byte index. If n is smaller than the marker, the marker
// is truncated.
func ProbePattern(n int) []byte {
	buf := RampPattern(n)
	copy(buf, ProbeMarker)

	return buf
}

// RampPattern returns a buffer of size n where every byte holds the lowest
// eight bits of its index.
func RampPattern(n int) []byte {
	buf := make([]byte, max(n, 0))
	for i := range buf {
		buf[i] = byte(i & 0xFF) //nolint:gosec
	}

	return buf
}

// XORPattern returns a buffer of size n where every byte holds the lowest
// eight bits of its index, XOR'ed with 0xBA.
func XORPattern(n int) []byte {
	buf := make([]byte, max(n, 0))
	for i := range buf {
		buf[i] = byte(0xBA ^ (i & 0xFF)) //nolint:gosec
	}

	return buf
}
