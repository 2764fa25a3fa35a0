package probe

import (
	"errors"
	"fmt"
)

var (
	// ErrConsistency is an error that occurs when data written through one
	// handle is not visible through another, independently opened handle to
	// the same path after the writing handle was closed.
	ErrConsistency = errors.New("consistency violation")

	// ErrChecksumMismatch is an error that occurs when, in strict mode, the
	// checksums of the written and the read back data differ. It also
	// matches [ErrConsistency].
	ErrChecksumMismatch = fmt.Errorf("%w: checksum mismatch", ErrConsistency)
)
