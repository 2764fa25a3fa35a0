package multiwrite

import "errors"

var (
	// ErrInvalidWriteSize is an error that occurs when the benchmark is
	// requested with a non-positive write size.
	ErrInvalidWriteSize = errors.New("write size must be > 0")

	// ErrInvalidOffset is an error that occurs when the benchmark is
	// requested with a negative offset.
	ErrInvalidOffset = errors.New("offset must be >= 0")

	// ErrUnknownOffsetPolicy is an error that occurs when an offset policy
	// other than [PolicyFresh] or [PolicySticky] is requested.
	ErrUnknownOffsetPolicy = errors.New("unknown offset policy")
)
