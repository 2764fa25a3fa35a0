package randwrite

import "errors"

var (
	// ErrInvalidIterations is an error that occurs when the benchmark is
	// requested with a non-positive amount of iterations.
	ErrInvalidIterations = errors.New("iterations must be > 0")

	// ErrInvalidWriteSize is an error that occurs when the benchmark is
	// requested with a non-positive write size.
	ErrInvalidWriteSize = errors.New("write size must be > 0")
)
