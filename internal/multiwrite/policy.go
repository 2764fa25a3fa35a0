package multiwrite

import (
	"fmt"
	"strings"
)

// OffsetPolicy decides how an offset fallback on one file affects the
// following files of the same run.
type OffsetPolicy string

const (
	// PolicyFresh evaluates the requested offset anew for every file. An
	// offset that does not fit one file falls back to 0 for that file only.
	PolicyFresh OffsetPolicy = "fresh"

	// PolicySticky carries an offset fallback over to all following files,
	// once any file needed it.
	PolicySticky OffsetPolicy = "sticky"
)

// ParseOffsetPolicy returns the [OffsetPolicy] of the given name. An empty
// name returns [PolicyFresh].
func ParseOffsetPolicy(name string) (OffsetPolicy, error) {
	switch OffsetPolicy(strings.ToLower(strings.TrimSpace(name))) {
	case "", PolicyFresh:
		return PolicyFresh, nil
	case PolicySticky:
		return PolicySticky, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOffsetPolicy, name)
	}
}

// AdjustOffset returns the offset at which a write of writeSize bytes is
// issued into a file of the given size. When the write would end beyond a
// non-empty file, the offset falls back to 0. Empty files keep the offset.
func AdjustOffset(offset int64, writeSize int, size int64) int64 {
	if size > 0 && offset > size-int64(writeSize) {
		return 0
	}

	return offset
}
