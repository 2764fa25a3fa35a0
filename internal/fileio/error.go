package fileio

import (
	"errors"
	"fmt"
)

var (
	// ErrOpen is an error that occurs when a file could not be opened in the
	// requested mode.
	ErrOpen = errors.New("open failure")

	// ErrStat is an error that occurs when the size of an opened file could
	// not be queried.
	ErrStat = errors.New("fstat failure")

	// ErrSeek is an error that occurs when the file offset could not be
	// repositioned.
	ErrSeek = errors.New("lseek failure")

	// ErrWrite is an error that occurs when a write was rejected by the
	// operating system, or did not transfer the full buffer.
	ErrWrite = errors.New("write failure")

	// ErrShortWrite is an error that occurs when a write transferred fewer
	// bytes than requested. It also matches [ErrWrite].
	ErrShortWrite = fmt.Errorf("%w: short write", ErrWrite)

	// ErrRead is an error that occurs when a read was rejected by the
	// operating system.
	ErrRead = errors.New("read failure")

	// ErrClose is an error that occurs when the operating system reports a
	// failure on closing a file. The descriptor is released regardless.
	ErrClose = errors.New("close failure")
)
