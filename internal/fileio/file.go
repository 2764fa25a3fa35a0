package fileio

import (
	"fmt"
	"log/slog"

	"golang.org/x/sys/unix"
)

// File is an open handle to a file. It is owned by exactly one operation
// sequence and must be closed by it, also on all error paths.
type File struct {
	fd          int
	path        string
	closed      bool
	unixHandler unixProvider
}

// Path returns the path the [File] was opened with.
func (f *File) Path() string {
	return f.path
}

// Size returns the current size of the file in bytes, as reported by fstat.
func (f *File) Size() (int64, error) {
	var st unix.Stat_t

	err := ignoringEINTR(func() error {
		return f.unixHandler.Fstat(f.fd, &st)
	})
	if err != nil {
		return 0, fmt.Errorf("(fileio) %w: '%s': %w", ErrStat, f.path, err)
	}

	return st.Size, nil
}

// SeekTo positions the file offset at an absolute offset.
func (f *File) SeekTo(offset int64) error {
	if _, err := f.unixHandler.Seek(f.fd, offset, unix.SEEK_SET); err != nil {
		return fmt.Errorf("(fileio) %w: '%s' (off=%d): %w", ErrSeek, f.path, offset, err)
	}

	return nil
}

// WriteExact issues a single write of the entire buffer at the current file
// offset. A write transferring fewer bytes than requested is returned as
// [ErrShortWrite], together with the amount of bytes that were written.
func (f *File) WriteExact(buf []byte) (int, error) {
	var n int

	err := ignoringEINTR(func() error {
		var err error
		n, err = f.unixHandler.Write(f.fd, buf)

		return err
	})
	if err != nil {
		return 0, fmt.Errorf("(fileio) %w: '%s': %w", ErrWrite, f.path, err)
	}

	if n != len(buf) {
		return n, fmt.Errorf("(fileio) %w: '%s': %d/%d bytes", ErrShortWrite, f.path, n, len(buf))
	}

	return n, nil
}

// ReadUpTo issues a single read of up to len(buf) bytes at the current file
// offset and returns the amount of bytes read. Short reads are not an error.
func (f *File) ReadUpTo(buf []byte) (int, error) {
	var n int

	err := ignoringEINTR(func() error {
		var err error
		n, err = f.unixHandler.Read(f.fd, buf)

		return err
	})
	if err != nil {
		return 0, fmt.Errorf("(fileio) %w: '%s': %w", ErrRead, f.path, err)
	}

	return n, nil
}

// Close releases the file descriptor. Calling Close on an already closed
// [File] issues no syscall and returns nil, which allows for deferred cleanup
// next to an explicit (checked) Close. The descriptor counts as released even
// when an error is returned.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true

	if err := f.unixHandler.Close(f.fd); err != nil {
		return fmt.Errorf("(fileio) %w: '%s': %w", ErrClose, f.path, err)
	}

	slog.Debug("Closed file.", "path", f.path, "fd", f.fd)

	return nil
}
