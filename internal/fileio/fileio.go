// Package fileio provides the file operations issued by the diagnostic
// programs against a mounted file system. It wraps the raw Unix syscalls into
// a [File] handle, whose operations return errors carrying the failing
// operation, the path and the underlying operating system reason.
package fileio

import (
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sys/unix"
)

type unixProvider interface {
	Open(path string, mode int, perm uint32) (int, error)
	Seek(fd int, offset int64, whence int) (int64, error)
	Write(fd int, p []byte) (int, error)
	Read(fd int, p []byte) (int, error)
	Fstat(fd int, stat *unix.Stat_t) error
	Close(fd int) error
}

// Handler is the principal implementation for opening files.
type Handler struct {
	unixHandler unixProvider
}

// NewHandler returns a pointer to a new [Handler].
func NewHandler(unixHandler unixProvider) *Handler {
	return &Handler{
		unixHandler: unixHandler,
	}
}

// OpenReadWrite opens an existing file for reading and writing. No file is
// ever created.
func (h *Handler) OpenReadWrite(path string) (*File, error) {
	return h.open(path, unix.O_RDWR)
}

// OpenReadOnly opens an existing file for reading.
func (h *Handler) OpenReadOnly(path string) (*File, error) {
	return h.open(path, unix.O_RDONLY)
}

func (h *Handler) open(path string, mode int) (*File, error) {
	var fd int

	err := ignoringEINTR(func() error {
		var err error
		fd, err = h.unixHandler.Open(path, mode|unix.O_CLOEXEC, 0)

		return err
	})
	if err != nil {
		return nil, fmt.Errorf("(fileio) %w: '%s': %w", ErrOpen, path, err)
	}

	slog.Debug("Opened file.", "path", path, "fd", fd, "mode", modeName(mode))

	return &File{
		fd:          fd,
		path:        path,
		unixHandler: h.unixHandler,
	}, nil
}

// ignoringEINTR retries a blocking syscall that was interrupted by a signal
// before it could transfer any data.
func ignoringEINTR(fn func() error) error {
	for {
		err := fn()
		if !errors.Is(err, unix.EINTR) {
			return err
		}
	}
}

func modeName(mode int) string {
	switch mode & unix.O_ACCMODE {
	case unix.O_RDONLY:
		return "ro"
	case unix.O_WRONLY:
		return "wo"
	default:
		return "rw"
	}
}
