// Package probe implements the consistency probe. It opens one file through
// two independent handles, writes a known pattern through the first, closes
// it, and expects to read the pattern back through the second handle.
package probe

import (
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/desertwitch/netfsbench/internal/fileio"
	"github.com/zeebo/blake3"
)

const (
	// DefaultPath is the file probed when no other path is configured.
	DefaultPath = "/mnt/netfs/foo"

	// BufferSize is the amount of bytes written and read back.
	BufferSize = 100
)

type fileProvider interface {
	OpenReadWrite(path string) (*fileio.File, error)
	OpenReadOnly(path string) (*fileio.File, error)
}

// Result is the outcome of a successful probe.
type Result struct {
	Path         string
	BytesWritten int
	BytesRead    int

	// Checksum is the BLAKE3 checksum of the data read back (strict mode).
	Checksum string
}

// Handler is the principal implementation for the consistency probe.
type Handler struct {
	fileHandler fileProvider
	strict      bool
}

// NewHandler returns a pointer to a new [Handler]. In strict mode, the probe
// also compares the checksums of the data read back and the same length of
// written data, instead of only the leading marker bytes.
func NewHandler(fileHandler fileProvider, strict bool) *Handler {
	return &Handler{
		fileHandler: fileHandler,
		strict:      strict,
	}
}

// Run executes the probe against the given path. Any failure aborts the
// probe, all handles opened until then are closed before returning.
func (p *Handler) Run(path string) (*Result, error) {
	writer, err := p.fileHandler.OpenReadWrite(path)
	if err != nil {
		return nil, fmt.Errorf("(probe) failed to open writing handle: %w", err)
	}
	defer writer.Close() //nolint:errcheck

	reader, err := p.fileHandler.OpenReadOnly(path)
	if err != nil {
		return nil, fmt.Errorf("(probe) failed to open reading handle: %w", err)
	}
	defer reader.Close() //nolint:errcheck

	written := fileio.ProbePattern(BufferSize)

	nw, err := writer.WriteExact(written)
	if err != nil {
		return nil, fmt.Errorf("(probe) failed to write: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("(probe) failed to close writing handle: %w", err)
	}

	read := make([]byte, BufferSize)

	nr, err := reader.ReadUpTo(read)
	if err != nil {
		return nil, fmt.Errorf("(probe) failed to read: %w", err)
	}
	read = read[:nr]

	slog.Debug("Read back through independent handle.", "path", path, "written", nw, "read", nr)

	if err := verifyMarker(read); err != nil {
		return nil, fmt.Errorf("(probe) '%s': %w", path, err)
	}

	result := &Result{
		Path:         path,
		BytesWritten: nw,
		BytesRead:    nr,
	}

	if p.strict {
		srcChecksum := checksum(written[:min(nr, nw)])
		dstChecksum := checksum(read)

		if srcChecksum != dstChecksum {
			return nil, fmt.Errorf("(probe) '%s': %w: %s (written) != %s (read)", path, ErrChecksumMismatch, srcChecksum, dstChecksum)
		}
		result.Checksum = dstChecksum
	}

	if err := reader.Close(); err != nil {
		return nil, fmt.Errorf("(probe) failed to close reading handle: %w", err)
	}

	return result, nil
}

// verifyMarker checks the read back data against [fileio.ProbeMarker].
func verifyMarker(read []byte) error {
	marker := fileio.ProbeMarker

	if len(read) < len(marker) {
		return fmt.Errorf("%w: read back %d bytes, need at least %d", ErrConsistency, len(read), len(marker))
	}

	for i, want := range marker {
		if read[i] != want {
			return fmt.Errorf("%w: byte %d: wrote %d, read %d", ErrConsistency, i, want, read[i])
		}
	}

	return nil
}

func checksum(data []byte) string {
	hasher := blake3.New()
	hasher.Write(data) //nolint:errcheck

	return hex.EncodeToString(hasher.Sum(nil))
}
