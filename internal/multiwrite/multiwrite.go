// Package multiwrite implements the structured multi-file write benchmark. It
// issues one bounded write into each of four pre-existing files, strictly in
// order, and measures the open, write and close phases of every file.
package multiwrite

import (
	"fmt"
	"log/slog"

	"github.com/desertwitch/netfsbench/internal/fileio"
	"github.com/desertwitch/netfsbench/internal/timing"
)

const (
	// FileCount is the amount of files written per run.
	FileCount = 4

	// DefaultWriteSize is the size of the write per file in bytes.
	DefaultWriteSize = 4096
)

type fileProvider interface {
	OpenReadWrite(path string) (*fileio.File, error)
}

// Options are the parameters of one benchmark run.
type Options struct {
	BasePath  string
	WriteSize int
	Offset    int64
	Policy    OffsetPolicy
}

// FileResult holds the measurements of one written file.
type FileResult struct {
	Index      int
	Path       string
	FileSize   int64
	WriteBytes int

	// Offset is the offset the write was issued at, after adjustment.
	Offset  int64
	Timings timing.Sample
}

// Result holds the measurements of a benchmark run.
type Result struct {
	WriteSize int
	Policy    OffsetPolicy

	// RequestedOffset is the offset the run was requested with, whereas
	// Offset is the offset in effect after the last written file.
	RequestedOffset int64
	Offset          int64

	Files []*FileResult
	Sum   timing.Sample
}

// Average returns the per-phase average across all written files.
func (r *Result) Average() timing.Sample {
	return r.Sum.Div(len(r.Files))
}

// Complete returns if all files were written.
func (r *Result) Complete() bool {
	return len(r.Files) == FileCount
}

// Handler is the principal implementation for the multi-file benchmark.
type Handler struct {
	fileHandler fileProvider
	clock       timing.Clock
}

// NewHandler returns a pointer to a new [Handler].
func NewHandler(fileHandler fileProvider, clock timing.Clock) *Handler {
	return &Handler{
		fileHandler: fileHandler,
		clock:       clock,
	}
}

// TargetPath returns the path of the file with the given index.
func TargetPath(basePath string, index int) string {
	return fmt.Sprintf("%s_%d", basePath, index)
}

// Run executes the benchmark. The files are expected to exist, none are
// created. The first failure aborts the run before the next file is
// attempted; the returned [Result] then holds the files completed so far.
func (h *Handler) Run(opts Options) (*Result, error) {
	if opts.WriteSize <= 0 {
		return nil, fmt.Errorf("(multiwrite) %w", ErrInvalidWriteSize)
	}

	if opts.Offset < 0 {
		return nil, fmt.Errorf("(multiwrite) %w", ErrInvalidOffset)
	}

	if opts.Policy == "" {
		opts.Policy = PolicyFresh
	}

	result := &Result{
		WriteSize:       opts.WriteSize,
		Policy:          opts.Policy,
		RequestedOffset: opts.Offset,
		Offset:          opts.Offset,
		Files:           make([]*FileResult, 0, FileCount),
	}

	buf := fileio.XORPattern(opts.WriteSize)
	offset := opts.Offset

	for i := range FileCount {
		path := TargetPath(opts.BasePath, i)

		fr, err := h.writeFile(i, path, buf, offset)
		if err != nil {
			return result, fmt.Errorf("(multiwrite) file %d: %w", i, err)
		}

		if opts.Policy == PolicySticky {
			offset = fr.Offset
		}

		result.Files = append(result.Files, fr)
		result.Sum = result.Sum.Add(fr.Timings)
		result.Offset = fr.Offset
	}

	return result, nil
}

func (h *Handler) writeFile(index int, path string, buf []byte, offset int64) (*FileResult, error) {
	fr := &FileResult{
		Index:      index,
		Path:       path,
		WriteBytes: len(buf),
	}

	totalWatch := timing.Start(h.clock)

	openWatch := timing.Start(h.clock)
	f, err := h.fileHandler.OpenReadWrite(path)
	fr.Timings.Open = openWatch.Elapsed()
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	size, err := f.Size()
	if err != nil {
		return nil, err
	}
	fr.FileSize = size

	fr.Offset = AdjustOffset(offset, len(buf), size)
	if fr.Offset != offset {
		slog.Debug("Offset exceeds file, writing at start instead.",
			"path", path,
			"size", size,
			"offset", offset,
		)
	}

	writeWatch := timing.Start(h.clock)
	if err := f.SeekTo(fr.Offset); err != nil {
		return nil, err
	}
	_, err = f.WriteExact(buf)
	fr.Timings.Operation = writeWatch.Elapsed()
	if err != nil {
		return nil, err
	}

	closeWatch := timing.Start(h.clock)
	err = f.Close()
	fr.Timings.Close = closeWatch.Elapsed()
	if err != nil {
		return nil, err
	}

	fr.Timings.Total = totalWatch.Elapsed()

	return fr, nil
}
