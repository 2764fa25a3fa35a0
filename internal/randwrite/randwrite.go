// Package randwrite implements the randomized write benchmark. It repeatedly
// writes a fixed-size buffer at uniformly random offsets within the bounds of
// one file and measures the open, write loop and close phases.
package randwrite

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/desertwitch/netfsbench/internal/fileio"
	"github.com/desertwitch/netfsbench/internal/timing"
)

const (
	// DefaultWriteSize is the size of every single write in bytes.
	DefaultWriteSize = 100

	// DefaultFallbackBound is the logical file size used when the real size
	// of the file is zero or cannot be determined (1 GiB).
	DefaultFallbackBound int64 = 1 << 30

	bytesPerMB = 1024 * 1024
)

type fileProvider interface {
	OpenReadWrite(path string) (*fileio.File, error)
}

type randProvider interface {
	Int64N(n int64) int64
}

// Options are the parameters of one benchmark run.
type Options struct {
	Path          string
	Iterations    int64
	WriteSize     int
	FallbackBound int64

	// BeforeLoop is called once the size bound is known, right before the
	// first write.
	BeforeLoop func(r *Result)
}

// Result holds the measurements of a completed benchmark run.
type Result struct {
	Path       string
	Iterations int64
	WriteSize  int

	// FileSizeBound is the size the offsets were drawn from.
	FileSizeBound int64

	// SizeFallback is true when FileSizeBound is the fallback bound.
	SizeFallback bool
	MaxOffset    int64
	Timings      timing.Sample
}

// BytesWritten returns the total amount of bytes written in the write loop.
func (r *Result) BytesWritten() int64 {
	return r.Iterations * int64(r.WriteSize)
}

// DataMB returns the amount of data written in the write loop, in MB.
func (r *Result) DataMB() float64 {
	return float64(r.BytesWritten()) / bytesPerMB
}

// ThroughputMBps returns the throughput of the write loop in MB/s. A write
// loop measured as zero yields a throughput of zero.
func (r *Result) ThroughputMBps() float64 {
	secs := r.Timings.Operation.Seconds()
	if secs <= 0 {
		return 0
	}

	return r.DataMB() / secs
}

// Handler is the principal implementation for the randomized write benchmark.
type Handler struct {
	fileHandler fileProvider
	clock       timing.Clock
	rand        randProvider
}

// NewHandler returns a pointer to a new [Handler].
func NewHandler(fileHandler fileProvider, clock timing.Clock, randHandler randProvider) *Handler {
	return &Handler{
		fileHandler: fileHandler,
		clock:       clock,
		rand:        randHandler,
	}
}

// NewRand returns a pseudo-random generator seeded from the wall clock and
// the process identifier.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(os.Getpid()))) //nolint:gosec
}

// MaxOffset returns the largest offset at which a write of writeSize bytes
// still ends within size bytes. It is never negative.
func MaxOffset(size int64, writeSize int) int64 {
	if size > int64(writeSize) {
		return size - int64(writeSize)
	}

	return 0
}

// Run executes the benchmark. The file is opened once and its size is
// queried once, the offset range stays fixed for the entire run. A size that
// cannot be determined is replaced by the fallback bound. The first failing
// seek or write aborts the run.
func (h *Handler) Run(opts Options) (*Result, error) {
	if opts.Iterations <= 0 {
		return nil, fmt.Errorf("(randwrite) %w", ErrInvalidIterations)
	}

	if opts.WriteSize <= 0 {
		return nil, fmt.Errorf("(randwrite) %w", ErrInvalidWriteSize)
	}

	if opts.FallbackBound <= 0 {
		opts.FallbackBound = DefaultFallbackBound
	}

	result := &Result{
		Path:       opts.Path,
		Iterations: opts.Iterations,
		WriteSize:  opts.WriteSize,
	}

	totalWatch := timing.Start(h.clock)

	openWatch := timing.Start(h.clock)
	f, err := h.fileHandler.OpenReadWrite(opts.Path)
	result.Timings.Open = openWatch.Elapsed()
	if err != nil {
		return nil, fmt.Errorf("(randwrite) %w", err)
	}
	defer f.Close() //nolint:errcheck

	size, err := f.Size()
	if err != nil {
		slog.Warn("Failed to determine file size, using fallback bound.",
			"path", opts.Path,
			"bound", opts.FallbackBound,
			"err", err,
		)
		size = 0
	}

	result.FileSizeBound = size
	if size <= 0 {
		result.FileSizeBound = opts.FallbackBound
		result.SizeFallback = true
	}
	result.MaxOffset = MaxOffset(result.FileSizeBound, opts.WriteSize)

	slog.Debug("Starting write loop.",
		"path", opts.Path,
		"size", result.FileSizeBound,
		"fallback", result.SizeFallback,
		"iterations", opts.Iterations,
	)

	if opts.BeforeLoop != nil {
		opts.BeforeLoop(result)
	}

	buf := fileio.RampPattern(opts.WriteSize)

	writeWatch := timing.Start(h.clock)
	for i := range opts.Iterations {
		offset := h.drawOffset(result.MaxOffset)

		if err := f.SeekTo(offset); err != nil {
			return nil, fmt.Errorf("(randwrite) iteration %d: %w", i, err)
		}

		if _, err := f.WriteExact(buf); err != nil {
			return nil, fmt.Errorf("(randwrite) iteration %d: %w", i, err)
		}
	}
	result.Timings.Operation = writeWatch.Elapsed()

	closeWatch := timing.Start(h.clock)
	err = f.Close()
	result.Timings.Close = closeWatch.Elapsed()
	if err != nil {
		return nil, fmt.Errorf("(randwrite) %w", err)
	}

	result.Timings.Total = totalWatch.Elapsed()

	return result, nil
}

// drawOffset returns a uniformly distributed offset in [0, maxOffset].
func (h *Handler) drawOffset(maxOffset int64) int64 {
	if maxOffset <= 0 {
		return 0
	}

	return h.rand.Int64N(maxOffset + 1)
}
