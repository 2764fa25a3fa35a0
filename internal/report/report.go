// Package report renders the results of the diagnostic programs. Human
// readable metrics are meant for standard output, the CSV records for
// standard error, which keeps both separable in shell pipelines.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/desertwitch/netfsbench/internal/multiwrite"
	"github.com/desertwitch/netfsbench/internal/probe"
	"github.com/desertwitch/netfsbench/internal/randwrite"
	"github.com/desertwitch/netfsbench/internal/timing"
	"github.com/dustin/go-humanize"
)

func ms(d time.Duration) float64 {
	return timing.Milliseconds(d)
}

func ibytes(n int64) string {
	if n < 0 {
		return "n/a"
	}

	return humanize.IBytes(uint64(n))
}

// WriteProbe renders the result of a consistency probe.
func WriteProbe(w io.Writer, r *probe.Result) {
	fmt.Fprintf(w, "Wrote %d, then %d bytes\n", r.BytesWritten, r.BytesRead)

	if r.Checksum != "" {
		fmt.Fprintf(w, "BLAKE3: %s\n", r.Checksum)
	}
}

// WriteRandomStart renders the line announcing the write loop of a
// randomized write benchmark.
func WriteRandomStart(w io.Writer, r *randwrite.Result) {
	fmt.Fprintf(w, "Writing to file %s of size %d bytes\n", r.Path, r.FileSizeBound)
}

// WriteRandom renders the result of a randomized write benchmark.
func WriteRandom(w io.Writer, r *randwrite.Result) {
	bound := ibytes(r.FileSizeBound)
	if r.SizeFallback {
		bound += ", fallback"
	}

	fmt.Fprintf(w, "File: %s\n", r.Path)
	fmt.Fprintf(w, "Iterations: %d, WriteSize: %d bytes, FileSizeBound: %d bytes (%s)\n",
		r.Iterations, r.WriteSize, r.FileSizeBound, bound)
	fmt.Fprintf(w, "open:  %.3f ms\n", ms(r.Timings.Open))
	fmt.Fprintf(w, "write: %.3f ms   (%.2f MB written, %.2f MB/s during write loop)\n",
		ms(r.Timings.Operation), r.DataMB(), r.ThroughputMBps())
	fmt.Fprintf(w, "close: %.3f ms\n", ms(r.Timings.Close))
	fmt.Fprintf(w, "total: %.3f ms\n", ms(r.Timings.Total))
}

// WriteFile renders the metrics of one file of a multi-file benchmark.
func WriteFile(w io.Writer, fr *multiwrite.FileResult) {
	fmt.Fprintf(w, "File %d: %s\n", fr.Index, fr.Path)
	fmt.Fprintf(w, "  FileSize: %d bytes, Write: %d bytes at off=%d\n", fr.FileSize, fr.WriteBytes, fr.Offset)
	fmt.Fprintf(w, "  open:  %.3f ms\n", ms(fr.Timings.Open))
	fmt.Fprintf(w, "  write: %.3f ms\n", ms(fr.Timings.Operation))
	fmt.Fprintf(w, "  close: %.3f ms\n", ms(fr.Timings.Close))
	fmt.Fprintf(w, "  total: %.3f ms\n\n", ms(fr.Timings.Total))
}

// WriteCSV renders the machine-parsable record of one file of a multi-file
// benchmark as a single line of comma-separated key/value pairs.
func WriteCSV(w io.Writer, fr *multiwrite.FileResult) {
	fmt.Fprintf(w,
		"CSV,file,%s,index,%d,filesize,%d,write_bytes,%d,offset,%d,open_ms,%.3f,write_ms,%.3f,close_ms,%.3f,total_ms,%.3f\n",
		fr.Path, fr.Index, fr.FileSize, fr.WriteBytes, fr.Offset,
		ms(fr.Timings.Open), ms(fr.Timings.Operation), ms(fr.Timings.Close), ms(fr.Timings.Total))
}

// WriteSummary renders the averages across all files of a multi-file
// benchmark. With [multiwrite.PolicySticky], the offset in effect at the end
// of the run is shown, otherwise the requested offset.
func WriteSummary(w io.Writer, r *multiwrite.Result) {
	offset := r.RequestedOffset
	if r.Policy == multiwrite.PolicySticky {
		offset = r.Offset
	}

	avg := r.Average()

	fmt.Fprintf(w, "Summary (%d files): write=%d B at off=%d\n", len(r.Files), r.WriteSize, offset)
	fmt.Fprintf(w, "  avg open:  %.3f ms\n", ms(avg.Open))
	fmt.Fprintf(w, "  avg write: %.3f ms\n", ms(avg.Operation))
	fmt.Fprintf(w, "  avg close: %.3f ms\n", ms(avg.Close))
	fmt.Fprintf(w, "  avg total: %.3f ms\n", ms(avg.Total))
}
