package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/desertwitch/netfsbench/internal/multiwrite"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

const sectionRule = "═══════════════════════════════════════════════════════════"

func printSectionHeader(w io.Writer, title string, descriptions ...string) {
	bold := color.New(color.Bold)

	fmt.Fprintln(w)
	bold.Fprintln(w, sectionRule) //nolint:errcheck
	bold.Fprintln(w, title)       //nolint:errcheck
	bold.Fprintln(w, sectionRule) //nolint:errcheck
	for _, desc := range descriptions {
		fmt.Fprintln(w, desc)
	}
	fmt.Fprintln(w)
}

// RenderTable renders the per-file timings and their averages of a
// multi-file benchmark as a table.
func RenderTable(w io.Writer, r *multiwrite.Result) error {
	printSectionHeader(w, "MULTI-FILE WRITE TIMINGS",
		fmt.Sprintf("  • %s written per file, offset policy %q", ibytes(int64(r.WriteSize)), r.Policy),
		"  • all timings in milliseconds")

	table := tablewriter.NewWriter(w)
	table.Header("File", "Path", "Size", "Offset", "Open", "Write", "Close", "Total")

	for _, fr := range r.Files {
		if err := table.Append(
			strconv.Itoa(fr.Index),
			fr.Path,
			ibytes(fr.FileSize),
			strconv.FormatInt(fr.Offset, 10),
			fmt.Sprintf("%.3f", ms(fr.Timings.Open)),
			fmt.Sprintf("%.3f", ms(fr.Timings.Operation)),
			fmt.Sprintf("%.3f", ms(fr.Timings.Close)),
			fmt.Sprintf("%.3f", ms(fr.Timings.Total)),
		); err != nil {
			return fmt.Errorf("(report) failed to append row: %w", err)
		}
	}

	avg := r.Average()
	if err := table.Append(
		"avg", "", "", "",
		fmt.Sprintf("%.3f", ms(avg.Open)),
		fmt.Sprintf("%.3f", ms(avg.Operation)),
		fmt.Sprintf("%.3f", ms(avg.Close)),
		fmt.Sprintf("%.3f", ms(avg.Total)),
	); err != nil {
		return fmt.Errorf("(report) failed to append row: %w", err)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("(report) failed to render table: %w", err)
	}

	return nil
}
