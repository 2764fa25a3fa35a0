// Command netfs-multiwrite issues one bounded write into each of four
// pre-existing files (<base_path>_0 .. <base_path>_3) and reports per-file
// and averaged open, write and close timings.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/desertwitch/netfsbench/internal/cli"
	"github.com/desertwitch/netfsbench/internal/configuration"
	"github.com/desertwitch/netfsbench/internal/fileio"
	"github.com/desertwitch/netfsbench/internal/multiwrite"
	"github.com/desertwitch/netfsbench/internal/report"
	"github.com/desertwitch/netfsbench/internal/schema"
	"github.com/desertwitch/netfsbench/internal/timing"
)

//nolint:gochecknoglobals
var exitCode = cli.ExitSuccess

type arguments struct {
	basePath     string
	writeSize    int
	offset       int64
	offsetPolicy string
	table        bool
	configFile   string
	verbose      bool
	cpuProfile   string
}

func usage(fs *flag.FlagSet) func() {
	return func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage: %s [flags] <base_path> [write_size_B=4096] [offset_B=0]\n", fs.Name())
		fmt.Fprintf(out, "Example: %s /mnt/netfs/bigfile 4096 0   # will use bigfile_0 .. bigfile_3\n", fs.Name())
		fs.PrintDefaults()
	}
}

func parseArgs(fs *flag.FlagSet, args []string) (*arguments, error) {
	a := &arguments{}

	fs.Usage = usage(fs)
	fs.StringVar(&a.offsetPolicy, "offset-policy", "", "offset fallback policy: fresh or sticky (default from config, fresh)")
	fs.BoolVar(&a.table, "table", false, "also render the timings as a table")
	fs.StringVar(&a.configFile, "config", configuration.DefaultFile, "optional configuration file")
	fs.BoolVar(&a.verbose, "verbose", false, "enable debug logging")
	fs.StringVar(&a.cpuProfile, "cpuprofile", "", "write cpu profile to file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}

	if fs.NArg() < 1 {
		fs.Usage()

		return nil, fmt.Errorf("%w: missing base path", cli.ErrUsage)
	}
	a.basePath = fs.Arg(0)

	if fs.NArg() >= 2 { //nolint:mnd
		writeSize, err := strconv.Atoi(fs.Arg(1))
		if err != nil || writeSize <= 0 {
			fmt.Fprintln(fs.Output(), "write size must be > 0")

			return nil, fmt.Errorf("%w: invalid write size %q", cli.ErrUsage, fs.Arg(1))
		}
		a.writeSize = writeSize
	}

	if fs.NArg() >= 3 { //nolint:mnd
		offset, err := strconv.ParseInt(fs.Arg(2), 10, 64)
		if err != nil || offset < 0 {
			fmt.Fprintln(fs.Output(), "offset must be >= 0")

			return nil, fmt.Errorf("%w: invalid offset %q", cli.ErrUsage, fs.Arg(2))
		}
		a.offset = offset
	}

	return a, nil
}

func run(args []string) error {
	fs := flag.NewFlagSet("netfs-multiwrite", flag.ContinueOnError)

	a, err := parseArgs(fs, args)
	if err != nil {
		return err
	}

	cli.SetupLogging(a.verbose)

	settings, err := configuration.NewHandler(&configuration.GodotenvProvider{}).Load(a.configFile)
	if err != nil {
		slog.Error("Failed to load configuration.", "err", err)

		return err
	}

	writeSize := settings.MultiWriteSize
	if a.writeSize > 0 {
		writeSize = a.writeSize
	}

	policyName := settings.OffsetPolicy
	if a.offsetPolicy != "" {
		policyName = a.offsetPolicy
	}

	policy, err := multiwrite.ParseOffsetPolicy(policyName)
	if err != nil {
		slog.Error("Invalid offset policy.", "err", err)

		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}

	cpuProfiler := cli.NewCPUProfiler(context.Background(), a.cpuProfile)

	handler := multiwrite.NewHandler(fileio.NewHandler(&schema.Unix{}), timing.SystemClock{})
	result, err := handler.Run(multiwrite.Options{
		BasePath:  a.basePath,
		WriteSize: writeSize,
		Offset:    a.offset,
		Policy:    policy,
	})

	cpuProfiler.Stop()

	if result != nil {
		for _, fr := range result.Files {
			report.WriteFile(os.Stdout, fr)
			report.WriteCSV(os.Stderr, fr)
		}
	}

	if err != nil {
		slog.Error("Benchmark failed.", "base", a.basePath, "err", err)

		return err
	}

	report.WriteSummary(os.Stdout, result)

	if a.table {
		if err := report.RenderTable(os.Stdout, result); err != nil {
			slog.Warn("Failed to render table.", "err", err)
		}
	}

	return nil
}

func main() {
	defer func() {
		os.Exit(exitCode)
	}()

	exitCode = cli.ExitCode(run(os.Args[1:]))
}
