// Command netfs-randwrite writes a fixed-size buffer at random offsets within
// one file and reports the open, write loop and close timings.
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
	"github.com/desertwitch/netfsbench/internal/randwrite"
	"github.com/desertwitch/netfsbench/internal/report"
	"github.com/desertwitch/netfsbench/internal/schema"
	"github.com/desertwitch/netfsbench/internal/timing"
)

//nolint:gochecknoglobals
var exitCode = cli.ExitSuccess

type arguments struct {
	path       string
	iterations int64
	writeSize  int
	configFile string
	verbose    bool
	cpuProfile string
}

func usage(fs *flag.FlagSet) func() {
	return func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage: %s [flags] <file_path> <iterations>\n", fs.Name())
		fmt.Fprintf(out, "Example: %s /mnt/netfs/bigfile 200000\n", fs.Name())
		fs.PrintDefaults()
	}
}

func parseArgs(fs *flag.FlagSet, args []string) (*arguments, error) {
	a := &arguments{}

	fs.Usage = usage(fs)
	fs.IntVar(&a.writeSize, "write-size", 0, "bytes per write (default from config, 100)")
	fs.StringVar(&a.configFile, "config", configuration.DefaultFile, "optional configuration file")
	fs.BoolVar(&a.verbose, "verbose", false, "enable debug logging")
	fs.StringVar(&a.cpuProfile, "cpuprofile", "", "write cpu profile to file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}

	if fs.NArg() < 2 { //nolint:mnd
		fs.Usage()

		return nil, fmt.Errorf("%w: missing arguments", cli.ErrUsage)
	}

	a.path = fs.Arg(0)

	iterations, err := strconv.ParseInt(fs.Arg(1), 10, 64)
	if err != nil || iterations <= 0 {
		fmt.Fprintln(fs.Output(), "iterations must be > 0")

		return nil, fmt.Errorf("%w: invalid iterations %q", cli.ErrUsage, fs.Arg(1))
	}
	a.iterations = iterations

	if a.writeSize < 0 {
		fmt.Fprintln(fs.Output(), "write size must be > 0")

		return nil, fmt.Errorf("%w: invalid write size %d", cli.ErrUsage, a.writeSize)
	}

	return a, nil
}

func run(args []string) error {
	fs := flag.NewFlagSet("netfs-randwrite", flag.ContinueOnError)

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

	writeSize := settings.RandomWriteSize
	if a.writeSize > 0 {
		writeSize = a.writeSize
	}

	cpuProfiler := cli.NewCPUProfiler(context.Background(), a.cpuProfile)

	handler := randwrite.NewHandler(fileio.NewHandler(&schema.Unix{}), timing.SystemClock{}, randwrite.NewRand())
	result, err := handler.Run(randwrite.Options{
		Path:          a.path,
		Iterations:    a.iterations,
		WriteSize:     writeSize,
		FallbackBound: settings.FallbackBound,
		BeforeLoop: func(r *randwrite.Result) {
			report.WriteRandomStart(os.Stdout, r)
		},
	})

	cpuProfiler.Stop()

	if err != nil {
		slog.Error("Benchmark failed.", "path", a.path, "err", err)

		return err
	}

	report.WriteRandom(os.Stdout, result)

	return nil
}

func main() {
	defer func() {
		os.Exit(exitCode)
	}()

	exitCode = cli.ExitCode(run(os.Args[1:]))
}
