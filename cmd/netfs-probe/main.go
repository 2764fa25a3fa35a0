// Command netfs-probe verifies that a write through one file handle is
// visible through a second, independently opened handle to the same file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/desertwitch/netfsbench/internal/cli"
	"github.com/desertwitch/netfsbench/internal/configuration"
	"github.com/desertwitch/netfsbench/internal/fileio"
	"github.com/desertwitch/netfsbench/internal/probe"
	"github.com/desertwitch/netfsbench/internal/report"
	"github.com/desertwitch/netfsbench/internal/schema"
)

//nolint:gochecknoglobals
var exitCode = cli.ExitSuccess

type arguments struct {
	path       string
	strict     bool
	configFile string
	verbose    bool
}

func parseArgs(fs *flag.FlagSet, args []string) (*arguments, error) {
	a := &arguments{}

	fs.StringVar(&a.path, "path", "", "file to probe (default from config, "+probe.DefaultPath+")")
	fs.BoolVar(&a.strict, "strict", false, "also compare checksums of the written and read back bytes")
	fs.StringVar(&a.configFile, "config", configuration.DefaultFile, "optional configuration file")
	fs.BoolVar(&a.verbose, "verbose", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}

	if fs.NArg() > 0 {
		fs.Usage()

		return nil, fmt.Errorf("%w: unexpected argument %q", cli.ErrUsage, fs.Arg(0))
	}

	return a, nil
}

func run(args []string) error {
	fs := flag.NewFlagSet("netfs-probe", flag.ContinueOnError)

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

	path := settings.ProbePath
	if a.path != "" {
		path = a.path
	}

	handler := probe.NewHandler(fileio.NewHandler(&schema.Unix{}), a.strict)

	result, err := handler.Run(path)
	if err != nil {
		if errors.Is(err, probe.ErrConsistency) {
			slog.Error("Consistency violation: write not visible through independent handle.", "path", path, "err", err)
		} else {
			slog.Error("Probe failed.", "path", path, "err", err)
		}

		return err
	}

	report.WriteProbe(os.Stdout, result)

	return nil
}

func main() {
	defer func() {
		os.Exit(exitCode)
	}()

	exitCode = cli.ExitCode(run(os.Args[1:]))
}
