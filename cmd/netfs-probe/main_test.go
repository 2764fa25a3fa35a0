package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/desertwitch/netfsbench/internal/cli"
	"github.com/desertwitch/netfsbench/internal/configuration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("netfs-probe", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	return fs
}

func TestParseArgs_Defaults(t *testing.T) {
	t.Parallel()

	a, err := parseArgs(newFlagSet(), nil)
	require.NoError(t, err)

	assert.Empty(t, a.path)
	assert.False(t, a.strict)
	assert.Equal(t, configuration.DefaultFile, a.configFile)
}

func TestParseArgs_Flags(t *testing.T) {
	t.Parallel()

	a, err := parseArgs(newFlagSet(), []string{"-path", "/mnt/netfs/bar", "-strict", "-verbose"})
	require.NoError(t, err)

	assert.Equal(t, "/mnt/netfs/bar", a.path)
	assert.True(t, a.strict)
	assert.True(t, a.verbose)
}

func TestParseArgs_Fail_UnknownFlag(t *testing.T) {
	t.Parallel()

	_, err := parseArgs(newFlagSet(), []string{"-bogus"})
	require.ErrorIs(t, err, cli.ErrUsage)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

func TestParseArgs_Fail_PositionalArgument(t *testing.T) {
	t.Parallel()

	_, err := parseArgs(newFlagSet(), []string{"-strict", "/mnt/netfs/bar"})
	require.ErrorIs(t, err, cli.ErrUsage)
	assert.Contains(t, err.Error(), "/mnt/netfs/bar")
}

func TestRun_Fail_PositionalArgumentNoIO(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "foo")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o600))

	err := run([]string{"-path", path, path})
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("garbage"), content)
}

func TestRun_Success(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "foo")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o600))

	err := run([]string{"-path", path, "-config", filepath.Join(t.TempDir(), "none.env")})
	require.NoError(t, err)
	assert.Equal(t, cli.ExitSuccess, cli.ExitCode(err))
}

func TestRun_Fail_MissingFile(t *testing.T) {
	t.Parallel()

	err := run([]string{"-path", filepath.Join(t.TempDir(), "missing"), "-config", filepath.Join(t.TempDir(), "none.env")})
	require.Error(t, err)
	assert.Equal(t, cli.ExitFailure, cli.ExitCode(err))
}
