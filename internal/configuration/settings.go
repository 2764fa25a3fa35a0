package configuration

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
)

const (
	// DefaultFile is the configuration file read when no other is given. It
	// is optional, a missing file yields the default settings.
	DefaultFile = "netfsbench.env"

	SettingProbePath       = "NETFS_PROBE_PATH"
	SettingRandomWriteSize = "NETFS_RANDOM_WRITE_SIZE"
	SettingFallbackBound   = "NETFS_FALLBACK_BOUND"
	SettingMultiWriteSize  = "NETFS_MULTI_WRITE_SIZE"
	SettingOffsetPolicy    = "NETFS_OFFSET_POLICY"

	defaultProbePath       = "/mnt/netfs/foo"
	defaultRandomWriteSize = 100
	defaultFallbackBound   = 1 << 30
	defaultMultiWriteSize  = 4096
	defaultOffsetPolicy    = "fresh"
)

// Settings are the configurable defaults of the diagnostic programs. Command
// line arguments take precedence over these.
type Settings struct {
	ProbePath       string
	RandomWriteSize int
	FallbackBound   int64
	MultiWriteSize  int
	OffsetPolicy    string
}

// DefaultSettings returns a pointer to new [Settings] holding the defaults.
func DefaultSettings() *Settings {
	return &Settings{
		ProbePath:       defaultProbePath,
		RandomWriteSize: defaultRandomWriteSize,
		FallbackBound:   defaultFallbackBound,
		MultiWriteSize:  defaultMultiWriteSize,
		OffsetPolicy:    defaultOffsetPolicy,
	}
}

// Load returns the [Settings] read from the given configuration file. Keys
// that are missing, or hold unparsable or non-positive numbers, keep their
// default values. A missing file is not an error.
func (c *Handler) Load(filename string) (*Settings, error) {
	settings := DefaultSettings()

	envMap, err := c.ReadGeneric(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("No configuration file, using defaults.", "path", filename)

			return settings, nil
		}

		return nil, fmt.Errorf("(config) failed to read %s: %w", filename, err)
	}

	if v := c.MapKeyToString(envMap, SettingProbePath); v != "" {
		settings.ProbePath = v
	}

	if v := c.MapKeyToInt64(envMap, SettingRandomWriteSize); v > 0 {
		settings.RandomWriteSize = int(v)
	}

	if v := c.MapKeyToInt64(envMap, SettingFallbackBound); v > 0 {
		settings.FallbackBound = v
	}

	if v := c.MapKeyToInt64(envMap, SettingMultiWriteSize); v > 0 {
		settings.MultiWriteSize = int(v)
	}

	if v := c.MapKeyToString(envMap, SettingOffsetPolicy); v != "" {
		settings.OffsetPolicy = v
	}

	slog.Debug("Loaded configuration file.", "path", filename)

	return settings, nil
}
