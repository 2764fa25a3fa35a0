// Package configuration provides reading of Unix-type (env) configuration
// files and the settings of the diagnostic programs derived from them.
package configuration

import (
	"strconv"
)

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// Handler is the principal implementation for reading configuration files.
type Handler struct {
	genericHandler genericConfigProvider
}

// NewHandler returns a pointer to a new [Handler].
func NewHandler(genericHandler genericConfigProvider) *Handler {
	return &Handler{
		genericHandler: genericHandler,
	}
}

// ReadGeneric reads generic Unix-type configuration files into a map.
func (c *Handler) ReadGeneric(filenames ...string) (map[string]string, error) {
	return c.genericHandler.Read(filenames...)
}

// MapKeyToString returns the value of a key, or an empty string if the key
// does not exist.
func (c *Handler) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return value
	}

	return ""
}

// MapKeyToInt64 returns the value of a key as an int64, or -1 if the key does
// not exist or its value cannot be parsed.
func (c *Handler) MapKeyToInt64(envMap map[string]string, key string) int64 {
	value := c.MapKeyToString(envMap, key)
	if value == "" {
		return -1
	}
	intValue, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return -1
	}

	return intValue
}
