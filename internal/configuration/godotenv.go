package configuration

import (
	"fmt"

	"github.com/joho/godotenv"
)

// GodotenvProvider reads settings files through the godotenv parser.
type GodotenvProvider struct{}

// Read parses KEY=VALUE settings files into a map (map[key]value).
func (*GodotenvProvider) Read(filenames ...string) (map[string]string, error) {
	data, err := godotenv.Read(filenames...)
	if err != nil {
		return data, fmt.Errorf("(config) %w", err)
	}

	return data, nil
}
