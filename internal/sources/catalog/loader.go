// Package catalog loads the video catalog file that stands in for the
// external content pipeline. Videos arrive here read-only; favoriting
// never writes to the videos collection.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and parsing of catalog.yaml.
type Loader struct {
	filePath string
}

// NewLoader creates a catalog loader for the given file.
func NewLoader(filePath string) *Loader {
	return &Loader{filePath: filePath}
}

// Load reads and parses the catalog file.
func (l *Loader) Load() (Config, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("failed to parse catalog yaml: %w", err)
	}

	return config, nil
}
