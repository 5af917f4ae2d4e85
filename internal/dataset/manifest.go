package dataset

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wonny/threes/internal/contracts"
)

// Manifest sits next to the team stats file and records how to read it.
// Units makes the percentage scale explicit instead of guessing it from the data.
type Manifest struct {
	ReferenceVersion string                           `yaml:"reference_version"`
	ReferenceHash    string                           `yaml:"reference_hash"`
	Seasons          []string                         `yaml:"seasons"`
	Rows             int                              `yaml:"rows"`
	Units            map[string]contracts.PercentUnit `yaml:"units"`
}

// ManifestPath derives the manifest location from the stats file path
func ManifestPath(statsPath string) string {
	return strings.TrimSuffix(statsPath, filepath.Ext(statsPath)) + ".manifest.yaml"
}

// Unit returns the unit of column, defaulting to fraction (the stats API scale)
func (m *Manifest) Unit(column string) contracts.PercentUnit {
	if m == nil || m.Units[column] == "" {
		return contracts.UnitFraction
	}
	return m.Units[column]
}

// WriteManifest writes m as YAML. Output is deterministic: no timestamps.
func WriteManifest(path string, m *Manifest) error {
	return writeFileAtomic(path, func(w io.Writer) error {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return err
		}
		return enc.Close()
	})
}

// ReadManifest reads a manifest; (nil, nil) when the file does not exist
func ReadManifest(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	for col, u := range m.Units {
		if _, err := contracts.ParsePercentUnit(string(u)); err != nil {
			return nil, fmt.Errorf("%w: %s: unit of %s: %v", ErrMalformed, path, col, err)
		}
	}

	return &m, nil
}
