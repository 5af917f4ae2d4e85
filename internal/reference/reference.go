package reference

import (
	"bytes"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wonny/threes/internal/contracts"
)

//go:embed reference.yaml
var defaultYAML []byte

// Data is the hand-curated reference table: which seasons to ingest and who won each.
// ⭐ SSOT: season list and champions are data, not pipeline code
type Data struct {
	Version   string                     `yaml:"version" json:"version"`
	Seasons   []string                   `yaml:"seasons" json:"seasons"`
	Champions []contracts.ChampionRecord `yaml:"champions" json:"champions"`
}

// Default returns the embedded reference data
func Default() (*Data, error) {
	data, err := decode(defaultYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded reference data: %w", err)
	}
	return data, nil
}

// Load reads a reference YAML file. An empty path yields the embedded data.
// Unknown fields fail the decode so typos never slip through.
func Load(path string) (*Data, error) {
	if path == "" {
		return Default()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reference file: %w", err)
	}

	data, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("reference file %s: %w", path, err)
	}
	return data, nil
}

func decode(raw []byte) (*Data, error) {
	var data Data
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&data); err != nil {
		return nil, err
	}

	if err := Validate(&data); err != nil {
		return nil, err
	}

	return &data, nil
}

// ChampionBySeason indexes champions by season label
func (d *Data) ChampionBySeason() map[string]string {
	m := make(map[string]string, len(d.Champions))
	for _, c := range d.Champions {
		m[c.Season] = c.ChampionTeam
	}
	return m
}

// Hash returns a stable SHA-256 of the reference data (canonical JSON of the struct)
func (d *Data) Hash() (string, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}
