// Package seed loads the static dataset behind the dashboard.
package seed

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/atomicstack/loandesk/internal/domain"
)

//go:embed seed.yaml
var defaultSeed []byte

// Default returns the embedded dataset.
func Default() (domain.Dataset, error) {
	ds, err := Decode(defaultSeed)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("decode embedded seed: %w", err)
	}
	return ds, nil
}

// Raw returns a copy of the embedded YAML document, a starting point for a
// --data file.
func Raw() []byte {
	return bytes.Clone(defaultSeed)
}

// LoadFile reads a dataset from path. An empty path yields the embedded seed.
func LoadFile(path string) (domain.Dataset, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("read dataset %s: %w", path, err)
	}
	ds, err := Decode(raw)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("decode dataset %s: %w", path, err)
	}
	return ds, nil
}

// Decode parses a YAML document. Unknown keys are rejected so typos in
// hand-edited files surface early.
func Decode(raw []byte) (domain.Dataset, error) {
	var ds domain.Dataset
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		return domain.Dataset{}, err
	}
	return ds, nil
}
