package codebook

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlFile is the on-disk YAML form of a codebook.
type yamlFile struct {
	Version string       `yaml:"version,omitempty"`
	Columns []yamlColumn `yaml:"columns"`
}

type yamlColumn struct {
	Column string     `yaml:"column"`
	Rules  []yamlRule `yaml:"rules"`
}

type yamlRule struct {
	Old any `yaml:"old"`
	New any `yaml:"new"`
}

func (f *yamlFile) applyDefaults() {
	if f.Version == "" {
		f.Version = "1"
	}
}

// LoadFile loads a compiled codebook from a YAML document.
func LoadFile(path string) (*Codebook, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read codebook file %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse parses YAML data into a Codebook. Repeated column sections merge,
// and a repeated old value keeps its last occurrence, matching Compile.
func Parse(raw []byte) (*Codebook, error) {
	var f yamlFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse codebook YAML: %w", err)
	}
	f.applyDefaults()

	cb := New()
	for _, col := range f.Columns {
		for _, r := range col.Rules {
			if err := cb.Set(col.Column, r.Old, r.New); err != nil {
				return nil, fmt.Errorf("codebook column %q: %w", col.Column, err)
			}
		}
	}
	return cb, nil
}

// Marshal serializes a codebook to YAML, columns and rules in order.
func Marshal(cb *Codebook) ([]byte, error) {
	f := yamlFile{Version: "1"}
	for _, name := range cb.Columns() {
		col, _ := cb.Column(name)
		yc := yamlColumn{Column: name}
		for _, r := range col.Rules() {
			yc.Rules = append(yc.Rules, yamlRule{Old: r.Old, New: r.New})
		}
		f.Columns = append(f.Columns, yc)
	}

	raw, err := yaml.Marshal(&f)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal codebook: %w", err)
	}
	return raw, nil
}

// WriteFile writes a codebook to path as YAML.
func WriteFile(cb *Codebook, path string) error {
	raw, err := Marshal(cb)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write codebook file %s: %w", path, err)
	}
	return nil
}
