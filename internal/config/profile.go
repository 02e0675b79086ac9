package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is the body data a user can keep in a YAML file instead of passing
// flags every time. Zero fields mean "not provided".
type Profile struct {
	WeightKg        float64 `yaml:"weight_kg"`
	HeightM         float64 `yaml:"height_m"`
	Age             int     `yaml:"age"`
	Gender          string  `yaml:"gender"`
	ActivityLevel   string  `yaml:"activity_level"`
	ProteinActivity string  `yaml:"protein_activity"`
	WaterFactor     float64 `yaml:"water_factor"`
}

// LoadProfile decodes a profile file. Unknown keys are rejected so a typo like
// "wieght_kg" fails loudly instead of silently falling back to a flag default.
func LoadProfile(path string) (Profile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile %s: %w", path, err)
	}

	var p Profile
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Profile{}, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return p, nil
}
