package activities

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"mergington-activities/src/models"

	"gopkg.in/yaml.v3"
)

//go:embed activities.yaml
var defaultCatalogue []byte

type catalogue struct {
	Activities []models.Activity `yaml:"activities"`
}

// LoadSeed returns the catalogue at path, or the embedded Mergington
// catalogue when path is empty.
func LoadSeed(path string) ([]models.Activity, error) {
	if path == "" {
		return ParseSeed(defaultCatalogue)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read activities file: %w", err)
	}
	seed, err := ParseSeed(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return seed, nil
}

// ParseSeed decodes a YAML catalogue and checks each entry.
func ParseSeed(raw []byte) ([]models.Activity, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var c catalogue
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode activities: %w", err)
	}
	for i := range c.Activities {
		a := &c.Activities[i]
		a.Name = strings.TrimSpace(a.Name)
		if a.Name == "" {
			return nil, fmt.Errorf("activity #%d: name is required", i+1)
		}
		if a.MaxParticipants < 0 {
			return nil, fmt.Errorf("activity %q: max_participants must not be negative", a.Name)
		}
		if a.Participants == nil {
			a.Participants = []string{}
		}
	}
	if len(c.Activities) == 0 {
		return nil, errors.New("no activities defined")
	}
	return c.Activities, nil
}

// NewSeededRegistry loads the catalogue at path and builds a registry from it.
func NewSeededRegistry(path string) (*Registry, error) {
	seed, err := LoadSeed(path)
	if err != nil {
		return nil, err
	}
	return NewRegistry(seed)
}
