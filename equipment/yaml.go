package equipment

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk layout of a YAML equipment catalog.
type catalogFile struct {
	Equipment []entry `yaml:"equipment"`
}

type entry struct {
	ID        int    `yaml:"id"`
	Name      string `yaml:"name"`
	Class     string `yaml:"class"`
	MovMethod string `yaml:"movMethod"`
	MovPoints int    `yaml:"movPoints"`
	Ammo      int    `yaml:"ammo"`
	Fuel      int    `yaml:"fuel"`
	Icon      string `yaml:"icon"`
}

// LoadYAML reads an equipment catalog from a YAML file.
func LoadYAML(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	t, err := DecodeYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// DecodeYAML parses a YAML equipment catalog.
func DecodeYAML(r io.Reader) (Table, error) {
	var file catalogFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	t := make(Table, len(file.Equipment))
	for _, e := range file.Equipment {
		if e.ID <= 0 {
			return nil, fmt.Errorf("equipment %q: id must be positive, got %d", e.Name, e.ID)
		}
		if _, dup := t[e.ID]; dup {
			return nil, fmt.Errorf("duplicate equipment id %d", e.ID)
		}
		s, err := e.stats()
		if err != nil {
			return nil, fmt.Errorf("equipment %d: %w", e.ID, err)
		}
		t[e.ID] = s
	}
	return t, nil
}

func (e entry) stats() (Stats, error) {
	class := NoClass
	if e.Class != "" {
		c, err := ParseUnitClass(e.Class)
		if err != nil {
			return Stats{}, err
		}
		class = c
	}
	method := Tracked
	if e.MovMethod != "" {
		m, err := ParseMoveMethod(e.MovMethod)
		if err != nil {
			return Stats{}, err
		}
		method = m
	}
	return Stats{
		ID:         e.ID,
		Name:       e.Name,
		Class:      class,
		MoveMethod: method,
		MovPoints:  e.MovPoints,
		Ammo:       e.Ammo,
		Fuel:       e.Fuel,
		Icon:       e.Icon,
	}, nil
}
