package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/summitworks/expedition/internal/sim"
)

// mountainFile is the YAML authoring schema for custom mountains.
type mountainFile struct {
	Mountains []mountainSpec `yaml:"mountains"`
}

type mountainSpec struct {
	Name                 string     `yaml:"name"`
	Location             string     `yaml:"location"`
	Height               float64    `yaml:"height"`
	Difficulty           string     `yaml:"difficulty"`
	DifficultyMultiplier float64    `yaml:"difficulty_multiplier"`
	EstimatedDays        int        `yaml:"estimated_days"`
	Description          string     `yaml:"description"`
	EquipmentRequired    []string   `yaml:"equipment_required"`
	Hazards              []string   `yaml:"hazards"`
	Camps                []campSpec `yaml:"camps"`
}

type campSpec struct {
	Name              string  `yaml:"name"`
	Altitude          float64 `yaml:"altitude"`
	StepsRequired     int     `yaml:"steps_required"`
	ElevationRequired float64 `yaml:"elevation_required"`
	Description       string  `yaml:"description"`
	BaseCamp          bool    `yaml:"base_camp"`
	Summit            bool    `yaml:"summit"`
}

// LoadFile parses custom mountains from a YAML file. Every mountain is
// validated before it is accepted into the catalog.
func LoadFile(path string) ([]sim.Mountain, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mountains file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) ([]sim.Mountain, error) {
	var file mountainFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse mountains file: %w", err)
	}

	out := make([]sim.Mountain, 0, len(file.Mountains))
	for _, spec := range file.Mountains {
		m, err := spec.toMountain()
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (spec mountainSpec) toMountain() (sim.Mountain, error) {
	id := mountainID(spec.Name)
	m := sim.Mountain{
		ID:                   id,
		Name:                 spec.Name,
		Location:             spec.Location,
		Height:               spec.Height,
		Difficulty:           sim.Difficulty(spec.Difficulty),
		DifficultyMultiplier: spec.DifficultyMultiplier,
		EstimatedDays:        spec.EstimatedDays,
		Description:          spec.Description,
		EquipmentRequired:    spec.EquipmentRequired,
		Hazards:              spec.Hazards,
	}
	for _, cs := range spec.Camps {
		m.Camps = append(m.Camps, camp(id, cs.Name, cs.Altitude, cs.StepsRequired, cs.ElevationRequired, cs.Description, cs.BaseCamp, cs.Summit))
	}
	if err := m.Validate(); err != nil {
		return sim.Mountain{}, fmt.Errorf("mountain %q: %w", spec.Name, err)
	}
	return m, nil
}
