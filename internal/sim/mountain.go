package sim

import (
	"fmt"

	"github.com/google/uuid"
)

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
	DifficultyExpert       Difficulty = "expert"
)

// Camp is a waypoint gating progress behind dual step/elevation thresholds.
type Camp struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Altitude          float64   `json:"altitude"`
	StepsRequired     int       `json:"steps_required"`
	ElevationRequired float64   `json:"elevation_required"`
	Description       string    `json:"description,omitempty"`
	IsBaseCamp        bool      `json:"is_base_camp"`
	IsSummit          bool      `json:"is_summit"`
}

// Mountain is immutable authored content: an ordered camp sequence plus the
// tuning data the simulation reads (difficulty, required equipment).
type Mountain struct {
	ID                   uuid.UUID  `json:"id"`
	Name                 string     `json:"name"`
	Location             string     `json:"location,omitempty"`
	Height               float64    `json:"height"`
	Difficulty           Difficulty `json:"difficulty"`
	DifficultyMultiplier float64    `json:"difficulty_multiplier"`
	EstimatedDays        int        `json:"estimated_days,omitempty"`
	Description          string     `json:"description,omitempty"`
	Camps                []Camp     `json:"camps"`
	EquipmentRequired    []string   `json:"equipment_required,omitempty"`
	Hazards              []string   `json:"hazards,omitempty"`
}

// Validate rejects mountains whose camps would make advancement undefined:
// thresholds must rise monotonically, the first camp is the only base camp
// and the last camp is the only summit.
func (m Mountain) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("%w: mountain name is empty", ErrInvalidMountain)
	}
	if len(m.Camps) < 2 {
		return fmt.Errorf("%w: need at least a base camp and a summit, got %d camps", ErrInvalidMountain, len(m.Camps))
	}
	if m.Height <= 0 {
		return fmt.Errorf("%w: non-positive height", ErrInvalidMountain)
	}
	for i, camp := range m.Camps {
		if camp.StepsRequired < 0 || camp.ElevationRequired < 0 || camp.Altitude < 0 {
			return fmt.Errorf("%w: camp %q has a negative threshold", ErrInvalidMountain, camp.Name)
		}
		if i == 0 {
			if !camp.IsBaseCamp {
				return fmt.Errorf("%w: first camp %q must be the base camp", ErrInvalidMountain, camp.Name)
			}
			continue
		}
		if camp.IsBaseCamp {
			return fmt.Errorf("%w: camp %q duplicates the base camp", ErrInvalidMountain, camp.Name)
		}
		prev := m.Camps[i-1]
		if camp.StepsRequired <= prev.StepsRequired {
			return fmt.Errorf("%w: camp %q steps threshold %d does not exceed %q (%d)",
				ErrInvalidMountain, camp.Name, camp.StepsRequired, prev.Name, prev.StepsRequired)
		}
		if camp.ElevationRequired < prev.ElevationRequired {
			return fmt.Errorf("%w: camp %q elevation threshold regresses", ErrInvalidMountain, camp.Name)
		}
	}
	for i, camp := range m.Camps {
		if camp.IsSummit != (i == len(m.Camps)-1) {
			return fmt.Errorf("%w: summit flag must be set on the last camp only", ErrInvalidMountain)
		}
	}
	return nil
}

func (m Mountain) BaseCamp() Camp {
	return m.Camps[0]
}

func (m Mountain) SummitCamp() Camp {
	return m.Camps[len(m.Camps)-1]
}

func (m Mountain) CampByID(id uuid.UUID) (Camp, bool) {
	for _, camp := range m.Camps {
		if camp.ID == id {
			return camp, true
		}
	}
	return Camp{}, false
}

func (m Mountain) campIndex(id uuid.UUID) int {
	for i, camp := range m.Camps {
		if camp.ID == id {
			return i
		}
	}
	return -1
}

// NextCamp returns the first camp above the given one, if any.
func (m Mountain) NextCamp(current uuid.UUID) (Camp, bool) {
	idx := m.campIndex(current)
	if idx < 0 || idx+1 >= len(m.Camps) {
		return Camp{}, false
	}
	return m.Camps[idx+1], true
}
