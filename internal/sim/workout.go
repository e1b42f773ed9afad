package sim

import (
	"fmt"
	"time"
)

type WorkoutType string

const (
	WorkoutWalking  WorkoutType = "walking"
	WorkoutRunning  WorkoutType = "running"
	WorkoutCycling  WorkoutType = "cycling"
	WorkoutHiking   WorkoutType = "hiking"
	WorkoutClimbing WorkoutType = "climbing"
	WorkoutGym      WorkoutType = "gym"
	WorkoutOther    WorkoutType = "other"
)

// Multiplier is the elevation credit factor for a workout type. Climbing and
// hiking translate most directly into virtual ascent.
func (t WorkoutType) Multiplier() float64 {
	switch t {
	case WorkoutRunning:
		return 1.5
	case WorkoutCycling:
		return 1.2
	case WorkoutHiking:
		return 2.0
	case WorkoutClimbing:
		return 3.0
	case WorkoutGym:
		return 1.3
	case WorkoutWalking, WorkoutOther:
		return 1.0
	default:
		return 1.0
	}
}

func (t WorkoutType) valid() bool {
	switch t {
	case WorkoutWalking, WorkoutRunning, WorkoutCycling, WorkoutHiking, WorkoutClimbing, WorkoutGym, WorkoutOther:
		return true
	default:
		return false
	}
}

// WorkoutData is one logged session supplied by the health-data collaborator.
type WorkoutData struct {
	Type      WorkoutType   `json:"type"`
	Duration  time.Duration `json:"duration"`
	Distance  float64       `json:"distance,omitempty"`
	Elevation float64       `json:"elevation,omitempty"`
	Calories  float64       `json:"calories,omitempty"`
	StartedAt time.Time     `json:"started_at"`
}

func (w WorkoutData) Validate() error {
	if !w.Type.valid() {
		return fmt.Errorf("%w: unknown workout type %q", ErrInvalidInput, w.Type)
	}
	if w.Duration < 0 {
		return fmt.Errorf("%w: negative workout duration", ErrInvalidInput)
	}
	if w.Distance < 0 || w.Elevation < 0 || w.Calories < 0 {
		return fmt.Errorf("%w: negative workout measurement", ErrInvalidInput)
	}
	return nil
}

// dayWorkoutMultiplier picks the strongest elevation factor logged on the day.
func dayWorkoutMultiplier(workouts []WorkoutData) float64 {
	best := 1.0
	for _, w := range workouts {
		if m := w.Type.Multiplier(); m > best {
			best = m
		}
	}
	return best
}
