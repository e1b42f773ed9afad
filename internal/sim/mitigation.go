package sim

import "math"

// Mitigation actions mutate physiology and acclimatization immediately, but
// each repeat inside the same tick window lands at half the previous
// strength so risk cannot be spammed away in one sitting.

func mitigationScale(callsSinceTick int) float64 {
	return math.Pow(0.5, float64(callsSinceTick))
}

// Rest trims fatigue by a bounded step and gives a minor hydration and
// nutrition assist.
func (e *Engine) Rest() error {
	if e.expedition == nil {
		return ErrNoActiveExpedition
	}
	scale := mitigationScale(e.restsSinceTick)
	e.restsSinceTick++

	e.health.FatigueLevel = clampFloat(e.health.FatigueLevel-0.25*scale, 0, 1)
	e.health.HydrationLevel = clampFloat(e.health.HydrationLevel+0.05*scale, 0, 1)
	e.health.NutritionLevel = clampFloat(e.health.NutritionLevel+0.05*scale, 0, 1)
	e.acclim.AltitudeSicknessRisk = clampFloat(e.acclim.AltitudeSicknessRisk-0.05*scale, 0, 1)

	e.evaluateState(e.CurrentAltitude())
	return nil
}

// Hydrate restores hydration toward full by a bounded step.
func (e *Engine) Hydrate() error {
	if e.expedition == nil {
		return ErrNoActiveExpedition
	}
	scale := mitigationScale(e.hydratesSinceTick)
	e.hydratesSinceTick++

	e.health.HydrationLevel = clampFloat(e.health.HydrationLevel+0.3*scale, 0, 1)

	e.evaluateState(e.CurrentAltitude())
	return nil
}

// Descend moves the climber one camp down and eases altitude sickness. The
// accumulated step and elevation totals are untouched; only position and
// physiology change.
func (e *Engine) Descend() error {
	if e.expedition == nil {
		return ErrNoActiveExpedition
	}
	scale := mitigationScale(e.descentsSinceTick)
	e.descentsSinceTick++

	idx := e.mountain.campIndex(e.expedition.CurrentCampID)
	if idx > 0 {
		e.expedition.CurrentCampID = e.mountain.Camps[idx-1].ID
	}

	// Severity steps down a full level only on the first descent of the
	// window; later calls just keep easing the tracked risk.
	if e.descentsSinceTick == 1 && e.health.AltitudeSicknessSeverity > 0 {
		e.health.AltitudeSicknessSeverity--
	}
	e.acclim.AltitudeSicknessRisk = clampFloat(e.acclim.AltitudeSicknessRisk-0.2*scale, 0, 1)

	e.evaluateState(e.CurrentAltitude())
	return nil
}
