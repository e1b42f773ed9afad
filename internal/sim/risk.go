package sim

import "sort"

// RiskType enumerates the risk dimensions. The enumeration order doubles as
// the tie-break when factors share a severity.
type RiskType int

const (
	RiskAltitudeSickness RiskType = iota
	RiskWeather
	RiskEquipment
	RiskFatigue
	RiskDehydration
	RiskHypothermia
)

func (t RiskType) String() string {
	switch t {
	case RiskAltitudeSickness:
		return "altitude sickness"
	case RiskWeather:
		return "weather"
	case RiskEquipment:
		return "equipment"
	case RiskFatigue:
		return "fatigue"
	case RiskDehydration:
		return "dehydration"
	case RiskHypothermia:
		return "hypothermia"
	default:
		return "unknown"
	}
}

// RiskFactor is an active danger with a mitigation hint. Factors are
// recomputed every tick and never persisted across ticks.
type RiskFactor struct {
	Type        RiskType `json:"type"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
	Mitigation  string   `json:"mitigation"`
}

type TipCategory string

const (
	TipAltitude  TipCategory = "altitude"
	TipWeather   TipCategory = "weather"
	TipEquipment TipCategory = "equipment"
	TipHealth    TipCategory = "health"
	TipTechnique TipCategory = "technique"
	TipSafety    TipCategory = "safety"
)

type ClimbingTip struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Category    TipCategory `json:"category"`
}

type riskInput struct {
	Health    HealthStatus
	Weather   WeatherCondition
	Equipment []EquipmentItem
	Acclim    AcclimatizationStatus
	Altitude  float64
}

// evaluateRisks applies the rule table: each dimension contributes at most
// one factor; output is sorted by severity descending, then type order.
func evaluateRisks(in riskInput) []RiskFactor {
	var factors []RiskFactor

	if sev := in.Health.AltitudeSicknessSeverity; sev > 0 {
		factors = append(factors, RiskFactor{
			Type:        RiskAltitudeSickness,
			Severity:    Severity(sev),
			Description: "Altitude sickness symptoms present.",
			Mitigation:  "Descend or rest until symptoms ease",
		})
	}

	if in.Weather.SafetyRisk >= SeverityHigh {
		factors = append(factors, RiskFactor{
			Type:        RiskWeather,
			Severity:    in.Weather.SafetyRisk,
			Description: "Dangerous weather conditions.",
			Mitigation:  "Wait for better weather, seek shelter",
		})
	}

	if worn := wornEquipment(in.Equipment); len(worn) > 0 {
		sev := SeverityModerate
		for _, item := range worn {
			if item.Durability == 0 {
				sev = SeverityHigh
				break
			}
		}
		factors = append(factors, RiskFactor{
			Type:        RiskEquipment,
			Severity:    sev,
			Description: "Equipment wear detected. Safety compromised.",
			Mitigation:  "Repair or replace worn equipment before continuing",
		})
	}

	if in.Health.FatigueLevel > 0.7 {
		sev := SeverityHigh
		if in.Health.FatigueLevel < 0.85 {
			sev = SeverityModerate
		}
		factors = append(factors, RiskFactor{
			Type:        RiskFatigue,
			Severity:    sev,
			Description: "Severe fatigue. Risk of poor decision making.",
			Mitigation:  "Rest and recover before continuing",
		})
	}

	if in.Health.HydrationLevel < 0.3 {
		sev := SeverityHigh
		if in.Health.HydrationLevel >= 0.15 {
			sev = SeverityModerate
		}
		factors = append(factors, RiskFactor{
			Type:        RiskDehydration,
			Severity:    sev,
			Description: "Dehydration at altitude.",
			Mitigation:  "Hydrate now and reduce exertion",
		})
	}

	if in.Weather.Name == WeatherBlizzard ||
		(in.Altitude > sicknessAltitudeSerious && in.Health.NutritionLevel < 0.3) {
		sev := SeverityHigh
		if in.Weather.Name == WeatherBlizzard {
			sev = SeverityExtreme
		}
		factors = append(factors, RiskFactor{
			Type:        RiskHypothermia,
			Severity:    sev,
			Description: "Conditions favor hypothermia.",
			Mitigation:  "Layer up, shelter, take in warm food",
		})
	}

	sort.SliceStable(factors, func(i, j int) bool {
		if factors[i].Severity != factors[j].Severity {
			return factors[i].Severity > factors[j].Severity
		}
		return factors[i].Type < factors[j].Type
	})
	return factors
}

// climbingTips is the parallel advisory list. Tips are preventive and do not
// require an active risk factor on the same dimension.
func climbingTips(in riskInput) []ClimbingTip {
	tips := zoneTips(ZoneForAltitude(in.Altitude))

	if in.Altitude > 3000 {
		tips = append(tips, ClimbingTip{
			Title:       "High Altitude Climbing",
			Description: "Above 3000m, climb high and sleep low. Take rest days every 3-4 days.",
			Category:    TipAltitude,
		})
	}

	if in.Weather.Name == WeatherStorm || in.Weather.Name == WeatherBlizzard {
		tips = append(tips, ClimbingTip{
			Title:       "Storm Safety",
			Description: "Stay in shelter during storms. Wind and cold can be deadly.",
			Category:    TipWeather,
		})
	}

	for _, item := range in.Equipment {
		if float64(item.Durability)/equipmentMaxDurability < 0.7 {
			tips = append(tips, ClimbingTip{
				Title:       "Equipment Maintenance",
				Description: "Check your equipment regularly. Damaged gear fails when you need it most.",
				Category:    TipEquipment,
			})
			break
		}
	}

	if in.Health.HydrationLevel < 0.7 {
		tips = append(tips, ClimbingTip{
			Title:       "Stay Hydrated",
			Description: "Dehydration at altitude is dangerous. Drink 3-4 liters per day.",
			Category:    TipHealth,
		})
	}

	return tips
}

func zoneTips(zone Zone) []ClimbingTip {
	switch zone {
	case ZoneRainforest:
		return []ClimbingTip{
			{Title: "Rainforest Navigation", Description: "Dense vegetation makes navigation challenging. Watch for wildlife.", Category: TipTechnique},
			{Title: "High Humidity", Description: "High humidity causes rapid dehydration. Keep drinking.", Category: TipHealth},
		}
	case ZoneMoorland:
		return []ClimbingTip{
			{Title: "Moorland Weather", Description: "Weather changes fast here. Be ready for sudden temperature drops.", Category: TipWeather},
			{Title: "Wind Exposure", Description: "Moorland offers little shelter. Layer clothing, protect exposed skin.", Category: TipSafety},
		}
	case ZoneAlpineDesert:
		return []ClimbingTip{
			{Title: "Alpine Desert Conditions", Description: "Extreme day/night temperature swings and intense UV. Cover up.", Category: TipSafety},
			{Title: "Altitude Management", Description: "High altitude territory. Monitor for sickness symptoms carefully.", Category: TipAltitude},
		}
	default:
		return []ClimbingTip{
			{Title: "Death Zone", Description: "Limit time at extreme altitude and consider supplemental oxygen.", Category: TipSafety},
			{Title: "Extreme Cold", Description: "Temperatures can drop to -40°C. Gear must be rated for it.", Category: TipEquipment},
		}
	}
}
