package sim

import "math"

// EquipmentItem wears down over exposure; durability only recovers through
// repair/replace flows owned by the caller.
type EquipmentItem struct {
	Name       string `json:"name"`
	Durability int    `json:"durability"` // 0-100
}

const (
	equipmentMaxDurability = 100

	// equipmentWarnRatio is the durability ratio at or below which an item
	// raises an equipment risk factor.
	equipmentWarnRatio = 0.2
)

// DefaultEquipment is the standard issue set for a fresh expedition.
func DefaultEquipment() []EquipmentItem {
	return []EquipmentItem{
		{Name: "Ice Axe", Durability: equipmentMaxDurability},
		{Name: "Crampons", Durability: equipmentMaxDurability},
		{Name: "Climbing Helmet", Durability: equipmentMaxDurability},
		{Name: "Climbing Rope", Durability: equipmentMaxDurability},
	}
}

// decayEquipment wears each item by a base rate scaled by weather severity
// and exertion, floored at zero.
func decayEquipment(items []EquipmentItem, weather WeatherCondition, exertion float64) []EquipmentItem {
	severityMult := 1.0 + 0.5*float64(weather.SafetyRisk)
	exertionMult := 1.0 + clampFloat(exertion, 0, 1)

	out := make([]EquipmentItem, len(items))
	for i, item := range items {
		loss := int(math.Round(1.0 * severityMult * exertionMult))
		if loss < 1 {
			loss = 1
		}
		item.Durability = clamp(item.Durability-loss, 0, equipmentMaxDurability)
		out[i] = item
	}
	return out
}

// equipmentImpact maps the worst durability ratio among the items relevant
// to the mountain into (0,1]. Fully broken gear still leaves a floor so
// progress slows rather than stops.
func equipmentImpact(items []EquipmentItem, required []string) float64 {
	relevant := relevantEquipment(items, required)
	if len(relevant) == 0 {
		return 1.0
	}

	minRatio := 1.0
	for _, item := range relevant {
		ratio := float64(item.Durability) / equipmentMaxDurability
		if ratio < minRatio {
			minRatio = ratio
		}
	}

	switch {
	case minRatio >= 0.75:
		return 1.0
	case minRatio >= 0.5:
		return 0.95
	case minRatio >= equipmentWarnRatio:
		return 0.9
	case minRatio > 0:
		return 0.8
	default:
		return 0.7
	}
}

// relevantEquipment filters the carried set down to the mountain's required
// items. A mountain with no requirements counts everything carried.
func relevantEquipment(items []EquipmentItem, required []string) []EquipmentItem {
	if len(required) == 0 {
		return items
	}
	need := make(map[string]bool, len(required))
	for _, name := range required {
		need[name] = true
	}
	out := make([]EquipmentItem, 0, len(items))
	for _, item := range items {
		if need[item.Name] {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return items
	}
	return out
}

// wornEquipment lists items at or below the warning ratio.
func wornEquipment(items []EquipmentItem) []EquipmentItem {
	var out []EquipmentItem
	for _, item := range items {
		if float64(item.Durability)/equipmentMaxDurability <= equipmentWarnRatio {
			out = append(out, item)
		}
	}
	return out
}
