package sim

import "testing"

func TestDecayEquipmentScalesWithConditions(t *testing.T) {
	clear := weatherConditions[WeatherClear]
	blizzard := weatherConditions[WeatherBlizzard]

	items := DefaultEquipment()

	calm := decayEquipment(items, clear, 0)
	if calm[0].Durability != 99 {
		t.Fatalf("calm day loss = %d, want 1", 100-calm[0].Durability)
	}

	// Extreme severity (3) and full effort: 1.0 * 2.5 * 2.0 rounds to 5.
	brutal := decayEquipment(items, blizzard, 1)
	if brutal[0].Durability != 95 {
		t.Fatalf("brutal day loss = %d, want 5", 100-brutal[0].Durability)
	}
}

func TestDecayEquipmentFloorsAtZero(t *testing.T) {
	items := []EquipmentItem{{Name: "Climbing Rope", Durability: 1}}
	for day := 0; day < 5; day++ {
		items = decayEquipment(items, weatherConditions[WeatherStorm], 1)
	}
	if items[0].Durability != 0 {
		t.Fatalf("durability = %d, want 0", items[0].Durability)
	}
}

func TestEquipmentImpactTiers(t *testing.T) {
	tests := []struct {
		name       string
		durability int
		want       float64
	}{
		{name: "fresh gear full speed", durability: 100, want: 1.0},
		{name: "above three quarters still full speed", durability: 75, want: 1.0},
		{name: "half worn", durability: 60, want: 0.95},
		{name: "well worn", durability: 30, want: 0.9},
		{name: "nearly broken", durability: 10, want: 0.8},
		{name: "broken gear still moves", durability: 0, want: 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := []EquipmentItem{{Name: "Crampons", Durability: tt.durability}}
			got := equipmentImpact(items, nil)
			if !almostEqual(got, tt.want) {
				t.Fatalf("impact = %.2f, want %.2f", got, tt.want)
			}
		})
	}
}

func TestEquipmentImpactUsesWorstRelevantItem(t *testing.T) {
	items := []EquipmentItem{
		{Name: "Ice Axe", Durability: 100},
		{Name: "Crampons", Durability: 10},
		{Name: "Snorkel", Durability: 0},
	}

	// Only the required set counts, so the broken snorkel is ignored but
	// the nearly-broken crampons drag the factor down.
	got := equipmentImpact(items, []string{"Ice Axe", "Crampons"})
	if !almostEqual(got, 0.8) {
		t.Fatalf("impact = %.2f, want 0.8", got)
	}

	// With no requirements everything carried counts.
	got = equipmentImpact(items, nil)
	if !almostEqual(got, 0.7) {
		t.Fatalf("unfiltered impact = %.2f, want 0.7", got)
	}
}

func TestWornEquipment(t *testing.T) {
	items := []EquipmentItem{
		{Name: "Ice Axe", Durability: 100},
		{Name: "Crampons", Durability: 20},
		{Name: "Climbing Rope", Durability: 0},
	}
	worn := wornEquipment(items)
	if len(worn) != 2 {
		t.Fatalf("worn count = %d, want 2", len(worn))
	}
	if worn[0].Name != "Crampons" || worn[1].Name != "Climbing Rope" {
		t.Fatalf("unexpected worn set: %+v", worn)
	}
}
