// Package catalog holds the authored mountain content: the built-in roster
// plus YAML-authored custom mountains.
package catalog

import (
	"strings"

	"github.com/google/uuid"

	"github.com/summitworks/expedition/internal/sim"
)

// namespace anchors the deterministic v5 IDs so the same mountain resolves
// to the same UUID across processes and saved expeditions.
var namespace = uuid.MustParse("9f2c7d36-5a1e-4b8b-9c16-8e1a2cb6d9f4")

func mountainID(name string) uuid.UUID {
	return uuid.NewSHA1(namespace, []byte(strings.ToLower(name)))
}

func campID(mountain uuid.UUID, name string) uuid.UUID {
	return uuid.NewSHA1(mountain, []byte(strings.ToLower(name)))
}

func camp(mountain uuid.UUID, name string, altitude float64, steps int, elevation float64, description string, base, summit bool) sim.Camp {
	return sim.Camp{
		ID:                campID(mountain, name),
		Name:              name,
		Altitude:          altitude,
		StepsRequired:     steps,
		ElevationRequired: elevation,
		Description:       description,
		IsBaseCamp:        base,
		IsSummit:          summit,
	}
}

func kilimanjaro() sim.Mountain {
	id := mountainID("Mount Kilimanjaro")
	return sim.Mountain{
		ID:                   id,
		Name:                 "Mount Kilimanjaro",
		Location:             "Tanzania, Africa",
		Height:               5895,
		Difficulty:           sim.DifficultyIntermediate,
		DifficultyMultiplier: 8.0,
		EstimatedDays:        7,
		Description:          "The highest peak in Africa and the highest free-standing mountain in the world.",
		Camps: []sim.Camp{
			camp(id, "Base Camp", 1828, 0, 0, "Starting point of the Kilimanjaro expedition", true, false),
			camp(id, "Camp 1 - Mandara", 2700, 25000, 500, "First camp through the rainforest", false, false),
			camp(id, "Camp 2 - Horombo", 3720, 75000, 1200, "High altitude moorland camp", false, false),
			camp(id, "Camp 3 - Kibo", 4700, 150000, 2000, "Base camp for the summit attempt", false, false),
			camp(id, "Uhuru Peak", 5895, 283752, 4067, "The summit of Mount Kilimanjaro", false, true),
		},
		EquipmentRequired: []string{"Climbing Helmet", "Climbing Rope"},
		Hazards:           []string{"Altitude Sickness", "Frostbite"},
	}
}

func fuji() sim.Mountain {
	id := mountainID("Mount Fuji")
	return sim.Mountain{
		ID:                   id,
		Name:                 "Mount Fuji",
		Location:             "Japan, Asia",
		Height:               3776,
		Difficulty:           sim.DifficultyBeginner,
		DifficultyMultiplier: 3.0,
		EstimatedDays:        1,
		Description:          "Japan's most iconic mountain, a popular hike on well-maintained trails.",
		Camps: []sim.Camp{
			camp(id, "Base Camp", 2305, 0, 0, "Starting point of the Fuji expedition", true, false),
			camp(id, "Station 5", 2390, 2000, 200, "First station on the mountain", false, false),
			camp(id, "Station 8", 3100, 6000, 500, "High altitude station", false, false),
			camp(id, "Summit", 3776, 9413, 1471, "The summit of Mount Fuji", false, true),
		},
	}
}

func rainier() sim.Mountain {
	id := mountainID("Mount Rainier")
	return sim.Mountain{
		ID:                   id,
		Name:                 "Mount Rainier",
		Location:             "Washington, USA",
		Height:               4392,
		Difficulty:           sim.DifficultyIntermediate,
		DifficultyMultiplier: 12.0,
		EstimatedDays:        3,
		Description:          "The most glaciated peak in the contiguous United States.",
		Camps: []sim.Camp{
			camp(id, "Base Camp", 1500, 0, 0, "Starting point of the Rainier expedition", true, false),
			camp(id, "Camp Muir", 3000, 40000, 400, "High camp on the mountain", false, false),
			camp(id, "Summit", 4392, 125112, 2892, "The summit of Mount Rainier", false, true),
		},
		EquipmentRequired: []string{"Ice Axe", "Crampons", "Climbing Helmet", "Climbing Rope"},
		Hazards:           []string{"Crevasses", "Avalanches", "Altitude Sickness"},
	}
}

func everest() sim.Mountain {
	id := mountainID("Mount Everest")
	return sim.Mountain{
		ID:                   id,
		Name:                 "Mount Everest",
		Location:             "Nepal/Tibet, Asia",
		Height:               8848,
		Difficulty:           sim.DifficultyExpert,
		DifficultyMultiplier: 25.0,
		EstimatedDays:        35,
		Description:          "The world's highest peak and ultimate mountaineering challenge.",
		Camps: []sim.Camp{
			camp(id, "Base Camp", 5364, 0, 0, "Everest Base Camp, the starting point", true, false),
			camp(id, "Camp 1", 6065, 500000, 800, "First high camp on the mountain", false, false),
			camp(id, "Camp 2", 6400, 1000000, 1500, "Advanced base camp", false, false),
			camp(id, "Camp 3", 7200, 1800000, 2500, "High altitude camp", false, false),
			camp(id, "Camp 4", 8000, 2800000, 3400, "South Col, the final camp", false, false),
			camp(id, "Summit", 8848, 3399000, 3484, "The summit of Mount Everest", false, true),
		},
		EquipmentRequired: []string{"Ice Axe", "Crampons", "Climbing Helmet", "Climbing Rope"},
		Hazards:           []string{"Altitude Sickness", "Avalanches", "Crevasses", "Frostbite"},
	}
}

func montBlanc() sim.Mountain {
	id := mountainID("Mont Blanc")
	return sim.Mountain{
		ID:                   id,
		Name:                 "Mont Blanc",
		Location:             "France/Italy, Europe",
		Height:               4808,
		Difficulty:           sim.DifficultyAdvanced,
		DifficultyMultiplier: 15.0,
		EstimatedDays:        5,
		Description:          "The highest peak in the Alps and Western Europe.",
		Camps: []sim.Camp{
			camp(id, "Base Camp", 1000, 0, 0, "Starting point of the Mont Blanc expedition", true, false),
			camp(id, "Refuge du Goûter", 3000, 80000, 500, "High altitude refuge", false, false),
			camp(id, "Summit", 4808, 200000, 3808, "The summit of Mont Blanc", false, true),
		},
		EquipmentRequired: []string{"Ice Axe", "Crampons", "Climbing Helmet", "Climbing Rope"},
		Hazards:           []string{"Altitude Sickness", "Avalanches", "Rockfall"},
	}
}

func elCapitan() sim.Mountain {
	id := mountainID("El Capitan")
	return sim.Mountain{
		ID:                   id,
		Name:                 "El Capitan",
		Location:             "Yosemite, USA",
		Height:               2121,
		Difficulty:           sim.DifficultyExpert,
		DifficultyMultiplier: 15.0,
		EstimatedDays:        4,
		Description:          "The legendary granite monolith in Yosemite Valley.",
		Camps: []sim.Camp{
			camp(id, "Base", 1207, 0, 0, "Base of El Capitan", true, false),
			camp(id, "Pitch 10", 1400, 15000, 200, "First major pitch", false, false),
			camp(id, "Pitch 20", 1600, 30000, 400, "Halfway up the wall", false, false),
			camp(id, "Pitch 30", 1800, 50000, 600, "Near the top", false, false),
			camp(id, "Summit", 2121, 66840, 914, "Top of El Capitan", false, true),
		},
		EquipmentRequired: []string{"Climbing Rope", "Climbing Helmet"},
		Hazards:           []string{"Rockfall"},
	}
}

// BuiltIn returns the authored mountain roster.
func BuiltIn() []sim.Mountain {
	return []sim.Mountain{
		kilimanjaro(),
		fuji(),
		rainier(),
		everest(),
		montBlanc(),
		elCapitan(),
	}
}
