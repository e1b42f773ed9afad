package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/summitworks/expedition/internal/sim"
)

// Catalog resolves mountains by name across the built-in roster and any
// loaded custom mountains.
type Catalog struct {
	mountains []sim.Mountain
}

func New(extra ...sim.Mountain) *Catalog {
	return &Catalog{mountains: append(BuiltIn(), extra...)}
}

func (c *Catalog) Mountains() []sim.Mountain {
	return append([]sim.Mountain(nil), c.mountains...)
}

// Find resolves a mountain by name, case-insensitively and accepting any
// unambiguous substring ("kili" finds Mount Kilimanjaro).
func (c *Catalog) Find(name string) (sim.Mountain, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return sim.Mountain{}, false
	}

	for _, m := range c.mountains {
		if strings.ToLower(m.Name) == needle {
			return m, true
		}
	}

	var matches []sim.Mountain
	for _, m := range c.mountains {
		if strings.Contains(strings.ToLower(m.Name), needle) {
			matches = append(matches, m)
		}
	}
	if len(matches) == 1 {
		return matches[0], true
	}
	return sim.Mountain{}, false
}

// Suggest ranks catalog names by edit distance to the misspelled input.
func (c *Catalog) Suggest(name string, limit int) []string {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" || limit <= 0 {
		return nil
	}

	type scored struct {
		name string
		dist int
	}
	candidates := make([]scored, 0, len(c.mountains))
	for _, m := range c.mountains {
		dist := levenshtein.ComputeDistance(needle, strings.ToLower(m.Name))
		candidates = append(candidates, scored{name: m.Name, dist: dist})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})

	if limit > len(candidates) {
		limit = len(candidates)
	}
	out := make([]string, 0, limit)
	for _, cand := range candidates[:limit] {
		out = append(out, cand.name)
	}
	return out
}

// Resolve is Find with a helpful error carrying suggestions.
func (c *Catalog) Resolve(name string) (sim.Mountain, error) {
	if m, ok := c.Find(name); ok {
		return m, nil
	}
	suggestions := c.Suggest(name, 2)
	if len(suggestions) > 0 {
		return sim.Mountain{}, fmt.Errorf("mountain not found: %q (did you mean %s?)", name, strings.Join(suggestions, " or "))
	}
	return sim.Mountain{}, fmt.Errorf("mountain not found: %q", name)
}
