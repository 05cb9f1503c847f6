package config

import (
	"sort"

	"github.com/san-kum/sortviz/internal/arraygen"
)

// Preset is a named input arrangement paired with the algorithm it shows
// off best.
type Preset struct {
	Algorithm string
	Shape     arraygen.Shape
	Size      int
	Note      string
}

var Presets = map[string]Preset{
	"best-case": {
		Algorithm: "insertion", Shape: arraygen.ShapeSorted, Size: 8,
		Note: "sorted input: insertion sort only takes keys",
	},
	"worst-case": {
		Algorithm: "bubble", Shape: arraygen.ShapeReversed, Size: 8,
		Note: "reversed input: every comparison swaps",
	},
	"duplicates": {
		Algorithm: "selection", Shape: arraygen.ShapeDuplicates, Size: 8,
		Note: "repeated values never swap with each other",
	},
	"few-unique": {
		Algorithm: "insertion", Shape: arraygen.ShapeFewUnique, Size: 10,
		Note: "three distinct values",
	},
	"tiny": {
		Algorithm: "bubble", Shape: arraygen.ShapeRandom, Size: 5,
		Note: "smallest generated array",
	},
}

func GetPreset(name string) *Preset {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return &p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply copies the preset's arrangement into c.
func (p *Preset) Apply(c *Config) {
	c.Algorithm = p.Algorithm
	c.Shape = string(p.Shape)
	c.Size = p.Size
}
