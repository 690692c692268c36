package flood

import "math"

// State classifies a cell against a water level.
type State uint8

const (
	Dry State = iota
	Flooded
	Unknown
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case Dry:
		return "dry"
	case Flooded:
		return "flooded"
	case Unknown:
		return "unknown"
	}
	return "invalid"
}

// SlabThickness is the cosmetic height of the rendered water surface. It has
// no bearing on classification.
const SlabThickness = 0.5

// Evaluate is the flood predicate: Unknown for missing samples, Flooded when
// the elevation is strictly below the level, Dry otherwise. A cell exactly at
// the water level stays dry.
func Evaluate(elev, level float64) State {
	if math.IsNaN(elev) {
		return Unknown
	}
	if elev < level {
		return Flooded
	}
	return Dry
}

// Extent returns the vertical slab rendered for a flooded cell at the given
// level.
func Extent(level float64) (low, high float64) {
	return level - SlabThickness, level
}
