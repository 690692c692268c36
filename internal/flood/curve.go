package flood

import "math"

// CurvePoint pairs a water level with the flooded fraction of known cells at
// that level.
type CurvePoint struct {
	Level    float64
	Fraction float64
}

// Curve sweeps the level range and reports the flooded-area fraction at each
// step, inclusive of both ends. Unknown cells are excluded from the
// denominator. The fractions are non-decreasing in level.
func Curve(cells []Cell, min, max, step float64) []CurvePoint {
	if step <= 0 || max < min {
		return nil
	}
	known := 0
	for _, c := range cells {
		if !math.IsNaN(c.Elevation) {
			known++
		}
	}

	var out []CurvePoint
	for level := min; ; level += step {
		if level > max {
			level = max
		}
		flooded := 0
		for _, c := range cells {
			if Evaluate(c.Elevation, level) == Flooded {
				flooded++
			}
		}
		frac := 0.0
		if known > 0 {
			frac = float64(flooded) / float64(known)
		}
		out = append(out, CurvePoint{Level: level, Fraction: frac})
		if level >= max {
			return out
		}
	}
}
