// Package ui renders the control panel: the water-level slider, the
// play/pause and reset hints, and the status readout. Pure slider geometry
// lives outside the ebiten build tag so it stays testable headless.
package ui

import "math"

// Quantize snaps a level to the slider step and clamps it to [min, max].
func Quantize(v, min, max, step float64) float64 {
	if step > 0 {
		v = math.Round(v/step) * step
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// LevelForX converts a cursor x position on the slider track to a level.
// x0 and x1 are the track's pixel endpoints.
func LevelForX(x, x0, x1 int, min, max, step float64) float64 {
	if x1 <= x0 {
		return min
	}
	f := float64(x-x0) / float64(x1-x0)
	return Quantize(min+f*(max-min), min, max, step)
}

// XForLevel converts a level back to a track pixel position.
func XForLevel(level float64, x0, x1 int, min, max float64) int {
	if max <= min {
		return x0
	}
	f := (level - min) / (max - min)
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return x0 + int(math.Round(f*float64(x1-x0)))
}
