package main

import "math"

// gradient orders glyphs from sparse to dense; index scales with intensity.
var gradient = []rune(" .:-=+*#%@")

// glyphFor maps an intensity in [0,1] to a gradient glyph. Callers clamp
// before calling; out-of-range intensities index out of the table.
func glyphFor(intensity float64) rune {
	return gradient[int(math.Round(intensity*float64(len(gradient)-1)))]
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
