package main

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// DrawSpectrum renders one vertical bar per bin, growing up from the band's
// baseline. Rows near the base use denser glyphs than rows near the tip.
func DrawSpectrum(r *Region, bins []float64) {
	r.Text(0, 0, "FREQUENCY SPECTRUM", titleStyle)

	body := r.Height() - 1
	if body < 1 {
		return
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	for i := 0; i < len(bins) && i < r.Width(); i++ {
		barH := int(math.Round(clamp(bins[i], 0, 1) * float64(body)))
		for j := 0; j < barH; j++ {
			gi := j * (len(gradient) - 1) / body
			if gi > len(gradient)-1 {
				gi = len(gradient) - 1
			}
			r.Set(i, 1+body-j-1, gradient[gi], style)
		}
	}
}
