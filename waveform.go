package main

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

var titleStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)

// DrawWaveform plots the block sample-per-column around the band's vertical
// center, denser glyphs for larger amplitudes. A nil block means silence and
// renders a placeholder instead.
func DrawWaveform(r *Region, block []float64) {
	r.Text(0, 0, "WAVEFORM", titleStyle)

	if block == nil {
		r.Text(0, 1, "No audio input", tcell.StyleDefault.Foreground(tcell.ColorYellow))
		return
	}

	body := r.Height() - 1
	if body < 1 {
		return
	}
	center := 1 + body/2
	swing := body/2 - 2
	if swing < 1 {
		swing = 1
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorAqua)
	for i := 0; i < len(block) && i < r.Width(); i++ {
		s := block[i]
		y := int(math.Round(float64(center) - s*float64(swing)))
		r.Set(i, y, glyphFor(clamp(math.Abs(s), 0, 1)), style)
	}
}
