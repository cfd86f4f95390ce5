package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
)

// meterMargin reserves room at the right edge for the numeric readout.
const meterMargin = 12

var (
	rmsStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	peakStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	clipStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// DrawMeter renders a horizontal level bar: an RMS segment from the left,
// the peak segment continuing past it, and a numeric peak readout on the
// right. The peak segment turns red at the clip threshold. The bar row is
// cleared first so a shrinking level never leaves stale fill behind.
func DrawMeter(r *Region, peak, rms, clipAt float64) {
	r.Text(0, 0, "PEAK METER", titleStyle)

	bw := r.Width() - meterMargin
	if bw < 1 {
		return
	}

	for x := 0; x < bw; x++ {
		r.Set(x, 1, ' ', tcell.StyleDefault)
	}

	rmsW := int(math.Round(clamp(rms, 0, 1) * float64(bw)))
	for x := 0; x < rmsW; x++ {
		r.Set(x, 1, '█', rmsStyle)
	}

	peakW := int(math.Round(clamp(peak, 0, 1) * float64(bw)))
	segStyle := peakStyle
	if peak >= clipAt {
		segStyle = clipStyle
	}
	for x := rmsW; x < peakW; x++ {
		r.Set(x, 1, '█', segStyle)
	}

	// The readout doubles as the clip marker: when RMS reaches the peak the
	// hot segment has zero width, so color alone would never show clipping.
	readoutStyle := titleStyle
	if peak >= clipAt {
		readoutStyle = clipStyle
	}
	readout := fmt.Sprintf("PEAK: %.2f", peak)
	r.Text(r.Width()-len(readout), 1, readout, readoutStyle)
}
