package main

// maxBins caps the spectrum resolution regardless of terminal width.
const maxBins = 100

type band struct {
	x, y, w, h int
}

type layout struct {
	waveform band
	spectrum band
	meter    band
}

// computeLayout partitions h rows into the three panel bands. The meter
// takes a fixed three rows at the bottom (title, bar, gap); the rest splits
// evenly between waveform and spectrum. Each band's first row is its title.
// Recomputed from scratch every frame so resizes never leave stale geometry.
func computeLayout(w, h int) layout {
	meterH := 3
	rest := h - meterH
	if rest < 0 {
		rest = 0
	}
	waveH := rest / 2
	specH := rest - waveH

	return layout{
		waveform: band{x: 0, y: 0, w: w, h: waveH},
		spectrum: band{x: 0, y: waveH, w: w, h: specH},
		meter:    band{x: 0, y: waveH + specH, w: w, h: meterH},
	}
}

// Compositor runs one block through the pipeline and paints the three
// panels onto a grid. It owns the band partitioning; renderers only ever
// see their own region.
type Compositor struct {
	sampleRate float64
	clipAt     float64
}

func NewCompositor(cfg *Config) *Compositor {
	return &Compositor{
		sampleRate: float64(cfg.Audio.SampleRate),
		clipAt:     cfg.Meter.ClipThreshold,
	}
}

func (c *Compositor) Render(g *Grid, block []float64) {
	lay := computeLayout(g.Width(), g.Height())
	wave := g.Region(lay.waveform.x, lay.waveform.y, lay.waveform.w, lay.waveform.h)

	norm, ok := Normalize(block)
	if !ok {
		DrawWaveform(wave, nil)
		return
	}

	bins := lay.spectrum.w
	if bins > maxBins {
		bins = maxBins
	}
	spec := Spectrum(norm, c.sampleRate, bins)
	peak, rms := Levels(block)

	DrawWaveform(wave, norm)
	DrawSpectrum(g.Region(lay.spectrum.x, lay.spectrum.y, lay.spectrum.w, lay.spectrum.h), spec)
	DrawMeter(g.Region(lay.meter.x, lay.meter.y, lay.meter.w, lay.meter.h), peak, rms, c.clipAt)
}
