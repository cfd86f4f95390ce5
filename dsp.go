package main

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// Normalize scales the block so its maximum absolute sample is 1.0.
// ok is false for an all-zero block; the returned slice is nil in that case
// and the frame should be treated as silent.
func Normalize(block []float64) ([]float64, bool) {
	peak := 0.0
	for _, s := range block {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	if peak == 0 {
		return nil, false
	}

	out := make([]float64, len(block))
	for i, s := range block {
		out[i] = s / peak
	}
	return out, true
}

// Spectrum computes the one-sided magnitude spectrum of the block and sums
// it into bins linear-frequency bins spanning 0..Nyquist. No window is
// applied. The result is scaled so the largest bin is 1.0; an empty or
// silent spectrum yields all zeros.
func Spectrum(block []float64, sampleRate float64, bins int) []float64 {
	if bins <= 0 {
		return nil
	}
	sums := make([]float64, bins)
	n := len(block)
	if n == 0 {
		return sums
	}

	spec := fft.FFTReal(block)
	nyquist := sampleRate / 2

	for i := 0; i <= n/2; i++ {
		f := float64(i) * sampleRate / float64(n)
		if f > nyquist {
			break
		}
		bin := int(f * float64(bins) / nyquist)
		if bin < bins {
			sums[bin] += cmplx.Abs(spec[i])
		}
	}

	max := 0.0
	for _, v := range sums {
		if v > max {
			max = v
		}
	}
	if max > 0 {
		for i := range sums {
			sums[i] /= max
		}
	}
	return sums
}

// Levels returns the peak and RMS amplitude of the block. Fed the raw
// capture block these reflect true input level against full scale; fed a
// normalized block the peak is 1.0 by construction.
func Levels(block []float64) (peak, rms float64) {
	if len(block) == 0 {
		return 0, 0
	}
	sumSq := 0.0
	for _, s := range block {
		if a := math.Abs(s); a > peak {
			peak = a
		}
		sumSq += s * s
	}
	rms = math.Sqrt(sumSq / float64(len(block)))
	return peak, rms
}
