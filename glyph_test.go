package main

import "testing"

func gradientIndex(t *testing.T, ch rune) int {
	t.Helper()
	for i, g := range gradient {
		if g == ch {
			return i
		}
	}
	t.Fatalf("glyph %q not in gradient", ch)
	return -1
}

func TestGlyphBoundaries(t *testing.T) {
	if glyphFor(0) != gradient[0] {
		t.Fatalf("expected sparsest glyph for 0, got %q", glyphFor(0))
	}
	if glyphFor(1) != gradient[len(gradient)-1] {
		t.Fatalf("expected densest glyph for 1, got %q", glyphFor(1))
	}
}

func TestGlyphMonotonic(t *testing.T) {
	prev := -1
	for i := 0; i <= 1000; i++ {
		idx := gradientIndex(t, glyphFor(float64(i)/1000))
		if idx < prev {
			t.Fatalf("gradient index decreased at intensity %v: %d < %d", float64(i)/1000, idx, prev)
		}
		prev = idx
	}
}

func TestGlyphDeterministic(t *testing.T) {
	for i := 0; i <= 10; i++ {
		v := float64(i) / 10
		if glyphFor(v) != glyphFor(v) {
			t.Fatalf("glyph for %v not stable", v)
		}
	}
}
