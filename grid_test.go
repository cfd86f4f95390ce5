package main

import (
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestRegionDropsOutOfBoundsWrites(t *testing.T) {
	g := NewGrid(10, 10)
	r := g.Region(2, 2, 4, 4)

	r.Set(-1, 0, 'x', tcell.StyleDefault)
	r.Set(0, -1, 'x', tcell.StyleDefault)
	r.Set(4, 0, 'x', tcell.StyleDefault)
	r.Set(0, 4, 'x', tcell.StyleDefault)
	r.Set(100, 100, 'x', tcell.StyleDefault)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if g.cells[y][x].ch != 0 {
				t.Fatalf("out-of-bounds write landed at (%d,%d)", x, y)
			}
		}
	}
}

func TestRegionWritesLandInGridCoordinates(t *testing.T) {
	g := NewGrid(10, 10)
	r := g.Region(3, 4, 5, 5)

	r.Set(1, 2, '#', tcell.StyleDefault)
	if g.cells[6][4].ch != '#' {
		t.Fatal("expected region-local (1,2) to land at grid (4,6)")
	}
}

func TestRegionClipsToGridEdge(t *testing.T) {
	// Region extends past the grid; writes inside the region but outside
	// the grid must be dropped, not wrapped or panicked on.
	g := NewGrid(5, 5)
	r := g.Region(3, 3, 5, 5)

	r.Set(4, 4, 'x', tcell.StyleDefault)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if g.cells[y][x].ch != 0 {
				t.Fatalf("clipped write landed at (%d,%d)", x, y)
			}
		}
	}
}

func TestRegionRandomizedWritesNeverEscape(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 200; trial++ {
		gw, gh := 1+rng.Intn(20), 1+rng.Intn(20)
		g := NewGrid(gw, gh)
		x0, y0 := rng.Intn(gw), rng.Intn(gh)
		rw, rh := rng.Intn(gw), rng.Intn(gh)
		r := g.Region(x0, y0, rw, rh)

		for i := 0; i < 50; i++ {
			r.Set(rng.Intn(40)-10, rng.Intn(40)-10, '#', tcell.StyleDefault)
		}

		for y := 0; y < gh; y++ {
			for x := 0; x < gw; x++ {
				if g.cells[y][x].ch == 0 {
					continue
				}
				if x < x0 || x >= x0+rw || y < y0 || y >= y0+rh {
					t.Fatalf("write escaped region: cell (%d,%d), region (%d,%d %dx%d)", x, y, x0, y0, rw, rh)
				}
			}
		}
	}
}

func TestTextWritesRunes(t *testing.T) {
	g := NewGrid(10, 2)
	r := g.Region(0, 0, 10, 2)

	r.Text(1, 0, "abc", tcell.StyleDefault)
	if g.cells[0][1].ch != 'a' || g.cells[0][2].ch != 'b' || g.cells[0][3].ch != 'c' {
		t.Fatal("text not written at expected cells")
	}
}
