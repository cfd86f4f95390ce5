package main

import "github.com/gdamore/tcell/v2"

type cell struct {
	ch    rune
	style tcell.Style
}

// Grid is a frame-scoped character surface. It is built fresh for every
// frame, mutated by the panel renderers through Regions, then flushed to the
// screen and discarded.
type Grid struct {
	width  int
	height int
	cells  [][]cell
}

func NewGrid(w, h int) *Grid {
	cells := make([][]cell, h)
	for y := range cells {
		cells[y] = make([]cell, w)
	}
	return &Grid{width: w, height: h, cells: cells}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Region returns a scoped view over a rectangle of the grid. Renderers only
// ever see a Region, so no renderer can write outside its assigned band.
func (g *Grid) Region(x0, y0, w, h int) *Region {
	return &Region{grid: g, x0: x0, y0: y0, width: w, height: h}
}

// Flush writes every non-empty cell to the screen. The screen is cleared by
// the caller beforehand, so empty cells need no write.
func (g *Grid) Flush(screen tcell.Screen) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := g.cells[y][x]
			if c.ch != 0 {
				screen.SetContent(x, y, c.ch, nil, c.style)
			}
		}
	}
}

// Region is a mutable view over a sub-rectangle of a Grid, addressed in
// local coordinates. Writes outside the region or the underlying grid are
// dropped silently; that guarantee belongs to the surface, not the callers.
type Region struct {
	grid   *Grid
	x0, y0 int
	width  int
	height int
}

func (r *Region) Width() int  { return r.width }
func (r *Region) Height() int { return r.height }

func (r *Region) Set(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	gx, gy := r.x0+x, r.y0+y
	if gx < 0 || gx >= r.grid.width || gy < 0 || gy >= r.grid.height {
		return
	}
	r.grid.cells[gy][gx] = cell{ch: ch, style: style}
}

func (r *Region) Text(x, y int, s string, style tcell.Style) {
	for i, ch := range s {
		r.Set(x+i, y, ch, style)
	}
}
