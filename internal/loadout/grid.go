package loadout

import "github.com/udisondev/botloadout/internal/model"

// Rect is an occupied rectangle inside a container grid.
type Rect struct {
	X, Y int
	W, H int
}

// RectFor returns the cells covered by an item of size w×h placed at loc.
func RectFor(loc model.Location, w, h int) Rect {
	if loc.Rotated {
		w, h = h, w
	}
	return Rect{X: loc.X, Y: loc.Y, W: w, H: h}
}

// OccupancyGrid — булева матрица занятых ячеек контейнера.
type OccupancyGrid struct {
	width  int
	height int
	cells  []bool
}

// NewOccupancyGrid creates an empty width×height grid.
func NewOccupancyGrid(width, height int) *OccupancyGrid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &OccupancyGrid{width: width, height: height, cells: make([]bool, width*height)}
}

// Width returns grid width in cells.
func (g *OccupancyGrid) Width() int { return g.width }

// Height returns grid height in cells.
func (g *OccupancyGrid) Height() int { return g.height }

// Mark occupies the cells of r. Cells outside the grid are ignored.
func (g *OccupancyGrid) Mark(r Rect) {
	for y := max(r.Y, 0); y < min(r.Y+r.H, g.height); y++ {
		for x := max(r.X, 0); x < min(r.X+r.W, g.width); x++ {
			g.cells[y*g.width+x] = true
		}
	}
}

// Occupied reports whether cell (x, y) is taken. Out-of-bounds cells count as taken.
func (g *OccupancyGrid) Occupied(x, y int) bool {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return true
	}
	return g.cells[y*g.width+x]
}

// Fits checks grid bounds and collisions for a w×h rectangle at (x, y).
func (g *OccupancyGrid) Fits(x, y, w, h int) bool {
	if x < 0 || y < 0 || w <= 0 || h <= 0 || x+w > g.width || y+h > g.height {
		return false
	}
	for cy := y; cy < y+h; cy++ {
		row := cy * g.width
		for cx := x; cx < x+w; cx++ {
			if g.cells[row+cx] {
				return false
			}
		}
	}
	return true
}

// FindPlacement returns the first free top-left cell for a w×h item, scanning row-major.
// If nothing fits and the item covers more than one cell, the scan is repeated with
// w and h swapped and the result is flagged as rotated. First fit wins; earlier
// placements are never moved.
func (g *OccupancyGrid) FindPlacement(w, h int) (model.Location, bool) {
	if loc, ok := g.scan(w, h); ok {
		return loc, true
	}
	if w*h > 1 {
		if loc, ok := g.scan(h, w); ok {
			loc.Rotated = true
			return loc, true
		}
	}
	return model.Location{}, false
}

func (g *OccupancyGrid) scan(w, h int) (model.Location, bool) {
	if w <= 0 || h <= 0 || w > g.width || h > g.height {
		return model.Location{}, false
	}
	for y := 0; y <= g.height-h; y++ {
		for x := 0; x <= g.width-w; x++ {
			if g.Fits(x, y, w, h) {
				return model.Location{X: x, Y: y}, true
			}
		}
	}
	return model.Location{}, false
}

// FindPlacement builds a grid from occupied rectangles and searches a spot for a w×h item.
func FindPlacement(gridW, gridH int, occupied []Rect, w, h int) (model.Location, bool) {
	g := NewOccupancyGrid(gridW, gridH)
	for _, r := range occupied {
		g.Mark(r)
	}
	return g.FindPlacement(w, h)
}
