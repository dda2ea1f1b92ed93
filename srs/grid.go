package srs

import (
	"fmt"
	"iter"
	"strings"
)

// Reader is anything a shape can be collision-tested against.
type Reader interface {
	At(pos Vec) Block
}

// Grid is an immutable dense width×height matrix of blocks.
// The origin is the bottom-left cell and rows grow upward.
type Grid struct {
	width, height int
	cells         []Block
}

// NewGrid wraps cells, stored row-major from the bottom row.
// It panics if len(cells) != width*height.
func NewGrid(width, height int, cells []Block) Grid {
	if width < 0 || height < 0 || len(cells) != width*height {
		panic(fmt.Errorf("%w: %dx%d grid given %d cells", ErrCellCount, width, height, len(cells)))
	}
	data := make([]Block, len(cells))
	copy(data, cells)
	return Grid{width: width, height: height, cells: data}
}

// BlankGrid returns a grid with every cell set to fill.
func BlankGrid(width, height int, fill Block) Grid {
	cells := make([]Block, width*height)
	for i := range cells {
		cells[i] = fill
	}
	return Grid{width: width, height: height, cells: cells}
}

func (g Grid) Width() int  { return g.width }
func (g Grid) Height() int { return g.height }

func (g Grid) InBounds(pos Vec) bool {
	return pos.X >= 0 && pos.X < g.width && pos.Y >= 0 && pos.Y < g.height
}

func (g Grid) index(pos Vec) int {
	if !g.InBounds(pos) {
		panic(&OutOfBoundsError{Pos: pos, Width: g.width, Height: g.height})
	}
	return pos.X + pos.Y*g.width
}

// At returns the block at pos and panics with *OutOfBoundsError outside the grid.
func (g Grid) At(pos Vec) Block {
	return g.cells[g.index(pos)]
}

// Composite returns a copy of g with every cell of s written on top.
// Every cell of s must lie inside the grid.
func (g Grid) Composite(s Shape) Grid {
	cells := make([]Block, len(g.cells))
	copy(cells, g.cells)
	for pos, b := range s.All() {
		cells[g.index(pos)] = b
	}
	return Grid{width: g.width, height: g.height, cells: cells}
}

// Crop returns the sub-grid between the inclusive corners (xmin,ymin) and (xmax,ymax).
// An inverted range yields an empty grid.
func (g Grid) Crop(xmin, ymin, xmax, ymax int) Grid {
	w, h := max(xmax-xmin+1, 0), max(ymax-ymin+1, 0)
	cells := make([]Block, 0, w*h)
	for y := ymin; y <= ymax; y++ {
		for x := xmin; x <= xmax; x++ {
			cells = append(cells, g.At(Vec{X: x, Y: y}))
		}
	}
	return Grid{width: w, height: h, cells: cells}
}

// Shape converts the grid into a sparse shape holding every cell, blank ones included.
func (g Grid) Shape() Shape {
	cells := make([]cell, 0, len(g.cells))
	for pos, b := range g.All() {
		cells = append(cells, cell{pos: pos, block: b})
	}
	return newShape(cells)
}

// Row returns a copy of row y.
func (g Grid) Row(y int) []Block {
	start := g.index(Vec{Y: y})
	row := make([]Block, g.width)
	copy(row, g.cells[start:start+g.width])
	return row
}

// RowFull reports whether every cell of row y is solid.
func (g Grid) RowFull(y int) bool {
	for x := 0; x < g.width; x++ {
		if !g.At(Vec{X: x, Y: y}).Solid {
			return false
		}
	}
	return true
}

// Count returns the number of solid cells.
func (g Grid) Count() int {
	n := 0
	for _, b := range g.cells {
		if b.Solid {
			n++
		}
	}
	return n
}

// All iterates over every cell, bottom row first.
func (g Grid) All() iter.Seq2[Vec, Block] {
	return func(yield func(Vec, Block) bool) {
		for i, b := range g.cells {
			if !yield(Vec{X: i % g.width, Y: i / g.width}, b) {
				return
			}
		}
	}
}

// String draws the grid top row first.
func (g Grid) String() string {
	var sb strings.Builder
	for y := g.height - 1; y >= 0; y-- {
		for x := 0; x < g.width; x++ {
			sb.WriteRune(g.At(Vec{X: x, Y: y}).Rune())
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Padded reads through to Grid and returns Fill for any coordinate outside it.
// Collision checks use it with WallBlock so walls and floor behave like the stack.
type Padded struct {
	Grid Grid
	Fill Block
}

func (p Padded) At(pos Vec) Block {
	if !p.Grid.InBounds(pos) {
		return p.Fill
	}
	return p.Grid.At(pos)
}
