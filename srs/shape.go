package srs

import (
	"fmt"
	"iter"
	"strings"

	"github.com/kamstrup/intmap"
)

type cell struct {
	pos   Vec
	block Block
}

// Shape is an immutable sparse set of blocks keyed by coordinate. Unlike Grid it
// has no bounds: coordinates may be negative or arbitrarily large.
// All transforms return a new Shape.
type Shape struct {
	cells []cell
	index *intmap.Map[uint64, int]
}

func packVec(v Vec) uint64 {
	return uint64(uint32(int32(v.X)))<<32 | uint64(uint32(int32(v.Y)))
}

func newShape(cells []cell) Shape {
	index := intmap.New[uint64, int](len(cells))
	out := cells[:0:0]
	for _, c := range cells {
		k := packVec(c.pos)
		if i, ok := index.Get(k); ok {
			// Later writes win, keeping keys unique
			out[i] = c
			continue
		}
		index.Put(k, len(out))
		out = append(out, c)
	}
	return Shape{cells: out, index: index}
}

// NewShape builds a Shape from a coordinate map. Cells are ordered row by row
// from the bottom so iteration is deterministic.
func NewShape(blocks map[Vec]Block) Shape {
	cells := make([]cell, 0, len(blocks))
	for pos, b := range blocks {
		cells = append(cells, cell{pos: pos, block: b})
	}
	sortCells(cells)
	return newShape(cells)
}

func sortCells(cells []cell) {
	// Insertion sort; shapes are small.
	for i := 1; i < len(cells); i++ {
		for j := i; j > 0 && less(cells[j].pos, cells[j-1].pos); j-- {
			cells[j], cells[j-1] = cells[j-1], cells[j]
		}
	}
}

func less(a, b Vec) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

// ParseShape parses an ASCII pattern, first row on top. '#' and '@' are filled with
// fill, '@' and '!' mark the origin. Exactly one origin marker is required; the
// result is translated so the origin sits at (0,0).
func ParseShape(fill Block, rows ...string) (Shape, error) {
	var (
		cells   []cell
		origin  Vec
		markers int
	)
	for i, row := range rows {
		y := len(rows) - i - 1
		for x, ch := range []rune(row) {
			pos := Vec{X: x, Y: y}
			if ch == '#' || ch == '@' {
				cells = append(cells, cell{pos: pos, block: fill})
			}
			if ch == '@' || ch == '!' {
				origin = pos
				markers++
			}
		}
	}
	if markers != 1 {
		return Shape{}, fmt.Errorf("%w: found %d in %q", ErrOrigin, markers, strings.Join(rows, "/"))
	}
	sortCells(cells)
	return newShape(cells).Translate(origin.Neg()), nil
}

// MustParseShape is ParseShape for static tables and panics on a malformed pattern.
func MustParseShape(fill Block, rows ...string) Shape {
	s, err := ParseShape(fill, rows...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s Shape) Len() int {
	return len(s.cells)
}

// At returns the block at pos, if the shape has one there.
func (s Shape) At(pos Vec) (Block, bool) {
	if s.index == nil {
		return Blank, false
	}
	i, ok := s.index.Get(packVec(pos))
	if !ok {
		return Blank, false
	}
	return s.cells[i].block, true
}

// All iterates over the shape's cells.
func (s Shape) All() iter.Seq2[Vec, Block] {
	return func(yield func(Vec, Block) bool) {
		for _, c := range s.cells {
			if !yield(c.pos, c.block) {
				return
			}
		}
	}
}

// Translate returns the shape shifted by d.
func (s Shape) Translate(d Vec) Shape {
	cells := make([]cell, len(s.cells))
	for i, c := range s.cells {
		cells[i] = cell{pos: c.pos.Add(d), block: c.block}
	}
	return newShape(cells)
}

// Ghost returns a copy with every block converted to its ghost projection.
func (s Shape) Ghost() Shape {
	cells := make([]cell, len(s.cells))
	for i, c := range s.cells {
		cells[i] = cell{pos: c.pos, block: c.block.AsGhost()}
	}
	return newShape(cells)
}

// Bounds returns the inclusive bounding box. An empty shape reports zero vectors.
func (s Shape) Bounds() (lo, hi Vec) {
	for i, c := range s.cells {
		if i == 0 {
			lo, hi = c.pos, c.pos
			continue
		}
		lo.X, lo.Y = min(lo.X, c.pos.X), min(lo.Y, c.pos.Y)
		hi.X, hi.Y = max(hi.X, c.pos.X), max(hi.Y, c.pos.Y)
	}
	return lo, hi
}

// Collides reports whether any cell of s lands on a solid block of m.
func (s Shape) Collides(m Reader) bool {
	for _, c := range s.cells {
		if m.At(c.pos).Solid {
			return true
		}
	}
	return false
}
