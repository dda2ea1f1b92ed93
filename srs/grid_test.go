package srs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGridCellCount(t *testing.T) {
	assert.Panics(t, func() { NewGrid(2, 2, make([]Block, 3)) })
	assert.NotPanics(t, func() { NewGrid(2, 2, make([]Block, 4)) })
}

func TestGridOutOfBounds(t *testing.T) {
	g := BlankGrid(3, 2, Blank)

	defer func() {
		r := recover()
		err, ok := r.(*OutOfBoundsError)
		if !ok {
			t.Fatalf("expected *OutOfBoundsError, got %v", r)
		}
		assert.Equal(t, V(3, 0), err.Pos)
		assert.Equal(t, 3, err.Width)
	}()
	g.At(V(3, 0))
}

func TestGridComposite(t *testing.T) {
	g := BlankGrid(4, 3, Blank)
	s := MustParseShape(Mino(T), " # ", "#@#").Translate(V(1, 0))

	out := g.Composite(s)
	assert.Equal(t, 4, out.Count())
	assert.Equal(t, 0, g.Count(), "receiver must not change")
	assert.Equal(t, ".T..\nTTT.", out.Crop(0, 0, 3, 1).String())

	assert.Panics(t, func() { g.Composite(s.Translate(V(2, 0))) })
}

func TestGridCrop(t *testing.T) {
	cells := make([]Block, 9)
	for i := range cells {
		cells[i] = Mino(Types[i%len(Types)])
	}
	g := NewGrid(3, 3, cells)

	c := g.Crop(1, 1, 2, 2)
	assert.Equal(t, 2, c.Width())
	assert.Equal(t, 2, c.Height())
	assert.Equal(t, g.At(V(1, 1)), c.At(V(0, 0)))
	assert.Equal(t, g.At(V(2, 2)), c.At(V(1, 1)))

	empty := g.Crop(0, 0, 2, -1)
	assert.Equal(t, 0, empty.Height())
	assert.Equal(t, 0, empty.Shape().Len())
}

func TestPadded(t *testing.T) {
	g := BlankGrid(2, 2, Blank)
	p := Padded{Grid: g, Fill: WallBlock}

	assert.Equal(t, Blank, p.At(V(1, 1)))
	assert.Equal(t, WallBlock, p.At(V(-1, 0)))
	assert.Equal(t, WallBlock, p.At(V(0, 2)))
	assert.Equal(t, WallBlock, p.At(V(5, -5)))
}

func TestGridRows(t *testing.T) {
	g := BlankGrid(3, 2, Blank).Composite(NewShape(map[Vec]Block{
		{0, 0}: Mino(I), {1, 0}: Mino(I), {2, 0}: Mino(I), {1, 1}: Mino(J),
	}))
	assert.True(t, g.RowFull(0))
	assert.False(t, g.RowFull(1))
	assert.Equal(t, []Block{Blank, Mino(J), Blank}, g.Row(1))
	assert.Equal(t, ".J.\nIII", g.String())
}
