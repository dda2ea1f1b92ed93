package srs

// Block is a single cell of the matrix. Blocks are plain values and compare with ==.
type Block struct {
	Solid bool
	// Source is the piece type the block came from. It only drives colouring;
	// line detection looks at Solid alone.
	Source Type
	Ghost  bool
}

var (
	// Blank is the empty cell.
	Blank = Block{}
	// WallBlock is what collision checks read outside the matrix.
	WallBlock = Block{Solid: true, Source: Wall}
)

// AsGhost returns the non-solid ghost projection of b.
func (b Block) AsGhost() Block {
	return Block{Source: b.Source, Ghost: true}
}

// Mino returns the solid block for a piece type.
func Mino(t Type) Block {
	return Block{Solid: true, Source: t}
}

// Rune returns a one-character depiction of the block, used by Grid.String.
func (b Block) Rune() rune {
	switch {
	case b.Ghost:
		return '+'
	case !b.Solid:
		return '.'
	case b.Source == Wall || b.Source == Empty:
		return '#'
	}
	return rune(b.Source.String()[0])
}
