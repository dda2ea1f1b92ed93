package srs

// Playfield owns the locked matrix and at most one active piece.
type Playfield struct {
	matrix Grid
	active *Piece
}

// NewPlayfield creates an empty width×height playfield.
func NewPlayfield(width, height int) *Playfield {
	return &Playfield{matrix: BlankGrid(width, height, Blank)}
}

func (pf *Playfield) Width() int  { return pf.matrix.Width() }
func (pf *Playfield) Height() int { return pf.matrix.Height() }

// Matrix returns the locked blocks without the active piece.
func (pf *Playfield) Matrix() Grid {
	return pf.matrix
}

// SetMatrix replaces the locked matrix, e.g. to set up a board.
func (pf *Playfield) SetMatrix(g Grid) {
	pf.matrix = g
}

// Active returns the active piece, or nil.
func (pf *Playfield) Active() *Piece {
	return pf.active
}

// Spawn makes p the active piece. It panics if another piece is still active.
func (pf *Playfield) Spawn(p *Piece) {
	if pf.active != nil {
		panic(ErrActiveExists)
	}
	pf.active = p
}

// Fits reports whether p could occupy its current position.
func (pf *Playfield) Fits(p *Piece) bool {
	return !p.Blocks().Collides(pf.View())
}

// Discard drops the active piece without locking it.
func (pf *Playfield) Discard(p *Piece) {
	if p == nil || p != pf.active {
		panic(ErrNotActive)
	}
	pf.active = nil
}

// View is the collision context for the active piece: the locked matrix, with
// everything outside it reading as wall. The active piece is never part of it.
func (pf *Playfield) View() Reader {
	return Padded{Grid: pf.matrix, Fill: WallBlock}
}

// Ghost returns the cells the active piece would occupy after a firm drop.
func (pf *Playfield) Ghost() (Shape, bool) {
	if pf.active == nil {
		return Shape{}, false
	}
	ghost := pf.active.Clone()
	ghost.FirmDrop(pf.View(), ghost.lastMove)
	return ghost.Blocks().Ghost(), true
}

// MatrixState composes the locked matrix with the ghost projection and then
// the active piece, so the piece always covers its own ghost.
func (pf *Playfield) MatrixState(includeActive, ghost bool) Grid {
	g := pf.matrix
	if pf.active == nil {
		return g
	}
	if ghost {
		shape, _ := pf.Ghost()
		g = g.Composite(shape)
	}
	if includeActive {
		g = g.Composite(pf.active.Blocks())
	}
	return g
}

// LockPiece merges the active piece into the matrix, clears full rows and
// returns the result. The piece is dead afterwards. Passing any piece other
// than the active one panics.
func (pf *Playfield) LockPiece(p *Piece) LineClear {
	if p == nil || p != pf.active {
		panic(ErrNotActive)
	}
	spin := p.IsImmobile(pf.View())
	pf.matrix = pf.matrix.Composite(p.Blocks())
	pf.active = nil

	var lc LineClear
	pf.matrix, lc.Lines = clearLines(pf.matrix)
	lc.Spin = spin
	p.kill(lc)
	return lc
}
