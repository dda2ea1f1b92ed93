package srs

// LockFunc merges a piece into whatever owns it and reports the resulting clear.
// Playfield.LockPiece is the usual implementation.
type LockFunc func(p *Piece) LineClear

// Piece is a falling piece. It holds no reference to the playfield: every
// operation that needs the matrix takes a Reader describing it, with the piece
// itself excluded.
//
// A piece is spawned active, moves and rotates until it is locked, and is dead
// from then on.
type Piece struct {
	typ      Type
	pos      Vec
	rotation int
	lastMove float64
	dead     bool
	result   LineClear
}

// NewPiece creates a piece of type t in spawn orientation with its pivot at pos.
// The lock timer starts at t0.
func NewPiece(t Type, pos Vec, t0 float64) *Piece {
	t.table()
	return &Piece{typ: t, pos: pos, lastMove: t0}
}

func (p *Piece) Type() Type        { return p.typ }
func (p *Piece) Position() Vec     { return p.pos }
func (p *Piece) Rotation() int     { return p.rotation }
func (p *Piece) Dead() bool        { return p.dead }
func (p *Piece) LastMove() float64 { return p.lastMove }

// Result returns the clear produced when the piece locked.
func (p *Piece) Result() (LineClear, bool) {
	return p.result, p.dead
}

// Idle returns the time elapsed at t since the last successful movement.
func (p *Piece) Idle(t float64) float64 {
	return t - p.lastMove
}

// Clone returns an independent copy, used for ghost projection.
func (p *Piece) Clone() *Piece {
	c := *p
	return &c
}

// Shape returns the shape of the current rotation relative to the pivot.
func (p *Piece) Shape() Shape {
	return p.typ.Shape(p.rotation)
}

// Blocks returns the cells the piece occupies in matrix coordinates.
func (p *Piece) Blocks() Shape {
	return p.Shape().Translate(p.pos)
}

func (p *Piece) fits(m Reader, rotation int, pos Vec) bool {
	return !p.typ.Shape(rotation).Translate(pos).Collides(m)
}

// TryMove translates the piece by d if the destination is free.
// The lock timer restarts on success.
func (p *Piece) TryMove(m Reader, d Vec, t float64) bool {
	dest := p.pos.Add(d)
	if !p.fits(m, p.rotation, dest) {
		return false
	}
	p.pos = dest
	p.lastMove = t
	return true
}

// Rotate turns the piece a quarter clockwise (dir=+1) or counter-clockwise (dir=-1),
// trying each SRS kick in order. It returns false and leaves the piece unchanged
// when no kick fits.
func (p *Piece) Rotate(m Reader, dir int, t float64) bool {
	if dir != 1 && dir != -1 {
		panic(ErrInvalidRotation)
	}
	from := p.rotation
	to := mod4(from + dir)
	for _, kick := range p.typ.Kicks(from, to) {
		dest := p.pos.Add(kick)
		if p.fits(m, to, dest) {
			p.pos = dest
			p.rotation = to
			p.lastMove = t
			return true
		}
	}
	return false
}

// IsImmobile reports whether the piece cannot shift one cell in any direction.
// Locks from an immobile position count as spins.
func (p *Piece) IsImmobile(m Reader) bool {
	for _, d := range [...]Vec{Right, Left, Up, Down} {
		if p.fits(m, p.rotation, p.pos.Add(d)) {
			return false
		}
	}
	return true
}

// Grounded reports whether the piece rests on the stack or the floor.
func (p *Piece) Grounded(m Reader) bool {
	return !p.fits(m, p.rotation, p.pos.Add(Down))
}

// FirmDrop moves the piece down until it rests, returning the rows travelled.
func (p *Piece) FirmDrop(m Reader, t float64) int {
	n := 0
	for p.TryMove(m, Down, t) {
		n++
	}
	return n
}

// Gravity applies up to n downward steps and stops at the first one that fails.
func (p *Piece) Gravity(m Reader, n int, t float64) int {
	moved := 0
	for ; moved < n; moved++ {
		if !p.TryMove(m, Down, t) {
			break
		}
	}
	return moved
}

// Lock hands the piece to lock and returns the resulting clear.
func (p *Piece) Lock(lock LockFunc) LineClear {
	return lock(p)
}

// HardDrop firm-drops the piece and locks it.
func (p *Piece) HardDrop(m Reader, lock LockFunc, t float64) LineClear {
	p.FirmDrop(m, t)
	return p.Lock(lock)
}

// rebase shifts the lock timer, used when the game clock is clamped.
func (p *Piece) rebase(shift float64) {
	p.lastMove += shift
}

func (p *Piece) kill(result LineClear) {
	p.dead = true
	p.result = result
}
