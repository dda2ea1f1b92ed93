package srs

import "math"

// MaxFrameDelta is the largest clock step Update accepts, in seconds. Larger
// steps are treated as a clock jump and clamped.
const MaxFrameDelta = 60.0

// Options configures a Game.
type Options struct {
	Width, Height int
	// Spawn is where new pieces place their pivot. The zero value means
	// (Width/2, Height-3).
	Spawn Vec
	// GravityRate is in rows per second. Zero or less disables gravity.
	GravityRate float64
	// LockDelay is how long, in seconds, the active piece may go without
	// moving before it is force-locked, wherever it is.
	LockDelay float64
	// GroundedLock restricts the forced lock to pieces resting on the stack or
	// the floor, so a piece idling in mid-air keeps falling instead.
	GroundedLock bool
	HistorySize  int
	Seed         uint64
}

// DefaultOptions returns a 10×20 game with 2 rows/s gravity and a 1 s lock
// delay. The gravity interval stays below the lock delay so a falling piece is
// never idle long enough to lock before it lands.
func DefaultOptions() Options {
	return Options{
		Width:       10,
		Height:      20,
		GravityRate: 2,
		LockDelay:   1,
		HistorySize: 100,
	}
}

func (o Options) normalize() Options {
	def := DefaultOptions()
	if o.Width <= 0 {
		o.Width = def.Width
	}
	if o.Height <= 0 {
		o.Height = def.Height
	}
	if o.Spawn == (Vec{}) {
		o.Spawn = Vec{X: o.Width / 2, Y: o.Height - 3}
	}
	if o.HistorySize <= 0 {
		o.HistorySize = def.HistorySize
	}
	return o
}

// Game runs gravity, lock delay, hold and piece succession on top of a Playfield.
// It is driven entirely by the times passed to Update, Key and Hold, so a game
// replays identically from the same seed and inputs.
type Game struct {
	opts    Options
	bag     *Randomizer
	field   *Playfield
	piece   *Piece
	history *History

	held          Type
	holdAvailable bool

	started     bool
	over        bool
	lastUpdate  float64
	lastGravity float64
}

// NewGame creates a game. No piece is spawned until the first Update.
func NewGame(opts Options) *Game {
	opts = opts.normalize()
	return &Game{
		opts:    opts,
		bag:     NewSeededRandomizer(opts.Seed),
		field:   NewPlayfield(opts.Width, opts.Height),
		history: NewHistory(opts.HistorySize),
	}
}

// Reset clears the board, hold slot and history. The piece sequence carries on.
func (g *Game) Reset() {
	g.field = NewPlayfield(g.opts.Width, g.opts.Height)
	g.piece = nil
	g.history.Clear()
	g.held = Empty
	g.holdAvailable = false
	g.started = false
	g.over = false
}

// Update advances the game to time t, in seconds. Call it once per frame with
// non-decreasing t, after forwarding that frame's input through Key.
func (g *Game) Update(t float64) {
	if !g.started {
		g.started = true
		g.lastUpdate, g.lastGravity = t, t
	}
	g.clampClock(t)
	g.lastUpdate = t
	if g.over {
		return
	}

	g.collect(t)
	if g.piece == nil && !g.spawn(g.bag.Next(), t) {
		return
	}

	if g.lockDue(t) {
		g.piece.Lock(g.field.LockPiece)
	}
	if g.piece.Dead() {
		g.collect(t)
		if !g.spawn(g.bag.Next(), t) {
			return
		}
	}

	g.applyGravity(t)
}

func (g *Game) lockDue(t float64) bool {
	if g.piece.Idle(t) <= g.opts.LockDelay {
		return false
	}
	return !g.opts.GroundedLock || g.piece.Grounded(g.field.View())
}

// clampClock treats a step larger than MaxFrameDelta, or a step backwards, as a
// clock anomaly and shifts the internal timers instead of replaying it.
func (g *Game) clampClock(t float64) {
	dt := t - g.lastUpdate
	var shift float64
	switch {
	case dt > MaxFrameDelta:
		shift = dt - MaxFrameDelta
	case dt < 0:
		shift = dt
	default:
		return
	}
	g.lastGravity += shift
	if g.piece != nil {
		g.piece.rebase(shift)
	}
}

func (g *Game) applyGravity(t float64) {
	if g.opts.GravityRate <= 0 {
		g.lastGravity = t
		return
	}
	interval := 1 / g.opts.GravityRate
	n := int(math.Floor((t - g.lastGravity) / interval))
	if n <= 0 {
		return
	}
	g.lastGravity += float64(n) * interval
	g.piece.Gravity(g.field.View(), n, t)
}

// collect records the result of a dead piece and forgets it.
func (g *Game) collect(t float64) {
	if g.piece == nil || !g.piece.Dead() {
		return
	}
	if lc, _ := g.piece.Result(); !lc.Empty() {
		g.history.Push(ClearEvent{Time: t, Clear: lc})
	}
	g.piece = nil
}

// spawn places a new piece of type typ and re-enables hold. It reports false and
// ends the game when the spawn area is blocked.
func (g *Game) spawn(typ Type, t float64) bool {
	p := NewPiece(typ, g.opts.Spawn, t)
	if !g.field.Fits(p) {
		g.over = true
		return false
	}
	g.field.Spawn(p)
	g.piece = p
	g.holdAvailable = true
	return true
}

// Key applies one input action at time t and reports whether it had an effect.
func (g *Game) Key(t float64, a Action) bool {
	if a == Hold {
		return g.Hold(t)
	}
	p := g.piece
	if g.over || p == nil || p.Dead() {
		return false
	}
	m := g.field.View()
	switch a {
	case MoveLeft:
		return p.TryMove(m, Left, t)
	case MoveRight:
		return p.TryMove(m, Right, t)
	case RotateLeft:
		return p.Rotate(m, -1, t)
	case RotateRight:
		return p.Rotate(m, 1, t)
	case SoftDrop:
		return p.FirmDrop(m, t) > 0
	case HardDrop:
		p.HardDrop(m, g.field.LockPiece, t)
		g.collect(t)
		return true
	}
	return false
}

// Hold swaps the active piece into the hold slot. The replacement comes from
// the previously held type, or the bag when the slot was empty. Hold is refused
// until the next natural spawn once used.
func (g *Game) Hold(t float64) bool {
	if g.over || !g.holdAvailable || g.piece == nil || g.piece.Dead() {
		return false
	}
	current := g.piece.Type()
	g.field.Discard(g.piece)
	g.piece = nil

	next := g.held
	if next == Empty {
		next = g.bag.Next()
	}
	g.held = current
	g.spawn(next, t)
	g.holdAvailable = false
	return true
}

// Matrix returns the board for drawing: locked blocks, ghost, then the active piece.
func (g *Game) Matrix() Grid {
	return g.field.MatrixState(true, true)
}

// Held returns the held type, if any.
func (g *Game) Held() (Type, bool) {
	return g.held, g.held != Empty
}

func (g *Game) HoldAvailable() bool {
	return g.holdAvailable && !g.over
}

// Next returns the upcoming n types without consuming them.
func (g *Game) Next(n int) []Type {
	return g.bag.Peek(n)
}

// NextPreview returns preview grids for the upcoming n types.
func (g *Game) NextPreview(n int) []Grid {
	types := g.bag.Peek(n)
	grids := make([]Grid, len(types))
	for i, t := range types {
		grids[i] = PreviewGrid(t)
	}
	return grids
}

// LastLineClear returns the most recent non-empty clear.
func (g *Game) LastLineClear() (ClearEvent, bool) {
	return g.history.Last()
}

// History returns recorded clears, oldest first.
func (g *Game) History() []ClearEvent {
	return g.history.Events()
}

// Active returns a copy of the active piece. Changing the copy does not
// affect the game.
func (g *Game) Active() (*Piece, bool) {
	if g.piece == nil {
		return nil, false
	}
	return g.piece.Clone(), true
}

// Playfield exposes the underlying playfield, e.g. to set up a board.
func (g *Game) Playfield() *Playfield {
	return g.field
}

func (g *Game) Over() bool       { return g.over }
func (g *Game) Options() Options { return g.opts }

func (g *Game) SetGravityRate(rate float64) {
	g.opts.GravityRate = rate
}

func (g *Game) SetLockDelay(d float64) {
	g.opts.LockDelay = d
}
