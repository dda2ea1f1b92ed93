package srs

// Driver is the input surface a frame loop feeds. Game and Recorder implement it.
type Driver interface {
	Key(t float64, a Action) bool
	Update(t float64)
}

// EventKind identifies which Game call an Event stands for.
type EventKind uint8

const (
	EventKey EventKind = iota
	EventUpdate
	EventReset
	EventGravityRate
	EventLockDelay
)

// Event is one recorded call. Action is set for EventKey, Value for the two
// setting changes.
type Event struct {
	Time   float64
	Kind   EventKind
	Action Action
	Value  float64
}

// Trace is an ordered list of events. Replaying a trace into a game created
// with the same Options reproduces the same state.
type Trace []Event

// Apply feeds every event of tr into g.
func (tr Trace) Apply(g *Game) {
	for _, e := range tr {
		switch e.Kind {
		case EventKey:
			g.Key(e.Time, e.Action)
		case EventUpdate:
			g.Update(e.Time)
		case EventReset:
			g.Reset()
		case EventGravityRate:
			g.SetGravityRate(e.Value)
		case EventLockDelay:
			g.SetLockDelay(e.Value)
		}
	}
}

// Replay builds a fresh game from opts and applies tr to it.
func Replay(opts Options, tr Trace) *Game {
	g := NewGame(opts)
	tr.Apply(g)
	return g
}

// Recorder forwards to a Game and keeps the trace of everything it forwarded.
// Calls made on Game directly bypass the trace, so a replay only matches while
// every Key, Update, Reset and setting change goes through the Recorder.
type Recorder struct {
	Game  *Game
	Trace Trace
}

func NewRecorder(g *Game) *Recorder {
	return &Recorder{Game: g}
}

func (r *Recorder) Key(t float64, a Action) bool {
	r.Trace = append(r.Trace, Event{Time: t, Kind: EventKey, Action: a})
	return r.Game.Key(t, a)
}

func (r *Recorder) Update(t float64) {
	r.Trace = append(r.Trace, Event{Time: t, Kind: EventUpdate})
	r.Game.Update(t)
}

func (r *Recorder) Reset() {
	r.Trace = append(r.Trace, Event{Kind: EventReset})
	r.Game.Reset()
}

func (r *Recorder) SetGravityRate(rate float64) {
	r.Trace = append(r.Trace, Event{Kind: EventGravityRate, Value: rate})
	r.Game.SetGravityRate(rate)
}

func (r *Recorder) SetLockDelay(d float64) {
	r.Trace = append(r.Trace, Event{Kind: EventLockDelay, Value: d})
	r.Game.SetLockDelay(d)
}
