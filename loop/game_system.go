package loop

import "github.com/plus3/srstris/srs"

// GameSystem forwards the frame's input to a game in arrival order and then
// advances it to the frame time. Driver is usually an *srs.Game or an
// *srs.Recorder wrapping one.
type GameSystem struct {
	Driver srs.Driver

	// Rejected counts actions the game refused, e.g. a move into a wall.
	Rejected int
}

func (s *GameSystem) Execute(frame *Frame) {
	for _, a := range frame.Input {
		if !s.Driver.Key(frame.Time, a) {
			s.Rejected++
		}
	}
	s.Driver.Update(frame.Time)
}
