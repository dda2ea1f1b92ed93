package loop

import "github.com/plus3/srstris/srs"

// Frame is what every system sees during one scheduler tick.
type Frame struct {
	// Time is the game clock in seconds at this frame.
	Time float64
	// DeltaTime is Time minus the previous frame's Time, zero on the first frame.
	DeltaTime float64
	// Input holds the actions queued since the previous frame, oldest first.
	Input    []srs.Action
	Commands *Commands
}

func newFrame(t, dt float64, input []srs.Action, commands *Commands) *Frame {
	return &Frame{
		Time:      t,
		DeltaTime: dt,
		Input:     input,
		Commands:  commands,
	}
}
