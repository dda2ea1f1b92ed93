// Package loop drives an srs.Game at a fixed cadence. A Scheduler runs
// registered systems once per frame, hands them the input queued since the
// previous frame, and flushes deferred work after every system has run.
package loop

// System is a unit of per-frame behaviour. Systems keep their own state
// between frames and run in registration order.
type System interface {
	Execute(frame *Frame)
}
