package debugui

import (
	"github.com/plus3/srstris/loop"
	"github.com/plus3/srstris/srs"
)

// Install registers an ImguiSystem on scheduler carrying the game inspector,
// clear history and performance panels. Register it after the system that
// updates g so the panels see the current frame.
func Install(scheduler *loop.Scheduler, g *srs.Game, clock loop.Clock) *ImguiSystem {
	inspector := NewGameInspectorComponent(g, clock)
	history := NewClearHistoryComponent(g)
	perf := NewPerformanceStatsComponent(scheduler, 120)

	sys := &ImguiSystem{}
	sys.Add(inspector.Render)
	sys.Add(history.Render)
	sys.Add(perf.Render)
	scheduler.Register(sys)
	return sys
}
