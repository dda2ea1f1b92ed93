package loop

import (
	"context"
	"reflect"
	"time"
)

// Clock returns the current game time in seconds.
type Clock func() float64

// WallClock returns a Clock measuring seconds elapsed since start.
func WallClock(start time.Time) Clock {
	return func() float64 {
		return time.Since(start).Seconds()
	}
}

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Frames          int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler owns the input queue and runs systems in registration order.
type Scheduler struct {
	input       *Input
	commands    *Commands
	systems     []System
	systemStats []*systemStatsInternal

	frames   int64
	started  bool
	lastTime float64
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		input:    NewInput(),
		commands: newCommands(),
		systems:  make([]System, 0),
	}
}

// Input returns the queue front-ends push actions into.
func (s *Scheduler) Input() *Input {
	return s.input
}

// Register appends a system. Its stats are reported under the system's type name.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Once runs every system for a frame at game time t, then flushes deferred
// commands. DeltaTime is measured from the previous call.
func (s *Scheduler) Once(t float64) {
	dt := 0.0
	if s.started {
		dt = t - s.lastTime
	}
	s.started = true
	s.lastTime = t
	s.frames++

	frame := newFrame(t, dt, s.input.Drain(), s.commands)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	frame.Commands.Flush()
}

// Run calls Once on every tick of interval, reading the frame time from clock,
// until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration, clock Clock) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Once(clock())
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
