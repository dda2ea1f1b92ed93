package loop_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/srstris/loop"
	"github.com/plus3/srstris/srs"
)

type CountingSystem struct {
	ExecuteCount int
	LastTime     float64
	LastDelta    float64
	Seen         []srs.Action
}

func (s *CountingSystem) Execute(frame *loop.Frame) {
	s.ExecuteCount++
	s.LastTime = frame.Time
	s.LastDelta = frame.DeltaTime
	s.Seen = append(s.Seen, frame.Input...)
}

type orderSystem struct {
	name string
	log  *[]string
}

func (s *orderSystem) Execute(frame *loop.Frame) {
	*s.log = append(*s.log, s.name)
	frame.Commands.Defer(func() {
		*s.log = append(*s.log, "flush "+s.name)
	})
}

func TestScheduler(t *testing.T) {
	t.Run("systems run in registration order before deferred commands", func(t *testing.T) {
		scheduler := loop.NewScheduler()

		var log []string
		scheduler.Register(&orderSystem{name: "a", log: &log})
		scheduler.Register(&orderSystem{name: "b", log: &log})

		scheduler.Once(0)

		want := []string{"a", "b", "flush a", "flush b"}
		if len(log) != len(want) {
			t.Fatalf("expected %v, got %v", want, log)
		}
		for i := range want {
			if log[i] != want[i] {
				t.Errorf("step %d: expected %q, got %q", i, want[i], log[i])
			}
		}
	})

	t.Run("delta time is measured between frames", func(t *testing.T) {
		scheduler := loop.NewScheduler()
		counter := &CountingSystem{}
		scheduler.Register(counter)

		scheduler.Once(2.0)
		if counter.LastDelta != 0 {
			t.Errorf("expected zero delta on first frame, got %f", counter.LastDelta)
		}

		scheduler.Once(2.5)
		if counter.LastDelta != 0.5 {
			t.Errorf("expected delta 0.5, got %f", counter.LastDelta)
		}
		if counter.LastTime != 2.5 {
			t.Errorf("expected time 2.5, got %f", counter.LastTime)
		}
	})

	t.Run("input reaches the next frame only", func(t *testing.T) {
		scheduler := loop.NewScheduler()
		counter := &CountingSystem{}
		scheduler.Register(counter)

		scheduler.Input().Push(srs.MoveLeft)
		scheduler.Input().Push(srs.MoveLeft)
		scheduler.Input().Push(srs.HardDrop)
		scheduler.Once(0)
		scheduler.Once(0.1)

		if len(counter.Seen) != 3 {
			t.Fatalf("expected 3 actions, got %v", counter.Seen)
		}
		if counter.Seen[0] != srs.MoveLeft || counter.Seen[1] != srs.MoveLeft || counter.Seen[2] != srs.HardDrop {
			t.Errorf("actions out of order: %v", counter.Seen)
		}
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		scheduler := loop.NewScheduler()
		counter := &CountingSystem{}
		scheduler.Register(counter)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan bool)
		go func() {
			scheduler.Run(ctx, 1*time.Millisecond, loop.WallClock(time.Now()))
			done <- true
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
			t.Fatal("scheduler did not stop after context cancellation")
		}

		if counter.ExecuteCount == 0 {
			t.Error("expected system to execute at least once")
		}
	})

	t.Run("stats", func(t *testing.T) {
		scheduler := loop.NewScheduler()
		scheduler.Register(&CountingSystem{})
		scheduler.Register(&loop.GameSystem{Driver: srs.NewGame(srs.DefaultOptions())})

		stats := scheduler.GetStats()
		if stats.Systems[0].MinDuration != 0 {
			t.Errorf("expected zero min duration before any frame, got %v", stats.Systems[0].MinDuration)
		}

		for i := range 5 {
			scheduler.Once(float64(i) / 60)
		}

		stats = scheduler.GetStats()
		if stats.SystemCount != 2 {
			t.Errorf("expected 2 systems, got %d", stats.SystemCount)
		}
		if stats.Frames != 5 {
			t.Errorf("expected 5 frames, got %d", stats.Frames)
		}
		if stats.TotalExecutions != 10 {
			t.Errorf("expected 10 executions, got %d", stats.TotalExecutions)
		}
		if stats.Systems[0].Name != "CountingSystem" || stats.Systems[1].Name != "GameSystem" {
			t.Errorf("unexpected system names %q, %q", stats.Systems[0].Name, stats.Systems[1].Name)
		}
		for _, sys := range stats.Systems {
			if sys.MinDuration > sys.MaxDuration {
				t.Errorf("%s: min %v above max %v", sys.Name, sys.MinDuration, sys.MaxDuration)
			}
		}
	})
}
