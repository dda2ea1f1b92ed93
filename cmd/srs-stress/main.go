package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/srstris/config"
	"github.com/plus3/srstris/loop"
	"github.com/plus3/srstris/srs"
)

// botSystem presses random keys. Actions it pushes are delivered on the next frame.
type botSystem struct {
	rng   *rand.Rand
	input *loop.Input
	rate  float64
}

func (s *botSystem) Execute(frame *loop.Frame) {
	if s.rng.Float64() >= s.rate {
		return
	}
	s.input.Push(srs.Actions[s.rng.IntN(len(srs.Actions))])
}

// tallySystem counts clears and restarts the game on top-out. The first game
// is recorded so it can be replayed once the run ends.
type tallySystem struct {
	game   *srs.Game
	driver *loop.GameSystem
	rec    *srs.Recorder
	report *Report

	last     srs.ClearEvent
	haveLast bool
}

func (s *tallySystem) Execute(frame *loop.Frame) {
	if e, ok := s.game.LastLineClear(); ok && (!s.haveLast || e != s.last) {
		s.last, s.haveLast = e, true
		s.report.Clears.Add(e.Clear)
	}
	if !s.game.Over() {
		return
	}

	frame.Commands.Defer(func() {
		s.report.Games++
		if s.rec != nil {
			s.report.Replay = checkReplay(s.game.Options(), s.rec)
			s.driver.Driver = s.game
			s.rec = nil
		}
		s.game.Reset()
		s.haveLast = false
	})
}

func checkReplay(opts srs.Options, rec *srs.Recorder) ReplayResult {
	replayed := srs.Replay(opts, rec.Trace)
	return ReplayResult{
		Checked: true,
		Events:  len(rec.Trace),
		Match: replayed.Matrix().String() == rec.Game.Matrix().String() &&
			fmt.Sprint(replayed.History()) == fmt.Sprint(rec.Game.History()),
	}
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	configPath := flag.String("config", "", "Optional TOML config; only the [game] section is used.")
	seed := flag.Uint64("seed", 1, "Seed for the piece sequence and the input bot.")
	fps := flag.Int("fps", 60, "Simulated frames per game second.")
	keyRate := flag.Float64("key-rate", 0.5, "Probability of a key press on each frame.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *fps < 1 {
		log.Fatalf("fps must be positive, got %d", *fps)
	}

	log.Println("Starting SRS stress test...")

	opts := cfg.Options()
	opts.Seed = *seed
	game := srs.NewGame(opts)
	rec := srs.NewRecorder(game)

	report := &Report{
		Duration:       *duration,
		Seed:           *seed,
		FPS:            *fps,
		KeyRate:        *keyRate,
		Width:          game.Options().Width,
		Height:         game.Options().Height,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	scheduler := loop.NewScheduler()
	gameSystem := &loop.GameSystem{Driver: rec}
	scheduler.Register(gameSystem)
	scheduler.Register(&tallySystem{game: game, driver: gameSystem, rec: rec, report: report})
	scheduler.Register(&botSystem{
		rng:   rand.New(rand.NewPCG(*seed, *seed+1)),
		input: scheduler.Input(),
		rate:  *keyRate,
	})

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var frames int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			scheduler.Once(float64(frames) / float64(*fps))
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			frames++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = frames
	report.GameTime = time.Duration(float64(frames) / float64(*fps) * float64(time.Second))
	report.UpdateTime.Finalize()
	report.Systems = scheduler.GetStats().Systems
	runtime.ReadMemStats(&report.MemStatsEnd)

	if !report.Replay.Checked {
		report.Replay = checkReplay(opts, rec)
	}

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if !report.Replay.Match {
		log.Fatalf("Replay of %d events diverged from the recorded game", report.Replay.Events)
	}
	log.Println("Stress test complete.")
}
