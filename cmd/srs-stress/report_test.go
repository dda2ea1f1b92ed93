package main

import (
	"bytes"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/plus3/srstris/loop"
	"github.com/plus3/srstris/srs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3, 1, 2}}
	s.Finalize()
	assert.Equal(t, time.Duration(1), s.Min)
	assert.Equal(t, time.Duration(3), s.Max)
	assert.Equal(t, time.Duration(2), s.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestClearCounts(t *testing.T) {
	var c ClearCounts
	c.Add(srs.LineClear{Lines: 1})
	c.Add(srs.LineClear{Lines: 2, Spin: true})
	c.Add(srs.LineClear{Lines: 4})
	assert.Equal(t, ClearCounts{Single: 1, Double: 1, Quadruple: 1, Spins: 1}, c)
	assert.Equal(t, 7, c.Lines())
}

func TestReportGenerate(t *testing.T) {
	r := &Report{
		Duration:     time.Second,
		Width:        10,
		Height:       20,
		TotalUpdates: 60,
		Clears:       ClearCounts{Double: 1},
		Replay:       ReplayResult{Checked: true, Events: 12, Match: true},
		Systems:      []loop.SystemStats{{Name: "GameSystem", ExecutionCount: 60}},
	}

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))
	out := buf.String()
	assert.Contains(t, out, "- **Matrix:** 10x20")
	assert.Contains(t, out, "- **Lines Cleared:** 2")
	assert.Contains(t, out, "identical after 12 events")
	assert.Contains(t, out, "| GameSystem | 60 |")
}

func TestSoakReplays(t *testing.T) {
	opts := srs.DefaultOptions()
	opts.Seed = 11
	game := srs.NewGame(opts)
	rec := srs.NewRecorder(game)
	report := &Report{}

	scheduler := loop.NewScheduler()
	gameSystem := &loop.GameSystem{Driver: rec}
	scheduler.Register(gameSystem)
	tally := &tallySystem{game: game, driver: gameSystem, rec: rec, report: report}
	scheduler.Register(tally)
	scheduler.Register(&botSystem{rng: newTestRand(), input: scheduler.Input(), rate: 0.8})

	for i := range 20000 {
		scheduler.Once(float64(i) / 60)
		if report.Replay.Checked {
			break
		}
	}

	require.True(t, report.Replay.Checked, "random play should top out")
	assert.True(t, report.Replay.Match)
	assert.Equal(t, 1, report.Games)
	assert.False(t, game.Over(), "game restarts after top-out")
	assert.Same(t, game, gameSystem.Driver.(*srs.Game))
}

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(5, 6))
}
