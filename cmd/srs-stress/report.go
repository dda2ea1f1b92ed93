package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/srstris/loop"
	"github.com/plus3/srstris/srs"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Seed     uint64
	FPS      int
	KeyRate  float64
	Width    int
	Height   int

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	GameTime       time.Duration
	Games          int
	Clears         ClearCounts
	Replay         ReplayResult
	UpdateTime     Stats
	Systems        []loop.SystemStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// ClearCounts tallies line clears by size.
type ClearCounts struct {
	Single, Double, Triple, Quadruple int
	Spins                             int
}

func (c *ClearCounts) Add(lc srs.LineClear) {
	switch lc.Lines {
	case 1:
		c.Single++
	case 2:
		c.Double++
	case 3:
		c.Triple++
	case 4:
		c.Quadruple++
	}
	if lc.Spin {
		c.Spins++
	}
}

func (c ClearCounts) Lines() int {
	return c.Single + 2*c.Double + 3*c.Triple + 4*c.Quadruple
}

type ReplayResult struct {
	Checked bool
	Events  int
	Match   bool
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# SRS Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Matrix:** {{.Width}}x{{.Height}}
- **Seed:** {{.Seed}}
- **Simulated FPS:** {{.FPS}}
- **Key Rate:** {{printf "%.2f" .KeyRate}}

## Gameplay
- **Frames:** {{.TotalUpdates}} ({{.GameTime}} of game time)
- **Games Topped Out:** {{.Games}}
- **Lines Cleared:** {{.Clears.Lines}}
  - Single: {{.Clears.Single}}, Double: {{.Clears.Double}}, Triple: {{.Clears.Triple}}, Quadruple: {{.Clears.Quadruple}}
  - Spins: {{.Clears.Spins}}
- **Replay:** {{if .Replay.Match}}identical{{else}}DIVERGED{{end}} after {{.Replay.Events}} events

## Performance Results
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

| System | Runs | Avg | Max |
|---|---|---|---|
{{- range .Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
