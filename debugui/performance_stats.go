package debugui

import (
	"fmt"
	"sort"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/plus3/srstris/loop"
)

// frameRing is a fixed-size history of samples, oldest overwritten first.
type frameRing struct {
	samples []float32
	offset  int
	filled  int
}

func newFrameRing(size int) *frameRing {
	return &frameRing{samples: make([]float32, size)}
}

func (r *frameRing) push(v float32) {
	r.samples[r.offset] = v
	r.offset = (r.offset + 1) % len(r.samples)
	r.filled = min(r.filled+1, len(r.samples))
}

// ordered returns the samples oldest first, padded with leading zeros until
// the ring has filled.
func (r *frameRing) ordered() []float32 {
	out := make([]float32, len(r.samples))
	n := copy(out, r.samples[r.offset:])
	copy(out[n:], r.samples[:r.offset])
	return out
}

func (r *frameRing) average() float32 {
	if r.filled == 0 {
		return 0
	}
	var sum float32
	for _, v := range r.samples {
		sum += v
	}
	return sum / float32(r.filled)
}

type PerformanceStatsComponent struct {
	scheduler *loop.Scheduler
	timer     *FrameTimer
	frames    *frameRing
	latency   map[string]*frameRing
	history   int
}

func NewPerformanceStatsComponent(scheduler *loop.Scheduler, historyFrames int) PerformanceStatsComponent {
	return PerformanceStatsComponent{
		scheduler: scheduler,
		timer:     NewFrameTimer(),
		frames:    newFrameRing(historyFrames),
		latency:   make(map[string]*frameRing),
		history:   historyFrames,
	}
}

func (ps *PerformanceStatsComponent) Render() {
	ps.frames.push(ps.timer.GetDeltaTime() * 1000.0)

	stats := ps.scheduler.GetStats()
	for _, sys := range stats.Systems {
		ring, ok := ps.latency[sys.Name]
		if !ok {
			ring = newFrameRing(ps.history)
			ps.latency[sys.Name] = ring
		}
		ring.push(float32(sys.LastDuration.Microseconds()) / 1000.0)
	}

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avgFrameTime := ps.frames.average()
	fps := float32(0)
	if avgFrameTime > 0 {
		fps = 1000.0 / avgFrameTime
	}
	imgui.Text(fmt.Sprintf("Frames: %d  Systems: %d", stats.Frames, stats.SystemCount))
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, fps))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	frameSamples := ps.frames.ordered()
	imgui.PlotLinesFloatPtr("##frametime", &frameSamples[0], int32(len(frameSamples)))

	if imgui.TreeNodeStr("System Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg (ms)")
			imgui.TableSetupColumn("Min (ms)")
			imgui.TableSetupColumn("Max (ms)")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(millis(sys.AvgDuration))
				imgui.TableNextColumn()
				imgui.Text(millis(sys.MinDuration))
				imgui.TableNextColumn()
				imgui.Text(millis(sys.MaxDuration))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("System Latency") {
		names := make([]string, 0, len(ps.latency))
		for name := range ps.latency {
			names = append(names, name)
		}
		sort.Strings(names)

		if implot.BeginPlotV("System Latency", imgui.NewVec2(-1, 200), 0) {
			implot.SetupAxesV("Frame", "Time (ms)", 0, implot.AxisFlagsAutoFit)
			for _, name := range names {
				samples := ps.latency[name].ordered()
				implot.PlotLineFloatPtrInt(name, &samples[0], int32(len(samples)))
			}
			implot.EndPlot()
		}
		imgui.TreePop()
	}

	imgui.End()
}

func millis(d time.Duration) string {
	return fmt.Sprintf("%.3f", float64(d.Microseconds())/1000.0)
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
