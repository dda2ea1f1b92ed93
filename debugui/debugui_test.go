package debugui

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/plus3/srstris/srs"
	"github.com/stretchr/testify/assert"
)

var sampleEvents = []srs.ClearEvent{
	{Time: 1, Clear: srs.LineClear{Lines: 2}},
	{Time: 2, Clear: srs.LineClear{Lines: 1, Spin: true}},
	{Time: 3, Clear: srs.LineClear{Lines: 4}},
	{Time: 4, Clear: srs.LineClear{Lines: 1}},
}

func TestSummarize(t *testing.T) {
	got := summarize(sampleEvents)
	want := ClearSummary{Total: 4, Spins: 1, ByLines: [5]int{0, 2, 1, 0, 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("summarize mismatch (-want +got):\n%s", diff)
	}
}

func TestSortEvents(t *testing.T) {
	times := func(events []srs.ClearEvent) []float64 {
		out := make([]float64, len(events))
		for i, e := range events {
			out[i] = e.Time
		}
		return out
	}

	assert.Equal(t, []float64{1, 2, 3, 4}, times(sortEvents(sampleEvents, 0, true)))
	assert.Equal(t, []float64{4, 3, 2, 1}, times(sortEvents(sampleEvents, 0, false)))
	assert.Equal(t, []float64{2, 4, 1, 3}, times(sortEvents(sampleEvents, 1, true)))
	assert.Equal(t, []float64{3, 1, 2, 4}, times(sortEvents(sampleEvents, 1, false)))
	assert.Equal(t, []float64{2, 1, 3, 4}, times(sortEvents(sampleEvents, 2, false)))

	assert.Equal(t, 1.0, sampleEvents[0].Time, "input must not be reordered")
}

func TestFrameRing(t *testing.T) {
	r := newFrameRing(3)
	assert.Zero(t, r.average())

	r.push(1)
	r.push(2)
	assert.Equal(t, []float32{0, 1, 2}, r.ordered())
	assert.Equal(t, float32(1.5), r.average())

	r.push(3)
	r.push(4)
	assert.Equal(t, []float32{2, 3, 4}, r.ordered())
	assert.Equal(t, float32(3), r.average())
}

func TestFieldLines(t *testing.T) {
	opts := srs.Options{Width: 10, Height: 20, Spawn: srs.V(5, 17), GravityRate: 1.5, Seed: 3}
	want := []string{
		"Width: 10",
		"Height: 20",
		"Spawn: (5,17)",
		"GravityRate: 1.5",
		"LockDelay: 0",
		"GroundedLock: false",
		"HistorySize: 0",
		"Seed: 3",
	}
	if diff := cmp.Diff(want, fieldLines("", reflect.ValueOf(opts))); diff != "" {
		t.Errorf("fieldLines mismatch (-want +got):\n%s", diff)
	}
}

func TestQueueText(t *testing.T) {
	assert.Equal(t, "I T Z", queueText([]srs.Type{srs.I, srs.T, srs.Z}))
	assert.Empty(t, queueText(nil))
}
