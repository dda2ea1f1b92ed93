package debugui

import (
	"fmt"
	"slices"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/srstris/srs"
)

// ClearSummary tallies a clear history by line count.
type ClearSummary struct {
	Total int
	Spins int
	// ByLines[n] counts clears of n lines; index 0 is unused.
	ByLines [5]int
}

func summarize(events []srs.ClearEvent) ClearSummary {
	var s ClearSummary
	for _, e := range events {
		s.Total++
		if e.Clear.Spin {
			s.Spins++
		}
		if e.Clear.Lines > 0 && e.Clear.Lines < len(s.ByLines) {
			s.ByLines[e.Clear.Lines]++
		}
	}
	return s
}

// sortEvents orders a copy of events by column: 0 time, 1 lines, 2 spin.
// Ties keep chronological order.
func sortEvents(events []srs.ClearEvent, column int, ascending bool) []srs.ClearEvent {
	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b srs.ClearEvent) int {
		var c int
		switch column {
		case 1:
			c = a.Clear.Lines - b.Clear.Lines
		case 2:
			c = boolInt(a.Clear.Spin) - boolInt(b.Clear.Spin)
		default:
			switch {
			case a.Time < b.Time:
				c = -1
			case a.Time > b.Time:
				c = 1
			}
		}
		if !ascending {
			return -c
		}
		return c
	})
	return sorted
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

type ClearHistoryComponent struct {
	game          *srs.Game
	sortColumn    int
	sortAscending bool
}

func NewClearHistoryComponent(g *srs.Game) ClearHistoryComponent {
	return ClearHistoryComponent{game: g}
}

func (ch *ClearHistoryComponent) Render() {
	if !imgui.BeginV("Clear History", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	events := ch.game.History()
	summary := summarize(events)
	imgui.Text(fmt.Sprintf("Clears: %d  Spins: %d", summary.Total, summary.Spins))
	for n := 1; n < len(summary.ByLines); n++ {
		imgui.BulletText(fmt.Sprintf("%s: %d", srs.LineClear{Lines: n}, summary.ByLines[n]))
	}

	if last, ok := ch.game.LastLineClear(); ok {
		imgui.Text(fmt.Sprintf("Last: %s at %.2fs", last.Clear, last.Time))
	}
	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("ClearTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Time (s)")
		imgui.TableSetupColumn("Lines")
		imgui.TableSetupColumn("Clear")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			ch.sortColumn = int(spec.ColumnIndex())
			ch.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortSpecs.SetSpecsDirty(false)
		}

		for _, e := range sortEvents(events, ch.sortColumn, ch.sortAscending) {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.2f", e.Time))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", e.Clear.Lines))

			imgui.TableNextColumn()
			imgui.Text(e.Clear.String())
		}

		imgui.EndTable()
	}

	imgui.End()
}
