package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/srstris/srs"
)

const (
	boardXOffset = 14
	boardYOffset = 1
	sideWidth    = 12
)

var (
	styleDefault = tcell.StyleDefault
	styleWall    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleText    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleAlert   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

var pieceColors = map[srs.Type]tcell.Color{
	srs.I: tcell.ColorAqua,
	srs.J: tcell.ColorBlue,
	srs.L: tcell.ColorWhite,
	srs.O: tcell.ColorYellow,
	srs.S: tcell.ColorLime,
	srs.T: tcell.ColorFuchsia,
	srs.Z: tcell.ColorRed,
}

// cellGlyph returns the two runes and style for one matrix cell.
func cellGlyph(b srs.Block, ghost bool) (rune, rune, tcell.Style) {
	switch {
	case b.Ghost && ghost:
		return '░', '░', styleDefault.Foreground(pieceColors[b.Source]).Dim(true)
	case !b.Solid:
		return ' ', ' ', styleDefault
	case b.Source == srs.Wall || b.Source == srs.Empty:
		return '▓', '▓', styleWall
	default:
		return '█', '█', styleDefault.Foreground(pieceColors[b.Source])
	}
}

type renderer struct {
	screen tcell.Screen
	ghost  bool
}

func (r *renderer) text(x, y int, s string, style tcell.Style) {
	for _, c := range s {
		r.screen.SetContent(x, y, c, nil, style)
		x++
	}
}

// grid draws g with its top row at screen row y. Each block is two columns wide.
func (r *renderer) grid(g srs.Grid, x, y int) {
	for pos, b := range g.All() {
		left, right, style := cellGlyph(b, r.ghost)
		sx := x + pos.X*2
		sy := y + g.Height() - 1 - pos.Y
		r.screen.SetContent(sx, sy, left, nil, style)
		r.screen.SetContent(sx+1, sy, right, nil, style)
	}
}

func (r *renderer) draw(g *srs.Game, previews int) {
	r.screen.Clear()

	m := g.Matrix()
	w, h := m.Width(), m.Height()
	for y := 0; y <= h; y++ {
		r.screen.SetContent(boardXOffset-1, boardYOffset+y, '▓', nil, styleWall)
		r.screen.SetContent(boardXOffset+w*2, boardYOffset+y, '▓', nil, styleWall)
	}
	for x := 0; x < w*2; x++ {
		r.screen.SetContent(boardXOffset+x, boardYOffset+h, '▓', nil, styleWall)
	}
	r.grid(m, boardXOffset, boardYOffset)

	r.text(1, boardYOffset, "HOLD", styleText)
	if held, ok := g.Held(); ok {
		r.grid(srs.PreviewGrid(held), 1, boardYOffset+1)
		if !g.HoldAvailable() {
			r.text(1, boardYOffset+4, "(used)", styleWall)
		}
	}

	sideX := boardXOffset + w*2 + 3
	r.text(sideX, boardYOffset, "NEXT", styleText)
	y := boardYOffset + 1
	for _, p := range g.NextPreview(previews) {
		r.grid(p, sideX, y)
		y += p.Height() + 1
	}

	status := "Last clear: -"
	if last, ok := g.LastLineClear(); ok {
		status = fmt.Sprintf("Last clear: %s", last.Clear)
	}
	r.text(boardXOffset, boardYOffset+h+1, status, styleText)

	if g.Over() {
		r.text(boardXOffset+2, boardYOffset+h/2, "GAME OVER", styleAlert)
		r.text(boardXOffset+2, boardYOffset+h/2+1, "r to restart", styleText)
	}

	r.screen.Show()
}
