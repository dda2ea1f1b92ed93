package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/srstris/srs"
)

var (
	backgroundColor = color.RGBA{20, 20, 28, 255}
	wellColor       = color.RGBA{34, 34, 46, 255}
	gridColor       = color.RGBA{44, 44, 58, 255}
	wallColor       = color.RGBA{120, 120, 130, 255}
)

var pieceColors = map[srs.Type]color.RGBA{
	srs.I: {0, 240, 240, 255},
	srs.J: {0, 0, 240, 255},
	srs.L: {240, 160, 0, 255},
	srs.O: {240, 240, 0, 255},
	srs.S: {0, 240, 0, 255},
	srs.T: {160, 0, 240, 255},
	srs.Z: {240, 0, 0, 255},
}

// blockColor returns the fill for b, and false for cells that draw nothing.
func blockColor(b srs.Block, ghost bool) (color.RGBA, bool) {
	switch {
	case b.Ghost:
		if !ghost {
			return color.RGBA{}, false
		}
		c := pieceColors[b.Source]
		return color.RGBA{c.R / 4, c.G / 4, c.B / 4, 255}, true
	case !b.Solid:
		return color.RGBA{}, false
	case b.Source == srs.Wall || b.Source == srs.Empty:
		return wallColor, true
	default:
		return pieceColors[b.Source], true
	}
}

type layout struct {
	cell    float32
	originX float32
	originY float32
}

func newLayout(cellSize int) layout {
	cell := float32(cellSize)
	return layout{cell: cell, originX: cell * 6, originY: cell}
}

// drawGrid draws g with its bottom-left cell at (x, y+height) in screen space.
func (l layout) drawGrid(screen *ebiten.Image, g srs.Grid, x, y float32, ghost bool) {
	h := g.Height()
	for pos, b := range g.All() {
		c, ok := blockColor(b, ghost)
		if !ok {
			continue
		}
		sx := x + float32(pos.X)*l.cell
		sy := y + float32(h-1-pos.Y)*l.cell
		vector.DrawFilledRect(screen, sx+1, sy+1, l.cell-2, l.cell-2, c, false)
	}
}

func (a *app) drawWell(screen *ebiten.Image) {
	l := a.layout
	g := a.game.Matrix()
	w, h := float32(g.Width())*l.cell, float32(g.Height())*l.cell

	vector.DrawFilledRect(screen, l.originX, l.originY, w, h, wellColor, false)
	for x := 1; x < g.Width(); x++ {
		sx := l.originX + float32(x)*l.cell
		vector.StrokeLine(screen, sx, l.originY, sx, l.originY+h, 1, gridColor, false)
	}
	vector.StrokeRect(screen, l.originX-1, l.originY-1, w+2, h+2, 2, wallColor, false)

	l.drawGrid(screen, g, l.originX, l.originY, a.cfg.Display.Ghost)
}

func (a *app) drawSide(screen *ebiten.Image) {
	l := a.layout
	wellRight := l.originX + float32(a.game.Options().Width)*l.cell + l.cell

	ebitenutil.DebugPrintAt(screen, "HOLD", int(l.cell), int(l.originY))
	if held, ok := a.game.Held(); ok {
		preview := srs.PreviewGrid(held)
		if !a.game.HoldAvailable() {
			preview = dimmed(preview)
		}
		l.drawGrid(screen, preview, l.cell, l.originY+16, false)
	}

	ebitenutil.DebugPrintAt(screen, "NEXT", int(wellRight), int(l.originY))
	y := l.originY + 16
	for _, g := range a.game.NextPreview(a.cfg.Game.Preview) {
		l.drawGrid(screen, g, wellRight, y, false)
		y += float32(g.Height()+1) * l.cell
	}

	status := "Last clear: -"
	if last, ok := a.game.LastLineClear(); ok {
		status = fmt.Sprintf("Last clear: %s", last.Clear)
	}
	bottom := int(l.originY + float32(a.game.Options().Height)*l.cell + 8)
	ebitenutil.DebugPrintAt(screen, status, int(l.originX), bottom)

	if a.game.Over() {
		ebitenutil.DebugPrintAt(screen, "GAME OVER - press R", int(l.originX)+8, int(l.originY)+8)
	}
}

// dimmed renders a hold preview as ghost cells to show hold is spent.
func dimmed(g srs.Grid) srs.Grid {
	out := srs.BlankGrid(g.Width(), g.Height(), srs.Blank)
	return out.Composite(g.Shape().Ghost())
}
