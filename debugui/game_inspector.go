package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/srstris/srs"
)

// GameInspectorComponent shows the live game state and lets the player tune
// gravity and lock delay without restarting.
type GameInspectorComponent struct {
	game       *srs.Game
	clock      func() float64
	previews   int32
	showMatrix bool
}

// NewGameInspectorComponent inspects g. clock reports the current game time
// and is used to show how long the active piece has been idle.
func NewGameInspectorComponent(g *srs.Game, clock func() float64) GameInspectorComponent {
	return GameInspectorComponent{
		game:     g,
		clock:    clock,
		previews: 5,
	}
}

func (gi *GameInspectorComponent) Render() {
	if !imgui.BeginV("Game Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	g := gi.game
	if g.Over() {
		imgui.Text("State: game over")
	} else {
		imgui.Text("State: playing")
	}

	if p, ok := g.Active(); ok {
		imgui.Text(fmt.Sprintf("Active: %s at %s rot %d", p.Type(), p.Position(), p.Rotation()))
		imgui.Text(fmt.Sprintf("Idle: %.2fs  Grounded: %t", p.Idle(gi.clock()), p.Grounded(g.Playfield().View())))
	} else {
		imgui.Text("Active: none")
	}

	held, ok := g.Held()
	holdText := "empty"
	if ok {
		holdText = held.String()
	}
	imgui.Text(fmt.Sprintf("Hold: %s (available: %t)", holdText, g.HoldAvailable()))

	imgui.SetNextItemWidth(100)
	imgui.InputInt("Queue length", &gi.previews)
	gi.previews = max(0, min(gi.previews, 14))
	imgui.Text("Next: " + queueText(g.Next(int(gi.previews))))

	imgui.Separator()

	opts := g.Options()
	gravity := float32(opts.GravityRate)
	imgui.SetNextItemWidth(150)
	if imgui.InputFloat("Gravity (rows/s)", &gravity) && gravity >= 0 {
		g.SetGravityRate(float64(gravity))
	}

	lockDelay := float32(opts.LockDelay)
	imgui.SetNextItemWidth(150)
	if imgui.InputFloat("Lock delay (s)", &lockDelay) && lockDelay >= 0 {
		g.SetLockDelay(float64(lockDelay))
	}

	if imgui.Button("Reset") {
		g.Reset()
	}
	imgui.SameLine()
	imgui.Checkbox("Show matrix", &gi.showMatrix)

	renderValue("Options", g.Options())

	if gi.showMatrix {
		imgui.Separator()
		for _, line := range strings.Split(g.Matrix().String(), "\n") {
			imgui.Text(line)
		}
	}

	imgui.End()
}

func queueText(types []srs.Type) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return strings.Join(names, " ")
}
