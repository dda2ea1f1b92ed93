// Package debugui provides Dear ImGui panels for inspecting and tuning a
// running srs.Game. Panels render through the loop scheduler's deferred
// commands so they always show the state left by the frame's game update.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/srstris/loop"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard
// input. Front-ends check it before treating a key press as a game action.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers every item's render function and refreshes InputState.
// It must run between the backend's BeginFrame and EndFrame.
type ImguiSystem struct {
	Items      []ImguiItem
	InputState ImguiInputState
	// Hidden suppresses all panels while keeping input state current.
	Hidden bool
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *loop.Frame) {
	io := imgui.CurrentIO()
	i.InputState.WantCaptureMouse = io.WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	if i.Hidden {
		return
	}
	for _, item := range i.Items {
		frame.Commands.Defer(item.Render)
	}
}

// Add appends a render function.
func (i *ImguiSystem) Add(render func()) {
	i.Items = append(i.Items, ImguiItem{Render: render})
}
