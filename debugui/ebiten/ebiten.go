// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
// Use this to integrate Dear ImGui rendering into Ebiten game loops.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the backend and its window, along with the ImPlot
// context the performance panel draws into. ImGui's ini file is disabled so
// panel layout is not persisted next to the binary.
func NewImguiBackend(title string, width, height int) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	ensurePlotContext()
	return &ImguiBackend{EbitenBackend: backend}
}

// ensurePlotContext creates an ImPlot context unless one is already current.
func ensurePlotContext() {
	if ctx := implot.GetCurrentContext(); ctx != nil && ctx.CData != nil {
		return
	}
	implot.SetCurrentContext(implot.CreateContext())
}
