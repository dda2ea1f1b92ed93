package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/srstris/config"
	"github.com/plus3/srstris/debugui"
	debugui_ebiten "github.com/plus3/srstris/debugui/ebiten"
	"github.com/plus3/srstris/loop"
	"github.com/plus3/srstris/srs"
)

type app struct {
	cfg       config.Config
	game      *srs.Game
	scheduler *loop.Scheduler
	clock     loop.Clock
	keys      map[ebiten.Key]srs.Action
	layout    layout
	pressed   []ebiten.Key

	imguiBackend *debugui_ebiten.ImguiBackend
	imguiSystem  *debugui.ImguiSystem
}

func (a *app) Update() error {
	if a.imguiBackend != nil {
		a.imguiBackend.BeginFrame()
		defer a.imguiBackend.EndFrame()
	}

	a.pressed = inpututil.AppendJustPressedKeys(a.pressed[:0])
	for _, key := range a.pressed {
		switch key {
		case quitKey:
			return ebiten.Termination
		case debugKey:
			if a.imguiSystem != nil {
				a.imguiSystem.Hidden = !a.imguiSystem.Hidden
			}
			continue
		}
		if a.imguiSystem != nil && !a.imguiSystem.Hidden && a.imguiSystem.InputState.WantCaptureKeyboard {
			continue
		}
		if key == resetKey {
			a.game.Reset()
			continue
		}
		if action, ok := a.keys[key]; ok {
			a.scheduler.Input().Push(action)
		}
	}

	a.scheduler.Once(a.clock())
	return nil
}

func (a *app) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	a.drawWell(screen)
	a.drawSide(screen)

	if a.imguiBackend != nil {
		a.imguiBackend.Draw(screen)
	}
}

func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.imguiBackend != nil {
		a.imguiBackend.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return a.screenSize()
}

func (a *app) screenSize() (int, int) {
	opts := a.game.Options()
	cell := a.cfg.Display.CellSize
	return (opts.Width + 12) * cell, (opts.Height + 3) * cell
}

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug panels (F1 toggles).")
	seed := flag.Uint64("seed", 0, "Piece sequence seed; 0 picks one from the clock.")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *debug {
		cfg.Display.Debug = true
	}

	opts := cfg.Options()
	switch {
	case *seed != 0:
		opts.Seed = *seed
	case opts.Seed == 0:
		opts.Seed = uint64(time.Now().UnixNano())
	}
	log.Printf("Starting srstris with seed %d", opts.Seed)

	bindings, err := cfg.Bindings()
	if err != nil {
		log.Fatalf("Invalid key bindings: %v", err)
	}
	keys, err := resolveKeys(bindings)
	if err != nil {
		log.Fatalf("Invalid key bindings: %v", err)
	}

	a := &app{
		cfg:       cfg,
		game:      srs.NewGame(opts),
		scheduler: loop.NewScheduler(),
		clock:     loop.WallClock(time.Now()),
		keys:      keys,
		layout:    newLayout(cfg.Display.CellSize),
	}
	a.scheduler.Register(&loop.GameSystem{Driver: a.game})

	ebiten.SetTPS(cfg.Display.FPS)
	width, height := a.screenSize()
	if cfg.Display.Debug {
		a.imguiBackend = debugui_ebiten.NewImguiBackend("srstris (debug)", width*2, height)
		a.imguiSystem = debugui.Install(a.scheduler, a.game, a.clock)
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle("srstris")
	}

	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("Game exited with error: %v", err)
	}
}
