package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/srstris/config"
	"github.com/plus3/srstris/loop"
	"github.com/plus3/srstris/srs"
)

// drawSystem redraws the screen once the frame's game update has run.
type drawSystem struct {
	renderer *renderer
	game     *srs.Game
	previews int
}

func (s *drawSystem) Execute(frame *loop.Frame) {
	frame.Commands.Defer(func() {
		s.renderer.draw(s.game, s.previews)
	})
}

type control int

const (
	controlQuit control = iota
	controlReset
	controlRedraw
)

// pollInput forwards key events until the screen is finalized. Game actions go
// straight to the input queue; everything else is reported on controls.
func pollInput(screen tcell.Screen, km keymap, input *loop.Input, controls chan<- control) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				controls <- controlQuit
				continue
			}
			if ev.Key() == tcell.KeyRune && ev.Rune() == resetRune {
				controls <- controlReset
				continue
			}
			if a, ok := km.lookup(ev); ok {
				input.Push(a)
			}
		case *tcell.EventResize:
			controls <- controlRedraw
		}
	}
}

func run(cfg config.Config, opts srs.Options) error {
	bindings, err := cfg.Bindings()
	if err != nil {
		return err
	}
	km, skipped := newKeymap(bindings)
	if len(skipped) > 0 {
		sort.Strings(skipped)
		log.Printf("Ignoring key names the terminal cannot report: %v", skipped)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	game := srs.NewGame(opts)
	scheduler := loop.NewScheduler()
	scheduler.Register(&loop.GameSystem{Driver: game})
	scheduler.Register(&drawSystem{
		renderer: &renderer{screen: screen, ghost: cfg.Display.Ghost},
		game:     game,
		previews: cfg.Game.Preview,
	})

	controls := make(chan control, 16)
	go pollInput(screen, km, scheduler.Input(), controls)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	clock := loop.WallClock(time.Now())
	ticker := time.NewTicker(time.Second / time.Duration(cfg.Display.FPS))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case c := <-controls:
			switch c {
			case controlQuit:
				log.Println("Quit requested")
				cancel()
			case controlReset:
				log.Println("Reset")
				game.Reset()
			case controlRedraw:
				screen.Sync()
			}
		case <-ticker.C:
			scheduler.Once(clock())
		}
	}
}

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file.")
	logPath := flag.String("log", "", "Write log output to this file instead of discarding it.")
	seed := flag.Uint64("seed", 0, "Piece sequence seed; 0 picks one from the clock.")
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}

	opts := cfg.Options()
	switch {
	case *seed != 0:
		opts.Seed = *seed
	case opts.Seed == 0:
		opts.Seed = uint64(time.Now().UnixNano())
	}
	log.Printf("Starting srstris-term with seed %d", opts.Seed)

	if err := run(cfg, opts); err != nil {
		log.Printf("Exited with error: %v", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
