// Package config loads the TOML settings shared by the srstris front-ends.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/plus3/srstris/srs"
)

// Config is the decoded form of a settings file.
type Config struct {
	Game    Game    `toml:"game"`
	Display Display `toml:"display"`
	// Keys maps an action name (see srs.ParseAction) to the key names bound to it.
	Keys map[string][]string `toml:"keys"`
}

type Game struct {
	Width       int     `toml:"width"`
	Height      int     `toml:"height"`
	GravityRate float64 `toml:"gravity_rate"`
	LockDelay   float64 `toml:"lock_delay"`
	// GroundedLock only force-locks pieces that rest on something.
	GroundedLock bool   `toml:"grounded_lock"`
	Preview      int    `toml:"preview"`
	History      int    `toml:"history"`
	Seed         uint64 `toml:"seed"`
	// SpawnX and SpawnY override the spawn point when both are non-zero.
	SpawnX int `toml:"spawn_x"`
	SpawnY int `toml:"spawn_y"`
}

type Display struct {
	FPS      int  `toml:"fps"`
	CellSize int  `toml:"cell_size"`
	Ghost    bool `toml:"ghost"`
	Debug    bool `toml:"debug"`
}

// MaxPreview is the most upcoming pieces a front-end may show.
const MaxPreview = 7

var ErrInvalid = errors.New("config: invalid value")

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Game: Game{
			Width:       10,
			Height:      20,
			GravityRate: 2,
			LockDelay:   1,
			Preview:     5,
			History:     100,
		},
		Display: Display{
			FPS:      60,
			CellSize: 24,
			Ghost:    true,
		},
		Keys: DefaultKeys(),
	}
}

// DefaultKeys returns a fresh copy of the stock key bindings.
func DefaultKeys() map[string][]string {
	return map[string][]string{
		srs.MoveLeft.String():    {"left"},
		srs.MoveRight.String():   {"right"},
		srs.RotateLeft.String():  {"z"},
		srs.RotateRight.String(): {"x", "up"},
		srs.SoftDrop.String():    {"down"},
		srs.HardDrop.String():    {"space"},
		srs.Hold.String():        {"c", "shift"},
	}
}

// Load reads path and overlays it onto Default. Keys not present in the file
// keep their default value; unknown keys are an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(string(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML text onto Default and validates the result.
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config: unknown keys %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Write encodes cfg as TOML.
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

func (c Config) Validate() error {
	g := c.Game
	switch {
	case g.Width < 4:
		return fmt.Errorf("%w: game.width %d is below 4", ErrInvalid, g.Width)
	case g.Height < 4:
		return fmt.Errorf("%w: game.height %d is below 4", ErrInvalid, g.Height)
	case g.GravityRate < 0:
		return fmt.Errorf("%w: game.gravity_rate %g is negative", ErrInvalid, g.GravityRate)
	case g.LockDelay < 0:
		return fmt.Errorf("%w: game.lock_delay %g is negative", ErrInvalid, g.LockDelay)
	case g.Preview < 0 || g.Preview > MaxPreview:
		return fmt.Errorf("%w: game.preview %d outside 0..%d", ErrInvalid, g.Preview, MaxPreview)
	case g.History < 1:
		return fmt.Errorf("%w: game.history %d is below 1", ErrInvalid, g.History)
	}
	if g.SpawnX != 0 || g.SpawnY != 0 {
		if g.SpawnX < 0 || g.SpawnX >= g.Width || g.SpawnY < 0 || g.SpawnY >= g.Height {
			return fmt.Errorf("%w: spawn (%d, %d) outside %dx%d", ErrInvalid, g.SpawnX, g.SpawnY, g.Width, g.Height)
		}
	}

	d := c.Display
	if d.FPS < 1 {
		return fmt.Errorf("%w: display.fps %d is below 1", ErrInvalid, d.FPS)
	}
	if d.CellSize < 1 {
		return fmt.Errorf("%w: display.cell_size %d is below 1", ErrInvalid, d.CellSize)
	}

	_, err := c.Bindings()
	return err
}

// Options converts the game section to engine options.
func (c Config) Options() srs.Options {
	opts := srs.Options{
		Width:        c.Game.Width,
		Height:       c.Game.Height,
		GravityRate:  c.Game.GravityRate,
		LockDelay:    c.Game.LockDelay,
		HistorySize:  c.Game.History,
		GroundedLock: c.Game.GroundedLock,
		Seed:         c.Game.Seed,
	}
	if c.Game.SpawnX != 0 || c.Game.SpawnY != 0 {
		opts.Spawn = srs.V(c.Game.SpawnX, c.Game.SpawnY)
	}
	return opts
}

// Bindings resolves the key table to a lookup from lower-cased key name to
// action. A key bound to two different actions is an error.
func (c Config) Bindings() (map[string]srs.Action, error) {
	names := make([]string, 0, len(c.Keys))
	for name := range c.Keys {
		names = append(names, name)
	}
	slices.Sort(names)

	out := make(map[string]srs.Action)
	for _, name := range names {
		action, err := srs.ParseAction(name)
		if err != nil {
			return nil, fmt.Errorf("config: keys.%s: %w", name, err)
		}
		for _, key := range c.Keys[name] {
			key = strings.ToLower(strings.TrimSpace(key))
			if key == "" {
				return nil, fmt.Errorf("%w: keys.%s has an empty key name", ErrInvalid, name)
			}
			if prev, ok := out[key]; ok && prev != action {
				return nil, fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalid, key, prev, action)
			}
			out[key] = action
		}
	}
	return out, nil
}
