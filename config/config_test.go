package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/srstris/srs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	opts := cfg.Options()
	assert.Equal(t, 10, opts.Width)
	assert.Equal(t, 20, opts.Height)
	assert.Equal(t, srs.Vec{}, opts.Spawn)
	assert.Equal(t, 100, opts.HistorySize)
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse(`
[game]
gravity_rate = 2.5
seed = 42

[keys]
hold = ["a"]
`)
	require.NoError(t, err)

	assert.Equal(t, 2.5, cfg.Game.GravityRate)
	assert.Equal(t, uint64(42), cfg.Game.Seed)
	assert.Equal(t, 10, cfg.Game.Width, "untouched fields keep defaults")
	assert.Equal(t, 60, cfg.Display.FPS)

	bindings, err := cfg.Bindings()
	require.NoError(t, err)
	assert.Equal(t, srs.Hold, bindings["a"])
	assert.NotContains(t, bindings, "c")
	assert.Equal(t, srs.RotateRight, bindings["up"])
}

func TestParseSpawnOverride(t *testing.T) {
	cfg, err := Parse("[game]\nspawn_x = 3\nspawn_y = 15\n")
	require.NoError(t, err)
	assert.Equal(t, srs.V(3, 15), cfg.Options().Spawn)
}

func TestParseGroundedLock(t *testing.T) {
	assert.False(t, Default().Options().GroundedLock)

	cfg, err := Parse("[game]\ngrounded_lock = true\n")
	require.NoError(t, err)
	assert.True(t, cfg.Options().GroundedLock)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		isErr error
	}{
		{name: "syntax", input: "[game\nwidth = 3"},
		{name: "unknown key", input: "[game]\nspeed = 3"},
		{name: "narrow", input: "[game]\nwidth = 3", isErr: ErrInvalid},
		{name: "negative gravity", input: "[game]\ngravity_rate = -1", isErr: ErrInvalid},
		{name: "too many previews", input: "[game]\npreview = 8", isErr: ErrInvalid},
		{name: "spawn outside", input: "[game]\nspawn_x = 10\nspawn_y = 1", isErr: ErrInvalid},
		{name: "zero fps", input: "[display]\nfps = 0", isErr: ErrInvalid},
		{name: "unknown action", input: "[keys]\nteleport = [\"t\"]"},
		{name: "conflicting key", input: "[keys]\nhold = [\"x\"]", isErr: ErrInvalid},
		{name: "empty key name", input: "[keys]\nhold = [\" \"]", isErr: ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			if tt.isErr != nil {
				assert.ErrorIs(t, err, tt.isErr)
			}
		})
	}
}

func TestBindingsNormalizeCase(t *testing.T) {
	cfg := Default()
	cfg.Keys = map[string][]string{"hard-drop": {" Space "}, "soft-drop": {"DOWN", "s"}}

	bindings, err := cfg.Bindings()
	require.NoError(t, err)
	assert.Equal(t, map[string]srs.Action{
		"space": srs.HardDrop,
		"down":  srs.SoftDrop,
		"s":     srs.SoftDrop,
	}, bindings)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "srstris.toml")
	require.NoError(t, os.WriteFile(path, []byte("[display]\ncell_size = 16\nghost = false\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Display.CellSize)
	assert.False(t, cfg.Display.Ghost)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Game.Seed = 9
	cfg.Display.Debug = true

	var buf bytes.Buffer
	require.NoError(t, cfg.Write(&buf))

	got, err := Parse(buf.String())
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
