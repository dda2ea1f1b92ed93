package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/srstris/srs"
)

var keyNames = map[string]ebiten.Key{
	"left":      ebiten.KeyArrowLeft,
	"right":     ebiten.KeyArrowRight,
	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
	"space":     ebiten.KeySpace,
	"enter":     ebiten.KeyEnter,
	"tab":       ebiten.KeyTab,
	"shift":     ebiten.KeyShiftLeft,
	"rshift":    ebiten.KeyShiftRight,
	"ctrl":      ebiten.KeyControlLeft,
	"rctrl":     ebiten.KeyControlRight,
	"alt":       ebiten.KeyAltLeft,
	"a":         ebiten.KeyA,
	"b":         ebiten.KeyB,
	"c":         ebiten.KeyC,
	"d":         ebiten.KeyD,
	"e":         ebiten.KeyE,
	"f":         ebiten.KeyF,
	"g":         ebiten.KeyG,
	"h":         ebiten.KeyH,
	"i":         ebiten.KeyI,
	"j":         ebiten.KeyJ,
	"k":         ebiten.KeyK,
	"l":         ebiten.KeyL,
	"m":         ebiten.KeyM,
	"n":         ebiten.KeyN,
	"o":         ebiten.KeyO,
	"p":         ebiten.KeyP,
	"q":         ebiten.KeyQ,
	"s":         ebiten.KeyS,
	"t":         ebiten.KeyT,
	"u":         ebiten.KeyU,
	"v":         ebiten.KeyV,
	"w":         ebiten.KeyW,
	"x":         ebiten.KeyX,
	"y":         ebiten.KeyY,
	"z":         ebiten.KeyZ,
	"0":         ebiten.KeyDigit0,
	"1":         ebiten.KeyDigit1,
	"2":         ebiten.KeyDigit2,
	"3":         ebiten.KeyDigit3,
	"4":         ebiten.KeyDigit4,
	"5":         ebiten.KeyDigit5,
	"6":         ebiten.KeyDigit6,
	"7":         ebiten.KeyDigit7,
	"8":         ebiten.KeyDigit8,
	"9":         ebiten.KeyDigit9,
	"kp0":       ebiten.KeyNumpad0,
	"kp8":       ebiten.KeyNumpad8,
	"kp4":       ebiten.KeyNumpad4,
	"kp6":       ebiten.KeyNumpad6,
	"kp2":       ebiten.KeyNumpad2,
	"backspace": ebiten.KeyBackspace,
}

// Keys reserved for the front-end itself.
const (
	resetKey = ebiten.KeyR
	quitKey  = ebiten.KeyEscape
	debugKey = ebiten.KeyF1
)

// resolveKeys converts name bindings to ebiten keys. Names this front-end
// cannot produce are an error, as is rebinding a reserved key.
func resolveKeys(bindings map[string]srs.Action) (map[ebiten.Key]srs.Action, error) {
	out := make(map[ebiten.Key]srs.Action, len(bindings))
	for name, action := range bindings {
		key, ok := keyNames[name]
		if !ok {
			return nil, fmt.Errorf("key %q for %s is not available", name, action)
		}
		out[key] = action
	}
	return out, nil
}
