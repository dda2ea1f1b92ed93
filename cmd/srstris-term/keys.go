package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/srstris/srs"
)

var specialKeys = map[string]tcell.Key{
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
}

var runeAliases = map[string]rune{
	"space": ' ',
}

// keymap resolves tcell key events to actions.
type keymap struct {
	keys  map[tcell.Key]srs.Action
	runes map[rune]srs.Action
}

// newKeymap builds a keymap from name bindings. Names a terminal cannot
// report, such as a bare shift, are returned in skipped.
func newKeymap(bindings map[string]srs.Action) (km keymap, skipped []string) {
	km = keymap{
		keys:  make(map[tcell.Key]srs.Action),
		runes: make(map[rune]srs.Action),
	}
	for name, action := range bindings {
		if key, ok := specialKeys[name]; ok {
			km.keys[key] = action
			continue
		}
		if r, ok := runeAliases[name]; ok {
			km.runes[r] = action
			continue
		}
		if runes := []rune(name); len(runes) == 1 && runes[0] != resetRune {
			km.runes[runes[0]] = action
			continue
		}
		skipped = append(skipped, name)
	}
	return km, skipped
}

func (km keymap) lookup(ev *tcell.EventKey) (srs.Action, bool) {
	if ev.Key() == tcell.KeyRune {
		a, ok := km.runes[ev.Rune()]
		return a, ok
	}
	a, ok := km.keys[ev.Key()]
	return a, ok
}

const resetRune = 'r'
