package srs

import "fmt"

// Action is a discrete player input.
type Action uint8

const (
	MoveLeft    Action = iota // move-left
	MoveRight                 // move-right
	RotateLeft                // rotate-left
	RotateRight               // rotate-right
	SoftDrop                  // soft-drop
	HardDrop                  // hard-drop
	Hold                      // hold
)

// Actions lists every action in declaration order.
var Actions = [...]Action{MoveLeft, MoveRight, RotateLeft, RotateRight, SoftDrop, HardDrop, Hold}

// ParseAction maps an action name such as "rotate-right" back to its Action.
func ParseAction(name string) (Action, error) {
	for _, a := range Actions {
		if a.String() == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("srs: unknown action %q", name)
}
