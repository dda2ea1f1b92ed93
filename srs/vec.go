package srs

import "fmt"

// Vec is an integer 2D vector. X grows to the right, Y grows upward.
type Vec struct {
	X, Y int
}

// V is shorthand for Vec{x, y}.
func V(x, y int) Vec {
	return Vec{X: x, Y: y}
}

func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec) Sub(o Vec) Vec {
	return v.Add(o.Neg())
}

func (v Vec) Neg() Vec {
	return Vec{X: -v.X, Y: -v.Y}
}

func (v Vec) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

// Unit translations used by movement and immobility checks.
var (
	Left  = Vec{X: -1}
	Right = Vec{X: 1}
	Down  = Vec{Y: -1}
	Up    = Vec{Y: 1}
)
