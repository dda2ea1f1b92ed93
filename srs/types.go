package srs

//go:generate go run golang.org/x/tools/cmd/stringer -type=Type,Action -linecomment -output=stringer.go

// Type identifies a piece kind. It doubles as the Source tag of a Block.
type Type uint8

const (
	Empty Type = iota // Empty
	I                 // I
	J                 // J
	L                 // L
	O                 // O
	S                 // S
	T                 // T
	Z                 // Z
	Wall              // Wall
)

// Types lists the seven playable piece types.
var Types = [7]Type{I, J, L, O, S, T, Z}

// Playable reports whether t is one of the seven piece types.
func (t Type) Playable() bool {
	return t >= I && t <= Z
}

type rotationTable struct {
	shapes [4]Shape
	// offsets[test][rotation]; the kick for a rotation a->b is offsets[test][a]-offsets[test][b].
	offsets [][4]Vec
}

var tables [Wall]rotationTable

// SRS offset data, see https://harddrop.com/wiki/SRS#How_Guideline_SRS_Really_Works
var (
	offsetsJLSTZ = [][4]Vec{
		{{0, 0}, {0, 0}, {0, 0}, {0, 0}},
		{{0, 0}, {1, 0}, {0, 0}, {-1, 0}},
		{{0, 0}, {1, -1}, {0, 0}, {-1, -1}},
		{{0, 0}, {0, 2}, {0, 0}, {0, 2}},
		{{0, 0}, {1, 2}, {0, 0}, {-1, 2}},
	}
	offsetsI = [][4]Vec{
		{{0, 0}, {-1, 0}, {-1, 1}, {0, 1}},
		{{-1, 0}, {0, 0}, {1, 1}, {0, 1}},
		{{2, 0}, {0, 0}, {-2, 1}, {0, 1}},
		{{-1, 0}, {0, 1}, {1, 0}, {0, -1}},
		{{2, 0}, {0, -2}, {-2, 0}, {0, 2}},
	}
	offsetsO = [][4]Vec{
		{{0, 0}, {0, -1}, {-1, -1}, {-1, 0}},
	}
)

func init() {
	patterns := map[Type][4][]string{
		I: {
			{"#@##"},
			{"#", "@", "#", "#"},
			{"##@#"},
			{"#", "#", "@", "#"},
		},
		J: {
			{"#  ", "#@#"},
			{"##", "@ ", "# "},
			{"#@#", "  #"},
			{" #", " @", "##"},
		},
		L: {
			{"  #", "#@#"},
			{"# ", "@ ", "##"},
			{"#@#", "#  "},
			{"##", " @", " #"},
		},
		O: {
			{"##", "@#"},
			{"@#", "##"},
			{"#@", "##"},
			{"##", "#@"},
		},
		S: {
			{" ##", "#@ "},
			{"# ", "@#", " #"},
			{" @#", "## "},
			{"# ", "#@", " #"},
		},
		T: {
			{" # ", "#@#"},
			{"# ", "@#", "# "},
			{"#@#", " # "},
			{" #", "#@", " #"},
		},
		Z: {
			{"## ", " @#"},
			{" #", "@#", "# "},
			{"#@ ", " ##"},
			{" #", "#@", "# "},
		},
	}
	for t, rotations := range patterns {
		var table rotationTable
		for rot, rows := range rotations {
			table.shapes[rot] = MustParseShape(Mino(t), rows...)
		}
		switch t {
		case I:
			table.offsets = offsetsI
		case O:
			table.offsets = offsetsO
		default:
			table.offsets = offsetsJLSTZ
		}
		tables[t] = table
	}
}

func (t Type) table() *rotationTable {
	if !t.Playable() {
		panic("srs: no rotation table for " + t.String())
	}
	return &tables[t]
}

// Shape returns the piece shape for a rotation state, relative to the pivot.
func (t Type) Shape(rotation int) Shape {
	return t.table().shapes[mod4(rotation)]
}

// Kicks returns the ordered kick tests for rotating from one state to another.
func (t Type) Kicks(from, to int) []Vec {
	offsets := t.table().offsets
	kicks := make([]Vec, len(offsets))
	for i, o := range offsets {
		kicks[i] = o[mod4(from)].Sub(o[mod4(to)])
	}
	return kicks
}

// PreviewGrid renders the spawn orientation of t into a grid just large enough
// to hold it.
func PreviewGrid(t Type) Grid {
	shape := t.Shape(0)
	lo, hi := shape.Bounds()
	size := hi.Sub(lo)
	return BlankGrid(size.X+1, size.Y+1, Blank).Composite(shape.Translate(lo.Neg()))
}

func mod4(n int) int {
	return ((n % 4) + 4) % 4
}
