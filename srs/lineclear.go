package srs

// LineClear is the outcome of a single lock.
type LineClear struct {
	Lines int
	// Spin is set when the piece locked while unable to move in any direction.
	Spin bool
}

// Empty reports whether no lines were cleared.
func (lc LineClear) Empty() bool {
	return lc.Lines == 0
}

var clearNames = [...]string{"", "Single", "Double", "Triple", "Quadruple"}

func (lc LineClear) String() string {
	name := "None"
	if lc.Lines > 0 && lc.Lines < len(clearNames) {
		name = clearNames[lc.Lines]
	}
	if lc.Spin {
		if lc.Lines == 0 {
			return "Spin"
		}
		name += " Spin"
	}
	return name
}

// clearLines removes every full row and returns how many it removed. After each
// removal the scan restarts from the bottom because the rows above have moved.
func clearLines(g Grid) (Grid, int) {
	cleared := 0
	for {
		y := firstFullRow(g)
		if y < 0 {
			return g, cleared
		}
		g = removeRow(g, y)
		cleared++
	}
}

func firstFullRow(g Grid) int {
	for y := 0; y < g.Height(); y++ {
		if g.RowFull(y) {
			return y
		}
	}
	return -1
}

// removeRow keeps the rows below y in place and drops the rows above y by one.
func removeRow(g Grid, y int) Grid {
	w, h := g.Width(), g.Height()
	lower := g.Crop(0, 0, w-1, y-1)
	upper := g.Crop(0, y+1, w-1, h-1)
	return BlankGrid(w, h, Blank).
		Composite(lower.Shape()).
		Composite(upper.Shape().Translate(Vec{Y: y}))
}
