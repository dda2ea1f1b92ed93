package srs_test

import (
	"fmt"

	"github.com/plus3/srstris/srs"
)

func ExampleGame() {
	opts := srs.DefaultOptions()
	opts.Seed = 1
	g := srs.NewGame(opts)

	// One frame: forward input, then advance the clock.
	g.Update(0)
	g.Key(0, srs.HardDrop)
	g.Update(1.0 / 60)

	fmt.Println("locked cells:", g.Playfield().Matrix().Count())
	fmt.Println("hold available:", g.HoldAvailable())
	// Output:
	// locked cells: 4
	// hold available: true
}

func ExampleParseShape() {
	s := srs.MustParseShape(srs.Mino(srs.T), " # ", "#@#")
	g := srs.BlankGrid(3, 2, srs.Blank).Composite(s.Translate(srs.V(1, 0)))
	fmt.Println(g)
	// Output:
	// .T.
	// TTT
}

func ExampleRandomizer_Peek() {
	r := srs.NewSeededRandomizer(5)
	upcoming := r.Peek(3)
	fmt.Println(r.Next() == upcoming[0], len(r.Peek(10)))
	// Output: true 10
}
