package main

import (
	"fmt"
	"strings"

	aoc "github.com/maisem/adventofcode"
)

// target is the trench area; it lies below the launcher and to its right.
type target struct {
	min, max aoc.Pt
}

func (s solver) target() target {
	var t target
	aoc.MustGet(fmt.Sscanf(strings.TrimSpace(string(s.Input())), "target area: x=%d..%d, y=%d..%d",
		&t.min.X, &t.max.X, &t.min.Y, &t.max.Y))
	return t
}

// hits reports whether a probe launched with velocity v is ever inside t
// after a whole step.
func (t target) hits(v aoc.Pt) bool {
	var p aoc.Pt
	for p.X <= t.max.X && p.Y >= t.min.Y {
		if p.X >= t.min.X && p.Y <= t.max.Y {
			return true
		}
		p.X += v.X
		p.Y += v.Y
		v.X -= sign(v.X)
		v.Y--
	}
	return false
}

/*
want=45

target area: x=20..30, y=-10..-5
*/
func (s solver) D17p1() any {
	// A probe thrown up at vy comes back to y=0 moving at -(vy+1), so the
	// fastest throw that still hits reaches the bottom row in one step.
	vy := -s.target().min.Y - 1
	return vy * (vy + 1) / 2
}

// want=112
func (s solver) D17p2() any {
	t := s.target()
	n := 0
	for vx := 0; vx <= t.max.X; vx++ {
		for vy := t.min.Y; vy < -t.min.Y; vy++ {
			if t.hits(aoc.Pt{X: vx, Y: vy}) {
				n++
			}
		}
	}
	return n
}
