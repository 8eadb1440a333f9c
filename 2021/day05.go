package main

import (
	"regexp"

	aoc "github.com/maisem/adventofcode"
)

var ventRx = regexp.MustCompile(`(\d+),(\d+)\s*->\s*(\d+),(\d+)`)

type vent struct {
	from, to aoc.Pt
}

func (s solver) vents() []vent {
	var out []vent
	s.ForLines(func(line string) {
		m := ventRx.FindStringSubmatch(line)
		if m == nil {
			return
		}
		xs := aoc.Ints(m[1:]...)
		out = append(out, vent{
			from: aoc.Pt{X: xs[0], Y: xs[1]},
			to:   aoc.Pt{X: xs[2], Y: xs[3]},
		})
	})
	return out
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// overlaps returns the number of points covered by at least two vents.
// Diagonal vents are always at 45 degrees.
func overlaps(vents []vent, diagonals bool) int {
	covered := map[aoc.Pt]int{}
	for _, v := range vents {
		d := aoc.Pt{X: sign(v.to.X - v.from.X), Y: sign(v.to.Y - v.from.Y)}
		if d.X != 0 && d.Y != 0 && !diagonals {
			continue
		}
		for p := v.from; ; p = (aoc.Pt{X: p.X + d.X, Y: p.Y + d.Y}) {
			covered[p]++
			if p == v.to {
				break
			}
		}
	}
	n := 0
	for _, c := range covered {
		if c > 1 {
			n++
		}
	}
	return n
}

/*
want=5

0,9 -> 5,9
8,0 -> 0,8
9,4 -> 3,4
2,2 -> 2,1
7,0 -> 7,4
6,4 -> 2,0
0,9 -> 2,9
3,4 -> 1,4
0,0 -> 8,8
5,5 -> 8,2
*/
func (s solver) D5p1() any {
	return overlaps(s.vents(), false)
}

// want=12
func (s solver) D5p2() any {
	return overlaps(s.vents(), true)
}
