package main

import (
	"fmt"
	"strings"

	aoc "github.com/maisem/adventofcode"
)

type fold struct {
	axis rune
	at   int
}

func (s solver) paper() (map[aoc.Pt]bool, []fold) {
	dots := map[aoc.Pt]bool{}
	var folds []fold
	s.ForLines(func(line string) {
		if x, y, ok := strings.Cut(line, ","); ok {
			dots[aoc.Pt{X: aoc.Int(x), Y: aoc.Int(y)}] = true
			return
		}
		if strings.HasPrefix(line, "fold along ") {
			var f fold
			aoc.MustGet(fmt.Sscanf(line, "fold along %c=%d", &f.axis, &f.at))
			folds = append(folds, f)
		}
	})
	return dots, folds
}

func (f fold) apply(dots map[aoc.Pt]bool) map[aoc.Pt]bool {
	out := make(map[aoc.Pt]bool, len(dots))
	for p := range dots {
		switch {
		case f.axis == 'x' && p.X > f.at:
			p.X = 2*f.at - p.X
		case f.axis == 'y' && p.Y > f.at:
			p.Y = 2*f.at - p.Y
		}
		out[p] = true
	}
	return out
}

// render draws the dots as rows of '#' and '.', joined by '/'.
func render(dots map[aoc.Pt]bool) string {
	var size aoc.Pt
	for p := range dots {
		size.X = max(size.X, p.X+1)
		size.Y = max(size.Y, p.Y+1)
	}
	g := aoc.MakeGrid[bool](size.X, size.Y)
	for p := range dots {
		g.Set(p, true)
	}
	rows := make([]string, len(g))
	for y, row := range g {
		var sb strings.Builder
		for _, lit := range row {
			if lit {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		rows[y] = sb.String()
	}
	return strings.Join(rows, "/")
}

/*
want=17

6,10
0,14
9,10
0,3
10,4
4,11
6,0
6,12
4,1
0,13
10,12
3,4
3,0
8,4
1,10
2,14
8,10
9,0

fold along y=7
fold along x=5
*/
func (s solver) D13p1() any {
	dots, folds := s.paper()
	return len(folds[0].apply(dots))
}

// want=#####/#...#/#...#/#...#/#####
func (s solver) D13p2() any {
	dots, folds := s.paper()
	for _, f := range folds {
		dots = f.apply(dots)
	}
	code := render(dots)
	s.Debugf("\n%s", strings.ReplaceAll(code, "/", "\n"))
	return code
}
