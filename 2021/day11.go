package main

import aoc "github.com/maisem/adventofcode"

// step advances the octopuses one step and returns how many flashed.
func step(g aoc.Grid[int]) int {
	var q aoc.Queue[aoc.Pt]
	g.ForEach(func(p aoc.Pt, v int) {
		g.Set(p, v+1)
		if v+1 > 9 {
			q.Push(p)
		}
	})
	flashed := map[aoc.Pt]bool{}
	q.While(func(p aoc.Pt) bool {
		if flashed[p] {
			return true
		}
		flashed[p] = true
		p.ForNeighbors(func(n aoc.Pt) bool {
			v, ok := g.AtOk(n)
			if !ok {
				return true
			}
			g.Set(n, v+1)
			if v+1 > 9 && !flashed[n] {
				q.Push(n)
			}
			return true
		})
		return true
	})
	for p := range flashed {
		g.Set(p, 0)
	}
	return len(flashed)
}

/*
want=1656

5483143223
2745854711
5264556173
6141336146
6357385478
4167524645
2176841721
6882881134
4846848554
5283751526
*/
func (s solver) D11p1() any {
	g := s.DigitGrid()
	total := 0
	for i := 0; i < 100; i++ {
		total += step(g)
	}
	return total
}

// want=195
func (s solver) D11p2() any {
	g := s.DigitGrid()
	size := g.Size()
	dark := aoc.MakeGrid[int](size.X, size.Y).Hash()
	for i := 1; ; i++ {
		step(g)
		if g.Hash() == dark {
			return i
		}
	}
}
