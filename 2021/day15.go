package main

import aoc "github.com/maisem/adventofcode"

func lowestRisk(g aoc.Grid[int]) int {
	size := g.Size()
	d, ok := g.ShortestPath(aoc.Pt{}, aoc.Pt{X: size.X - 1, Y: size.Y - 1}, func(v int) int { return v })
	if !ok {
		panic("no path through the cave")
	}
	return d
}

/*
want=40

1163751742
1381373672
2136511328
3694931569
7463417111
1319128137
1359912421
3125421639
1293138521
2311944581
*/
func (s solver) D15p1() any {
	return lowestRisk(s.DigitGrid())
}

// want=315
func (s solver) D15p2() any {
	tile := s.DigitGrid()
	size := tile.Size()
	g := aoc.MakeGrid[int](size.X*5, size.Y*5)
	g.ForEach(func(p aoc.Pt, _ int) {
		v := tile.At(aoc.StandardizePt(p, size))
		inc := p.X/size.X + p.Y/size.Y
		g.Set(p, (v+inc-1)%9+1)
	})
	return lowestRisk(g)
}
