package main

import aoc "github.com/maisem/adventofcode"

// lowPoints returns the cells lower than all their immediate neighbors.
func lowPoints(g aoc.Grid[int]) []aoc.Pt {
	var out []aoc.Pt
	g.ForEach(func(p aoc.Pt, v int) {
		low := true
		p.ForImmediateNeighbors(func(n aoc.Pt) bool {
			if nv, ok := g.AtOk(n); ok && nv <= v {
				low = false
				return false
			}
			return true
		})
		if low {
			out = append(out, p)
		}
	})
	return out
}

/*
want=15

2199943210
3987894921
9856789892
8767896789
9899965678
*/
func (s solver) D9p1() any {
	g := s.DigitGrid()
	risk := 0
	for _, p := range lowPoints(g) {
		risk += g.At(p) + 1
	}
	return risk
}

// want=1134
func (s solver) D9p2() any {
	g := s.DigitGrid()
	basins := aoc.MaxQueue[aoc.Pt]()
	for _, low := range lowPoints(g) {
		basin := g.ToGraph(low, false, func(v int) bool { return v == 9 })
		basins.Push(&aoc.PQI[aoc.Pt]{V: low, P: len(basin.ReachableNodes(low))})
	}
	out := 1
	for i := 0; i < 3 && basins.Len() > 0; i++ {
		b := basins.Pop()
		s.Debugf("basin at %v has size %d", b.V, b.P)
		out *= b.P
	}
	return out
}
