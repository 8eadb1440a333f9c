package aoc

import (
	"reflect"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) ForImmediateNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	p.ForNeighbors(func(n Pt2[T]) bool {
		if p.X == n.X || p.Y == n.Y {
			return f(n)
		}
		return true
	})
}

func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff[T](a.X, b.X) + AbsDiff[T](a.Y, b.Y)
}

// StandardizePt wraps p into the rectangle [0, size).
func StandardizePt(p, size Pt) Pt {
	if p.X < 0 || p.Y < 0 || p.X >= size.X || p.Y >= size.Y {
		p.X = p.X % size.X
		p.Y = p.Y % size.Y
		if p.X < 0 {
			p.X += size.X
		}
		if p.Y < 0 {
			p.Y += size.Y
		}
	}
	return p
}

type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if p.X < 0 || p.Y < 0 || p.X >= len(g[0]) || p.Y >= len(g) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// DigitGrid parses the input as rows of single digits.
func (p *Puzzle) DigitGrid() Grid[int] {
	var g Grid[int]
	p.ForLines(func(line string) {
		if line != "" {
			g = append(g, Digits(line))
		}
	})
	return g
}

// ForEach calls f for every cell, row by row.
func (g Grid[T]) ForEach(f func(Pt, T)) {
	for y, row := range g {
		for x, v := range row {
			f(Pt{x, y}, v)
		}
	}
}

var hashers map[reflect.Type]any // map[reflect.Type]func(*Grid[T]) deephash.Sum

func (g Grid[T]) Hash() deephash.Sum {
	if hashers == nil {
		hashers = make(map[reflect.Type]any)
	}
	rt := reflect.TypeOf(g)
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

func (g Grid[T]) TransposeInto(out Grid[T]) {
	size := g.Size()
	for x := 0; x < size.X; x++ {
		for y := 0; y < size.Y; y++ {
			out[x][y] = g[y][x]
		}
	}
}

func (g Grid[T]) Transpose() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	g.TransposeInto(out)
	return out
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// ToGraph returns the graph of cells reachable from start. If allowDiagonals
// is true, then diagonal neighbors are included. Cells for which disallowed
// returns true are left out of the graph.
func (grid Grid[T]) ToGraph(start Pt, allowDiagonals bool, disallowed func(T) bool) Graph[Pt] {
	var g Graph[Pt]
	g.Nodes = make(map[Pt]bool)
	g.Edges = make(map[Pt]map[Pt]int)

	fn := Pt.ForImmediateNeighbors
	if allowDiagonals {
		fn = Pt.ForNeighbors
	}

	q := NewQueue[Pt](start)
	q.While(func(p1 Pt) bool {
		if _, ok := g.Nodes[p1]; ok {
			return true
		}
		g.Nodes[p1] = true
		fn(p1, func(p2 Pt) (keepGoing bool) {
			if v, ok := grid.AtOk(p2); !ok || disallowed(v) {
				return true
			}
			if _, ok := g.Nodes[p2]; ok {
				return true // already visited
			}
			q.Push(p2)
			if g.Edges[p2] == nil {
				g.Edges[p2] = make(map[Pt]int)
			}
			if g.Edges[p1] == nil {
				g.Edges[p1] = make(map[Pt]int)
			}
			g.Edges[p1][p2] = 1
			g.Edges[p2][p1] = 1
			return true
		})
		return true
	})
	return g
}

// ShortestPath returns the lowest total cost of walking from start to end
// through immediate neighbors, where entering a cell v costs cost(v). The
// start cell is free. Costs must be at least 1: the search is A* guided by
// the manhattan distance to end.
func (g Grid[T]) ShortestPath(start, end Pt, cost func(T) int) (int, bool) {
	dist := map[Pt]int{start: 0}
	items := map[Pt]*PQI[Pt]{}
	pq := MinQueue[Pt]()
	push := func(p Pt, d int) {
		if it, ok := items[p]; ok {
			if it.Index() == -1 {
				return // already settled
			}
			it.P = d + p.MDist(end)
			pq.Update(it)
			return
		}
		it := &PQI[Pt]{V: p, P: d + p.MDist(end)}
		items[p] = it
		pq.Push(it)
	}
	push(start, 0)
	for pq.Len() > 0 {
		cur := pq.Pop().V
		d := dist[cur]
		if cur == end {
			return d, true
		}
		cur.ForImmediateNeighbors(func(n Pt) bool {
			v, ok := g.AtOk(n)
			if !ok {
				return true
			}
			nd := d + cost(v)
			if old, seen := dist[n]; seen && old <= nd {
				return true
			}
			dist[n] = nd
			push(n, nd)
			return true
		})
	}
	return 0, false
}
