package aoc

import "testing"

func TestNumPathsWithRestriction(t *testing.T) {
	var g Graph[string]
	for _, e := range [][2]string{
		{"start", "A"},
		{"start", "b"},
		{"A", "c"},
		{"A", "b"},
		{"b", "d"},
		{"A", "end"},
		{"b", "end"},
	} {
		g.AddEdge(e[0], e[1], 1)
	}
	onceSmall := func(x string, visited map[string]int) bool {
		return x == "A" || visited[x] == 0
	}
	if got := g.NumPathsWithRestriction("start", "end", onceSmall); got != 10 {
		t.Errorf("NumPathsWithRestriction = %v; want 10", got)
	}
	if got := len(g.ReachableNodes("d")); got != 6 {
		t.Errorf("ReachableNodes(d) = %v nodes; want 6", got)
	}
}
