package main

import (
	"math"
	"slices"
	"strings"

	aoc "github.com/maisem/adventofcode"
)

// align returns the least fuel needed to line all crabs up, where moving n
// steps costs fuel(n).
func (s solver) align(fuel func(n int) int) int {
	crabs := aoc.Ints(strings.Split(strings.TrimSpace(string(s.Input())), ",")...)
	best := math.MaxInt
	for pos := slices.Min(crabs); pos <= slices.Max(crabs); pos++ {
		total := 0
		for _, c := range crabs {
			total += fuel(aoc.AbsDiff(c, pos))
		}
		best = min(best, total)
	}
	return best
}

/*
want=37

16,1,2,0,4,2,7,1,2,14
*/
func (s solver) D7p1() any {
	return s.align(func(n int) int { return n })
}

// want=168
func (s solver) D7p2() any {
	return s.align(func(n int) int { return n * (n + 1) / 2 })
}
