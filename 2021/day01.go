package main

import aoc "github.com/maisem/adventofcode"

func (s solver) depths() []int {
	return aoc.Ints(s.Lines()...)
}

func countIncreases(xs []int) int {
	n := 0
	for i := 1; i < len(xs); i++ {
		if xs[i] > xs[i-1] {
			n++
		}
	}
	return n
}

/*
want=7

199
200
208
210
200
207
240
269
260
263
*/
func (s solver) D1p1() any {
	return countIncreases(s.depths())
}

// want=5
func (s solver) D1p2() any {
	d := s.depths()
	var windows []int
	for i := 2; i < len(d); i++ {
		windows = append(windows, aoc.Sum(d[i-2:i+1]...))
	}
	return countIncreases(windows)
}
