package main

import (
	"strings"

	aoc "github.com/maisem/adventofcode"
)

// spawn simulates the lanternfish for the given number of days and returns
// how many there are at the end. Fish are counted by timer value.
func (s solver) spawn(days int) int {
	var counts [9]int
	for _, t := range aoc.Ints(strings.Split(strings.TrimSpace(string(s.Input())), ",")...) {
		counts[t]++
	}
	for d := 0; d < days; d++ {
		zeros := counts[0]
		copy(counts[:], counts[1:])
		counts[6] += zeros
		counts[8] = zeros
	}
	return aoc.Sum(counts[:]...)
}

/*
want=5934

3,4,3,1,2
*/
func (s solver) D6p1() any {
	return s.spawn(80)
}

// want=26984457539
func (s solver) D6p2() any {
	return s.spawn(256)
}
