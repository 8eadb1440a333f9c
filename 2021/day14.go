package main

import (
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// polymerize applies the insertion rules steps times and returns the
// difference between the most and least common element.
func (s solver) polymerize(steps int) int {
	lines := s.Lines()
	template := lines[0]
	rules := map[string]byte{}
	for _, line := range lines[1:] {
		pair, ins, ok := strings.Cut(line, " -> ")
		if !ok {
			continue
		}
		rules[pair] = ins[0]
	}

	pairs := map[string]int{}
	for i := 0; i+1 < len(template); i++ {
		pairs[template[i:i+2]]++
	}
	for i := 0; i < steps; i++ {
		next := make(map[string]int, len(pairs))
		for pair, n := range pairs {
			ins, ok := rules[pair]
			if !ok {
				next[pair] += n
				continue
			}
			next[string([]byte{pair[0], ins})] += n
			next[string([]byte{ins, pair[1]})] += n
		}
		pairs = next
	}

	// Every element but the last one starts exactly one pair.
	counts := map[byte]int{template[len(template)-1]: 1}
	for pair, n := range pairs {
		counts[pair[0]] += n
	}
	vals := maps.Values(counts)
	return slices.Max(vals) - slices.Min(vals)
}

/*
want=1588

NNCB

CH -> B
HH -> N
CB -> H
NH -> C
HB -> C
HC -> B
HN -> C
NN -> C
BH -> H
NC -> B
NB -> B
BN -> B
BB -> N
BC -> B
CC -> N
CN -> C
*/
func (s solver) D14p1() any {
	return s.polymerize(10)
}

// want=2188189693529
func (s solver) D14p2() any {
	return s.polymerize(40)
}
