package main

import (
	"strings"
	"unicode"

	aoc "github.com/maisem/adventofcode"
)

func (s solver) caves() *aoc.Graph[string] {
	g := &aoc.Graph[string]{}
	for _, rec := range s.Records('-') {
		g.AddEdge(rec[0], rec[1], 1)
	}
	return g
}

func small(cave string) bool {
	return strings.IndexFunc(cave, unicode.IsUpper) == -1
}

/*
want=10

start-A
start-b
A-c
A-b
b-d
A-end
b-end
*/
func (s solver) D12p1() any {
	return s.caves().NumPathsWithRestriction("start", "end", func(x string, visited map[string]int) bool {
		return !small(x) || visited[x] == 0
	})
}

// want=36
func (s solver) D12p2() any {
	return s.caves().NumPathsWithRestriction("start", "end", func(x string, visited map[string]int) bool {
		switch {
		case x == "start":
			return false
		case !small(x), visited[x] == 0:
			return true
		}
		for c, n := range visited {
			if small(c) && n > 1 {
				return false
			}
		}
		return true
	})
}
