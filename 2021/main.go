// Command 2021 runs the Advent of Code 2021 solutions.
//
// Each solution is checked against the sample in its doc comment before it
// runs on the real input, read from <inputs>/2021/<day>.input.
package main

import (
	"embed"

	aoc "github.com/maisem/adventofcode"
)

func main() {
	aoc.Run(2021, source, &solver{})
}

//go:embed day*.go
var source embed.FS

type solver struct {
	*aoc.Puzzle
}
