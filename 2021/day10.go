package main

import (
	"slices"

	aoc "github.com/maisem/adventofcode"
)

var closers = map[rune]rune{
	'(': ')',
	'[': ']',
	'{': '}',
	'<': '>',
}

// check walks line and returns the first illegal closing character, or the
// stack of still open characters if the line is merely incomplete.
func check(line string) (illegal rune, open *aoc.Stack[rune]) {
	open = &aoc.Stack[rune]{}
	for _, c := range line {
		if _, ok := closers[c]; ok {
			open.Push(c)
			continue
		}
		if top, ok := open.Peek(); !ok || closers[top] != c {
			return c, nil
		}
		open.Pop()
	}
	return 0, open
}

/*
want=26397

[({(<(())[]>[[{[]{<()<>>
[(()[<>])]({[<{<<[]>>(
{([(<{}[<>[]}>{[]{[(<()>
(((({<>}<{<{<>}{[]{[]{}
[[<[([]))<([[{}[[()]]]
[{[{({}]{}}([{[{{{}}([]
{<[[]]>}<{[{[{[]{()[[[]
[<(<(<(<{}))><([]([]()
<{([([[(<>()){}]>(<<{{
<{([{{}}[<[[[<>{}]]]>[]]
*/
func (s solver) D10p1() any {
	points := map[rune]int{')': 3, ']': 57, '}': 1197, '>': 25137}
	score := 0
	s.ForLines(func(line string) {
		if c, _ := check(line); c != 0 {
			score += points[c]
		}
	})
	return score
}

// want=288957
func (s solver) D10p2() any {
	points := map[rune]int{')': 1, ']': 2, '}': 3, '>': 4}
	var scores []int
	s.ForLines(func(line string) {
		c, open := check(line)
		if c != 0 || line == "" {
			return
		}
		score := 0
		open.While(func(r rune) bool {
			score = score*5 + points[closers[r]]
			return true
		})
		scores = append(scores, score)
	})
	slices.Sort(scores)
	return scores[len(scores)/2]
}
