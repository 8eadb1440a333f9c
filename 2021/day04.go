package main

import (
	"strings"

	aoc "github.com/maisem/adventofcode"
)

type board struct {
	nums   aoc.Grid[int]
	marked aoc.Grid[bool]
	won    bool
}

func (b *board) mark(n int) {
	b.nums.ForEach(func(p aoc.Pt, v int) {
		if v == n {
			b.marked.Set(p, true)
		}
	})
}

func allTrue(row []bool) bool {
	for _, v := range row {
		if !v {
			return false
		}
	}
	return true
}

func (b *board) wins() bool {
	for _, rows := range []aoc.Grid[bool]{b.marked, b.marked.Transpose()} {
		for _, row := range rows {
			if allTrue(row) {
				return true
			}
		}
	}
	return false
}

func (b *board) unmarkedSum() int {
	sum := 0
	b.nums.ForEach(func(p aoc.Pt, v int) {
		if !b.marked.At(p) {
			sum += v
		}
	})
	return sum
}

func (s solver) bingo() (draws []int, boards []*board) {
	lines := s.Lines()
	draws = aoc.Ints(strings.Split(lines[0], ",")...)
	var cur *board
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			cur = nil
			continue
		}
		if cur == nil {
			cur = &board{}
			boards = append(boards, cur)
		}
		cur.nums = append(cur.nums, aoc.Ints(strings.Fields(line)...))
	}
	for _, b := range boards {
		size := b.nums.Size()
		b.marked = aoc.MakeGrid[bool](size.X, size.Y)
	}
	return draws, boards
}

// play draws numbers until every board has won and returns the scores in
// the order the boards won.
func (s solver) play() []int {
	draws, boards := s.bingo()
	var scores []int
	for _, n := range draws {
		for i, b := range boards {
			if b.won {
				continue
			}
			b.mark(n)
			if b.wins() {
				b.won = true
				s.Debugf("board %d wins on %d", i, n)
				scores = append(scores, b.unmarkedSum()*n)
			}
		}
	}
	return scores
}

/*
want=4512

7,4,9,5,11,17,23,2,0,14,21,24,10,16,13,6,15,25,12,22,18,20,8,19,3,26,1

22 13 17 11  0
 8  2 23  4 24
21  9 14 16  7
 6 10  3 18  5
 1 12 20 15 19

 3 15  0  2 22
 9 18 13 17  5
19  8  7 25 23
20 11 10 24  4
14 21 16 12  6

14 21 17 24  4
10 16 15  9 19
18  8 23 26 20
22 11 13  6  5
 2  0 12  3  7
*/
func (s solver) D4p1() any {
	return s.play()[0]
}

// want=1924
func (s solver) D4p2() any {
	scores := s.play()
	return scores[len(scores)-1]
}
