package main

import aoc "github.com/maisem/adventofcode"

func (s solver) diagnostics() []string {
	var out []string
	for _, rec := range s.Records(' ') {
		out = append(out, rec[0])
	}
	return out
}

// ones returns how many of the reports have a 1 at position i.
func ones(reports []string, i int) int {
	n := 0
	for _, r := range reports {
		if r[i] == '1' {
			n++
		}
	}
	return n
}

/*
want=198

00100
11110
10110
10111
10101
01111
00111
11100
10000
11001
00010
01010
*/
func (s solver) D3p1() any {
	reports := s.diagnostics()
	width := len(reports[0])
	var gamma int64
	for i := 0; i < width; i++ {
		gamma <<= 1
		if n := ones(reports, i); n > len(reports)-n {
			gamma |= 1
		}
	}
	epsilon := ^gamma & (1<<width - 1)
	return gamma * epsilon
}

// rating filters reports bit by bit, keeping at each position the reports
// whose bit equals the one keep picks, until one report is left.
func rating(reports []string, keep func(ones, zeros int) byte) int64 {
	for i := 0; len(reports) > 1 && i < len(reports[0]); i++ {
		n := ones(reports, i)
		want := keep(n, len(reports)-n)
		var next []string
		for _, r := range reports {
			if r[i] == want {
				next = append(next, r)
			}
		}
		reports = next
	}
	return aoc.ParseBinary(reports[0])
}

// want=230
func (s solver) D3p2() any {
	reports := s.diagnostics()
	oxygen := rating(reports, func(ones, zeros int) byte {
		if ones >= zeros {
			return '1'
		}
		return '0'
	})
	co2 := rating(reports, func(ones, zeros int) byte {
		if ones >= zeros {
			return '0'
		}
		return '1'
	})
	return oxygen * co2
}
