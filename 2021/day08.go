package main

import (
	"math/bits"
	"strings"
)

// A segments value has bit i set when segment 'a'+i is lit.
type segments uint8

func parseSegments(s string) segments {
	var m segments
	for _, c := range s {
		m |= 1 << (c - 'a')
	}
	return m
}

func (m segments) count() int { return bits.OnesCount8(uint8(m)) }

func (m segments) has(o segments) bool { return m&o == o }

type display struct {
	patterns []segments
	output   []segments
}

func (s solver) displays() []display {
	var out []display
	s.ForLines(func(line string) {
		patterns, output, ok := strings.Cut(line, "|")
		if !ok {
			return
		}
		var d display
		for _, f := range strings.Fields(patterns) {
			d.patterns = append(d.patterns, parseSegments(f))
		}
		for _, f := range strings.Fields(output) {
			d.output = append(d.output, parseSegments(f))
		}
		out = append(out, d)
	})
	return out
}

// decode works out which pattern shows which digit. The digits 1, 4, 7 and
// 8 have unique segment counts; the rest follow from how they overlap 1
// and 4.
func (d display) decode() map[segments]int {
	var one, four segments
	for _, p := range d.patterns {
		switch p.count() {
		case 2:
			one = p
		case 4:
			four = p
		}
	}
	digits := map[segments]int{}
	for _, p := range d.patterns {
		var v int
		switch p.count() {
		case 2:
			v = 1
		case 3:
			v = 7
		case 4:
			v = 4
		case 7:
			v = 8
		case 5:
			switch {
			case p.has(one):
				v = 3
			case (p & four).count() == 3:
				v = 5
			default:
				v = 2
			}
		case 6:
			switch {
			case !p.has(one):
				v = 6
			case p.has(four):
				v = 9
			default:
				v = 0
			}
		}
		digits[p] = v
	}
	return digits
}

/*
want=26

be cfbegad cbdgef fgaecd cgeb fdcge agebfd fecdb fabcd edb | fdgacbe cefdb cefbgd gcbe
edbfga begcd cbg gc gcadebf fbgde acbgfd abcde gfcbed gfec | fcgedb cgb dgebacf gc
fgaebd cg bdaec gdafb agbcfd gdcbef bgcad gfac gcb cdgabef | cg cg fdcagb cbg
fbegcd cbd adcefb dageb afcb bc aefdc ecdab fgdeca fcdbega | efabcd cedba gadfec cb
aecbfdg fbg gf bafeg dbefa fcge gcbea fcaegb dgceab fcbdga | gecf egdcabf bgf bfgea
fgeab ca afcebg bdacfeg cfaedg gcfdb baec bfadeg bafgc acf | gebdcfa ecba ca fadegcb
dbcfg fgd bdegcaf fgec aegbdf ecdfab fbedc dacgb gdcebf gf | cefg dcbef fcge gbcadfe
bdfegc cbegaf gecbf dfcage bdacg ed bedf ced adcbefg gebcd | ed bcgafe cdgba cbgef
egadfb cdbfeg cegd fecab cgb gbdefca cg fgcdab egfdb bfceg | gbdfcae bgc cg cgb
gcafb gcf dcaebfg ecagb gf abcdeg gaef cafbge fdbac fegbdc | fgae cfgab fg bagce
*/
func (s solver) D8p1() any {
	n := 0
	for _, d := range s.displays() {
		for _, o := range d.output {
			switch o.count() {
			case 2, 3, 4, 7:
				n++
			}
		}
	}
	return n
}

// want=61229
func (s solver) D8p2() any {
	sum := 0
	for _, d := range s.displays() {
		digits := d.decode()
		v := 0
		for _, o := range d.output {
			v = v*10 + digits[o]
		}
		s.Debugf("display reads %04d", v)
		sum += v
	}
	return sum
}
