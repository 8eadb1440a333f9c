package main

import aoc "github.com/maisem/adventofcode"

type command struct {
	dir   string
	steps int
}

type submarine struct {
	horizontal, depth, aim int
}

func (s solver) commands() []command {
	var out []command
	for _, rec := range s.Records(' ') {
		out = append(out, command{dir: rec[0], steps: aoc.Int(rec[1])})
	}
	return out
}

/*
want=150

forward 5
down 5
forward 8
up 3
down 8
forward 2
*/
func (s solver) D2p1() any {
	sub := aoc.Fold(s.commands(), func(sub submarine, c command) submarine {
		switch c.dir {
		case "forward":
			sub.horizontal += c.steps
		case "down":
			sub.depth += c.steps
		case "up":
			sub.depth -= c.steps
		default:
			s.Debug("unknown direction ", c.dir)
		}
		return sub
	}, submarine{})
	return sub.horizontal * sub.depth
}

// want=900
func (s solver) D2p2() any {
	sub := aoc.Fold(s.commands(), func(sub submarine, c command) submarine {
		switch c.dir {
		case "forward":
			sub.horizontal += c.steps
			sub.depth += sub.aim * c.steps
		case "down":
			sub.aim += c.steps
		case "up":
			sub.aim -= c.steps
		default:
			s.Debug("unknown direction ", c.dir)
		}
		return sub
	}, submarine{})
	return sub.horizontal * sub.depth
}
