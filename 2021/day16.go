package main

import (
	"strings"

	"github.com/kr/pretty"
	aoc "github.com/maisem/adventofcode"
	"github.com/maisem/adventofcode/packet"
)

func (s solver) transmission() packet.Packet {
	p := aoc.MustGet(packet.Parse(strings.TrimSpace(string(s.Input()))))
	s.Debugf("decoded: %# v", pretty.Formatter(p))
	return p
}

/*
want=16

8A004A801A8002F478
*/
func (s solver) D16p1() any {
	return s.transmission().VersionSum()
}

/*
want=3

C200B40A82
*/
func (s solver) D16p2() any {
	return aoc.MustGet(s.transmission().Value())
}
