package main

import (
	"testing"

	aoc "github.com/maisem/adventofcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamples(t *testing.T) {
	results := aoc.CheckSamples(2021, source, &solver{})
	require.NotEmpty(t, results)
	for _, r := range results {
		t.Run(r.Name, func(t *testing.T) {
			require.NoError(t, r.Err)
			assert.Equal(t, r.Want, r.Got)
		})
	}
}

func TestCaves(t *testing.T) {
	tests := []struct {
		name         string
		in           string
		part1, part2 int
	}{
		{
			name: "medium",
			in: `dc-end
HN-start
start-kj
dc-start
dc-HN
LN-dc
HN-end
kj-sa
kj-HN
kj-dc
`,
			part1: 19,
			part2: 103,
		},
		{
			name: "large",
			in: `fs-end
he-DX
fs-he
start-DX
pj-DX
end-zg
zg-sl
zg-pj
pj-he
RW-he
fs-DX
pj-RW
zg-RW
start-pj
he-WI
zg-he
pj-fs
start-RW
`,
			part1: 226,
			part2: 3509,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := solver{aoc.SamplePuzzle(tt.in)}
			assert.Equal(t, tt.part1, s.D12p1())
			assert.Equal(t, tt.part2, s.D12p2())
		})
	}
}

func TestTransmission(t *testing.T) {
	tests := []struct {
		in   string
		part int
		want any
	}{
		{"620080001611562C8802118E34", 1, 12},
		{"C0015000016115A2E0802F182340", 1, 23},
		{"A0016C880162017C3686B18A3D4780", 1, 31},
		{"04005AC33890", 2, uint64(54)},
		{"880086C3E88112", 2, uint64(7)},
		{"CE00C43D881120", 2, uint64(9)},
		{"D8005AC2A8F0", 2, uint64(1)},
		{"F600BC2D8F", 2, uint64(0)},
		{"9C005AC2F8F0", 2, uint64(0)},
		{"9C0141080250320F1802104A08\n", 2, uint64(1)},
	}
	for _, tt := range tests {
		s := solver{aoc.SamplePuzzle(tt.in)}
		var got any
		if tt.part == 1 {
			got = s.D16p1()
		} else {
			got = s.D16p2()
		}
		assert.Equal(t, tt.want, got, "part %d of %s", tt.part, tt.in)
	}
}

func TestTransmissionMalformed(t *testing.T) {
	s := solver{aoc.SamplePuzzle("38006F45")}
	assert.Panics(t, func() { s.D16p1() })
}
