package packet

import (
	"testing"

	"github.com/kr/pretty"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tailscale.com/util/deephash"
)

func decodeHex(t *testing.T, s string) (Packet, int) {
	t.Helper()
	buf, err := ParseHex(s)
	require.NoError(t, err)
	p, n, err := Decode(buf, 0)
	require.NoError(t, err)
	return p, n
}

func TestDecode(t *testing.T) {
	tests := []struct {
		in       string
		want     Packet
		consumed int
	}{
		{
			in:       "D2FE28",
			want:     NewLiteral(6, 2021),
			consumed: 21,
		},
		{
			in: "38006F45291200",
			want: Packet{Version: 1, TypeID: TypeLessThan, Payload: Operator{
				Length: LengthBits,
				Sub:    []Packet{NewLiteral(6, 10), NewLiteral(2, 20)},
			}},
			consumed: 49,
		},
		{
			in: "EE00D40C823060",
			want: Packet{Version: 7, TypeID: TypeMaximum, Payload: Operator{
				Length: LengthCount,
				Sub:    []Packet{NewLiteral(2, 1), NewLiteral(4, 2), NewLiteral(1, 3)},
			}},
			consumed: 51,
		},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, n := decodeHex(t, tt.in)
			require.Equal(t, tt.want, got, "diff: %v", pretty.Diff(tt.want, got))
			assert.Equal(t, tt.consumed, n)
		})
	}
}

func TestDecodeNested(t *testing.T) {
	p, _ := decodeHex(t, "8A004A801A8002F478")
	var versions []uint8
	for {
		versions = append(versions, p.Version)
		sub := p.Sub()
		if len(sub) == 0 {
			break
		}
		require.Len(t, sub, 1)
		p = sub[0]
	}
	assert.Equal(t, []uint8{4, 1, 5, 6}, versions)
	assert.Equal(t, TypeLiteral, p.TypeID)
}

func TestDecodeIsIdempotent(t *testing.T) {
	for _, in := range []string{
		"D2FE28",
		"8A004A801A8002F478",
		"9C0141080250320F1802104A08",
	} {
		a, na := decodeHex(t, in)
		b, nb := decodeHex(t, in)
		assert.Equal(t, na, nb, in)
		assert.Equal(t, deephash.Hash(&a), deephash.Hash(&b), in)
	}
	lit, _ := decodeHex(t, "D2FE28")
	other := NewLiteral(6, 2022)
	assert.NotEqual(t, deephash.Hash(&lit), deephash.Hash(&other))
}

func TestDecodeAtOffset(t *testing.T) {
	var w bitWriter
	w.put(0b101, 3) // junk before the packet
	w.append([]byte{0xd2, 0xfe, 0x28}, 21)
	p, n, err := Decode(w.buf, 3)
	require.NoError(t, err)
	assert.Equal(t, NewLiteral(6, 2021), p)
	assert.Equal(t, 21, n)

	_, _, err = Decode(w.buf, 8*len(w.buf)+1)
	assert.True(t, errors.Is(err, ErrOutOfBounds), "got %v", err)
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want []byte
	}{
		{"D2FE28", []byte{0xd2, 0xfe, 0x28}},
		{"d2fe28\n", []byte{0xd2, 0xfe, 0x28}},
		{"  0a ", []byte{0x0a}},
		{"ABC", []byte{0xab, 0xc0}},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		require.NoError(t, err, "%q", tt.in)
		assert.Equal(t, tt.want, got, "%q", tt.in)
	}

	empty, err := ParseHex(" \n")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = ParseHex("D2FG28")
	assert.True(t, errors.Is(err, ErrInvalidHex), "got %v", err)
}

func TestParseIgnoresPadding(t *testing.T) {
	p, err := Parse("D2FE2F")
	require.NoError(t, err)
	assert.Equal(t, NewLiteral(6, 2021), p)
}

func TestDecodeErrors(t *testing.T) {
	var mismatch bitWriter
	mismatch.put(0, versionBits)
	mismatch.put(uint64(TypeSum), typeBits)
	mismatch.put(uint64(LengthBits), 1)
	mismatch.put(10, totalLengthBits) // child below is 11 bits
	mismatch.put(0, versionBits)
	mismatch.put(uint64(TypeLiteral), typeBits)
	mismatch.put(0b00001, 5)

	var short bitWriter
	short.put(0, versionBits)
	short.put(uint64(TypeSum), typeBits)
	short.put(uint64(LengthBits), 1)
	short.put(22, totalLengthBits) // only one 11-bit child follows
	short.put(0, versionBits)
	short.put(uint64(TypeLiteral), typeBits)
	short.put(0b00001, 5)

	var emptyBudget bitWriter
	emptyBudget.put(0, versionBits)
	emptyBudget.put(uint64(TypeSum), typeBits)
	emptyBudget.put(uint64(LengthBits), 1)
	emptyBudget.put(0, totalLengthBits)
	emptyBudget.put(0, versionBits)
	emptyBudget.put(uint64(TypeLiteral), typeBits)
	emptyBudget.put(0b00001, 5)

	// The inner operator's total length field is cut off by the end of
	// input while the outer budget still has bits left.
	var cutChild bitWriter
	cutChild.put(0, versionBits)
	cutChild.put(uint64(TypeSum), typeBits)
	cutChild.put(uint64(LengthBits), 1)
	cutChild.put(40, totalLengthBits)
	cutChild.put(0, versionBits)
	cutChild.put(uint64(TypeSum), typeBits)
	cutChild.put(uint64(LengthBits), 1)
	cutChild.put(0b11, 2)

	var missingChild bitWriter
	missingChild.put(0, versionBits)
	missingChild.put(uint64(TypeProduct), typeBits)
	missingChild.put(uint64(LengthCount), 1)
	missingChild.put(2, countBits)
	missingChild.put(0, versionBits)
	missingChild.put(uint64(TypeLiteral), typeBits)
	missingChild.put(0b00001, 5)

	var huge bitWriter
	huge.put(0, versionBits)
	huge.put(uint64(TypeLiteral), typeBits)
	for i := 0; i < 17; i++ {
		huge.put(0b11111, 5)
	}
	huge.put(0, 5)

	tests := []struct {
		name string
		buf  []byte
		off  int
		want error
	}{
		{"empty", nil, 0, ErrOutOfBounds},
		{"truncated header", []byte{0xff}, 4, ErrOutOfBounds},
		{"truncated literal", []byte{0xd2, 0xfe}, 0, ErrMalformedLiteral},
		{"literal overflow", huge.buf, 0, ErrMalformedLiteral},
		{"truncated total length", []byte{0x38}, 0, ErrOutOfBounds},
		{"length overshoot", mismatch.buf, 0, ErrLengthMismatch},
		{"length undershoot", short.buf, 0, ErrLengthMismatch},
		{"empty length budget", emptyBudget.buf, 0, ErrLengthMismatch},
		{"truncated sub-packet header", cutChild.buf, 0, ErrLengthMismatch},
		{"missing sub-packet", missingChild.buf, 0, ErrOutOfBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Decode(tt.buf, tt.off)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v; want %v", err, tt.want)
		})
	}
}
