package packet

import (
	"math"
	"math/bits"
	"math/rand"
	"testing"

	"github.com/kr/pretty"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeHexRoundTrip(t *testing.T) {
	for _, in := range []string{
		"D2FE28",
		"38006F45291200",
		"EE00D40C823060",
	} {
		p, err := Parse(in)
		require.NoError(t, err, in)
		got, err := EncodeHex(p)
		require.NoError(t, err, in)
		assert.Equal(t, in, got)
	}
}

func TestEncodeDecodeTree(t *testing.T) {
	for _, in := range []string{
		"8A004A801A8002F478",
		"620080001611562C8802118E34",
		"C0015000016115A2E0802F182340",
		"A0016C880162017C3686B18A3D47800",
		"9C0141080250320F1802104A08",
	} {
		p, err := Parse(in)
		require.NoError(t, err, in)
		buf, err := Encode(p)
		require.NoError(t, err, in)
		q, _, err := Decode(buf, 0)
		require.NoError(t, err, in)
		require.Equal(t, p, q, "%s: %v", in, pretty.Diff(p, q))
	}

	built := Packet{Version: 3, TypeID: TypeProduct, Payload: Operator{
		Length: LengthCount,
		Sub: []Packet{
			NewOperator(1, TypeSum, NewLiteral(2, 40), NewLiteral(5, 2)),
			{Version: 7, TypeID: TypeMinimum, Payload: Operator{Length: LengthCount}},
			NewLiteral(0, math.MaxUint64),
		},
	}}
	buf, err := Encode(built)
	require.NoError(t, err)
	got, _, err := Decode(buf, 0)
	require.NoError(t, err)
	require.Equal(t, built, got, "%v", pretty.Diff(built, got))
	assert.Equal(t, built.VersionSum(), got.VersionSum())
}

func TestLiteralRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 15, 16, 255, 2021, 1 << 32, 1<<60 - 1, 1 << 60, 1 << 63, math.MaxUint64}
	r := rand.New(rand.NewSource(16))
	for i := 0; i < 200; i++ {
		values = append(values, r.Uint64()>>r.Intn(64))
	}
	for _, v := range values {
		buf, err := Encode(NewLiteral(5, v))
		require.NoError(t, err)
		p, n, err := Decode(buf, 0)
		require.NoError(t, err, "%#x", v)
		require.Equal(t, NewLiteral(5, v), p, "%#x", v)

		groups := max(1, (bits.Len64(v)+groupBits-1)/groupBits)
		assert.Equal(t, versionBits+typeBits+groups*(1+groupBits), n, "%#x", v)
	}
}

func TestEncodeErrors(t *testing.T) {
	tests := []struct {
		name string
		p    Packet
	}{
		{"version too large", NewLiteral(8, 1)},
		{"type too large", Packet{TypeID: Type(8), Payload: Operator{}}},
		{"literal payload on operator", Packet{TypeID: TypeSum, Payload: Literal{Value: 1}}},
		{"operator payload on literal", Packet{TypeID: TypeLiteral, Payload: Operator{}}},
		{"no payload", Packet{TypeID: TypeSum}},
		{"bad length type", Packet{TypeID: TypeSum, Payload: Operator{Length: 2}}},
	}
	for _, tt := range tests {
		_, err := Encode(tt.p)
		assert.Error(t, err, tt.name)
	}

	many := make([]Packet, 3000)
	for i := range many {
		many[i] = NewLiteral(0, 0)
	}
	_, err := Encode(Packet{TypeID: TypeSum, Payload: Operator{Length: LengthCount, Sub: many[:1<<countBits]}})
	assert.True(t, errors.Is(err, ErrLengthMismatch), "got %v", err)

	_, err = Encode(NewOperator(0, TypeSum))
	assert.True(t, errors.Is(err, ErrLengthMismatch), "got %v", err)

	// 11 bits per literal; 3000 of them overflow the 15-bit total.
	_, err = Encode(NewOperator(0, TypeSum, many...))
	assert.True(t, errors.Is(err, ErrLengthMismatch), "got %v", err)
}
