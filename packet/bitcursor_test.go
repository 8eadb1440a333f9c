package packet

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitCursorTake(t *testing.T) {
	tests := []struct {
		name  string
		buf   []byte
		reads []int
		want  []uint64
	}{
		{
			name:  "within byte",
			buf:   []byte{0xa9}, // 1010 1001
			reads: []int{1, 3, 4},
			want:  []uint64{1, 2, 9},
		},
		{
			name:  "across bytes",
			buf:   []byte{0xab, 0xcd},
			reads: []int{4, 8, 4},
			want:  []uint64{0xa, 0xbc, 0xd},
		},
		{
			name:  "odd widths",
			buf:   []byte{0xd2, 0xfe, 0x28},
			reads: []int{3, 3, 5, 5, 5},
			want:  []uint64{6, 4, 0b10111, 0b11110, 0b00101},
		},
		{
			name:  "full word",
			buf:   []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef},
			reads: []int{64},
			want:  []uint64{0x0123456789abcdef},
		},
		{
			name:  "unaligned word",
			buf:   []byte{0xf0, 0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc, 0xde, 0xf0},
			reads: []int{4, 64, 4},
			want:  []uint64{0xf, 0x0123456789abcdef, 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewBitCursor(tt.buf)
			off := 0
			for i, n := range tt.reads {
				got, err := c.Take(n)
				require.NoError(t, err)
				assert.Equal(t, tt.want[i], got, "read %d (%d bits)", i, n)
				off += n
				assert.Equal(t, off, c.Offset())
			}
			assert.Equal(t, 8*len(tt.buf)-off, c.Remaining())
		})
	}
}

func TestBitCursorOutOfBounds(t *testing.T) {
	c := NewBitCursor([]byte{0xff})
	_, err := c.Take(9)
	require.True(t, errors.Is(err, ErrOutOfBounds), "got %v", err)
	assert.Equal(t, 0, c.Offset(), "failed read moved the cursor")

	v, err := c.Take(8)
	require.NoError(t, err)
	assert.Equal(t, uint64(0xff), v)

	_, err = c.Take(1)
	require.True(t, errors.Is(err, ErrOutOfBounds), "got %v", err)
	assert.Equal(t, 8, c.Offset())
}

func TestBitCursorBadCount(t *testing.T) {
	c := NewBitCursor(make([]byte, 16))
	assert.Panics(t, func() { c.Take(0) })
	assert.Panics(t, func() { c.Take(65) })
}

func TestBitWriter(t *testing.T) {
	var w bitWriter
	w.put(6, 3)
	w.put(4, 3)
	w.put(0b10111, 5)
	w.put(0b11110, 5)
	w.put(0b00101, 5)
	assert.Equal(t, 21, w.n)
	assert.Equal(t, []byte{0xd2, 0xfe, 0x28}, w.buf)

	var w2 bitWriter
	w2.put(1, 1)
	w2.append(w.buf, w.n)
	assert.Equal(t, 22, w2.n)
	assert.Equal(t, []byte{0xe9, 0x7f, 0x14}, w2.buf)
}
