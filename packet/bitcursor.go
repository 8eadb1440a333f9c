package packet

import (
	"fmt"

	"github.com/pkg/errors"
)

// A BitCursor reads bit fields out of an immutable byte buffer. Bits are
// numbered from 0 starting at the most significant bit of the first byte, and
// fields are returned most significant bit first.
type BitCursor struct {
	buf []byte
	off int // bits consumed; 0 ≤ off ≤ 8*len(buf)
}

// NewBitCursor returns a cursor positioned at the first bit of buf.
func NewBitCursor(buf []byte) *BitCursor {
	return &BitCursor{buf: buf}
}

func cursorAt(buf []byte, off int) (*BitCursor, error) {
	c := NewBitCursor(buf)
	if off < 0 || off > c.Len() {
		return nil, errors.Wrapf(ErrOutOfBounds, "offset %d of %d bits", off, c.Len())
	}
	c.off = off
	return c, nil
}

// Offset returns the number of bits consumed so far.
func (c *BitCursor) Offset() int { return c.off }

// Len returns the total number of bits in the buffer.
func (c *BitCursor) Len() int { return 8 * len(c.buf) }

// Remaining returns the number of bits left to read.
func (c *BitCursor) Remaining() int { return c.Len() - c.off }

// Take reads the next n bits, 1 ≤ n ≤ 64, and advances the cursor past them.
// If fewer than n bits remain it returns ErrOutOfBounds and the cursor does
// not move.
func (c *BitCursor) Take(n int) (uint64, error) {
	if n < 1 || n > 64 {
		panic(fmt.Sprintf("packet: bit count %d out of range", n))
	}
	if c.Remaining() < n {
		return 0, errors.Wrapf(ErrOutOfBounds, "reading %d bits at offset %d of %d", n, c.off, c.Len())
	}
	var v uint64
	for n > 0 {
		unread := 8 - c.off%8 // low bits of the current byte not yet consumed
		k := min(unread, n)
		b := uint64(c.buf[c.off/8]>>(unread-k)) & (1<<k - 1)
		v = v<<k | b
		c.off += k
		n -= k
	}
	return v, nil
}
