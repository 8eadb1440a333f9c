package packet

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

// Field widths of the wire format, in bits.
const (
	versionBits     = 3
	typeBits        = 3
	groupBits       = 4 // value bits per literal group, after the flag bit
	totalLengthBits = 15
	countBits       = 11
)

// Parse hex-decodes s and decodes the packet at its start. Bits after the
// root packet are padding and are ignored.
func Parse(s string) (Packet, error) {
	buf, err := ParseHex(s)
	if err != nil {
		return Packet{}, err
	}
	p, _, err := Decode(buf, 0)
	return p, err
}

// ParseHex decodes a hex transmission into bytes, high nibble first. Case is
// ignored, as is surrounding whitespace. An odd number of digits is padded
// with a zero nibble.
func ParseHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if len(s)%2 == 1 {
		s += "0"
	}
	buf, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidHex, "%v", err)
	}
	return buf, nil
}

// Decode decodes the packet starting at bit offset off of buf. It returns
// the packet and the number of bits it occupies, sub-packets included.
//
// Each call reads through its own cursor; an operator decodes each
// sub-packet at its current offset and then skips the returned bit count.
func Decode(buf []byte, off int) (Packet, int, error) {
	c, err := cursorAt(buf, off)
	if err != nil {
		return Packet{}, 0, err
	}
	version, err := c.Take(versionBits)
	if err != nil {
		return Packet{}, 0, errors.WithMessage(err, "version")
	}
	typeID, err := c.Take(typeBits)
	if err != nil {
		return Packet{}, 0, errors.WithMessage(err, "type id")
	}
	p := Packet{
		Version: uint8(version),
		TypeID:  Type(typeID),
	}
	if p.TypeID == TypeLiteral {
		v, err := decodeLiteral(c)
		if err != nil {
			return Packet{}, 0, err
		}
		p.Payload = Literal{Value: v}
	} else {
		op, err := decodeOperator(buf, c)
		if err != nil {
			return Packet{}, 0, errors.WithMessagef(err, "%v packet at bit %d", p.TypeID, off)
		}
		p.Payload = op
	}
	return p, c.Offset() - off, nil
}

func decodeLiteral(c *BitCursor) (uint64, error) {
	start := c.Offset()
	var v uint64
	for {
		g, err := c.Take(1 + groupBits)
		if err != nil {
			return 0, errors.Wrapf(ErrMalformedLiteral, "literal at bit %d: group at bit %d truncated", start, c.Offset())
		}
		if v>>(64-groupBits) != 0 {
			return 0, errors.Wrapf(ErrMalformedLiteral, "literal at bit %d exceeds 64 bits", start)
		}
		v = v<<groupBits | g&(1<<groupBits-1)
		if g>>groupBits == 0 {
			return v, nil
		}
	}
}

func decodeOperator(buf []byte, c *BitCursor) (Operator, error) {
	lt, err := c.Take(1)
	if err != nil {
		return Operator{}, errors.WithMessage(err, "length type")
	}
	op := Operator{Length: LengthType(lt)}
	switch op.Length {
	case LengthBits:
		total, err := c.Take(totalLengthBits)
		if err != nil {
			return Operator{}, errors.WithMessage(err, "total length")
		}
		if total == 0 {
			return Operator{}, errors.Wrap(ErrLengthMismatch, "empty sub-packet length")
		}
		used := 0
		for used < int(total) {
			sub, n, err := Decode(buf, c.Offset())
			if errors.Is(err, ErrOutOfBounds) {
				return Operator{}, errors.Wrapf(ErrLengthMismatch, "sub-packets use %d of %d bits, input ends in sub-packet %d: %v", used, total, len(op.Sub), err)
			}
			if err != nil {
				return Operator{}, errors.WithMessagef(err, "sub-packet %d", len(op.Sub))
			}
			c.off += n
			used += n
			if used > int(total) {
				return Operator{}, errors.Wrapf(ErrLengthMismatch, "sub-packets use %d bits, want %d", used, total)
			}
			op.Sub = append(op.Sub, sub)
		}
	case LengthCount:
		count, err := c.Take(countBits)
		if err != nil {
			return Operator{}, errors.WithMessage(err, "sub-packet count")
		}
		for i := 0; i < int(count); i++ {
			sub, n, err := Decode(buf, c.Offset())
			if err != nil {
				return Operator{}, errors.WithMessagef(err, "sub-packet %d of %d", i, count)
			}
			c.off += n
			op.Sub = append(op.Sub, sub)
		}
	}
	return op, nil
}
