package packet

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

// bitWriter appends bit fields to a byte buffer, most significant bit first.
// The unused low bits of the last byte are zero.
type bitWriter struct {
	buf []byte
	n   int // bits written
}

func (w *bitWriter) put(v uint64, width int) {
	for i := width - 1; i >= 0; i-- {
		if w.n%8 == 0 {
			w.buf = append(w.buf, 0)
		}
		if v>>i&1 == 1 {
			w.buf[len(w.buf)-1] |= 1 << (7 - w.n%8)
		}
		w.n++
	}
}

// append copies the first n bits of src onto w.
func (w *bitWriter) append(src []byte, n int) {
	c := NewBitCursor(src)
	for n > 0 {
		k := min(n, 64)
		v, _ := c.Take(k)
		w.put(v, k)
		n -= k
	}
}

// Encode serializes p. The result is padded with zero bits to a whole byte.
func Encode(p Packet) ([]byte, error) {
	var w bitWriter
	if err := encode(&w, p); err != nil {
		return nil, err
	}
	return w.buf, nil
}

// EncodeHex is like Encode but returns upper-case hex, the form Parse reads.
func EncodeHex(p Packet) (string, error) {
	buf, err := Encode(p)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(buf)), nil
}

func encode(w *bitWriter, p Packet) error {
	if p.Version > 7 || p.TypeID > 7 {
		return errors.Errorf("packet: version %d or type %d does not fit in 3 bits", p.Version, p.TypeID)
	}
	w.put(uint64(p.Version), versionBits)
	w.put(uint64(p.TypeID), typeBits)
	switch pl := p.Payload.(type) {
	case Literal:
		if p.TypeID != TypeLiteral {
			return errors.Errorf("packet: literal payload on %v packet", p.TypeID)
		}
		encodeLiteral(w, pl.Value)
		return nil
	case Operator:
		if p.TypeID == TypeLiteral {
			return errors.Wrapf(ErrUnknownOpcode, "operator payload on literal packet")
		}
		return encodeOperator(w, pl)
	}
	return errors.Errorf("packet: %v packet has no payload", p.TypeID)
}

func encodeLiteral(w *bitWriter, v uint64) {
	groups := 1
	for v>>(groupBits*groups) != 0 && groups < 64/groupBits {
		groups++
	}
	for i := groups - 1; i >= 0; i-- {
		g := v >> (groupBits * i) & (1<<groupBits - 1)
		if i > 0 {
			g |= 1 << groupBits
		}
		w.put(g, 1+groupBits)
	}
}

func encodeOperator(w *bitWriter, op Operator) error {
	switch op.Length {
	case LengthBits:
		var sub bitWriter
		for _, p := range op.Sub {
			if err := encode(&sub, p); err != nil {
				return err
			}
		}
		if sub.n == 0 || sub.n >= 1<<totalLengthBits {
			return errors.Wrapf(ErrLengthMismatch, "sub-packets use %d bits, want 1 to %d", sub.n, 1<<totalLengthBits-1)
		}
		w.put(uint64(LengthBits), 1)
		w.put(uint64(sub.n), totalLengthBits)
		w.append(sub.buf, sub.n)
	case LengthCount:
		if len(op.Sub) >= 1<<countBits {
			return errors.Wrapf(ErrLengthMismatch, "%d sub-packets, limit %d", len(op.Sub), 1<<countBits-1)
		}
		w.put(uint64(LengthCount), 1)
		w.put(uint64(len(op.Sub)), countBits)
		for _, p := range op.Sub {
			if err := encode(w, p); err != nil {
				return err
			}
		}
	default:
		return errors.Errorf("packet: unknown length type %d", op.Length)
	}
	return nil
}
