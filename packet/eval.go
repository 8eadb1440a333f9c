package packet

import (
	"slices"

	"github.com/pkg/errors"
)

// VersionSum returns the sum of the versions of p and all its descendants.
func (p Packet) VersionSum() int {
	sum := int(p.Version)
	for _, sub := range p.Sub() {
		sum += sub.VersionSum()
	}
	return sum
}

// Value evaluates p. Sub-packets are evaluated first and then combined by
// the operator's opcode. Sums and products wrap around on overflow.
func (p Packet) Value() (uint64, error) {
	switch pl := p.Payload.(type) {
	case Literal:
		return pl.Value, nil
	case Operator:
		vals := make([]uint64, len(pl.Sub))
		for i, sub := range pl.Sub {
			v, err := sub.Value()
			if err != nil {
				return 0, err
			}
			vals[i] = v
		}
		return apply(p.TypeID, vals)
	}
	return 0, errors.Wrapf(ErrUnknownOpcode, "%v packet has no payload", p.TypeID)
}

func apply(t Type, vals []uint64) (uint64, error) {
	switch t {
	case TypeSum, TypeProduct, TypeMinimum, TypeMaximum:
		if len(vals) == 0 {
			return 0, errors.Wrapf(ErrArity, "%v of no values", t)
		}
	case TypeGreaterThan, TypeLessThan, TypeEqualTo:
		if len(vals) != 2 {
			return 0, errors.Wrapf(ErrArity, "%v of %d values, want 2", t, len(vals))
		}
	default:
		return 0, errors.Wrapf(ErrUnknownOpcode, "%v", t)
	}

	switch t {
	case TypeSum:
		var sum uint64
		for _, v := range vals {
			sum += v
		}
		return sum, nil
	case TypeProduct:
		prod := uint64(1)
		for _, v := range vals {
			prod *= v
		}
		return prod, nil
	case TypeMinimum:
		return slices.Min(vals), nil
	case TypeMaximum:
		return slices.Max(vals), nil
	case TypeGreaterThan:
		return b2u(vals[0] > vals[1]), nil
	case TypeLessThan:
		return b2u(vals[0] < vals[1]), nil
	default: // TypeEqualTo
		return b2u(vals[0] == vals[1]), nil
	}
}

func b2u(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
