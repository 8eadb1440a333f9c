// Package packet decodes and evaluates BITS transmissions: a hex-encoded
// stream of nested packets where every packet is either a literal number or
// an operator applied to its sub-packets.
package packet

import "fmt"

// Type is the 3-bit type id of a packet. TypeLiteral marks literal packets;
// every other value selects an operator.
type Type uint8

const (
	TypeSum Type = iota
	TypeProduct
	TypeMinimum
	TypeMaximum
	TypeLiteral
	TypeGreaterThan
	TypeLessThan
	TypeEqualTo
)

func (t Type) String() string {
	switch t {
	case TypeSum:
		return "sum"
	case TypeProduct:
		return "product"
	case TypeMinimum:
		return "min"
	case TypeMaximum:
		return "max"
	case TypeLiteral:
		return "literal"
	case TypeGreaterThan:
		return "gt"
	case TypeLessThan:
		return "lt"
	case TypeEqualTo:
		return "eq"
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// LengthType says how an operator delimits its sub-packets.
type LengthType uint8

const (
	// LengthBits operators carry the total bit length of their sub-packets
	// in a 15-bit field.
	LengthBits LengthType = 0
	// LengthCount operators carry the number of sub-packets in an 11-bit
	// field.
	LengthCount LengthType = 1
)

// Packet is a node of a decoded transmission.
type Packet struct {
	Version uint8
	TypeID  Type
	Payload Payload // Literal or Operator
}

// Payload is the body of a packet: either Literal or Operator.
type Payload interface {
	isPayload()
}

// Literal is the payload of a packet that directly encodes a number.
type Literal struct {
	Value uint64
}

// Operator is the payload of a packet whose value is computed from its
// sub-packets. Sub is in stream order.
type Operator struct {
	Length LengthType
	Sub    []Packet
}

func (Literal) isPayload()  {}
func (Operator) isPayload() {}

// NewLiteral returns a literal packet.
func NewLiteral(version uint8, v uint64) Packet {
	return Packet{Version: version, TypeID: TypeLiteral, Payload: Literal{Value: v}}
}

// NewOperator returns an operator packet that delimits its sub-packets by
// total bit length.
func NewOperator(version uint8, t Type, sub ...Packet) Packet {
	return Packet{Version: version, TypeID: t, Payload: Operator{Length: LengthBits, Sub: sub}}
}

// Sub returns the sub-packets of p, or nil if p is a literal.
func (p Packet) Sub() []Packet {
	if op, ok := p.Payload.(Operator); ok {
		return op.Sub
	}
	return nil
}
