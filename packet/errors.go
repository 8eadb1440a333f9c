package packet

import "github.com/pkg/errors"

// Errors reported by the decoder and evaluator. They are wrapped with the bit
// offset or packet that triggered them; match with errors.Is.
var (
	ErrOutOfBounds      = errors.New("packet: read past end of input")
	ErrMalformedLiteral = errors.New("packet: malformed literal")
	ErrLengthMismatch   = errors.New("packet: sub-packet length mismatch")
	ErrUnknownOpcode    = errors.New("packet: unknown operator opcode")
	ErrArity            = errors.New("packet: wrong number of sub-packets")
	ErrInvalidHex       = errors.New("packet: invalid hex input")
)
