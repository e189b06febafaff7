package x86

import (
	"errors"
	"fmt"
)

// ErrUnsupported is matched by every decoding failure.
var ErrUnsupported = errors.New("unsupported instruction")

var (
	// ErrTruncated is returned when the buffer ends inside an instruction.
	ErrTruncated = fmt.Errorf("%w: truncated instruction", ErrUnsupported)
	// ErrInvalidEncoding is returned for a known opcode with an operand encoding
	// that the 8086 does not define.
	ErrInvalidEncoding = fmt.Errorf("%w: invalid operand encoding", ErrUnsupported)
)

// DecodeError describes why an instruction could not be decoded.
type DecodeError struct {
	Opcode byte
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("opcode 0x%02x: %s", e.Opcode, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
