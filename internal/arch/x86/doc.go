// Package x86 decodes the MOV family of 16 bit 8086 instructions.
//
// # Encoding
//
// MOV instructions use up to six bytes:
//
//	[opcode|d|w] [mod|reg|r/m] [disp-lo] [disp-hi] [data-lo] [data-hi]
//
// The opcode occupies between 4 and 8 bits of the first byte. The d bit selects
// whether reg is the destination, w selects byte or word operands. mod selects the
// addressing mode and the number of displacement bytes; r/m names either a register
// or a base/index pair. mod 00 with r/m 110 is not [bp] but a direct 16 bit address.
//
// # Decoding
//
// Decode classifies the first byte with an ordered opcode table and returns one of
// the seven Instruction variants. Every failure, including an unknown opcode, a
// truncated buffer or an invalid operand encoding, is returned as a *DecodeError
// that matches ErrUnsupported.
//
// # Limitations
//
//   - Only MOV instructions are supported
//   - Prefixes (segment override, LOCK, REP) are not supported
//   - No 32 bit operand or address size
package x86
