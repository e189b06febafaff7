package x86

import (
	"fmt"

	cpu "github.com/retroenv/retrogolib/arch/cpu/x86"
)

type decodeFunc func(r *reader, opcode byte) (Instruction, error)

// opcode matches the first instruction byte when byte&mask == value.
type opcode struct {
	mask    byte
	value   byte
	variant Variant
	decode  decodeFunc
}

// opcodes is ordered by the number of opcode bits, the first match wins. The cpu
// opcode table does not distinguish the MOV encodings, variants come from here.
var opcodes = [...]opcode{
	{mask: 0b1111_1111, value: 0b1000_1110, variant: RegisterMemoryToSegmentRegister, decode: decodeRegisterMemoryToSegmentRegister},
	{mask: 0b1111_1111, value: 0b1000_1100, variant: SegmentRegisterToRegisterMemory, decode: decodeSegmentRegisterToRegisterMemory},
	{mask: 0b1111_1110, value: 0b1100_0110, variant: ImmediateToRegisterMemory, decode: decodeImmediateToRegisterMemory},
	{mask: 0b1111_1110, value: 0b1010_0000, variant: MemoryToAccumulator, decode: decodeMemoryToAccumulator},
	{mask: 0b1111_1110, value: 0b1010_0010, variant: AccumulatorToMemory, decode: decodeAccumulatorToMemory},
	{mask: 0b1111_1100, value: 0b1000_1000, variant: RegisterMemoryToFromRegister, decode: decodeRegisterMemoryToFromRegister},
	{mask: 0b1111_0000, value: 0b1011_0000, variant: ImmediateToRegister, decode: decodeImmediateToRegister},
}

// lookupOpcode returns the encoding of a first instruction byte that the cpu opcode
// table lists as MOV.
func lookupOpcode(b byte) (opcode, bool) {
	if ins := cpu.Opcodes[b].Instruction; ins == nil || ins.Name != cpu.MovName {
		return opcode{}, false
	}

	for _, op := range opcodes {
		if b&op.mask == op.value {
			return op, true
		}
	}
	return opcode{}, false
}

// Decode decodes the instruction at the start of data. It only reads the bytes
// that the instruction consists of, the returned instruction reports their count.
func Decode(data []byte) (Instruction, error) {
	r := &reader{data: data}
	b, err := r.readByte()
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	op, ok := lookupOpcode(b)
	if !ok {
		return nil, &DecodeError{Opcode: b, Err: ErrUnsupported}
	}

	ins, err := op.decode(r, b)
	if err != nil {
		return nil, &DecodeError{Opcode: b, Err: fmt.Errorf("decoding %s: %w", op.variant, err)}
	}

	if ins.Size() != r.pos {
		return nil, &DecodeError{
			Opcode: b,
			Err:    fmt.Errorf("%w: %s read %d bytes but has size %d", ErrInvalidEncoding, op.variant, r.pos, ins.Size()),
		}
	}
	return ins, nil
}
