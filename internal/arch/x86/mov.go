package x86

import "fmt"

var (
	_ Instruction = RegisterMemoryToFromRegisterInstruction{}
	_ Instruction = ImmediateToRegisterMemoryInstruction{}
	_ Instruction = ImmediateToRegisterInstruction{}
	_ Instruction = MemoryToAccumulatorInstruction{}
	_ Instruction = AccumulatorToMemoryInstruction{}
	_ Instruction = RegisterMemoryToSegmentRegisterInstruction{}
	_ Instruction = SegmentRegisterToRegisterMemoryInstruction{}
)

// RegisterMemoryToFromRegisterInstruction is encoded as
// [100010|d|w] [mod|reg|r/m] [disp-lo] [disp-hi].
type RegisterMemoryToFromRegisterInstruction struct {
	ToRegister bool // d bit, reg is the destination
	Wide       bool
	Reg        Register
	RM         Operand
}

func decodeRegisterMemoryToFromRegister(r *reader, opcode byte) (Instruction, error) {
	modRM, err := r.readModRM()
	if err != nil {
		return nil, fmt.Errorf("reading mod/reg/rm byte: %w", err)
	}

	wide := opcode&0b1 != 0
	rm, err := decodeOperand(r, modRM, wide)
	if err != nil {
		return nil, err
	}

	return RegisterMemoryToFromRegisterInstruction{
		ToRegister: opcode&0b10 != 0,
		Wide:       wide,
		Reg:        DecodeRegister(modRM.Reg, wide),
		RM:         rm,
	}, nil
}

func (i RegisterMemoryToFromRegisterInstruction) Size() int {
	return 2 + i.RM.Size()
}

func (i RegisterMemoryToFromRegisterInstruction) Variant() Variant {
	return RegisterMemoryToFromRegister
}

func (i RegisterMemoryToFromRegisterInstruction) String() string {
	if i.ToRegister {
		return format(i.Reg, i.RM)
	}
	return format(i.RM, i.Reg)
}

func (RegisterMemoryToFromRegisterInstruction) isInstruction() {}

// ImmediateToRegisterMemoryInstruction is encoded as
// [1100011|w] [mod|000|r/m] [disp-lo] [disp-hi] [data] [data if w = 1].
type ImmediateToRegisterMemoryInstruction struct {
	Wide        bool
	Destination Operand
	Immediate   int16
}

func decodeImmediateToRegisterMemory(r *reader, opcode byte) (Instruction, error) {
	modRM, err := r.readModRM()
	if err != nil {
		return nil, fmt.Errorf("reading mod/000/rm byte: %w", err)
	}
	if modRM.Reg != 0 {
		return nil, fmt.Errorf("%w: reg field %03b instead of 000", ErrInvalidEncoding, modRM.Reg)
	}

	wide := opcode&0b1 != 0
	destination, err := decodeOperand(r, modRM, wide)
	if err != nil {
		return nil, err
	}

	// immediate data always follows the displacement
	value, err := r.readImmediate(wide)
	if err != nil {
		return nil, fmt.Errorf("reading immediate: %w", err)
	}

	return ImmediateToRegisterMemoryInstruction{
		Wide:        wide,
		Destination: destination,
		Immediate:   value,
	}, nil
}

func (i ImmediateToRegisterMemoryInstruction) Size() int {
	return 2 + i.Destination.Size() + immediateSize(i.Wide)
}

func (i ImmediateToRegisterMemoryInstruction) Variant() Variant {
	return ImmediateToRegisterMemory
}

// String qualifies the immediate with its size, as the destination does not
// define it when it is a memory operand.
func (i ImmediateToRegisterMemoryInstruction) String() string {
	return format(i.Destination, immediate{value: i.Immediate, wide: i.Wide, qualified: true})
}

func (ImmediateToRegisterMemoryInstruction) isInstruction() {}

// ImmediateToRegisterInstruction is encoded as [1011|w|reg] [data] [data if w = 1].
type ImmediateToRegisterInstruction struct {
	Wide      bool
	Reg       Register
	Immediate int16
}

func decodeImmediateToRegister(r *reader, opcode byte) (Instruction, error) {
	wide := opcode&0b1000 != 0
	value, err := r.readImmediate(wide)
	if err != nil {
		return nil, fmt.Errorf("reading immediate: %w", err)
	}

	return ImmediateToRegisterInstruction{
		Wide:      wide,
		Reg:       DecodeRegister(opcode, wide),
		Immediate: value,
	}, nil
}

func (i ImmediateToRegisterInstruction) Size() int {
	return 1 + immediateSize(i.Wide)
}

func (i ImmediateToRegisterInstruction) Variant() Variant {
	return ImmediateToRegister
}

func (i ImmediateToRegisterInstruction) String() string {
	return format(i.Reg, immediate{value: i.Immediate, wide: i.Wide})
}

func (ImmediateToRegisterInstruction) isInstruction() {}

// MemoryToAccumulatorInstruction is encoded as [1010000|w] [addr-lo] [addr-hi].
type MemoryToAccumulatorInstruction struct {
	Wide    bool
	Address uint16
}

func decodeMemoryToAccumulator(r *reader, opcode byte) (Instruction, error) {
	addr, err := r.readWord()
	if err != nil {
		return nil, fmt.Errorf("reading address: %w", err)
	}
	return MemoryToAccumulatorInstruction{
		Wide:    opcode&0b1 != 0,
		Address: addr,
	}, nil
}

func (i MemoryToAccumulatorInstruction) Size() int {
	return 3
}

func (i MemoryToAccumulatorInstruction) Variant() Variant {
	return MemoryToAccumulator
}

func (i MemoryToAccumulatorInstruction) String() string {
	return format(accumulator(i.Wide), address(i.Address))
}

func (MemoryToAccumulatorInstruction) isInstruction() {}

// AccumulatorToMemoryInstruction is encoded as [1010001|w] [addr-lo] [addr-hi].
type AccumulatorToMemoryInstruction struct {
	Wide    bool
	Address uint16
}

func decodeAccumulatorToMemory(r *reader, opcode byte) (Instruction, error) {
	addr, err := r.readWord()
	if err != nil {
		return nil, fmt.Errorf("reading address: %w", err)
	}
	return AccumulatorToMemoryInstruction{
		Wide:    opcode&0b1 != 0,
		Address: addr,
	}, nil
}

func (i AccumulatorToMemoryInstruction) Size() int {
	return 3
}

func (i AccumulatorToMemoryInstruction) Variant() Variant {
	return AccumulatorToMemory
}

func (i AccumulatorToMemoryInstruction) String() string {
	return format(address(i.Address), accumulator(i.Wide))
}

func (AccumulatorToMemoryInstruction) isInstruction() {}

// RegisterMemoryToSegmentRegisterInstruction is encoded as
// [10001110] [mod|0|sr|r/m] [disp-lo] [disp-hi].
type RegisterMemoryToSegmentRegisterInstruction struct {
	Segment SegmentRegister
	Source  Operand
}

func decodeRegisterMemoryToSegmentRegister(r *reader, _ byte) (Instruction, error) {
	segment, source, err := decodeSegmentOperands(r)
	if err != nil {
		return nil, err
	}
	return RegisterMemoryToSegmentRegisterInstruction{
		Segment: segment,
		Source:  source,
	}, nil
}

func (i RegisterMemoryToSegmentRegisterInstruction) Size() int {
	return 2 + i.Source.Size()
}

func (i RegisterMemoryToSegmentRegisterInstruction) Variant() Variant {
	return RegisterMemoryToSegmentRegister
}

func (i RegisterMemoryToSegmentRegisterInstruction) String() string {
	return format(i.Segment, i.Source)
}

func (RegisterMemoryToSegmentRegisterInstruction) isInstruction() {}

// SegmentRegisterToRegisterMemoryInstruction is encoded as
// [10001100] [mod|0|sr|r/m] [disp-lo] [disp-hi].
type SegmentRegisterToRegisterMemoryInstruction struct {
	Segment     SegmentRegister
	Destination Operand
}

func decodeSegmentRegisterToRegisterMemory(r *reader, _ byte) (Instruction, error) {
	segment, destination, err := decodeSegmentOperands(r)
	if err != nil {
		return nil, err
	}
	return SegmentRegisterToRegisterMemoryInstruction{
		Segment:     segment,
		Destination: destination,
	}, nil
}

func (i SegmentRegisterToRegisterMemoryInstruction) Size() int {
	return 2 + i.Destination.Size()
}

func (i SegmentRegisterToRegisterMemoryInstruction) Variant() Variant {
	return SegmentRegisterToRegisterMemory
}

func (i SegmentRegisterToRegisterMemoryInstruction) String() string {
	return format(i.Destination, i.Segment)
}

func (SegmentRegisterToRegisterMemoryInstruction) isInstruction() {}

// decodeSegmentOperands decodes a [mod|0|sr|r/m] byte, segment register moves
// always use word operands.
func decodeSegmentOperands(r *reader) (SegmentRegister, Operand, error) {
	modRM, err := r.readModRM()
	if err != nil {
		return 0, Operand{}, fmt.Errorf("reading mod/sr/rm byte: %w", err)
	}
	if modRM.Reg&0b100 != 0 {
		return 0, Operand{}, fmt.Errorf("%w: segment register code %03b", ErrInvalidEncoding, modRM.Reg)
	}

	operand, err := decodeOperand(r, modRM, true)
	if err != nil {
		return 0, Operand{}, err
	}
	return SegmentRegister(modRM.Reg), operand, nil
}

func immediateSize(wide bool) int {
	if wide {
		return 2
	}
	return 1
}
