package x86

import "fmt"

// Variant identifies the encoding of a MOV instruction.
type Variant uint8

// MOV encodings of the 8086.
const (
	RegisterMemoryToFromRegister Variant = iota + 1
	ImmediateToRegisterMemory
	ImmediateToRegister
	MemoryToAccumulator
	AccumulatorToMemory
	RegisterMemoryToSegmentRegister
	SegmentRegisterToRegisterMemory
)

var variantNames = map[Variant]string{
	RegisterMemoryToFromRegister:    "register/memory to/from register",
	ImmediateToRegisterMemory:       "immediate to register/memory",
	ImmediateToRegister:             "immediate to register",
	MemoryToAccumulator:             "memory to accumulator",
	AccumulatorToMemory:             "accumulator to memory",
	RegisterMemoryToSegmentRegister: "register/memory to segment register",
	SegmentRegisterToRegisterMemory: "segment register to register/memory",
}

func (v Variant) String() string {
	name, ok := variantNames[v]
	if !ok {
		return fmt.Sprintf("variant(%d)", uint8(v))
	}
	return name
}

// Instruction is a decoded MOV instruction. The set of implementations is closed,
// it consists of the seven <Variant>Instruction types of this package.
type Instruction interface {
	fmt.Stringer

	// Size returns the number of bytes that the instruction was decoded from.
	Size() int
	// Variant returns the encoding of the instruction.
	Variant() Variant

	isInstruction()
}

// LineEnding terminates every line of a listing, including rendered instructions.
const LineEnding = "\r\n"

func format(destination, source fmt.Stringer) string {
	return "mov " + destination.String() + ", " + source.String()
}

// immediate is an immediate operand with an optional size qualifier.
type immediate struct {
	value     int16
	wide      bool
	qualified bool
}

func (i immediate) String() string {
	if !i.qualified {
		return fmt.Sprintf("%d", i.value)
	}
	if i.wide {
		return fmt.Sprintf("word %d", i.value)
	}
	return fmt.Sprintf("byte %d", i.value)
}

// address is a direct memory address operand.
type address uint16

func (a address) String() string {
	return formatAddress(uint16(a))
}

func accumulator(wide bool) Register {
	if wide {
		return AX
	}
	return AL
}
