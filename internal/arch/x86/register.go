package x86

import cpu "github.com/retroenv/retrogolib/arch/cpu/x86"

// Register is a general purpose 8086 register. The values share the numbering of
// cpu.RegisterParam, byte registers followed by word registers, each group ordered
// by their 3 bit code.
type Register cpu.RegisterParam

// General purpose registers.
const (
	AL = Register(cpu.RegAL)
	CL = Register(cpu.RegCL)
	DL = Register(cpu.RegDL)
	BL = Register(cpu.RegBL)
	AH = Register(cpu.RegAH)
	CH = Register(cpu.RegCH)
	DH = Register(cpu.RegDH)
	BH = Register(cpu.RegBH)
	AX = Register(cpu.RegAX)
	CX = Register(cpu.RegCX)
	DX = Register(cpu.RegDX)
	BX = Register(cpu.RegBX)
	SP = Register(cpu.RegSP)
	BP = Register(cpu.RegBP)
	SI = Register(cpu.RegSI)
	DI = Register(cpu.RegDI)
)

// DecodeRegister returns the register for a 3 bit register code and the operand width.
// Bits above the lowest 3 are ignored.
//
// | REG | W = 0 | W = 1 |
// |-----|-------|-------|
// | 000 | AL    | AX    |
// | 001 | CL    | CX    |
// | 010 | DL    | DX    |
// | 011 | BL    | BX    |
// | 100 | AH    | SP    |
// | 101 | CH    | BP    |
// | 110 | DH    | SI    |
// | 111 | BH    | DI    |
func DecodeRegister(code byte, wide bool) Register {
	r := Register(code & 0b111)
	if wide {
		return r + AX
	}
	return r
}

func (r Register) String() string {
	param := cpu.RegisterParam(r)
	if !param.Is8Bit() && !param.Is16Bit() {
		return "?"
	}
	return param.String()
}

// SegmentRegister is one of the four 8086 segment registers, ordered by their 2 bit code.
type SegmentRegister uint8

// Segment registers.
const (
	ES SegmentRegister = iota
	CS
	SS
	DS
)

func (s SegmentRegister) String() string {
	if s > DS {
		return "?"
	}
	return (cpu.RegES + cpu.RegisterParam(s)).String()
}
