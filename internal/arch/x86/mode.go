package x86

// AddressingMode is the addressing mode of a register/memory operand.
type AddressingMode uint8

// Addressing modes, the first four in the order of their MOD field encoding.
const (
	MemoryNoDisp    AddressingMode = iota // mod 00
	Memory8BitDisp                        // mod 01, displacement is sign extended
	Memory16BitDisp                       // mod 10
	RegisterDirect                        // mod 11
	DirectAddress                         // mod 00 with r/m 110
)

// directAddressRM is the r/m code that selects [bp] in the other memory modes
// but a direct 16 bit address when mod is 00.
const directAddressRM = 0b110

var modeNames = [...]string{
	MemoryNoDisp:    "memory",
	Memory8BitDisp:  "memory with 8 bit displacement",
	Memory16BitDisp: "memory with 16 bit displacement",
	RegisterDirect:  "register",
	DirectAddress:   "direct address",
}

// DecodeMode returns the addressing mode of the 2 bit MOD field.
// Bits above the lowest 2 are ignored.
func DecodeMode(bits byte) AddressingMode {
	return AddressingMode(bits & 0b11)
}

// ResolveMode returns the addressing mode of the MOD field, taking the r/m field
// into account. It has to be used for every operand that can address memory.
func ResolveMode(bits, rm byte) AddressingMode {
	mode := DecodeMode(bits)
	if mode == MemoryNoDisp && rm&0b111 == directAddressRM {
		return DirectAddress
	}
	return mode
}

// DisplacementSize returns the number of displacement or address bytes that follow
// the mod/reg/rm byte in this mode.
func (m AddressingMode) DisplacementSize() int {
	switch m {
	case Memory8BitDisp:
		return 1
	case Memory16BitDisp, DirectAddress:
		return 2
	default:
		return 0
	}
}

func (m AddressingMode) String() string {
	if int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}
