package x86

import (
	"fmt"
	"strconv"
	"strings"

	cpu "github.com/retroenv/retrogolib/arch/cpu/x86"
)

// effectiveAddress returns the address calculation of a r/m field, independent of
// the operand width. For mod 00 the r/m value 110 is a direct address instead of bp.
func effectiveAddress(rm byte) string {
	ref := cpu.RegBXSIRef + cpu.RegisterParam(rm&0b111)
	name := strings.Trim(ref.String(), "[]")
	return strings.ReplaceAll(name, "+", " + ")
}

// Operand is the register/memory operand described by the mod and r/m fields.
type Operand struct {
	Mode         AddressingMode
	RM           byte     // raw r/m field
	Register     Register // set for RegisterDirect
	Displacement int16    // set for Memory8BitDisp and Memory16BitDisp
	Address      uint16   // set for DirectAddress
}

// decodeOperand decodes the register/memory operand of a mod/reg/rm byte and
// reads the displacement bytes that belong to it.
func decodeOperand(r *reader, modRM cpu.ModRM, wide bool) (Operand, error) {
	op := Operand{
		Mode: ResolveMode(modRM.Mod, modRM.RM),
		RM:   modRM.RM,
	}

	switch op.Mode {
	case RegisterDirect:
		op.Register = DecodeRegister(modRM.RM, wide)

	case Memory8BitDisp:
		b, err := r.readByte()
		if err != nil {
			return Operand{}, fmt.Errorf("reading 8 bit displacement: %w", err)
		}
		op.Displacement = int16(int8(b))

	case Memory16BitDisp:
		w, err := r.readWord()
		if err != nil {
			return Operand{}, fmt.Errorf("reading 16 bit displacement: %w", err)
		}
		op.Displacement = int16(w)

	case DirectAddress:
		w, err := r.readWord()
		if err != nil {
			return Operand{}, fmt.Errorf("reading direct address: %w", err)
		}
		op.Address = w
	}

	return op, nil
}

// Size returns the number of displacement bytes of the operand.
func (o Operand) Size() int {
	return o.Mode.DisplacementSize()
}

func (o Operand) String() string {
	switch o.Mode {
	case RegisterDirect:
		return o.Register.String()
	case DirectAddress:
		return formatAddress(o.Address)
	}

	ea := effectiveAddress(o.RM)
	switch {
	case o.Displacement > 0:
		return fmt.Sprintf("[%s + %d]", ea, o.Displacement)
	case o.Displacement < 0:
		return fmt.Sprintf("[%s - %d]", ea, -int(o.Displacement))
	default:
		return "[" + ea + "]"
	}
}

func formatAddress(address uint16) string {
	return "[" + strconv.FormatUint(uint64(address), 10) + "]"
}
