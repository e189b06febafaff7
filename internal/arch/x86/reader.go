package x86

import (
	"encoding/binary"

	cpu "github.com/retroenv/retrogolib/arch/cpu/x86"
)

// reader reads instruction bytes without ever reading beyond the buffer.
type reader struct {
	data []byte
	pos  int
}

func (r *reader) readByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, ErrTruncated
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// readModRM reads a mod/reg/rm byte and splits it into its fields.
func (r *reader) readModRM() (cpu.ModRM, error) {
	var m cpu.ModRM
	b, err := r.readByte()
	if err != nil {
		return m, err
	}
	m.FromByte(b)
	return m, nil
}

// readWord reads a little endian 16 bit value.
func (r *reader) readWord() (uint16, error) {
	if r.pos+2 > len(r.data) {
		return 0, ErrTruncated
	}
	w := binary.LittleEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return w, nil
}

// readImmediate reads an 8 or 16 bit immediate, 8 bit values are sign extended.
func (r *reader) readImmediate(wide bool) (int16, error) {
	if wide {
		w, err := r.readWord()
		return int16(w), err
	}
	b, err := r.readByte()
	return int16(int8(b)), err
}
