package x86

import (
	"errors"
	"testing"

	cpu "github.com/retroenv/retrogolib/arch/cpu/x86"
	"github.com/retroenv/retrogolib/assert"
)

func splitModRM(b byte) cpu.ModRM {
	var m cpu.ModRM
	m.FromByte(b)
	return m
}

func TestDecodeOperand(t *testing.T) {
	tests := []struct {
		name     string
		modRM    byte
		wide     bool
		data     []byte
		expected string
		size     int
	}{
		{"register byte", 0b11_000_101, false, nil, "ch", 0},
		{"register word", 0b11_000_101, true, nil, "bp", 0},
		{"bx + si", 0b00_000_000, true, nil, "[bx + si]", 0},
		{"bx + di", 0b00_000_001, true, nil, "[bx + di]", 0},
		{"bp + si", 0b00_000_010, true, nil, "[bp + si]", 0},
		{"bp + di", 0b00_000_011, true, nil, "[bp + di]", 0},
		{"si", 0b00_000_100, true, nil, "[si]", 0},
		{"di", 0b00_000_101, false, nil, "[di]", 0},
		{"direct address", 0b00_000_110, true, []byte{0x82, 0x0d}, "[3458]", 2},
		{"direct address high bit", 0b00_000_110, false, []byte{0xff, 0xff}, "[65535]", 2},
		{"bx", 0b00_000_111, false, nil, "[bx]", 0},
		{"bp zero displacement", 0b01_000_110, true, []byte{0x00}, "[bp]", 1},
		{"8 bit displacement", 0b01_000_000, true, []byte{0x04}, "[bx + si + 4]", 1},
		{"negative 8 bit displacement", 0b01_000_001, true, []byte{0xdb}, "[bx + di - 37]", 1},
		{"8 bit displacement minus one", 0b01_000_111, true, []byte{0xff}, "[bx - 1]", 1},
		{"16 bit displacement", 0b10_000_000, false, []byte{0x87, 0x13}, "[bx + si + 4999]", 2},
		{"negative 16 bit displacement", 0b10_000_100, true, []byte{0xd4, 0xfe}, "[si - 300]", 2},
		{"minimum 16 bit displacement", 0b10_000_101, true, []byte{0x00, 0x80}, "[di - 32768]", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &reader{data: tt.data}
			op, err := decodeOperand(r, splitModRM(tt.modRM), tt.wide)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, op.String())
			assert.Equal(t, tt.size, op.Size())
			assert.Equal(t, len(tt.data), r.pos)
		})
	}
}

func TestDecodeOperand_Truncated(t *testing.T) {
	tests := []struct {
		name  string
		modRM byte
		data  []byte
	}{
		{"missing 8 bit displacement", 0b01_000_000, nil},
		{"missing 16 bit displacement", 0b10_000_000, []byte{0x01}},
		{"missing direct address", 0b00_000_110, []byte{0x01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &reader{data: tt.data}
			_, err := decodeOperand(r, splitModRM(tt.modRM), true)
			assert.True(t, errors.Is(err, ErrTruncated))
		})
	}
}

func TestEffectiveAddress(t *testing.T) {
	expected := []string{"bx + si", "bx + di", "bp + si", "bp + di", "si", "di", "bp", "bx"}
	for rm := range byte(8) {
		assert.Equal(t, expected[rm], effectiveAddress(rm))
	}
	assert.Equal(t, "bx + si", effectiveAddress(0b1000))
}
