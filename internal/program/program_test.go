package program

import (
	"testing"

	"github.com/retroenv/movdisasm/internal/arch/x86"
	"github.com/retroenv/retrogolib/assert"
)

func TestProgram_AddInstruction(t *testing.T) {
	data := []byte{0xb1, 0x0c, 0x89, 0xd8, 0x00}
	app := New(len(data))

	ins, err := x86.Decode(data)
	assert.NoError(t, err)
	app.AddInstruction(ins, data)

	ins, err = x86.Decode(data[app.Consumed:])
	assert.NoError(t, err)
	app.AddInstruction(ins, data[app.Consumed:])

	assert.Len(t, app.Offsets, 2)
	assert.Equal(t, 4, app.Consumed)
	assert.False(t, app.Complete())

	first := app.Offsets[0]
	assert.Equal(t, 0, first.Address)
	assert.Equal(t, "mov cl, 12", first.Code)
	assert.Equal(t, "b1 0c", first.HexCodeComment())
	assert.True(t, first.IsType(CodeOffset))

	second := app.Offsets[1]
	assert.Equal(t, 2, second.Address)
	assert.Equal(t, x86.RegisterMemoryToFromRegister, second.Variant)
	assert.Equal(t, "89 d8", second.HexCodeComment())

	assert.True(t, app.Variants.Contains(x86.ImmediateToRegister))
	assert.True(t, app.Variants.Contains(x86.RegisterMemoryToFromRegister))
	assert.False(t, app.Variants.Contains(x86.MemoryToAccumulator))

	assert.Equal(t, []byte{0x00}, app.Remaining(data))
}

func TestProgram_AddData(t *testing.T) {
	app := New(3)
	app.AddData(nil)
	assert.Len(t, app.Offsets, 0)

	app.AddData([]byte{0x00, 0x01, 0x02})
	assert.Len(t, app.Offsets, 1)
	assert.True(t, app.Offsets[0].IsType(DataOffset))
	assert.Equal(t, 0, app.Consumed)
}

func TestProgram_Complete(t *testing.T) {
	app := New(0)
	assert.True(t, app.Complete())

	app = New(2)
	assert.False(t, app.Complete())
}
