// Package program represents a decoded 8086 program.
package program

import (
	"fmt"
	"strings"

	"github.com/retroenv/movdisasm/internal/arch/x86"
	"github.com/retroenv/retrogolib/set"
)

// Offset defines the content of an offset in a program that can represent data or code.
type Offset struct {
	Address int    // offset of the first byte in the input
	Data    []byte // all opcode bytes that are part of the instruction, or data bytes

	Type    OffsetType
	Variant x86.Variant // encoding of the instruction, only set for code offsets
	Code    string      // asm output of this instruction, without line ending
}

// HexCodeComment returns the offset bytes as space separated hex values.
func (o Offset) HexCodeComment() string {
	buf := &strings.Builder{}
	for i, b := range o.Data {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(buf, "%02x", b)
	}
	return buf.String()
}

// Program defines a decoded program that contains code and optional trailing data.
type Program struct {
	Offsets []Offset

	Size     int                   // length of the input in bytes
	Consumed int                   // bytes covered by code offsets
	Variants set.Set[x86.Variant] // instruction encodings that the program uses

	// Err describes why decoding stopped before the end of the input,
	// it is nil if the whole input was decoded.
	Err error
}

// New creates a new program for an input of the given size.
func New(size int) *Program {
	return &Program{
		Size:     size,
		Variants: set.New[x86.Variant](),
	}
}

// AddInstruction appends a decoded instruction that starts at the current end of the
// decoded code.
func (p *Program) AddInstruction(ins x86.Instruction, data []byte) {
	offset := Offset{
		Address: p.Consumed,
		Data:    data[:ins.Size()],
		Variant: ins.Variant(),
		Code:    ins.String(),
	}
	offset.SetType(CodeOffset)
	p.Offsets = append(p.Offsets, offset)
	p.Consumed += ins.Size()
	p.Variants.Add(ins.Variant())
}

// AddData appends bytes that could not be decoded as instructions.
func (p *Program) AddData(data []byte) {
	if len(data) == 0 {
		return
	}
	offset := Offset{
		Address: p.Consumed,
		Data:    data,
	}
	offset.SetType(DataOffset)
	p.Offsets = append(p.Offsets, offset)
}

// Complete returns whether the whole input was decoded as instructions.
func (p *Program) Complete() bool {
	return p.Err == nil && p.Consumed == p.Size
}

// Remaining returns the part of the input that was not decoded as instructions.
func (p *Program) Remaining(data []byte) []byte {
	return data[p.Consumed:]
}
