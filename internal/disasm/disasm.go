// Package disasm implements the disassemble loop that decodes a buffer of 8086 MOV instructions.
package disasm

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/movdisasm/internal/arch/x86"
	"github.com/retroenv/movdisasm/internal/options"
	"github.com/retroenv/movdisasm/internal/program"
	"github.com/retroenv/movdisasm/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// Disasm implements a disassembler.
type Disasm struct {
	logger  *log.Logger
	options options.Disassembler
}

// New creates a new disassembler.
func New(logger *log.Logger, options options.Disassembler) *Disasm {
	return &Disasm{
		logger:  logger,
		options: options,
	}
}

// Process decodes all instructions of the buffer. Decoding stops at the first byte
// sequence that can not be decoded, the program then contains the instructions decoded
// so far, the remaining bytes as data offset and the reason in its Err field.
func (dis *Disasm) Process(data []byte) *program.Program {
	app := program.New(len(data))

	for app.Consumed < len(data) {
		remaining := app.Remaining(data)

		ins, err := x86.Decode(remaining)
		if err != nil {
			app.Err = fmt.Errorf("decoding instruction at offset 0x%04x: %w", app.Consumed, err)
			dis.logger.Warn("Decoding stopped before end of input",
				log.Hex("offset", app.Consumed),
				log.Hex("opcode", remaining[0]),
				log.Int("remaining", len(remaining)),
				log.Err(err))
			app.AddData(remaining)
			break
		}

		dis.logger.Debug("Decoded instruction",
			log.Hex("offset", app.Consumed),
			log.String("variant", ins.Variant().String()),
			log.String("code", ins.String()))
		app.AddInstruction(ins, remaining)
	}

	return app
}

// Write writes the program as listing using the output options of the disassembler.
func (dis *Disasm) Write(app *program.Program, w io.Writer) error {
	opts := writer.Options{
		HexComments:    dis.options.HexComments,
		OffsetComments: dis.options.OffsetComments,
		TrailingData:   dis.options.TrailingData,
	}
	if err := writer.New(app, w, opts).Write(); err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}
	return nil
}

// Disassemble decodes the buffer and returns the nasm listing. If decoding stops before
// the end of the buffer, the listing of all instructions decoded until then is returned
// together with the error that stopped the decoding. The returned text is a valid
// listing in both cases, callers that want partial results must use it even when the
// error is not nil.
func Disassemble(data []byte) (string, error) {
	cfg := log.DefaultConfig()
	cfg.Level = log.ErrorLevel
	dis := New(log.NewWithConfig(cfg), options.NewDisassembler())

	app := dis.Process(data)

	buf := &strings.Builder{}
	if err := dis.Write(app, buf); err != nil {
		return buf.String(), err
	}
	return buf.String(), app.Err
}
