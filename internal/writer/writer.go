// Package writer implements the nasm compatible listing output.
package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/movdisasm/internal/arch/x86"
	"github.com/retroenv/movdisasm/internal/program"
)

const (
	dataBytesPerLine = 16

	// Header starts every listing.
	Header = "bits 16" + x86.LineEnding + x86.LineEnding
)

type lineWriterFunc func(line string, byteCount int) error

// Writer writes a decoded program as assembly listing.
type Writer struct {
	app     *program.Program
	options Options
	writer  io.Writer
}

// Options of the writer.
type Options struct {
	HexComments    bool // append instruction bytes as comment
	OffsetComments bool // append input offset as comment
	TrailingData   bool // output data offsets as db directives
}

// New creates a new writer.
func New(app *program.Program, writer io.Writer, options Options) *Writer {
	return &Writer{
		app:     app,
		options: options,
		writer:  writer,
	}
}

// Write writes the header and all offsets of the program.
func (w Writer) Write() error {
	if _, err := io.WriteString(w.writer, Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, offset := range w.app.Offsets {
		switch {
		case offset.IsType(program.CodeOffset):
			if err := w.writeCodeLine(offset); err != nil {
				return fmt.Errorf("writing code line: %w", err)
			}

		case offset.IsType(program.DataOffset):
			if !w.options.TrailingData {
				continue
			}
			if err := w.writeData(offset); err != nil {
				return fmt.Errorf("writing data: %w", err)
			}
		}
	}
	return nil
}

// BundleDataWrites bundles writes of data bytes to print dataBytesPerLine bytes per line.
func (w Writer) BundleDataWrites(data []byte, lineWriter lineWriterFunc) error {
	remaining := len(data)
	for i := 0; remaining > 0; {
		toWrite := min(remaining, dataBytesPerLine)

		buf := &strings.Builder{}
		buf.WriteString("db ")
		for j := range toWrite {
			if j > 0 {
				buf.WriteString(", ")
			}
			fmt.Fprintf(buf, "0x%02x", data[i+j])
		}

		if err := lineWriter(buf.String(), toWrite); err != nil {
			return fmt.Errorf("writing data line: %w", err)
		}

		i += toWrite
		remaining -= toWrite
	}

	return nil
}

func (w Writer) writeCodeLine(offset program.Offset) error {
	return w.writeLine(offset.Code, w.comment(offset.Address, offset.HexCodeComment()))
}

func (w Writer) writeData(offset program.Offset) error {
	address := offset.Address
	lineWriter := func(line string, byteCount int) error {
		if err := w.writeLine(line, w.comment(address, "")); err != nil {
			return err
		}
		address += byteCount
		return nil
	}
	return w.BundleDataWrites(offset.Data, lineWriter)
}

func (w Writer) writeLine(line, comment string) error {
	var err error
	if comment == "" {
		_, err = fmt.Fprintf(w.writer, "%s%s", line, x86.LineEnding)
	} else {
		_, err = fmt.Fprintf(w.writer, "%-30s ; %s%s", line, comment, x86.LineEnding)
	}
	if err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}

func (w Writer) comment(address int, hexCode string) string {
	var parts []string
	if w.options.OffsetComments {
		parts = append(parts, fmt.Sprintf("0x%04x", address))
	}
	if w.options.HexComments && hexCode != "" {
		parts = append(parts, hexCode)
	}
	return strings.Join(parts, "  ")
}
