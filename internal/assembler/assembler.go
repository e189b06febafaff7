// Package assembler defines the external assemblers that can reassemble the listing.
package assembler

import (
	"context"
	"fmt"
	"strings"
)

const (
	Nasm = "nasm"
	Yasm = "yasm"
)

// AssembleFunc assembles the asm file to a flat binary output file.
type AssembleFunc func(ctx context.Context, asmFile, outputFile string) error

// Validate returns an error if the name is not a supported assembler.
func Validate(name string) error {
	switch strings.ToLower(name) {
	case Nasm, Yasm:
		return nil
	default:
		return fmt.Errorf("unsupported assembler '%s'", name)
	}
}
