// Package verification verifies that the generated output file recreates the input.
package verification

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/movdisasm/internal/assembler"
	"github.com/retroenv/movdisasm/internal/assembler/nasm"
	"github.com/retroenv/movdisasm/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// maxLoggedMismatches limits the logged mismatching offsets.
const maxLoggedMismatches = 10

// VerifyOutput verifies that reassembling the output file recreates the expected bytes.
func VerifyOutput(ctx context.Context, logger *log.Logger, options options.Program, expected []byte) error {
	if options.Output == "" {
		return errors.New("can not verify console output")
	}

	var (
		err        error
		outputFile *os.File
	)

	if options.Debug {
		outputFile, err = os.Create("debug.bin")
		if err != nil {
			return fmt.Errorf("creating file '%s': %w", "debug.bin", err)
		}
	} else {
		outputFile, err = os.CreateTemp("", "movdisasm.*.bin")
		if err != nil {
			return fmt.Errorf("creating temp file: %w", err)
		}
		defer func() {
			_ = os.Remove(outputFile.Name())
		}()
	}
	_ = outputFile.Close()

	assemble, err := assembleFunc(options.Assembler)
	if err != nil {
		return err
	}
	if err := assemble(ctx, options.Output, outputFile.Name()); err != nil {
		return fmt.Errorf("reassembling binary using %s failed: %w", options.Assembler, err)
	}

	destination, err := os.ReadFile(outputFile.Name())
	if err != nil {
		return fmt.Errorf("reading destination file for comparison: %w", err)
	}

	if err := checkBufferEqual(logger, expected, destination); err != nil {
		return fmt.Errorf("reassembled binary mismatch: %w", err)
	}
	return nil
}

func assembleFunc(name string) (assembler.AssembleFunc, error) {
	switch strings.ToLower(name) {
	case assembler.Nasm, "":
		return nasm.AssembleUsingExternalApp, nil
	case assembler.Yasm:
		return nasm.AssembleUsingYasm, nil
	default:
		return nil, fmt.Errorf("unsupported assembler '%s'", name)
	}
}

func checkBufferEqual(logger *log.Logger, input, output []byte) error {
	if len(input) != len(output) {
		return fmt.Errorf("mismatched lengths, %d != %d", len(input), len(output))
	}

	var diffs uint64
	for i := range input {
		if input[i] == output[i] {
			continue
		}

		diffs++
		if diffs <= maxLoggedMismatches {
			logger.Error("Offset mismatch",
				log.Hex("offset", i),
				log.Hex("expected", input[i]),
				log.Hex("got", output[i]))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d offset mismatches", diffs)
}
