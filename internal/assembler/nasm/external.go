// Package nasm provides helpers to reassemble listings with nasm syntax compatible assemblers.
package nasm

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/retroenv/movdisasm/internal/assembler"
)

// Installed returns whether the assembler binary can be found in the path.
func Installed(assemblerName string) bool {
	_, err := exec.LookPath(assemblerName)
	return err == nil
}

// AssembleUsingExternalApp calls nasm to generate a flat binary from the given asm file.
func AssembleUsingExternalApp(ctx context.Context, asmFile, outputFile string) error {
	return assemble(ctx, assembler.Nasm, asmFile, outputFile)
}

// AssembleUsingYasm calls yasm, which accepts the same syntax and flags as nasm.
func AssembleUsingYasm(ctx context.Context, asmFile, outputFile string) error {
	return assemble(ctx, assembler.Yasm, asmFile, outputFile)
}

func assemble(ctx context.Context, assemblerName, asmFile, outputFile string) error {
	if !Installed(assemblerName) {
		return fmt.Errorf("%s is not installed", assemblerName)
	}

	cmd := exec.CommandContext(ctx, assemblerName, "-f", "bin", "-o", outputFile, asmFile)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("assembling file: %s: %w", strings.TrimSpace(string(out)), err)
	}

	return nil
}
