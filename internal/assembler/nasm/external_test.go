package nasm

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/movdisasm/internal/assembler"
	"github.com/retroenv/retrogolib/assert"
)

func TestAssembleUsingExternalApp(t *testing.T) {
	if !Installed(assembler.Nasm) {
		t.Skip("nasm is not installed")
	}

	dir := t.TempDir()
	asmFile := filepath.Join(dir, "test.asm")
	outputFile := filepath.Join(dir, "test.bin")

	source := "bits 16\r\n\r\nmov cx, bx\r\nmov ax, [bx + di - 37]\r\n"
	assert.NoError(t, os.WriteFile(asmFile, []byte(source), 0o644))

	assert.NoError(t, AssembleUsingExternalApp(context.Background(), asmFile, outputFile))

	data, err := os.ReadFile(outputFile)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0xd9, 0x8b, 0x41, 0xdb}, data)
}

func TestAssembleUsingExternalApp_Error(t *testing.T) {
	if !Installed(assembler.Nasm) {
		t.Skip("nasm is not installed")
	}

	dir := t.TempDir()
	asmFile := filepath.Join(dir, "invalid.asm")
	assert.NoError(t, os.WriteFile(asmFile, []byte("bits 16\nnot an instruction\n"), 0o644))

	err := AssembleUsingExternalApp(context.Background(), asmFile, filepath.Join(dir, "out.bin"))
	assert.ErrorContains(t, err, "assembling file")
}

func TestInstalled(t *testing.T) {
	assert.False(t, Installed("movdisasm-assembler-that-does-not-exist"))
}
