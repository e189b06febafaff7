// Package loader handles input file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/movdisasm/internal/options"
	"golang.org/x/term"
)

// StdinInput is the input name that selects reading from stdin.
const StdinInput = "-"

// ErrTerminalInput is returned when stdin should be read but is attached to a terminal.
var ErrTerminalInput = errors.New("stdin is a terminal, pipe the binary input or pass a file name")

// Loader handles loading raw binary input.
type Loader struct {
	stdin *os.File
}

// New creates a new input loader.
func New() *Loader {
	return &Loader{
		stdin: os.Stdin,
	}
}

// Load reads the complete input that the options select. The input is a raw byte
// sequence without any container format.
func (l *Loader) Load(opts options.Program) ([]byte, error) {
	if opts.Input == StdinInput {
		return l.loadStdin()
	}

	data, err := os.ReadFile(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", opts.Input, err)
	}
	return data, nil
}

func (l *Loader) loadStdin() ([]byte, error) {
	if term.IsTerminal(int(l.stdin.Fd())) {
		return nil, ErrTerminalInput
	}

	data, err := io.ReadAll(l.stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return data, nil
}
