// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/movdisasm/internal/assembler"
	"github.com/retroenv/movdisasm/internal/options"
)

// ParseFlags parses command line flags and returns program and disassembler options
func ParseFlags() (options.Program, options.Disassembler, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	var opts options.Program
	disasmOptions := options.NewDisassembler()
	readOptionFlags(flags, &opts)
	readDisasmOptionFlags(flags, &disasmOptions)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Batch == "") {
		return opts, disasmOptions, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, disasmOptions, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, disasmOptions, err
	}

	if opts.Batch == "" {
		opts.Input = args[0]
	}
	// log messages would be mixed into a listing that is printed on the console
	if opts.Output == "" && opts.Batch == "" && !opts.Debug {
		opts.Quiet = true
	}

	if err := validateOptionCombinations(opts); err != nil {
		return opts, disasmOptions, err
	}

	return opts, disasmOptions, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: movdisasm [options] <file to disassemble or - for stdin>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && len(arg) > 1 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after file to disassemble, please pass the file to disassemble as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Assembler = strings.ToLower(opts.Assembler)
	if err := assembler.Validate(opts.Assembler); err != nil {
		return fmt.Errorf("%w. Valid options: %s, %s", err, assembler.Nasm, assembler.Yasm)
	}
	return nil
}

// validateOptionCombinations checks for options that can not be used together
func validateOptionCombinations(opts options.Program) error {
	if !opts.AssembleTest {
		return nil
	}
	if opts.Output == "" && opts.Batch == "" {
		return errors.New("verification requires an output file, pass it with -o")
	}
	if opts.Batch != "" && opts.Output != "" {
		return errors.New("verification of a batch names the output files automatically, do not pass -o")
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Output, "o", "", "name of the output .asm file, printed on console if no name given")
	flags.StringVar(&opts.Assembler, "a", assembler.Nasm, "assembler used to verify the generated .asm file (nasm/yasm)")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask and automatically .asm file naming, for example *.bin")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.AssembleTest, "verify", false, "verify the generated output by assembling it and check if it matches the input")
}

func readDisasmOptionFlags(flags *flag.FlagSet, opts *options.Disassembler) {
	flags.BoolVar(&opts.HexComments, "hexcomments", false, "output instruction bytes as hex values in comments")
	flags.BoolVar(&opts.OffsetComments, "offsets", false, "output input offsets in comments")
	flags.BoolVar(&opts.StopOnError, "stop", false, "treat input that can not be fully decoded as error")
	flags.BoolVar(&opts.TrailingData, "data", false, "output bytes that can not be decoded as db directives")
}
