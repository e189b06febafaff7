// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Assembler string // external assembler used for verification
	Input     string // file to disassemble, - for stdin
	Output    string // output .asm file, stdout if empty
	Batch     string // glob pattern of files to process
}

// Flags contains behavior options.
type Flags struct {
	AssembleTest bool // verify output by reassembling it and comparing it to the input
	Debug        bool
	Quiet        bool
}

// Program options of the disassembler.
type Program struct {
	Parameters
	Flags
}

// Disassembler defines options to control the disassembler.
type Disassembler struct {
	HexComments    bool // output instruction bytes as hex values in comments
	OffsetComments bool // output input offsets in comments
	StopOnError    bool // treat input that can not be fully decoded as an error
	TrailingData   bool // output undecodable trailing bytes as db directives
}

// NewDisassembler returns a new options instance with default options.
// The defaults produce a plain listing without comments.
func NewDisassembler() Disassembler {
	return Disassembler{}
}
