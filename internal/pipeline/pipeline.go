// Package pipeline orchestrates the disassembly workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/retroenv/movdisasm/internal/arch/x86"
	"github.com/retroenv/movdisasm/internal/assembler"
	"github.com/retroenv/movdisasm/internal/disasm"
	"github.com/retroenv/movdisasm/internal/loader"
	"github.com/retroenv/movdisasm/internal/options"
	"github.com/retroenv/movdisasm/internal/program"
	"github.com/retroenv/movdisasm/internal/verification"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete disassembly workflow.
type Pipeline struct {
	logger *log.Logger
	loader *loader.Loader
}

// New creates a new disassembly pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(),
	}
}

// Execute runs the complete disassembly pipeline.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, disasmOpts options.Disassembler,
	writer io.Writer) (*program.Program, error) {

	data, err := p.loader.Load(opts)
	if err != nil {
		return nil, fmt.Errorf("loading input: %w", err)
	}

	return p.ExecuteWithData(ctx, data, opts, disasmOpts, writer)
}

// ExecuteWithData runs the disassembly pipeline with input that is already in memory.
// The listing is written even if decoding stops early, the decoding error is only
// returned if the options request to stop on errors.
func (p *Pipeline) ExecuteWithData(ctx context.Context, data []byte, opts options.Program,
	disasmOpts options.Disassembler, writer io.Writer) (*program.Program, error) {

	if opts.AssembleTest {
		if err := assembler.Validate(opts.Assembler); err != nil {
			return nil, fmt.Errorf("validating assembler: %w", err)
		}
	}

	p.printInfo(opts, data)

	dis := disasm.New(p.logger, disasmOpts)
	app := dis.Process(data)

	if err := dis.Write(app, writer); err != nil {
		return nil, fmt.Errorf("writing output: %w", err)
	}

	if app.Err != nil {
		if disasmOpts.StopOnError {
			return app, fmt.Errorf("disassembling: %w", app.Err)
		}
		p.logger.Warn("Listing is incomplete",
			log.Int("decoded", app.Consumed),
			log.Int("size", app.Size),
			log.Err(app.Err))
	}

	p.printSummary(opts, app)

	if opts.AssembleTest {
		if err := verification.VerifyOutput(ctx, p.logger, opts, expectedOutput(data, app, disasmOpts)); err != nil {
			return app, fmt.Errorf("verification failed: %w", err)
		}
		p.logger.Info("Verification successful")
	}

	return app, nil
}

// expectedOutput returns the bytes that reassembling the listing has to recreate.
func expectedOutput(data []byte, app *program.Program, disasmOpts options.Disassembler) []byte {
	if disasmOpts.TrailingData {
		return data
	}
	return data[:app.Consumed]
}

// printInfo prints information about the input being processed.
func (p *Pipeline) printInfo(opts options.Program, data []byte) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Processing 8086 binary",
		log.String("file", opts.Input),
		log.Int("size", len(data)),
	)
}

func (p *Pipeline) printSummary(opts options.Program, app *program.Program) {
	if opts.Quiet {
		return
	}

	variants := make([]x86.Variant, 0, len(app.Variants))
	for variant := range app.Variants {
		variants = append(variants, variant)
	}
	slices.Sort(variants)

	names := make([]string, 0, len(variants))
	for _, variant := range variants {
		names = append(names, variant.String())
	}

	p.logger.Info("Disassembled instructions",
		log.Int("count", len(app.Offsets)),
		log.String("variants", strings.Join(names, ", ")),
	)
}
