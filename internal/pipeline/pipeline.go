// Package pipeline orchestrates the emulation workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrochip8/internal/terminal"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete emulation workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new emulation pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute runs the complete emulation pipeline. The terminal frontend
// reads key presses from in, the display is written to out.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, in *os.File, out io.Writer) error {
	// Detect system architecture
	system, err := p.detector.Detect(opts)
	if err != nil {
		return fmt.Errorf("detecting system: %w", err)
	}

	// Load program image
	image, err := p.loader.Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading program: %w", err)
	}

	machine, err := p.createMachine(opts, image)
	if err != nil {
		return fmt.Errorf("creating machine: %w", err)
	}

	p.printInfo(opts, system, len(image))

	run := runner.New(p.logger, machine, opts)
	if opts.Headless {
		if err := run.RunHeadless(ctx, out); err != nil {
			return fmt.Errorf("running program: %w", err)
		}
		return nil
	}

	return p.runInteractive(ctx, run, in, out)
}

// createMachine creates the virtual machine and loads the program image.
func (p *Pipeline) createMachine(opts options.Program, image []byte) (*vm.VM, error) {
	machine := vm.New(p.logger, config.VMOptions(opts)...)
	if err := machine.LoadProgram(image); err != nil {
		return nil, fmt.Errorf("loading program into memory: %w", err)
	}
	return machine, nil
}

// runInteractive runs the program on the terminal until the user quits.
func (p *Pipeline) runInteractive(ctx context.Context, run *runner.Runner, in *os.File, out io.Writer) error {
	term, err := terminal.Open(in, out)
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}

	runErr := run.Run(ctx, term)
	if err := term.Close(); err != nil && runErr == nil {
		runErr = err
	}
	if runErr != nil {
		return fmt.Errorf("running program: %w", runErr)
	}
	return nil
}

// printInfo prints information about the program being executed.
func (p *Pipeline) printInfo(opts options.Program, system arch.System, size int) {
	if opts.Quiet {
		return
	}

	mode := "interactive"
	if opts.Headless {
		mode = "headless"
	}

	p.logger.Info("Running CHIP-8 program",
		log.String("file", opts.Input),
		log.Stringer("system", system),
		log.Int("size", size),
		log.Int("hz", opts.Hz),
		log.String("mode", mode),
	)
	if quirks := quirkNames(opts.Quirks()); quirks != "" {
		p.logger.Info("Compatibility quirks enabled", log.String("quirks", quirks))
	}
}

// quirkNames returns a comma separated list of the enabled quirks.
func quirkNames(quirks vm.Quirks) string {
	var names []string
	if quirks.LogicResetsFlag {
		names = append(names, "vf-reset")
	}
	if quirks.ShiftUsesVY {
		names = append(names, "shift-vy")
	}
	return strings.Join(names, ",")
}
