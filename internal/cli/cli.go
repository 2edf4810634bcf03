// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
)

// ParseFlags parses the command line arguments, excluding the program
// name, and returns the program options.
func ParseFlags(programName string, arguments []string) (options.Program, error) {
	flags := flag.NewFlagSet(programName, flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(arguments)
	if err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}
	if opts.Version {
		return opts, nil
	}

	args := flags.Args()
	if len(args) == 0 && opts.Input == "" {
		return opts, &UsageError{flags: flags, msg: "no ROM file given"}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	if len(args) > 0 {
		opts.Input = args[0]
	}
	return opts, nil
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
	fmt.Printf("usage: retrochip8 [options] <ROM file>\n\n")
	if e.flags != nil {
		e.flags.SetOutput(os.Stdout)
		e.flags.PrintDefaults()
	}
	fmt.Println()
	fmt.Println("keypad:  1 2 3 4      1 2 3 C")
	fmt.Println("         q w e r  ->  4 5 6 D")
	fmt.Println("         a s d f      7 8 9 E")
	fmt.Println("         z x c v      A 0 B F")
	fmt.Println("press Esc to quit")
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.System = strings.ToLower(opts.System)

	if opts.Hz < 0 {
		return fmt.Errorf("invalid instruction rate %d, must not be negative", opts.Hz)
	}
	if opts.Hz == 0 {
		opts.Hz = options.DefaultInstructionsPerSecond
	}
	if opts.Steps < 0 {
		return fmt.Errorf("invalid step limit %d, must not be negative", opts.Steps)
	}
	if opts.Headless && opts.Steps == 0 {
		return errors.New("headless mode requires a step limit, set it with -steps")
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.System, "s", "", "system to emulate (chip8) - if not auto-detected from file extension")
	flags.IntVar(&opts.Hz, "hz", options.DefaultInstructionsPerSecond, "instructions executed per second")
	flags.IntVar(&opts.Steps, "steps", 0, "stop after this many instructions, 0 runs until quit")
	flags.Uint64Var(&opts.Seed, "seed", 0, "random number generator seed, 0 seeds from the clock")
	flags.BoolVar(&opts.Headless, "headless", false, "run without terminal and print the final display")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.Version, "version", false, "print version and exit")
	flags.BoolVar(&opts.VFReset, "quirk-vf-reset", false, "OR, AND and XOR reset VF to 0")
	flags.BoolVar(&opts.ShiftVY, "quirk-shift-vy", false, "SHR and SHL shift VY into VX instead of VX in place")
}
