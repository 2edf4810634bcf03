// Package options contains the program options.
package options

import "github.com/retroenv/retrochip8/internal/vm"

// Default option values.
const (
	DefaultInstructionsPerSecond = 700
	DefaultFrameRate             = 60
)

// Parameters contains file path options.
type Parameters struct {
	Input string `flag:"i" usage:"input ROM file"`
}

// Flags contains behavior options.
type Flags struct {
	System   string `flag:"s" usage:"target system: chip8 (default: auto-detect)"`
	Hz       int    `flag:"hz" usage:"instructions executed per second" default:"700"`
	Steps    int    `flag:"steps" usage:"stop after this many instructions, 0 runs until quit"`
	Seed     uint64 `flag:"seed" usage:"random number generator seed, 0 seeds from the clock"`
	Headless bool   `flag:"headless" usage:"run without terminal and print the final display"`
	Debug    bool   `flag:"debug" usage:"enable debug logging and instruction tracing"`
	Quiet    bool   `flag:"q" usage:"quiet mode"`
	Version  bool   `flag:"version" usage:"print version and exit"`
}

// QuirkFlags contains the instruction set compatibility options.
type QuirkFlags struct {
	VFReset bool `flag:"quirk-vf-reset" usage:"OR, AND and XOR reset VF to 0"`
	ShiftVY bool `flag:"quirk-shift-vy" usage:"SHR and SHL shift VY into VX instead of VX in place"`
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
	QuirkFlags
}

// Quirks returns the VM quirk configuration of the options.
func (p Program) Quirks() vm.Quirks {
	return vm.Quirks{
		LogicResetsFlag: p.VFReset,
		ShiftUsesVY:     p.ShiftVY,
	}
}
