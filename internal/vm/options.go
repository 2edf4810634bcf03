package vm

import (
	"math/rand/v2"
	"time"
)

// Quirks selects between behaviors that differ across historical CHIP-8
// interpreters. The zero value leaves VF untouched by the bitwise
// instructions and shifts Vx in place.
type Quirks struct {
	// LogicResetsFlag clears VF after the OR, AND and XOR instructions.
	LogicResetsFlag bool
	// ShiftUsesVY makes SHR and SHL shift Vy into Vx instead of shifting
	// Vx in place.
	ShiftUsesVY bool
}

// Option configures a VM.
type Option func(*VM)

// WithQuirks sets the compatibility quirks.
func WithQuirks(quirks Quirks) Option {
	return func(v *VM) {
		v.quirks = quirks
	}
}

// WithRandSource sets the source of the random instruction.
func WithRandSource(src rand.Source) Option {
	return func(v *VM) {
		v.rand = src
	}
}

// WithTrace enables debug logging of every executed instruction.
func WithTrace(enabled bool) Option {
	return func(v *VM) {
		v.traceEnabled = enabled
	}
}

// newDefaultRandSource returns a PCG source seeded from the wall clock.
func newDefaultRandSource() rand.Source {
	seed := uint64(time.Now().UnixNano())
	return rand.NewPCG(seed, seed>>32|seed<<32)
}
