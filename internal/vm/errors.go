package vm

import (
	"errors"
	"fmt"
)

var (
	// ErrProgramTooLarge is returned when a program image does not fit
	// into the program area of memory.
	ErrProgramTooLarge = errors.New("program too large")
	// ErrStackOverflow is returned by a subroutine call with a full stack.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrStackUnderflow is returned by a subroutine return with an empty stack.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrAddressOutOfRange is returned for memory accesses beyond the
	// addressable memory.
	ErrAddressOutOfRange = errors.New("address out of range")
	// ErrHalted is returned by Step while a previous fault has not been
	// acknowledged.
	ErrHalted = errors.New("vm halted")
)

// Fault describes an instruction that could not be executed.
// The machine state is left as it was before the faulting step.
type Fault struct {
	PC     uint16 // address of the faulting instruction
	Opcode Opcode // zero if the fetch itself failed
	Err    error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("fault at $%03X (opcode %s): %v", f.PC, f.Opcode, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}
