// Package vm implements the CHIP-8 interpreter engine.
//
// A VM owns the complete machine state: memory, registers, call stack,
// timers, framebuffer and keypad. The caller drives execution by invoking
// Step, which runs exactly one fetch-decode-execute cycle and decrements
// both timers. The VM has no clock of its own, pacing is left to the
// caller.
//
// Instructions that would access memory outside of the 4KB address space,
// overflow or underflow the call stack return a *Fault from Step. The
// machine state is left as it was before the step and the VM refuses to
// execute until the fault is acknowledged with ClearFault or Reset.
package vm

import (
	"fmt"
	"math/rand/v2"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// VM is a CHIP-8 virtual machine instance.
type VM struct {
	logger *log.Logger
	quirks Quirks
	rand   rand.Source

	memory  Memory
	reg     Registers
	display Framebuffer
	keypad  Keypad

	program     []byte // last loaded program image, reloaded by Reset
	opcode      Opcode // instruction of the current or last step
	awaitingKey bool
	fault       *Fault

	traceEnabled   bool
	unknownOpcodes set.Set[uint16] // unmapped opcodes that were already reported
}

// New returns a new VM in its power-on state: the font set is loaded,
// the program counter points to ProgramStart and the display is clear.
func New(logger *log.Logger, opts ...Option) *VM {
	v := &VM{
		logger:         logger,
		unknownOpcodes: set.New[uint16](),
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.rand == nil {
		v.rand = newDefaultRandSource()
	}

	v.powerOn()
	return v
}

// powerOn resets all machine state except the keypad.
func (v *VM) powerOn() {
	v.memory = Memory{}
	copy(v.memory[FontStart:], fontSet[:])
	v.reg = Registers{PC: ProgramStart}
	v.display.clear()
	v.opcode = 0
	v.awaitingKey = false
	v.fault = nil
}

// LoadProgram copies the program image into memory at ProgramStart.
// The remainder of the program area is cleared.
func (v *VM) LoadProgram(image []byte) error {
	if len(image) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes, maximum is %d", ErrProgramTooLarge, len(image), MaxProgramSize)
	}
	clear(v.memory[ProgramStart:])
	if err := v.memory.load(ProgramStart, image); err != nil {
		return fmt.Errorf("loading program: %w", err)
	}

	v.program = append(v.program[:0], image...)
	v.logger.Debug("Program loaded",
		log.Int("size", len(image)),
		log.Hex("start", uint16(ProgramStart)))
	return nil
}

// Reset restores the power-on state and reloads the last loaded program.
// It also acknowledges a pending fault.
func (v *VM) Reset() {
	v.powerOn()
	copy(v.memory[ProgramStart:], v.program)
}

// Step executes a single instruction and decrements the timers.
// It returns a *Fault if the instruction could not be executed, or an
// error wrapping ErrHalted if an earlier fault was not acknowledged.
func (v *VM) Step() error {
	if v.fault != nil {
		return fmt.Errorf("%w: %w", ErrHalted, v.fault)
	}

	pc := v.reg.PC
	word, err := v.memory.ReadWord(pc)
	if err != nil {
		return v.raise(pc, 0, fmt.Errorf("fetching instruction: %w", err))
	}

	v.opcode = Opcode(word)
	v.reg.PC += 2
	v.awaitingKey = false

	op := Decode(v.opcode)
	v.trace(pc, op)

	if err := handlers[op](v, v.opcode); err != nil {
		v.reg.PC = pc
		return v.raise(pc, v.opcode, err)
	}

	v.reg.tickTimers()
	return nil
}

// raise records and returns a fault.
func (v *VM) raise(pc uint16, opcode Opcode, err error) error {
	v.fault = &Fault{
		PC:     pc,
		Opcode: opcode,
		Err:    err,
	}
	return v.fault
}

// Fault returns the pending fault or nil.
func (v *VM) Fault() error {
	if v.fault == nil {
		return nil
	}
	return v.fault
}

// ClearFault acknowledges a pending fault. The next step retries the
// faulting instruction.
func (v *VM) ClearFault() {
	v.fault = nil
}

// AwaitingKey returns whether the last step executed a key wait
// instruction while no key was pressed.
func (v *VM) AwaitingKey() bool {
	return v.awaitingKey
}

// Opcode returns the instruction word of the last step.
func (v *VM) Opcode() Opcode {
	return v.opcode
}

// State returns a copy of the register file.
func (v *VM) State() Registers {
	return v.reg
}

// Memory returns a copy of the memory.
func (v *VM) Memory() Memory {
	return v.memory
}

// Framebuffer returns a copy of the display.
func (v *VM) Framebuffer() Framebuffer {
	return v.display
}

// Pixel returns whether the display pixel at x, y is lit.
func (v *VM) Pixel(x, y int) bool {
	return v.display.Pixel(x, y)
}

// SoundActive returns whether the sound timer is running.
func (v *VM) SoundActive() bool {
	return v.reg.SoundTimer > 0
}

// SetKey sets the pressed state of a key. Keys outside of 0-F are ignored.
func (v *VM) SetKey(key byte, pressed bool) {
	if int(key) >= KeyCount {
		return
	}
	v.keypad[key] = pressed
}

// SetKeypad replaces the complete keypad state.
func (v *VM) SetKeypad(keypad Keypad) {
	v.keypad = keypad
}

// Keypad returns the current keypad state.
func (v *VM) Keypad() Keypad {
	return v.keypad
}
