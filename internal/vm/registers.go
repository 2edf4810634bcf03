package vm

// Registers contains the register file of the machine.
type Registers struct {
	V [RegisterCount]byte // general purpose registers V0-VF
	I uint16              // index register

	PC    uint16 // program counter
	SP    uint8  // stack pointer, number of used stack slots
	Stack [StackDepth]uint16

	DelayTimer byte
	SoundTimer byte
}

// push stores the address on the call stack.
func (r *Registers) push(address uint16) error {
	if int(r.SP) >= StackDepth {
		return ErrStackOverflow
	}
	r.Stack[r.SP] = address
	r.SP++
	return nil
}

// pop removes and returns the top address of the call stack.
func (r *Registers) pop() (uint16, error) {
	if r.SP == 0 {
		return 0, ErrStackUnderflow
	}
	r.SP--
	return r.Stack[r.SP], nil
}

// tickTimers decrements both timers, stopping at 0.
func (r *Registers) tickTimers() {
	if r.DelayTimer > 0 {
		r.DelayTimer--
	}
	if r.SoundTimer > 0 {
		r.SoundTimer--
	}
}

// setFlag sets VF to 1 if the condition is true, otherwise to 0.
func (r *Registers) setFlag(condition bool) {
	if condition {
		r.V[FlagRegister] = 1
	} else {
		r.V[FlagRegister] = 0
	}
}
