package vm

// nop is executed for opcodes without an assigned instruction.
func (v *VM) nop(Opcode) error {
	return nil
}

// cls clears the display.
func (v *VM) cls(Opcode) error {
	v.display.clear()
	return nil
}

// ret returns from a subroutine.
func (v *VM) ret(Opcode) error {
	address, err := v.reg.pop()
	if err != nil {
		return err
	}
	v.reg.PC = address
	return nil
}

// jp jumps to address NNN.
func (v *VM) jp(op Opcode) error {
	v.reg.PC = op.NNN()
	return nil
}

// call calls the subroutine at address NNN.
func (v *VM) call(op Opcode) error {
	if err := v.reg.push(v.reg.PC); err != nil {
		return err
	}
	v.reg.PC = op.NNN()
	return nil
}

// skipIf skips the next instruction if the condition is true. The program
// counter already points to the next instruction at this point.
func (v *VM) skipIf(condition bool) {
	if condition {
		v.reg.PC += 2
	}
}

// seByte skips the next instruction if Vx == NN.
func (v *VM) seByte(op Opcode) error {
	v.skipIf(v.reg.V[op.X()] == op.NN())
	return nil
}

// sneByte skips the next instruction if Vx != NN.
func (v *VM) sneByte(op Opcode) error {
	v.skipIf(v.reg.V[op.X()] != op.NN())
	return nil
}

// seReg skips the next instruction if Vx == Vy.
func (v *VM) seReg(op Opcode) error {
	v.skipIf(v.reg.V[op.X()] == v.reg.V[op.Y()])
	return nil
}

// sneReg skips the next instruction if Vx != Vy.
func (v *VM) sneReg(op Opcode) error {
	v.skipIf(v.reg.V[op.X()] != v.reg.V[op.Y()])
	return nil
}

// ldByte sets Vx = NN.
func (v *VM) ldByte(op Opcode) error {
	v.reg.V[op.X()] = op.NN()
	return nil
}

// addByte sets Vx = Vx + NN without affecting VF.
func (v *VM) addByte(op Opcode) error {
	v.reg.V[op.X()] += op.NN()
	return nil
}

// ldReg sets Vx = Vy.
func (v *VM) ldReg(op Opcode) error {
	v.reg.V[op.X()] = v.reg.V[op.Y()]
	return nil
}

// logicResult applies the flag reset quirk of the bitwise instructions.
func (v *VM) logicResult() {
	if v.quirks.LogicResetsFlag {
		v.reg.V[FlagRegister] = 0
	}
}

func (v *VM) or(op Opcode) error {
	v.reg.V[op.X()] |= v.reg.V[op.Y()]
	v.logicResult()
	return nil
}

func (v *VM) and(op Opcode) error {
	v.reg.V[op.X()] &= v.reg.V[op.Y()]
	v.logicResult()
	return nil
}

func (v *VM) xor(op Opcode) error {
	v.reg.V[op.X()] ^= v.reg.V[op.Y()]
	v.logicResult()
	return nil
}

// addReg sets Vx = Vx + Vy, VF = carry.
func (v *VM) addReg(op Opcode) error {
	x, y := v.reg.V[op.X()], v.reg.V[op.Y()]
	sum := uint16(x) + uint16(y)
	v.reg.V[op.X()] = byte(sum)
	v.reg.setFlag(sum > 0xFF)
	return nil
}

// sub sets Vx = Vx - Vy, VF = NOT borrow.
func (v *VM) sub(op Opcode) error {
	x, y := v.reg.V[op.X()], v.reg.V[op.Y()]
	v.reg.V[op.X()] = x - y
	v.reg.setFlag(x >= y)
	return nil
}

// subn sets Vx = Vy - Vx, VF = NOT borrow.
func (v *VM) subn(op Opcode) error {
	x, y := v.reg.V[op.X()], v.reg.V[op.Y()]
	v.reg.V[op.X()] = y - x
	v.reg.setFlag(y >= x)
	return nil
}

// shiftSource returns the value that the shift instructions operate on.
func (v *VM) shiftSource(op Opcode) byte {
	if v.quirks.ShiftUsesVY {
		return v.reg.V[op.Y()]
	}
	return v.reg.V[op.X()]
}

// shr sets Vx = source >> 1, VF = shifted out bit.
func (v *VM) shr(op Opcode) error {
	value := v.shiftSource(op)
	v.reg.V[op.X()] = value >> 1
	v.reg.V[FlagRegister] = value & 0x01
	return nil
}

// shl sets Vx = source << 1, VF = shifted out bit.
func (v *VM) shl(op Opcode) error {
	value := v.shiftSource(op)
	v.reg.V[op.X()] = value << 1
	v.reg.V[FlagRegister] = value >> 7
	return nil
}

// ldI sets I = NNN.
func (v *VM) ldI(op Opcode) error {
	v.reg.I = op.NNN()
	return nil
}

// jpV0 jumps to address NNN + V0.
func (v *VM) jpV0(op Opcode) error {
	v.reg.PC = op.NNN() + uint16(v.reg.V[0])
	return nil
}

// rnd sets Vx = random byte AND NN.
func (v *VM) rnd(op Opcode) error {
	v.reg.V[op.X()] = byte(v.rand.Uint64()) & op.NN()
	return nil
}

// drw draws an N rows high sprite from memory at I to the position Vx, Vy
// and sets VF on collision.
func (v *VM) drw(op Opcode) error {
	rows, err := v.memory.Block(v.reg.I, int(op.N()))
	if err != nil {
		return err
	}

	x := int(v.reg.V[op.X()]) % DisplayWidth
	y := int(v.reg.V[op.Y()]) % DisplayHeight
	collision := v.display.drawSprite(x, y, rows)
	v.reg.setFlag(collision)
	return nil
}

// skp skips the next instruction if the key Vx is pressed.
func (v *VM) skp(op Opcode) error {
	v.skipIf(v.keypad[v.reg.V[op.X()]&0xF])
	return nil
}

// sknp skips the next instruction if the key Vx is not pressed.
func (v *VM) sknp(op Opcode) error {
	v.skipIf(!v.keypad[v.reg.V[op.X()]&0xF])
	return nil
}

// ldVxDT sets Vx = delay timer.
func (v *VM) ldVxDT(op Opcode) error {
	v.reg.V[op.X()] = v.reg.DelayTimer
	return nil
}

// ldVxK waits for a key press and stores the key in Vx. While no key is
// pressed the program counter is rewound so that the instruction is
// fetched again by the next step.
func (v *VM) ldVxK(op Opcode) error {
	key, ok := v.keypad.firstPressed()
	if !ok {
		v.reg.PC -= 2
		v.awaitingKey = true
		return nil
	}
	v.reg.V[op.X()] = key
	return nil
}

// ldDTVx sets delay timer = Vx.
func (v *VM) ldDTVx(op Opcode) error {
	v.reg.DelayTimer = v.reg.V[op.X()]
	return nil
}

// ldSTVx sets sound timer = Vx.
func (v *VM) ldSTVx(op Opcode) error {
	v.reg.SoundTimer = v.reg.V[op.X()]
	return nil
}

// addI sets I = I + Vx without affecting VF.
func (v *VM) addI(op Opcode) error {
	v.reg.I += uint16(v.reg.V[op.X()])
	return nil
}

// ldF sets I to the font glyph of the low nibble of Vx.
func (v *VM) ldF(op Opcode) error {
	digit := uint16(v.reg.V[op.X()] & 0xF)
	v.reg.I = FontStart + FontGlyphSize*digit
	return nil
}

// ldB stores the BCD representation of Vx at I, I+1 and I+2.
func (v *VM) ldB(op Opcode) error {
	block, err := v.memory.Block(v.reg.I, 3)
	if err != nil {
		return err
	}

	value := v.reg.V[op.X()]
	block[0] = value / 100
	block[1] = value / 10 % 10
	block[2] = value % 10
	return nil
}

// ldIVx stores V0 through Vx in memory starting at I.
func (v *VM) ldIVx(op Opcode) error {
	count := int(op.X()) + 1
	block, err := v.memory.Block(v.reg.I, count)
	if err != nil {
		return err
	}
	copy(block, v.reg.V[:count])
	return nil
}

// ldVxI reads V0 through Vx from memory starting at I.
func (v *VM) ldVxI(op Opcode) error {
	count := int(op.X()) + 1
	block, err := v.memory.Block(v.reg.I, count)
	if err != nil {
		return err
	}
	copy(v.reg.V[:count], block)
	return nil
}
