package vm

import (
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/log"
)

// trace logs the instruction that is about to be executed. Unmapped
// opcodes are reported once per distinct opcode word.
func (v *VM) trace(address uint16, op Op) {
	if op == OpInvalid {
		word := uint16(v.opcode)
		if v.unknownOpcodes.Contains(word) {
			return
		}
		v.unknownOpcodes.Add(word)
		v.logger.Warn("Unmapped opcode executed as no-op",
			log.Hex("address", address),
			log.String("opcode", v.opcode.String()))
		return
	}

	if !v.traceEnabled {
		return
	}
	v.logger.Debug("Executing instruction",
		log.Hex("address", address),
		log.String("opcode", v.opcode.String()),
		log.String("instruction", mnemonic(v.opcode, op)))
}

// mnemonic returns the instruction name of the opcode as listed in the
// CHIP-8 opcode table, falling back to the name of the decoded instruction
// for opcodes that the table does not match exactly.
func mnemonic(opcode Opcode, op Op) string {
	w := uint16(opcode)
	for _, info := range chip8.Opcodes[int(opcode.Family())] {
		if info.Instruction != nil && info.Info.Mask&w == info.Info.Value {
			return info.Instruction.Name
		}
	}
	return op.String()
}
