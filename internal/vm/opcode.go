package vm

import "fmt"

// Opcode is a 16-bit instruction word, fetched big-endian from memory.
type Opcode uint16

// Family returns the top nibble which selects the instruction group.
func (o Opcode) Family() uint8 {
	return uint8(o >> 12)
}

// X returns the first register operand nibble (bits 8-11).
func (o Opcode) X() uint8 {
	return uint8(o>>8) & 0xF
}

// Y returns the second register operand nibble (bits 4-7).
func (o Opcode) Y() uint8 {
	return uint8(o>>4) & 0xF
}

// N returns the lowest nibble.
func (o Opcode) N() uint8 {
	return uint8(o) & 0xF
}

// NN returns the immediate byte.
func (o Opcode) NN() byte {
	return byte(o)
}

// NNN returns the 12-bit address.
func (o Opcode) NNN() uint16 {
	return uint16(o) & 0x0FFF
}

func (o Opcode) String() string {
	return fmt.Sprintf("%04X", uint16(o))
}

// Op identifies a decoded instruction.
type Op uint8

// Decoded instructions, named after the common CHIP-8 mnemonics.
// OpInvalid is the zero value and is executed as a no-op.
const (
	OpInvalid Op = iota
	OpCLS        // 00E0
	OpRET        // 00EE
	OpJP         // 1NNN
	OpCALL       // 2NNN
	OpSEByte     // 3XNN
	OpSNEByte    // 4XNN
	OpSEReg      // 5XY0
	OpLDByte     // 6XNN
	OpADDByte    // 7XNN
	OpLDReg      // 8XY0
	OpOR         // 8XY1
	OpAND        // 8XY2
	OpXOR        // 8XY3
	OpADDReg     // 8XY4
	OpSUB        // 8XY5
	OpSHR        // 8XY6
	OpSUBN       // 8XY7
	OpSHL        // 8XYE
	OpSNEReg     // 9XY0
	OpLDI        // ANNN
	OpJPV0       // BNNN
	OpRND        // CXNN
	OpDRW        // DXYN
	OpSKP        // EX9E
	OpSKNP       // EXA1
	OpLDVxDT     // FX07
	OpLDVxK      // FX0A
	OpLDDTVx     // FX15
	OpLDSTVx     // FX18
	OpADDI       // FX1E
	OpLDF        // FX29
	OpLDB        // FX33
	OpLDIVx      // FX55
	OpLDVxI      // FX65

	opCount
)

var opNames = [opCount]string{
	OpInvalid: "invalid",
	OpCLS:     "cls",
	OpRET:     "ret",
	OpJP:      "jp",
	OpCALL:    "call",
	OpSEByte:  "se vx, byte",
	OpSNEByte: "sne vx, byte",
	OpSEReg:   "se vx, vy",
	OpLDByte:  "ld vx, byte",
	OpADDByte: "add vx, byte",
	OpLDReg:   "ld vx, vy",
	OpOR:      "or",
	OpAND:     "and",
	OpXOR:     "xor",
	OpADDReg:  "add vx, vy",
	OpSUB:     "sub",
	OpSHR:     "shr",
	OpSUBN:    "subn",
	OpSHL:     "shl",
	OpSNEReg:  "sne vx, vy",
	OpLDI:     "ld i, addr",
	OpJPV0:    "jp v0, addr",
	OpRND:     "rnd",
	OpDRW:     "drw",
	OpSKP:     "skp",
	OpSKNP:    "sknp",
	OpLDVxDT:  "ld vx, dt",
	OpLDVxK:   "ld vx, k",
	OpLDDTVx:  "ld dt, vx",
	OpLDSTVx:  "ld st, vx",
	OpADDI:    "add i, vx",
	OpLDF:     "ld f, vx",
	OpLDB:     "ld b, vx",
	OpLDIVx:   "ld [i], vx",
	OpLDVxI:   "ld vx, [i]",
}

func (o Op) String() string {
	if o >= opCount {
		return fmt.Sprintf("Op(%d)", uint8(o))
	}
	return opNames[o]
}
