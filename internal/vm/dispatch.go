package vm

// handler executes a decoded instruction. It must validate all memory and
// stack accesses before modifying any state so that a returned error
// leaves the machine unchanged.
type handler func(v *VM, op Opcode) error

// primary maps the top nibble of all single instruction families.
// Families 0, 8, E and F are resolved by the secondary tables.
var primary = [16]Op{
	0x1: OpJP,
	0x2: OpCALL,
	0x3: OpSEByte,
	0x4: OpSNEByte,
	0x5: OpSEReg,
	0x6: OpLDByte,
	0x7: OpADDByte,
	0x9: OpSNEReg,
	0xA: OpLDI,
	0xB: OpJPV0,
	0xC: OpRND,
	0xD: OpDRW,
}

// family0 is indexed by the lowest nibble of 0x0 opcodes.
var family0 = [16]Op{
	0x0: OpCLS,
	0xE: OpRET,
}

// family8 is indexed by the lowest nibble of 0x8 opcodes.
var family8 = [16]Op{
	0x0: OpLDReg,
	0x1: OpOR,
	0x2: OpAND,
	0x3: OpXOR,
	0x4: OpADDReg,
	0x5: OpSUB,
	0x6: OpSHR,
	0x7: OpSUBN,
	0xE: OpSHL,
}

// familyE is indexed by the lowest nibble of 0xE opcodes.
var familyE = [16]Op{
	0x1: OpSKNP,
	0xE: OpSKP,
}

// familyF is indexed by the lowest byte of 0xF opcodes.
var familyF = [256]Op{
	0x07: OpLDVxDT,
	0x0A: OpLDVxK,
	0x15: OpLDDTVx,
	0x18: OpLDSTVx,
	0x1E: OpADDI,
	0x29: OpLDF,
	0x33: OpLDB,
	0x55: OpLDIVx,
	0x65: OpLDVxI,
}

var handlers = [opCount]handler{
	OpInvalid: (*VM).nop,
	OpCLS:     (*VM).cls,
	OpRET:     (*VM).ret,
	OpJP:      (*VM).jp,
	OpCALL:    (*VM).call,
	OpSEByte:  (*VM).seByte,
	OpSNEByte: (*VM).sneByte,
	OpSEReg:   (*VM).seReg,
	OpLDByte:  (*VM).ldByte,
	OpADDByte: (*VM).addByte,
	OpLDReg:   (*VM).ldReg,
	OpOR:      (*VM).or,
	OpAND:     (*VM).and,
	OpXOR:     (*VM).xor,
	OpADDReg:  (*VM).addReg,
	OpSUB:     (*VM).sub,
	OpSHR:     (*VM).shr,
	OpSUBN:    (*VM).subn,
	OpSHL:     (*VM).shl,
	OpSNEReg:  (*VM).sneReg,
	OpLDI:     (*VM).ldI,
	OpJPV0:    (*VM).jpV0,
	OpRND:     (*VM).rnd,
	OpDRW:     (*VM).drw,
	OpSKP:     (*VM).skp,
	OpSKNP:    (*VM).sknp,
	OpLDVxDT:  (*VM).ldVxDT,
	OpLDVxK:   (*VM).ldVxK,
	OpLDDTVx:  (*VM).ldDTVx,
	OpLDSTVx:  (*VM).ldSTVx,
	OpADDI:    (*VM).addI,
	OpLDF:     (*VM).ldF,
	OpLDB:     (*VM).ldB,
	OpLDIVx:   (*VM).ldIVx,
	OpLDVxI:   (*VM).ldVxI,
}

// Decode returns the instruction of the opcode. Opcodes without an
// assigned instruction decode to OpInvalid.
func Decode(op Opcode) Op {
	switch family := op.Family(); family {
	case 0x0:
		return family0[op.N()]
	case 0x8:
		return family8[op.N()]
	case 0xE:
		return familyE[op.N()]
	case 0xF:
		return familyF[op.NN()]
	default:
		return primary[family]
	}
}
