package vm

// CHIP-8 memory layout constants.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x1FF: Interpreter area, holds the font set at FontStart
//	0x200-0xFFF: User program space (3584 bytes)
//
// The display buffer and the call stack are kept outside of the
// addressable memory.
const (
	// MemorySize is the number of addressable bytes.
	MemorySize = 0x1000

	// ProgramStart is the memory address where CHIP-8 programs are loaded
	// and begin execution.
	ProgramStart = 0x200

	// MaxProgramSize is the largest program image that fits into memory.
	MaxProgramSize = MemorySize - ProgramStart

	// FontStart is the memory address of the built-in hexadecimal font.
	FontStart = 0x050

	// FontGlyphSize is the number of bytes of a single font glyph.
	FontGlyphSize = 5
)

// Machine dimension constants.
const (
	RegisterCount = 16
	StackDepth    = 16
	KeyCount      = 16

	DisplayWidth  = 64
	DisplayHeight = 32

	// FlagRegister is the index of VF, which receives carry, borrow,
	// shifted-out bits and draw collisions.
	FlagRegister = 0xF

	// spriteWidth is the fixed width of a sprite row in pixels.
	spriteWidth = 8
)

// fontSet contains the 16 hexadecimal digit glyphs 0-F, 4x5 pixels each.
var fontSet = [16 * FontGlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}
