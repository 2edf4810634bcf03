package vm

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// fixedSource is a random source that always returns the same value.
type fixedSource uint64

func (s fixedSource) Uint64() uint64 {
	return uint64(s)
}

// program encodes opcodes as a big-endian program image.
func program(opcodes ...uint16) []byte {
	image := make([]byte, 0, 2*len(opcodes))
	for _, op := range opcodes {
		image = append(image, byte(op>>8), byte(op))
	}
	return image
}

func newTestVM(t *testing.T, opcodes ...uint16) *VM {
	t.Helper()

	v := New(log.NewTestLogger(t), WithRandSource(fixedSource(0xAB)))
	assert.NoError(t, v.LoadProgram(program(opcodes...)))
	return v
}

func stepN(t *testing.T, v *VM, n int) {
	t.Helper()

	for range n {
		assert.NoError(t, v.Step())
	}
}

func TestNew(t *testing.T) {
	v := New(log.NewTestLogger(t))

	state := v.State()
	assert.Equal(t, uint16(ProgramStart), state.PC)
	assert.Equal(t, uint8(0), state.SP)
	assert.Equal(t, uint16(0), state.I)
	assert.NotNil(t, v.rand)

	mem := v.Memory()
	if diff := cmp.Diff(fontSet[:], mem[FontStart:FontStart+len(fontSet)]); diff != "" {
		t.Errorf("font set (-want, +got)\n%s", diff)
	}
	if diff := cmp.Diff(Framebuffer{}, v.Framebuffer()); diff != "" {
		t.Errorf("display not cleared (-want, +got)\n%s", diff)
	}
}

func TestLoadProgram(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"empty", 0, false},
		{"small", 4, false},
		{"maximum size", MaxProgramSize, false},
		{"too large", MaxProgramSize + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(log.NewTestLogger(t))
			image := make([]byte, tt.size)
			for i := range image {
				image[i] = byte(i + 1)
			}

			err := v.LoadProgram(image)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrProgramTooLarge))
				mem := v.Memory()
				assert.Equal(t, byte(0), mem[ProgramStart])
				return
			}

			assert.NoError(t, err)
			mem := v.Memory()
			if diff := cmp.Diff(image, mem[ProgramStart:ProgramStart+tt.size]); diff != "" {
				t.Errorf("program (-want, +got)\n%s", diff)
			}
		})
	}
}

func TestStep_EndToEnd(t *testing.T) {
	v := newTestVM(t, 0x6A02, 0x7A05)

	stepN(t, v, 2)

	state := v.State()
	assert.Equal(t, byte(7), state.V[0xA])
	assert.Equal(t, uint16(ProgramStart+4), state.PC)
	assert.Equal(t, Opcode(0x7A05), v.Opcode())
}

func TestStep_Timers(t *testing.T) {
	v := newTestVM(t,
		0x6003, // LD V0, 3
		0xF015, // LD DT, V0
		0xF018, // LD ST, V0
		0xF107, // LD V1, DT
		0x1208, // JP $208
	)

	stepN(t, v, 2)
	assert.Equal(t, byte(2), v.State().DelayTimer)

	stepN(t, v, 1)
	state := v.State()
	assert.Equal(t, byte(1), state.DelayTimer)
	assert.Equal(t, byte(2), state.SoundTimer)
	assert.True(t, v.SoundActive())

	stepN(t, v, 1)
	state = v.State()
	assert.Equal(t, byte(1), state.V[1])
	assert.Equal(t, byte(0), state.DelayTimer)
	assert.Equal(t, byte(1), state.SoundTimer)

	stepN(t, v, 3)
	state = v.State()
	assert.Equal(t, byte(0), state.DelayTimer)
	assert.Equal(t, byte(0), state.SoundTimer)
	assert.False(t, v.SoundActive())
}

func TestStep_StackOverflow(t *testing.T) {
	v := newTestVM(t, 0x2200) // CALL $200

	stepN(t, v, StackDepth)
	assert.Equal(t, uint8(StackDepth), v.State().SP)

	err := v.Step()
	assert.True(t, errors.Is(err, ErrStackOverflow))

	var fault *Fault
	assert.True(t, errors.As(err, &fault))
	assert.Equal(t, uint16(ProgramStart), fault.PC)
	assert.Equal(t, Opcode(0x2200), fault.Opcode)

	state := v.State()
	assert.Equal(t, uint16(ProgramStart), state.PC)
	assert.Equal(t, uint8(StackDepth), state.SP)

	// a halted VM refuses to execute until the fault is acknowledged
	err = v.Step()
	assert.True(t, errors.Is(err, ErrHalted))
	assert.True(t, errors.Is(err, ErrStackOverflow))
	assert.Error(t, v.Fault())

	v.ClearFault()
	assert.NoError(t, v.Fault())
	err = v.Step()
	assert.True(t, errors.Is(err, ErrStackOverflow))

	v.Reset()
	assert.NoError(t, v.Fault())
	assert.Equal(t, uint8(0), v.State().SP)
	assert.NoError(t, v.Step())
}

func TestStep_StackUnderflow(t *testing.T) {
	v := newTestVM(t, 0x00EE)

	err := v.Step()
	assert.True(t, errors.Is(err, ErrStackUnderflow))
	assert.Equal(t, uint16(ProgramStart), v.State().PC)
}

func TestStep_FetchOutOfRange(t *testing.T) {
	v := newTestVM(t, 0x1FFF) // JP $FFF

	stepN(t, v, 1)
	err := v.Step()
	assert.True(t, errors.Is(err, ErrAddressOutOfRange))

	var fault *Fault
	assert.True(t, errors.As(err, &fault))
	assert.Equal(t, uint16(0xFFF), fault.PC)
	assert.Equal(t, Opcode(0), fault.Opcode)
}

func TestStep_MemoryOutOfRange(t *testing.T) {
	tests := []struct {
		name    string
		opcodes []uint16
	}{
		{"bcd", []uint16{0x6F07, 0xAFFE, 0xF033}},
		{"store registers", []uint16{0x6F07, 0xAFFF, 0xF155}},
		{"load registers", []uint16{0x6F07, 0xAFFF, 0xF165}},
		{"draw sprite", []uint16{0x6F07, 0xAFFF, 0xD005}},
		{"index beyond memory", []uint16{0x6F07, 0xAFFF, 0x60FF, 0xF01E, 0xF065}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTestVM(t, tt.opcodes...)
			stepN(t, v, len(tt.opcodes)-1)
			before := v.State()
			memBefore := v.Memory()

			err := v.Step()
			assert.True(t, errors.Is(err, ErrAddressOutOfRange))

			after := v.State()
			assert.Equal(t, before.PC, after.PC)
			assert.Equal(t, byte(7), after.V[FlagRegister])
			assert.Equal(t, before.V, after.V)
			if diff := cmp.Diff(memBefore, v.Memory()); diff != "" {
				t.Errorf("memory modified (-want, +got)\n%s", diff)
			}
		})
	}
}

func TestStep_LastByteAccess(t *testing.T) {
	v := newTestVM(t,
		0x6042, // LD V0, $42
		0xAFFF, // LD I, $FFF
		0xF055, // LD [I], V0
	)

	stepN(t, v, 3)
	mem := v.Memory()
	assert.Equal(t, byte(0x42), mem[0xFFF])
}

func TestStep_UnmappedOpcodes(t *testing.T) {
	opcodes := []uint16{0x0001, 0x8008, 0x800F, 0xE000, 0xE0A0, 0xF0FF, 0xF000}
	v := newTestVM(t, opcodes...)

	stepN(t, v, len(opcodes))

	state := v.State()
	assert.Equal(t, uint16(ProgramStart+2*len(opcodes)), state.PC)
	assert.Equal(t, [RegisterCount]byte{}, state.V)
	assert.NoError(t, v.Fault())
	for _, op := range opcodes {
		assert.True(t, v.unknownOpcodes.Contains(op))
	}
}

func TestStep_AwaitKey(t *testing.T) {
	v := newTestVM(t, 0xF30A) // LD V3, K

	stepN(t, v, 2)
	assert.True(t, v.AwaitingKey())
	assert.Equal(t, uint16(ProgramStart), v.State().PC)

	v.SetKey(0xB, true)
	v.SetKey(0x7, true)
	stepN(t, v, 1)

	state := v.State()
	assert.False(t, v.AwaitingKey())
	assert.Equal(t, byte(7), state.V[3])
	assert.Equal(t, uint16(ProgramStart+2), state.PC)
}

func TestReset(t *testing.T) {
	v := newTestVM(t, 0x6A02, 0x00E0)
	v.SetKey(1, true)
	stepN(t, v, 1)

	v.Reset()

	state := v.State()
	assert.Equal(t, uint16(ProgramStart), state.PC)
	assert.Equal(t, byte(0), state.V[0xA])
	mem := v.Memory()
	assert.Equal(t, byte(0x6A), mem[ProgramStart])
	assert.True(t, v.Keypad()[1])
}

func TestLoadProgram_ClearsPreviousImage(t *testing.T) {
	v := newTestVM(t, 0x6001, 0x6102)
	assert.NoError(t, v.LoadProgram(program(0x1200)))

	mem := v.Memory()
	assert.Equal(t, byte(0x12), mem[ProgramStart])
	assert.Equal(t, byte(0x00), mem[ProgramStart+2])
	assert.Equal(t, byte(0x00), mem[ProgramStart+3])

	v.Reset()
	assert.Equal(t, mem, v.Memory())
}

func TestSetKey(t *testing.T) {
	v := New(log.NewTestLogger(t))

	v.SetKey(0xF, true)
	v.SetKey(0x10, true)
	assert.True(t, v.Keypad()[0xF])

	v.SetKeypad(Keypad{0: true})
	keypad := v.Keypad()
	assert.True(t, keypad[0])
	assert.False(t, keypad[0xF])
}
