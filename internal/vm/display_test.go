package vm

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/retroenv/retrogolib/assert"
)

func TestClearDisplay(t *testing.T) {
	v := newTestVM(t, 0xA050, 0xD005, 0x00E0)

	stepN(t, v, 2)
	assert.True(t, v.Pixel(0, 0))

	stepN(t, v, 1)
	if diff := cmp.Diff(Framebuffer{}, v.Framebuffer()); diff != "" {
		t.Errorf("display not cleared (-want, +got)\n%s", diff)
	}
}

func TestDrawTwice(t *testing.T) {
	v := newTestVM(t,
		0x6008, // LD V0, 8
		0x6104, // LD V1, 4
		0xA050, // LD I, glyph 0
		0xD015, // DRW V0, V1, 5
		0xD015, // DRW V0, V1, 5
	)

	stepN(t, v, 4)
	assert.Equal(t, byte(0), v.State().V[FlagRegister])

	// glyph 0 rows: F0 90 90 90 F0
	for x := range 4 {
		assert.True(t, v.Pixel(8+x, 4))
		assert.True(t, v.Pixel(8+x, 8))
	}
	assert.True(t, v.Pixel(8, 5))
	assert.False(t, v.Pixel(9, 5))
	assert.True(t, v.Pixel(11, 5))
	assert.False(t, v.Pixel(12, 4))

	stepN(t, v, 1)
	assert.Equal(t, byte(1), v.State().V[FlagRegister])
	if diff := cmp.Diff(Framebuffer{}, v.Framebuffer()); diff != "" {
		t.Errorf("second draw did not restore the display (-want, +got)\n%s", diff)
	}
}

func TestDrawFlagCleared(t *testing.T) {
	v := newTestVM(t,
		0x6F01, // LD VF, 1
		0xA050, // LD I, glyph 0
		0xD005, // DRW V0, V0, 5
	)

	stepN(t, v, 3)
	assert.Equal(t, byte(0), v.State().V[FlagRegister])
}

func TestDrawPartialCollision(t *testing.T) {
	v := newTestVM(t,
		0xA050, // LD I, glyph 0
		0xD001, // DRW V0, V0, 1 -> F0
		0xA055, // LD I, glyph 1
		0xD001, // DRW V0, V0, 1 -> 20
	)

	stepN(t, v, 4)
	assert.Equal(t, byte(1), v.State().V[FlagRegister])
	assert.True(t, v.Pixel(0, 0))
	assert.True(t, v.Pixel(1, 0))
	assert.False(t, v.Pixel(2, 0))
	assert.True(t, v.Pixel(3, 0))
}

func TestDrawPosition(t *testing.T) {
	tests := []struct {
		name string
		x, y byte
		rows int
		lit  [][2]int
		dark [][2]int
	}{
		{
			name: "clipped at right edge",
			x:    60, y: 0, rows: 1,
			lit:  [][2]int{{60, 0}, {63, 0}},
			dark: [][2]int{{0, 0}, {3, 0}, {59, 0}},
		},
		{
			name: "clipped at bottom edge",
			x:    0, y: 30, rows: 4,
			lit:  [][2]int{{0, 30}, {7, 31}},
			dark: [][2]int{{0, 0}, {0, 1}},
		},
		{
			name: "coordinates wrap before drawing",
			x:    66, y: 33, rows: 1,
			lit:  [][2]int{{2, 1}, {9, 1}},
			dark: [][2]int{{1, 1}, {10, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTestVM(t,
				0x6000|uint16(tt.x),
				0x6100|uint16(tt.y),
				0xA300,
				0xD010|uint16(tt.rows),
			)
			for i := range 4 {
				v.memory[0x300+i] = 0xFF
			}

			stepN(t, v, 4)
			for _, p := range tt.lit {
				assert.True(t, v.Pixel(p[0], p[1]))
			}
			for _, p := range tt.dark {
				assert.False(t, v.Pixel(p[0], p[1]))
			}
			assert.Equal(t, byte(0), v.State().V[FlagRegister])
		})
	}
}

func TestFramebufferPixelBounds(t *testing.T) {
	var fb Framebuffer
	for i := range fb {
		fb[i] = true
	}

	assert.True(t, fb.Pixel(0, 0))
	assert.True(t, fb.Pixel(DisplayWidth-1, DisplayHeight-1))
	assert.False(t, fb.Pixel(-1, 0))
	assert.False(t, fb.Pixel(DisplayWidth, 0))
	assert.False(t, fb.Pixel(0, DisplayHeight))
}
