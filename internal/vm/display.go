package vm

// Framebuffer is the 64x32 monochrome display, stored row-major.
// A true value is a lit pixel.
type Framebuffer [DisplayWidth * DisplayHeight]bool

// Pixel returns whether the pixel at the given position is lit.
// Positions outside of the display are reported as unlit.
func (f *Framebuffer) Pixel(x, y int) bool {
	if x < 0 || x >= DisplayWidth || y < 0 || y >= DisplayHeight {
		return false
	}
	return f[y*DisplayWidth+x]
}

// clear turns all pixels off.
func (f *Framebuffer) clear() {
	*f = Framebuffer{}
}

// drawSprite XORs the sprite rows onto the display with the top left
// corner at x, y. Pixels beyond the right and bottom edge are clipped.
// It returns whether any lit pixel was turned off.
func (f *Framebuffer) drawSprite(x, y int, rows []byte) bool {
	collision := false

	for row, data := range rows {
		py := y + row
		if py >= DisplayHeight {
			break
		}

		for col := range spriteWidth {
			if data&(0x80>>col) == 0 {
				continue
			}
			px := x + col
			if px >= DisplayWidth {
				break
			}

			index := py*DisplayWidth + px
			if f[index] {
				collision = true
			}
			f[index] = !f[index]
		}
	}

	return collision
}
