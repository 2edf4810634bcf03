package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retrochip8/internal/vm"
)

// ANSI escape sequences used for drawing.
const (
	cursorHome  = "\x1b[H"
	clearScreen = "\x1b[2J"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

// half block characters, indexed by top pixel | bottom pixel<<1
var halfBlocks = [4]string{" ", "▀", "▄", "█"}

// Render draws the framebuffer at the top left corner of the terminal.
// Every character cell shows two pixel rows. Raw mode requires explicit
// carriage returns.
func Render(w io.Writer, fb *vm.Framebuffer) error {
	var sb strings.Builder
	sb.Grow(len(cursorHome) + vm.DisplayHeight/2*(vm.DisplayWidth*3+2))
	sb.WriteString(cursorHome)

	for y := 0; y < vm.DisplayHeight; y += 2 {
		for x := range vm.DisplayWidth {
			index := 0
			if fb.Pixel(x, y) {
				index |= 1
			}
			if fb.Pixel(x, y+1) {
				index |= 2
			}
			sb.WriteString(halfBlocks[index])
		}
		sb.WriteString("\r\n")
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// WriteText writes the framebuffer as plain text, one line per pixel row
// with '#' for lit and '.' for unlit pixels.
func WriteText(w io.Writer, fb *vm.Framebuffer) error {
	var sb strings.Builder
	sb.Grow(vm.DisplayHeight * (vm.DisplayWidth + 1))

	for y := range vm.DisplayHeight {
		for x := range vm.DisplayWidth {
			if fb.Pixel(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("writing display: %w", err)
	}
	return nil
}
