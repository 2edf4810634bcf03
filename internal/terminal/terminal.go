// Package terminal implements a text mode frontend for the emulator.
//
// The terminal is switched to raw mode so that single key presses are
// delivered without line buffering or echo. The display is drawn with
// unicode half block characters, two pixel rows per character cell.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/vm"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when the input is not an interactive terminal.
var ErrNotTerminal = errors.New("input is not a terminal")

// minimum terminal size in character cells to show the full display
const (
	minColumns = vm.DisplayWidth
	minRows    = vm.DisplayHeight / 2
)

// Terminal is an interactive terminal in raw mode.
type Terminal struct {
	fd    int
	out   io.Writer
	state *term.State
	keys  chan byte
}

// Open switches the input terminal to raw mode and starts reading key
// presses. Close must be called to restore the terminal.
func Open(in *os.File, out io.Writer) (*Terminal, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	columns, rows, err := term.GetSize(fd)
	if err != nil {
		return nil, fmt.Errorf("getting terminal size: %w", err)
	}
	if columns < minColumns || rows < minRows {
		return nil, fmt.Errorf("terminal size %dx%d is too small, at least %dx%d is required",
			columns, rows, minColumns, minRows)
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enabling raw mode: %w", err)
	}

	t := &Terminal{
		fd:    fd,
		out:   out,
		state: state,
		keys:  make(chan byte, 16),
	}
	go t.readKeys(in)

	if _, err := io.WriteString(out, hideCursor+clearScreen); err != nil {
		_ = t.Close()
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	return t, nil
}

// readKeys forwards input bytes until the input returns an error.
// The read blocks, so the goroutine only ends with the input.
func (t *Terminal) readKeys(in io.Reader) {
	defer close(t.keys)

	buf := make([]byte, 16)
	for {
		n, err := in.Read(buf)
		for _, b := range buf[:n] {
			t.keys <- b
		}
		if err != nil {
			return
		}
	}
}

// Keys returns the channel of input bytes. It is closed when the input
// ends.
func (t *Terminal) Keys() <-chan byte {
	return t.keys
}

// Render draws the framebuffer.
func (t *Terminal) Render(fb *vm.Framebuffer) error {
	return Render(t.out, fb)
}

// Close restores the terminal state.
func (t *Terminal) Close() error {
	_, _ = io.WriteString(t.out, showCursor+"\r\n")
	if err := term.Restore(t.fd, t.state); err != nil {
		return fmt.Errorf("restoring terminal: %w", err)
	}
	return nil
}
