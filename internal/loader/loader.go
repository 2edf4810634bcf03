// Package loader handles ROM file loading operations.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/vm"
)

// Loader handles loading program images from disk.
type Loader struct {
	maxSize int
}

// New creates a new program loader that accepts images that fit into
// the program area of the virtual machine.
func New() *Loader {
	return &Loader{
		maxSize: vm.MaxProgramSize,
	}
}

// Load reads the raw program image of the given file. CHIP-8 programs have
// no header, the file content is copied verbatim into memory.
func (l *Loader) Load(fileName string) ([]byte, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", fileName, err)
	}
	defer func() { _ = file.Close() }()

	return l.LoadFromReader(file)
}

// LoadFromReader reads a raw program image from the reader.
func (l *Loader) LoadFromReader(reader io.Reader) ([]byte, error) {
	// read one byte more than allowed to detect oversized images
	data, err := io.ReadAll(io.LimitReader(reader, int64(l.maxSize)+1))
	if err != nil {
		return nil, fmt.Errorf("reading program: %w", err)
	}
	if len(data) > l.maxSize {
		return nil, fmt.Errorf("%w: image exceeds %d bytes", vm.ErrProgramTooLarge, l.maxSize)
	}
	return data, nil
}
