package vm

import "fmt"

// Memory is the flat 4KB address space of the machine.
type Memory [MemorySize]byte

// checkRange verifies that the block [address, address+length) lies
// within memory.
func checkRange(address uint16, length int) error {
	if int(address)+length > MemorySize {
		return fmt.Errorf("%w: $%04X+%d", ErrAddressOutOfRange, address, length)
	}
	return nil
}

// ReadWord reads a big-endian 16-bit word.
func (m *Memory) ReadWord(address uint16) (uint16, error) {
	if err := checkRange(address, 2); err != nil {
		return 0, err
	}
	return uint16(m[address])<<8 | uint16(m[address+1]), nil
}

// Block returns a slice of length bytes starting at address that aliases
// the memory, so writes through it modify the memory.
func (m *Memory) Block(address uint16, length int) ([]byte, error) {
	if err := checkRange(address, length); err != nil {
		return nil, err
	}
	return m[address : int(address)+length], nil
}

// load copies data to the given address, it returns an error if the
// data does not fit.
func (m *Memory) load(address uint16, data []byte) error {
	block, err := m.Block(address, len(data))
	if err != nil {
		return err
	}
	copy(block, data)
	return nil
}
