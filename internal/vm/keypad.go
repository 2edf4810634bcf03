package vm

// Keypad holds the pressed state of the 16 hexadecimal keys 0-F.
type Keypad [KeyCount]bool

// firstPressed returns the lowest pressed key.
func (k *Keypad) firstPressed() (byte, bool) {
	for key, pressed := range k {
		if pressed {
			return byte(key), true
		}
	}
	return 0, false
}
