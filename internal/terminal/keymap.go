package terminal

import (
	"time"

	"github.com/retroenv/retrochip8/internal/vm"
)

// Control bytes that end the emulation. Ctrl+C arrives as a byte because
// raw mode disables signal generation.
const (
	keyEscape = 0x1B
	keyCtrlC  = 0x03
)

// DefaultHoldDuration is how long a key counts as pressed after its last
// input byte. Terminals do not report key releases, keyboard auto repeat
// refreshes the press while a key is held down. It covers the usual auto
// repeat delay of 250-500ms so that held keys do not read as released
// before the first repeat arrives.
const DefaultHoldDuration = 500 * time.Millisecond

// keyMap translates the left hand side of a QWERTY keyboard to the
// hexadecimal keypad layout:
//
//	1 2 3 4      1 2 3 C
//	q w e r  ->  4 5 6 D
//	a s d f      7 8 9 E
//	z x c v      A 0 B F
var keyMap = map[byte]byte{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// TranslateKey returns the keypad key of an input byte. Upper case
// letters map to the same keys as lower case ones.
func TranslateKey(b byte) (byte, bool) {
	if b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}
	key, ok := keyMap[b]
	return key, ok
}

// IsQuit returns whether the input byte requests to end the emulation.
func IsQuit(b byte) bool {
	return b == keyEscape || b == keyCtrlC
}

// KeyTracker derives the keypad state from a stream of key presses.
type KeyTracker struct {
	hold    time.Duration
	pressed [vm.KeyCount]time.Time
}

// NewKeyTracker returns a tracker that holds every key for the given
// duration after its last press.
func NewKeyTracker(hold time.Duration) *KeyTracker {
	return &KeyTracker{
		hold: hold,
	}
}

// Press records a press of the keypad key at the given time.
func (k *KeyTracker) Press(key byte, now time.Time) {
	if int(key) >= vm.KeyCount {
		return
	}
	k.pressed[key] = now
}

// Keypad returns the keypad state at the given time.
func (k *KeyTracker) Keypad(now time.Time) vm.Keypad {
	var keypad vm.Keypad
	for key, at := range k.pressed {
		keypad[key] = !at.IsZero() && now.Sub(at) < k.hold
	}
	return keypad
}
