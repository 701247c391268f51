package vm

// KeyCount is the number of keys of the hexadecimal keypad.
const KeyCount = 16

// Keypad holds the pressed state of the keys 0-F.
//
// The COSMAC VIP keypad layout:
//
//	+---+---+---+---+
//	| 1 | 2 | 3 | C |
//	+---+---+---+---+
//	| 4 | 5 | 6 | D |
//	+---+---+---+---+
//	| 7 | 8 | 9 | E |
//	+---+---+---+---+
//	| A | 0 | B | F |
//	+---+---+---+---+
type Keypad [KeyCount]bool

// firstPressed returns the lowest pressed key.
func (k *Keypad) firstPressed() (uint8, bool) {
	for key, pressed := range k {
		if pressed {
			return uint8(key), true
		}
	}
	return 0, false
}
