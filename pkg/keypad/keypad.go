// Package keypad maps a QWERTY keyboard onto the 16 key CHIP-8 keypad.
//
// Below we have a mapping QWERTY keyboard to the CHIP-8 keypad
// +--------+--------+--------+--------+
// | 1 -> 1 | 2 -> 2 | 3 -> 3 | 4 -> C |
// +--------+--------+--------+--------+
// | Q -> 4 | W -> 5 | E -> 6 | R -> D |
// +--------+--------+--------+--------+
// | A -> 7 | S -> 8 | D -> 9 | F -> E |
// +--------+--------+--------+--------+
// | Z -> A | X -> 0 | C -> B | V -> F |
// +--------+--------+--------+--------+
package keypad

import "strings"

// NumKeys is the number of keys on the CHIP-8 keypad.
const NumKeys = 16

// Layout holds the name of the QWERTY key for every CHIP-8 key, indexed by
// the CHIP-8 key value.
var Layout = [NumKeys]string{
	0x0: "X",
	0x1: "1", 0x2: "2", 0x3: "3", 0xC: "4",
	0x4: "Q", 0x5: "W", 0x6: "E", 0xD: "R",
	0x7: "A", 0x8: "S", 0x9: "D", 0xE: "F",
	0xA: "Z", 0xB: "C", 0xF: "V",
}

// digitPrefix is put in front of number keys by some keyboard libraries.
const digitPrefix = "Digit"

// Key returns the CHIP-8 key for a QWERTY key name. Names are matched case
// insensitively, number keys may be named "Digit1" as well as "1".
func Key(name string) (uint8, bool) {
	if len(name) > len(digitPrefix) && strings.EqualFold(name[:len(digitPrefix)], digitPrefix) {
		name = name[len(digitPrefix):]
	}
	for i, n := range Layout {
		if strings.EqualFold(n, name) {
			return uint8(i), true
		}
	}
	return 0, false
}
