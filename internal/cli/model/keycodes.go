package model

import (
	"strings"
	"unicode"

	"github.com/keymapper-dev/keymapper/internal/domain/entity"
)

// terminalKeys maps bubbletea key names to Android key names. Terminals can't
// send volume keys, so + and - stand in for them.
var terminalKeys = map[string]string{
	"enter":     "ENTER",
	" ":         "SPACE",
	"space":     "SPACE",
	"backspace": "DEL",
	"delete":    "FORWARD_DEL",
	"tab":       "TAB",
	"up":        "DPAD_UP",
	"down":      "DPAD_DOWN",
	"left":      "DPAD_LEFT",
	"right":     "DPAD_RIGHT",
	"pgup":      "PAGE_UP",
	"pgdown":    "PAGE_DOWN",
	"home":      "MOVE_HOME",
	"end":       "MOVE_END",
	",":         "COMMA",
	".":         "PERIOD",
	"*":         "STAR",
	"#":         "POUND",
	"+":         "VOLUME_UP",
	"-":         "VOLUME_DOWN",
}

// TerminalKeyCode returns the Android key code for a terminal key press.
func TerminalKeyCode(name string) (int, bool) {
	if android, ok := terminalKeys[name]; ok {
		return entity.ParseKeyCode(android)
	}

	r := []rune(name)
	if len(r) != 1 || r[0] > unicode.MaxASCII {
		return 0, false
	}
	if !unicode.IsLetter(r[0]) && !unicode.IsDigit(r[0]) {
		return 0, false
	}
	// Digits would parse as raw key codes without the prefix.
	return entity.ParseKeyCode("KEYCODE_" + strings.ToUpper(name))
}
