package entity

import (
	"fmt"
	"sort"
	"strings"
)

// Android key codes referenced by trigger rules.
const (
	KeyCodeUnknown        = 0
	KeyCodeHeadsetHook    = 79
	KeyCodeVolumeUp       = 24
	KeyCodeVolumeDown     = 25
	KeyCodeAltLeft        = 57
	KeyCodeAltRight       = 58
	KeyCodeShiftLeft      = 59
	KeyCodeShiftRight     = 60
	KeyCodeSym            = 63
	KeyCodeCtrlLeft       = 113
	KeyCodeCtrlRight      = 114
	KeyCodeMetaLeft       = 117
	KeyCodeMetaRight      = 118
	KeyCodeFunction       = 119
	KeyCodeMediaPlayPause = 85
	KeyCodeVolumeMute     = 164
)

var keyCodeNames = map[int]string{
	3:   "KEYCODE_HOME",
	4:   "KEYCODE_BACK",
	5:   "KEYCODE_CALL",
	6:   "KEYCODE_ENDCALL",
	7:   "KEYCODE_0",
	8:   "KEYCODE_1",
	9:   "KEYCODE_2",
	10:  "KEYCODE_3",
	11:  "KEYCODE_4",
	12:  "KEYCODE_5",
	13:  "KEYCODE_6",
	14:  "KEYCODE_7",
	15:  "KEYCODE_8",
	16:  "KEYCODE_9",
	17:  "KEYCODE_STAR",
	18:  "KEYCODE_POUND",
	19:  "KEYCODE_DPAD_UP",
	20:  "KEYCODE_DPAD_DOWN",
	21:  "KEYCODE_DPAD_LEFT",
	22:  "KEYCODE_DPAD_RIGHT",
	23:  "KEYCODE_DPAD_CENTER",
	24:  "KEYCODE_VOLUME_UP",
	25:  "KEYCODE_VOLUME_DOWN",
	26:  "KEYCODE_POWER",
	27:  "KEYCODE_CAMERA",
	29:  "KEYCODE_A",
	30:  "KEYCODE_B",
	31:  "KEYCODE_C",
	32:  "KEYCODE_D",
	33:  "KEYCODE_E",
	34:  "KEYCODE_F",
	35:  "KEYCODE_G",
	36:  "KEYCODE_H",
	37:  "KEYCODE_I",
	38:  "KEYCODE_J",
	39:  "KEYCODE_K",
	40:  "KEYCODE_L",
	41:  "KEYCODE_M",
	42:  "KEYCODE_N",
	43:  "KEYCODE_O",
	44:  "KEYCODE_P",
	45:  "KEYCODE_Q",
	46:  "KEYCODE_R",
	47:  "KEYCODE_S",
	48:  "KEYCODE_T",
	49:  "KEYCODE_U",
	50:  "KEYCODE_V",
	51:  "KEYCODE_W",
	52:  "KEYCODE_X",
	53:  "KEYCODE_Y",
	54:  "KEYCODE_Z",
	55:  "KEYCODE_COMMA",
	56:  "KEYCODE_PERIOD",
	57:  "KEYCODE_ALT_LEFT",
	58:  "KEYCODE_ALT_RIGHT",
	59:  "KEYCODE_SHIFT_LEFT",
	60:  "KEYCODE_SHIFT_RIGHT",
	61:  "KEYCODE_TAB",
	62:  "KEYCODE_SPACE",
	63:  "KEYCODE_SYM",
	66:  "KEYCODE_ENTER",
	67:  "KEYCODE_DEL",
	79:  "KEYCODE_HEADSETHOOK",
	82:  "KEYCODE_MENU",
	84:  "KEYCODE_SEARCH",
	85:  "KEYCODE_MEDIA_PLAY_PAUSE",
	86:  "KEYCODE_MEDIA_STOP",
	87:  "KEYCODE_MEDIA_NEXT",
	88:  "KEYCODE_MEDIA_PREVIOUS",
	89:  "KEYCODE_MEDIA_REWIND",
	90:  "KEYCODE_MEDIA_FAST_FORWARD",
	91:  "KEYCODE_MUTE",
	92:  "KEYCODE_PAGE_UP",
	93:  "KEYCODE_PAGE_DOWN",
	111: "KEYCODE_ESCAPE",
	112: "KEYCODE_FORWARD_DEL",
	113: "KEYCODE_CTRL_LEFT",
	114: "KEYCODE_CTRL_RIGHT",
	115: "KEYCODE_CAPS_LOCK",
	117: "KEYCODE_META_LEFT",
	118: "KEYCODE_META_RIGHT",
	119: "KEYCODE_FUNCTION",
	122: "KEYCODE_MOVE_HOME",
	123: "KEYCODE_MOVE_END",
	126: "KEYCODE_MEDIA_PLAY",
	127: "KEYCODE_MEDIA_PAUSE",
	164: "KEYCODE_VOLUME_MUTE",
	187: "KEYCODE_APP_SWITCH",
	219: "KEYCODE_ASSIST",
	220: "KEYCODE_BRIGHTNESS_DOWN",
	221: "KEYCODE_BRIGHTNESS_UP",
	231: "KEYCODE_VOICE_ASSIST",
}

var modifierKeyCodes = map[int]struct{}{
	KeyCodeAltLeft:    {},
	KeyCodeAltRight:   {},
	KeyCodeShiftLeft:  {},
	KeyCodeShiftRight: {},
	KeyCodeSym:        {},
	KeyCodeCtrlLeft:   {},
	KeyCodeCtrlRight:  {},
	KeyCodeMetaLeft:   {},
	KeyCodeMetaRight:  {},
	KeyCodeFunction:   {},
}

// KeyCodeToString returns the Android name of a key code.
func KeyCodeToString(keyCode int) string {
	if name, ok := keyCodeNames[keyCode]; ok {
		return name
	}
	return fmt.Sprintf("unknown keycode %d", keyCode)
}

// ParseKeyCode accepts a key code name with or without the KEYCODE_ prefix, or a number.
func ParseKeyCode(s string) (int, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err == nil && fmt.Sprint(n) == s {
		return n, n > KeyCodeUnknown
	}
	if !strings.HasPrefix(s, "KEYCODE_") {
		s = "KEYCODE_" + s
	}
	for code, name := range keyCodeNames {
		if name == s {
			return code, true
		}
	}
	return 0, false
}

// KnownKeyCodes returns every named key code in ascending order.
func KnownKeyCodes() []int {
	codes := make([]int, 0, len(keyCodeNames))
	for code := range keyCodeNames {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	return codes
}

// IsModifierKeyCode reports whether keyCode is a modifier such as shift or ctrl.
func IsModifierKeyCode(keyCode int) bool {
	_, ok := modifierKeyCodes[keyCode]
	return ok
}

// IsVolumeKeyCode reports whether keyCode is volume up or down.
func IsVolumeKeyCode(keyCode int) bool {
	return keyCode == KeyCodeVolumeUp || keyCode == KeyCodeVolumeDown
}

// IsHeadsetKeyCode reports whether keyCode is sent by wired headset buttons.
func IsHeadsetKeyCode(keyCode int) bool {
	return keyCode == KeyCodeHeadsetHook || keyCode == KeyCodeMediaPlayPause
}
