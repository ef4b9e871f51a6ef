package core

import (
	"fmt"
	"strings"
	"unicode"
)

// KeyCode represents non-character keys
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyEscape
	KeySpace

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Function keys
	KeyF1  // Narrate the rune under the cursor (debug mode)
	KeyF12 // Toggle debug mode
)

// KeyModifiers represents modifier keys held during a keystroke
type KeyModifiers uint8

const (
	ModCtrl KeyModifiers = 1 << iota
	ModAlt
	ModShift
)

const ModNone KeyModifiers = 0

// KeyEvent represents a keyboard input event
type KeyEvent struct {
	Rune      rune
	Key       KeyCode
	Modifiers KeyModifiers
}

// Printable reports whether the event should be inserted as text.
func (k KeyEvent) Printable() bool {
	if k.Rune == 0 || k.Modifiers&(ModCtrl|ModAlt) != 0 {
		return false
	}
	return k.Rune == '\t' || !unicode.IsControl(k.Rune)
}

var keyNames = map[KeyCode]string{
	KeyUnknown:   "Unknown",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyEscape:    "Escape",
	KeySpace:     "Space",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyF1:        "F1",
	KeyF12:       "F12",
}

// String renders the event as modifiers and key joined by '+', e.g. "Ctrl+a".
func (k KeyEvent) String() string {
	var parts []string
	for _, mod := range []struct {
		flag KeyModifiers
		name string
	}{{ModCtrl, "Ctrl"}, {ModAlt, "Alt"}, {ModShift, "Shift"}} {
		if k.Modifiers&mod.flag != 0 {
			parts = append(parts, mod.name)
		}
	}

	switch name, ok := keyNames[k.Key]; {
	case k.Rune != 0:
		parts = append(parts, string(k.Rune))
	case ok:
		parts = append(parts, name)
	default:
		parts = append(parts, fmt.Sprintf("Key(%d)", k.Key))
	}

	return strings.Join(parts, "+")
}
