package model

import "strings"

// Key names a key delivered to a viewer.
type Key string

// Keys the viewer knows by name. Any other key is passed through as typed.
const (
	KeyDelete    Key = "Delete"
	KeyBackspace Key = "Backspace"
	KeyEscape    Key = "Escape"
	KeyReturn    Key = "Return"
)

// Modifier is a bit set of held modifier keys.
type Modifier uint

// Modifier bits.
const (
	ModShift Modifier = 1 << iota
	ModControl
	ModAlt
)

// KeyEvent is a single key press.
type KeyEvent struct {
	Key       Key
	Modifiers Modifier
}

// IsPrune reports whether the event requests a prune.
func (e KeyEvent) IsPrune() bool {
	return e.Key == KeyDelete || e.Key == KeyBackspace
}

// ParseKey maps a key name such as "delete" or "Backspace" to a Key.
// Unknown names are returned as typed.
func ParseKey(name string) Key {
	switch strings.ToLower(name) {
	case "delete", "del":
		return KeyDelete
	case "backspace":
		return KeyBackspace
	case "esc", "escape":
		return KeyEscape
	case "enter", "return":
		return KeyReturn
	}

	return Key(name)
}

// ParseKeyEvent maps a key chord such as "ctrl+delete" or "Alt+Backspace" to a
// KeyEvent. Modifier prefixes are shift, ctrl or control, and alt, option or meta.
func ParseKeyEvent(chord string) KeyEvent {
	var event KeyEvent

	parts := strings.Split(chord, "+")
	for _, part := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "shift":
			event.Modifiers |= ModShift
		case "ctrl", "control":
			event.Modifiers |= ModControl
		case "alt", "option", "meta":
			event.Modifiers |= ModAlt
		default:
			return KeyEvent{Key: Key(chord)}
		}
	}

	event.Key = ParseKey(strings.TrimSpace(parts[len(parts)-1]))

	return event
}

// Has reports whether all bits of want are held.
func (m Modifier) Has(want Modifier) bool {
	return m&want == want
}
