package key

import (
	"fmt"
	"strings"
)

// Key identifies a named (non-character) keyboard key.
// Character keys use KeyRune with the rune stored in Spec.Rune;
// group patterns use KeyGroup with the class stored in Spec.Group.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Editing and control keys
	KeyBackspace
	KeyEnter
	KeyEsc
	KeyTab
	KeyBackTab
	KeySpace
	KeyDelete
	KeyInsert

	// Navigation keys
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// KeyRune marks a character key. The character is stored in Spec.Rune.
	KeyRune

	// KeyGroup marks a group pattern. The class is stored in Spec.Group.
	KeyGroup
)

// String returns the canonical key specification keyword for the key.
// The result parses back to the same key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyBackspace:
		return "backspace"
	case KeyEnter:
		return "enter"
	case KeyEsc:
		return "esc"
	case KeyTab:
		return "tab"
	case KeyBackTab:
		return "backtab"
	case KeySpace:
		return "space"
	case KeyDelete:
		return "delete"
	case KeyInsert:
		return "insert"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case KeyPageUp:
		return "pageup"
	case KeyPageDown:
		return "pagedown"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyRune:
		return "rune"
	case KeyGroup:
		return "group"
	default:
		if k.IsFunctionKey() {
			return fmt.Sprintf("f%d", int(k-KeyF1)+1)
		}
		return fmt.Sprintf("key(%d)", k)
	}
}

// IsFunctionKey returns true if this is a function key (F1-F12).
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF12
}

// IsNavigationKey returns true if this is a navigation key.
func (k Key) IsNavigationKey() bool {
	return k >= KeyHome && k <= KeyRight
}

// FunctionKey returns the Key for function key n (1-12).
// Returns KeyNone if n is out of range.
func FunctionKey(n int) Key {
	if n < 1 || n > 12 {
		return KeyNone
	}
	return KeyF1 + Key(n-1)
}

// keyNameMap maps key name keywords (lowercase) to Key values.
var keyNameMap = map[string]Key{
	"backspace": KeyBackspace,
	"bs":        KeyBackspace,
	"enter":     KeyEnter,
	"return":    KeyEnter,
	"esc":       KeyEsc,
	"escape":    KeyEsc,
	"tab":       KeyTab,
	"backtab":   KeyBackTab,
	"space":     KeySpace,
	"delete":    KeyDelete,
	"del":       KeyDelete,
	"insert":    KeyInsert,
	"ins":       KeyInsert,
	"home":      KeyHome,
	"end":       KeyEnd,
	"pageup":    KeyPageUp,
	"pgup":      KeyPageUp,
	"pagedown":  KeyPageDown,
	"pgdn":      KeyPageDown,
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
	"f1":        KeyF1,
	"f2":        KeyF2,
	"f3":        KeyF3,
	"f4":        KeyF4,
	"f5":        KeyF5,
	"f6":        KeyF6,
	"f7":        KeyF7,
	"f8":        KeyF8,
	"f9":        KeyF9,
	"f10":       KeyF10,
	"f11":       KeyF11,
	"f12":       KeyF12,
}

// KeyFromName returns the Key for a given keyword (case-insensitive).
// Returns KeyNone if the name is not recognized.
func KeyFromName(name string) Key {
	if k, ok := keyNameMap[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k
	}
	return KeyNone
}
