// Package teakey converts bubbletea key messages to keybind key
// specs.
//
// Bubbletea reports alt through a flag on the message and folds
// ctrl-m, ctrl-i, and ctrl-[ into enter, tab, and escape the way
// terminals do; conversion resolves those to the named key.
package teakey

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkeyes/keybind/key"
)

// ErrUnsupportedKey indicates a key message with no spec counterpart.
var ErrUnsupportedKey = errors.New("unsupported key")

// ToSpec converts a bubbletea key message to a normalized key spec.
// Multi-rune messages (bracketed paste) are rejected.
func ToSpec(msg tea.KeyMsg) (key.Spec, error) {
	var mods key.Modifier
	if msg.Alt {
		mods = mods.With(key.ModAlt)
	}

	if msg.Type == tea.KeyRunes {
		if len(msg.Runes) != 1 {
			return key.Spec{}, fmt.Errorf("%w: %s", ErrUnsupportedKey, msg.String())
		}
		return key.NewRune(msg.Runes[0], mods).Normalize(), nil
	}

	if k, m, ok := namedKey(msg.Type); ok {
		return key.NewKey(k, mods.With(m)), nil
	}

	// Remaining ctrl-letter codes. Enter (ctrl-m), tab (ctrl-i), and
	// escape (ctrl-[) were already taken by namedKey.
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		r := rune('a' + (msg.Type - tea.KeyCtrlA))
		return key.NewRune(r, mods.With(key.ModCtrl)), nil
	}

	switch msg.Type {
	case tea.KeyCtrlAt:
		return key.NewKey(key.KeySpace, mods.With(key.ModCtrl)), nil
	case tea.KeyCtrlBackslash:
		return key.NewRune('\\', mods.With(key.ModCtrl)), nil
	case tea.KeyCtrlCloseBracket:
		return key.NewRune(']', mods.With(key.ModCtrl)), nil
	case tea.KeyCtrlCaret:
		return key.NewRune('^', mods.With(key.ModCtrl)), nil
	case tea.KeyCtrlUnderscore:
		return key.NewRune('_', mods.With(key.ModCtrl)), nil
	}

	return key.Spec{}, fmt.Errorf("%w: %s", ErrUnsupportedKey, msg.String())
}

// namedKey maps bubbletea key types to keybind keys, together with
// the modifiers baked into the type for the shifted and controlled
// variants.
func namedKey(t tea.KeyType) (key.Key, key.Modifier, bool) {
	switch t {
	case tea.KeyEnter:
		return key.KeyEnter, key.ModNone, true
	case tea.KeyEsc:
		return key.KeyEsc, key.ModNone, true
	case tea.KeyTab:
		return key.KeyTab, key.ModNone, true
	case tea.KeyShiftTab:
		return key.KeyBackTab, key.ModNone, true
	case tea.KeySpace:
		return key.KeySpace, key.ModNone, true
	case tea.KeyBackspace:
		return key.KeyBackspace, key.ModNone, true
	case tea.KeyDelete:
		return key.KeyDelete, key.ModNone, true
	case tea.KeyInsert:
		return key.KeyInsert, key.ModNone, true
	case tea.KeyHome:
		return key.KeyHome, key.ModNone, true
	case tea.KeyEnd:
		return key.KeyEnd, key.ModNone, true
	case tea.KeyPgUp:
		return key.KeyPageUp, key.ModNone, true
	case tea.KeyPgDown:
		return key.KeyPageDown, key.ModNone, true
	case tea.KeyUp:
		return key.KeyUp, key.ModNone, true
	case tea.KeyDown:
		return key.KeyDown, key.ModNone, true
	case tea.KeyLeft:
		return key.KeyLeft, key.ModNone, true
	case tea.KeyRight:
		return key.KeyRight, key.ModNone, true
	case tea.KeyShiftUp:
		return key.KeyUp, key.ModShift, true
	case tea.KeyShiftDown:
		return key.KeyDown, key.ModShift, true
	case tea.KeyShiftLeft:
		return key.KeyLeft, key.ModShift, true
	case tea.KeyShiftRight:
		return key.KeyRight, key.ModShift, true
	case tea.KeyShiftHome:
		return key.KeyHome, key.ModShift, true
	case tea.KeyShiftEnd:
		return key.KeyEnd, key.ModShift, true
	case tea.KeyCtrlUp:
		return key.KeyUp, key.ModCtrl, true
	case tea.KeyCtrlDown:
		return key.KeyDown, key.ModCtrl, true
	case tea.KeyCtrlLeft:
		return key.KeyLeft, key.ModCtrl, true
	case tea.KeyCtrlRight:
		return key.KeyRight, key.ModCtrl, true
	case tea.KeyCtrlHome:
		return key.KeyHome, key.ModCtrl, true
	case tea.KeyCtrlEnd:
		return key.KeyEnd, key.ModCtrl, true
	case tea.KeyCtrlPgUp:
		return key.KeyPageUp, key.ModCtrl, true
	case tea.KeyCtrlPgDown:
		return key.KeyPageDown, key.ModCtrl, true
	case tea.KeyCtrlShiftUp:
		return key.KeyUp, key.ModCtrl | key.ModShift, true
	case tea.KeyCtrlShiftDown:
		return key.KeyDown, key.ModCtrl | key.ModShift, true
	case tea.KeyCtrlShiftLeft:
		return key.KeyLeft, key.ModCtrl | key.ModShift, true
	case tea.KeyCtrlShiftRight:
		return key.KeyRight, key.ModCtrl | key.ModShift, true
	case tea.KeyCtrlShiftHome:
		return key.KeyHome, key.ModCtrl | key.ModShift, true
	case tea.KeyCtrlShiftEnd:
		return key.KeyEnd, key.ModCtrl | key.ModShift, true
	case tea.KeyF1:
		return key.KeyF1, key.ModNone, true
	case tea.KeyF2:
		return key.KeyF2, key.ModNone, true
	case tea.KeyF3:
		return key.KeyF3, key.ModNone, true
	case tea.KeyF4:
		return key.KeyF4, key.ModNone, true
	case tea.KeyF5:
		return key.KeyF5, key.ModNone, true
	case tea.KeyF6:
		return key.KeyF6, key.ModNone, true
	case tea.KeyF7:
		return key.KeyF7, key.ModNone, true
	case tea.KeyF8:
		return key.KeyF8, key.ModNone, true
	case tea.KeyF9:
		return key.KeyF9, key.ModNone, true
	case tea.KeyF10:
		return key.KeyF10, key.ModNone, true
	case tea.KeyF11:
		return key.KeyF11, key.ModNone, true
	case tea.KeyF12:
		return key.KeyF12, key.ModNone, true
	}
	return key.KeyNone, key.ModNone, false
}
