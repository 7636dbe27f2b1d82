// Package tcellkey converts between tcell key events and keybind key
// specs.
//
// Terminals fold some combinations into one byte: ctrl-m is enter,
// ctrl-i is tab, and ctrl-[ is escape. Conversion resolves those to
// the named key, so bindings should use "enter" rather than "ctrl-m".
package tcellkey

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dkeyes/keybind/key"
)

// ErrUnsupportedKey indicates a key event or spec with no counterpart
// on the other side of the conversion.
var ErrUnsupportedKey = errors.New("unsupported key")

// ToSpec converts a tcell key event to a normalized key spec.
func ToSpec(ev *tcell.EventKey) (key.Spec, error) {
	if ev.Modifiers()&tcell.ModMeta != 0 {
		return key.Spec{}, fmt.Errorf("%w: %s", ErrUnsupportedKey, ev.Name())
	}
	mods := convertMods(ev.Modifiers())

	if ev.Key() == tcell.KeyRune {
		return key.NewRune(ev.Rune(), mods).Normalize(), nil
	}
	if k, ok := namedKey(ev.Key()); ok {
		return key.NewKey(k, mods), nil
	}

	// Ctrl-letter combinations arrive as dedicated key codes. Enter,
	// tab, and backspace are aliases inside this range and were
	// already taken by namedKey.
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := rune('a' + (k - tcell.KeyCtrlA))
		return key.NewRune(r, mods.With(key.ModCtrl)), nil
	}

	switch ev.Key() {
	case tcell.KeyCtrlSpace:
		return key.NewKey(key.KeySpace, mods.With(key.ModCtrl)), nil
	case tcell.KeyCtrlBackslash:
		return key.NewRune('\\', mods.With(key.ModCtrl)), nil
	case tcell.KeyCtrlRightSq:
		return key.NewRune(']', mods.With(key.ModCtrl)), nil
	case tcell.KeyCtrlCarat:
		return key.NewRune('^', mods.With(key.ModCtrl)), nil
	case tcell.KeyCtrlUnderscore:
		return key.NewRune('_', mods.With(key.ModCtrl)), nil
	}

	return key.Spec{}, fmt.Errorf("%w: %s", ErrUnsupportedKey, ev.Name())
}

// FromSpec converts a concrete key spec to a tcell key event. Group
// patterns have no concrete event and are rejected.
func FromSpec(spec key.Spec) (*tcell.EventKey, error) {
	spec = spec.Normalize()
	if spec.IsGroup() {
		return nil, fmt.Errorf("%w: group pattern %s", ErrUnsupportedKey, spec)
	}

	if spec.IsRune() {
		r := spec.Rune
		if spec.Mods.HasCtrl() && r >= 'a' && r <= 'z' {
			k := tcell.KeyCtrlA + tcell.Key(r-'a')
			return tcell.NewEventKey(k, rune(r-'a'+1), convertToMask(spec.Mods)), nil
		}
		if spec.Mods.HasShift() && r >= 'a' && r <= 'z' {
			// Terminals report a typed uppercase letter as the
			// uppercase rune without a shift flag.
			return tcell.NewEventKey(tcell.KeyRune, r-('a'-'A'), convertToMask(spec.Mods.Without(key.ModShift))), nil
		}
		return tcell.NewEventKey(tcell.KeyRune, r, convertToMask(spec.Mods)), nil
	}

	if spec.Key == key.KeySpace {
		if spec.Mods.HasCtrl() {
			return tcell.NewEventKey(tcell.KeyCtrlSpace, 0, convertToMask(spec.Mods)), nil
		}
		return tcell.NewEventKey(tcell.KeyRune, ' ', convertToMask(spec.Mods)), nil
	}
	if k, ok := tcellKey(spec.Key); ok {
		return tcell.NewEventKey(k, 0, convertToMask(spec.Mods)), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedKey, spec)
}

// namedKey maps tcell named keys to keybind keys.
func namedKey(k tcell.Key) (key.Key, bool) {
	switch k {
	case tcell.KeyEnter:
		return key.KeyEnter, true
	case tcell.KeyEscape:
		return key.KeyEsc, true
	case tcell.KeyTab:
		return key.KeyTab, true
	case tcell.KeyBacktab:
		return key.KeyBackTab, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.KeyBackspace, true
	case tcell.KeyDelete:
		return key.KeyDelete, true
	case tcell.KeyInsert:
		return key.KeyInsert, true
	case tcell.KeyHome:
		return key.KeyHome, true
	case tcell.KeyEnd:
		return key.KeyEnd, true
	case tcell.KeyPgUp:
		return key.KeyPageUp, true
	case tcell.KeyPgDn:
		return key.KeyPageDown, true
	case tcell.KeyUp:
		return key.KeyUp, true
	case tcell.KeyDown:
		return key.KeyDown, true
	case tcell.KeyLeft:
		return key.KeyLeft, true
	case tcell.KeyRight:
		return key.KeyRight, true
	case tcell.KeyF1:
		return key.KeyF1, true
	case tcell.KeyF2:
		return key.KeyF2, true
	case tcell.KeyF3:
		return key.KeyF3, true
	case tcell.KeyF4:
		return key.KeyF4, true
	case tcell.KeyF5:
		return key.KeyF5, true
	case tcell.KeyF6:
		return key.KeyF6, true
	case tcell.KeyF7:
		return key.KeyF7, true
	case tcell.KeyF8:
		return key.KeyF8, true
	case tcell.KeyF9:
		return key.KeyF9, true
	case tcell.KeyF10:
		return key.KeyF10, true
	case tcell.KeyF11:
		return key.KeyF11, true
	case tcell.KeyF12:
		return key.KeyF12, true
	}
	return key.KeyNone, false
}

// tcellKey maps keybind named keys to tcell keys. Backspace maps to
// KeyBackspace2, the DEL byte that most terminals send.
func tcellKey(k key.Key) (tcell.Key, bool) {
	switch k {
	case key.KeyEnter:
		return tcell.KeyEnter, true
	case key.KeyEsc:
		return tcell.KeyEscape, true
	case key.KeyTab:
		return tcell.KeyTab, true
	case key.KeyBackTab:
		return tcell.KeyBacktab, true
	case key.KeyBackspace:
		return tcell.KeyBackspace2, true
	case key.KeyDelete:
		return tcell.KeyDelete, true
	case key.KeyInsert:
		return tcell.KeyInsert, true
	case key.KeyHome:
		return tcell.KeyHome, true
	case key.KeyEnd:
		return tcell.KeyEnd, true
	case key.KeyPageUp:
		return tcell.KeyPgUp, true
	case key.KeyPageDown:
		return tcell.KeyPgDn, true
	case key.KeyUp:
		return tcell.KeyUp, true
	case key.KeyDown:
		return tcell.KeyDown, true
	case key.KeyLeft:
		return tcell.KeyLeft, true
	case key.KeyRight:
		return tcell.KeyRight, true
	}
	if k.IsFunctionKey() {
		return tcell.KeyF1 + tcell.Key(k-key.KeyF1), true
	}
	return 0, false
}

func convertMods(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	return mods
}

func convertToMask(mods key.Modifier) tcell.ModMask {
	var m tcell.ModMask
	if mods.HasShift() {
		m |= tcell.ModShift
	}
	if mods.HasCtrl() {
		m |= tcell.ModCtrl
	}
	if mods.HasAlt() {
		m |= tcell.ModAlt
	}
	return m
}
