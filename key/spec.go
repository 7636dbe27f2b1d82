package key

import "strings"

// Spec is a single key pattern: one atom (character, named key, or
// group) plus a modifier set. Spec is comparable and safe to use as a
// map key.
//
// Keyboard input is represented with the same type: an input key is a
// Spec whose atom is concrete (a character or named key, never a
// group).
type Spec struct {
	// Key identifies the atom kind. Named keys use their own Key
	// value; character atoms use KeyRune; group atoms use KeyGroup.
	Key Key
	// Rune holds the character when Key is KeyRune.
	Rune rune
	// Group holds the character class when Key is KeyGroup.
	Group Group
	// Mods holds the modifier set.
	Mods Modifier
}

// NewRune creates a character Spec.
func NewRune(r rune, mods Modifier) Spec {
	return Spec{Key: KeyRune, Rune: r, Mods: mods}
}

// NewKey creates a named key Spec.
func NewKey(k Key, mods Modifier) Spec {
	return Spec{Key: k, Mods: mods}
}

// NewGroup creates a group Spec.
func NewGroup(g Group, mods Modifier) Spec {
	return Spec{Key: KeyGroup, Group: g, Mods: mods}
}

// IsRune returns true if the atom is a character.
func (s Spec) IsRune() bool { return s.Key == KeyRune }

// IsGroup returns true if the atom is a group pattern.
func (s Spec) IsGroup() bool { return s.Key == KeyGroup }

// IsNamed returns true if the atom is a named key.
func (s Spec) IsNamed() bool { return s.Key != KeyRune && s.Key != KeyGroup && s.Key != KeyNone }

// Normalize returns the canonical form of the Spec. An uppercase
// letter becomes Shift plus the lowercase letter, and a literal space
// character becomes the space key. All patterns and input keys are
// normalized before matching, so the two forms compare equal.
func (s Spec) Normalize() Spec {
	if s.Key != KeyRune {
		return s
	}
	switch {
	case s.Rune >= 'A' && s.Rune <= 'Z':
		s.Rune += 'a' - 'A'
		s.Mods = s.Mods.With(ModShift)
	case s.Rune == ' ':
		s.Key = KeySpace
		s.Rune = 0
	}
	return s
}

// String returns the canonical key specification for the Spec.
// Modifiers appear in alt-ctrl-shift order. The result parses back to
// an equal Spec.
func (s Spec) String() string {
	var b strings.Builder
	if !s.Mods.IsEmpty() {
		b.WriteString(s.Mods.String())
		b.WriteByte('-')
	}
	switch {
	case s.IsRune():
		b.WriteRune(s.Rune)
	case s.IsGroup():
		b.WriteString(s.Group.String())
	default:
		b.WriteString(s.Key.String())
	}
	return b.String()
}
