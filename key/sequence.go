package key

import "strings"

// Sequence is an ordered list of key patterns. A binding pattern such
// as "ctrl-b n" parses to a two-element sequence.
type Sequence []Spec

// String returns the canonical key specification for the sequence,
// one spec per step joined by single spaces.
func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, spec := range s {
		parts[i] = spec.String()
	}
	return strings.Join(parts, " ")
}

// Equal returns true if both sequences have the same length and equal
// specs at every position.
func (s Sequence) Equal(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// HasPrefix returns true if the sequence begins with the given prefix.
func (s Sequence) HasPrefix(prefix Sequence) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i := range prefix {
		if s[i] != prefix[i] {
			return false
		}
	}
	return true
}

// Normalize returns a new sequence with every spec normalized.
func (s Sequence) Normalize() Sequence {
	out := make(Sequence, len(s))
	for i, spec := range s {
		out[i] = spec.Normalize()
	}
	return out
}

// Clone returns a copy of the sequence.
func (s Sequence) Clone() Sequence {
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}
