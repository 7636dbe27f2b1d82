package keybind

import "github.com/dkeyes/keybind/key"

// Binding associates an action with one or more key sequence patterns.
type Binding struct {
	// Action identifies the application action.
	Action string
	// Patterns holds the alternative sequences that trigger the
	// action. A binding needs at least one.
	Patterns []key.Sequence
	// Description is optional help text.
	Description string
}

// Clone returns a deep copy of the binding.
func (b Binding) Clone() Binding {
	out := b
	out.Patterns = make([]key.Sequence, len(b.Patterns))
	for i, p := range b.Patterns {
		out.Patterns[i] = p.Clone()
	}
	return out
}
