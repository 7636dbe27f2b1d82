package keybind

import (
	"maps"
	"slices"

	"github.com/dkeyes/keybind/key"
)

// Item is one action's binding as it appears in a configuration
// source: pattern texts plus an optional description. It is the
// decode target for TOML, YAML, and JSON bindings files, keyed by
// action name.
type Item struct {
	Keys        []string `json:"keys" toml:"keys" yaml:"keys"`
	Description string   `json:"description,omitempty" toml:"description,omitempty" yaml:"description,omitempty"`
}

// FromItems parses and registers a full binding set. Actions are
// registered in sorted order so errors are deterministic. Pattern
// parse failures are reported as *BindError wrapping the *ParseError.
func FromItems(items map[string]Item) (*Table, error) {
	actions := make([]string, 0, len(items))
	for action := range items {
		actions = append(actions, action)
	}
	slices.Sort(actions)
	bindings := make([]Binding, 0, len(items))
	for _, action := range actions {
		item := items[action]
		b := Binding{Action: action, Description: item.Description}
		for _, text := range item.Keys {
			seq, err := key.ParseSequence(text)
			if err != nil {
				return nil, &BindError{Action: action, Pattern: text, Err: err}
			}
			b.Patterns = append(b.Patterns, seq)
		}
		bindings = append(bindings, b)
	}
	return New(bindings)
}

// Merge combines a derived binding set (defaults) with a file binding
// set (user overrides, possibly nil) into one Table. An action present
// in both keeps only the file version: the file's patterns and
// description fully replace the derived ones, never a union. The
// merged set is then validated as a whole, so a file binding that
// claims a pattern still held by a different derived action fails with
// *DuplicatePatternError.
func Merge(derived, file map[string]Item) (*Table, error) {
	merged := make(map[string]Item, len(derived)+len(file))
	maps.Copy(merged, derived)
	maps.Copy(merged, file)
	return FromItems(merged)
}
