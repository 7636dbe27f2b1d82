package keybind

import (
	"slices"

	"github.com/dkeyes/keybind/key"
)

// Match is a successful lookup result. Capture holds the concrete
// character consumed by a group pattern, or 0 when the matched pattern
// captured nothing.
type Match struct {
	Action  string
	Capture rune
}

// Table is an immutable mapping from actions to key sequence patterns
// with a reverse index for lookups. A constructed Table never changes;
// reloading configuration builds a new Table. It is safe for
// concurrent readers without synchronization.
type Table struct {
	bindings map[string]Binding
	order    []string
	root     *node
}

// node is one step of the reverse index. Literal edges (characters and
// named keys) are consulted before group edges, so the most specific
// pattern wins.
type node struct {
	literal map[key.Spec]*node
	groups  []groupEdge
	action  string
	pattern key.Sequence
	bound   bool
}

type groupEdge struct {
	spec key.Spec
	next *node
}

func newNode() *node {
	return &node{literal: make(map[key.Spec]*node)}
}

// New builds a Table from a list of bindings. Patterns are normalized
// before registration. Construction fails if a binding has no
// patterns, an action appears twice, or two actions claim the same
// normalized pattern.
func New(bindings []Binding) (*Table, error) {
	t := &Table{
		bindings: make(map[string]Binding, len(bindings)),
		root:     newNode(),
	}
	for _, b := range bindings {
		if err := t.add(b); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Table) add(b Binding) error {
	if _, ok := t.bindings[b.Action]; ok {
		return &BindError{Action: b.Action, Err: ErrDuplicateAction}
	}
	if len(b.Patterns) == 0 {
		return &BindError{Action: b.Action, Err: ErrNoPatterns}
	}
	reg := Binding{Action: b.Action, Description: b.Description}
	for _, p := range b.Patterns {
		if len(p) == 0 {
			return &BindError{Action: b.Action, Err: ErrEmptyPattern}
		}
		norm := p.Normalize()
		if containsSequence(reg.Patterns, norm) {
			continue
		}
		if err := t.insert(b.Action, norm); err != nil {
			return err
		}
		reg.Patterns = append(reg.Patterns, norm)
	}
	t.bindings[b.Action] = reg
	t.order = append(t.order, b.Action)
	return nil
}

func (t *Table) insert(action string, seq key.Sequence) error {
	n := t.root
	for _, spec := range seq {
		if spec.IsGroup() {
			var next *node
			for i := range n.groups {
				if n.groups[i].spec == spec {
					next = n.groups[i].next
					break
				}
			}
			if next == nil {
				next = newNode()
				n.groups = append(n.groups, groupEdge{spec: spec, next: next})
			}
			n = next
			continue
		}
		next, ok := n.literal[spec]
		if !ok {
			next = newNode()
			n.literal[spec] = next
		}
		n = next
	}
	if n.bound {
		return &DuplicatePatternError{Pattern: n.pattern.String(), ActionA: n.action, ActionB: action}
	}
	n.bound = true
	n.action = action
	n.pattern = seq
	return nil
}

func containsSequence(list []key.Sequence, seq key.Sequence) bool {
	for _, s := range list {
		if s.Equal(seq) {
			return true
		}
	}
	return false
}

// Lookup resolves a single key to its action.
func (t *Table) Lookup(spec key.Spec) (string, bool) {
	m, ok := t.LookupSequenceBound(key.Sequence{spec})
	return m.Action, ok
}

// LookupBound resolves a single key to its action together with any
// group capture.
func (t *Table) LookupBound(spec key.Spec) (Match, bool) {
	return t.LookupSequenceBound(key.Sequence{spec})
}

// LookupSequence resolves a key sequence to its action.
func (t *Table) LookupSequence(seq key.Sequence) (string, bool) {
	m, ok := t.LookupSequenceBound(seq)
	return m.Action, ok
}

// LookupSequenceBound resolves a key sequence to its action together
// with any group capture. Literal patterns take precedence over group
// patterns, and specific groups over @any.
func (t *Table) LookupSequenceBound(seq key.Sequence) (Match, bool) {
	if len(seq) == 0 {
		return Match{}, false
	}
	term, capture, _ := t.search(t.root, seq.Normalize(), 0, false)
	if term == nil {
		return Match{}, false
	}
	return Match{Action: term.action, Capture: capture}, true
}

// lookupLiteral resolves a normalized sequence using literal edges
// only. Used by the matcher to let exact patterns win before prefix
// and group resolution.
func (t *Table) lookupLiteral(seq key.Sequence) (string, bool) {
	n := t.root
	for _, spec := range seq {
		next, ok := n.literal[spec]
		if !ok {
			return "", false
		}
		n = next
	}
	if !n.bound {
		return "", false
	}
	return n.action, true
}

// HasPrefix reports whether the sequence is a strict prefix of at
// least one registered pattern, so that more keys could extend it to a
// match.
func (t *Table) HasPrefix(seq key.Sequence) bool {
	return hasPrefix(t.root, seq.Normalize())
}

func hasPrefix(n *node, seq key.Sequence) bool {
	if len(seq) == 0 {
		return len(n.literal) > 0 || len(n.groups) > 0
	}
	in := seq[0]
	if next, ok := n.literal[in]; ok {
		if hasPrefix(next, seq[1:]) {
			return true
		}
	}
	for _, e := range n.groups {
		if _, _, ok := groupMatch(e.spec, in); ok {
			if hasPrefix(e.next, seq[1:]) {
				return true
			}
		}
	}
	return false
}

// search walks the reverse index depth-first. At each step literal
// edges are tried first, then group edges with specific groups before
// @any. The first group-consumed character becomes the capture.
func (t *Table) search(n *node, seq key.Sequence, capture rune, captured bool) (*node, rune, bool) {
	if len(seq) == 0 {
		if n.bound {
			return n, capture, captured
		}
		return nil, 0, false
	}
	in := seq[0]
	if next, ok := n.literal[in]; ok {
		if term, c, h := t.search(next, seq[1:], capture, captured); term != nil {
			return term, c, h
		}
	}
	for pass := 0; pass < 2; pass++ {
		for _, e := range n.groups {
			if (e.spec.Group == key.GroupAny) != (pass == 1) {
				continue
			}
			c, has, ok := groupMatch(e.spec, in)
			if !ok {
				continue
			}
			nc, nh := capture, captured
			if has && !captured {
				nc, nh = c, true
			}
			if term, cc, hh := t.search(e.next, seq[1:], nc, nh); term != nil {
				return term, cc, hh
			}
		}
	}
	return nil, 0, false
}

// groupMatch reports whether a group pattern edge accepts a concrete
// input spec, and the character captured if so.
func groupMatch(pat, in key.Spec) (capture rune, captured, ok bool) {
	switch {
	case in.IsGroup():
		// Pattern-shaped input, e.g. resolving "@any" itself:
		// identical group edges only.
		return 0, false, pat.Group == in.Group && pat.Mods == in.Mods
	case in.IsRune():
		r := in.Rune
		if in.Mods.HasShift() && r >= 'a' && r <= 'z' {
			if !pat.Mods.HasShift() {
				// Shift is consumed reconstructing the typed
				// uppercase character, so "@upper" matches a typed G.
				if pat.Mods == in.Mods.Without(key.ModShift) {
					upper := r - ('a' - 'A')
					if pat.Group.Matches(upper) {
						return upper, true, true
					}
				}
				return 0, false, false
			}
			if pat.Mods == in.Mods {
				// With shift on both sides the concrete character
				// is the uppercase form, so "shift-@upper" matches
				// a typed B and captures 'B'.
				upper := r - ('a' - 'A')
				if pat.Group.Matches(upper) {
					return upper, true, true
				}
			}
			return 0, false, false
		}
		if pat.Mods == in.Mods && pat.Group.Matches(r) {
			return r, true, true
		}
		return 0, false, false
	default:
		// Named keys satisfy only @any and capture nothing.
		return 0, false, pat.Group == key.GroupAny && pat.Mods == in.Mods
	}
}

// Get returns the binding registered for an action.
func (t *Table) Get(action string) (Binding, bool) {
	b, ok := t.bindings[action]
	if !ok {
		return Binding{}, false
	}
	return b.Clone(), true
}

// Actions returns the registered action names in registration order.
func (t *Table) Actions() []string {
	return slices.Clone(t.order)
}

// Bindings returns copies of all registered bindings in registration
// order.
func (t *Table) Bindings() []Binding {
	out := make([]Binding, 0, len(t.order))
	for _, a := range t.order {
		out = append(out, t.bindings[a].Clone())
	}
	return out
}

// Len returns the number of registered actions.
func (t *Table) Len() int {
	return len(t.bindings)
}
