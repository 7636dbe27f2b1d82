package key

import "testing"

func TestSpecNormalize(t *testing.T) {
	tests := []struct {
		in   Spec
		want Spec
	}{
		{NewRune('G', ModNone), NewRune('g', ModShift)},
		{NewRune('A', ModNone), NewRune('a', ModShift)},
		{NewRune('G', ModCtrl), NewRune('g', ModCtrl | ModShift)},
		{NewRune('g', ModShift), NewRune('g', ModShift)},
		{NewRune('g', ModNone), NewRune('g', ModNone)},
		{NewRune(' ', ModNone), NewKey(KeySpace, ModNone)},
		{NewRune(' ', ModCtrl), NewKey(KeySpace, ModCtrl)},
		{NewRune('5', ModNone), NewRune('5', ModNone)},
		{NewRune('/', ModAlt), NewRune('/', ModAlt)},
		{NewKey(KeyEnter, ModCtrl), NewKey(KeyEnter, ModCtrl)},
		{NewGroup(GroupAny, ModNone), NewGroup(GroupAny, ModNone)},
	}

	for _, tt := range tests {
		if got := tt.in.Normalize(); got != tt.want {
			t.Errorf("%v.Normalize() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// Normalization is idempotent: normalizing twice changes nothing.
func TestSpecNormalizeIdempotent(t *testing.T) {
	specs := []Spec{
		NewRune('G', ModNone),
		NewRune(' ', ModNone),
		NewRune('x', ModCtrl),
		NewKey(KeyF5, ModAlt),
		NewGroup(GroupDigit, ModNone),
	}

	for _, s := range specs {
		once := s.Normalize()
		twice := once.Normalize()
		if once != twice {
			t.Errorf("Normalize not idempotent for %v: %v vs %v", s, once, twice)
		}
	}
}

func TestSpecString(t *testing.T) {
	tests := []struct {
		spec Spec
		want string
	}{
		{NewRune('a', ModNone), "a"},
		{NewRune('b', ModCtrl), "ctrl-b"},
		{NewRune('g', ModShift), "shift-g"},
		{NewRune('x', ModCtrl | ModAlt | ModShift), "alt-ctrl-shift-x"},
		{NewKey(KeyEnter, ModNone), "enter"},
		{NewKey(KeyEsc, ModAlt), "alt-esc"},
		{NewKey(KeyF12, ModCtrl), "ctrl-f12"},
		{NewKey(KeyBackTab, ModNone), "backtab"},
		{NewGroup(GroupDigit, ModNone), "@digit"},
		{NewGroup(GroupAny, ModCtrl), "ctrl-@any"},
	}

	for _, tt := range tests {
		if got := tt.spec.String(); got != tt.want {
			t.Errorf("Spec.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestSpecStringParsesBack(t *testing.T) {
	specs := []Spec{
		NewRune('a', ModNone),
		NewRune('g', ModShift),
		NewRune('-', ModCtrl),
		NewKey(KeySpace, ModNone),
		NewKey(KeyF7, ModCtrl|ModAlt),
		NewGroup(GroupAlnum, ModNone),
	}

	for _, s := range specs {
		got, err := Parse(s.String())
		if err != nil {
			t.Errorf("Parse(%q) error: %v", s.String(), err)
			continue
		}
		if got != s {
			t.Errorf("Parse(%q) = %v, want %v", s.String(), got, s)
		}
	}
}

func TestSpecKindPredicates(t *testing.T) {
	r := NewRune('a', ModNone)
	if !r.IsRune() || r.IsGroup() || r.IsNamed() {
		t.Errorf("rune spec predicates wrong: %v", r)
	}
	g := NewGroup(GroupAny, ModNone)
	if !g.IsGroup() || g.IsRune() || g.IsNamed() {
		t.Errorf("group spec predicates wrong: %v", g)
	}
	n := NewKey(KeyEnter, ModNone)
	if !n.IsNamed() || n.IsRune() || n.IsGroup() {
		t.Errorf("named spec predicates wrong: %v", n)
	}
}
