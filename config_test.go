package keybind

import (
	"errors"
	"testing"

	"github.com/dkeyes/keybind/key"
)

func TestFromItems(t *testing.T) {
	table, err := FromItems(map[string]Item{
		"save": {Keys: []string{"ctrl-s"}, Description: "write buffer"},
		"quit": {Keys: []string{"q", "esc"}},
	})
	if err != nil {
		t.Fatalf("FromItems error: %v", err)
	}

	if table.Len() != 2 {
		t.Errorf("Len = %d, want 2", table.Len())
	}
	b, ok := table.Get("save")
	if !ok || b.Description != "write buffer" {
		t.Errorf("Get(save) = %v, %v, want description kept", b, ok)
	}
	if action, ok := table.Lookup(key.NewKey(key.KeyEsc, key.ModNone)); !ok || action != "quit" {
		t.Errorf("Lookup(esc) = %q, %v, want quit", action, ok)
	}
}

func TestFromItemsParseError(t *testing.T) {
	_, err := FromItems(map[string]Item{
		"bad": {Keys: []string{"ctrl-"}},
	})
	if err == nil {
		t.Fatal("FromItems succeeded, want error")
	}

	var berr *BindError
	if !errors.As(err, &berr) {
		t.Fatalf("error = %T, want *BindError", err)
	}
	if berr.Action != "bad" || berr.Pattern != "ctrl-" {
		t.Errorf("BindError = %+v, want action bad, pattern ctrl-", berr)
	}

	var perr *key.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error does not wrap *key.ParseError: %v", err)
	}
	if perr.Pos != 5 {
		t.Errorf("ParseError.Pos = %d, want 5", perr.Pos)
	}
}

// Actions are processed in sorted order, so duplicate reports are
// deterministic regardless of map iteration.
func TestFromItemsDeterministicDuplicate(t *testing.T) {
	for i := 0; i < 10; i++ {
		_, err := FromItems(map[string]Item{
			"zeta":  {Keys: []string{"x"}},
			"alpha": {Keys: []string{"x"}},
		})
		var derr *DuplicatePatternError
		if !errors.As(err, &derr) {
			t.Fatalf("error = %v, want *DuplicatePatternError", err)
		}
		if derr.ActionA != "alpha" || derr.ActionB != "zeta" {
			t.Fatalf("actions = %q, %q, want alpha, zeta", derr.ActionA, derr.ActionB)
		}
	}
}

// A file action fully replaces the derived action: patterns and
// description, never a union.
func TestMergeOverride(t *testing.T) {
	derived := map[string]Item{
		"quit": {Keys: []string{"q", "esc"}, Description: "leave"},
	}
	file := map[string]Item{
		"quit": {Keys: []string{"@any"}},
	}

	table, err := Merge(derived, file)
	if err != nil {
		t.Fatalf("Merge error: %v", err)
	}

	b, ok := table.Get("quit")
	if !ok {
		t.Fatal("Get(quit) not found")
	}
	if len(b.Patterns) != 1 || b.Patterns[0].String() != "@any" {
		t.Errorf("patterns = %v, want only @any", b.Patterns)
	}
	if b.Description != "" {
		t.Errorf("description = %q, want replaced by empty", b.Description)
	}

	// The derived spellings must no longer resolve as literals; both
	// now fall through to the @any group.
	m, ok := table.LookupBound(key.NewRune('q', key.ModNone))
	if !ok || m.Action != "quit" || m.Capture != 'q' {
		t.Errorf("LookupBound(q) = %v, %v, want quit via @any with capture", m, ok)
	}
}

func TestMergeKeepsAndAdds(t *testing.T) {
	derived := map[string]Item{
		"save": {Keys: []string{"ctrl-s"}},
	}
	file := map[string]Item{
		"reload": {Keys: []string{"ctrl-r"}},
	}

	table, err := Merge(derived, file)
	if err != nil {
		t.Fatalf("Merge error: %v", err)
	}

	if action, ok := table.Lookup(key.NewRune('s', key.ModCtrl)); !ok || action != "save" {
		t.Errorf("Lookup(ctrl-s) = %q, %v, want save", action, ok)
	}
	if action, ok := table.Lookup(key.NewRune('r', key.ModCtrl)); !ok || action != "reload" {
		t.Errorf("Lookup(ctrl-r) = %q, %v, want reload", action, ok)
	}
}

// Duplicate detection runs over the merged whole, so a file binding
// colliding with a different derived action fails.
func TestMergeDuplicateAcrossOrigins(t *testing.T) {
	derived := map[string]Item{
		"alpha": {Keys: []string{"x"}},
	}
	file := map[string]Item{
		"beta": {Keys: []string{"x"}},
	}

	_, err := Merge(derived, file)
	var derr *DuplicatePatternError
	if !errors.As(err, &derr) {
		t.Fatalf("error = %v, want *DuplicatePatternError", err)
	}
	if derr.Pattern != "x" || derr.ActionA != "alpha" || derr.ActionB != "beta" {
		t.Errorf("duplicate = %+v, want x claimed by alpha and beta", derr)
	}
}

// Overriding an action releases its old patterns for other actions to
// claim.
func TestMergeOverrideFreesPattern(t *testing.T) {
	derived := map[string]Item{
		"old": {Keys: []string{"x"}},
	}
	file := map[string]Item{
		"old": {Keys: []string{"y"}},
		"new": {Keys: []string{"x"}},
	}

	table, err := Merge(derived, file)
	if err != nil {
		t.Fatalf("Merge error: %v", err)
	}
	if action, ok := table.Lookup(key.NewRune('x', key.ModNone)); !ok || action != "new" {
		t.Errorf("Lookup(x) = %q, %v, want new", action, ok)
	}
	if action, ok := table.Lookup(key.NewRune('y', key.ModNone)); !ok || action != "old" {
		t.Errorf("Lookup(y) = %q, %v, want old", action, ok)
	}
}

func TestMergeNilFile(t *testing.T) {
	derived := map[string]Item{
		"quit": {Keys: []string{"q"}},
	}

	table, err := Merge(derived, nil)
	if err != nil {
		t.Fatalf("Merge error: %v", err)
	}
	if action, ok := table.Lookup(key.NewRune('q', key.ModNone)); !ok || action != "quit" {
		t.Errorf("Lookup(q) = %q, %v, want quit", action, ok)
	}
}

func TestMergeEmptyKeysFails(t *testing.T) {
	derived := map[string]Item{
		"quit": {Keys: []string{"q"}},
	}
	file := map[string]Item{
		"quit": {},
	}

	_, err := Merge(derived, file)
	if !errors.Is(err, ErrNoPatterns) {
		t.Errorf("error = %v, want ErrNoPatterns", err)
	}
}
