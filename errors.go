package keybind

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPatterns indicates a binding declared with no patterns.
	ErrNoPatterns = errors.New("binding has no patterns")

	// ErrEmptyPattern indicates a binding pattern with no keys.
	ErrEmptyPattern = errors.New("empty pattern")

	// ErrDuplicateAction indicates the same action appeared twice in
	// one binding list.
	ErrDuplicateAction = errors.New("duplicate action")
)

// DuplicatePatternError indicates that two different actions claim the
// same normalized pattern. The table would be ambiguous, so
// construction fails instead of picking one.
type DuplicatePatternError struct {
	Pattern string
	ActionA string
	ActionB string
}

func (e *DuplicatePatternError) Error() string {
	return fmt.Sprintf("pattern %q bound to both %q and %q", e.Pattern, e.ActionA, e.ActionB)
}

// BindError wraps an error raised while registering one binding,
// identifying the action and, when relevant, the offending pattern
// text.
type BindError struct {
	Action  string
	Pattern string
	Err     error
}

func (e *BindError) Error() string {
	if e.Pattern == "" {
		return fmt.Sprintf("binding %q: %v", e.Action, e.Err)
	}
	return fmt.Sprintf("binding %q: pattern %q: %v", e.Action, e.Pattern, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// DecodeError wraps a deserialization failure from a bindings file.
// The underlying decoder error is available through Unwrap.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding bindings file %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
