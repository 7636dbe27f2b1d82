// Package key defines the key specification grammar and the
// normalized key model used throughout keybind.
//
// # Key Specifications
//
// A key specification is a compact textual description of a key press:
//
//	n               the letter n
//	ctrl-s          Ctrl held with s
//	alt-shift-f3    Alt and Shift held with function key 3
//	@digit          any digit key, captured on match
//	ctrl-b n        the two-step sequence Ctrl-b then n
//
// A specification is one or more whitespace-separated key specs. Each
// spec is zero or more modifier prefixes (ctrl-, alt-, shift-, in any
// order) followed by one atom: a single printable character, a named
// key (enter, esc, tab, backtab, space, backspace, delete, insert,
// home, end, pageup, pagedown, up, down, left, right, f1 through f12;
// case-insensitive), or a group reference (@upper, @lower, @alpha,
// @alnum, @digit, @any; case-sensitive).
//
// # Normalization
//
// Specs are normalized so spellings that denote the same physical
// input compare equal: an uppercase letter becomes Shift plus the
// lowercase letter, so "G" and "shift-g" parse to the same Spec. Parse
// and ParseSequence return normalized values; input converted from a
// backend must be normalized the same way before matching.
//
// # Errors
//
// Parse failures are reported as *ParseError carrying the zero-based
// character offset of the first unexpected character and an
// expectation message. Positions refer to the full input text, so a
// bad second step in "ctrl-b ??" points past the first step.
package key
