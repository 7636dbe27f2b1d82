package key

import (
	"fmt"
	"unicode"
)

// ParseError describes a malformed key specification. Pos is the
// zero-based character offset of the first unexpected character in the
// input that was parsed.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at position %d: %s", e.Pos, e.Msg)
}

// Parse parses a single key specification such as "ctrl-b", "shift-g",
// "f1", or "@digit". The entire input must be consumed; trailing
// characters are an error. The returned Spec is normalized.
func Parse(text string) (Spec, error) {
	p := &parser{runes: []rune(text)}
	return p.parseFull()
}

// MustParse is like Parse but panics on error. Use for static
// specifications known to be valid.
func MustParse(text string) Spec {
	s, err := Parse(text)
	if err != nil {
		panic("invalid key specification: " + text + ": " + err.Error())
	}
	return s
}

// ParseSequence parses a whitespace-separated list of key
// specifications such as "ctrl-b n" into a Sequence. Error positions
// refer to character offsets in the full input text. Empty input is an
// error at position 0.
func ParseSequence(text string) (Sequence, error) {
	runes := []rune(text)
	var seq Sequence
	i := 0
	for i < len(runes) {
		if isSpace(runes[i]) {
			i++
			continue
		}
		start := i
		for i < len(runes) && !isSpace(runes[i]) {
			i++
		}
		p := &parser{runes: runes[start:i], base: start}
		spec, err := p.parseFull()
		if err != nil {
			return nil, err
		}
		seq = append(seq, spec)
	}
	if len(seq) == 0 {
		return nil, &ParseError{Pos: 0, Msg: "expect key, found: end of input"}
	}
	return seq, nil
}

// MustParseSequence is like ParseSequence but panics on error.
func MustParseSequence(text string) Sequence {
	s, err := ParseSequence(text)
	if err != nil {
		panic("invalid key specification: " + text + ": " + err.Error())
	}
	return s
}

// Normalize parses a key specification and returns its canonical
// textual form. Two spellings of the same binding ("G", "shift-g")
// normalize to identical text.
func Normalize(text string) (string, error) {
	seq, err := ParseSequence(text)
	if err != nil {
		return "", err
	}
	return seq.String(), nil
}

// parser consumes one key specification token. base is the token's
// character offset in the surrounding input, so error positions are
// absolute.
type parser struct {
	runes []rune
	pos   int
	base  int
}

func (p *parser) parseFull() (Spec, error) {
	spec, err := p.parseSpec()
	if err != nil {
		return Spec{}, err
	}
	if p.pos < len(p.runes) {
		return Spec{}, p.errAt(p.pos, "expect end of input, found: %c", p.runes[p.pos])
	}
	return spec, nil
}

// parseSpec parses zero or more modifier prefixes followed by one atom.
func (p *parser) parseSpec() (Spec, error) {
	mods := ModNone
	for {
		word, n := p.peekWord()
		if n == 0 || p.pos+n >= len(p.runes) || p.runes[p.pos+n] != '-' {
			break
		}
		m := ModifierFromName(word)
		if m == ModNone {
			break
		}
		p.pos += n + 1
		mods = mods.With(m)
	}
	atom, err := p.parseAtom()
	if err != nil {
		return Spec{}, err
	}
	atom.Mods = atom.Mods.With(mods)
	return atom.Normalize(), nil
}

// parseAtom parses one atom: a group reference, a named key, a
// function key, or a single printable character.
func (p *parser) parseAtom() (Spec, error) {
	if p.pos >= len(p.runes) {
		return Spec{}, p.errAt(p.pos, "expect key, found: end of input")
	}

	// Group reference. Group names are case-sensitive; "@" followed by
	// anything else is the literal at-sign character.
	if p.runes[p.pos] == '@' {
		j := p.pos + 1
		for j < len(p.runes) && isLetter(p.runes[j]) {
			j++
		}
		if g := GroupFromName(string(p.runes[p.pos+1 : j])); g != GroupNone {
			p.pos = j
			return NewGroup(g, ModNone), nil
		}
		p.pos++
		return NewRune('@', ModNone), nil
	}

	word, n := p.peekWord()

	// Named keys are two or more letters, case-insensitive.
	if n >= 2 {
		if k := KeyFromName(word); k != KeyNone {
			p.pos += n
			return NewKey(k, ModNone), nil
		}
		return Spec{}, p.errAt(p.pos, "unknown key name: %q", word)
	}

	// Function keys f1-f12.
	if (word == "f" || word == "F") && p.pos+1 < len(p.runes) && isDigit(p.runes[p.pos+1]) {
		start := p.pos
		if p.pos+2 < len(p.runes) && p.runes[p.pos+1] == '1' && p.runes[p.pos+2] >= '0' && p.runes[p.pos+2] <= '2' {
			n := 10 + int(p.runes[p.pos+2]-'0')
			p.pos += 3
			return NewKey(FunctionKey(n), ModNone), nil
		}
		if d := p.runes[p.pos+1]; d >= '1' && d <= '9' {
			p.pos += 2
			return NewKey(FunctionKey(int(d-'0')), ModNone), nil
		}
		return Spec{}, p.errAt(start, "unknown key name: %q", string(p.runes[start:start+2]))
	}

	// Single printable character.
	if r := p.runes[p.pos]; r != ' ' && unicode.IsPrint(r) {
		p.pos++
		return NewRune(r, ModNone), nil
	}
	return Spec{}, p.errAt(p.pos, "expect key, found: %c", p.runes[p.pos])
}

// peekWord returns the run of letters at the current position without
// consuming it.
func (p *parser) peekWord() (string, int) {
	i := p.pos
	for i < len(p.runes) && isLetter(p.runes[i]) {
		i++
	}
	return string(p.runes[p.pos:i]), i - p.pos
}

func (p *parser) errAt(pos int, format string, args ...any) *ParseError {
	return &ParseError{Pos: p.base + pos, Msg: fmt.Sprintf(format, args...)}
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
