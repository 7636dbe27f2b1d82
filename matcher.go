package keybind

import (
	"time"

	"github.com/dkeyes/keybind/key"
)

// MatchKind classifies the outcome of feeding one key to a Matcher.
type MatchKind int

const (
	// MatchNone means the key completed nothing and no sequence is
	// pending.
	MatchNone MatchKind = iota
	// MatchPending means the key extended a buffer that is a prefix
	// of at least one registered sequence.
	MatchPending
	// MatchComplete means a registered sequence completed.
	MatchComplete
)

// Result is the outcome of one Feed call. Action and Capture are set
// only for MatchComplete.
type Result struct {
	Kind    MatchKind
	Action  string
	Capture rune
}

// DefaultTimeout bounds how long a pending sequence waits for its next
// key when no explicit timeout is configured.
const DefaultTimeout = time.Second

// Matcher resolves a stream of keys against a Table, buffering prefixes
// of multi-key sequences. It keeps no timers and takes no locks: the
// caller drives it by presenting each key with its arrival time, and a
// stale pending buffer is discarded lazily on the next call. Use one
// Matcher per input stream.
type Matcher struct {
	table   *Table
	timeout time.Duration
	buf     key.Sequence
	started time.Time
}

// NewMatcher creates a Matcher over a table. A timeout of zero or less
// selects DefaultTimeout.
func NewMatcher(table *Table, timeout time.Duration) *Matcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Matcher{table: table, timeout: timeout}
}

// Feed advances the matcher with one key press observed at the given
// time.
//
// The key is appended to the pending buffer, first discarding the
// buffer if more than the timeout elapsed since it started. An exact
// literal match completes immediately. A buffer that is a strict
// prefix of a registered sequence stays pending, even when a group
// pattern already matches it outright: the longer, more specific
// pattern is given the chance to complete. Otherwise group patterns
// are consulted. If nothing matches, the buffer is dropped and the
// just-received key is retried alone within the same call, so an
// aborted sequence never swallows a valid new start.
func (m *Matcher) Feed(spec key.Spec, now time.Time) Result {
	spec = spec.Normalize()
	if len(m.buf) > 0 && now.Sub(m.started) > m.timeout {
		m.buf = m.buf[:0]
	}
	if len(m.buf) == 0 {
		m.started = now
	}
	m.buf = append(m.buf, spec)

	if res, ok := m.resolve(); ok {
		return res
	}
	if len(m.buf) > 1 {
		m.buf = append(m.buf[:0], spec)
		m.started = now
		if res, ok := m.resolve(); ok {
			return res
		}
	}
	m.buf = m.buf[:0]
	return Result{Kind: MatchNone}
}

func (m *Matcher) resolve() (Result, bool) {
	if action, ok := m.table.lookupLiteral(m.buf); ok {
		m.buf = m.buf[:0]
		return Result{Kind: MatchComplete, Action: action}, true
	}
	if m.table.HasPrefix(m.buf) {
		return Result{Kind: MatchPending}, true
	}
	if match, ok := m.table.LookupSequenceBound(m.buf); ok {
		m.buf = m.buf[:0]
		return Result{Kind: MatchComplete, Action: match.Action, Capture: match.Capture}, true
	}
	return Result{}, false
}

// Pending returns a copy of the buffered prefix, empty when idle.
func (m *Matcher) Pending() key.Sequence {
	return m.buf.Clone()
}

// Reset discards any pending buffer.
func (m *Matcher) Reset() {
	m.buf = m.buf[:0]
}

// Table returns the table the matcher resolves against.
func (m *Matcher) Table() *Table {
	return m.table
}

// SetTable swaps the table, discarding any pending buffer. Use after
// reloading configuration.
func (m *Matcher) SetTable(table *Table) {
	m.table = table
	m.buf = m.buf[:0]
}
