package wire

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	// ErrDuplicatePattern is returned when a pattern string is already
	// registered for the same role.
	ErrDuplicatePattern = errors.New("pattern already registered")
	// ErrCaptureCount is returned when a pattern's compiled capture
	// count does not match the declared count.
	ErrCaptureCount = errors.New("capture count mismatch")
)

// PatternID identifies a registered pattern within its table.
type PatternID int

// Match is the result of a successful table lookup. Spans holds one
// (start, end) byte offset pair per capture group; index 0 is the whole
// match and always covers the full payload.
type Match struct {
	Pattern PatternID
	Spans   [][2]int
}

// Capture returns the text of capture group i within payload, or the
// empty string when the group did not participate in the match.
func (m *Match) Capture(payload string, i int) string {
	if i < 0 || i >= len(m.Spans) {
		return ""
	}
	s := m.Spans[i]
	if s[0] < 0 {
		return ""
	}
	return payload[s[0]:s[1]]
}

type tablePattern struct {
	id       PatternID
	expr     string
	re       *regexp.Regexp
	captures int
}

// Table is a registration-ordered POSIX ERE dispatch table. Patterns
// are compiled once at registration; lookups allocate only the match
// result. Registration is not safe for concurrent use with lookups;
// register everything at startup.
type Table struct {
	patterns [2][]*tablePattern // indexed by Role
	next     PatternID
}

// NewTable creates an empty dispatch table.
func NewTable() *Table {
	return &Table{}
}

// Register compiles expr as a POSIX ERE anchored to the whole payload
// and adds it under the given role. captures declares the expected
// number of capture groups including the whole-match group; a mismatch
// with the compiled pattern is a registration error, not a lookup
// error. The same expression may not be registered twice for one role.
func (t *Table) Register(role Role, expr string, captures int) (PatternID, error) {
	for _, p := range t.patterns[role] {
		if p.expr == expr {
			return 0, fmt.Errorf("%w: %q", ErrDuplicatePattern, expr)
		}
	}

	re, err := regexp.CompilePOSIX("^" + expr + "$")
	if err != nil {
		return 0, fmt.Errorf("compiling pattern %q: %w", expr, err)
	}
	if got := re.NumSubexp() + 1; got != captures {
		return 0, fmt.Errorf("%w: pattern %q has %d groups, declared %d",
			ErrCaptureCount, expr, got, captures)
	}

	id := t.next
	t.next++
	t.patterns[role] = append(t.patterns[role], &tablePattern{
		id:       id,
		expr:     expr,
		re:       re,
		captures: captures,
	})
	return id, nil
}

// MustRegister is Register, panicking on error. Pattern registration
// happens at startup with fixed expressions, so a failure is a
// programming error.
func (t *Table) MustRegister(role Role, expr string, captures int) PatternID {
	id, err := t.Register(role, expr, captures)
	if err != nil {
		panic(err)
	}
	return id
}

// Lookup returns the first registered pattern for role whose match
// covers the entire payload, in registration order. ok is false when
// no pattern matches.
func (t *Table) Lookup(role Role, payload string) (*Match, bool) {
	for _, p := range t.patterns[role] {
		idx := p.re.FindStringSubmatchIndex(payload)
		if idx == nil || idx[0] != 0 || idx[1] != len(payload) {
			continue
		}
		m := &Match{Pattern: p.id, Spans: make([][2]int, p.captures)}
		for i := 0; i < p.captures; i++ {
			m.Spans[i] = [2]int{idx[2*i], idx[2*i+1]}
		}
		return m, true
	}
	return nil, false
}

// LookupPattern returns the match for one specific pattern, used when a
// caller expects a particular response rather than scanning the table.
func (t *Table) LookupPattern(id PatternID, role Role, payload string) (*Match, bool) {
	for _, p := range t.patterns[role] {
		if p.id != id {
			continue
		}
		idx := p.re.FindStringSubmatchIndex(payload)
		if idx == nil || idx[0] != 0 || idx[1] != len(payload) {
			return nil, false
		}
		m := &Match{Pattern: p.id, Spans: make([][2]int, p.captures)}
		for i := 0; i < p.captures; i++ {
			m.Spans[i] = [2]int{idx[2*i], idx[2*i+1]}
		}
		return m, true
	}
	return nil, false
}

// Len returns the number of patterns registered for role.
func (t *Table) Len(role Role) int {
	return len(t.patterns[role])
}
