package whence

import (
	"strings"

	"github.com/whencehq/whence/internal/scan"
)

// alternative is one production of a grammar. It either matches a prefix of
// the remaining input and advances the scanner, or reports false and leaves
// the cursor where it found it.
type alternative func(*scan.Scanner) (Expr, bool)

// runGrammar drives a grammar over input: alternatives are tried in priority
// order, the first one whose prefix matches wins, and the winner must consume
// the entire trimmed input. Trailing characters after a committed match are a
// parse error, not a reason to try later alternatives.
func runGrammar(input string, alts []alternative) (Expr, error) {
	trimmed := strings.TrimSpace(input)
	lead := len(input) - len(strings.TrimLeft(input, " \t\n\r"))

	s := scan.New(trimmed)
	for _, alt := range alts {
		expr, ok := alt(s)
		if !ok {
			s.SetPos(0)
			continue
		}
		if !s.EOF() {
			return nil, parseErrorf(input, lead+s.Pos(), "unexpected trailing input")
		}
		return expr, nil
	}
	return nil, parseErrorf(input, lead, "no time expression recognized")
}

// altISO adapts the shared ISO datetime production to the alternative shape.
func altISO(s *scan.Scanner) (Expr, bool) {
	abs, ok := scanISO(s)
	if !ok {
		return nil, false
	}
	return abs, true
}

// literal pairs a spelling with the value it denotes. Tables are ordered so
// that longer spellings are tried before their prefixes ("seconds" before
// "sec" before "s").
type literal[T any] struct {
	spelling string
	value    T
}

// scanLiteral matches the first table entry whose spelling appears at the
// cursor, case-insensitively.
func scanLiteral[T any](s *scan.Scanner, table []literal[T]) (T, bool) {
	for _, entry := range table {
		if s.Literal(entry.spelling) {
			return entry.value, true
		}
	}
	var zero T
	return zero, false
}
