// Package scan provides the low-level text scanning primitives shared by the
// language grammars: case-insensitive literal matching, bounded digit runs,
// and positional backtracking.
package scan

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Scanner is a cursor over an input string. It never allocates and supports
// backtracking via Pos/SetPos, which the grammars use to abandon a partially
// matched alternative.
type Scanner struct {
	input string
	pos   int
}

// New returns a Scanner positioned at the start of input.
func New(input string) *Scanner {
	return &Scanner{input: input}
}

// Pos returns the current byte offset.
func (s *Scanner) Pos() int { return s.pos }

// SetPos rewinds (or advances) the cursor to a previously saved offset.
func (s *Scanner) SetPos(p int) { s.pos = p }

// EOF reports whether the entire input has been consumed.
func (s *Scanner) EOF() bool { return s.pos >= len(s.input) }

// Literal matches lit case-insensitively at the cursor and advances past it.
// Folding is per-rune, so non-ASCII literals like "nächsten" match "Nächsten".
func (s *Scanner) Literal(lit string) bool {
	p := s.pos
	for _, want := range lit {
		if p >= len(s.input) {
			return false
		}
		got, size := utf8.DecodeRuneInString(s.input[p:])
		if unicode.ToLower(got) != unicode.ToLower(want) {
			return false
		}
		p += size
	}
	s.pos = p
	return true
}

// Byte matches a single exact byte (separators like ':', '-', '.').
func (s *Scanner) Byte(c byte) bool {
	if s.pos < len(s.input) && s.input[s.pos] == c {
		s.pos++
		return true
	}
	return false
}

// AnyByte matches one byte from set and returns it.
func (s *Scanner) AnyByte(set string) (byte, bool) {
	if s.pos >= len(s.input) {
		return 0, false
	}
	c := s.input[s.pos]
	for i := 0; i < len(set); i++ {
		if set[i] == c {
			s.pos++
			return c, true
		}
	}
	return 0, false
}

// Digits consumes between min and max ASCII digits (max <= 0 means unbounded)
// and returns the matched run. Fewer than min digits is a non-match and leaves
// the cursor untouched.
func (s *Scanner) Digits(min, max int) (string, bool) {
	start := s.pos
	p := s.pos
	for p < len(s.input) && s.input[p] >= '0' && s.input[p] <= '9' {
		if max > 0 && p-start == max {
			break
		}
		p++
	}
	if p-start < min {
		return "", false
	}
	s.pos = p
	return s.input[start:p], true
}

// Spaces consumes one or more whitespace characters.
func (s *Scanner) Spaces() bool {
	if !s.skipOne() {
		return false
	}
	for s.skipOne() {
	}
	return true
}

// SkipSpaces consumes zero or more whitespace characters.
func (s *Scanner) SkipSpaces() {
	for s.skipOne() {
	}
}

func (s *Scanner) skipOne() bool {
	if s.pos >= len(s.input) {
		return false
	}
	switch s.input[s.pos] {
	case ' ', '\t', '\n', '\r':
		s.pos++
		return true
	}
	return false
}

// Number consumes a digit run and parses it as int64. A run that overflows
// int64 is a non-match.
func (s *Scanner) Number() (int64, bool) {
	start := s.pos
	digits, ok := s.Digits(1, 0)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		s.pos = start
		return 0, false
	}
	return n, true
}

// SmallInt consumes one or two digits, the shape used for day, month, hour,
// minute, and second fields.
func (s *Scanner) SmallInt() (int, bool) {
	digits, ok := s.Digits(1, 2)
	if !ok {
		return 0, false
	}
	n, _ := strconv.Atoi(digits)
	return n, true
}

// Year consumes exactly four digits.
func (s *Scanner) Year() (int, bool) {
	digits, ok := s.Digits(4, 4)
	if !ok {
		return 0, false
	}
	n, _ := strconv.Atoi(digits)
	return n, true
}
