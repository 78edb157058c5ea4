package scan

import "testing"

func TestLiteral(t *testing.T) {
	tests := []struct {
		input string
		lit   string
		want  bool
		pos   int
	}{
		{"now", "now", true, 3},
		{"NOW", "now", true, 3},
		{"Now and then", "now", true, 3},
		{"nope", "now", false, 0},
		{"no", "now", false, 0},
		{"", "now", false, 0},
		{"nächsten", "nächsten", true, 9},
		{"NÄCHSTEN", "nächsten", true, 9},
	}
	for _, tt := range tests {
		s := New(tt.input)
		if got := s.Literal(tt.lit); got != tt.want {
			t.Errorf("Literal(%q) on %q = %v, want %v", tt.lit, tt.input, got, tt.want)
		}
		if s.Pos() != tt.pos {
			t.Errorf("Literal(%q) on %q: pos = %d, want %d", tt.lit, tt.input, s.Pos(), tt.pos)
		}
	}
}

func TestDigits(t *testing.T) {
	tests := []struct {
		input    string
		min, max int
		want     string
		ok       bool
	}{
		{"2024-", 4, 4, "2024", true},
		{"20241", 4, 4, "2024", true},
		{"202", 4, 4, "", false},
		{"abc", 1, 2, "", false},
		{"123456", 1, 0, "123456", true},
		{"07", 1, 2, "07", true},
		{"7:30", 1, 2, "7", true},
	}
	for _, tt := range tests {
		s := New(tt.input)
		got, ok := s.Digits(tt.min, tt.max)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Digits(%d, %d) on %q = %q, %v, want %q, %v",
				tt.min, tt.max, tt.input, got, ok, tt.want, tt.ok)
		}
		if !ok && s.Pos() != 0 {
			t.Errorf("Digits(%d, %d) on %q moved cursor to %d on failure",
				tt.min, tt.max, tt.input, s.Pos())
		}
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		input string
		want  int64
		ok    bool
	}{
		{"42 days", 42, true},
		{"0", 0, true},
		{"9223372036854775807", 9223372036854775807, true},
		{"9223372036854775808", 0, false},
		{"x", 0, false},
	}
	for _, tt := range tests {
		s := New(tt.input)
		got, ok := s.Number()
		if got != tt.want || ok != tt.ok {
			t.Errorf("Number() on %q = %d, %v, want %d, %v", tt.input, got, ok, tt.want, tt.ok)
		}
		if !ok && s.Pos() != 0 {
			t.Errorf("Number() on %q moved cursor to %d on failure", tt.input, s.Pos())
		}
	}
}

func TestSpaces(t *testing.T) {
	s := New("  \t x")
	if !s.Spaces() {
		t.Fatal("Spaces() = false, want true")
	}
	if s.Pos() != 4 {
		t.Fatalf("pos = %d, want 4", s.Pos())
	}
	if s.Spaces() {
		t.Fatal("Spaces() at non-space = true, want false")
	}

	s = New("x")
	s.SkipSpaces()
	if s.Pos() != 0 {
		t.Fatalf("SkipSpaces() at non-space moved cursor to %d", s.Pos())
	}
}

func TestBacktracking(t *testing.T) {
	s := New("12:34")
	mark := s.Pos()
	s.SmallInt()
	s.Byte(':')
	s.SetPos(mark)
	if got, _ := s.Digits(1, 2); got != "12" {
		t.Fatalf("after rewind Digits = %q, want %q", got, "12")
	}
}

func TestAnyByte(t *testing.T) {
	s := New("-5")
	c, ok := s.AnyByte("+-")
	if !ok || c != '-' {
		t.Fatalf("AnyByte(%q) = %q, %v, want '-', true", "+-", c, ok)
	}
	if _, ok := s.AnyByte("+-"); ok {
		t.Fatal("AnyByte matched a digit")
	}
}
