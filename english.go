package whence

import (
	"time"

	"github.com/whencehq/whence/internal/scan"
)

// parseEnglish recognizes English time expressions: "in 5 minutes",
// "2 hours ago", "tomorrow at 3:30 pm", "next monday", "15/03/2024", and the
// shared ISO datetime forms.
func parseEnglish(input string) (Expr, error) {
	return runGrammar(input, []alternative{
		altISO,
		enDate,
		enDayAtTime,
		enNow,
		enDay,
		enTime,
		enRelativePast,
		enRelativeFuture,
	})
}

// Spelled-out cardinals and the articles that mean "one". "an" precedes "a"
// so the longer spelling wins.
var enNumbers = []literal[int64]{
	{"an", 1}, {"a", 1}, {"one", 1},
	{"two", 2}, {"three", 3}, {"four", 4}, {"five", 5},
	{"six", 6}, {"seven", 7}, {"eight", 8}, {"nine", 9}, {"ten", 10},
}

// Unit spellings, longest first within each unit. The bare "m" is listed
// last and means minute, after "mo"/"mos" have had their chance to claim
// month.
var enUnits = []literal[Unit]{
	{"seconds", Second}, {"second", Second}, {"secs", Second}, {"sec", Second}, {"s", Second},
	{"minutes", Minute}, {"minute", Minute}, {"mins", Minute}, {"min", Minute},
	{"hours", Hour}, {"hour", Hour}, {"hrs", Hour}, {"hr", Hour}, {"h", Hour},
	{"days", Day}, {"day", Day}, {"d", Day},
	{"weeks", Week}, {"week", Week}, {"wks", Week}, {"wk", Week}, {"w", Week},
	{"months", Month}, {"month", Month}, {"mos", Month}, {"mo", Month},
	{"years", Year}, {"year", Year}, {"yrs", Year}, {"yr", Year}, {"y", Year},
	{"m", Minute},
}

var enWeekdays = []literal[time.Weekday]{
	{"monday", time.Monday}, {"mon", time.Monday},
	{"tuesday", time.Tuesday}, {"tue", time.Tuesday},
	{"wednesday", time.Wednesday}, {"wed", time.Wednesday},
	{"thursday", time.Thursday}, {"thu", time.Thursday},
	{"friday", time.Friday}, {"fri", time.Friday},
	{"saturday", time.Saturday}, {"sat", time.Saturday},
	{"sunday", time.Sunday}, {"sun", time.Sunday},
}

var enShortcuts = []literal[DayKind]{
	{"today", Today},
	{"yesterday", Yesterday},
	{"tomorrow", Tomorrow},
}

var enModifiers = []literal[Modifier]{
	{"last", Last},
	{"next", Next},
}

var enMeridiems = []literal[Meridiem]{
	{"am", AM}, {"a.m.", AM},
	{"pm", PM}, {"p.m.", PM},
}

func enNumber(s *scan.Scanner) (int64, bool) {
	if n, ok := s.Number(); ok {
		return n, true
	}
	return scanLiteral(s, enNumbers)
}

func enDayRef(s *scan.Scanner) (DayRef, bool) {
	if kind, ok := scanLiteral(s, enShortcuts); ok {
		return DayRef{Kind: kind}, true
	}

	start := s.Pos()
	if mod, ok := scanLiteral(s, enModifiers); ok {
		if s.Spaces() {
			if day, ok := scanLiteral(s, enWeekdays); ok {
				return DayRef{Kind: OnWeekday, Weekday: day, Modifier: mod}, true
			}
		}
		s.SetPos(start)
	}

	if day, ok := scanLiteral(s, enWeekdays); ok {
		return DayRef{Kind: OnWeekday, Weekday: day}, true
	}
	return DayRef{}, false
}

// enClock matches H:MM, HH:MM:SS, and the 12-hour forms with an optional
// meridiem suffix ("3:30 pm", "3:30pm").
func enClock(s *scan.Scanner) (TimeOfDay, bool) {
	start := s.Pos()

	hour, ok := s.SmallInt()
	if !ok || !s.Byte(':') {
		s.SetPos(start)
		return TimeOfDay{}, false
	}
	minute, ok := s.SmallInt()
	if !ok {
		s.SetPos(start)
		return TimeOfDay{}, false
	}

	t := TimeOfDay{Hour: hour, Minute: minute}

	secMark := s.Pos()
	if s.Byte(':') {
		if sec, ok := s.SmallInt(); ok {
			t.Second = sec
		} else {
			s.SetPos(secMark)
		}
	}

	meriMark := s.Pos()
	s.SkipSpaces()
	if m, ok := scanLiteral(s, enMeridiems); ok {
		t.Meridiem = m
	} else {
		s.SetPos(meriMark)
	}

	return t, true
}

func enNow(s *scan.Scanner) (Expr, bool) {
	if s.Literal("now") {
		return Now{}, true
	}
	return nil, false
}

func enDay(s *scan.Scanner) (Expr, bool) {
	if ref, ok := enDayRef(s); ok {
		return ref, true
	}
	return nil, false
}

func enTime(s *scan.Scanner) (Expr, bool) {
	if t, ok := enClock(s); ok {
		return t, true
	}
	return nil, false
}

func enDayAtTime(s *scan.Scanner) (Expr, bool) {
	start := s.Pos()

	ref, ok := enDayRef(s)
	if !ok {
		return nil, false
	}
	if !s.Spaces() || !s.Literal("at") || !s.Spaces() {
		s.SetPos(start)
		return nil, false
	}
	t, ok := enClock(s)
	if !ok {
		s.SetPos(start)
		return nil, false
	}

	return DayTime{Day: ref, Time: t}, true
}

// enDate matches the international DD/MM/YYYY and DD-MM-YYYY date forms with
// a consistent separator.
func enDate(s *scan.Scanner) (Expr, bool) {
	start := s.Pos()

	day, ok := s.SmallInt()
	if !ok {
		return nil, false
	}
	sep, ok := s.AnyByte("/-")
	if !ok {
		s.SetPos(start)
		return nil, false
	}
	month, ok := s.SmallInt()
	if !ok || !s.Byte(sep) {
		s.SetPos(start)
		return nil, false
	}
	year, ok := s.Year()
	if !ok {
		s.SetPos(start)
		return nil, false
	}

	return CalendarDate{Day: day, Month: month, Year: year}, true
}

// enRelativePast matches "<amount> <unit> ago".
func enRelativePast(s *scan.Scanner) (Expr, bool) {
	start := s.Pos()

	amount, ok := enNumber(s)
	if !ok || !s.Spaces() {
		s.SetPos(start)
		return nil, false
	}
	unit, ok := scanLiteral(s, enUnits)
	if !ok || !s.Spaces() || !s.Literal("ago") {
		s.SetPos(start)
		return nil, false
	}

	return Relative{Amount: amount, Unit: unit, Direction: Past}, true
}

// enRelativeFuture matches "in <amount> <unit>".
func enRelativeFuture(s *scan.Scanner) (Expr, bool) {
	start := s.Pos()

	if !s.Literal("in") || !s.Spaces() {
		s.SetPos(start)
		return nil, false
	}
	amount, ok := enNumber(s)
	if !ok || !s.Spaces() {
		s.SetPos(start)
		return nil, false
	}
	unit, ok := scanLiteral(s, enUnits)
	if !ok {
		s.SetPos(start)
		return nil, false
	}

	return Relative{Amount: amount, Unit: unit, Direction: Future}, true
}
