package whence

import (
	"time"

	"github.com/whencehq/whence/internal/scan"
)

// parseGerman recognizes German time expressions: "in 5 Minuten",
// "vor 2 Stunden", "morgen um 15:30 Uhr", "nächsten Montag", "15.03.2024",
// and the shared ISO datetime forms. German times are 24-hour; there is no
// meridiem.
func parseGerman(input string) (Expr, error) {
	return runGrammar(input, []alternative{
		altISO,
		deDate,
		deDayAtTime,
		deNow,
		deDay,
		deTime,
		deRelativePast,
		deRelativeFuture,
	})
}

// Article declensions of "ein" and the spelled-out cardinals up to ten.
var deNumbers = []literal[int64]{
	{"einem", 1}, {"einer", 1}, {"einen", 1}, {"eine", 1}, {"ein", 1},
	{"zwei", 2}, {"drei", 3}, {"vier", 4}, {"fünf", 5},
	{"sechs", 6}, {"sieben", 7}, {"acht", 8}, {"neun", 9}, {"zehn", 10},
}

// Singular, plural, and dative spellings plus the common abbreviations.
var deUnits = []literal[Unit]{
	{"sekunden", Second}, {"sekunde", Second}, {"sek", Second},
	{"minuten", Minute}, {"minute", Minute}, {"min", Minute},
	{"stunden", Hour}, {"stunde", Hour}, {"std", Hour},
	{"tagen", Day}, {"tage", Day}, {"tag", Day},
	{"wochen", Week}, {"woche", Week},
	{"monaten", Month}, {"monate", Month}, {"monat", Month},
	{"jahren", Year}, {"jahre", Year}, {"jahr", Year},
}

var deWeekdays = []literal[time.Weekday]{
	{"montag", time.Monday}, {"mo", time.Monday},
	{"dienstag", time.Tuesday}, {"di", time.Tuesday},
	{"mittwoch", time.Wednesday}, {"mi", time.Wednesday},
	{"donnerstag", time.Thursday}, {"do", time.Thursday},
	{"freitag", time.Friday}, {"fr", time.Friday},
	{"samstag", time.Saturday}, {"sa", time.Saturday},
	{"sonntag", time.Sunday}, {"so", time.Sunday},
}

var deShortcuts = []literal[DayKind]{
	{"heute", Today},
	{"gestern", Yesterday},
	{"morgen", Tomorrow},
}

var deModifiers = []literal[Modifier]{
	{"letzten", Last}, {"letzte", Last},
	{"nächsten", Next}, {"nächste", Next},
}

func deNumber(s *scan.Scanner) (int64, bool) {
	if n, ok := s.Number(); ok {
		return n, true
	}
	return scanLiteral(s, deNumbers)
}

func deDayRef(s *scan.Scanner) (DayRef, bool) {
	if kind, ok := scanLiteral(s, deShortcuts); ok {
		return DayRef{Kind: kind}, true
	}

	start := s.Pos()
	if mod, ok := scanLiteral(s, deModifiers); ok {
		if s.Spaces() {
			if day, ok := scanLiteral(s, deWeekdays); ok {
				return DayRef{Kind: OnWeekday, Weekday: day, Modifier: mod}, true
			}
		}
		s.SetPos(start)
	}

	if day, ok := scanLiteral(s, deWeekdays); ok {
		return DayRef{Kind: OnWeekday, Weekday: day}, true
	}
	return DayRef{}, false
}

// deClock matches HH:MM and HH:MM:SS on a 24-hour clock.
func deClock(s *scan.Scanner) (TimeOfDay, bool) {
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

	return t, true
}

// deUhr consumes an optional trailing "Uhr" suffix.
func deUhr(s *scan.Scanner) {
	mark := s.Pos()
	if !s.Spaces() || !s.Literal("uhr") {
		s.SetPos(mark)
	}
}

func deNow(s *scan.Scanner) (Expr, bool) {
	if s.Literal("jetzt") {
		return Now{}, true
	}
	return nil, false
}

func deDay(s *scan.Scanner) (Expr, bool) {
	if ref, ok := deDayRef(s); ok {
		return ref, true
	}
	return nil, false
}

func deTime(s *scan.Scanner) (Expr, bool) {
	t, ok := deClock(s)
	if !ok {
		return nil, false
	}
	deUhr(s)
	return t, true
}

func deDayAtTime(s *scan.Scanner) (Expr, bool) {
	start := s.Pos()

	ref, ok := deDayRef(s)
	if !ok {
		return nil, false
	}
	if !s.Spaces() || !s.Literal("um") || !s.Spaces() {
		s.SetPos(start)
		return nil, false
	}
	t, ok := deClock(s)
	if !ok {
		s.SetPos(start)
		return nil, false
	}
	deUhr(s)

	return DayTime{Day: ref, Time: t}, true
}

// deDate matches the German DD.MM.YYYY date form.
func deDate(s *scan.Scanner) (Expr, bool) {
	start := s.Pos()

	day, ok := s.SmallInt()
	if !ok {
		return nil, false
	}
	if !s.Byte('.') {
		s.SetPos(start)
		return nil, false
	}
	month, ok := s.SmallInt()
	if !ok || !s.Byte('.') {
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

// deRelativePast matches "vor <amount> <unit>".
func deRelativePast(s *scan.Scanner) (Expr, bool) {
	return deRelative(s, "vor", Past)
}

// deRelativeFuture matches "in <amount> <unit>".
func deRelativeFuture(s *scan.Scanner) (Expr, bool) {
	return deRelative(s, "in", Future)
}

func deRelative(s *scan.Scanner, marker string, dir Direction) (Expr, bool) {
	start := s.Pos()

	if !s.Literal(marker) || !s.Spaces() {
		s.SetPos(start)
		return nil, false
	}
	amount, ok := deNumber(s)
	if !ok || !s.Spaces() {
		s.SetPos(start)
		return nil, false
	}
	unit, ok := scanLiteral(s, deUnits)
	if !ok {
		s.SetPos(start)
		return nil, false
	}

	return Relative{Amount: amount, Unit: unit, Direction: dir}, true
}
