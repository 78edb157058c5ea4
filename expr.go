package whence

import "time"

// Expr is a parsed time expression. It is a closed set: the only
// implementations are the variant types in this package (Now, Relative,
// Absolute, DayRef, TimeOfDay, CalendarDate, DayTime). Expressions are plain
// immutable values with no identity; they are safe to copy, compare, and
// share between goroutines.
type Expr interface {
	isExpr()
}

// Now is the current moment ("now", "jetzt").
type Now struct{}

// Relative is a time offset from the reference moment, such as
// "in 5 minutes" or "3 days ago".
type Relative struct {
	Amount    int64
	Unit      Unit
	Direction Direction
}

// Absolute is a fully specified date, optionally with a wall-clock time and
// timezone, as produced by ISO 8601 input ("2024-01-15T14:30:00Z").
//
// HasClock reports whether an hour and minute were present; when false the
// expression is date-only and resolves to midnight. Zone is nil when the
// input carried no timezone designator, in which case the backend's zone
// applies.
type Absolute struct {
	Year  int
	Month int
	Day   int

	Hour       int
	Minute     int
	Second     int
	Nanosecond int
	HasClock   bool

	Zone *Zone
}

// Zone is a timezone designator: either UTC ("Z") or a fixed offset from UTC
// with the sign carried on Hours.
type Zone struct {
	UTC     bool
	Hours   int // -12 to +14
	Minutes int // 0 to 59
}

// DayRef names a day relative to the reference moment: a shortcut
// (today/yesterday/tomorrow) or a weekday with an optional modifier.
type DayRef struct {
	Kind     DayKind
	Weekday  time.Weekday // meaningful only when Kind == OnWeekday
	Modifier Modifier     // meaningful only when Kind == OnWeekday
}

// TimeOfDay is a wall-clock time such as "3:30 pm" or "14:30". Hour is 1-12
// when a meridiem is present and 0-23 otherwise; ranges are enforced at
// resolution, not at parse.
type TimeOfDay struct {
	Hour     int
	Minute   int
	Second   int
	Meridiem Meridiem
}

// CalendarDate is a date written in a locale format ("15/03/2024",
// "31.12.2025"). It is distinct from Absolute, which ISO input produces.
type CalendarDate struct {
	Day   int
	Month int
	Year  int
}

// DayTime combines a day reference with a wall-clock time
// ("tomorrow at 3:30 pm", "morgen um 15:30").
type DayTime struct {
	Day  DayRef
	Time TimeOfDay
}

func (Now) isExpr()          {}
func (Relative) isExpr()     {}
func (Absolute) isExpr()     {}
func (DayRef) isExpr()       {}
func (TimeOfDay) isExpr()    {}
func (CalendarDate) isExpr() {}
func (DayTime) isExpr()      {}

// Unit is a unit of relative time. Second through Week have fixed lengths;
// Month and Year require calendar arithmetic and are never converted to a
// fixed duration.
type Unit int

const (
	Second Unit = iota
	Minute
	Hour
	Day
	Week
	Month
	Year
)

func (u Unit) String() string {
	switch u {
	case Second:
		return "second"
	case Minute:
		return "minute"
	case Hour:
		return "hour"
	case Day:
		return "day"
	case Week:
		return "week"
	case Month:
		return "month"
	case Year:
		return "year"
	}
	return "unknown"
}

// Direction orients a Relative expression with respect to the reference
// moment.
type Direction int

const (
	Future Direction = iota
	Past
)

func (d Direction) String() string {
	if d == Past {
		return "past"
	}
	return "future"
}

// DayKind discriminates the DayRef variants.
type DayKind int

const (
	Today DayKind = iota
	Yesterday
	Tomorrow
	OnWeekday
)

func (k DayKind) String() string {
	switch k {
	case Today:
		return "today"
	case Yesterday:
		return "yesterday"
	case Tomorrow:
		return "tomorrow"
	case OnWeekday:
		return "weekday"
	}
	return "unknown"
}

// Modifier alters how a weekday reference is resolved. NoModifier means the
// next occurrence including today; Next excludes today and searches forward;
// Last excludes today and searches backward.
type Modifier int

const (
	NoModifier Modifier = iota
	Next
	Last
)

func (m Modifier) String() string {
	switch m {
	case Next:
		return "next"
	case Last:
		return "last"
	}
	return "none"
}

// Meridiem is the AM/PM marker of a 12-hour clock time. NoMeridiem means the
// time was written on a 24-hour clock.
type Meridiem int

const (
	NoMeridiem Meridiem = iota
	AM
	PM
)

func (m Meridiem) String() string {
	switch m {
	case AM:
		return "am"
	case PM:
		return "pm"
	}
	return ""
}
