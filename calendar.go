package whence

import "time"

// Calendar supplies the capabilities resolution needs from a date-time
// backend: a clock, a location, and month arithmetic. Fixed-length
// units (seconds through weeks) are handled by Resolve itself; months
// and years go through AddMonths because their length varies.
type Calendar interface {
	// Now returns the current instant.
	Now() time.Time

	// Location returns the zone resolved results are expressed in.
	Location() *time.Location

	// AddMonths shifts t by the given number of calendar months,
	// which may be negative. When the target month is shorter than
	// t's day-of-month, the day clamps to the last day of the target
	// month (Jan 31 plus one month is Feb 28 or Feb 29).
	AddMonths(t time.Time, months int64) (time.Time, error)
}

// SystemCalendar is a Calendar backed by the wall clock. The zero value
// uses the system's local zone.
type SystemCalendar struct {
	// Loc overrides the zone used for Now and Location. Nil means
	// time.Local.
	Loc *time.Location
}

func (c SystemCalendar) location() *time.Location {
	if c.Loc != nil {
		return c.Loc
	}
	return time.Local
}

func (c SystemCalendar) Now() time.Time           { return time.Now().In(c.location()) }
func (c SystemCalendar) Location() *time.Location { return c.location() }
func (c SystemCalendar) AddMonths(t time.Time, months int64) (time.Time, error) {
	return addMonthsClamped(t, months)
}

// FixedCalendar is a Calendar frozen at a single instant. It exists to
// make resolution deterministic in tests and for the --now CLI flag.
type FixedCalendar struct {
	Instant time.Time
}

func (c FixedCalendar) Now() time.Time           { return c.Instant }
func (c FixedCalendar) Location() *time.Location { return c.Instant.Location() }
func (c FixedCalendar) AddMonths(t time.Time, months int64) (time.Time, error) {
	return addMonthsClamped(t, months)
}

// addMonthsClamped implements calendar month arithmetic with day
// clamping. time.Time.AddDate normalizes overflow instead (Jan 31 plus
// one month becomes Mar 2 or Mar 3), which is not what a human asking
// for "in 1 month" means.
func addMonthsClamped(t time.Time, months int64) (time.Time, error) {
	year, month, day := t.Date()

	total := int64(year)*12 + int64(month-1) + months
	newYear := total / 12
	newMonth := total % 12
	if newMonth < 0 {
		newMonth += 12
		newYear--
	}

	y := int(newYear)
	m := time.Month(newMonth + 1)
	if max := daysIn(y, m); day > max {
		day = max
	}

	hour, min, sec := t.Clock()
	return time.Date(y, m, day, hour, min, sec, t.Nanosecond(), t.Location()), nil
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
