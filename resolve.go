package whence

import (
	"fmt"
	"math"
	"time"
)

// Resolve applies a parsed expression to a reference instant and
// returns the concrete time it denotes. Resolution is where range
// validation happens: a parsed CalendarDate with month 13 fails here
// with an *InvalidDateError, not at parse time.
//
// Results are expressed in the calendar's location. Resolution is
// deterministic: the same expression, reference instant, and calendar
// always produce the same result.
func Resolve(expr Expr, now time.Time, cal Calendar) (time.Time, error) {
	switch e := expr.(type) {
	case Now:
		return now, nil
	case Relative:
		return resolveRelative(e, now, cal)
	case Absolute:
		return resolveAbsolute(e, cal)
	case DayRef:
		return resolveDayRef(e, now, cal)
	case TimeOfDay:
		return resolveTimeOfDay(e, now, cal)
	case DayTime:
		return resolveDayTime(e, now, cal)
	case CalendarDate:
		return resolveCalendarDate(e, cal)
	}
	return time.Time{}, &UnsupportedError{Operation: "expression"}
}

var unitSeconds = map[Unit]int64{
	Second: 1,
	Minute: 60,
	Hour:   3600,
	Day:    86400,
	Week:   7 * 86400,
}

func resolveRelative(e Relative, now time.Time, cal Calendar) (time.Time, error) {
	desc := fmt.Sprintf("%d %s %s", e.Amount, e.Unit, e.Direction)

	if e.Amount < 0 {
		return time.Time{}, &DateCalculationError{
			Message: "relative amount must not be negative",
			Context: desc,
		}
	}

	switch e.Unit {
	case Month, Year:
		months := e.Amount
		if e.Unit == Year {
			if months > math.MaxInt64/12 {
				return time.Time{}, &OverflowError{Operation: desc}
			}
			months *= 12
		}
		if e.Direction == Past {
			months = -months
		}
		t, err := cal.AddMonths(now, months)
		if err != nil {
			return time.Time{}, &DateCalculationError{Message: err.Error(), Context: desc}
		}
		return t, nil
	}

	secs, ok := unitSeconds[e.Unit]
	if !ok {
		return time.Time{}, &UnsupportedError{Operation: "unit " + e.Unit.String()}
	}
	if e.Amount > math.MaxInt64/secs/int64(time.Second) {
		return time.Time{}, &OverflowError{Operation: desc}
	}

	d := time.Duration(e.Amount*secs) * time.Second
	if e.Direction == Past {
		d = -d
	}
	return now.Add(d), nil
}

func resolveAbsolute(e Absolute, cal Calendar) (time.Time, error) {
	if err := validateDate(e.Year, e.Month, e.Day); err != nil {
		return time.Time{}, err
	}
	if err := validateTime(e.Hour, e.Minute, e.Second); err != nil {
		return time.Time{}, err
	}

	if e.Zone != nil {
		offset, err := zoneOffsetSeconds(e.Zone)
		if err != nil {
			return time.Time{}, err
		}
		loc := time.UTC
		if offset != 0 {
			loc = time.FixedZone("", offset)
		}
		t := time.Date(e.Year, time.Month(e.Month), e.Day, e.Hour, e.Minute, e.Second, e.Nanosecond, loc)
		return t.In(cal.Location()), nil
	}

	return makeLocal(e.Year, e.Month, e.Day, e.Hour, e.Minute, e.Second, e.Nanosecond, cal.Location())
}

func resolveDayRef(e DayRef, now time.Time, cal Calendar) (time.Time, error) {
	day, err := dayRefDate(e, now)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := day.Date()
	return makeLocal(y, int(m), d, 0, 0, 0, 0, cal.Location())
}

func resolveTimeOfDay(e TimeOfDay, now time.Time, cal Calendar) (time.Time, error) {
	hour, err := clockHour(e)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := now.Date()
	return makeLocal(y, int(m), d, hour, e.Minute, e.Second, 0, cal.Location())
}

func resolveDayTime(e DayTime, now time.Time, cal Calendar) (time.Time, error) {
	day, err := dayRefDate(e.Day, now)
	if err != nil {
		return time.Time{}, err
	}
	hour, err := clockHour(e.Time)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := day.Date()
	return makeLocal(y, int(m), d, hour, e.Time.Minute, e.Time.Second, 0, cal.Location())
}

func resolveCalendarDate(e CalendarDate, cal Calendar) (time.Time, error) {
	if err := validateDate(e.Year, e.Month, e.Day); err != nil {
		return time.Time{}, err
	}
	return makeLocal(e.Year, e.Month, e.Day, 0, 0, 0, 0, cal.Location())
}

// dayRefDate returns the date named by a day reference, relative to
// now. The time of day carries over from now and is discarded by the
// callers.
func dayRefDate(e DayRef, now time.Time) (time.Time, error) {
	switch e.Kind {
	case Today:
		return now, nil
	case Yesterday:
		return now.AddDate(0, 0, -1), nil
	case Tomorrow:
		return now.AddDate(0, 0, 1), nil
	case OnWeekday:
		return now.AddDate(0, 0, weekdayOffset(now.Weekday(), e.Weekday, e.Modifier)), nil
	}
	return time.Time{}, &UnsupportedError{Operation: "day reference"}
}

// weekdayOffset returns the signed number of days from current to the
// occurrence of target selected by the modifier. Without a modifier the
// current day counts as a match (offset 0). Next always moves forward
// at least one day; Last always moves back at least one day.
func weekdayOffset(current, target time.Weekday, mod Modifier) int {
	diff := mondayIndex(target) - mondayIndex(current)
	switch mod {
	case Next:
		if diff <= 0 {
			diff += 7
		}
	case Last:
		if diff >= 0 {
			diff -= 7
		}
	default:
		if diff < 0 {
			diff += 7
		}
	}
	return diff
}

// mondayIndex maps a weekday onto a Monday-based 0..6 scale.
func mondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// clockHour validates a time of day and converts it to a 24-hour hour.
// With a meridiem the hour must be 1 through 12; 12am is hour 0 and
// 12pm is hour 12.
func clockHour(e TimeOfDay) (int, error) {
	hour := e.Hour
	switch e.Meridiem {
	case AM:
		if hour < 1 || hour > 12 {
			return 0, &InvalidTimeError{Hour: e.Hour, Minute: e.Minute, Second: e.Second}
		}
		if hour == 12 {
			hour = 0
		}
	case PM:
		if hour < 1 || hour > 12 {
			return 0, &InvalidTimeError{Hour: e.Hour, Minute: e.Minute, Second: e.Second}
		}
		if hour != 12 {
			hour += 12
		}
	}
	if err := validateTime(hour, e.Minute, e.Second); err != nil {
		return 0, err
	}
	return hour, nil
}

func validateDate(year, month, day int) error {
	if month < 1 || month > 12 || day < 1 || day > daysIn(year, time.Month(month)) {
		return &InvalidDateError{Year: year, Month: month, Day: day}
	}
	return nil
}

func validateTime(hour, minute, second int) error {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return &InvalidTimeError{Hour: hour, Minute: minute, Second: second}
	}
	return nil
}

// zoneOffsetSeconds converts a parsed zone to an offset east of UTC.
// The sign parsed on the hours applies to the whole offset, so -05:30
// is -19800 seconds.
func zoneOffsetSeconds(z *Zone) (int, error) {
	if z.UTC {
		return 0, nil
	}
	if z.Hours < -12 || z.Hours > 14 || z.Minutes < 0 || z.Minutes > 59 {
		return 0, &InvalidOffsetError{Hours: z.Hours, Minutes: z.Minutes}
	}
	secs := z.Hours * 3600
	if z.Hours < 0 {
		secs -= z.Minutes * 60
	} else {
		secs += z.Minutes * 60
	}
	return secs, nil
}

// makeLocal constructs a wall-clock time in loc, rejecting times that
// do not exist there. time.Date silently normalizes instants that fall
// inside a daylight saving gap; the component round trip catches that.
func makeLocal(year, month, day, hour, minute, sec, nsec int, loc *time.Location) (time.Time, error) {
	t := time.Date(year, time.Month(month), day, hour, minute, sec, nsec, loc)

	ry, rm, rd := t.Date()
	rh, rmin, rs := t.Clock()
	if ry != year || int(rm) != month || rd != day || rh != hour || rmin != minute || rs != sec {
		return time.Time{}, &AmbiguousTimeError{
			Message: fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d does not exist in %s",
				year, month, day, hour, minute, sec, loc),
		}
	}
	return t, nil
}
