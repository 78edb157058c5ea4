package whence

import (
	"strconv"

	"github.com/whencehq/whence/internal/scan"
)

// scanISO matches the ISO 8601 shapes shared verbatim by every grammar:
//
//	2024-01-15
//	2024-01-15T14:30
//	2024-01-15 14:30:00
//	2024-01-15T14:30:00.123Z
//	2024-01-15T14:30:00+02:00
//
// The year takes exactly four digits; other numeric fields take one or two.
// Range validity (month 13, day 32) is left to resolution.
func scanISO(s *scan.Scanner) (Absolute, bool) {
	start := s.Pos()

	year, ok := s.Year()
	if !ok {
		return Absolute{}, false
	}
	if !s.Byte('-') {
		s.SetPos(start)
		return Absolute{}, false
	}
	month, ok := s.SmallInt()
	if !ok {
		s.SetPos(start)
		return Absolute{}, false
	}
	if !s.Byte('-') {
		s.SetPos(start)
		return Absolute{}, false
	}
	day, ok := s.SmallInt()
	if !ok {
		s.SetPos(start)
		return Absolute{}, false
	}

	abs := Absolute{Year: year, Month: month, Day: day}

	// Optional time-of-day, separated by 'T' or a single space.
	mark := s.Pos()
	if _, ok := s.AnyByte("T "); ok {
		hour, hourOK := s.SmallInt()
		if !hourOK || !s.Byte(':') {
			s.SetPos(mark)
			return abs, true
		}
		minute, minOK := s.SmallInt()
		if !minOK {
			s.SetPos(mark)
			return abs, true
		}

		abs.Hour = hour
		abs.Minute = minute
		abs.HasClock = true

		// Optional seconds and fractional seconds.
		secMark := s.Pos()
		if s.Byte(':') {
			if sec, ok := s.SmallInt(); ok {
				abs.Second = sec
				fracMark := s.Pos()
				if s.Byte('.') {
					if digits, ok := s.Digits(1, 0); ok {
						abs.Nanosecond = fractionToNanos(digits)
					} else {
						s.SetPos(fracMark)
					}
				}
			} else {
				s.SetPos(secMark)
			}
		}

		if zone, ok := scanZone(s); ok {
			abs.Zone = zone
		}
	}

	return abs, true
}

// scanZone matches "Z" or a "±HH[:MM]" offset, with the sign carried on the
// hours component.
func scanZone(s *scan.Scanner) (*Zone, bool) {
	if s.Literal("Z") {
		return &Zone{UTC: true}, true
	}

	start := s.Pos()
	sign, ok := s.AnyByte("+-")
	if !ok {
		return nil, false
	}
	hours, ok := s.SmallInt()
	if !ok {
		s.SetPos(start)
		return nil, false
	}

	minutes := 0
	minMark := s.Pos()
	if s.Byte(':') {
		if m, ok := s.SmallInt(); ok {
			minutes = m
		} else {
			s.SetPos(minMark)
		}
	}

	if sign == '-' {
		hours = -hours
	}
	return &Zone{Hours: hours, Minutes: minutes}, true
}

// fractionToNanos converts the digits after the decimal point to
// nanoseconds, truncating anything finer than nanosecond precision.
func fractionToNanos(digits string) int {
	if len(digits) > 9 {
		digits = digits[:9]
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	for i := len(digits); i < 9; i++ {
		n *= 10
	}
	return n
}
