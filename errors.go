package whence

import (
	"errors"
	"fmt"
)

// ParseError reports that input did not match any production of the selected
// grammar, or that a matched production left trailing input behind. Position
// is the byte offset where scanning stopped, or -1 when unknown.
type ParseError struct {
	Message  string
	Input    string
	Position int
}

func (e *ParseError) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("cannot parse %q as a time expression: %s (at offset %d)", e.Input, e.Message, e.Position)
	}
	return fmt.Sprintf("cannot parse %q as a time expression: %s", e.Input, e.Message)
}

// DateCalculationError reports that calendar arithmetic produced no valid
// result, such as a negative month amount. Context carries any detail from
// the calculation that failed.
type DateCalculationError struct {
	Message string
	Context string
}

func (e *DateCalculationError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("date calculation error: %s (%s)", e.Message, e.Context)
	}
	return "date calculation error: " + e.Message
}

// InvalidDateError reports date components that do not name a real calendar
// day, such as month 13 or February 30.
type InvalidDateError struct {
	Year  int
	Month int
	Day   int
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date: year=%d, month=%d, day=%d", e.Year, e.Month, e.Day)
}

// InvalidTimeError reports wall-clock components outside their valid ranges.
type InvalidTimeError struct {
	Hour   int
	Minute int
	Second int
}

func (e *InvalidTimeError) Error() string {
	return fmt.Sprintf("invalid time: %02d:%02d:%02d", e.Hour, e.Minute, e.Second)
}

// InvalidOffsetError reports a timezone offset outside the representable
// range of -12:00 to +14:00.
type InvalidOffsetError struct {
	Hours   int
	Minutes int
}

func (e *InvalidOffsetError) Error() string {
	return fmt.Sprintf("invalid timezone offset: %+03d:%02d", e.Hours, e.Minutes)
}

// AmbiguousTimeError reports a local wall-clock time that maps to zero or
// more than one instant, as happens inside a DST transition.
type AmbiguousTimeError struct {
	Message string
}

func (e *AmbiguousTimeError) Error() string {
	return "ambiguous local time: " + e.Message
}

// OverflowError reports integer overflow during a unit conversion, such as
// a year amount too large to express in months.
type OverflowError struct {
	Operation string
}

func (e *OverflowError) Error() string {
	return "arithmetic overflow: " + e.Operation
}

// UnsupportedError reports an operation the library or a backend cannot
// perform, such as parsing with an unknown language value.
type UnsupportedError struct {
	Operation string
}

func (e *UnsupportedError) Error() string {
	return "unsupported operation: " + e.Operation
}

// BackendError surfaces an opaque failure from a Calendar implementation.
type BackendError struct {
	Message string
	Backend string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend error (%s): %s", e.Backend, e.Message)
}

// IsParseError reports whether err is (or wraps) a ParseError.
func IsParseError(err error) bool {
	var e *ParseError
	return errors.As(err, &e)
}

// IsInvalidDate reports whether err is (or wraps) an InvalidDateError.
func IsInvalidDate(err error) bool {
	var e *InvalidDateError
	return errors.As(err, &e)
}

// IsInvalidTime reports whether err is (or wraps) an InvalidTimeError.
func IsInvalidTime(err error) bool {
	var e *InvalidTimeError
	return errors.As(err, &e)
}

// IsAmbiguousTime reports whether err is (or wraps) an AmbiguousTimeError.
func IsAmbiguousTime(err error) bool {
	var e *AmbiguousTimeError
	return errors.As(err, &e)
}

func parseErrorf(input string, position int, format string, args ...any) error {
	return &ParseError{
		Message:  fmt.Sprintf(format, args...),
		Input:    input,
		Position: position,
	}
}
