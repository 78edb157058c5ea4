package whence

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{
			&ParseError{Message: "unexpected trailing input", Input: "now!", Position: 3},
			`cannot parse "now!" as a time expression: unexpected trailing input (at offset 3)`,
		},
		{
			&ParseError{Message: "no time expression recognized", Input: "banana", Position: -1},
			`cannot parse "banana" as a time expression: no time expression recognized`,
		},
		{
			&InvalidDateError{Year: 2024, Month: 13, Day: 32},
			"invalid date: year=2024, month=13, day=32",
		},
		{
			&InvalidTimeError{Hour: 25, Minute: 0, Second: 0},
			"invalid time: 25:00:00",
		},
		{
			&InvalidOffsetError{Hours: 15, Minutes: 0},
			"invalid timezone offset: +15:00",
		},
		{
			&InvalidOffsetError{Hours: -13, Minutes: 30},
			"invalid timezone offset: -13:30",
		},
		{
			&DateCalculationError{Message: "relative amount must not be negative", Context: "-1 minute future"},
			"date calculation error: relative amount must not be negative (-1 minute future)",
		},
		{
			&DateCalculationError{Message: "no result"},
			"date calculation error: no result",
		},
		{
			&AmbiguousTimeError{Message: "2024-03-10 02:30:00 does not exist in America/New_York"},
			"ambiguous local time: 2024-03-10 02:30:00 does not exist in America/New_York",
		},
		{
			&OverflowError{Operation: "9223372036854775807 year future"},
			"arithmetic overflow: 9223372036854775807 year future",
		},
		{
			&UnsupportedError{Operation: "language fr"},
			"unsupported operation: language fr",
		},
		{
			&BackendError{Message: "clock unavailable", Backend: "system"},
			"backend error (system): clock unavailable",
		},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Error())
	}
}

func TestErrorPredicates(t *testing.T) {
	parseErr := parseErrorf("x", 0, "no time expression recognized")
	assert.True(t, IsParseError(parseErr))
	assert.True(t, IsParseError(fmt.Errorf("resolving: %w", parseErr)))
	assert.False(t, IsParseError(&InvalidDateError{}))

	assert.True(t, IsInvalidDate(&InvalidDateError{Year: 2024, Month: 13, Day: 1}))
	assert.True(t, IsInvalidTime(&InvalidTimeError{Hour: 25}))
	assert.True(t, IsAmbiguousTime(&AmbiguousTimeError{Message: "gap"}))
	assert.False(t, IsInvalidDate(parseErr))
}
