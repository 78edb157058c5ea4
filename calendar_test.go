package whence

import (
	"testing"
	"time"
)

func TestAddMonthsClamped(t *testing.T) {
	tests := []struct {
		start  time.Time
		months int64
		want   time.Time
	}{
		{utc(2024, time.January, 15, 10, 0, 0), 1, utc(2024, time.February, 15, 10, 0, 0)},
		{utc(2024, time.January, 31, 10, 0, 0), 1, utc(2024, time.February, 29, 10, 0, 0)},
		{utc(2023, time.January, 31, 10, 0, 0), 1, utc(2023, time.February, 28, 10, 0, 0)},
		{utc(2024, time.October, 31, 10, 0, 0), 1, utc(2024, time.November, 30, 10, 0, 0)},
		{utc(2024, time.March, 31, 10, 0, 0), -1, utc(2024, time.February, 29, 10, 0, 0)},
		{utc(2024, time.January, 15, 10, 0, 0), -1, utc(2023, time.December, 15, 10, 0, 0)},
		{utc(2024, time.January, 15, 10, 0, 0), 12, utc(2025, time.January, 15, 10, 0, 0)},
		{utc(2024, time.February, 29, 10, 0, 0), 12, utc(2025, time.February, 28, 10, 0, 0)},
		{utc(2024, time.February, 29, 10, 0, 0), -12, utc(2023, time.February, 28, 10, 0, 0)},
		{utc(2024, time.January, 15, 10, 0, 0), 25, utc(2026, time.February, 15, 10, 0, 0)},
		{utc(2024, time.January, 15, 10, 0, 0), 0, utc(2024, time.January, 15, 10, 0, 0)},
	}
	for _, tt := range tests {
		got, err := addMonthsClamped(tt.start, tt.months)
		if err != nil {
			t.Errorf("addMonthsClamped(%v, %d) returned error: %v", tt.start, tt.months, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("addMonthsClamped(%v, %d) = %v, want %v", tt.start, tt.months, got, tt.want)
		}
	}
}

func TestDaysIn(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2000, time.February, 29},
		{1900, time.February, 28},
		{2024, time.January, 31},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}
	for _, tt := range tests {
		if got := daysIn(tt.year, tt.month); got != tt.want {
			t.Errorf("daysIn(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestSystemCalendarLocation(t *testing.T) {
	var cal SystemCalendar
	if got := cal.Location(); got != time.Local {
		t.Errorf("zero SystemCalendar location = %v, want Local", got)
	}

	cal = SystemCalendar{Loc: time.UTC}
	if got := cal.Location(); got != time.UTC {
		t.Errorf("Location() = %v, want UTC", got)
	}
	if got := cal.Now().Location(); got != time.UTC {
		t.Errorf("Now().Location() = %v, want UTC", got)
	}
}

func TestFixedCalendar(t *testing.T) {
	instant := time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)
	cal := FixedCalendar{Instant: instant}
	if !cal.Now().Equal(instant) {
		t.Errorf("Now() = %v, want %v", cal.Now(), instant)
	}
	if cal.Location() != time.UTC {
		t.Errorf("Location() = %v, want UTC", cal.Location())
	}
}
