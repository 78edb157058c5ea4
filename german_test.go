package whence

import (
	"reflect"
	"testing"
	"time"
)

func TestParseGerman(t *testing.T) {
	tests := []struct {
		input string
		want  Expr
	}{
		{"jetzt", Now{}},
		{"JETZT", Now{}},
		{" jetzt ", Now{}},

		{"in 5 Minuten", Relative{Amount: 5, Unit: Minute, Direction: Future}},
		{"in einer Stunde", Relative{Amount: 1, Unit: Hour, Direction: Future}},
		{"in einem Monat", Relative{Amount: 1, Unit: Month, Direction: Future}},
		{"in zwei Wochen", Relative{Amount: 2, Unit: Week, Direction: Future}},
		{"in 10 sek", Relative{Amount: 10, Unit: Second, Direction: Future}},
		{"in 3 std", Relative{Amount: 3, Unit: Hour, Direction: Future}},

		{"vor 5 Minuten", Relative{Amount: 5, Unit: Minute, Direction: Past}},
		{"vor einem Jahr", Relative{Amount: 1, Unit: Year, Direction: Past}},
		{"vor zehn Tagen", Relative{Amount: 10, Unit: Day, Direction: Past}},
		{"VOR 2 STUNDEN", Relative{Amount: 2, Unit: Hour, Direction: Past}},

		{"heute", DayRef{Kind: Today}},
		{"gestern", DayRef{Kind: Yesterday}},
		{"morgen", DayRef{Kind: Tomorrow}},
		{"montag", DayRef{Kind: OnWeekday, Weekday: time.Monday}},
		{"Mittwoch", DayRef{Kind: OnWeekday, Weekday: time.Wednesday}},
		{"fr", DayRef{Kind: OnWeekday, Weekday: time.Friday}},
		{"nächsten Montag", DayRef{Kind: OnWeekday, Weekday: time.Monday, Modifier: Next}},
		{"nächste Freitag", DayRef{Kind: OnWeekday, Weekday: time.Friday, Modifier: Next}},
		{"letzten Sonntag", DayRef{Kind: OnWeekday, Weekday: time.Sunday, Modifier: Last}},
		{"NÄCHSTEN DIENSTAG", DayRef{Kind: OnWeekday, Weekday: time.Tuesday, Modifier: Next}},

		{"14:30", TimeOfDay{Hour: 14, Minute: 30}},
		{"14:30:45", TimeOfDay{Hour: 14, Minute: 30, Second: 45}},
		{"14:30 Uhr", TimeOfDay{Hour: 14, Minute: 30}},
		{"9:05 uhr", TimeOfDay{Hour: 9, Minute: 5}},

		{"15.03.2024", CalendarDate{Day: 15, Month: 3, Year: 2024}},
		{"01.12.2023", CalendarDate{Day: 1, Month: 12, Year: 2023}},
		{"31.02.2024", CalendarDate{Day: 31, Month: 2, Year: 2024}},

		{
			"morgen um 15:30",
			DayTime{
				Day:  DayRef{Kind: Tomorrow},
				Time: TimeOfDay{Hour: 15, Minute: 30},
			},
		},
		{
			"morgen um 15:30 Uhr",
			DayTime{
				Day:  DayRef{Kind: Tomorrow},
				Time: TimeOfDay{Hour: 15, Minute: 30},
			},
		},
		{
			"nächsten Montag um 9:00",
			DayTime{
				Day:  DayRef{Kind: OnWeekday, Weekday: time.Monday, Modifier: Next},
				Time: TimeOfDay{Hour: 9},
			},
		},

		{"2024-01-15", Absolute{Year: 2024, Month: 1, Day: 15}},
		{
			"2024-01-15T14:30:00Z",
			Absolute{
				Year: 2024, Month: 1, Day: 15, Hour: 14, Minute: 30, HasClock: true,
				Zone: &Zone{UTC: true},
			},
		},
	}

	for _, tt := range tests {
		got, err := parseGerman(tt.input)
		if err != nil {
			t.Errorf("parseGerman(%q) returned error: %v", tt.input, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseGerman(%q) = %#v, want %#v", tt.input, got, tt.want)
		}
	}
}

func TestParseGermanErrors(t *testing.T) {
	tests := []string{
		"",
		"jetzt!",
		"in Minuten",
		"vor 5",
		"5 Minuten",
		"Monat",
		"morgen um",
		"um 15:30",
		"now",
		"5 minutes ago",
		"15/03/2024",
		"15.03.24",
	}
	for _, input := range tests {
		got, err := parseGerman(input)
		if err == nil {
			t.Errorf("parseGerman(%q) = %#v, want error", input, got)
			continue
		}
		if !IsParseError(err) {
			t.Errorf("parseGerman(%q) error = %T, want *ParseError", input, err)
		}
	}
}
