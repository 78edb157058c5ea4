// Package whence parses natural language time expressions such as
// "in 5 minutes", "next friday at 3pm", or "vor 2 Stunden" into a small
// expression model, and resolves those expressions against a reference
// instant to produce concrete timestamps.
//
// Parsing and resolution are separate steps. Parse is purely syntactic
// and never consults a clock; Resolve applies an expression to a
// reference time using a Calendar for month arithmetic and zone rules.
// The split means "32/13/2024" parses successfully and only fails when
// resolved.
package whence

import (
	"strings"
	"time"
)

// Language selects the grammar used to parse an expression.
type Language int

const (
	English Language = iota
	German
)

func (l Language) String() string {
	switch l {
	case English:
		return "english"
	case German:
		return "german"
	}
	return "unknown"
}

// ParseLanguage converts a language name or ISO 639-1 code into a
// Language. It accepts "en", "english", "de", and "german", ignoring
// case.
func ParseLanguage(name string) (Language, error) {
	switch strings.ToLower(name) {
	case "en", "english":
		return English, nil
	case "de", "german":
		return German, nil
	}
	return 0, &UnsupportedError{Operation: "language " + name}
}

// Parse interprets input as a time expression in the given language.
// Surrounding whitespace is ignored, but the expression must otherwise
// span the entire input: "now!" is an error, not Now followed by junk.
func Parse(input string, lang Language) (Expr, error) {
	switch lang {
	case English:
		return parseEnglish(input)
	case German:
		return parseGerman(input)
	}
	return nil, &UnsupportedError{Operation: "language " + lang.String()}
}

// ParseAndResolve parses input in the given language and resolves it
// against the calendar's current time.
func ParseAndResolve(input string, lang Language, cal Calendar) (time.Time, error) {
	expr, err := Parse(input, lang)
	if err != nil {
		return time.Time{}, err
	}
	return Resolve(expr, cal.Now(), cal)
}
