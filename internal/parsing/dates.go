package parsing

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// dateLayouts are tried in order; the first successful parse wins.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01",
	"01/02/2006",
	"01/2006",
	"1/2006",
	"Jan 2006",
	"January 2006",
	"Jan. 2006",
	"2006",
}

// presentWords mark an ongoing end date.
var presentWords = map[string]bool{
	"present": true,
	"current": true,
	"now":     true,
	"today":   true,
	"ongoing": true,
}

// ParseDate parses a resume date in any accepted layout. Blank input and unknown layouts
// return a *DateError.
func ParseDate(value string) (time.Time, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return time.Time{}, &DateError{Message: "date is empty"}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	// month names in any case: "JAN 2020", "september 2019"
	if t, err := time.Parse("January 2006", titleCase(v)); err == nil {
		return t, nil
	}
	if t, err := time.Parse("Jan 2006", titleCase(v)); err == nil {
		return t, nil
	}
	return time.Time{}, &DateError{Value: v, Message: "unrecognized date format"}
}

// IsPresent reports whether value denotes an ongoing period ("Present", "current", ...).
func IsPresent(value string) bool {
	return presentWords[strings.ToLower(strings.TrimSpace(value))]
}

// IsValidDate reports whether value parses with ParseDate.
func IsValidDate(value string) bool {
	_, err := ParseDate(value)
	return err == nil
}

func titleCase(v string) string {
	words := strings.Fields(strings.ToLower(v))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
