package locale

import (
	"strings"

	"github.com/go-drift/dyntype/pkg/calendar"
)

// DefaultOrdering is used whenever a locale's long date pattern does not
// yield exactly one year, one month and one day field.
var DefaultOrdering = [3]calendar.Component{calendar.Year, calendar.Month, calendar.Day}

// patternFields returns the field letters of a CLDR date pattern in order of
// appearance. Quoted literals, punctuation, whitespace and non-ASCII text are
// skipped and runs of the same letter ("MMMM") count as one field.
func patternFields(pattern string) []rune {
	var fields []rune
	quoted := false
	prev := rune(0)
	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\'' {
			if i+1 < len(runes) && runes[i+1] == '\'' {
				i++
				prev = 0
				continue
			}
			quoted = !quoted
			prev = 0
			continue
		}
		if quoted || !isASCIILetter(r) {
			prev = 0
			continue
		}
		if r != prev {
			fields = append(fields, r)
		}
		prev = r
	}
	return fields
}

// OrderingFromPattern derives the display order of the year, month and day
// columns from a long date pattern such as "MMMM d, y" or "y年M月d日".
func OrderingFromPattern(pattern string) ([3]calendar.Component, bool) {
	fields := patternFields(pattern)
	if len(fields) != 3 {
		return DefaultOrdering, false
	}

	var ordering [3]calendar.Component
	seen := make(map[calendar.Component]bool, 3)
	for i, f := range fields {
		c, ok := calendar.ComponentForSymbol(f)
		if !ok || seen[c] {
			return DefaultOrdering, false
		}
		seen[c] = true
		ordering[i] = c
	}
	return ordering, true
}

// hasField reports whether the pattern contains the field letter outside of
// quoted literals.
func hasField(pattern string, field rune) bool {
	for _, f := range patternFields(pattern) {
		if f == field {
			return true
		}
	}
	return false
}

const (
	probeYear  = "2033"
	probeMonth = "11"
	probeDay   = "22"

	markYear  = '\x01'
	markMonth = '\x02'
	markDay   = '\x03'
)

// patternFromSample turns a formatted probe date back into a CLDR pattern.
// Any month spelling in monthForms is recognized; the first match wins and
// decides the width of the month field.
func patternFromSample(sample string, monthForms []monthForm) string {
	s := strings.Replace(sample, probeYear, string(markYear), 1)

	monthField := ""
	for _, form := range monthForms {
		if form.text != "" && strings.Contains(s, form.text) {
			s = strings.Replace(s, form.text, string(markMonth), 1)
			monthField = form.field
			break
		}
	}
	s = strings.Replace(s, probeDay, string(markDay), 1)

	var b strings.Builder
	var literal []rune
	flush := func() {
		if len(literal) == 0 {
			return
		}
		text := strings.ReplaceAll(string(literal), "'", "''")
		if strings.IndexFunc(text, isASCIILetter) >= 0 {
			b.WriteString("'" + text + "'")
		} else {
			b.WriteString(text)
		}
		literal = literal[:0]
	}
	for _, r := range s {
		switch r {
		case markYear:
			flush()
			b.WriteString("y")
		case markMonth:
			flush()
			b.WriteString(monthField)
		case markDay:
			flush()
			b.WriteString("d")
		default:
			literal = append(literal, r)
		}
	}
	flush()
	return b.String()
}

type monthForm struct {
	text  string
	field string
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
