package locale

import (
	stderrors "errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/hu"
	"github.com/go-playground/locales/it"
	"github.com/go-playground/locales/ja"
	"github.com/go-playground/locales/ko"
	"github.com/go-playground/locales/nl"
	"github.com/go-playground/locales/pt_BR"
	"github.com/go-playground/locales/ru"
	"github.com/go-playground/locales/zh"
	"golang.org/x/text/language"
)

// ErrUnknownLocale is returned by Lookup when no bundled locale matches.
var ErrUnknownLocale = stderrors.New("locale: no matching locale")

type entry struct {
	tag language.Tag
	new func() locales.Translator
}

// bundled lists the locales shipped with the package. The first entry is the
// fallback used by Default.
var bundled = []entry{
	{language.AmericanEnglish, en_US.New},
	{language.English, en.New},
	{language.BritishEnglish, en_GB.New},
	{language.German, de.New},
	{language.Dutch, nl.New},
	{language.French, fr.New},
	{language.Spanish, es.New},
	{language.Italian, it.New},
	{language.Japanese, ja.New},
	{language.Korean, ko.New},
	{language.Chinese, zh.New},
	{language.Hungarian, hu.New},
	{language.Russian, ru.New},
	{language.BrazilianPortuguese, pt_BR.New},
}

var (
	matcher = language.NewMatcher(Available())

	cacheMu sync.Mutex
	cache   = make(map[int]Locale)
)

// Available returns the tags of the bundled locales.
func Available() []language.Tag {
	tags := make([]language.Tag, len(bundled))
	for i, e := range bundled {
		tags[i] = e.tag
	}
	return tags
}

// Default returns the en-US locale.
func Default() Locale {
	return load(0)
}

// Lookup returns the bundled locale that best matches id. Both BCP 47
// ("pt-BR") and POSIX style ("pt_BR") identifiers are accepted.
func Lookup(id string) (Locale, error) {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(id), "_", "-"))
	if err != nil {
		return Locale{}, fmt.Errorf("%w: %q: %v", ErrUnknownLocale, id, err)
	}
	_, index, confidence := matcher.Match(tag)
	// The matcher falls back to the first bundled tag for any language it
	// lacks, so a match only counts when the base languages agree.
	want, _ := tag.Base()
	got, _ := bundled[index].tag.Base()
	if confidence == language.No || want != got {
		return Locale{}, fmt.Errorf("%w: %q", ErrUnknownLocale, id)
	}
	return load(index), nil
}

// MustLookup is like Lookup but panics when no locale matches.
func MustLookup(id string) Locale {
	l, err := Lookup(id)
	if err != nil {
		panic("locale: " + err.Error())
	}
	return l
}

func load(index int) Locale {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if l, ok := cache[index]; ok {
		return l
	}
	e := bundled[index]
	l := FromTranslator(e.tag, e.new())
	cache[index] = l
	return l
}

// FromTranslator builds a Locale from CLDR data. The long date and short time
// patterns are recovered by formatting probe values and reading the fields
// back out of the result.
func FromTranslator(tag language.Tag, t locales.Translator) Locale {
	l := Locale{Tag: tag}
	for m := time.January; m <= time.December; m++ {
		l.MonthNames[m-1] = t.MonthWide(m)
		l.ShortMonthNames[m-1] = t.MonthAbbreviated(m)
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		l.ShortWeekdayNames[d] = t.WeekdayAbbreviated(d)
	}

	probe := time.Date(2033, time.November, 22, 13, 5, 0, 0, time.UTC)
	l.LongDatePattern = patternFromSample(t.FmtDateLong(probe), []monthForm{
		{text: t.MonthWide(time.November), field: "MMMM"},
		{text: t.MonthAbbreviated(time.November), field: "MMM"},
		{text: probeMonth, field: "M"},
	})

	morning := t.FmtTimeShort(time.Date(2033, time.November, 22, 1, 5, 0, 0, time.UTC))
	afternoon := t.FmtTimeShort(probe)
	l.HourPattern = "HH:mm"
	if !strings.Contains(afternoon, "13") {
		l.AM = meridiemText(morning)
		l.PM = meridiemText(afternoon)
		if l.PM != "" && strings.Index(afternoon, l.PM) < strings.Index(afternoon, "1") {
			l.HourPattern = "a h:mm"
		} else {
			l.HourPattern = "h:mm a"
		}
	}
	return l
}

// meridiemText strips the clock digits from a formatted time, leaving the
// AM/PM symbol.
func meridiemText(s string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) || r == ':' || r == '.' {
			return -1
		}
		return r
	}, s))
}
