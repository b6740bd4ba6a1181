// Package format turns clock times and stopwatch durations into display strings.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	ut "github.com/go-playground/universal-translator"
)

// DefaultLocale is used for Date and as the fallback for DateIn.
const DefaultLocale = "en"

var translators = ut.New(en.New(), en.New(), en_GB.New(), fr.New(), de.New(), es.New())

// Clock renders t as H:MM:SS in 24-hour mode or h:MM:SS AM/PM in 12-hour
// mode. The hour is not zero-padded.
func Clock(t time.Time, is24Hour bool) string {
	h, m, s := t.Clock()

	if is24Hour {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}

	return fmt.Sprintf("%d:%02d:%02d %s", Hour12(h), m, s, Meridiem(h))
}

// Hour12 maps a 0-23 hour onto 1-12; both 0 and 12 become 12.
func Hour12(hour int) int {
	if h := hour % 12; h != 0 {
		return h
	}

	return 12
}

// Meridiem returns "PM" for hours 12-23 and "AM" otherwise.
func Meridiem(hour int) string {
	if hour >= 12 {
		return "PM"
	}

	return "AM"
}

// Date renders the long English date, e.g. "Tuesday, March 5, 2024".
func Date(t time.Time) string {
	return DateIn(t, DefaultLocale)
}

// DateIn renders the long date for locale. Unknown locales use English.
func DateIn(t time.Time, locale string) string {
	trans, _ := Translator(locale)

	return trans.FmtDateFull(t)
}

// Translator resolves a locale such as "fr", "en-GB" or "en_GB". When only
// the base language is known that is used; the bool is false when the
// English fallback was returned.
func Translator(locale string) (locales.Translator, bool) {
	name := strings.ReplaceAll(strings.TrimSpace(locale), "-", "_")

	if trans, found := translators.GetTranslator(name); found {
		return trans, true
	}

	if base, _, ok := strings.Cut(name, "_"); ok {
		if trans, found := translators.GetTranslator(base); found {
			return trans, true
		}
	}

	return translators.GetFallback(), false
}

// Stopwatch renders elapsed milliseconds as MM:SS.CC. Minutes are not
// bounded and grow past two digits.
func Stopwatch(ms int64) string {
	if ms < 0 {
		ms = 0
	}

	minutes := ms / 60000
	seconds := (ms % 60000) / 1000
	centis := (ms % 1000) / 10

	return fmt.Sprintf("%02d:%02d.%02d", minutes, seconds, centis)
}
