package report

import (
	"strings"
	"time"
)

// dateLayout is the format written into date cells.
const dateLayout = "2006-01-02"

// invariantLayouts are tried first, assuming local time.
var invariantLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
	time.RFC3339,
}

// localeLayouts are the day-first fallbacks matching the Dutch-language
// templates this toolkit targets.
var localeLayouts = []string{
	"02-01-2006",
	"2-1-2006",
	"02/01/2006",
	"2/1/2006",
	"02.01.2006",
	"2 January 2006",
}

// ResolveDate parses raw with the invariant layouts, then the locale
// fallbacks, and returns the date formatted as yyyy-MM-dd. When every
// parse fails it returns now() and ok=false so the caller can warn.
func ResolveDate(raw string, now func() time.Time) (string, bool) {
	if now == nil {
		now = time.Now
	}

	s := strings.TrimSpace(raw)
	if s != "" {
		for _, layout := range invariantLayouts {
			if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
				return t.Format(dateLayout), true
			}
		}
		for _, layout := range localeLayouts {
			if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
				return t.Format(dateLayout), true
			}
		}
	}
	return now().Format(dateLayout), false
}
