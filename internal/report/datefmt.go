// Package report renders the collected pull-request data into an Excel
// workbook.
package report

import (
	"time"

	"github.com/goodsign/monday"
)

// Display dates are Indonesian long dates, independent of the machine-readable
// YYYY-MM-DD format the search filter uses.
const (
	longDateLayout     = "Monday, 2 January 2006"
	longDateTimeLayout = "Monday, 2 January 2006 15:04"
)

// FormatLongDate renders a timestamp as an Indonesian long date,
// e.g. "Senin, 5 Januari 2026".
func FormatLongDate(t time.Time) string {
	return monday.Format(t, longDateLayout, monday.LocaleIdID)
}

// FormatLongDateTime renders a timestamp as an Indonesian long date with
// time of day, e.g. "Senin, 5 Januari 2026 14:30".
func FormatLongDateTime(t time.Time) string {
	return monday.Format(t, longDateTimeLayout, monday.LocaleIdID)
}
