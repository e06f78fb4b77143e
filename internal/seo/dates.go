package seo

import (
	"fmt"
	"time"

	"streamseo/internal/config"
)

// DateParts bundles the localized renderings of one instant.
type DateParts struct {
	// Long is "martes 14 de noviembre de 2023".
	Long string
	// Short is "14/11/2023".
	Short string
	// Clock is zero-padded 24-hour "23:13".
	Clock string
	// ISO is the machine-readable RFC 3339 instant.
	ISO string
}

// DateFormatter renders Unix timestamps into localized date strings using
// the configured month/weekday tables and pinned timezone.
type DateFormatter struct {
	months   []string
	weekdays []string
	loc      *time.Location
}

// NewDateFormatter builds a formatter from the locale configuration.
// The tables are ordered: months[0]=January, weekdays[0]=Sunday.
func NewDateFormatter(lc config.LocaleConfig) (*DateFormatter, error) {
	loc, err := time.LoadLocation(lc.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", lc.Timezone, err)
	}

	return &DateFormatter{
		months:   lc.Months,
		weekdays: lc.Weekdays,
		loc:      loc,
	}, nil
}

// NewDateFormatterIn builds a formatter over explicit tables and location.
func NewDateFormatterIn(months, weekdays []string, loc *time.Location) *DateFormatter {
	return &DateFormatter{months: months, weekdays: weekdays, loc: loc}
}

// Format renders the given Unix timestamp (seconds).
func (f *DateFormatter) Format(unix int64) DateParts {
	t := time.Unix(unix, 0).In(f.loc)

	// time.Weekday has Sunday=0, matching the table convention.
	weekday := f.weekdays[int(t.Weekday())]
	month := f.months[int(t.Month())-1]

	return DateParts{
		Long:  fmt.Sprintf("%s %d de %s de %d", weekday, t.Day(), month, t.Year()),
		Short: fmt.Sprintf("%02d/%02d/%d", t.Day(), int(t.Month()), t.Year()),
		Clock: t.Format("15:04"),
		ISO:   t.Format(time.RFC3339),
	}
}

// Location returns the pinned timezone the formatter renders in.
func (f *DateFormatter) Location() *time.Location {
	return f.loc
}
