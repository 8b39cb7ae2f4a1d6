// Package analytics holds the pure aggregation and scoring functions behind the
// portfolio and fund endpoints. Nothing in here touches the database; callers
// fetch rows, convert them to the types below and format the results.
package analytics

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Period is a lookback window accepted by the performance endpoints.
type Period string

const (
	Period1M  Period = "1M"
	Period3M  Period = "3M"
	Period6M  Period = "6M"
	Period1Y  Period = "1Y"
	Period3Y  Period = "3Y"
	PeriodMax Period = "MAX"
)

// Interval selects how a performance series is bucketed.
type Interval string

const (
	Daily   Interval = "daily"
	Monthly Interval = "monthly"
	Yearly  Interval = "yearly"
)

// MaxHistoryStart is the first date covered by PeriodMax.
var MaxHistoryStart = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

var (
	ErrUnknownPeriod   = errors.New("unknown period")
	ErrUnknownInterval = errors.New("unknown interval")
)

// ParsePeriod validates a period query value. An empty value means 1M.
func ParsePeriod(s string) (Period, error) {
	if s == "" {
		return Period1M, nil
	}
	p := Period(strings.ToUpper(strings.TrimSpace(s)))
	switch p {
	case Period1M, Period3M, Period6M, Period1Y, Period3Y, PeriodMax:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPeriod, s)
}

// ParseInterval validates an interval query value. An empty value means daily.
func ParseInterval(s string) (Interval, error) {
	if s == "" {
		return Daily, nil
	}
	i := Interval(strings.ToLower(strings.TrimSpace(s)))
	switch i {
	case Daily, Monthly, Yearly:
		return i, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownInterval, s)
}

// DateRange returns the closed interval [start, end] covered by the period,
// with end being the day of now. Both bounds are midnight UTC.
func (p Period) DateRange(now time.Time) (start, end time.Time) {
	end = Day(now)
	switch p {
	case Period3M:
		start = end.AddDate(0, -3, 0)
	case Period6M:
		start = end.AddDate(0, -6, 0)
	case Period1Y:
		start = end.AddDate(-1, 0, 0)
	case Period3Y:
		start = end.AddDate(-3, 0, 0)
	case PeriodMax:
		start = MaxHistoryStart
	default:
		start = end.AddDate(0, -1, 0)
	}
	return start, end
}

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateKey formats t as YYYY-MM-DD, the wire format for series dates.
func DateKey(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

func (i Interval) bucketKey(t time.Time) string {
	switch i {
	case Monthly:
		return t.UTC().Format("2006-01")
	case Yearly:
		return t.UTC().Format("2006")
	}
	return DateKey(t)
}
