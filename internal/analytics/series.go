package analytics

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Point is one entry of a value series: a portfolio total or a fund NAV on a date.
type Point struct {
	Date      time.Time
	Value     decimal.Decimal
	ChangePct decimal.Decimal
}

// BucketTimeSeries rolls points up to the given interval. Daily output is the
// input deduplicated by date (the last occurrence wins). Monthly and yearly
// output keeps, per bucket, the point with the latest date. The result is
// sorted ascending and never nil.
func BucketTimeSeries(points []Point, interval Interval) []Point {
	if len(points) == 0 {
		return []Point{}
	}

	kept := make(map[string]Point, len(points))
	for _, p := range points {
		key := interval.bucketKey(p.Date)
		if interval == Daily {
			kept[key] = p
			continue
		}
		if cur, ok := kept[key]; !ok || p.Date.After(cur.Date) {
			kept[key] = p
		}
	}

	out := make([]Point, 0, len(kept))
	for _, p := range kept {
		out = append(out, p)
	}
	sortByDate(out)
	return out
}

// MergeDailyAndHistorical fills the part of a requested range that the daily
// table does not cover. When daily is empty or starts after start, historical
// points are added, except on dates daily already has.
func MergeDailyAndHistorical(start time.Time, daily, historical []Point) []Point {
	daily = BucketTimeSeries(daily, Daily)
	if len(daily) > 0 && !daily[0].Date.After(start) {
		return daily
	}

	seen := make(map[string]struct{}, len(daily))
	for _, p := range daily {
		seen[DateKey(p.Date)] = struct{}{}
	}

	merged := make([]Point, 0, len(daily)+len(historical))
	for _, p := range historical {
		if _, dup := seen[DateKey(p.Date)]; dup {
			continue
		}
		merged = append(merged, p)
	}
	merged = append(merged, daily...)
	return BucketTimeSeries(merged, Daily)
}

func sortByDate(points []Point) {
	slices.SortStableFunc(points, func(a, b Point) int {
		return a.Date.Compare(b.Date)
	})
}
