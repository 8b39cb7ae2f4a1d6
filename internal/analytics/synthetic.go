package analytics

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"
)

// DemoBaseValue is the portfolio value synthetic series oscillate around.
var DemoBaseValue = decimal.NewFromInt(350000)

// GenerateSyntheticSeries builds a plausible value series for [start, end]
// when no stored data exists. Daily output is deterministic; monthly and
// yearly output jitters with rng. At least one point is always returned.
func GenerateSyntheticSeries(start, end time.Time, interval Interval, base decimal.Decimal, rng *rand.Rand) []Point {
	start, end = Day(start), Day(end)
	if end.Before(start) {
		start, end = end, start
	}
	days := end.Sub(start).Hours() / 24

	switch interval {
	case Monthly:
		n := max(1, int(math.Ceil(days/30)))
		out := make([]Point, 0, n)
		for i := 0; i < n; i++ {
			jitter := rng.Float64()*2000 - 1000
			out = append(out, Point{
				Date:      start.AddDate(0, i, 0),
				Value:     base.Add(decimal.NewFromFloat(float64(i)*5000 + jitter)).Round(2),
				ChangePct: decimal.NewFromFloat(rng.Float64()*2 - 0.5).Round(2),
			})
		}
		return out
	case Yearly:
		n := max(1, int(math.Ceil(days/365)))
		out := make([]Point, 0, n)
		for i := 0; i < n; i++ {
			jitter := rng.Float64()*5000 - 2500
			out = append(out, Point{
				Date:      start.AddDate(i, 0, 0),
				Value:     base.Add(decimal.NewFromFloat(float64(i)*20000 + jitter)).Round(2),
				ChangePct: decimal.NewFromFloat(rng.Float64()*10 - 2).Round(2),
			})
		}
		return out
	}

	n := int(days) + 1
	out := make([]Point, 0, n)
	for d := 0; d < n; d++ {
		wave := math.Sin(float64(d) / 5)
		out = append(out, Point{
			Date:      start.AddDate(0, 0, d),
			Value:     base.Add(decimal.NewFromFloat(wave*5000 + float64(d)*100)).Round(2),
			ChangePct: decimal.NewFromFloat(wave * 0.5).Round(2),
		})
	}
	return out
}
