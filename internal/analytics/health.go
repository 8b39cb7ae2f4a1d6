package analytics

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Risk weights used by RiskScore. Unknown levels count as moderate.
const (
	RiskWeightLow      = 25
	RiskWeightModerate = 50
	RiskWeightHigh     = 100
)

// Thresholds that trigger recommendations.
const (
	diversificationFloor = 60
	riskCeiling          = 70
	riskFloor            = 30
	performanceFloor     = 50
)

// Recommendation categories.
const (
	CategoryDiversification = "Diversification"
	CategoryRisk            = "Risk"
	CategoryPerformance     = "Performance"
	CategoryGeneral         = "General"
)

// Recommendation is one actionable note attached to a health assessment.
type Recommendation struct {
	Category string
	Text     string
}

// Health is the scored assessment of a portfolio. Scores are in [0, 100].
type Health struct {
	Diversification float64
	Risk            float64
	Performance     float64
	Recommendations []Recommendation
}

// RiskWeight maps a fund risk level to its weight, ignoring case.
func RiskWeight(level string) int64 {
	switch {
	case strings.EqualFold(level, "Low"):
		return RiskWeightLow
	case strings.EqualFold(level, "High"):
		return RiskWeightHigh
	}
	return RiskWeightModerate
}

// DiversificationScore normalizes the Herfindahl index of the sector shares
// so that one sector scores 0 and an even split scores 100.
func DiversificationScore(sectors []SectorShare) float64 {
	n := len(sectors)
	if n < 2 {
		return 0
	}
	hhi := 0.0
	for _, s := range sectors {
		p := s.Percentage.InexactFloat64() / 100
		hhi += p * p
	}
	return clamp(100 * (1 - hhi) / (1 - 1/float64(n)))
}

// RiskScore is the value-weighted mean risk weight of the holdings.
func RiskScore(holdings []Holding) float64 {
	total := decimal.Zero
	weighted := decimal.Zero
	for _, h := range holdings {
		v := h.CurrentValue()
		total = total.Add(v)
		weighted = weighted.Add(v.Mul(decimal.NewFromInt(RiskWeight(h.RiskLevel))))
	}
	if !total.IsPositive() {
		return 0
	}
	return clamp(weighted.Div(total).InexactFloat64())
}

// PerformanceScore maps a percentage gain onto [0, 100]: no gain scores 50
// and a 15% gain scores 100.
func PerformanceScore(percentageGain float64) float64 {
	return clamp(50 + percentageGain/15*50)
}

// Recommend lists the notes triggered by the three scores, in a fixed order.
func Recommend(diversification, risk, performance float64) []Recommendation {
	var recs []Recommendation
	if diversification < diversificationFloor {
		recs = append(recs, Recommendation{
			Category: CategoryDiversification,
			Text:     "Your portfolio is concentrated in a few sectors. Consider adding funds from different sectors to improve diversification.",
		})
	}
	if risk > riskCeiling {
		recs = append(recs, Recommendation{
			Category: CategoryRisk,
			Text:     "Your portfolio has a high risk level. Consider adding some low-risk funds to balance your portfolio.",
		})
	} else if risk < riskFloor {
		recs = append(recs, Recommendation{
			Category: CategoryRisk,
			Text:     "Your portfolio has a very low risk level. Consider adding some growth-oriented funds to potentially increase returns.",
		})
	}
	if performance < performanceFloor {
		recs = append(recs, Recommendation{
			Category: CategoryPerformance,
			Text:     "Your portfolio is underperforming. Consider reviewing and replacing funds with poor performance.",
		})
	}
	if len(recs) == 0 {
		recs = append(recs, Recommendation{
			Category: CategoryGeneral,
			Text:     "Your portfolio is well-balanced. Continue to monitor performance and rebalance periodically.",
		})
	}
	return recs
}

// AssessHealth scores a portfolio from its holdings and sector allocation.
// An empty portfolio scores zero everywhere and gets no recommendations.
func AssessHealth(holdings []Holding, alloc Allocation) Health {
	if len(holdings) == 0 {
		return Health{Recommendations: []Recommendation{}}
	}
	totals := Summarize(holdings)
	h := Health{
		Diversification: DiversificationScore(alloc.Sectors),
		Risk:            RiskScore(holdings),
		Performance:     PerformanceScore(totals.PercentageGain.InexactFloat64()),
	}
	h.Recommendations = Recommend(h.Diversification, h.Risk, h.Performance)
	return h
}

func clamp(v float64) float64 {
	return min(100, max(0, v))
}
