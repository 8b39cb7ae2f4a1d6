package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shares(pcts ...string) []SectorShare {
	out := make([]SectorShare, len(pcts))
	for i, p := range pcts {
		out[i] = SectorShare{Sector: string(rune('A' + i)), Percentage: dec(p)}
	}
	return out
}

func TestDiversificationScore(t *testing.T) {
	assert.Zero(t, DiversificationScore(nil))
	assert.Zero(t, DiversificationScore(shares("100")), "single sector")
	assert.InDelta(t, 100, DiversificationScore(shares("25", "25", "25", "25")), 1e-9)
	assert.InDelta(t, 36, DiversificationScore(shares("90", "10")), 1e-9)
}

func TestDiversificationScore_ApproachesHundredWhenUniform(t *testing.T) {
	even := make([]SectorShare, 20)
	for i := range even {
		even[i] = SectorShare{Sector: string(rune('a' + i)), Percentage: dec("5")}
	}
	assert.InDelta(t, 100, DiversificationScore(even), 1e-9)

	skewed := append([]SectorShare{{Sector: "big", Percentage: dec("81")}}, even[1:]...)
	for i := 1; i < len(skewed); i++ {
		skewed[i].Percentage = dec("1")
	}
	assert.Less(t, DiversificationScore(skewed), DiversificationScore(even))
}

func TestRiskScore_Concentrated(t *testing.T) {
	cases := map[string]float64{"Low": 25, "Moderate": 50, "High": 100}
	for level, want := range cases {
		holdings := []Holding{
			holding(1, "1000", "3", level),
			holding(2, "2000", "-1.5", level),
			holding(3, "333.33", "7", level),
		}
		assert.Equal(t, want, RiskScore(holdings), level)
	}
}

func TestRiskScore_Mixed(t *testing.T) {
	holdings := []Holding{
		holding(1, "1000", "0", "low"),
		holding(2, "1000", "0", "HIGH"),
		holding(3, "1000", "0", "Aggressive"),
	}

	assert.InDelta(t, (25.0+100+50)/3, RiskScore(holdings), 1e-9)
	assert.Zero(t, RiskScore(nil))
}

func TestPerformanceScore(t *testing.T) {
	assert.Equal(t, 50.0, PerformanceScore(0))
	assert.Equal(t, 75.0, PerformanceScore(7.5))
	assert.Equal(t, 100.0, PerformanceScore(15))
	assert.Equal(t, 100.0, PerformanceScore(40))
	assert.Equal(t, 0.0, PerformanceScore(-15))
	assert.Equal(t, 0.0, PerformanceScore(-90))
}

func TestRecommend(t *testing.T) {
	recs := Recommend(40, 80, 30)
	require.Len(t, recs, 3)
	assert.Equal(t, CategoryDiversification, recs[0].Category)
	assert.Equal(t, CategoryRisk, recs[1].Category)
	assert.Contains(t, recs[1].Text, "high risk")
	assert.Equal(t, CategoryPerformance, recs[2].Category)

	recs = Recommend(80, 20, 70)
	require.Len(t, recs, 1)
	assert.Contains(t, recs[0].Text, "very low risk")

	recs = Recommend(80, 50, 70)
	require.Len(t, recs, 1)
	assert.Equal(t, CategoryGeneral, recs[0].Category)
}

func TestAssessHealth(t *testing.T) {
	holdings := []Holding{
		holding(1, "1000", "15", "High"),
		holding(2, "1000", "15", "High"),
	}
	sectors := map[uint][]Slice{
		1: {{Label: "IT", Percentage: dec("100")}},
		2: {{Label: "IT", Percentage: dec("100")}},
	}

	h := AssessHealth(holdings, ComputeSectorAllocation(holdings, sectors))

	assert.Zero(t, h.Diversification)
	assert.Equal(t, 100.0, h.Risk)
	assert.Equal(t, 100.0, h.Performance)
	require.Len(t, h.Recommendations, 2)
	assert.Equal(t, CategoryDiversification, h.Recommendations[0].Category)
	assert.Equal(t, CategoryRisk, h.Recommendations[1].Category)
}

func TestAssessHealth_EmptyPortfolio(t *testing.T) {
	h := AssessHealth(nil, Allocation{})

	assert.Zero(t, h.Diversification)
	assert.Zero(t, h.Risk)
	assert.Zero(t, h.Performance)
	assert.Empty(t, h.Recommendations)
}
