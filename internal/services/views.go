package services

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"investwelth/internal/analytics"
	"investwelth/internal/models"
)

// Response shapes. Amounts and percentages are rounded to 2 decimal places.

// SectorWeight is one sector of a fund.
type SectorWeight struct {
	SectorID   uint    `json:"sectorId"`
	SectorName string  `json:"sectorName"`
	Percentage float64 `json:"percentage"`
}

// StockWeight is one stock holding of a fund.
type StockWeight struct {
	StockID    uint    `json:"stockId"`
	StockName  string  `json:"stockName"`
	Ticker     string  `json:"ticker"`
	Percentage float64 `json:"percentage"`
}

// MarketCapWeight is one market-cap bucket of a fund.
type MarketCapWeight struct {
	MarketCapID uint    `json:"marketCapId"`
	Category    string  `json:"category"`
	Percentage  float64 `json:"percentage"`
}

// FundDetail is a fund row with its allocations attached.
type FundDetail struct {
	models.MutualFund
	Sectors    []SectorWeight    `json:"sectors"`
	Stocks     []StockWeight     `json:"stocks"`
	MarketCaps []MarketCapWeight `json:"marketCaps"`
}

// NAVPoint is one entry of a fund's NAV series.
type NAVPoint struct {
	Date             string  `json:"date"`
	NAV              float64 `json:"nav"`
	ChangePercentage float64 `json:"changePercentage"`
}

// FundPerformance is a fund's NAV series over a period.
type FundPerformance struct {
	FundID       uint       `json:"fundId"`
	FundName     string     `json:"fundName"`
	FundType     string     `json:"fundType"`
	RiskLevel    string     `json:"riskLevel"`
	ExpenseRatio float64    `json:"expenseRatio"`
	AUM          float64    `json:"aum"`
	Period       string     `json:"period"`
	Interval     string     `json:"interval"`
	Data         []NAVPoint `json:"data"`
}

// ComparedFund is one side of a fund comparison.
type ComparedFund struct {
	FundID       uint       `json:"fundId"`
	FundName     string     `json:"fundName"`
	FundType     string     `json:"fundType"`
	RiskLevel    string     `json:"riskLevel"`
	ExpenseRatio float64    `json:"expenseRatio"`
	AUM          float64    `json:"aum"`
	CurrentNAV   float64    `json:"currentNav"`
	Performance  []NAVPoint `json:"performance"`
}

// SectorComparisonRow holds both funds' weight in one sector.
type SectorComparisonRow struct {
	SectorName      string  `json:"sectorName"`
	Fund1Percentage float64 `json:"fund1Percentage"`
	Fund2Percentage float64 `json:"fund2Percentage"`
}

// FundComparison compares two funds side by side.
type FundComparison struct {
	Fund1            ComparedFund          `json:"fund1"`
	Fund2            ComparedFund          `json:"fund2"`
	OverlapPct       float64               `json:"overlapPct"`
	SectorComparison []SectorComparisonRow `json:"sectorComparison"`
}

// FundRef names a fund.
type FundRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// FundOverlapResult describes the stocks two funds share.
type FundOverlapResult struct {
	Funds                    []FundRef `json:"funds"`
	StocksOverlap            int       `json:"stocksOverlap"`
	AverageOverlapPercentage float64   `json:"averageOverlapPercentage"`
	CommonStocks             []string  `json:"commonStocks"`
}

// PortfolioInvestment is one holding in the portfolio summary. Returns is
// the percentage since investment and ReturnsAmount the gain in currency.
type PortfolioInvestment struct {
	InvestmentID   uint    `json:"investmentId"`
	FundID         uint    `json:"fundId"`
	FundName       string  `json:"fundName"`
	AmountInvested float64 `json:"amountInvested"`
	CurrentValue   float64 `json:"currentValue"`
	Returns        float64 `json:"returns"`
	ReturnsAmount  float64 `json:"returnsAmount"`
	FundType       string  `json:"fundType"`
	RiskLevel      string  `json:"riskLevel"`
	ISIN           *string `json:"isin"`
}

// PortfolioSummary is the headline view of a user's portfolio.
type PortfolioSummary struct {
	TotalValue     float64               `json:"totalValue"`
	TotalInvested  float64               `json:"totalInvested"`
	TotalReturns   float64               `json:"totalReturns"`
	PercentageGain float64               `json:"percentageGain"`
	Investments    []PortfolioInvestment `json:"investments"`
}

// ValuePoint is one entry of a portfolio value series.
type ValuePoint struct {
	Date             string  `json:"date"`
	Value            float64 `json:"value"`
	ChangePercentage float64 `json:"changePercentage"`
}

// PortfolioPerformance is a user's portfolio value series. Synthetic is set
// when the data was generated because none was stored.
type PortfolioPerformance struct {
	UserID    uint         `json:"userId"`
	Period    string       `json:"period"`
	Interval  string       `json:"interval"`
	Synthetic bool         `json:"synthetic"`
	Data      []ValuePoint `json:"data"`
}

// SectorValue is one sector of the portfolio allocation.
type SectorValue struct {
	Sector     string  `json:"sector"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

// SectorAllocation is the portfolio's value split across sectors.
type SectorAllocation struct {
	TotalValue float64       `json:"totalValue"`
	Sectors    []SectorValue `json:"sectors"`
}

// RecommendationView is one health recommendation.
type RecommendationView struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

// PortfolioHealth holds the three health scores and the advice they trigger.
type PortfolioHealth struct {
	DiversificationScore float64              `json:"diversificationScore"`
	RiskScore            float64              `json:"riskScore"`
	PerformanceScore     float64              `json:"performanceScore"`
	Recommendations      []RecommendationView `json:"recommendations"`
	TotalValue           float64              `json:"totalValue"`
	PercentageGain       float64              `json:"percentageGain"`
}

// TopFund is the fund with the highest NAV.
type TopFund struct {
	ID   uint    `json:"id"`
	Name string  `json:"name"`
	NAV  float64 `json:"nav"`
}

// InvestmentSummary holds platform-wide totals.
type InvestmentSummary struct {
	UserCount         int64     `json:"userCount"`
	FundCount         int64     `json:"fundCount"`
	TotalAUM          float64   `json:"totalAUM"`
	InvestmentCount   int64     `json:"investmentCount"`
	TotalInvested     float64   `json:"totalInvested"`
	AvgReturns        float64   `json:"avgReturns"`
	TopPerformingFund *TopFund  `json:"topPerformingFund"`
	LastUpdated       time.Time `json:"lastUpdated"`
}

// InvestmentView is an investment denormalized with its fund. Returns is a
// percentage, as in PortfolioInvestment.
type InvestmentView struct {
	ID             uint    `json:"id"`
	UserID         uint    `json:"userId"`
	FundID         uint    `json:"fundId"`
	FundName       string  `json:"fundName"`
	FundType       string  `json:"fundType"`
	RiskLevel      string  `json:"riskLevel"`
	AmountInvested float64 `json:"amountInvested"`
	InvestmentDate string  `json:"investmentDate"`
	CurrentValue   float64 `json:"currentValue"`
	Returns        float64 `json:"returns"`
	ReturnsAmount  float64 `json:"returnsAmount"`
	NAV            float64 `json:"nav"`
}

const (
	unknownFundName = "Unknown Fund"
	unknownValue    = "Unknown"
)

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func navPoints(points []analytics.Point) []NAVPoint {
	out := make([]NAVPoint, len(points))
	for i, p := range points {
		out[i] = NAVPoint{Date: analytics.DateKey(p.Date), NAV: money(p.Value), ChangePercentage: money(p.ChangePct)}
	}
	return out
}

func valuePoints(points []analytics.Point) []ValuePoint {
	out := make([]ValuePoint, len(points))
	for i, p := range points {
		out[i] = ValuePoint{Date: analytics.DateKey(p.Date), Value: money(p.Value), ChangePercentage: money(p.ChangePct)}
	}
	return out
}
