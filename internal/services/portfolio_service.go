package services

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"investwelth/internal/analytics"
	apperrors "investwelth/internal/errors"
	"investwelth/internal/logger"
	"investwelth/internal/models"
)

// PortfolioOption configures a portfolio service.
type PortfolioOption func(*portfolioService)

// WithDemoMode makes empty performance queries return a synthetic series.
func WithDemoMode(enabled bool) PortfolioOption {
	return func(s *portfolioService) { s.demo = enabled }
}

// WithClock overrides the time source used to resolve periods.
func WithClock(now func() time.Time) PortfolioOption {
	return func(s *portfolioService) { s.now = now }
}

// WithRand overrides the random source used for synthetic series.
func WithRand(rng *rand.Rand) PortfolioOption {
	return func(s *portfolioService) { s.rng = rng }
}

// portfolioService aggregates a user's investments.
type portfolioService struct {
	db   *gorm.DB
	demo bool
	now  func() time.Time
	rng  *rand.Rand
}

// NewPortfolioService creates a new PortfolioServicer.
func NewPortfolioService(db *gorm.DB, opts ...PortfolioOption) PortfolioServicer {
	now := time.Now()
	s := &portfolioService{
		db:  db,
		now: time.Now,
		rng: rand.New(rand.NewPCG(uint64(now.UnixNano()), uint64(now.Unix()))),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetSummary returns totals and per-investment values. A user without
// investments gets ErrNoInvestments.
func (s *portfolioService) GetSummary(ctx context.Context, userID uint) (*PortfolioSummary, error) {
	investments, err := loadInvestments(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	if len(investments) == 0 {
		return nil, apperrors.ErrNoInvestments
	}

	holdings := toHoldings(investments)
	totals := analytics.Summarize(holdings)

	rows := make([]PortfolioInvestment, len(investments))
	for i, inv := range investments {
		h := holdings[i]
		row := PortfolioInvestment{
			InvestmentID:   inv.ID,
			FundID:         inv.FundID,
			FundName:       h.FundName,
			AmountInvested: money(h.Amount),
			CurrentValue:   money(h.CurrentValue()),
			Returns:        money(h.ReturnsPct),
			ReturnsAmount:  money(h.Returns()),
			FundType:       unknownValue,
			RiskLevel:      h.RiskLevel,
		}
		if inv.Fund != nil {
			row.FundType = inv.Fund.Type
			row.ISIN = inv.Fund.ISIN
		}
		rows[i] = row
	}

	return &PortfolioSummary{
		TotalValue:     money(totals.Value),
		TotalInvested:  money(totals.Invested),
		TotalReturns:   money(totals.Returns),
		PercentageGain: money(totals.PercentageGain),
		Investments:    rows,
	}, nil
}

// GetPerformance returns the portfolio value series over the period. Daily
// queries read portfolio_daily and fill older dates from portfolio_history;
// monthly and yearly queries bucket portfolio_history.
func (s *portfolioService) GetPerformance(ctx context.Context, userID uint, period analytics.Period, interval analytics.Interval) (*PortfolioPerformance, error) {
	start, end := period.DateRange(s.now())

	var points []analytics.Point
	if interval == analytics.Daily {
		daily, err := s.series(ctx, &models.PortfolioDaily{}, userID, start, end)
		if err != nil {
			return nil, err
		}
		points = daily
		if len(daily) == 0 || daily[0].Date.After(start) {
			historical, err := s.series(ctx, &models.PortfolioHistory{}, userID, start, end)
			if err != nil {
				return nil, err
			}
			points = analytics.MergeDailyAndHistorical(start, daily, historical)
		}
	} else {
		historical, err := s.series(ctx, &models.PortfolioHistory{}, userID, start, end)
		if err != nil {
			return nil, err
		}
		points = analytics.BucketTimeSeries(historical, interval)
	}

	perf := &PortfolioPerformance{
		UserID:   userID,
		Period:   string(period),
		Interval: string(interval),
	}
	if len(points) == 0 && s.demo {
		logger.Get().Infow("serving synthetic portfolio series", "user_id", userID, "period", period, "interval", interval)
		points = analytics.GenerateSyntheticSeries(start, end, interval, analytics.DemoBaseValue, s.rng)
		perf.Synthetic = true
	}
	perf.Data = valuePoints(points)
	return perf, nil
}

// GetSectorAllocation spreads the portfolio value over fund sectors.
func (s *portfolioService) GetSectorAllocation(ctx context.Context, userID uint) (*SectorAllocation, error) {
	_, alloc, err := s.allocation(ctx, userID)
	if err != nil {
		return nil, err
	}
	sectors := make([]SectorValue, len(alloc.Sectors))
	for i, sh := range alloc.Sectors {
		sectors[i] = SectorValue{Sector: sh.Sector, Value: money(sh.Value), Percentage: money(sh.Percentage)}
	}
	return &SectorAllocation{TotalValue: money(alloc.TotalValue), Sectors: sectors}, nil
}

// GetHealth scores diversification, risk and performance of the portfolio.
func (s *portfolioService) GetHealth(ctx context.Context, userID uint) (*PortfolioHealth, error) {
	holdings, alloc, err := s.allocation(ctx, userID)
	if err != nil {
		return nil, err
	}
	health := analytics.AssessHealth(holdings, alloc)
	totals := analytics.Summarize(holdings)

	recs := make([]RecommendationView, len(health.Recommendations))
	for i, r := range health.Recommendations {
		recs[i] = RecommendationView{Category: r.Category, Text: r.Text}
	}
	return &PortfolioHealth{
		DiversificationScore: round2(health.Diversification),
		RiskScore:            round2(health.Risk),
		PerformanceScore:     round2(health.Performance),
		Recommendations:      recs,
		TotalValue:           money(totals.Value),
		PercentageGain:       money(totals.PercentageGain),
	}, nil
}

func (s *portfolioService) allocation(ctx context.Context, userID uint) ([]analytics.Holding, analytics.Allocation, error) {
	investments, err := loadInvestments(ctx, s.db, userID)
	if err != nil {
		return nil, analytics.Allocation{}, err
	}
	holdings := toHoldings(investments)

	fundIDs := make([]uint, 0, len(holdings))
	seen := make(map[uint]bool)
	for _, h := range holdings {
		if !seen[h.FundID] {
			seen[h.FundID] = true
			fundIDs = append(fundIDs, h.FundID)
		}
	}

	sectorsByFund := make(map[uint][]analytics.Slice)
	if len(fundIDs) > 0 {
		var rows []models.FundSectorAllocation
		if err := s.db.WithContext(ctx).Preload("Sector").
			Where("fund_id IN ?", fundIDs).
			Order("fund_id ASC, allocation_percentage DESC").
			Find(&rows).Error; err != nil {
			return nil, analytics.Allocation{}, apperrors.Upstream("Failed to fetch sector allocation", err)
		}
		for _, r := range rows {
			sectorsByFund[r.FundID] = append(sectorsByFund[r.FundID], analytics.Slice{Label: r.Sector.Name, Percentage: r.AllocationPercentage})
		}
	}
	return holdings, analytics.ComputeSectorAllocation(holdings, sectorsByFund), nil
}

// series reads one of the portfolio snapshot tables for [start, end].
func (s *portfolioService) series(ctx context.Context, table interface{}, userID uint, start, end time.Time) ([]analytics.Point, error) {
	type row struct {
		ValueDate             time.Time
		TotalValue            decimal.Decimal
		DailyChangePercentage decimal.Decimal
	}
	var rows []row
	if err := s.db.WithContext(ctx).Model(table).
		Select("value_date, total_value, daily_change_percentage").
		Where("user_id = ? AND value_date >= ? AND value_date <= ?", userID, start, end).
		Order("value_date ASC").
		Scan(&rows).Error; err != nil {
		return nil, apperrors.Upstream("Failed to fetch portfolio performance", err)
	}
	points := make([]analytics.Point, len(rows))
	for i, r := range rows {
		points[i] = analytics.Point{Date: analytics.Day(r.ValueDate), Value: r.TotalValue, ChangePct: r.DailyChangePercentage}
	}
	return points, nil
}

// loadInvestments returns a user's investments with their funds, oldest first.
func loadInvestments(ctx context.Context, db *gorm.DB, userID uint) ([]models.UserInvestment, error) {
	var investments []models.UserInvestment
	if err := db.WithContext(ctx).Preload("Fund").
		Where("user_id = ?", userID).
		Order("investment_id ASC").
		Find(&investments).Error; err != nil {
		return nil, apperrors.Upstream("Failed to fetch portfolio", err)
	}
	return investments, nil
}

func toHoldings(investments []models.UserInvestment) []analytics.Holding {
	holdings := make([]analytics.Holding, len(investments))
	for i, inv := range investments {
		h := analytics.Holding{
			InvestmentID: inv.ID,
			FundID:       inv.FundID,
			FundName:     unknownFundName,
			RiskLevel:    unknownValue,
			Amount:       inv.Amount(),
			ReturnsPct:   inv.ReturnsPct(),
		}
		if inv.Fund != nil {
			h.FundName = inv.Fund.Name
			h.RiskLevel = inv.Fund.RiskLevel
		}
		holdings[i] = h
	}
	return holdings
}
