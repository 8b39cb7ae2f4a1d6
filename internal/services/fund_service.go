package services

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"investwelth/internal/analytics"
	apperrors "investwelth/internal/errors"
	"investwelth/internal/models"
)

// fundService serves mutual fund reference data.
type fundService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewFundService creates a new FundServicer.
func NewFundService(db *gorm.DB) FundServicer {
	return &fundService{db: db, now: time.Now}
}

// ListFunds returns every fund ordered by name.
func (s *fundService) ListFunds(ctx context.Context) ([]models.MutualFund, error) {
	funds := []models.MutualFund{}
	if err := s.db.WithContext(ctx).Order("fund_name ASC").Find(&funds).Error; err != nil {
		return nil, apperrors.Upstream("Failed to fetch funds", err)
	}
	return funds, nil
}

// GetFundDetail returns a fund with its sector, stock and market-cap allocations.
func (s *fundService) GetFundDetail(ctx context.Context, fundID uint) (*FundDetail, error) {
	fund, err := s.getFund(ctx, fundID)
	if err != nil {
		return nil, err
	}
	sectors, err := s.sectorWeights(ctx, fundID)
	if err != nil {
		return nil, err
	}
	stocks, err := s.stockWeights(ctx, fundID)
	if err != nil {
		return nil, err
	}
	caps, err := s.marketCapWeights(ctx, fundID)
	if err != nil {
		return nil, err
	}
	return &FundDetail{MutualFund: *fund, Sectors: sectors, Stocks: stocks, MarketCaps: caps}, nil
}

// GetFundSectors returns a fund's sector allocation, largest first.
func (s *fundService) GetFundSectors(ctx context.Context, fundID uint) ([]SectorWeight, error) {
	if _, err := s.getFund(ctx, fundID); err != nil {
		return nil, err
	}
	return s.sectorWeights(ctx, fundID)
}

// GetFundStocks returns a fund's stock holdings, largest first.
func (s *fundService) GetFundStocks(ctx context.Context, fundID uint) ([]StockWeight, error) {
	if _, err := s.getFund(ctx, fundID); err != nil {
		return nil, err
	}
	return s.stockWeights(ctx, fundID)
}

// GetFundPerformance returns the fund's NAV series for the period, bucketed by interval.
func (s *fundService) GetFundPerformance(ctx context.Context, fundID uint, period analytics.Period, interval analytics.Interval) (*FundPerformance, error) {
	fund, err := s.getFund(ctx, fundID)
	if err != nil {
		return nil, err
	}
	start, end := period.DateRange(s.now())
	points, err := s.navHistory(ctx, fundID, start, end)
	if err != nil {
		return nil, err
	}
	return &FundPerformance{
		FundID:       fund.ID,
		FundName:     fund.Name,
		FundType:     fund.Type,
		RiskLevel:    fund.RiskLevel,
		ExpenseRatio: money(fund.ExpenseRatioValue()),
		AUM:          money(fund.AUMValue()),
		Period:       string(period),
		Interval:     string(interval),
		Data:         navPoints(analytics.BucketTimeSeries(points, interval)),
	}, nil
}

// CompareFunds puts two funds side by side with one year of NAV history each.
func (s *fundService) CompareFunds(ctx context.Context, fundID, compareID uint) (*FundComparison, error) {
	if fundID == compareID {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "A fund cannot be compared with itself")
	}
	fund1, err := s.getFund(ctx, fundID)
	if err != nil {
		return nil, err
	}
	fund2, err := s.getFund(ctx, compareID)
	if err != nil {
		return nil, err
	}

	start, end := analytics.Period1Y.DateRange(s.now())
	side := func(f *models.MutualFund) (ComparedFund, error) {
		points, err := s.navHistory(ctx, f.ID, start, end)
		if err != nil {
			return ComparedFund{}, err
		}
		return ComparedFund{
			FundID:       f.ID,
			FundName:     f.Name,
			FundType:     f.Type,
			RiskLevel:    f.RiskLevel,
			ExpenseRatio: money(f.ExpenseRatioValue()),
			AUM:          money(f.AUMValue()),
			CurrentNAV:   money(f.CurrentNAV()),
			Performance:  navPoints(analytics.BucketTimeSeries(points, analytics.Daily)),
		}, nil
	}
	left, err := side(fund1)
	if err != nil {
		return nil, err
	}
	right, err := side(fund2)
	if err != nil {
		return nil, err
	}

	overlap, err := s.overlapPercentage(ctx, fund1.ID, fund2.ID)
	if err != nil {
		return nil, err
	}

	sectors1, err := s.sectorSlices(ctx, fund1.ID)
	if err != nil {
		return nil, err
	}
	sectors2, err := s.sectorSlices(ctx, fund2.ID)
	if err != nil {
		return nil, err
	}
	rows := analytics.CompareFundSectors(sectors1, sectors2)
	comparison := make([]SectorComparisonRow, len(rows))
	for i, r := range rows {
		comparison[i] = SectorComparisonRow{SectorName: r.Sector, Fund1Percentage: money(r.Fund1), Fund2Percentage: money(r.Fund2)}
	}

	return &FundComparison{
		Fund1:            left,
		Fund2:            right,
		OverlapPct:       money(overlap),
		SectorComparison: comparison,
	}, nil
}

// GetFundOverlap lists the stocks two funds hold in common. A precomputed
// overlap percentage wins over the one derived from the holdings.
func (s *fundService) GetFundOverlap(ctx context.Context, fund1ID, fund2ID uint) (*FundOverlapResult, error) {
	fund1, err := s.getFund(ctx, fund1ID)
	if err != nil {
		return nil, err
	}
	fund2, err := s.getFund(ctx, fund2ID)
	if err != nil {
		return nil, err
	}

	ov, err := s.stockOverlap(ctx, fund1.ID, fund2.ID)
	if err != nil {
		return nil, err
	}
	pct := ov.Percentage
	if stored, ok, err := s.storedOverlap(ctx, fund1.ID, fund2.ID); err != nil {
		return nil, err
	} else if ok {
		pct = stored
	}

	return &FundOverlapResult{
		Funds:                    []FundRef{{ID: fund1.ID, Name: fund1.Name}, {ID: fund2.ID, Name: fund2.Name}},
		StocksOverlap:            ov.CommonCount,
		AverageOverlapPercentage: money(pct),
		CommonStocks:             ov.Common,
	}, nil
}

func (s *fundService) getFund(ctx context.Context, fundID uint) (*models.MutualFund, error) {
	var fund models.MutualFund
	if err := s.db.WithContext(ctx).First(&fund, fundID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFundNotFound
		}
		return nil, apperrors.Upstream("Failed to fetch fund details", err)
	}
	return &fund, nil
}

// navHistory reads NAV rows in [start, end]. Rows without a NAV are skipped.
func (s *fundService) navHistory(ctx context.Context, fundID uint, start, end time.Time) ([]analytics.Point, error) {
	var rows []models.FundHistory
	if err := s.db.WithContext(ctx).
		Where("fund_id = ? AND value_date >= ? AND value_date <= ?", fundID, start, end).
		Order("value_date ASC").
		Find(&rows).Error; err != nil {
		return nil, apperrors.Upstream("Failed to fetch fund performance", err)
	}
	points := make([]analytics.Point, 0, len(rows))
	for _, r := range rows {
		if !r.NAV.Valid {
			continue
		}
		points = append(points, analytics.Point{
			Date:      analytics.Day(r.ValueDate),
			Value:     r.NAV.Decimal,
			ChangePct: r.DailyChangePercentage.Decimal,
		})
	}
	return points, nil
}

func (s *fundService) sectorRows(ctx context.Context, fundID uint) ([]models.FundSectorAllocation, error) {
	var rows []models.FundSectorAllocation
	if err := s.db.WithContext(ctx).Preload("Sector").
		Where("fund_id = ?", fundID).
		Order("allocation_percentage DESC").
		Find(&rows).Error; err != nil {
		return nil, apperrors.Upstream("Failed to fetch sector allocation", err)
	}
	return rows, nil
}

func (s *fundService) sectorWeights(ctx context.Context, fundID uint) ([]SectorWeight, error) {
	rows, err := s.sectorRows(ctx, fundID)
	if err != nil {
		return nil, err
	}
	out := make([]SectorWeight, len(rows))
	for i, r := range rows {
		out[i] = SectorWeight{SectorID: r.SectorID, SectorName: r.Sector.Name, Percentage: money(r.AllocationPercentage)}
	}
	return out, nil
}

func (s *fundService) sectorSlices(ctx context.Context, fundID uint) ([]analytics.Slice, error) {
	rows, err := s.sectorRows(ctx, fundID)
	if err != nil {
		return nil, err
	}
	out := make([]analytics.Slice, len(rows))
	for i, r := range rows {
		out[i] = analytics.Slice{Label: r.Sector.Name, Percentage: r.AllocationPercentage}
	}
	return out, nil
}

func (s *fundService) stockRows(ctx context.Context, fundID uint) ([]models.FundStockAllocation, error) {
	var rows []models.FundStockAllocation
	if err := s.db.WithContext(ctx).Preload("Stock").
		Where("fund_id = ?", fundID).
		Order("allocation_percentage DESC").
		Find(&rows).Error; err != nil {
		return nil, apperrors.Upstream("Failed to fetch stock holdings", err)
	}
	return rows, nil
}

func (s *fundService) stockWeights(ctx context.Context, fundID uint) ([]StockWeight, error) {
	rows, err := s.stockRows(ctx, fundID)
	if err != nil {
		return nil, err
	}
	out := make([]StockWeight, len(rows))
	for i, r := range rows {
		out[i] = StockWeight{StockID: r.StockID, StockName: r.Stock.Name, Ticker: r.Stock.Ticker, Percentage: money(r.AllocationPercentage)}
	}
	return out, nil
}

func (s *fundService) marketCapWeights(ctx context.Context, fundID uint) ([]MarketCapWeight, error) {
	var rows []models.FundMarketCapAllocation
	if err := s.db.WithContext(ctx).Preload("MarketCap").
		Where("fund_id = ?", fundID).
		Order("allocation_percentage DESC").
		Find(&rows).Error; err != nil {
		return nil, apperrors.Upstream("Failed to fetch market cap allocation", err)
	}
	out := make([]MarketCapWeight, len(rows))
	for i, r := range rows {
		out[i] = MarketCapWeight{MarketCapID: r.MarketCapID, Category: r.MarketCap.Category, Percentage: money(r.AllocationPercentage)}
	}
	return out, nil
}

func (s *fundService) stockOverlap(ctx context.Context, fund1ID, fund2ID uint) (analytics.Overlap, error) {
	slices := func(fundID uint) ([]analytics.Slice, error) {
		rows, err := s.stockRows(ctx, fundID)
		if err != nil {
			return nil, err
		}
		out := make([]analytics.Slice, len(rows))
		for i, r := range rows {
			out[i] = analytics.Slice{Label: r.Stock.Key(), Percentage: r.AllocationPercentage}
		}
		return out, nil
	}
	a, err := slices(fund1ID)
	if err != nil {
		return analytics.Overlap{}, err
	}
	b, err := slices(fund2ID)
	if err != nil {
		return analytics.Overlap{}, err
	}
	return analytics.StockOverlap(a, b), nil
}

// storedOverlap looks up the precomputed overlap for the pair in either order.
func (s *fundService) storedOverlap(ctx context.Context, fund1ID, fund2ID uint) (decimal.Decimal, bool, error) {
	var row models.FundOverlap
	err := s.db.WithContext(ctx).
		Where("(fund_id1 = ? AND fund_id2 = ?) OR (fund_id1 = ? AND fund_id2 = ?)", fund1ID, fund2ID, fund2ID, fund1ID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, false, nil
	}
	if err != nil {
		return decimal.Zero, false, apperrors.Upstream("Failed to fetch fund overlap", err)
	}
	return row.OverlapPercentage, true, nil
}

func (s *fundService) overlapPercentage(ctx context.Context, fund1ID, fund2ID uint) (decimal.Decimal, error) {
	stored, ok, err := s.storedOverlap(ctx, fund1ID, fund2ID)
	if err != nil || ok {
		return stored, err
	}
	ov, err := s.stockOverlap(ctx, fund1ID, fund2ID)
	if err != nil {
		return decimal.Zero, err
	}
	return ov.Percentage, nil
}
