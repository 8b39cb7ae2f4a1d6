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
	"investwelth/internal/pagination"
)

// investmentService lists investments and computes platform-wide totals.
type investmentService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewInvestmentService creates a new InvestmentServicer.
func NewInvestmentService(db *gorm.DB) InvestmentServicer {
	return &investmentService{db: db, now: time.Now}
}

// GetSummary returns user, fund and investment totals across the platform.
func (s *investmentService) GetSummary(ctx context.Context) (*InvestmentSummary, error) {
	db := s.db.WithContext(ctx)
	summary := &InvestmentSummary{LastUpdated: s.now().UTC()}

	if err := db.Model(&models.User{}).Count(&summary.UserCount).Error; err != nil {
		return nil, apperrors.Upstream("Failed to fetch investment summary", err)
	}
	if err := db.Model(&models.MutualFund{}).Count(&summary.FundCount).Error; err != nil {
		return nil, apperrors.Upstream("Failed to fetch investment summary", err)
	}
	if err := db.Model(&models.UserInvestment{}).Count(&summary.InvestmentCount).Error; err != nil {
		return nil, apperrors.Upstream("Failed to fetch investment summary", err)
	}

	var funds struct{ TotalAUM decimal.Decimal }
	if err := db.Model(&models.MutualFund{}).
		Select("COALESCE(SUM(aum), 0) AS total_aum").
		Scan(&funds).Error; err != nil {
		return nil, apperrors.Upstream("Failed to fetch investment summary", err)
	}
	// Null returns count as zero, so the average spans every investment.
	var investments struct {
		TotalInvested decimal.Decimal
		AvgReturns    decimal.Decimal
	}
	if err := db.Model(&models.UserInvestment{}).
		Select("COALESCE(SUM(amount_invested), 0) AS total_invested, " +
			"COALESCE(SUM(COALESCE(returns_since_investment, 0)) * 1.0 / NULLIF(COUNT(*), 0), 0) AS avg_returns").
		Scan(&investments).Error; err != nil {
		return nil, apperrors.Upstream("Failed to fetch investment summary", err)
	}
	summary.TotalAUM = money(funds.TotalAUM)
	summary.TotalInvested = money(investments.TotalInvested)
	summary.AvgReturns = money(investments.AvgReturns)

	var top models.MutualFund
	err := db.Where("nav IS NOT NULL").Order("nav DESC").First(&top).Error
	switch {
	case err == nil:
		summary.TopPerformingFund = &TopFund{ID: top.ID, Name: top.Name, NAV: money(top.CurrentNAV())}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, apperrors.Upstream("Failed to fetch investment summary", err)
	}
	return summary, nil
}

// GetUserInvestments returns all of a user's investments with fund details.
func (s *investmentService) GetUserInvestments(ctx context.Context, userID uint) ([]InvestmentView, error) {
	investments, err := loadInvestments(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	return toInvestmentViews(investments), nil
}

// GetInvestmentHistory pages through a user's investments, newest first.
func (s *investmentService) GetInvestmentHistory(ctx context.Context, userID uint, page pagination.PageRequest) (*pagination.PageResponse[InvestmentView], error) {
	page.Defaults()
	db := s.db.WithContext(ctx)

	var total int64
	if err := db.Model(&models.UserInvestment{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, apperrors.Upstream("Failed to fetch transactions", err)
	}

	var investments []models.UserInvestment
	if err := db.Preload("Fund").
		Where("user_id = ?", userID).
		Order("investment_date DESC, investment_id DESC").
		Scopes(pagination.Paginate(page)).
		Find(&investments).Error; err != nil {
		return nil, apperrors.Upstream("Failed to fetch transactions", err)
	}

	result := pagination.NewPageResponse(toInvestmentViews(investments), page, total)
	return &result, nil
}

func toInvestmentViews(investments []models.UserInvestment) []InvestmentView {
	holdings := toHoldings(investments)
	views := make([]InvestmentView, len(investments))
	for i, inv := range investments {
		h := holdings[i]
		v := InvestmentView{
			ID:             inv.ID,
			UserID:         inv.UserID,
			FundID:         inv.FundID,
			FundName:       h.FundName,
			FundType:       unknownValue,
			RiskLevel:      h.RiskLevel,
			AmountInvested: money(h.Amount),
			CurrentValue:   money(h.CurrentValue()),
			Returns:        money(h.ReturnsPct),
			ReturnsAmount:  money(h.Returns()),
		}
		if !inv.InvestmentDate.IsZero() {
			v.InvestmentDate = analytics.DateKey(inv.InvestmentDate)
		}
		if inv.Fund != nil {
			v.FundType = inv.Fund.Type
			v.NAV = money(inv.Fund.CurrentNAV())
		}
		views[i] = v
	}
	return views
}
