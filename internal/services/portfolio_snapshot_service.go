package services

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"investwelth/internal/analytics"
	apperrors "investwelth/internal/errors"
	"investwelth/internal/logger"
	"investwelth/internal/models"
)

// portfolioSnapshotService records portfolio values for the performance series.
type portfolioSnapshotService struct {
	db *gorm.DB
}

// NewPortfolioSnapshotService creates a new PortfolioSnapshotServicer.
func NewPortfolioSnapshotService(db *gorm.DB) PortfolioSnapshotServicer {
	return &portfolioSnapshotService{db: db}
}

// ComputeAndRecordSnapshots values every investing user's portfolio on the
// day of recordedAt and upserts it into portfolio_daily. On the last day of a
// month the value is also upserted into portfolio_history. It returns the
// number of users recorded.
func (s *portfolioSnapshotService) ComputeAndRecordSnapshots(ctx context.Context, recordedAt time.Time) (int, error) {
	day := analytics.Day(recordedAt)
	monthEnd := day.AddDate(0, 0, 1).Day() == 1
	db := s.db.WithContext(ctx)

	var investments []models.UserInvestment
	if err := db.Order("user_id ASC, investment_id ASC").Find(&investments).Error; err != nil {
		return 0, apperrors.Upstream("Failed to fetch investments", err)
	}

	var userIDs []uint
	byUser := make(map[uint][]models.UserInvestment)
	for _, inv := range investments {
		if _, ok := byUser[inv.UserID]; !ok {
			userIDs = append(userIDs, inv.UserID)
		}
		byUser[inv.UserID] = append(byUser[inv.UserID], inv)
	}

	count := 0
	for _, userID := range userIDs {
		value := analytics.Summarize(toHoldings(byUser[userID])).Value

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := upsertSnapshot(tx, &models.PortfolioDaily{}, userID, day, value); err != nil {
				return err
			}
			if monthEnd {
				return upsertSnapshot(tx, &models.PortfolioHistory{}, userID, day, value)
			}
			return nil
		})
		if err != nil {
			return count, apperrors.Upstream("Failed to record portfolio snapshot", err)
		}
		count++
	}

	logger.Get().Infow("recorded portfolio snapshots", "users", count, "value_date", analytics.DateKey(day), "month_end", monthEnd)
	return count, nil
}

// upsertSnapshot writes one row into a snapshot table. The change percentage
// is measured against the latest earlier row of the same table.
func upsertSnapshot(tx *gorm.DB, table interface{}, userID uint, day time.Time, value decimal.Decimal) error {
	var prev struct{ TotalValue decimal.Decimal }
	err := tx.Model(table).
		Select("total_value").
		Where("user_id = ? AND value_date < ?", userID, day).
		Order("value_date DESC").
		Limit(1).
		Take(&prev).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	change := decimal.Zero
	if prev.TotalValue.IsPositive() {
		change = value.Sub(prev.TotalValue).Mul(decimal.NewFromInt(100)).Div(prev.TotalValue).Round(4)
	}

	var row interface{}
	switch table.(type) {
	case *models.PortfolioHistory:
		row = &models.PortfolioHistory{UserID: userID, ValueDate: day, TotalValue: value, DailyChangePercentage: change}
	default:
		row = &models.PortfolioDaily{UserID: userID, ValueDate: day, TotalValue: value, DailyChangePercentage: change}
	}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "value_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"total_value", "daily_change_percentage"}),
	}).Create(row).Error
}
