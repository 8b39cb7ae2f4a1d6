package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PortfolioDaily is a user's portfolio value at the close of one day.
// This is time-series data keyed by (user_id, value_date).
type PortfolioDaily struct {
	ID                    uint            `gorm:"primaryKey" json:"id"`
	UserID                uint            `gorm:"not null;uniqueIndex:uq_portfolio_daily_user_date" json:"user_id"`
	ValueDate             time.Time       `gorm:"type:date;not null;uniqueIndex:uq_portfolio_daily_user_date" json:"value_date"`
	TotalValue            decimal.Decimal `gorm:"type:numeric;not null" json:"total_value"`
	DailyChangePercentage decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"daily_change_percentage"`
}

func (PortfolioDaily) TableName() string { return "portfolio_daily" }

// PortfolioHistory holds the longer-range series, typically one row per month end.
type PortfolioHistory struct {
	ID                    uint            `gorm:"primaryKey" json:"id"`
	UserID                uint            `gorm:"not null;uniqueIndex:uq_portfolio_history_user_date" json:"user_id"`
	ValueDate             time.Time       `gorm:"type:date;not null;uniqueIndex:uq_portfolio_history_user_date" json:"value_date"`
	TotalValue            decimal.Decimal `gorm:"type:numeric;not null" json:"total_value"`
	DailyChangePercentage decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"daily_change_percentage"`
}

func (PortfolioHistory) TableName() string { return "portfolio_history" }
