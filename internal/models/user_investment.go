package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserInvestment is a user's position in one fund. Amount and returns may be
// null upstream and resolve to zero through the accessors.
type UserInvestment struct {
	ID                     uint                `gorm:"column:investment_id;primaryKey" json:"investment_id"`
	UserID                 uint                `gorm:"not null;index" json:"user_id"`
	FundID                 uint                `gorm:"not null" json:"fund_id"`
	AmountInvested         decimal.NullDecimal `gorm:"type:numeric" json:"amount_invested"`
	InvestmentDate         time.Time           `gorm:"type:date" json:"investment_date"`
	ReturnsSinceInvestment decimal.NullDecimal `gorm:"type:numeric" json:"returns_since_investment"`
	Fund                   *MutualFund         `gorm:"foreignKey:FundID;references:ID" json:"fund,omitempty"`
}

func (UserInvestment) TableName() string { return "user_investments" }

// Amount returns the invested amount, or zero when unknown.
func (i UserInvestment) Amount() decimal.Decimal { return orZero(i.AmountInvested) }

// ReturnsPct returns the percentage return since investment, or zero when unknown.
func (i UserInvestment) ReturnsPct() decimal.Decimal { return orZero(i.ReturnsSinceInvestment) }
