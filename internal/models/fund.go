package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// MutualFund is read-only reference data. NAV, AUM and expense ratio may be
// missing upstream; use the accessors to read them with a zero default.
type MutualFund struct {
	ID           uint                `gorm:"column:fund_id;primaryKey" json:"fund_id"`
	Name         string              `gorm:"column:fund_name;not null" json:"fund_name"`
	Type         string              `gorm:"column:fund_type" json:"fund_type"`
	RiskLevel    string              `json:"risk_level"`
	NAV          decimal.NullDecimal `gorm:"column:nav;type:numeric" json:"nav"`
	AUM          decimal.NullDecimal `gorm:"column:aum;type:numeric" json:"aum"`
	ExpenseRatio decimal.NullDecimal `gorm:"type:numeric" json:"expense_ratio"`
	ISIN         *string             `gorm:"column:isin" json:"isin"`
}

func (MutualFund) TableName() string { return "mutual_funds" }

// CurrentNAV returns the NAV, or zero when unknown.
func (f MutualFund) CurrentNAV() decimal.Decimal { return orZero(f.NAV) }

// AUMValue returns assets under management, or zero when unknown.
func (f MutualFund) AUMValue() decimal.Decimal { return orZero(f.AUM) }

// ExpenseRatioValue returns the expense ratio, or zero when unknown.
func (f MutualFund) ExpenseRatioValue() decimal.Decimal { return orZero(f.ExpenseRatio) }

type Sector struct {
	ID   uint   `gorm:"column:sector_id;primaryKey" json:"sector_id"`
	Name string `gorm:"column:sector_name;not null" json:"sector_name"`
}

func (Sector) TableName() string { return "sectors" }

type FundSectorAllocation struct {
	ID                   uint            `gorm:"primaryKey" json:"id"`
	FundID               uint            `gorm:"not null;index" json:"fund_id"`
	SectorID             uint            `gorm:"not null" json:"sector_id"`
	AllocationPercentage decimal.Decimal `gorm:"type:numeric;not null" json:"allocation_percentage"`
	Sector               Sector          `gorm:"foreignKey:SectorID;references:ID" json:"sector"`
}

func (FundSectorAllocation) TableName() string { return "fund_sector_allocations" }

type Stock struct {
	ID     uint   `gorm:"column:stock_id;primaryKey" json:"stock_id"`
	Name   string `gorm:"column:stock_name;not null" json:"stock_name"`
	Ticker string `json:"ticker"`
}

func (Stock) TableName() string { return "stocks" }

// Key identifies a stock across funds: the ticker when present, else the name.
func (s Stock) Key() string {
	if s.Ticker != "" {
		return s.Ticker
	}
	return s.Name
}

type FundStockAllocation struct {
	ID                   uint            `gorm:"primaryKey" json:"id"`
	FundID               uint            `gorm:"not null;index" json:"fund_id"`
	StockID              uint            `gorm:"not null" json:"stock_id"`
	AllocationPercentage decimal.Decimal `gorm:"type:numeric;not null" json:"allocation_percentage"`
	Stock                Stock           `gorm:"foreignKey:StockID;references:ID" json:"stock"`
}

func (FundStockAllocation) TableName() string { return "fund_stock_allocations" }

type MarketCap struct {
	ID       uint   `gorm:"column:market_cap_id;primaryKey" json:"market_cap_id"`
	Category string `gorm:"column:cap_category;not null" json:"cap_category"`
}

func (MarketCap) TableName() string { return "market_caps" }

type FundMarketCapAllocation struct {
	ID                   uint            `gorm:"primaryKey" json:"id"`
	FundID               uint            `gorm:"not null;index" json:"fund_id"`
	MarketCapID          uint            `gorm:"not null" json:"market_cap_id"`
	AllocationPercentage decimal.Decimal `gorm:"type:numeric;not null" json:"allocation_percentage"`
	MarketCap            MarketCap       `gorm:"foreignKey:MarketCapID;references:ID" json:"market_cap"`
}

func (FundMarketCapAllocation) TableName() string { return "fund_market_cap_allocations" }

// FundHistory is one daily NAV observation.
type FundHistory struct {
	ID                    uint                `gorm:"primaryKey" json:"id"`
	FundID                uint                `gorm:"not null;index:idx_fund_history_fund_date" json:"fund_id"`
	ValueDate             time.Time           `gorm:"type:date;not null;index:idx_fund_history_fund_date" json:"value_date"`
	NAV                   decimal.NullDecimal `gorm:"column:nav;type:numeric" json:"nav"`
	DailyChangePercentage decimal.NullDecimal `gorm:"type:numeric" json:"daily_change_percentage"`
}

func (FundHistory) TableName() string { return "fund_history" }

// FundOverlap is a precomputed overlap between two funds. Pairs are stored
// once, in either order.
type FundOverlap struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	FundID1           uint            `gorm:"column:fund_id1;not null" json:"fund_id1"`
	FundID2           uint            `gorm:"column:fund_id2;not null" json:"fund_id2"`
	OverlapPercentage decimal.Decimal `gorm:"type:numeric;not null" json:"overlap_percentage"`
}

func (FundOverlap) TableName() string { return "fund_overlaps" }

func orZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}
