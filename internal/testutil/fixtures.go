package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"investwelth/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the plain-text password of every fixture user.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Dec parses a decimal literal and panics on bad input.
func Dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// NullDec parses a decimal literal into a valid NullDecimal.
func NullDec(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(Dec(s))
}

// Date returns midnight UTC of the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func create(t *testing.T, db *gorm.DB, what string, v interface{}) {
	t.Helper()
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("failed to create test %s: %v", what, err)
	}
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:        "Test User",
		Email:       email,
		Password:    string(hash),
		RiskProfile: models.RiskProfileModerate,
	}
	create(t, db, "user", user)
	return user
}

// CreateTestFund creates a fund with the given risk level and NAV. An empty
// nav leaves the NAV null.
func CreateTestFund(t *testing.T, db *gorm.DB, name, riskLevel, nav string) *models.MutualFund {
	t.Helper()

	fund := &models.MutualFund{
		Name:         name,
		Type:         "Equity",
		RiskLevel:    riskLevel,
		AUM:          NullDec("1000"),
		ExpenseRatio: NullDec("1.25"),
	}
	if nav != "" {
		fund.NAV = NullDec(nav)
	}
	create(t, db, "fund", fund)
	return fund
}

// AddSector gives a fund a sector allocation, creating the sector by name if needed.
func AddSector(t *testing.T, db *gorm.DB, fundID uint, sector, pct string) {
	t.Helper()

	var s models.Sector
	if err := db.Where(models.Sector{Name: sector}).FirstOrCreate(&s).Error; err != nil {
		t.Fatalf("failed to create test sector: %v", err)
	}
	create(t, db, "sector allocation", &models.FundSectorAllocation{FundID: fundID, SectorID: s.ID, AllocationPercentage: Dec(pct)})
}

// AddStock gives a fund a stock allocation, creating the stock by name if needed.
func AddStock(t *testing.T, db *gorm.DB, fundID uint, name, ticker, pct string) {
	t.Helper()

	var s models.Stock
	if err := db.Where(models.Stock{Name: name}).Attrs(models.Stock{Ticker: ticker}).FirstOrCreate(&s).Error; err != nil {
		t.Fatalf("failed to create test stock: %v", err)
	}
	create(t, db, "stock allocation", &models.FundStockAllocation{FundID: fundID, StockID: s.ID, AllocationPercentage: Dec(pct)})
}

// AddMarketCap gives a fund a market-cap allocation, creating the bucket if needed.
func AddMarketCap(t *testing.T, db *gorm.DB, fundID uint, category, pct string) {
	t.Helper()

	var m models.MarketCap
	if err := db.Where(models.MarketCap{Category: category}).FirstOrCreate(&m).Error; err != nil {
		t.Fatalf("failed to create test market cap: %v", err)
	}
	create(t, db, "market cap allocation", &models.FundMarketCapAllocation{FundID: fundID, MarketCapID: m.ID, AllocationPercentage: Dec(pct)})
}

// AddFundHistory records one NAV observation.
func AddFundHistory(t *testing.T, db *gorm.DB, fundID uint, day time.Time, nav, change string) {
	t.Helper()
	create(t, db, "fund history", &models.FundHistory{FundID: fundID, ValueDate: day, NAV: NullDec(nav), DailyChangePercentage: NullDec(change)})
}

// CreateTestInvestment creates a holding of amount with the given returns
// percentage. An empty returns leaves it null.
func CreateTestInvestment(t *testing.T, db *gorm.DB, userID, fundID uint, amount, returns string, day time.Time) *models.UserInvestment {
	t.Helper()

	inv := &models.UserInvestment{
		UserID:         userID,
		FundID:         fundID,
		AmountInvested: NullDec(amount),
		InvestmentDate: day,
	}
	if returns != "" {
		inv.ReturnsSinceInvestment = NullDec(returns)
	}
	create(t, db, "investment", inv)
	return inv
}

// AddPortfolioDaily records one daily portfolio value.
func AddPortfolioDaily(t *testing.T, db *gorm.DB, userID uint, day time.Time, value, change string) {
	t.Helper()
	create(t, db, "portfolio daily", &models.PortfolioDaily{UserID: userID, ValueDate: day, TotalValue: Dec(value), DailyChangePercentage: Dec(change)})
}

// AddPortfolioHistory records one long-range portfolio value.
func AddPortfolioHistory(t *testing.T, db *gorm.DB, userID uint, day time.Time, value, change string) {
	t.Helper()
	create(t, db, "portfolio history", &models.PortfolioHistory{UserID: userID, ValueDate: day, TotalValue: Dec(value), DailyChangePercentage: Dec(change)})
}
