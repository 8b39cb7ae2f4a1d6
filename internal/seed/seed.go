// Package seed loads a demo dataset: four bluechip funds with allocations and
// a year of NAV history, three users and the third user's portfolio.
package seed

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"investwelth/internal/analytics"
	"investwelth/internal/logger"
	"investwelth/internal/models"
)

// DemoPassword is the password of every seeded user.
const DemoPassword = "demo1234"

type fundSeed struct {
	name, risk, isin   string
	nav, aum, expRatio string
	sectors            map[string]string
	stocks             map[string]string
	caps               map[string]string
}

var funds = []fundSeed{
	{
		name: "HDFC Top 100 Fund", risk: "Moderate", isin: "INF179K01BE2",
		nav: "845.32", aum: "25430.50", expRatio: "1.62",
		sectors: map[string]string{"Financial Services": "38.5", "Information Technology": "18.2", "Energy": "12.4", "Consumer Goods": "9.1", "Healthcare": "6.3"},
		stocks:  map[string]string{"HDFCBANK": "9.8", "ICICIBANK": "8.4", "INFY": "6.1", "RELIANCE": "5.9", "ITC": "4.2"},
		caps:    map[string]string{"Large Cap": "86.0", "Mid Cap": "10.5", "Small Cap": "3.5"},
	},
	{
		name: "ICICI Prudential Bluechip Fund", risk: "Moderate", isin: "INF109K01BL4",
		nav: "78.45", aum: "38210.20", expRatio: "1.54",
		sectors: map[string]string{"Financial Services": "31.0", "Information Technology": "14.6", "Energy": "10.8", "Healthcare": "8.7", "Consumer Goods": "7.2"},
		stocks:  map[string]string{"ICICIBANK": "9.1", "HDFCBANK": "7.7", "RELIANCE": "7.3", "TCS": "4.8", "INFY": "4.4"},
		caps:    map[string]string{"Large Cap": "89.5", "Mid Cap": "8.0", "Small Cap": "2.5"},
	},
	{
		name: "SBI Bluechip Fund", risk: "Low", isin: "INF200K01180",
		nav: "72.18", aum: "35120.80", expRatio: "1.58",
		sectors: map[string]string{"Financial Services": "29.4", "Consumer Goods": "13.5", "Information Technology": "12.1", "Healthcare": "9.9", "Energy": "7.6"},
		stocks:  map[string]string{"HDFCBANK": "8.9", "ITC": "5.6", "TCS": "5.2", "ICICIBANK": "5.0", "RELIANCE": "4.1"},
		caps:    map[string]string{"Large Cap": "82.0", "Mid Cap": "14.0", "Small Cap": "4.0"},
	},
	{
		name: "Axis Bluechip Fund", risk: "High", isin: "INF846K01164",
		nav: "51.27", aum: "33450.10", expRatio: "1.49",
		sectors: map[string]string{"Information Technology": "24.3", "Financial Services": "22.7", "Consumer Goods": "15.8", "Healthcare": "11.2", "Energy": "5.4"},
		stocks:  map[string]string{"INFY": "8.6", "TCS": "8.1", "HDFCBANK": "6.4", "ITC": "5.5", "ICICIBANK": "3.9"},
		caps:    map[string]string{"Large Cap": "78.0", "Mid Cap": "17.5", "Small Cap": "4.5"},
	},
}

var stockNames = map[string]string{
	"HDFCBANK":  "HDFC Bank",
	"ICICIBANK": "ICICI Bank",
	"INFY":      "Infosys",
	"RELIANCE":  "Reliance Industries",
	"TCS":       "Tata Consultancy Services",
	"ITC":       "ITC",
}

var users = []struct{ name, email, risk string }{
	{"Arjun Mehta", "arjun@investwelth.dev", models.RiskProfileLow},
	{"Priya Sharma", "priya@investwelth.dev", models.RiskProfileHigh},
	{"Demo Investor", "demo@investwelth.dev", models.RiskProfileModerate},
}

// investments of the demo investor, by fund index.
var demoInvestments = []struct {
	fund            int
	amount, returns string
	date            time.Time
}{
	{0, "50000", "12.5", time.Date(2023, 1, 16, 0, 0, 0, 0, time.UTC)},
	{1, "75000", "8.2", time.Date(2023, 4, 3, 0, 0, 0, 0, time.UTC)},
	{2, "100000", "15.3", time.Date(2023, 7, 10, 0, 0, 0, 0, time.UTC)},
	{3, "125000", "-2.1", time.Date(2023, 10, 2, 0, 0, 0, 0, time.UTC)},
}

// Seed inserts the demo dataset. A database that already holds funds is left
// untouched.
func Seed(ctx context.Context, db *gorm.DB) error {
	return seed(ctx, db, time.Now())
}

func seed(ctx context.Context, db *gorm.DB, now time.Time) error {
	log := logger.Get()
	db = db.WithContext(ctx)

	var existing int64
	if err := db.Model(&models.MutualFund{}).Count(&existing).Error; err != nil {
		return fmt.Errorf("failed to count funds: %w", err)
	}
	if existing > 0 {
		log.Infow("database already seeded", "funds", existing)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	today := analytics.Day(now)
	return db.Transaction(func(tx *gorm.DB) error {
		fundIDs, err := seedFunds(tx, today)
		if err != nil {
			return err
		}

		userIDs := make([]uint, len(users))
		for i, u := range users {
			user := models.User{Name: u.name, Email: u.email, Password: string(hash), RiskProfile: u.risk}
			if err := tx.Create(&user).Error; err != nil {
				return fmt.Errorf("failed to create user %s: %w", u.email, err)
			}
			userIDs[i] = user.ID
		}

		// The first user holds a single fund so platform totals span users.
		if err := tx.Create(&models.UserInvestment{
			UserID:                 userIDs[0],
			FundID:                 fundIDs[2],
			AmountInvested:         decimal.NewNullDecimal(decimal.NewFromInt(20000)),
			InvestmentDate:         time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
			ReturnsSinceInvestment: decimal.NewNullDecimal(decimal.RequireFromString("9.4")),
		}).Error; err != nil {
			return fmt.Errorf("failed to create investment: %w", err)
		}

		demoID := userIDs[len(userIDs)-1]
		holdings := make([]analytics.Holding, 0, len(demoInvestments))
		for _, di := range demoInvestments {
			inv := models.UserInvestment{
				UserID:                 demoID,
				FundID:                 fundIDs[di.fund],
				AmountInvested:         decimal.NewNullDecimal(decimal.RequireFromString(di.amount)),
				InvestmentDate:         di.date,
				ReturnsSinceInvestment: decimal.NewNullDecimal(decimal.RequireFromString(di.returns)),
			}
			if err := tx.Create(&inv).Error; err != nil {
				return fmt.Errorf("failed to create investment: %w", err)
			}
			holdings = append(holdings, analytics.Holding{Amount: inv.Amount(), ReturnsPct: inv.ReturnsPct()})
		}

		if err := seedPortfolioHistory(tx, demoID, today, analytics.Summarize(holdings).Value); err != nil {
			return err
		}

		log.Infow("seeded demo dataset", "funds", len(fundIDs), "users", len(userIDs), "demo_user_id", demoID)
		return nil
	})
}

func seedFunds(tx *gorm.DB, today time.Time) ([]uint, error) {
	sectorIDs := make(map[string]uint)
	stockIDs := make(map[string]uint)
	capIDs := make(map[string]uint)

	ids := make([]uint, len(funds))
	for i, f := range funds {
		isin := f.isin
		fund := models.MutualFund{
			Name:         f.name,
			Type:         "Equity",
			RiskLevel:    f.risk,
			NAV:          decimal.NewNullDecimal(decimal.RequireFromString(f.nav)),
			AUM:          decimal.NewNullDecimal(decimal.RequireFromString(f.aum)),
			ExpenseRatio: decimal.NewNullDecimal(decimal.RequireFromString(f.expRatio)),
			ISIN:         &isin,
		}
		if err := tx.Create(&fund).Error; err != nil {
			return nil, fmt.Errorf("failed to create fund %s: %w", f.name, err)
		}
		ids[i] = fund.ID

		for name, pct := range f.sectors {
			if _, ok := sectorIDs[name]; !ok {
				sector := models.Sector{Name: name}
				if err := tx.Create(&sector).Error; err != nil {
					return nil, fmt.Errorf("failed to create sector %s: %w", name, err)
				}
				sectorIDs[name] = sector.ID
			}
			if err := tx.Create(&models.FundSectorAllocation{
				FundID: fund.ID, SectorID: sectorIDs[name], AllocationPercentage: decimal.RequireFromString(pct),
			}).Error; err != nil {
				return nil, fmt.Errorf("failed to create sector allocation: %w", err)
			}
		}

		for ticker, pct := range f.stocks {
			if _, ok := stockIDs[ticker]; !ok {
				stock := models.Stock{Name: stockNames[ticker], Ticker: ticker}
				if err := tx.Create(&stock).Error; err != nil {
					return nil, fmt.Errorf("failed to create stock %s: %w", ticker, err)
				}
				stockIDs[ticker] = stock.ID
			}
			if err := tx.Create(&models.FundStockAllocation{
				FundID: fund.ID, StockID: stockIDs[ticker], AllocationPercentage: decimal.RequireFromString(pct),
			}).Error; err != nil {
				return nil, fmt.Errorf("failed to create stock allocation: %w", err)
			}
		}

		for category, pct := range f.caps {
			if _, ok := capIDs[category]; !ok {
				mc := models.MarketCap{Category: category}
				if err := tx.Create(&mc).Error; err != nil {
					return nil, fmt.Errorf("failed to create market cap %s: %w", category, err)
				}
				capIDs[category] = mc.ID
			}
			if err := tx.Create(&models.FundMarketCapAllocation{
				FundID: fund.ID, MarketCapID: capIDs[category], AllocationPercentage: decimal.RequireFromString(pct),
			}).Error; err != nil {
				return nil, fmt.Errorf("failed to create market cap allocation: %w", err)
			}
		}

		if err := tx.CreateInBatches(navHistory(fund.ID, fund.CurrentNAV(), today, i), 100).Error; err != nil {
			return nil, fmt.Errorf("failed to create history for %s: %w", f.name, err)
		}
	}

	if err := tx.Create(&models.FundOverlap{
		FundID1: ids[0], FundID2: ids[1], OverlapPercentage: decimal.RequireFromString("42.5"),
	}).Error; err != nil {
		return nil, fmt.Errorf("failed to create fund overlap: %w", err)
	}
	return ids, nil
}

// navHistory walks the NAV back a year from today's value: roughly 10% lower
// a year ago with a gentle wave whose phase differs per fund.
func navHistory(fundID uint, current decimal.Decimal, today time.Time, phase int) []models.FundHistory {
	start := today.AddDate(-1, 0, 0)
	days := int(today.Sub(start).Hours() / 24)
	base := current.InexactFloat64()

	rows := make([]models.FundHistory, 0, days+1)
	prev := decimal.Zero
	for d := 0; d <= days; d++ {
		remaining := float64(days-d) / float64(days)
		wave := math.Sin(float64(d+phase*7)/9) * 0.015
		nav := decimal.NewFromFloat(base * (1 - 0.1*remaining + wave*remaining)).Round(4)
		if d == days {
			nav = current
		}
		change := decimal.Zero
		if !prev.IsZero() {
			change = nav.Sub(prev).Div(prev).Mul(decimal.NewFromInt(100)).Round(4)
		}
		rows = append(rows, models.FundHistory{
			FundID:                fundID,
			ValueDate:             start.AddDate(0, 0, d),
			NAV:                   decimal.NewNullDecimal(nav),
			DailyChangePercentage: decimal.NewNullDecimal(change),
		})
		prev = nav
	}
	return rows
}

// seedPortfolioHistory writes twelve month-end values for userID, climbing
// to the current portfolio value at the last completed month.
func seedPortfolioHistory(tx *gorm.DB, userID uint, today time.Time, current decimal.Decimal) error {
	firstOfMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	rows := make([]models.PortfolioHistory, 0, 12)
	prev := decimal.Zero
	for i := 11; i >= 0; i-- {
		monthEnd := firstOfMonth.AddDate(0, -i, 0).AddDate(0, 0, -1)
		factor := decimal.NewFromFloat(1 - 0.01*float64(i))
		value := current.Mul(factor).Round(2)
		change := decimal.Zero
		if !prev.IsZero() {
			change = value.Sub(prev).Div(prev).Mul(decimal.NewFromInt(100)).Round(4)
		}
		rows = append(rows, models.PortfolioHistory{
			UserID: userID, ValueDate: monthEnd, TotalValue: value, DailyChangePercentage: change,
		})
		prev = value
	}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to create portfolio history: %w", err)
	}
	return nil
}
