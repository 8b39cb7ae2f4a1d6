package services

import (
	"context"
	"time"

	"investwelth/internal/analytics"
	"investwelth/internal/models"
	"investwelth/internal/pagination"
)

// FundServicer defines the contract for mutual fund reference data.
type FundServicer interface {
	ListFunds(ctx context.Context) ([]models.MutualFund, error)
	GetFundDetail(ctx context.Context, fundID uint) (*FundDetail, error)
	GetFundSectors(ctx context.Context, fundID uint) ([]SectorWeight, error)
	GetFundStocks(ctx context.Context, fundID uint) ([]StockWeight, error)
	GetFundPerformance(ctx context.Context, fundID uint, period analytics.Period, interval analytics.Interval) (*FundPerformance, error)
	CompareFunds(ctx context.Context, fundID, compareID uint) (*FundComparison, error)
	GetFundOverlap(ctx context.Context, fund1ID, fund2ID uint) (*FundOverlapResult, error)
}

// PortfolioServicer defines the contract for a user's aggregated portfolio.
type PortfolioServicer interface {
	GetSummary(ctx context.Context, userID uint) (*PortfolioSummary, error)
	GetPerformance(ctx context.Context, userID uint, period analytics.Period, interval analytics.Interval) (*PortfolioPerformance, error)
	GetSectorAllocation(ctx context.Context, userID uint) (*SectorAllocation, error)
	GetHealth(ctx context.Context, userID uint) (*PortfolioHealth, error)
}

// InvestmentServicer defines the contract for investment listings and platform totals.
type InvestmentServicer interface {
	GetSummary(ctx context.Context) (*InvestmentSummary, error)
	GetUserInvestments(ctx context.Context, userID uint) ([]InvestmentView, error)
	GetInvestmentHistory(ctx context.Context, userID uint, page pagination.PageRequest) (*pagination.PageResponse[InvestmentView], error)
}

// RegisterInput holds the fields accepted at registration.
type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	Phone       *string
	RiskProfile string
}

// ProfileInput holds a profile update. Nil optional fields are left unchanged.
type ProfileInput struct {
	Name        string
	Email       string
	Phone       *string
	RiskProfile *string
}

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(ctx context.Context, input RegisterInput) (*models.User, error)
	AttemptLogin(ctx context.Context, email, password string) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	UpdateProfile(ctx context.Context, id uint, input ProfileInput) (*models.User, error)
}

// PortfolioSnapshotServicer records portfolio values for the performance series.
type PortfolioSnapshotServicer interface {
	ComputeAndRecordSnapshots(ctx context.Context, recordedAt time.Time) (int, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(ctx context.Context, userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}
