package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"investwelth/internal/analytics"
	"investwelth/internal/models"
	"investwelth/internal/pagination"
	"investwelth/internal/services"
	"investwelth/internal/validator"
)

// --- mock services ---

type mockFundService struct {
	listFundsFn          func() ([]models.MutualFund, error)
	getFundDetailFn      func(id uint) (*services.FundDetail, error)
	getFundSectorsFn     func(id uint) ([]services.SectorWeight, error)
	getFundStocksFn      func(id uint) ([]services.StockWeight, error)
	getFundPerformanceFn func(id uint, period analytics.Period, interval analytics.Interval) (*services.FundPerformance, error)
	compareFundsFn       func(id, compareID uint) (*services.FundComparison, error)
	getFundOverlapFn     func(fund1, fund2 uint) (*services.FundOverlapResult, error)
}

var _ services.FundServicer = (*mockFundService)(nil)

func (m *mockFundService) ListFunds(_ context.Context) ([]models.MutualFund, error) {
	if m.listFundsFn != nil {
		return m.listFundsFn()
	}
	return []models.MutualFund{}, nil
}

func (m *mockFundService) GetFundDetail(_ context.Context, id uint) (*services.FundDetail, error) {
	if m.getFundDetailFn != nil {
		return m.getFundDetailFn(id)
	}
	return &services.FundDetail{}, nil
}

func (m *mockFundService) GetFundSectors(_ context.Context, id uint) ([]services.SectorWeight, error) {
	if m.getFundSectorsFn != nil {
		return m.getFundSectorsFn(id)
	}
	return []services.SectorWeight{}, nil
}

func (m *mockFundService) GetFundStocks(_ context.Context, id uint) ([]services.StockWeight, error) {
	if m.getFundStocksFn != nil {
		return m.getFundStocksFn(id)
	}
	return []services.StockWeight{}, nil
}

func (m *mockFundService) GetFundPerformance(_ context.Context, id uint, period analytics.Period, interval analytics.Interval) (*services.FundPerformance, error) {
	if m.getFundPerformanceFn != nil {
		return m.getFundPerformanceFn(id, period, interval)
	}
	return &services.FundPerformance{}, nil
}

func (m *mockFundService) CompareFunds(_ context.Context, id, compareID uint) (*services.FundComparison, error) {
	if m.compareFundsFn != nil {
		return m.compareFundsFn(id, compareID)
	}
	return &services.FundComparison{}, nil
}

func (m *mockFundService) GetFundOverlap(_ context.Context, fund1, fund2 uint) (*services.FundOverlapResult, error) {
	if m.getFundOverlapFn != nil {
		return m.getFundOverlapFn(fund1, fund2)
	}
	return &services.FundOverlapResult{}, nil
}

type mockPortfolioService struct {
	getSummaryFn          func(userID uint) (*services.PortfolioSummary, error)
	getPerformanceFn      func(userID uint, period analytics.Period, interval analytics.Interval) (*services.PortfolioPerformance, error)
	getSectorAllocationFn func(userID uint) (*services.SectorAllocation, error)
	getHealthFn           func(userID uint) (*services.PortfolioHealth, error)
}

var _ services.PortfolioServicer = (*mockPortfolioService)(nil)

func (m *mockPortfolioService) GetSummary(_ context.Context, userID uint) (*services.PortfolioSummary, error) {
	if m.getSummaryFn != nil {
		return m.getSummaryFn(userID)
	}
	return &services.PortfolioSummary{}, nil
}

func (m *mockPortfolioService) GetPerformance(_ context.Context, userID uint, period analytics.Period, interval analytics.Interval) (*services.PortfolioPerformance, error) {
	if m.getPerformanceFn != nil {
		return m.getPerformanceFn(userID, period, interval)
	}
	return &services.PortfolioPerformance{}, nil
}

func (m *mockPortfolioService) GetSectorAllocation(_ context.Context, userID uint) (*services.SectorAllocation, error) {
	if m.getSectorAllocationFn != nil {
		return m.getSectorAllocationFn(userID)
	}
	return &services.SectorAllocation{}, nil
}

func (m *mockPortfolioService) GetHealth(_ context.Context, userID uint) (*services.PortfolioHealth, error) {
	if m.getHealthFn != nil {
		return m.getHealthFn(userID)
	}
	return &services.PortfolioHealth{}, nil
}

type mockInvestmentService struct {
	getSummaryFn           func() (*services.InvestmentSummary, error)
	getUserInvestmentsFn   func(userID uint) ([]services.InvestmentView, error)
	getInvestmentHistoryFn func(userID uint, page pagination.PageRequest) (*pagination.PageResponse[services.InvestmentView], error)
}

var _ services.InvestmentServicer = (*mockInvestmentService)(nil)

func (m *mockInvestmentService) GetSummary(_ context.Context) (*services.InvestmentSummary, error) {
	if m.getSummaryFn != nil {
		return m.getSummaryFn()
	}
	return &services.InvestmentSummary{}, nil
}

func (m *mockInvestmentService) GetUserInvestments(_ context.Context, userID uint) ([]services.InvestmentView, error) {
	if m.getUserInvestmentsFn != nil {
		return m.getUserInvestmentsFn(userID)
	}
	return []services.InvestmentView{}, nil
}

func (m *mockInvestmentService) GetInvestmentHistory(_ context.Context, userID uint, page pagination.PageRequest) (*pagination.PageResponse[services.InvestmentView], error) {
	if m.getInvestmentHistoryFn != nil {
		return m.getInvestmentHistoryFn(userID, page)
	}
	resp := pagination.NewPageResponse([]services.InvestmentView{}, pagination.PageRequest{Page: 1, PageSize: 20}, 0)
	return &resp, nil
}

type mockUserService struct {
	createUserFn    func(input services.RegisterInput) (*models.User, error)
	attemptLoginFn  func(email, password string) (*models.User, error)
	getUserByIDFn   func(id uint) (*models.User, error)
	updateProfileFn func(id uint, input services.ProfileInput) (*models.User, error)
}

var _ services.UserServicer = (*mockUserService)(nil)

func (m *mockUserService) CreateUser(_ context.Context, input services.RegisterInput) (*models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(input)
	}
	return &models.User{ID: 1, Name: input.Name, Email: input.Email}, nil
}

func (m *mockUserService) AttemptLogin(_ context.Context, email, password string) (*models.User, error) {
	if m.attemptLoginFn != nil {
		return m.attemptLoginFn(email, password)
	}
	return &models.User{ID: 1, Email: email}, nil
}

func (m *mockUserService) GetUserByID(_ context.Context, id uint) (*models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(id)
	}
	return &models.User{ID: id}, nil
}

func (m *mockUserService) UpdateProfile(_ context.Context, id uint, input services.ProfileInput) (*models.User, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(id, input)
	}
	return &models.User{ID: id, Name: input.Name, Email: input.Email}, nil
}

type mockPortfolioSnapshotService struct {
	computeAndRecordSnapshotsFn func(recordedAt time.Time) (int, error)
}

var _ services.PortfolioSnapshotServicer = (*mockPortfolioSnapshotService)(nil)

func (m *mockPortfolioSnapshotService) ComputeAndRecordSnapshots(_ context.Context, recordedAt time.Time) (int, error) {
	if m.computeAndRecordSnapshotsFn != nil {
		return m.computeAndRecordSnapshotsFn(recordedAt)
	}
	return 0, nil
}

type auditEntry struct {
	userID uint
	action string
}

type mockAuditService struct {
	entries []auditEntry
}

var _ services.AuditServicer = (*mockAuditService)(nil)

func (m *mockAuditService) Log(_ context.Context, userID uint, action, _ string, _ uint, _ string, _ map[string]interface{}) {
	m.entries = append(m.entries, auditEntry{userID: userID, action: action})
}

type mockTokenIssuer struct {
	err error
}

func (m *mockTokenIssuer) Generate(user *models.User) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return "token-for-" + user.Email, nil
}

var errDatabase = errors.New("database error")

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func injectUserID(uid uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", uid)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func parseJSONArray(t *testing.T, rec *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	var result []interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON array: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}
