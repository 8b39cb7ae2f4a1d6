package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"investwelth/internal/pagination"
	"investwelth/internal/services"
)

func setupInvestmentRouter(handler *InvestmentHandler) *gin.Engine {
	r := gin.New()
	r.GET("/investments/summary", handler.GetSummary)
	auth := r.Group("", injectUserID(5))
	auth.GET("/investments", handler.GetInvestments)
	auth.GET("/transactions", handler.GetTransactions)
	return r
}

func TestInvestmentHandler_GetSummary(t *testing.T) {
	t.Run("returns_200_with_null_top_fund", func(t *testing.T) {
		svc := &mockInvestmentService{
			getSummaryFn: func() (*services.InvestmentSummary, error) {
				return &services.InvestmentSummary{UserCount: 3, FundCount: 4}, nil
			},
		}
		rec := doRequest(setupInvestmentRouter(NewInvestmentHandler(svc)), "GET", "/investments/summary", "")

		assertStatus(t, rec, http.StatusOK)
		result := parseJSON(t, rec)
		if result["userCount"].(float64) != 3 {
			t.Errorf("unexpected body %v", result)
		}
		if v, ok := result["topPerformingFund"]; !ok || v != nil {
			t.Errorf("expected topPerformingFund null, got %v", v)
		}
	})

	t.Run("returns_500_on_error", func(t *testing.T) {
		svc := &mockInvestmentService{
			getSummaryFn: func() (*services.InvestmentSummary, error) { return nil, errDatabase },
		}
		rec := doRequest(setupInvestmentRouter(NewInvestmentHandler(svc)), "GET", "/investments/summary", "")
		assertStatus(t, rec, http.StatusInternalServerError)
	})
}

func TestInvestmentHandler_GetInvestments(t *testing.T) {
	var captured uint
	svc := &mockInvestmentService{
		getUserInvestmentsFn: func(userID uint) ([]services.InvestmentView, error) {
			captured = userID
			return []services.InvestmentView{{ID: 1, FundName: "Unknown Fund", FundType: "Unknown", RiskLevel: "Unknown"}}, nil
		},
	}
	rec := doRequest(setupInvestmentRouter(NewInvestmentHandler(svc)), "GET", "/investments", "")

	assertStatus(t, rec, http.StatusOK)
	if captured != 5 {
		t.Errorf("expected user 5, got %d", captured)
	}
	items := parseJSONArray(t, rec)
	if items[0].(map[string]interface{})["fundName"] != "Unknown Fund" {
		t.Errorf("unexpected items %v", items)
	}
}

func TestInvestmentHandler_GetTransactions(t *testing.T) {
	t.Run("passes_pagination", func(t *testing.T) {
		var captured pagination.PageRequest
		svc := &mockInvestmentService{
			getInvestmentHistoryFn: func(_ uint, page pagination.PageRequest) (*pagination.PageResponse[services.InvestmentView], error) {
				captured = page
				resp := pagination.NewPageResponse([]services.InvestmentView{}, page, 0)
				return &resp, nil
			},
		}
		rec := doRequest(setupInvestmentRouter(NewInvestmentHandler(svc)), "GET", "/transactions?page=2&page_size=10", "")

		assertStatus(t, rec, http.StatusOK)
		if captured.Page != 2 || captured.PageSize != 10 {
			t.Errorf("expected page 2 size 10, got %+v", captured)
		}
	})

	t.Run("returns_400_invalid_page_size", func(t *testing.T) {
		rec := doRequest(setupInvestmentRouter(NewInvestmentHandler(&mockInvestmentService{})), "GET", "/transactions?page_size=500", "")

		assertStatus(t, rec, http.StatusBadRequest)
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}
