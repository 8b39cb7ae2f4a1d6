package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"investwelth/internal/analytics"
	apperrors "investwelth/internal/errors"
	"investwelth/internal/services"
)

func setupPortfolioRouter(handler *PortfolioHandler, userID uint) *gin.Engine {
	r := gin.New()
	g := r.Group("/portfolio")
	if userID != 0 {
		g.Use(injectUserID(userID))
	}
	g.GET("", handler.GetPortfolio)
	g.GET("/performance", handler.GetPerformance)
	g.GET("/sectors", handler.GetSectorAllocation)
	g.GET("/health", handler.GetHealth)
	return r
}

func TestPortfolioHandler_GetPortfolio(t *testing.T) {
	t.Run("returns_200_for_current_user", func(t *testing.T) {
		var captured uint
		svc := &mockPortfolioService{
			getSummaryFn: func(userID uint) (*services.PortfolioSummary, error) {
				captured = userID
				return &services.PortfolioSummary{TotalValue: 4500, TotalInvested: 4000, Investments: []services.PortfolioInvestment{}}, nil
			},
		}
		rec := doRequest(setupPortfolioRouter(NewPortfolioHandler(svc), 3), "GET", "/portfolio", "")

		assertStatus(t, rec, http.StatusOK)
		if captured != 3 {
			t.Errorf("expected user 3, got %d", captured)
		}
		if parseJSON(t, rec)["totalValue"].(float64) != 4500 {
			t.Error("expected totalValue 4500")
		}
	})

	t.Run("returns_404_without_investments", func(t *testing.T) {
		svc := &mockPortfolioService{
			getSummaryFn: func(uint) (*services.PortfolioSummary, error) { return nil, apperrors.ErrNoInvestments },
		}
		rec := doRequest(setupPortfolioRouter(NewPortfolioHandler(svc), 3), "GET", "/portfolio", "")

		assertStatus(t, rec, http.StatusNotFound)
		assertErrorCode(t, parseJSON(t, rec), "NO_INVESTMENTS")
	})

	t.Run("returns_401_without_user", func(t *testing.T) {
		rec := doRequest(setupPortfolioRouter(NewPortfolioHandler(&mockPortfolioService{}), 0), "GET", "/portfolio", "")

		assertStatus(t, rec, http.StatusUnauthorized)
		assertErrorCode(t, parseJSON(t, rec), "UNAUTHORIZED")
	})
}

func TestPortfolioHandler_GetPerformance(t *testing.T) {
	t.Run("passes_range", func(t *testing.T) {
		var gotPeriod analytics.Period
		var gotInterval analytics.Interval
		svc := &mockPortfolioService{
			getPerformanceFn: func(userID uint, p analytics.Period, i analytics.Interval) (*services.PortfolioPerformance, error) {
				gotPeriod, gotInterval = p, i
				return &services.PortfolioPerformance{UserID: userID, Period: string(p), Interval: string(i), Synthetic: true, Data: []services.ValuePoint{}}, nil
			},
		}
		rec := doRequest(setupPortfolioRouter(NewPortfolioHandler(svc), 3), "GET", "/portfolio/performance?period=1Y&interval=yearly", "")

		assertStatus(t, rec, http.StatusOK)
		if gotPeriod != analytics.Period1Y || gotInterval != analytics.Yearly {
			t.Errorf("expected 1Y/yearly, got %s/%s", gotPeriod, gotInterval)
		}
		result := parseJSON(t, rec)
		if result["synthetic"] != true || result["userId"].(float64) != 3 {
			t.Errorf("unexpected body %v", result)
		}
	})

	t.Run("returns_400_invalid_period", func(t *testing.T) {
		rec := doRequest(setupPortfolioRouter(NewPortfolioHandler(&mockPortfolioService{}), 3), "GET", "/portfolio/performance?period=10Y", "")

		assertStatus(t, rec, http.StatusBadRequest)
		assertErrorCode(t, parseJSON(t, rec), "INVALID_PERIOD")
	})
}

func TestPortfolioHandler_SectorsAndHealth(t *testing.T) {
	svc := &mockPortfolioService{
		getSectorAllocationFn: func(uint) (*services.SectorAllocation, error) {
			return &services.SectorAllocation{TotalValue: 2000, Sectors: []services.SectorValue{{Sector: "Banking", Value: 890, Percentage: 44.5}}}, nil
		},
		getHealthFn: func(uint) (*services.PortfolioHealth, error) {
			return &services.PortfolioHealth{
				RiskScore:       100,
				Recommendations: []services.RecommendationView{{Category: analytics.CategoryRisk, Text: "Your portfolio has a high risk level."}},
			}, nil
		},
	}
	r := setupPortfolioRouter(NewPortfolioHandler(svc), 3)

	rec := doRequest(r, "GET", "/portfolio/sectors", "")
	assertStatus(t, rec, http.StatusOK)
	sectors := parseJSON(t, rec)["sectors"].([]interface{})
	if sectors[0].(map[string]interface{})["percentage"].(float64) != 44.5 {
		t.Errorf("unexpected sectors %v", sectors)
	}

	rec = doRequest(r, "GET", "/portfolio/health", "")
	assertStatus(t, rec, http.StatusOK)
	health := parseJSON(t, rec)
	recs := health["recommendations"].([]interface{})
	if len(recs) != 1 || recs[0].(map[string]interface{})["category"] != "Risk" {
		t.Errorf("unexpected recommendations %v", recs)
	}
}

func TestPortfolioHandler_ServiceFailure(t *testing.T) {
	svc := &mockPortfolioService{
		getHealthFn: func(uint) (*services.PortfolioHealth, error) { return nil, errDatabase },
	}
	rec := doRequest(setupPortfolioRouter(NewPortfolioHandler(svc), 3), "GET", "/portfolio/health", "")

	assertStatus(t, rec, http.StatusInternalServerError)
	assertErrorCode(t, parseJSON(t, rec), "INTERNAL_ERROR")
}
