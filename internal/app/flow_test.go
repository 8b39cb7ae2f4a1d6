package app

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"investwelth/internal/config"
	"investwelth/internal/models"
	"investwelth/internal/testutil"
)

func TestAuthFlow_RegisterLoginProfile(t *testing.T) {
	app := setupApp(t)

	token, userID := app.registerUser(t, "Asha@Example.com", "secret123")
	if token == "" || userID == 0 {
		t.Fatal("expected token and user ID from registration")
	}

	rec := app.request("POST", "/api/users/login", `{"email":"asha@example.com","password":"secret123"}`, nil)
	expectStatus(t, rec, http.StatusOK)
	loginToken := parseJSON(t, rec)["token"].(string)

	rec = app.request("GET", "/api/users/profile", "", bearer(loginToken))
	expectStatus(t, rec, http.StatusOK)
	profile := parseJSON(t, rec)
	if profile["email"] != "asha@example.com" {
		t.Errorf("expected normalized email, got %v", profile["email"])
	}
	if _, leaked := profile["password"]; leaked {
		t.Error("password hash must not be serialized")
	}
	if profile["risk_profile"] != models.RiskProfileModerate {
		t.Errorf("expected default risk profile, got %v", profile["risk_profile"])
	}

	rec = app.request("PUT", "/api/users/profile",
		`{"name":"Asha R","email":"asha@example.com","phone":"+91 98200 00000","risk_profile":"High"}`, bearer(loginToken))
	expectStatus(t, rec, http.StatusOK)
	if parseJSON(t, rec)["risk_profile"] != "High" {
		t.Error("expected risk profile to be updated")
	}

	var actions []string
	app.DB.Model(&models.AuditLog{}).Where("user_id = ?", userID).Order("id").Pluck("action", &actions)
	if strings.Join(actions, ",") != "REGISTER,LOGIN,UPDATE_PROFILE" {
		t.Errorf("unexpected audit trail %v", actions)
	}
}

func TestAuthFlow_Failures(t *testing.T) {
	app := setupApp(t)
	app.registerUser(t, "dup@example.com", "secret123")

	rec := app.request("POST", "/api/users/register", `{"name":"Dup","email":"dup@example.com","password":"secret123"}`, nil)
	expectStatus(t, rec, http.StatusConflict)
	if code := errorCode(t, rec); code != "DUPLICATE_EMAIL" {
		t.Errorf("expected DUPLICATE_EMAIL, got %s", code)
	}

	rec = app.request("POST", "/api/users/login", `{"email":"dup@example.com","password":"wrong-password"}`, nil)
	expectStatus(t, rec, http.StatusUnauthorized)

	rec = app.request("GET", "/api/users/profile", "", nil)
	expectStatus(t, rec, http.StatusUnauthorized)

	rec = app.request("GET", "/api/portfolio", "", bearer("not-a-jwt"))
	expectStatus(t, rec, http.StatusUnauthorized)
}

func TestFundRoutes(t *testing.T) {
	app := setupApp(t)
	bluechip := testutil.CreateTestFund(t, app.DB, "Bluechip Fund", "Moderate", "100")
	midcap := testutil.CreateTestFund(t, app.DB, "Midcap Fund", "High", "50")
	testutil.AddStock(t, app.DB, bluechip.ID, "Infosys", "INFY", "8")
	testutil.AddStock(t, app.DB, midcap.ID, "Infosys", "INFY", "5")

	rec := app.request("GET", "/api/funds", "", nil)
	expectStatus(t, rec, http.StatusOK)
	if !strings.Contains(rec.Body.String(), `"fund_name":"Bluechip Fund"`) {
		t.Errorf("expected fund list, got %s", rec.Body.String())
	}

	rec = app.request("GET", fmt.Sprintf("/api/funds/%d", bluechip.ID), "", nil)
	expectStatus(t, rec, http.StatusOK)

	rec = app.request("GET", fmt.Sprintf("/api/funds/overlap?fund1=%d&fund2=%d", bluechip.ID, midcap.ID), "", nil)
	expectStatus(t, rec, http.StatusOK)
	if parseJSON(t, rec)["stocksOverlap"].(float64) != 1 {
		t.Errorf("expected one common stock, got %s", rec.Body.String())
	}

	rec = app.request("GET", "/api/funds/9999", "", nil)
	expectStatus(t, rec, http.StatusNotFound)

	rec = app.request("GET", fmt.Sprintf("/api/funds/%d/performance?period=2W", bluechip.ID), "", nil)
	expectStatus(t, rec, http.StatusBadRequest)
	if code := errorCode(t, rec); code != "INVALID_PERIOD" {
		t.Errorf("expected INVALID_PERIOD, got %s", code)
	}
}

func TestPortfolioFlow_SnapshotThenPerformance(t *testing.T) {
	app := setupApp(t)
	token, userID := app.registerUser(t, "investor@example.com", "secret123")
	fund := testutil.CreateTestFund(t, app.DB, "Bluechip Fund", "Moderate", "100")
	testutil.AddSector(t, app.DB, fund.ID, "Banking", "100")
	testutil.CreateTestInvestment(t, app.DB, userID, fund.ID, "1000", "10", testutil.Date(2024, 1, 2))

	rec := app.request("GET", "/api/portfolio", "", bearer(token))
	expectStatus(t, rec, http.StatusOK)
	summary := parseJSON(t, rec)
	if summary["totalValue"].(float64) != 1100 {
		t.Errorf("unexpected summary %s", rec.Body.String())
	}
	holding := summary["investments"].([]interface{})[0].(map[string]interface{})
	if holding["returns"].(float64) != 10 || holding["returnsAmount"].(float64) != 100 {
		t.Errorf("expected returns as a percentage, got %s", rec.Body.String())
	}

	rec = app.request("GET", "/api/portfolio/performance", "", bearer(token))
	expectStatus(t, rec, http.StatusOK)
	if data := parseJSON(t, rec)["data"].([]interface{}); len(data) != 0 {
		t.Fatalf("expected no points before any snapshot, got %d", len(data))
	}

	body := fmt.Sprintf(`{"recorded_at":%q}`, time.Now().UTC().Format(time.RFC3339))
	rec = app.request("POST", "/api/pipeline/snapshots", body, nil)
	expectStatus(t, rec, http.StatusUnauthorized)

	rec = app.request("POST", "/api/pipeline/snapshots", body, map[string]string{"X-API-Key": pipelineKey})
	expectStatus(t, rec, http.StatusOK)
	if parseJSON(t, rec)["snapshots_recorded"].(float64) != 1 {
		t.Errorf("unexpected snapshot result %s", rec.Body.String())
	}

	rec = app.request("GET", "/api/portfolio/performance?period=1M&interval=daily", "", bearer(token))
	expectStatus(t, rec, http.StatusOK)
	perf := parseJSON(t, rec)
	data := perf["data"].([]interface{})
	if len(data) != 1 || perf["synthetic"] != false {
		t.Fatalf("expected one recorded point, got %s", rec.Body.String())
	}
	if data[0].(map[string]interface{})["value"].(float64) != 1100 {
		t.Errorf("unexpected point %v", data[0])
	}

	rec = app.request("GET", "/api/portfolio/sectors", "", bearer(token))
	expectStatus(t, rec, http.StatusOK)
	if !strings.Contains(rec.Body.String(), `"sector":"Banking"`) {
		t.Errorf("unexpected sectors %s", rec.Body.String())
	}

	rec = app.request("GET", "/api/transactions?page=1&page_size=5", "", bearer(token))
	expectStatus(t, rec, http.StatusOK)
}

func TestDemoMode_ServesDemoUserAndSyntheticSeries(t *testing.T) {
	var demoID uint = 1
	app := setupApp(t, func(cfg *config.Config) {
		cfg.DemoMode = true
		cfg.DemoUserID = demoID
	})
	demo := testutil.CreateTestUser(t, app.DB)
	if demo.ID != demoID {
		t.Fatalf("expected first user to get ID %d, got %d", demoID, demo.ID)
	}

	rec := app.request("GET", "/api/portfolio/performance?period=1M", "", nil)
	expectStatus(t, rec, http.StatusOK)
	perf := parseJSON(t, rec)
	if perf["synthetic"] != true || perf["userId"].(float64) != float64(demoID) {
		t.Errorf("expected synthetic series for demo user, got %v", perf)
	}

	rec = app.request("GET", "/api/users/profile", "", nil)
	expectStatus(t, rec, http.StatusOK)
}

func TestOperationalRoutes(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/health", "", nil)
	expectStatus(t, rec, http.StatusOK)

	rec = app.request("GET", "/api", "", nil)
	expectStatus(t, rec, http.StatusOK)
	if _, ok := parseJSON(t, rec)["endpoints"].(map[string]interface{}); !ok {
		t.Error("expected endpoint map")
	}

	rec = app.request("GET", "/swagger/doc.json", "", nil)
	expectStatus(t, rec, http.StatusOK)
	if !strings.Contains(rec.Body.String(), "InvestWelth API") {
		t.Error("expected swagger document")
	}

	rec = app.request("GET", "/metrics", "", nil)
	expectStatus(t, rec, http.StatusOK)
	if !strings.Contains(rec.Body.String(), `investwelth_http_requests_total{method="GET",route="/api",status="200"} 1`) {
		t.Errorf("expected request counter for /api, got:\n%s", rec.Body.String())
	}

	rec = app.request("OPTIONS", "/api/funds", "", nil)
	expectStatus(t, rec, http.StatusNoContent)
}
