package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"investwelth/internal/config"
	"investwelth/internal/logger"
	"investwelth/internal/testutil"
)

const pipelineKey = "pipeline-test-key"

// testApp holds the full application stack for end-to-end tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.PipelineAPIKey = pipelineKey
	cfg.RateLimitRPS = 0
	return cfg
}

// setupApp builds the router over an isolated in-memory SQLite database.
// mutate adjusts the configuration before the router is built.
func setupApp(t *testing.T, mutate ...func(*config.Config)) *testApp {
	t.Helper()

	cfg := testConfig()
	for _, fn := range mutate {
		fn(cfg)
	}
	db := testutil.SetupTestDB(t)
	return &testApp{DB: db, Router: NewRouter(cfg, db, prometheus.NewRegistry())}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	errObj, ok := parseJSON(t, rec)["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object, got %s", rec.Body.String())
	}
	code, _ := errObj["code"].(string)
	return code
}

// registerUser registers a user and returns the token and user ID.
func (app *testApp) registerUser(t *testing.T, email, password string) (string, uint) {
	t.Helper()
	body := fmt.Sprintf(`{"name":"Test User","email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/api/users/register", body, nil)
	expectStatus(t, rec, http.StatusCreated)

	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["token"].(string), uint(user["user_id"].(float64))
}
