package middleware

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_CountsByRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	r := gin.New()
	r.Use(m.Handler())
	r.GET("/api/funds/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	doRequest(r, http.MethodGet, "/api/funds/1", nil)
	doRequest(r, http.MethodGet, "/api/funds/2", nil)
	doRequest(r, http.MethodGet, "/nowhere", nil)

	if got := testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/funds/:id", "200")); got != 2 {
		t.Errorf("requests for /api/funds/:id = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.requests.WithLabelValues("GET", "unmatched", "404")); got != 1 {
		t.Errorf("unmatched requests = %v, want 1", got)
	}

	expected := `
# HELP investwelth_http_requests_in_flight HTTP requests currently being served.
# TYPE investwelth_http_requests_in_flight gauge
investwelth_http_requests_in_flight 0
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "investwelth_http_requests_in_flight"); err != nil {
		t.Error(err)
	}
}
