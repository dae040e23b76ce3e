package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRelay(t *testing.T) {
	r := NewRegistry()
	r.ObserveRelay("GET", "ok", 20*time.Millisecond)
	r.ObserveRelay("GET", "ok", 10*time.Millisecond)
	r.ObserveRelay("POST", "upstream", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.proxyRequests.WithLabelValues("GET", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.proxyRequests.WithLabelValues("POST", "upstream")))
}

func TestNilRegistryIsNoop(t *testing.T) {
	var r *Registry
	r.ObserveRelay("GET", "ok", time.Second)
	r.FetchFailed("stats")
	r.SetActiveSessions(3)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerExposesCollectors(t *testing.T) {
	r := NewRegistry()
	r.FetchFailed("querylog")
	r.SetActiveSessions(2)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `phishx_dashboard_fetch_failures_total{source="querylog"} 1`), body)
	assert.True(t, strings.Contains(body, "phishx_sessions_active 2"), body)
}
