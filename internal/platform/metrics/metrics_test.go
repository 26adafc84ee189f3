package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestObserveOperation_Increments(t *testing.T) {
	counter := operationsTotal.WithLabelValues("deposit", "ok")
	before := testutil.ToFloat64(counter)

	ObserveOperation("deposit", "ok")
	ObserveOperation("deposit", "ok")

	require.Equal(t, before+2, testutil.ToFloat64(counter))
}

func TestMiddleware_LabelsRoutePattern(t *testing.T) {
	router := chi.NewRouter()
	router.Use(Middleware)
	router.Get("/api/v1/custody/{asset}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	router.Get("/metrics", Handler().ServeHTTP)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/custody/usdc", nil))
	require.Equal(t, http.StatusTeapot, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	body := rr.Body.String()
	require.True(t, strings.Contains(body, `stableswap_http_request_duration_seconds_count{method="GET",route="/api/v1/custody/{asset}",status="418"} 1`), body)
}
