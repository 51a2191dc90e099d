package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-shortener-users/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithMetrics_LabelsByRoutePattern(t *testing.T) {
	h := &Handler{logger: logger.Nop(), metrics: newMetrics(prometheus.NewRegistry())}

	router := chi.NewRouter()
	router.Use(h.withMetrics)
	router.Get("/users/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, id := range []string{"a", "b", "c"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users/"+id, nil))
	}
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, 3.0, testutil.ToFloat64(h.metrics.requestsTotal.WithLabelValues("/users/{id}", http.MethodGet, "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.requestsTotal.WithLabelValues(unmatchedRoute, http.MethodGet, "404")))
}

func TestMetricsHandler_ExposesCollectors(t *testing.T) {
	h := &Handler{logger: logger.Nop(), metrics: newMetrics(prometheus.NewRegistry())}
	h.metrics.requestsTotal.WithLabelValues("/", http.MethodGet, "200").Inc()
	h.metrics.requestDuration.WithLabelValues("/", http.MethodGet).Observe(0.01)

	rec := httptest.NewRecorder()
	h.metrics.handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "shortener_users_http_requests_total")
	assert.Contains(t, body, "shortener_users_http_request_duration_seconds_bucket")
	assert.Contains(t, body, "go_goroutines")
}
