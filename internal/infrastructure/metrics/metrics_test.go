package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metaforms/internal/infrastructure/metrics"
)

func TestRecordLookup(t *testing.T) {
	m := metrics.NewWithRegistry(prometheus.NewRegistry())

	m.RecordLookup(true)
	m.RecordLookup(true)
	m.RecordLookup(false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Lookups.WithLabelValues(metrics.ResultFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Lookups.WithLabelValues(metrics.ResultNotFound)))
}

func TestObserveRequest(t *testing.T) {
	m := metrics.NewWithRegistry(prometheus.NewRegistry())

	m.ObserveRequest("GET", "/api/v1/forms/:id", 200, 3*time.Millisecond)
	m.ObserveRequest("GET", "/api/v1/forms/:id", 404, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/api/v1/forms/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/api/v1/forms/:id", "404")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestDuration))
}

func TestSetRegistrySize(t *testing.T) {
	m := metrics.NewWithRegistry(prometheus.NewRegistry())

	m.SetRegistrySize(88, 10)

	assert.Equal(t, 88.0, testutil.ToFloat64(m.RegistryForms))
	assert.Equal(t, 10.0, testutil.ToFloat64(m.RegistryModules))
}

func TestHandler(t *testing.T) {
	m := metrics.New()
	m.RecordLookup(false)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `metaforms_form_lookups_total{result="not_found"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
