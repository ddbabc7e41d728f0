package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Observe(t *testing.T) {
	m := New("arena-slots")

	m.ObserveBackendCall("GetOrders", time.Now(), nil)
	m.ObserveBackendCall("GetOrders", time.Now(), errors.New("boom"))
	m.ObserveRefresh("tick", nil)
	m.SkippedRecord("booked_interval")
	m.SetWatchedGrids(3)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.BackendCallsTotal.WithLabelValues("GetOrders", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BackendCallsTotal.WithLabelValues("GetOrders", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GridRefreshTotal.WithLabelValues("tick", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SkippedRecordsTotal.WithLabelValues("booked_interval")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.WatchedGrids))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "slot_grid_refresh_total")
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveBackendCall("x", time.Now(), nil)
		m.ObserveRefresh("x", nil)
		m.SkippedRecord("x")
		m.SetWatchedGrids(1)
	})
}
