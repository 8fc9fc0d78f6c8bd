package metrics

import (
	"database/sql"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountersAreRegistered(t *testing.T) {
	m := New()

	m.CacheHits.WithLabelValues("memory").Inc()
	m.CacheHits.WithLabelValues("memory").Inc()
	m.CacheMisses.WithLabelValues("memory").Inc()

	assert.InDelta(t, 2, testutil.ToFloat64(m.CacheHits.WithLabelValues("memory")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.CacheMisses.WithLabelValues("memory")), 0)
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.OrderEvents.WithLabelValues("order.status_changed", "preparing").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "comanda_orders_events_total")
	assert.Contains(t, string(body), "go_goroutines")
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	// Two instances must not panic on duplicate registration.
	assert.NotPanics(t, func() {
		_ = New()
		_ = New()
	})
}

func TestMetrics_RegisterDBStats(t *testing.T) {
	m := New()

	// sql.Open does not dial, so the pool reports zero connections.
	db, err := sql.Open("pgx", "postgres://comanda@127.0.0.1:1/comanda")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, m.RegisterDBStats(db))
	require.NoError(t, m.RegisterDBStats(db))

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, family := range families {
		names = append(names, family.GetName())
	}
	assert.Contains(t, names, "go_sql_open_connections")
}
