package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counterTotal суммирует значения счетчика по всем наборам лейблов
func counterTotal(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	total := 0.0
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	return total
}

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer("schedule-test", reg)

	m.ObserveHTTP("GET", "/api/v1/staff/{staffId}/availability/slots", 200, 10*time.Millisecond)
	m.ObserveQuery("query", time.Millisecond, errors.New("boom"))
	m.ObserveQuery("query", time.Millisecond, nil)
	m.IncAvailabilityQuery("day")
	m.IncAvailabilityQuery("day")
	m.IncBookingConflict("overlap")

	assert.Equal(t, 1.0, counterTotal(t, reg, "http_requests_total"))
	assert.Equal(t, 1.0, counterTotal(t, reg, "db_query_errors_total"))
	assert.Equal(t, 2.0, counterTotal(t, reg, "availability_queries_total"))
	assert.Equal(t, 1.0, counterTotal(t, reg, "booking_conflicts_total"))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveHTTP("GET", "/", 200, time.Second)
		m.ObserveQuery("exec", time.Second, nil)
		m.IncAvailabilityQuery("window")
		m.IncBookingConflict("exact")
	})
}
