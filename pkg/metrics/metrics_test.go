package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordSlotFetch(OutcomeStale)
		m.RecordBookingSubmission(OutcomeSucceeded)
		m.RecordPublication(OutcomeFailed)
		m.RecordProviderLookup(OutcomeRejected)
		m.SetActiveSessions("booking", 3)
		m.ObserveHTTPRequest(http.MethodGet, "/health", "200", 0.01)
		m.ObserveSchedulerRequest("available-slots", "200", 0.2)
		m.ObserveDBQuery("insert", 0.003)
	})
}

func TestMetrics_Counters(t *testing.T) {
	m := New("slotbooking-test")

	m.RecordSlotFetch(OutcomeApplied)
	m.RecordSlotFetch(OutcomeStale)
	m.RecordSlotFetch(OutcomeStale)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.slotFetchesTotal.WithLabelValues(OutcomeApplied)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.slotFetchesTotal.WithLabelValues(OutcomeStale)))

	m.SetActiveSessions("publication", 4)
	assert.Equal(t, 4.0, testutil.ToFloat64(m.activeSessions.WithLabelValues("publication")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New("slotbooking-test")
	m.RecordBookingSubmission(OutcomeSucceeded)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `booking_submissions_total{outcome="succeeded",service="slotbooking-test"} 1`)
}
