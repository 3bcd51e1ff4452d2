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

func TestMetrics(t *testing.T) {
	t.Run("Independent Instances Do Not Collide", func(t *testing.T) {
		assert.NotPanics(t, func() {
			New()
			New()
		})
	})

	t.Run("Nil Receiver Is A No-op", func(t *testing.T) {
		var m *Metrics
		assert.NotPanics(t, func() {
			m.RecordPaymentFact("poll", "applied")
			m.RecordTransition("pending", "accepted", "ok")
			m.RecordSweeperRun("ok", time.Second)
		})
	})

	t.Run("Counters Are Exposed", func(t *testing.T) {
		m := New()
		m.RecordPaymentFact("webhook", "applied")
		m.RecordPaymentFact("webhook", "applied")
		m.RecordPaymentMismatch("poll")

		assert.Equal(t, float64(2), testutil.ToFloat64(m.paymentFacts.WithLabelValues("webhook", "applied")))
		assert.Equal(t, float64(1), testutil.ToFloat64(m.paymentMismatches.WithLabelValues("poll")))

		rec := httptest.NewRecorder()
		m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, strings.Contains(rec.Body.String(), "helpmynew_payments_facts_total"))
	})
}
