package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	return rec.Body.String()
}

func TestMetrics_RecordOperation(t *testing.T) {
	m := New()

	m.RecordOperation("film", "create", OutcomeSuccess)
	m.RecordOperation("film", "create", OutcomeSuccess)
	m.RecordOperation("film", "create", OutcomeRejected)

	body := scrape(t, m)
	assert.Contains(t, body, `filmorate_registry_operations_total{operation="create",outcome="success",resource="film"} 2`)
	assert.Contains(t, body, `filmorate_registry_operations_total{operation="create",outcome="rejected",resource="film"} 1`)
}

func TestMetrics_RecordHTTPRequest(t *testing.T) {
	m := New()

	m.RecordHTTPRequest(http.MethodPost, "/films", http.StatusBadRequest, 5*time.Millisecond)

	body := scrape(t, m)
	assert.Contains(t, body, `filmorate_http_requests_total{method="POST",route="/films",status="400"} 1`)
	assert.Contains(t, body, `filmorate_http_request_duration_seconds_count{method="POST",route="/films"} 1`)
}

func TestMetrics_RecordCountGauge(t *testing.T) {
	m := New()
	count := 3
	m.RegisterRecordCount("user", func() int { return count })

	assert.Contains(t, scrape(t, m), `filmorate_registry_records{resource="user"} 3`)

	count = 5
	assert.Contains(t, scrape(t, m), `filmorate_registry_records{resource="user"} 5`)
}

func TestNew_IsolatedRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New().RegisterRecordCount("film", func() int { return 0 })
		New().RegisterRecordCount("film", func() int { return 0 })
	})
}
