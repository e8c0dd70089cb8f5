package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveHTTP(t *testing.T) {
	m := New()
	m.ObserveHTTP("GET", "/news", 200, 10*time.Millisecond)
	m.ObserveHTTP("GET", "/news", 200, 20*time.Millisecond)
	m.ObserveHTTP("GET", "/news", 500, time.Millisecond)

	if got := testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/news", "200")); got != 2 {
		t.Errorf("200 count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/news", "500")); got != 1 {
		t.Errorf("500 count = %v, want 1", got)
	}
}

func TestObserveBackend(t *testing.T) {
	m := New()
	m.ObserveBackend("POST", "/invoices/", 0, time.Second)

	if got := testutil.ToFloat64(m.backendRequests.WithLabelValues("POST", "/invoices/", "0")); got != 1 {
		t.Errorf("count = %v, want 1", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveHTTP("GET", "/", 200, time.Millisecond)
	m.ObserveBackend("GET", "/", 200, time.Millisecond)
	m.SetBreakerState("backend", 2)
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveHTTP("GET", "/gallery", 200, time.Millisecond)
	m.SetBreakerState("backend", 2)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	out := string(body)
	if !strings.Contains(out, `assoc_web_http_requests_total{method="GET",route="/gallery",status="200"} 1`) {
		t.Errorf("missing http counter in output:\n%s", out)
	}
	if !strings.Contains(out, `assoc_web_backend_breaker_state{name="backend"} 2`) {
		t.Errorf("missing breaker gauge in output")
	}
}
