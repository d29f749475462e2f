package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	dto "github.com/prometheus/client_model/go"
)

// requestCounts returns http_requests_total keyed by route label.
func requestCounts(t *testing.T, reg *Registry) map[string]float64 {
	t.Helper()
	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gathering metrics: %v", err)
	}
	counts := make(map[string]float64)
	for _, mf := range mfs {
		if mf.GetName() != "http_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			counts[labelValue(m, "route")] += m.GetCounter().GetValue()
		}
	}
	return counts
}

func labelValue(m *dto.Metric, name string) string {
	for _, label := range m.GetLabel() {
		if label.GetName() == name {
			return label.GetValue()
		}
	}
	return ""
}

func newJobsMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/jobs/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("POST /api/v1/compute/{name}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

func TestHTTPMiddleware_LabelsByRoute(t *testing.T) {
	reg := NewRegistry()
	mux := newJobsMux()
	wrapped := HTTPMiddleware(reg, mux)(mux)

	for _, id := range []string{"a", "b", "c", "d"} {
		w := httptest.NewRecorder()
		wrapped.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/jobs/"+id, nil))
	}
	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, httptest.NewRequest("POST", "/api/v1/compute/SMA", nil))

	counts := requestCounts(t, reg)
	if len(counts) != 2 {
		t.Fatalf("expected 2 route series, got %v", counts)
	}
	if counts["/api/v1/jobs/{id}"] != 4 {
		t.Errorf("expected 4 job polls on one series, got %v", counts)
	}
	if counts["/api/v1/compute/{name}"] != 1 {
		t.Errorf("expected 1 compute request, got %v", counts)
	}
}

func TestHTTPMiddleware_UnmatchedPaths(t *testing.T) {
	reg := NewRegistry()
	mux := newJobsMux()
	wrapped := HTTPMiddleware(reg, mux)(mux)

	for _, path := range []string{"/random/1", "/random/2", "/api/v1/jobs"} {
		w := httptest.NewRecorder()
		wrapped.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
	}
	// wrong method on a known path
	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, httptest.NewRequest("DELETE", "/api/v1/compute/SMA", nil))

	counts := requestCounts(t, reg)
	if len(counts) != 1 || counts["unmatched"] != 4 {
		t.Errorf("expected every miss on the unmatched series, got %v", counts)
	}
}

func TestHTTPMiddleware_PatternFromMux(t *testing.T) {
	reg := NewRegistry()
	mux := newJobsMux()
	wrapped := HTTPMiddleware(reg, nil)(mux)

	for _, id := range []string{"x", "y"} {
		w := httptest.NewRecorder()
		wrapped.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/jobs/"+id, nil))
	}

	if counts := requestCounts(t, reg); counts["/api/v1/jobs/{id}"] != 2 {
		t.Errorf("expected the mux pattern as route, got %v", counts)
	}
}

func TestHTTPMiddleware_TracksInFlight(t *testing.T) {
	reg := NewRegistry()

	inFlight := float64(-1)
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mfs, _ := reg.Gather()
		for _, mf := range mfs {
			if mf.GetName() == "http_requests_in_flight" {
				inFlight = mf.GetMetric()[0].GetGauge().GetValue()
			}
		}
	})

	w := httptest.NewRecorder()
	HTTPMiddleware(reg, nil)(handler).ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	if inFlight != 1 {
		t.Errorf("expected 1 request in flight while serving, got %v", inFlight)
	}
	mfs, _ := reg.Gather()
	for _, mf := range mfs {
		if mf.GetName() == "http_requests_in_flight" {
			if v := mf.GetMetric()[0].GetGauge().GetValue(); v != 0 {
				t.Errorf("expected 0 in flight after the request, got %v", v)
			}
		}
	}
}

func TestHTTPMiddleware_StatusAndDuration(t *testing.T) {
	reg := NewRegistry()
	mux := newJobsMux()
	w := httptest.NewRecorder()
	HTTPMiddleware(reg, mux)(mux).ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/jobs/z", nil))

	mfs, _ := reg.Gather()
	var status string
	var observed uint64
	for _, mf := range mfs {
		switch mf.GetName() {
		case "http_requests_total":
			status = labelValue(mf.GetMetric()[0], "status")
		case "http_request_duration_seconds":
			observed = mf.GetMetric()[0].GetHistogram().GetSampleCount()
		}
	}
	if status != "4xx" {
		t.Errorf("expected status 4xx, got %q", status)
	}
	if observed != 1 {
		t.Errorf("expected 1 duration sample, got %d", observed)
	}
}

func TestRouteLabel(t *testing.T) {
	tests := map[string]string{
		"":                      "unmatched",
		"GET /api/v1/jobs/{id}": "/api/v1/jobs/{id}",
		"/api/v1/functions":     "/api/v1/functions",
		"POST /api/v1/batch":    "/api/v1/batch",
	}
	for pattern, want := range tests {
		if got := routeLabel(pattern); got != want {
			t.Errorf("routeLabel(%q) = %q, want %q", pattern, got, want)
		}
	}
}
