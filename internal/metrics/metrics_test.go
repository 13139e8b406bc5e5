package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveOperationLabels(t *testing.T) {
	r := NewRecorder()
	r.ObserveOperation("deleteLikes", 200, 10*time.Millisecond)
	r.ObserveOperation("deleteLikes", 0, time.Millisecond)

	if got := testutil.ToFloat64(r.operationsTotal.WithLabelValues("deleteLikes", "200")); got != 1 {
		t.Fatalf("200 counter = %v", got)
	}
	if got := testutil.ToFloat64(r.operationsTotal.WithLabelValues("deleteLikes", "transport_error")); got != 1 {
		t.Fatalf("transport_error counter = %v", got)
	}
}

func TestPushSendsToGateway(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	r := NewRecorder()
	r.AuditFailed()
	if err := r.Push(srv.URL, "ci"); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if !strings.Contains(path, "/job/interaction_admin") || !strings.Contains(path, "/instance/ci") {
		t.Fatalf("unexpected push path %s", path)
	}
}

func TestPushWithoutURLIsNoop(t *testing.T) {
	var r *Recorder
	if err := r.Push("", ""); err != nil {
		t.Fatalf("Push: %v", err)
	}
}
