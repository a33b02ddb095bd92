package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.ObserveInbound("session")
	r.ObserveInbound("session")
	r.ObserveDropped("handoff")
	r.ObserveSubmission("interactive", true)
	r.ObserveSubmission("interactive", false)
	r.ObservePostalLookup("found")
	r.ObserveStepFailure("collect_item")
	r.SetCatalogSize(42)
	r.SetActiveHandoffs(3)

	if got := testutil.ToFloat64(r.Inbound.WithLabelValues("session")); got != 2 {
		t.Fatalf("expected 2 inbound, got %v", got)
	}
	if got := testutil.ToFloat64(r.Submissions.WithLabelValues("interactive", "false")); got != 1 {
		t.Fatalf("expected 1 failed submission, got %v", got)
	}
	if got := testutil.ToFloat64(r.CatalogSize); got != 42 {
		t.Fatalf("expected catalog size 42, got %v", got)
	}

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	for _, want := range []string{
		`orcamento_bot_active_handoffs 3`,
		`orcamento_bot_dropped_messages_total{reason="handoff"} 1`,
		`orcamento_bot_postal_lookups_total{result="found"} 1`,
		`go_goroutines`,
	} {
		if !strings.Contains(string(body), want) {
			t.Fatalf("expected %q in metrics output", want)
		}
	}
}
