package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"AppRanker/internal/domain"
)

func TestNew(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	if len(m.Collectors()) != 4 {
		t.Errorf("expected 4 collectors, got %d", len(m.Collectors()))
	}
}

func TestObserve(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	m.ObserveLookup("ok", 120*time.Millisecond)
	m.ObserveLookup("ok", 80*time.Millisecond)
	m.ObserveLookup("http_error", time.Second)
	m.ObserveRanking("ranked", []domain.RankedEntry{{Score: 9.5}, {Score: 3.1}})

	if got := getCounterVecValue(t, m.lookupsTotal, "ok"); got != 2 {
		t.Errorf("expected 2 ok lookups, got %v", got)
	}
	if got := getCounterVecValue(t, m.lookupsTotal, "http_error"); got != 1 {
		t.Errorf("expected 1 http_error lookup, got %v", got)
	}
	if got := getCounterVecValue(t, m.rankingsTotal, "ranked"); got != 1 {
		t.Errorf("expected 1 ranking, got %v", got)
	}
	if got := getHistogramCount(t, m.scores); got != 2 {
		t.Errorf("expected 2 score samples, got %d", got)
	}
	if got := getHistogramCount(t, m.lookupDuration); got != 3 {
		t.Errorf("expected 3 duration samples, got %d", got)
	}

	families, err := m.Gatherer().Gather()
	if err != nil {
		t.Fatalf("Gather() returned error: %v", err)
	}
	found := map[string]bool{}
	for _, family := range families {
		found[family.GetName()] = true
	}
	for _, name := range []string{MetricLookupsTotal, MetricLookupDuration, MetricRankingsTotal, MetricSimilarityScore} {
		if !found[name] {
			t.Errorf("metric %s not found in gathered metrics", name)
		}
	}
}

func TestWriteTextfile(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	m.ObserveRanking("failed", nil)

	if err := m.WriteTextfile(""); err != nil {
		t.Fatalf("empty path should be a no-op, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "appranker.prom")
	if err := m.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile returned error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read textfile: %v", err)
	}
	if !strings.Contains(string(raw), `appranker_rankings_total{status="failed"} 1`) {
		t.Fatalf("textfile missing ranking counter:\n%s", raw)
	}
}

func getCounterVecValue(t *testing.T, vec *prometheus.CounterVec, labels ...string) float64 {
	t.Helper()
	metric, err := vec.GetMetricWithLabelValues(labels...)
	if err != nil {
		t.Fatalf("get metric: %v", err)
	}
	var out dto.Metric
	if err := metric.Write(&out); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	return out.GetCounter().GetValue()
}

func getHistogramCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	var out dto.Metric
	if err := h.Write(&out); err != nil {
		t.Fatalf("write histogram: %v", err)
	}
	return out.GetHistogram().GetSampleCount()
}
