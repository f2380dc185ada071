package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestQuoteMetricsExportsCountersAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewQuoteMetrics(reg)
	metrics.ObserveDuration("shop", 250*time.Millisecond)
	metrics.IncOutcome("shop", OutcomeSuccess)
	metrics.IncOutcome("shop", OutcomeSuccess)
	metrics.IncOutcome("template", OutcomeRejected)
	metrics.IncAnomaly("duplicate_rows")

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "quote_calculations_total", map[string]string{"context": "shop", "outcome": OutcomeSuccess}); err != nil {
		t.Fatalf("fetch success: %v", err)
	} else if got != 2 {
		t.Fatalf("expected success=2, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "quote_calculations_total", map[string]string{"context": "template", "outcome": OutcomeRejected}); err != nil {
		t.Fatalf("fetch rejected: %v", err)
	} else if got != 1 {
		t.Fatalf("expected rejected=1, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "quote_catalog_anomalies_total", map[string]string{"kind": "duplicate_rows"}); err != nil {
		t.Fatalf("fetch anomalies: %v", err)
	} else if got != 1 {
		t.Fatalf("expected anomalies=1, got %f", got)
	}

	if got, err := fetchHistogramSum(mfs, "quote_calculation_duration_seconds", "context", "shop"); err != nil {
		t.Fatalf("fetch duration: %v", err)
	} else if got <= 0 {
		t.Fatalf("expected duration sum > 0, got %f", got)
	}
}

func TestQuoteMetricsNilSafe(t *testing.T) {
	var metrics *QuoteMetrics
	metrics.ObserveDuration("shop", time.Second)
	metrics.IncOutcome("shop", OutcomeFailed)
	metrics.IncAnomaly("")

	unregistered := NewQuoteMetrics(nil)
	unregistered.IncOutcome("", "")
}

func fetchCounterValue(mfs []*dto.MetricFamily, name string, labels map[string]string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchLabels(metric.GetLabel(), labels) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("labels %v not found for %q", labels, name)
}

func fetchHistogramSum(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchLabels(metric.GetLabel(), map[string]string{label: value}) {
			return metric.GetHistogram().GetSampleSum(), nil
		}
	}
	return 0, fmt.Errorf("label %s=%s not found for %q", label, value, name)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchLabels(pairs []*dto.LabelPair, want map[string]string) bool {
	matched := 0
	for _, pair := range pairs {
		if v, ok := want[pair.GetName()]; ok {
			if pair.GetValue() != v {
				return false
			}
			matched++
		}
	}
	return matched == len(want)
}
