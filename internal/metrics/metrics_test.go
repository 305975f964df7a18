package metrics

import (
	"testing"

	dto "github.com/prometheus/client_model/go"
)

func TestMetricsExist(t *testing.T) {
	tests := []struct {
		name   string
		metric any
	}{
		{"HTTPRequestsTotal", HTTPRequestsTotal},
		{"HTTPRequestDuration", HTTPRequestDuration},
		{"HTTPRequestsInFlight", HTTPRequestsInFlight},
		{"AnalysesTotal", AnalysesTotal},
		{"AnalysisDuration", AnalysisDuration},
		{"RecordsTotal", RecordsTotal},
		{"GlobalErrorsTotal", GlobalErrorsTotal},
		{"ExportsTotal", ExportsTotal},
		{"ExportedFilesTotal", ExportedFilesTotal},
		{"ExportDuration", ExportDuration},
		{"LedgerWritesTotal", LedgerWritesTotal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.metric == nil {
				t.Errorf("%s metric is nil", tt.name)
			}
		})
	}
}

func TestRecordsTotalCountsByVerdict(t *testing.T) {
	before := counterValue(t, VerdictFailing)
	RecordsTotal.WithLabelValues(VerdictFailing).Add(3)
	after := counterValue(t, VerdictFailing)
	if after-before != 3 {
		t.Fatalf("expected increment of 3, got %v", after-before)
	}
}

func counterValue(t *testing.T, verdict string) float64 {
	t.Helper()
	var m dto.Metric
	if err := RecordsTotal.WithLabelValues(verdict).Write(&m); err != nil {
		t.Fatalf("read counter: %v", err)
	}
	return m.GetCounter().GetValue()
}
