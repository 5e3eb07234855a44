package s3mark

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

var csvHeader = []string{
	"run_id", "client_env", "endpoint", "bucket", "operation", "threads",
	"object_size_bytes", "objects", "succeeded", "failed", "total_bytes",
	"elapsed_secs", "throughput_bps", "ops_per_sec",
	"latency_avg_ms", "latency_min_ms", "latency_p50_ms", "latency_p90_ms",
	"latency_p99_ms", "latency_max_ms",
}

// ToCsv renders the report as a two-line csv document (header plus one
// record).
func ToCsv(report Report) ([]byte, error) {
	s := report.Summary
	records := [][]string{
		csvHeader,
		{
			report.RunId,
			report.ClientEnv,
			report.Endpoint,
			report.Bucket,
			s.Operation,
			fmt.Sprintf("%d", report.Threads),
			fmt.Sprintf("%d", report.ObjectSize),
			fmt.Sprintf("%d", s.Objects),
			fmt.Sprintf("%d", s.Succeeded),
			fmt.Sprintf("%d", s.Failed),
			fmt.Sprintf("%d", s.TotalBytes),
			fmt.Sprintf("%.3f", s.ElapsedSeconds),
			fmt.Sprintf("%.3f", s.BytesPerSecond),
			fmt.Sprintf("%.3f", s.OperationsPerSecond),
			fmt.Sprintf("%.1f", s.Latency.Avg),
			fmt.Sprintf("%.1f", s.Latency.Min),
			fmt.Sprintf("%.1f", s.Latency.P50),
			fmt.Sprintf("%.1f", s.Latency.P90),
			fmt.Sprintf("%.1f", s.Latency.P99),
			fmt.Sprintf("%.1f", s.Latency.Max),
		},
	}

	b := &bytes.Buffer{}
	w := csv.NewWriter(b)
	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
