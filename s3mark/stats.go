package s3mark

import (
	"time"

	"github.com/montanaflynn/stats"
)

// Summary holds the aggregate statistics of one finished run.
type Summary struct {
	Operation           string            `json:"operation"`
	Objects             int               `json:"objects"`
	Succeeded           int               `json:"succeeded"`
	Failed              int               `json:"failed"`
	TotalBytes          uint64            `json:"total_bytes"`
	ElapsedSeconds      float64           `json:"elapsed_secs"`
	BytesPerSecond      float64           `json:"throughput_bps"`
	OperationsPerSecond float64           `json:"ops_per_sec"`
	Latency             LatencySummary    `json:"latency_ms"`
	Connection          ConnectionSummary `json:"connection_avg_ms"`
}

// LatencySummary describes the distribution of successful operation
// durations in milliseconds.
type LatencySummary struct {
	Avg float64 `json:"avg"`
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	P50 float64 `json:"p50"`
	P90 float64 `json:"p90"`
	P99 float64 `json:"p99"`
}

// ConnectionSummary holds the average connection phase timings of successful
// operations in milliseconds.
type ConnectionSummary struct {
	DNSLookup        float64 `json:"dns"`
	TCPConnection    float64 `json:"tcp"`
	TLSHandshake     float64 `json:"tls"`
	ServerProcessing float64 `json:"server"`
}

// Aggregate reduces the samples of a finished run into a Summary. The math
// is pure and independent of sample order. Total bytes only counts
// successful operations, and a run without any successful sample reports
// zero-valued rates instead of dividing by zero.
func Aggregate(operation string, samples []Sample, started, finished time.Time) Summary {
	summary := Summary{
		Operation:      operation,
		Objects:        len(samples),
		ElapsedSeconds: finished.Sub(started).Seconds(),
	}

	durations := make([]float64, 0, len(samples))
	var sumDNS, sumTCP, sumTLS, sumServer time.Duration
	for _, s := range samples {
		if s.Err != nil {
			summary.Failed++
			continue
		}
		summary.Succeeded++
		summary.TotalBytes += s.Bytes
		durations = append(durations, millis(s.Duration))
		sumDNS += s.Breakdown.DNSLookup
		sumTCP += s.Breakdown.TCPConnection
		sumTLS += s.Breakdown.TLSHandshake
		sumServer += s.Breakdown.ServerProcessing
	}

	if summary.Succeeded == 0 || summary.ElapsedSeconds <= 0 {
		return summary
	}

	summary.BytesPerSecond = float64(summary.TotalBytes) / summary.ElapsedSeconds
	summary.OperationsPerSecond = float64(summary.Succeeded) / summary.ElapsedSeconds

	summary.Latency.Avg, _ = stats.Mean(durations)
	summary.Latency.Min, _ = stats.Min(durations)
	summary.Latency.Max, _ = stats.Max(durations)
	summary.Latency.P50, _ = stats.Percentile(durations, 50)
	summary.Latency.P90, _ = stats.Percentile(durations, 90)
	summary.Latency.P99, _ = stats.Percentile(durations, 99)

	n := float64(summary.Succeeded)
	summary.Connection.DNSLookup = millis(sumDNS) / n
	summary.Connection.TCPConnection = millis(sumTCP) / n
	summary.Connection.TLSHandshake = millis(sumTLS) / n
	summary.Connection.ServerProcessing = millis(sumServer) / n

	return summary
}

func millis(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}
