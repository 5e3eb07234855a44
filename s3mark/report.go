package s3mark

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"code.cloudfoundry.org/bytefmt"
	uuid "github.com/satori/go.uuid"
)

// Report is the full result document of one run. It feeds the stdout
// reporter and the optional .json and .csv outputs.
type Report struct {
	RunId       string  `json:"run_id"`
	ClientEnv   string  `json:"client_env"`
	Endpoint    string  `json:"endpoint"`
	Bucket      string  `json:"bucket"`
	Prefix      string  `json:"prefix"`
	DateTimeUTC string  `json:"datetime_utc"`
	Threads     int     `json:"threads"`
	ObjectSize  uint64  `json:"object_size_bytes"`
	Summary     Summary `json:"summary"`
}

func NewReport(cfg *Config, summary Summary) Report {
	return Report{
		RunId:       uuid.NewV4().String(),
		ClientEnv:   fmt.Sprintf("Host: %s, OS: %s", getHostname(), runtime.GOOS),
		Endpoint:    cfg.Endpoint,
		Bucket:      cfg.Bucket,
		Prefix:      cfg.Prefix,
		DateTimeUTC: time.Now().UTC().String(),
		Threads:     cfg.Threads,
		ObjectSize:  cfg.Size,
		Summary:     summary,
	}
}

// Print writes the human readable result block.
func (r Report) Print(w io.Writer) {
	s := r.Summary
	fmt.Fprint(w, "\n--- RESULTS ------------------------------------------------------------------\n\n")
	fmt.Fprintf(w, "Operation:           %s\n", s.Operation)
	fmt.Fprintf(w, "Target:              %s/%s\n", r.Endpoint, r.Bucket)
	fmt.Fprintf(w, "Object size:         %s\n", bytefmt.ByteSize(r.ObjectSize))
	fmt.Fprintf(w, "Threads:             %d\n", r.Threads)
	fmt.Fprintf(w, "Total operations:    %d\n", s.Objects)
	fmt.Fprintf(w, "Succeeded:           %d\n", s.Succeeded)
	fmt.Fprintf(w, "Failed:              %d\n", s.Failed)
	fmt.Fprintf(w, "Total bytes:         %s\n", bytefmt.ByteSize(s.TotalBytes))
	fmt.Fprintf(w, "Elapsed:             %.3f s\n", s.ElapsedSeconds)
	fmt.Fprintf(w, "Throughput:          %s/s\n", bytefmt.ByteSize(uint64(s.BytesPerSecond)))
	fmt.Fprintf(w, "Operations/s:        %.2f\n", s.OperationsPerSecond)
	fmt.Fprint(w, "\nLatency (ms):            avg      min      p50      p90      p99      max\n")
	fmt.Fprintf(w, "                    %8.1f %8.1f %8.1f %8.1f %8.1f %8.1f\n",
		s.Latency.Avg, s.Latency.Min, s.Latency.P50, s.Latency.P90, s.Latency.P99, s.Latency.Max)
	fmt.Fprintf(w, "Connection avg (ms): dns %.1f, tcp %.1f, tls %.1f, server %.1f\n",
		s.Connection.DNSLookup, s.Connection.TCPConnection,
		s.Connection.TLSHandshake, s.Connection.ServerProcessing)
	fmt.Fprint(w, "\n------------------------------------------------------------------------------\n")
}

// the name of the host that executes the benchmark
func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
