package s3mark

import (
	"bytes"
	"io"
	"strings"
	"time"
)

// StorageInterface abstracts the two object operations the benchmark
// measures. Implementations do not retry; a failed call surfaces the
// underlying transport or auth error to the worker.
type StorageInterface interface {
	PutObject(bucket string, key string, reader *bytes.Reader) (Breakdown, error)
	GetObject(bucket string, key string) (Breakdown, io.ReadCloser, error)
}

// Breakdown carries the connection phase timings of a single request.
type Breakdown struct {
	DNSLookup        time.Duration
	TCPConnection    time.Duration
	TLSHandshake     time.Duration
	ServerProcessing time.Duration
}

// NewClient selects a storage backend for the configured endpoint. http(s)
// URLs are served by the S3 backend, anything else is treated as a local
// filesystem root.
func NewClient(cfg *Config) (StorageInterface, error) {
	if strings.HasPrefix(cfg.Endpoint, "http://") || strings.HasPrefix(cfg.Endpoint, "https://") {
		return NewS3Client(cfg)
	}
	return NewFsClient(cfg.Endpoint), nil
}
