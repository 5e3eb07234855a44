package s3mark

import (
	"bytes"
	"context"
	"io"
	"log"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/schollz/progressbar/v2"
)

// Sample is the recorded outcome of a single object operation. A sample is
// created by a worker right after the operation completes and never mutated
// afterwards.
type Sample struct {
	Key       string
	Duration  time.Duration
	Bytes     uint64
	Err       error
	Breakdown Breakdown
}

// Pool performs the configured operation on every object index exactly once
// using a fixed number of concurrent workers. The index cursor is claimed
// atomically, so no two workers ever touch the same key. Samples accumulate
// in per-worker slices and are merged after the join to keep the hot path
// free of locks.
type Pool struct {
	cfg     *Config
	client  StorageInterface
	payload []byte
	logger  *log.Logger
	bar     *progressbar.ProgressBar
}

func NewPool(cfg *Config, client StorageInterface, payload []byte, logger *log.Logger) *Pool {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	p := &Pool{
		cfg:     cfg,
		client:  client,
		payload: payload,
		logger:  logger,
	}
	if !cfg.NoProgress {
		p.bar = progressbar.NewOptions(cfg.Number, progressbar.OptionSetRenderBlankState(true))
	}
	return p
}

// ObjectKey derives the deterministic key for an object index.
func ObjectKey(prefix string, index int64) string {
	return prefix + strconv.FormatInt(index, 10)
}

// Run blocks until every index in [0, Number) has been claimed and all
// workers have exited. It returns the merged samples along with the
// wall-clock start and end of the run.
func (p *Pool) Run(ctx context.Context) ([]Sample, time.Time, time.Time) {
	perWorker := make([][]Sample, p.cfg.Threads)
	cursor := int64(-1)

	var wg sync.WaitGroup
	started := time.Now()
	for w := 0; w < p.cfg.Threads; w++ {
		wg.Add(1)
		go func(workerId int) {
			defer wg.Done()
			for {
				if ctx.Err() != nil {
					return
				}
				index := atomic.AddInt64(&cursor, 1)
				if index >= int64(p.cfg.Number) {
					return
				}
				sample := p.execute(ObjectKey(p.cfg.Prefix, index))
				perWorker[workerId] = append(perWorker[workerId], sample)
				if p.bar != nil {
					_ = p.bar.Add(1)
				}
			}
		}(w)
	}
	wg.Wait()
	finished := time.Now()

	samples := make([]Sample, 0, p.cfg.Number)
	for _, workerSamples := range perWorker {
		samples = append(samples, workerSamples...)
	}
	return samples, started, finished
}

func (p *Pool) execute(key string) Sample {
	if p.cfg.Operation == OperationUpload {
		return p.upload(key)
	}
	return p.download(key)
}

func (p *Pool) upload(key string) Sample {
	reader := bytes.NewReader(p.payload)

	timer := time.Now()
	bd, err := p.client.PutObject(p.cfg.Bucket, key, reader)

	sample := Sample{
		Key:       key,
		Duration:  time.Since(timer),
		Breakdown: bd,
	}
	if err != nil {
		p.logger.Printf("upload of %s failed: %v", key, err)
		sample.Err = err
		return sample
	}
	sample.Bytes = uint64(len(p.payload))
	return sample
}

func (p *Pool) download(key string) Sample {
	timer := time.Now()
	bd, body, err := p.client.GetObject(p.cfg.Bucket, key)
	if err != nil {
		p.logger.Printf("download of %s failed: %v", key, err)
		return Sample{Key: key, Duration: time.Since(timer), Breakdown: bd, Err: err}
	}

	// stream the body to the end so the duration covers the last byte
	size, err := io.Copy(io.Discard, body)
	closeErr := body.Close()

	sample := Sample{
		Key:       key,
		Duration:  time.Since(timer),
		Bytes:     uint64(size),
		Breakdown: bd,
	}
	if err == nil {
		err = closeErr
	}
	if err != nil {
		p.logger.Printf("download of %s failed: %v", key, err)
		sample.Err = err
		sample.Bytes = 0
	}
	return sample
}
