package queue

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"filesmanager/internal/metrics"
)

// Dispatcher hands jobs to an Enqueuer from a background goroutine so the
// request path never waits on the queue backend. A full buffer drops the job.
type Dispatcher struct {
	q       Enqueuer
	log     *slog.Logger
	m       *metrics.Metrics
	timeout time.Duration

	jobs chan ThumbnailJob
	done chan struct{}

	mu     sync.RWMutex
	closed bool
}

// NewDispatcher starts the background sender. buffer bounds the number of jobs
// waiting to be enqueued; timeout bounds each Enqueue call.
func NewDispatcher(q Enqueuer, log *slog.Logger, buffer int, timeout time.Duration, m *metrics.Metrics) *Dispatcher {
	if buffer <= 0 {
		buffer = 1
	}
	d := &Dispatcher{
		q:       q,
		log:     log,
		m:       m,
		timeout: timeout,
		jobs:    make(chan ThumbnailJob, buffer),
		done:    make(chan struct{}),
	}
	go d.run()
	return d
}

// Dispatch schedules job and returns immediately. It reports false when the
// job was dropped.
func (d *Dispatcher) Dispatch(job ThumbnailJob) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.log.Warn("thumbnail job dropped, dispatcher closed", "file_id", job.FileID)
		d.m.ThumbnailJob("dropped")
		return false
	}

	select {
	case d.jobs <- job:
		d.m.ThumbnailJob("dispatched")
		return true
	default:
		d.log.Warn("thumbnail job dropped, buffer full", "file_id", job.FileID)
		d.m.ThumbnailJob("dropped")
		return false
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for job := range d.jobs {
		d.send(job)
	}
}

func (d *Dispatcher) send(job ThumbnailJob) {
	ctx := context.Background()
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	if err := d.q.Enqueue(ctx, job); err != nil {
		d.log.Error("thumbnail job enqueue failed",
			"user_id", job.UserID,
			"file_id", job.FileID,
			"error", err.Error(),
		)
		d.m.ThumbnailJob("failed")
		return
	}
	d.m.ThumbnailJob("enqueued")
}

// Close stops accepting jobs and waits for the buffered ones to be sent, or for
// ctx to end.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.jobs)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
