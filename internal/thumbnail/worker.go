package thumbnail

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"filesmanager/internal/config"
	"filesmanager/internal/metrics"
	"filesmanager/internal/queue"
)

// ErrAttemptsExhausted is recorded on a job claimed more often than the worker's MaxAttempts.
var ErrAttemptsExhausted = errors.New("thumbnail job attempts exhausted")

// JobProcessor handles a single thumbnail job.
type JobProcessor interface {
	Process(ctx context.Context, job queue.ThumbnailJob) error
}

// Worker polls the job queue with a fixed number of goroutines.
type Worker struct {
	jobs    queue.Consumer
	proc    JobProcessor
	log     *slog.Logger
	m       *metrics.Metrics
	cfg     config.ThumbnailConfig
	timeout time.Duration
}

func NewWorker(jobs queue.Consumer, proc JobProcessor, log *slog.Logger, cfg config.ThumbnailConfig, timeout time.Duration, m *metrics.Metrics) *Worker {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Second
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	return &Worker{jobs: jobs, proc: proc, log: log, m: m, cfg: cfg, timeout: timeout}
}

// Run blocks until ctx is cancelled. Jobs in flight are finished first.
func (w *Worker) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < w.cfg.Concurrency; i++ {
		id := i
		g.Go(func() error {
			w.loop(ctx, id)
			return nil
		})
	}
	return g.Wait()
}

func (w *Worker) loop(ctx context.Context, id int) {
	log := w.log.With("worker", id)
	for {
		if ctx.Err() != nil {
			return
		}
		worked, err := w.Step(ctx)
		if err != nil {
			log.Error("thumbnail queue error", "error", err.Error())
		}
		if worked {
			continue
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(w.cfg.PollInterval):
		}
	}
}

// Step claims and processes at most one job. It reports whether a job was found.
func (w *Worker) Step(ctx context.Context) (bool, error) {
	job, err := w.jobs.Claim(ctx)
	if err != nil {
		return false, err
	}
	if job == nil {
		return false, nil
	}

	// The job outcome is recorded even if ctx is cancelled mid-way.
	bg := context.WithoutCancel(ctx)

	// A job reclaimed after its lease expired may have taken its worker down with it.
	if job.Attempts > w.cfg.MaxAttempts {
		fctx, cancel := w.jobContext(bg)
		defer cancel()
		w.log.Warn("thumbnail job exhausted",
			"job_id", job.ID,
			"file_id", job.FileID,
			"attempt", job.Attempts,
		)
		w.m.ThumbnailProcessed("failed")
		return true, w.jobs.Fail(fctx, job.ID, ErrAttemptsExhausted, 0)
	}

	pctx, cancel := w.jobContext(bg)
	start := time.Now()
	perr := w.proc.Process(pctx, job.ThumbnailJob)
	cancel()

	fctx, cancel := w.jobContext(bg)
	defer cancel()

	if perr == nil {
		w.log.Info("thumbnails generated",
			"job_id", job.ID,
			"file_id", job.FileID,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		w.m.ThumbnailProcessed("done")
		return true, w.jobs.Complete(fctx, job.ID)
	}

	maxAttempts := w.cfg.MaxAttempts
	if errors.Is(perr, ErrInvalidJob) {
		maxAttempts = 0
	}
	w.log.Warn("thumbnail job failed",
		"job_id", job.ID,
		"file_id", job.FileID,
		"attempt", job.Attempts,
		"error", perr.Error(),
	)
	w.m.ThumbnailProcessed("failed")
	return true, w.jobs.Fail(fctx, job.ID, perr, maxAttempts)
}

func (w *Worker) jobContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if w.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, w.timeout)
}
