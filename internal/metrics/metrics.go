// Package metrics holds the domain counters for uploads and thumbnail processing.
// A nil *Metrics is valid and records nothing.
package metrics

import "github.com/prometheus/client_golang/prometheus"

type Metrics struct {
	filesCreated  *prometheus.CounterVec
	thumbnailJobs *prometheus.CounterVec
	thumbnails    *prometheus.CounterVec
}

// New creates the counters and registers them with reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		filesCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "files_created_total",
				Help: "Files, folders and images created through the upload pipeline.",
			},
			[]string{"type"},
		),
		thumbnailJobs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "thumbnail_jobs_total",
				Help: "Thumbnail jobs by dispatch outcome (dispatched, enqueued, failed, dropped).",
			},
			[]string{"result"},
		),
		thumbnails: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "thumbnails_processed_total",
				Help: "Thumbnail jobs processed by the worker.",
			},
			[]string{"result"},
		),
	}

	for _, c := range []prometheus.Collector{m.filesCreated, m.thumbnailJobs, m.thumbnails} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) FileCreated(fileType string) {
	if m == nil {
		return
	}
	m.filesCreated.WithLabelValues(fileType).Inc()
}

func (m *Metrics) ThumbnailJob(result string) {
	if m == nil {
		return
	}
	m.thumbnailJobs.WithLabelValues(result).Inc()
}

func (m *Metrics) ThumbnailProcessed(result string) {
	if m == nil {
		return
	}
	m.thumbnails.WithLabelValues(result).Inc()
}
