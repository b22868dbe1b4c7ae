package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for a conversion run.
type Metrics struct {
	FilesScanned      prometheus.Counter
	StationsConverted prometheus.Counter
	StationsSkipped   prometheus.Counter
	ArrivalsWritten   prometheus.Counter
	BytesWritten      prometheus.Counter
	ConversionErrors  *prometheus.CounterVec // labels: kind={station_table,station_not_found,arrival,canceled,io}
	RunDuration       prometheus.Histogram
	LastRunSuccess    prometheus.Gauge

	// Event publishing metrics.
	EventsPublished prometheus.Counter
}

func newMetrics() *Metrics {
	return &Metrics{
		FilesScanned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shots2cnv",
			Name:      "shot_files_scanned_total",
			Help:      "Total .time files found in the input directory.",
		}),
		StationsConverted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shots2cnv",
			Name:      "stations_converted_total",
			Help:      "Total stations written to the CNV output.",
		}),
		StationsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shots2cnv",
			Name:      "stations_skipped_total",
			Help:      "Total stations skipped because their shot file had no arrivals.",
		}),
		ArrivalsWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shots2cnv",
			Name:      "arrivals_written_total",
			Help:      "Total phase readings written to the CNV output.",
		}),
		BytesWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shots2cnv",
			Name:      "cnv_bytes_written_total",
			Help:      "Total bytes written to the CNV output.",
		}),
		ConversionErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shots2cnv",
			Name:      "conversion_errors_total",
			Help:      "Fatal conversion errors by kind.",
		}, []string{"kind"}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "shots2cnv",
			Name:      "run_duration_seconds",
			Help:      "Duration of a complete directory conversion.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		}),
		LastRunSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "shots2cnv",
			Name:      "last_run_success",
			Help:      "1 if the last conversion completed, 0 if it failed.",
		}),
		EventsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shots2cnv",
			Name:      "events_published_total",
			Help:      "Total station events published to Kafka.",
		}),
	}
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.FilesScanned,
		m.StationsConverted,
		m.StationsSkipped,
		m.ArrivalsWritten,
		m.BytesWritten,
		m.ConversionErrors,
		m.RunDuration,
		m.LastRunSuccess,
		m.EventsPublished,
	}
}

// NewMetrics creates all conversion metrics and registers them with reg.
// Each run uses its own registry so the exported textfile holds only that run.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := newMetrics()
	reg.MustRegister(m.collectors()...)
	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() (*Metrics, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewMetrics(reg), reg
}

// WriteTextfile writes every metric known to g to path in the Prometheus text
// exposition format, for pickup by the node_exporter textfile collector.
// An empty path is a no-op.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
