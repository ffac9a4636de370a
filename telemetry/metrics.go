// Package telemetry provides Prometheus metrics and correlation-id aware logging helpers.
package telemetry

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	once sync.Once

	// Counters
	EventsDecoded      *prometheus.CounterVec
	UnsupportedTags    prometheus.Counter
	UnknownEnumValues  prometheus.Counter
	UnknownEventIDs    prometheus.Counter
	MalformedValues    prometheus.Counter
	UnrecognizedEvents prometheus.Counter
	DecodeHardFailures prometheus.Counter
	ArchiveRowsWritten prometheus.Counter
	ArchiveRowsDropped prometheus.Counter

	// Histograms (seconds)
	DecodeDuration       prometheus.Observer
	ArchiveFlushDuration prometheus.Observer

	// Gauges
	ArchiveQueueDepth prometheus.Gauge
	ConnectedGauge    prometheus.Gauge // 1=IRC connection up, 0=down
)

// Init registers metrics (idempotent).
func Init() {
	once.Do(func() {
		EventsDecoded = promauto.NewCounterVec(prometheus.CounterOpts{Name: "chatwire_events_decoded_total", Help: "Decoded events by kind"}, []string{"kind"})
		UnsupportedTags = promauto.NewCounter(prometheus.CounterOpts{Name: "chatwire_unsupported_tags_total", Help: "Tag keys not in the field table"})
		UnknownEnumValues = promauto.NewCounter(prometheus.CounterOpts{Name: "chatwire_unknown_enum_values_total", Help: "Enum tag values not in the enum tables"})
		UnknownEventIDs = promauto.NewCounter(prometheus.CounterOpts{Name: "chatwire_unknown_event_ids_total", Help: "msg-ids and commands no event kind resolves for"})
		MalformedValues = promauto.NewCounter(prometheus.CounterOpts{Name: "chatwire_malformed_values_total", Help: "Tag values that failed coercion"})
		UnrecognizedEvents = promauto.NewCounter(prometheus.CounterOpts{Name: "chatwire_unrecognized_events_total", Help: "Lines degraded to the Unrecognized fallback"})
		DecodeHardFailures = promauto.NewCounter(prometheus.CounterOpts{Name: "chatwire_decode_hard_failures_total", Help: "Lines rejected for a malformed tag string"})
		ArchiveRowsWritten = promauto.NewCounter(prometheus.CounterOpts{Name: "chatwire_archive_rows_written_total", Help: "Event rows written to archive sinks"})
		ArchiveRowsDropped = promauto.NewCounter(prometheus.CounterOpts{Name: "chatwire_archive_rows_dropped_total", Help: "Event rows dropped due to a full archive queue"})
		DecodeDuration = promauto.NewHistogram(prometheus.HistogramOpts{Name: "chatwire_decode_duration_seconds", Help: "Per-line decode duration seconds", Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10)})
		ArchiveFlushDuration = promauto.NewHistogram(prometheus.HistogramOpts{Name: "chatwire_archive_flush_duration_seconds", Help: "Archive batch flush duration seconds", Buckets: prometheus.DefBuckets})
		ArchiveQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{Name: "chatwire_archive_queue_depth", Help: "Rows waiting in the archive queue"})
		ConnectedGauge = promauto.NewGauge(prometheus.GaugeOpts{Name: "chatwire_irc_connected", Help: "IRC connection up=1 down=0"})
	})
}

// CountEvent bumps the per-kind decode counter.
func CountEvent(kind string) {
	if EventsDecoded != nil {
		EventsDecoded.WithLabelValues(kind).Inc()
	}
}

// UpdateConnectedGauge sets gauge to 1 if up else 0.
func UpdateConnectedGauge(up bool) {
	if ConnectedGauge != nil {
		if up {
			ConnectedGauge.Set(1)
		} else {
			ConnectedGauge.Set(0)
		}
	}
}

// SetArchiveQueueDepth records the current number of queued rows.
func SetArchiveQueueDepth(n int) {
	if ArchiveQueueDepth != nil {
		ArchiveQueueDepth.Set(float64(n))
	}
}

// TimeFunc measures the duration of fn and records in observer if non-nil.
func TimeFunc(obs prometheus.Observer, fn func()) time.Duration {
	start := time.Now()
	fn()
	d := time.Since(start)
	if obs != nil {
		obs.Observe(d.Seconds())
	}
	return d
}

// Correlation ID helpers ----------------------------------------------------
type corrKeyType struct{}

var corrKey corrKeyType

// WithCorrelation returns a new context embedding correlation id (if absent) and the id.
func WithCorrelation(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, corrKey, id)
}

// GetCorrelation returns correlation id or empty string.
func GetCorrelation(ctx context.Context) string {
	v := ctx.Value(corrKey)
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// LoggerWithCorr returns a logger with corr attribute if present.
func LoggerWithCorr(ctx context.Context) *slog.Logger {
	if id := GetCorrelation(ctx); id != "" {
		return slog.Default().With(slog.String("corr", id))
	}
	return slog.Default()
}
