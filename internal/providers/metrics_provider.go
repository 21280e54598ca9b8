package providers

import (
	"time"

	"contesthub/internal/structures"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	ObserveAdapterDuration(platform string, duration time.Duration)
	IncAdapterFailures(platform string)
	SetContestsTotal(status string, count int)
	IncVideoFetches(outcome string)
	IncMatches(kind string)
	ObserveStoreDuration(operation string, duration time.Duration)
}

type MetricsProvider struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	adapterDuration *prometheus.HistogramVec
	adapterFailures *prometheus.CounterVec
	contestsTotal   *prometheus.GaugeVec
	videoFetches    *prometheus.CounterVec
	matchesTotal    *prometheus.CounterVec
	storeDuration   *prometheus.HistogramVec
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) ObserveAdapterDuration(platform string, duration time.Duration) {
	m.adapterDuration.WithLabelValues(platform).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncAdapterFailures(platform string) {
	m.adapterFailures.WithLabelValues(platform).Inc()
}

func (m *MetricsProvider) SetContestsTotal(status string, count int) {
	m.contestsTotal.WithLabelValues(status).Set(float64(count))
}

func (m *MetricsProvider) IncVideoFetches(outcome string) {
	m.videoFetches.WithLabelValues(outcome).Inc()
}

func (m *MetricsProvider) IncMatches(kind string) {
	m.matchesTotal.WithLabelValues(kind).Inc()
}

func (m *MetricsProvider) ObserveStoreDuration(operation string, duration time.Duration) {
	m.storeDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "contesthub_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "contesthub_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "contesthub_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "contesthub_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		adapterDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "contesthub_adapter_fetch_duration_seconds",
			Help:    "Duration of platform adapter fetches in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"platform"}),

		adapterFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "contesthub_adapter_failures_total",
			Help: "Total number of failed platform adapter fetches",
		}, []string{"platform"}),

		contestsTotal: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "contesthub_contests",
			Help: "Number of contests in the last aggregation per status",
		}, []string{"status"}),

		videoFetches: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "contesthub_playlist_fetches_total",
			Help: "Total number of playlist video fetches by outcome",
		}, []string{"outcome"}),

		matchesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "contesthub_video_matches_total",
			Help: "Total number of contest to video lookups by result kind",
		}, []string{"kind"}),

		storeDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "contesthub_store_operation_duration_seconds",
			Help:    "Duration of key-value store operations in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) ObserveAdapterDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncAdapterFailures(_ string)                      {}
func (n *noopMetrics) SetContestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) IncVideoFetches(_ string)                         {}
func (n *noopMetrics) IncMatches(_ string)                              {}
func (n *noopMetrics) ObserveStoreDuration(_ string, _ time.Duration)   {}
