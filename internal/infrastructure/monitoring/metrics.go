package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics. A nil *Metrics is valid and records
// nothing, so components can be built without a collector.
type Metrics struct {
	registry *prometheus.Registry

	// Lifecycle metrics
	StateTransitions *prometheus.CounterVec
	StateEnter       *prometheus.HistogramVec
	ServicesTotal    prometheus.Gauge

	// Persistence metrics
	Saves     *prometheus.CounterVec
	SaveBytes prometheus.Histogram
	Loads     *prometheus.CounterVec

	// Platform metrics
	Purchases   *prometheus.CounterVec
	RewardedAds *prometheus.CounterVec

	// Frame loop metrics
	Frames        prometheus.Counter
	FrameDuration prometheus.Histogram

	// Debug HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	startTime time.Time
}

// NewMetrics creates a new metrics collector on its own registry
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	m := &Metrics{
		registry:  reg,
		startTime: time.Now(),

		StateTransitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "game_state_transitions_total",
				Help: "Total number of lifecycle state transitions",
			},
			[]string{"state", "status"},
		),
		StateEnter: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "game_state_enter_duration_seconds",
				Help:    "Time spent in a state's Enter action",
				Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
			},
			[]string{"state"},
		),
		ServicesTotal: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "game_services_registered",
				Help: "Number of services in the registry",
			},
		),

		Saves: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "game_progress_saves_total",
				Help: "Total number of progress saves",
			},
			[]string{"status"},
		),
		SaveBytes: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "game_progress_save_size_bytes",
				Help:    "Serialized progress size in bytes",
				Buckets: []float64{128, 512, 1024, 4096, 16384, 65536},
			},
		),
		Loads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "game_progress_loads_total",
				Help: "Total number of progress loads by outcome",
			},
			[]string{"outcome"},
		),

		Purchases: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "game_iap_purchases_total",
				Help: "Total number of in-app purchase results",
			},
			[]string{"product", "status"},
		),
		RewardedAds: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "game_rewarded_ads_total",
				Help: "Total number of rewarded video results",
			},
			[]string{"status"},
		),

		Frames: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "game_frames_total",
				Help: "Total number of frames processed",
			},
		),
		FrameDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "game_frame_duration_seconds",
				Help:    "Time spent processing one frame",
				Buckets: []float64{.0005, .001, .002, .004, .008, .016, .033, .066},
			},
		),

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "game_debug_http_requests_total",
				Help: "Total number of debug HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "game_debug_http_request_duration_seconds",
				Help:    "Debug HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .05, .1, .5, 1},
			},
			[]string{"method", "path"},
		),
	}

	factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "game_uptime_seconds",
			Help: "Runtime uptime in seconds",
		},
		func() float64 { return time.Since(m.startTime).Seconds() },
	)

	return m
}

// Registry returns the Prometheus registry backing m
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler returns the exposition handler for m
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordTransition records a state transition and its Enter duration
func (m *Metrics) RecordTransition(state, status string, enter time.Duration) {
	if m == nil {
		return
	}
	m.StateTransitions.WithLabelValues(state, status).Inc()
	m.StateEnter.WithLabelValues(state).Observe(enter.Seconds())
}

// SetServices sets the number of registered services
func (m *Metrics) SetServices(count int) {
	if m == nil {
		return
	}
	m.ServicesTotal.Set(float64(count))
}

// RecordSave records a save attempt
func (m *Metrics) RecordSave(status string, size int) {
	if m == nil {
		return
	}
	m.Saves.WithLabelValues(status).Inc()
	if size > 0 {
		m.SaveBytes.Observe(float64(size))
	}
}

// RecordLoad records a load outcome: found, absent, corrupt or error
func (m *Metrics) RecordLoad(outcome string) {
	if m == nil {
		return
	}
	m.Loads.WithLabelValues(outcome).Inc()
}

// RecordPurchase records a purchase result
func (m *Metrics) RecordPurchase(product, status string) {
	if m == nil {
		return
	}
	m.Purchases.WithLabelValues(product, status).Inc()
}

// RecordRewardedAd records a rewarded video result
func (m *Metrics) RecordRewardedAd(status string) {
	if m == nil {
		return
	}
	m.RewardedAds.WithLabelValues(status).Inc()
}

// RecordFrame records one processed frame
func (m *Metrics) RecordFrame(duration time.Duration) {
	if m == nil {
		return
	}
	m.Frames.Inc()
	m.FrameDuration.Observe(duration.Seconds())
}

// RecordHTTPRequest records a debug HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}
