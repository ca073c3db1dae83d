package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)
)

// Session Metrics
var (
	RollsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: MetricNameRollsStarted,
		Help: HelpTextRollsStarted,
	})

	RollsIgnored = promauto.NewCounter(prometheus.CounterOpts{
		Name: MetricNameRollsIgnored,
		Help: HelpTextRollsIgnored,
	})

	RollsSettled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRollsSettled,
			Help: HelpTextRollsSettled,
		},
		[]string{LabelOutcome},
	)

	RollsReset = promauto.NewCounter(prometheus.CounterOpts{
		Name: MetricNameRollsReset,
		Help: HelpTextRollsReset,
	})

	StalePayouts = promauto.NewCounter(prometheus.CounterOpts{
		Name: MetricNameStalePayouts,
		Help: HelpTextStalePayouts,
	})

	CancelledPayouts = promauto.NewCounter(prometheus.CounterOpts{
		Name: MetricNameCancelledPayouts,
		Help: HelpTextCancelledPayouts,
	})

	PendingPayouts = promauto.NewGauge(prometheus.GaugeOpts{
		Name: MetricNamePendingPayouts,
		Help: HelpTextPendingPayouts,
	})

	Winnings = promauto.NewGauge(prometheus.GaugeOpts{
		Name: MetricNameWinnings,
		Help: HelpTextWinnings,
	})

	PayoutDelta = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    MetricNamePayoutDelta,
		Help:    HelpTextPayoutDelta,
		Buckets: PayoutDeltaBuckets,
	})
)
