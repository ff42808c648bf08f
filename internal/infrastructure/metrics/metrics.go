package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "capper",
			Subsystem: "server",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "capper",
			Subsystem: "server",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"method", "endpoint"},
	)

	// Chat turn counter by terminal outcome
	ChatTurnsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "capper",
			Subsystem: "server",
			Name:      "chat_turns_total",
			Help:      "Completed chat turns by status",
		},
		[]string{"status"},
	)

	// Fallback replies by branch
	ChatFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "capper",
			Subsystem: "server",
			Name:      "chat_fallbacks_total",
			Help:      "Fallback replies served instead of generated text",
		},
		[]string{"kind"},
	)

	// Messages dropped by history truncation
	TruncatedMessagesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "capper",
			Subsystem: "server",
			Name:      "truncated_messages_total",
			Help:      "History messages dropped to fit the token budget",
		},
	)

	// LLM call duration histogram
	LLMCallDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "capper",
			Subsystem: "server",
			Name:      "llm_call_duration_seconds",
			Help:      "Wall-clock duration of LLM provider calls",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
		},
	)

	// Model context length reported by the provider, 0 when unknown
	ModelContextLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "capper",
			Subsystem: "server",
			Name:      "model_context_length",
			Help:      "Context window size reported by the configured model",
		},
	)
)
