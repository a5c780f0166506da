package logging

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts what a Logger does with each message. One Metrics may be
// shared by several loggers; series are split by the logger context.
type Metrics struct {
	Emitted    *prometheus.CounterVec
	Suppressed *prometheus.CounterVec
	SinkErrors *prometheus.CounterVec
}

// NewMetrics registers the logging counters with reg. A nil reg uses the
// default prometheus registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		Emitted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "appkit_log_lines_emitted_total",
			Help: "The number of log lines that passed the threshold",
		}, []string{"context", "level"}),
		Suppressed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "appkit_log_lines_suppressed_total",
			Help: "The number of log lines dropped by the threshold",
		}, []string{"context", "level"}),
		SinkErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "appkit_log_sink_errors_total",
			Help: "The number of failed sink deliveries",
		}, []string{"context"}),
	}
}

func (m *Metrics) emitted(context string, level Level) {
	if m != nil {
		m.Emitted.WithLabelValues(context, level.String()).Inc()
	}
}

func (m *Metrics) suppressed(context string, level Level) {
	if m != nil {
		m.Suppressed.WithLabelValues(context, level.String()).Inc()
	}
}

func (m *Metrics) sinkError(context string) {
	if m != nil {
		m.SinkErrors.WithLabelValues(context).Inc()
	}
}
