package logging

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountsEmissions(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	l := New("AuthService", WithMetrics(m), WithSinks(&captureSink{}, &errorSink{err: errors.New("nope")}))
	require.NoError(t, l.SetThreshold(LevelWarn))

	_ = l.Info("dropped")
	_ = l.Warn("kept")
	_ = l.Error("kept")
	_ = l.Error("kept")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Suppressed.WithLabelValues("AuthService", "info")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Emitted.WithLabelValues("AuthService", "warn")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Emitted.WithLabelValues("AuthService", "error")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.SinkErrors.WithLabelValues("AuthService")))
}

func TestMetrics_Registered(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	l := New("svc", WithMetrics(m))
	_ = l.Info("x")

	families, err := reg.Gather()
	require.NoError(t, err)
	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "appkit_log_lines_emitted_total")
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.emitted("svc", LevelInfo)
		m.suppressed("svc", LevelInfo)
		m.sinkError("svc")
	})
}
