package monitoring

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestLoggingMonitor(t *testing.T) {
	m := New("debug", map[string]string{"component": "test"})
	m.Debug("debug message")
	m.Infof("info %s", "message")
	m.Count("things", 1)
	m.Time("duration", func() {})
	id := m.ReportWarning(errors.New("some warning"), "warning happened")
	require.NotEmpty(t, id)
	m.WithTag("k", "v").WithPrefix("sub").Info("tagged message")
}

func TestLoggingMonitorBadLevel(t *testing.T) {
	require.Panics(t, func() {
		New("no-such-level", nil)
	})
}

func TestMockMonitorMetrics(t *testing.T) {
	m := NewMockMonitor(true)
	m.WithPrefix("engine").Count("spawned", 1)
	require.True(t, m.HasCounter("engine.spawned"))
	require.False(t, m.HasCounter("engine.other"))
	m.Time("waited", func() {})
	require.True(t, m.HasMeasure("waited"))
}

func TestMockMonitorPanicOnError(t *testing.T) {
	m := NewMockMonitor(true)
	require.Panics(t, func() {
		m.ReportError(errors.New("boom"), "should panic")
	})
	require.NotPanics(t, func() {
		NewMockMonitor(false).Error("tolerated")
	})
}
