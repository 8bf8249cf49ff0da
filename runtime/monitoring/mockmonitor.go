package monitoring

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/zorba-modules/process/runtime"
)

var mockMonitorLog = runtime.Debug("monitor")

type metricCache struct {
	m        sync.Mutex
	measures map[string]bool
	counters map[string]bool
}

// MockMonitor implements runtime.Monitor for use in unit tests. Messages are
// printed with runtime.Debug, set DEBUG='monitor' to see them.
type MockMonitor struct {
	tags         map[string]string
	prefix       string
	panicOnError bool
	cache        *metricCache
}

// NewMockMonitor returns a MockMonitor. If panicOnError is set, calls to
// Error, Errorf or ReportError panic, which is useful when testing components
// that are not supposed to report errors.
func NewMockMonitor(panicOnError bool) *MockMonitor {
	return &MockMonitor{
		panicOnError: panicOnError,
		cache: &metricCache{
			measures: make(map[string]bool),
			counters: make(map[string]bool),
		},
	}
}

func (m *MockMonitor) metadata() string {
	keys := make([]string, 0, len(m.tags))
	for k := range m.tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+m.tags[k])
	}
	if len(pairs) == 0 {
		return ""
	}
	return " [" + strings.Join(pairs, " ") + "]"
}

// Measure records that the metric was measured
func (m *MockMonitor) Measure(name string, value ...float64) {
	m.cache.m.Lock()
	defer m.cache.m.Unlock()
	m.cache.measures[m.prefix+name] = true
}

// Count records that the counter was incremented
func (m *MockMonitor) Count(name string, value float64) {
	m.cache.m.Lock()
	defer m.cache.m.Unlock()
	m.cache.counters[m.prefix+name] = true
}

// Time measures the duration of fn, and records the metric
func (m *MockMonitor) Time(name string, fn func()) {
	fn()
	m.Measure(name)
}

// HasMeasure returns true if the given metric was measured
func (m *MockMonitor) HasMeasure(name string) bool {
	m.cache.m.Lock()
	defer m.cache.m.Unlock()
	return m.cache.measures[name]
}

// HasCounter returns true if the given counter was incremented
func (m *MockMonitor) HasCounter(name string) bool {
	m.cache.m.Lock()
	defer m.cache.m.Unlock()
	return m.cache.counters[name]
}

// ReportError logs the error, and panics if panicOnError is set
func (m *MockMonitor) ReportError(err error, message ...interface{}) string {
	mockMonitorLog("ReportError: %s %s%s", err, fmt.Sprint(message...), m.metadata())
	if m.panicOnError {
		panic(fmt.Sprintf("MockMonitor.ReportError: %s %s", err, fmt.Sprint(message...)))
	}
	return "mock-incident-id"
}

// ReportWarning logs the warning
func (m *MockMonitor) ReportWarning(err error, message ...interface{}) string {
	mockMonitorLog("ReportWarning: %s %s%s", err, fmt.Sprint(message...), m.metadata())
	return "mock-incident-id"
}

// Debug messages are printed with runtime.Debug
func (m *MockMonitor) Debug(args ...interface{}) {
	mockMonitorLog("Debug: %s%s", fmt.Sprint(args...), m.metadata())
}

// Debugf messages are printed with runtime.Debug
func (m *MockMonitor) Debugf(format string, args ...interface{}) {
	m.Debug(fmt.Sprintf(format, args...))
}

// Info messages are printed with runtime.Debug
func (m *MockMonitor) Info(args ...interface{}) {
	mockMonitorLog("Info: %s%s", fmt.Sprint(args...), m.metadata())
}

// Infof messages are printed with runtime.Debug
func (m *MockMonitor) Infof(format string, args ...interface{}) {
	m.Info(fmt.Sprintf(format, args...))
}

// Warn messages are printed with runtime.Debug
func (m *MockMonitor) Warn(args ...interface{}) {
	mockMonitorLog("Warn: %s%s", fmt.Sprint(args...), m.metadata())
}

// Warnf messages are printed with runtime.Debug
func (m *MockMonitor) Warnf(format string, args ...interface{}) {
	m.Warn(fmt.Sprintf(format, args...))
}

// Error messages panic if panicOnError is set
func (m *MockMonitor) Error(args ...interface{}) {
	mockMonitorLog("Error: %s%s", fmt.Sprint(args...), m.metadata())
	if m.panicOnError {
		panic(fmt.Sprintf("MockMonitor.Error: %s", fmt.Sprint(args...)))
	}
}

// Errorf messages panic if panicOnError is set
func (m *MockMonitor) Errorf(format string, args ...interface{}) {
	m.Error(fmt.Sprintf(format, args...))
}

// Panic messages always panic
func (m *MockMonitor) Panic(args ...interface{}) {
	panic(fmt.Sprint(args...))
}

// Panicf messages always panic
func (m *MockMonitor) Panicf(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}

// WithTags creates a child MockMonitor with given tags
func (m *MockMonitor) WithTags(tags map[string]string) runtime.Monitor {
	allTags := make(map[string]string, len(m.tags)+len(tags))
	for k, v := range m.tags {
		allTags[k] = v
	}
	for k, v := range tags {
		allTags[k] = v
	}
	return &MockMonitor{
		tags:         allTags,
		prefix:       m.prefix,
		panicOnError: m.panicOnError,
		cache:        m.cache,
	}
}

// WithTag creates a child MockMonitor with given tag
func (m *MockMonitor) WithTag(key, value string) runtime.Monitor {
	return m.WithTags(map[string]string{key: value})
}

// WithPrefix creates a child MockMonitor with given prefix
func (m *MockMonitor) WithPrefix(prefix string) runtime.Monitor {
	return &MockMonitor{
		tags:         m.tags,
		prefix:       m.prefix + prefix + ".",
		panicOnError: m.panicOnError,
		cache:        m.cache,
	}
}
