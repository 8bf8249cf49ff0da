// Package monitoring provides runtime.Monitor implementations, a logrus
// backed monitor for production use and a mock monitor for tests.
package monitoring

import (
	"fmt"
	"strings"
	"time"

	"github.com/pborman/uuid"
	"github.com/sirupsen/logrus"

	"github.com/zorba-modules/process/runtime"
)

type loggingMonitor struct {
	*logrus.Entry
	prefix string
}

// New creates a runtime.Monitor that logs everything through logrus at the
// given logLevel, annotated with the given tags. Metrics are logged at debug
// level, there is no metrics backend in this project.
func New(logLevel string, tags map[string]string) runtime.Monitor {
	logger := logrus.New()
	level, err := logrus.ParseLevel(strings.ToLower(logLevel))
	if err != nil {
		panic(fmt.Sprintf("Unsupported log-level: %s", logLevel))
	}
	logger.SetLevel(level)

	fields := make(logrus.Fields, len(tags))
	for k, v := range tags {
		fields[k] = v
	}

	return &loggingMonitor{
		Entry: logrus.NewEntry(logger).WithFields(fields),
	}
}

func (m *loggingMonitor) Measure(name string, value ...float64) {
	strs := make([]string, 0, len(value))
	for _, v := range value {
		strs = append(strs, fmt.Sprintf("%f", v))
	}
	m.Debugf("measure: %s%s recorded %s", m.prefix, name, strings.Join(strs, ","))
}

func (m *loggingMonitor) Count(name string, value float64) {
	m.Debugf("counter: %s%s incremented by %f", m.prefix, name, value)
}

func (m *loggingMonitor) Time(name string, fn func()) {
	start := time.Now()
	fn()
	m.Measure(name, time.Since(start).Seconds()*1000)
}

func (m *loggingMonitor) ReportError(err error, message ...interface{}) string {
	incidentID := uuid.NewRandom().String()
	m.WithField("incidentId", incidentID).WithError(err).Error(message...)
	return incidentID
}

func (m *loggingMonitor) ReportWarning(err error, message ...interface{}) string {
	incidentID := uuid.NewRandom().String()
	m.WithField("incidentId", incidentID).WithError(err).Warn(message...)
	return incidentID
}

func (m *loggingMonitor) WithTags(tags map[string]string) runtime.Monitor {
	fields := make(logrus.Fields, len(tags))
	for k, v := range tags {
		fields[k] = v
	}
	return &loggingMonitor{
		Entry:  m.Entry.WithFields(fields),
		prefix: m.prefix,
	}
}

func (m *loggingMonitor) WithTag(key, value string) runtime.Monitor {
	return m.WithTags(map[string]string{key: value})
}

func (m *loggingMonitor) WithPrefix(prefix string) runtime.Monitor {
	return &loggingMonitor{
		Entry:  m.Entry,
		prefix: m.prefix + prefix + ".",
	}
}
