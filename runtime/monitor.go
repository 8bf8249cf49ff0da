// Package runtime provides ambient services for the process engine, a
// Monitor facade for logging and light-weight metrics, and a DEBUG env-var
// controlled tracing facility for development.
package runtime

// A Monitor is responsible for collecting logs, metrics and error reports.
//
// Monitors are cheap to derive, use WithTag/WithPrefix to scope a monitor to
// a component or a single invocation rather than passing tags around.
type Monitor interface {
	// Measure records values for the given metric name
	Measure(name string, value ...float64)
	// Count increments the counter name with the given value
	Count(name string, value float64)
	// Time measures the duration of fn
	Time(name string, fn func())

	// ReportError writes an error with message to the log, returning an
	// incident id that can be handed to callers for correlation.
	ReportError(err error, message ...interface{}) string
	ReportWarning(err error, message ...interface{}) string

	// Write log messages at the given level
	Debug(...interface{})
	Debugf(string, ...interface{})
	Info(...interface{})
	Infof(string, ...interface{})
	Warn(...interface{})
	Warnf(string, ...interface{})
	Error(...interface{})
	Errorf(string, ...interface{})
	Panic(...interface{})
	Panicf(string, ...interface{})

	// WithTags creates a child monitor with the given tags
	WithTags(tags map[string]string) Monitor
	WithTag(key, value string) Monitor
	// WithPrefix creates a child monitor with the given metric/log prefix
	WithPrefix(prefix string) Monitor
}
