package engine

import (
	"github.com/taskcluster/slugid-go/slugid"

	"github.com/zorba-modules/process/config"
	"github.com/zorba-modules/process/engine/system"
	"github.com/zorba-modules/process/runtime"
	"github.com/zorba-modules/process/runtime/monitoring"
)

// Options for New.
type Options struct {
	// Monitor for logging and counters, defaults to a logging monitor at
	// the configured log level.
	Monitor runtime.Monitor

	// Config for the engine, zero value for defaults.
	Config config.Config
}

// Engine executes child processes. It is safe for concurrent use, every
// invocation owns its pipes, buffers and process handle exclusively.
type Engine struct {
	backend system.Backend
	monitor runtime.Monitor
}

// New creates an Engine with the backend for the current platform.
func New(options Options) *Engine {
	c := options.Config.WithDefaults()

	monitor := options.Monitor
	if monitor == nil {
		monitor = monitoring.New(c.LogLevel, map[string]string{
			"component": "process-engine",
		})
	}

	return &Engine{
		backend: system.New(system.Options{
			Shell:                c.Shell,
			PipeBufferSize:       c.PipeBufferSize,
			StripCarriageReturns: c.ResolveStripCarriageReturns(),
		}),
		monitor: monitor,
	}
}

// Execute runs the command described by spec and blocks until the child has
// exited and both output streams are fully captured, however long that
// takes. It returns the complete result, or a SpawnError, DrainError or
// WaitError, never a partial result. All pipe and process handles are
// released before Execute returns, on every path.
func (e *Engine) Execute(spec CommandSpec) (ExecutionResult, error) {
	monitor := e.monitor.WithTag("invocationId", slugid.Nice())

	plan := spec.plan()
	debug("executing: shell=%v argv=%v line=%q", plan.Shell, plan.Argv, plan.Line)

	child, err := e.backend.Spawn(plan)
	if err != nil {
		monitor.Count("spawn-failed", 1)
		monitor.Infof("spawn failed: %s", err)
		return ExecutionResult{}, &SpawnError{reason: err}
	}
	monitor.Debugf("spawned child process %d", child.Pid())

	// Drain runs concurrently with the child's execution, the final wait
	// only happens once both streams reached end-of-stream. A child that
	// exits before its pipes are drained is fine, the drain keeps reading
	// buffered data after exit.
	stdout, stderr, drainErr := e.backend.Drain(child)

	// The child is reaped even when draining failed, Wait releases every
	// handle on all paths.
	status, waitErr := e.backend.Wait(child)

	if drainErr != nil {
		monitor.Count("drain-failed", 1)
		monitor.ReportWarning(drainErr, "discarding partial output after drain failure")
		return ExecutionResult{}, &DrainError{reason: drainErr}
	}
	if waitErr != nil {
		monitor.Count("wait-failed", 1)
		monitor.ReportWarning(waitErr, "child process termination status unavailable")
		return ExecutionResult{}, &WaitError{reason: waitErr}
	}

	monitor.Debugf("child process %d terminated: %s", child.Pid(), status)
	monitor.Count("executed", 1)

	return ExecutionResult{
		ExitCode: e.backend.Encode(status),
		Stdout:   string(stdout),
		Stderr:   string(stderr),
	}, nil
}
