// Package engine executes a single child process and captures its output.
//
// A CommandSpec describes what to run, either a command line interpreted by
// the system shell, or a program with an explicit argument vector and an
// optional replacement environment. Engine.Execute spawns the child with
// stdout and stderr redirected into pipes, drains both pipes concurrently,
// waits for the child to terminate, and returns an ExecutionResult holding
// the captured output and one normalized exit code.
//
// An invocation either yields a complete ExecutionResult or fails with a
// SpawnError, DrainError or WaitError. There is no partial success, and all
// pipe and process handles are released on every path. Execute blocks until
// the child exits, there is no timeout or kill policy.
package engine

import "github.com/zorba-modules/process/runtime"

var debug = runtime.Debug("engine")
