package engine

// ExecutionResult is the terminal, immutable artifact of an invocation.
//
// ExitCode is the single normalized value all backends produce: the exit
// code unchanged when the child exited normally, 128 plus the signal number
// when it was terminated or stopped by a signal, and 255 when the OS could
// not describe the termination. Callers never observe a platform-specific
// status representation.
//
// The JSON field names form the record shape consumed by binding layers:
// {"exit-code": ..., "stdout": ..., "stderr": ...}.
type ExecutionResult struct {
	ExitCode int    `json:"exit-code"`
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
}
