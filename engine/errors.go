package engine

import "github.com/pkg/errors"

// SpawnError reports that the stdio pipes or the child process could not be
// created, for example because of resource limits, a missing executable or
// denied permissions. No child is left running when a SpawnError surfaces.
type SpawnError struct {
	reason error
}

func (e *SpawnError) Error() string {
	return "failed to spawn child process: " + e.reason.Error()
}

// Unwrap returns the underlying OS-level error.
func (e *SpawnError) Unwrap() error {
	return e.reason
}

// DrainError reports an I/O error, other than end-of-stream, while reading
// a pipe. Output captured before the error is discarded, an invocation
// never returns partial text.
type DrainError struct {
	reason error
}

func (e *DrainError) Error() string {
	return "failed to capture child process output: " + e.reason.Error()
}

// Unwrap returns the underlying read error.
func (e *DrainError) Unwrap() error {
	return e.reason
}

// WaitError reports that the OS could not deliver the child's termination
// status. All handles have been released when a WaitError surfaces.
type WaitError struct {
	reason error
}

func (e *WaitError) Error() string {
	return "failed to obtain child process termination status: " + e.reason.Error()
}

// Unwrap returns the underlying wait error.
func (e *WaitError) Unwrap() error {
	return e.reason
}

// IsSpawnError returns true if err is or wraps a SpawnError.
func IsSpawnError(err error) bool {
	var e *SpawnError
	return errors.As(err, &e)
}

// IsDrainError returns true if err is or wraps a DrainError.
func IsDrainError(err error) bool {
	var e *DrainError
	return errors.As(err, &e)
}

// IsWaitError returns true if err is or wraps a WaitError.
func IsWaitError(err error) bool {
	var e *WaitError
	return errors.As(err, &e)
}
