package system

import "fmt"

type statusKind int

const (
	statusUnknown statusKind = iota
	statusExited
	statusSignaled
	statusStopped
)

// Status describes how a child process terminated. It is produced once, by
// Backend.Wait, and consumed by Backend.Encode.
type Status struct {
	kind  statusKind
	value int
}

// ExitedStatus returns the Status of a child that exited with code.
func ExitedStatus(code int) Status {
	return Status{kind: statusExited, value: code}
}

// SignaledStatus returns the Status of a child terminated by signal.
func SignaledStatus(signal int) Status {
	return Status{kind: statusSignaled, value: signal}
}

// StoppedStatus returns the Status of a child stopped by signal.
func StoppedStatus(signal int) Status {
	return Status{kind: statusStopped, value: signal}
}

// UnknownStatus returns the Status of a child whose termination the OS could
// not describe.
func UnknownStatus() Status {
	return Status{kind: statusUnknown}
}

// ExitCode returns the normalized exit code for the status: the exit code
// unchanged for a normal exit, 128 + signal for a signaled or stopped child,
// and 255 if the status is unknown. This is total, every Status value maps
// to an integer.
func (s Status) ExitCode() int {
	switch s.kind {
	case statusExited:
		return s.value
	case statusSignaled, statusStopped:
		return 128 + s.value
	default:
		return 255
	}
}

func (s Status) String() string {
	switch s.kind {
	case statusExited:
		return fmt.Sprintf("exited(%d)", s.value)
	case statusSignaled:
		return fmt.Sprintf("signaled(%d)", s.value)
	case statusStopped:
		return fmt.Sprintf("stopped(%d)", s.value)
	default:
		return "unknown"
	}
}

// encoder implements the Encode operation shared by all backends.
type encoder struct{}

// Encode maps status to the normalized exit code, see Status.ExitCode.
func (encoder) Encode(status Status) int {
	return status.ExitCode()
}
