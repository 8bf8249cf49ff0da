//go:build !windows

package system

import (
	"os"
	"syscall"
)

// statusFromProcessState decodes the wait(2) status of a terminated child.
func statusFromProcessState(state *os.ProcessState) Status {
	ws, ok := state.Sys().(syscall.WaitStatus)
	if !ok {
		return UnknownStatus()
	}
	switch {
	case ws.Exited():
		return ExitedStatus(ws.ExitStatus())
	case ws.Signaled():
		return SignaledStatus(int(ws.Signal()))
	case ws.Stopped():
		return StoppedStatus(int(ws.StopSignal()))
	default:
		return UnknownStatus()
	}
}
