//go:build windows

package system

import (
	"os"
	"syscall"
)

// statusFromProcessState decodes the exit code reported by
// GetExitCodeProcess. Windows has no signal or stop states, every
// termination is an exit code.
func statusFromProcessState(state *os.ProcessState) Status {
	ws, ok := state.Sys().(syscall.WaitStatus)
	if !ok {
		return UnknownStatus()
	}
	return ExitedStatus(int(ws.ExitCode))
}
