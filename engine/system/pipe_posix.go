//go:build !windows

package system

import (
	"os"
	"syscall"
)

const defaultStripCarriageReturns = false

// errBrokenPipe is what a read on a pipe returns when the peer is gone and
// the platform doesn't report plain EOF.
var errBrokenPipe error = syscall.EPIPE

// newPipe creates a pipe. POSIX pipe capacity is a kernel property, the
// bufferSize request is advisory and ignored here, blocking reads make the
// capacity invisible to the drain.
func newPipe(bufferSize int) (r, w *os.File, err error) {
	return os.Pipe()
}
