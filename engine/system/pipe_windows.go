//go:build windows

package system

import (
	"os"

	"golang.org/x/sys/windows"
)

const defaultStripCarriageReturns = true

// defaultPipeBufferSize is the pipe capacity requested when the caller
// doesn't size the pipes. Generous so a bursting child rarely blocks on a
// full pipe while the drain catches up.
const defaultPipeBufferSize = 1024 * 1024

// Reading a pipe whose write end has been closed fails with
// ERROR_BROKEN_PIPE on Windows, which is the end-of-stream signal here.
var errBrokenPipe error = windows.ERROR_BROKEN_PIPE

// newPipe creates a pipe with the requested capacity using CreatePipe,
// os.Pipe offers no way to size the buffer.
func newPipe(bufferSize int) (r, w *os.File, err error) {
	if bufferSize <= 0 {
		bufferSize = defaultPipeBufferSize
	}
	var read, write windows.Handle
	if err := windows.CreatePipe(&read, &write, nil, uint32(bufferSize)); err != nil {
		return nil, nil, err
	}
	return os.NewFile(uintptr(read), "|0"), os.NewFile(uintptr(write), "|1"), nil
}
