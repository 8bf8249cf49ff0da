package system

import (
	"os"

	"github.com/pkg/errors"
)

// pipeSet owns the two pipes wired to a child's stdout and stderr, and their
// lifecycle. The write ends are handed to the child at spawn and the parent
// copies are closed immediately after, otherwise the read ends never observe
// EOF. Each end is closed exactly once, the Close* methods are idempotent.
type pipeSet struct {
	stdoutRead  *os.File
	stdoutWrite *os.File
	stderrRead  *os.File
	stderrWrite *os.File
}

// newPipeSet creates the stdout and stderr pipes. If the second pipe cannot
// be created the first is closed again, no endpoints leak on failure.
func newPipeSet(bufferSize int) (*pipeSet, error) {
	stdoutRead, stdoutWrite, err := newPipe(bufferSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create stdout pipe")
	}
	stderrRead, stderrWrite, err := newPipe(bufferSize)
	if err != nil {
		stdoutRead.Close()
		stdoutWrite.Close()
		return nil, errors.Wrap(err, "failed to create stderr pipe")
	}
	return &pipeSet{
		stdoutRead:  stdoutRead,
		stdoutWrite: stdoutWrite,
		stderrRead:  stderrRead,
		stderrWrite: stderrWrite,
	}, nil
}

// CloseWriteEnds closes the parent's copies of the write ends. Must be
// called right after the child has inherited them.
func (p *pipeSet) CloseWriteEnds() {
	if p.stdoutWrite != nil {
		p.stdoutWrite.Close()
		p.stdoutWrite = nil
	}
	if p.stderrWrite != nil {
		p.stderrWrite.Close()
		p.stderrWrite = nil
	}
}

// CloseReadEnds closes the read ends once their data is no longer needed.
// A child still writing will observe a broken pipe afterwards.
func (p *pipeSet) CloseReadEnds() {
	if p.stdoutRead != nil {
		p.stdoutRead.Close()
		p.stdoutRead = nil
	}
	if p.stderrRead != nil {
		p.stderrRead.Close()
		p.stderrRead = nil
	}
}

// CloseAll closes whatever endpoints are still open.
func (p *pipeSet) CloseAll() {
	p.CloseWriteEnds()
	p.CloseReadEnds()
}
