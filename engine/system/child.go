package system

import (
	"os"
	"os/exec"

	"github.com/zorba-modules/process/runtime/atomics"
	"github.com/zorba-modules/process/runtime/ioext"
)

// Child is the handle for a spawned process together with the pipe read ends
// the parent owns. It lives from Spawn to Wait, after which all handles have
// been released.
type Child struct {
	cmd        *exec.Cmd
	stdoutRead *os.File
	stderrRead *os.File
	released   atomics.Once
}

// Pid of the child process.
func (c *Child) Pid() int {
	return c.cmd.Process.Pid
}

// release closes the pipe read ends, exactly once regardless of how many
// paths reach it. A child still writing observes a broken pipe afterwards,
// so release also serves to unblock a child on the failure paths.
func (c *Child) release() {
	c.released.Do(func() {
		ioext.CloseIgnoringErrors(c.stdoutRead, c.stderrRead)
	})
}

// startChild wires the pipe write ends to the command's stdout and stderr,
// starts it, and hands the read ends to the returned Child. The parent
// copies of the write ends are closed whether or not the start succeeded,
// and on failure the read ends are closed too, leaving nothing behind.
func startChild(cmd *exec.Cmd, pipes *pipeSet) (*Child, error) {
	cmd.Stdout = pipes.stdoutWrite
	cmd.Stderr = pipes.stderrWrite

	child := &Child{
		cmd:        cmd,
		stdoutRead: pipes.stdoutRead,
		stderrRead: pipes.stderrRead,
	}

	err := cmd.Start()
	pipes.CloseWriteEnds()
	if err != nil {
		child.release()
		return nil, err
	}
	return child, nil
}
