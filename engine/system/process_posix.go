//go:build !windows

package system

import (
	"os/exec"

	"github.com/pkg/errors"
)

const defaultShell = "/bin/sh"

// posixBackend spawns children with fork/exec. If the program cannot be
// executed inside the forked child, the child terminates abruptly without
// running any of the parent's in-process teardown, and the failure surfaces
// as an error from Spawn. No partial child is ever left running.
type posixBackend struct {
	encoder
	shell                string
	pipeBufferSize       int
	stripCarriageReturns bool
}

func newBackend(options Options) Backend {
	shell := options.Shell
	if shell == "" {
		shell = defaultShell
	}
	return &posixBackend{
		shell:                shell,
		pipeBufferSize:       options.PipeBufferSize,
		stripCarriageReturns: options.StripCarriageReturns,
	}
}

func (b *posixBackend) Spawn(plan LaunchPlan) (*Child, error) {
	pipes, err := newPipeSet(b.pipeBufferSize)
	if err != nil {
		return nil, err
	}

	var cmd *exec.Cmd
	if plan.Shell {
		cmd = exec.Command(b.shell, "-c", plan.Line)
	} else {
		cmd = exec.Command(plan.Argv[0], plan.Argv[1:]...)
		if len(plan.Env) > 0 {
			cmd.Env = plan.Env
		}
	}

	child, err := startChild(cmd, pipes)
	if err != nil {
		debug("failed to start process, error: %s", err)
		return nil, errors.Wrap(err, "unable to execute binary")
	}
	debug("started process %d with %v", child.Pid(), cmd.Args)
	return child, nil
}

func (b *posixBackend) Drain(child *Child) ([]byte, []byte, error) {
	return drain(child, b.stripCarriageReturns)
}

func (b *posixBackend) Wait(child *Child) (Status, error) {
	return waitChild(child)
}
