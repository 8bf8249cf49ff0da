//go:build windows

package system

import (
	"os/exec"
	"syscall"

	"github.com/pkg/errors"
)

const defaultShell = "cmd.exe"

// windowsBackend spawns children with CreateProcess. Shell lines are handed
// to cmd.exe as one literal command line, wrapped in an outer pair of quotes
// so cmd.exe treats the quoted command and arguments as a single command.
type windowsBackend struct {
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
	return &windowsBackend{
		shell:                shell,
		pipeBufferSize:       options.PipeBufferSize,
		stripCarriageReturns: options.StripCarriageReturns,
	}
}

func (b *windowsBackend) Spawn(plan LaunchPlan) (*Child, error) {
	pipes, err := newPipeSet(b.pipeBufferSize)
	if err != nil {
		return nil, err
	}

	var cmd *exec.Cmd
	if plan.Shell {
		cmd = exec.Command(b.shell)
		cmd.SysProcAttr = &syscall.SysProcAttr{
			CmdLine:    b.shell + ` /C "` + plan.Line + `"`,
			HideWindow: true,
		}
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

func (b *windowsBackend) Drain(child *Child) ([]byte, []byte, error) {
	return drain(child, b.stripCarriageReturns)
}

func (b *windowsBackend) Wait(child *Child) (Status, error) {
	return waitChild(child)
}
