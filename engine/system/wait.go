package system

import (
	"os/exec"

	"github.com/pkg/errors"
)

// waitChild blocks until the child has terminated and decodes its
// termination status. The pipe read ends are released before returning, on
// every path, a child may exit before its pipes are drained but a drained
// child must never leave handles behind.
func waitChild(child *Child) (Status, error) {
	defer child.release()

	err := child.cmd.Wait()
	debug("process %d, wait returned: %v", child.Pid(), err)

	if err != nil {
		// A non-zero exit or signal termination surfaces as ExitError and
		// still carries the process state, that is a status, not a failure.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return statusFromProcessState(exitErr.ProcessState), nil
		}
		return UnknownStatus(), errors.Wrap(err, "unable to obtain termination status")
	}
	return statusFromProcessState(child.cmd.ProcessState), nil
}
