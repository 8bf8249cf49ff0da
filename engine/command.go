package engine

import (
	"strings"

	"github.com/zorba-modules/process/engine/system"
)

type commandMode int

const (
	shellString commandMode = iota
	programArgs
)

// CommandSpec is an immutable description of a command to execute. Construct
// one with ShellCommand or ProgramCommand, a zero CommandSpec is not valid.
type CommandSpec struct {
	mode    commandMode
	command string
	args    []string
	env     []string
}

// ShellCommand describes an invocation of command with args, assembled into
// a single line and interpreted by the system shell.
//
// The command is always quoted, an argument is quoted only if it contains a
// path separator, a narrow heuristic for paths with spaces. Arguments
// containing quotes or shell metacharacters are passed through unescaped,
// callers that cannot trust their arguments should use ProgramCommand, which
// bypasses the shell entirely.
func ShellCommand(command string, args ...string) CommandSpec {
	return CommandSpec{
		mode:    shellString,
		command: command,
		args:    args,
	}
}

// ProgramCommand describes an invocation of program with the given argument
// vector, bypassing shell interpretation. A non-empty env is a list of
// KEY=VALUE entries that replaces the child's inherited environment, it is
// not merged with it. An empty env inherits the parent environment.
func ProgramCommand(program string, args, env []string) CommandSpec {
	return CommandSpec{
		mode:    programArgs,
		command: program,
		args:    args,
		env:     env,
	}
}

// plan builds the launch form the platform backend needs.
func (s CommandSpec) plan() system.LaunchPlan {
	if s.mode == shellString {
		return system.LaunchPlan{
			Shell: true,
			Line:  buildShellLine(s.command, s.args),
		}
	}
	return system.LaunchPlan{
		Argv: append([]string{s.command}, s.args...),
		Env:  s.env,
	}
}

// buildShellLine concatenates the quoted command and the arguments into one
// shell line. See ShellCommand for the quoting rule.
func buildShellLine(command string, args []string) string {
	var line strings.Builder
	line.WriteByte('"')
	line.WriteString(command)
	line.WriteByte('"')
	for _, arg := range args {
		line.WriteByte(' ')
		if strings.ContainsAny(arg, `/\`) {
			line.WriteByte('"')
			line.WriteString(arg)
			line.WriteByte('"')
		} else {
			line.WriteString(arg)
		}
	}
	return line.String()
}
