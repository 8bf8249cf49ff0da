// Package exec provides the command running a program with an explicit
// argument vector, bypassing shell interpretation.
package exec

import (
	"fmt"
	"os"

	"github.com/zorba-modules/process/commands"
	"github.com/zorba-modules/process/engine"
)

func init() {
	commands.Register("exec", cmd{})
}

type cmd struct{}

func (cmd) Summary() string {
	return "Run a program with an explicit argument vector"
}

func (cmd) Usage() string {
	return `
process exec runs a program with the given argument vector, without shell
interpretation, and prints the captured result as JSON:
    {"exit-code": <int>, "stdout": <string>, "stderr": <string>}

The exit code is normalized: the plain code for a normal exit, 128 plus the
signal number when the child was terminated by a signal, 255 if the
termination status is unknown.

usage: process exec [options] [-e <KEY=VALUE>]... [--] <program> [<arg>...]

options:
  -e, --env <KEY=VALUE>    Environment for the child process. When given,
                           these entries replace the inherited environment,
                           they are not merged with it.
  -c, --config <file>      Load engine configuration from YAML <file>.
      --log-level <level>  Log level: debug, info, warning, error.
  -h, --help               Show this screen.
`
}

func (cmd) Execute(arguments map[string]interface{}) bool {
	program := arguments["<program>"].(string)
	args, _ := arguments["<arg>"].([]string)
	env, _ := arguments["--env"].([]string)

	c, ok := commands.LoadConfig(arguments)
	if !ok {
		return false
	}

	eng := engine.New(engine.Options{Config: c})
	result, err := eng.Execute(engine.ProgramCommand(program, args, env))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return false
	}
	return commands.PrintResult(result)
}
