// Package execcommand provides the command running a literal command line
// through the system shell.
package execcommand

import (
	"fmt"
	"os"

	"github.com/zorba-modules/process/commands"
	"github.com/zorba-modules/process/engine"
)

func init() {
	commands.Register("exec-command", cmd{})
}

type cmd struct{}

func (cmd) Summary() string {
	return "Run a command line through the system shell"
}

func (cmd) Usage() string {
	return `
process exec-command assembles <command> and <arg>... into one line,
interprets it with the system shell, and prints the captured result as JSON:
    {"exit-code": <int>, "stdout": <string>, "stderr": <string>}

The command is always quoted, an argument is quoted only if it contains a
path separator. Arguments containing quotes or shell metacharacters are
passed through unescaped, use 'process exec' for untrusted arguments.

usage: process exec-command [options] [--] <command> [<arg>...]

options:
  -c, --config <file>      Load engine configuration from YAML <file>.
      --log-level <level>  Log level: debug, info, warning, error.
  -h, --help               Show this screen.
`
}

func (cmd) Execute(arguments map[string]interface{}) bool {
	command := arguments["<command>"].(string)
	args, _ := arguments["<arg>"].([]string)

	c, ok := commands.LoadConfig(arguments)
	if !ok {
		return false
	}

	eng := engine.New(engine.Options{Config: c})
	result, err := eng.Execute(engine.ShellCommand(command, args...))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return false
	}
	return commands.PrintResult(result)
}
