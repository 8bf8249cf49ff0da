// Package main hosts the main function for the process command line tool.
package main

import (
	"github.com/zorba-modules/process/commands"

	// Sub-commands register themselves during static initialization.
	_ "github.com/zorba-modules/process/commands/exec"
	_ "github.com/zorba-modules/process/commands/execcommand"
	_ "github.com/zorba-modules/process/commands/schema"
	_ "github.com/zorba-modules/process/commands/version"
)

func main() {
	commands.Run(nil)
}
