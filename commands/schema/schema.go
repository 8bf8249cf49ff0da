// Package schema provides the command printing the configuration schema.
package schema

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/zorba-modules/process/commands"
	"github.com/zorba-modules/process/config"
)

func init() {
	commands.Register("schema", cmd{})
}

type cmd struct{}

func (cmd) Summary() string {
	return "Print JSON schema for the configuration file"
}

func (cmd) Usage() string {
	return `
process schema prints the JSON schema that configuration files are
validated against.

usage: process schema [options]

options:
  -h, --help   Show this screen.
`
}

func (cmd) Execute(arguments map[string]interface{}) bool {
	data, err := json.MarshalIndent(config.Schema.Schema(), "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to render schema: ", err)
		return false
	}
	fmt.Println(string(data))
	return true
}
