package version

import (
	"encoding/json"
	"fmt"

	"github.com/zorba-modules/process/commands"
)

func init() {
	commands.Register("version", cmd{})
}

type cmd struct{}

func (cmd) Summary() string {
	return "Display version information"
}

func (cmd) Usage() string {
	return `
process version will display version information.

usage: process version [options] [semver|revision]

options:
  -j, --json    Print as JSON.
  -h, --help    Show this screen.
`
}

func (cmd) Execute(arguments map[string]interface{}) bool {
	formatJSON := arguments["--json"].(bool)
	semver := arguments["semver"].(bool)
	revision := arguments["revision"].(bool)

	// Determine what to print
	var result map[string]string
	switch {
	case semver:
		result = map[string]string{
			"version": Version(),
		}
	case revision:
		result = map[string]string{
			"revision": Revision(),
		}
	default:
		result = map[string]string{
			"version":  Version(),
			"revision": Revision(),
		}
	}

	// Print as JSON if requested
	if formatJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			panic(fmt.Sprintf("JSON serialization of version info failed, error: %s", err))
		}
		fmt.Println(string(data))
		return true
	}

	for key, value := range result {
		if value == "" {
			value = "unknown"
		}
		fmt.Printf("%s: %s\n", key, value)
	}
	return true
}
