package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/zorba-modules/process/config"
	"github.com/zorba-modules/process/engine"
)

// LoadConfig builds the engine configuration from parsed docopt arguments,
// honoring a --config file when given and a --log-level override. Returns
// false if the configuration could not be loaded, after printing why.
func LoadConfig(arguments map[string]interface{}) (config.Config, bool) {
	var c config.Config
	if filename, ok := arguments["--config"].(string); ok && filename != "" {
		var err error
		c, err = config.LoadFile(filename)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return config.Config{}, false
		}
	}
	if level, ok := arguments["--log-level"].(string); ok && level != "" {
		c.LogLevel = level
	}
	return c.WithDefaults(), true
}

// PrintResult writes the execution result to stdout as the JSON record
// {"exit-code": ..., "stdout": ..., "stderr": ...}.
func PrintResult(result engine.ExecutionResult) bool {
	data, err := json.Marshal(result)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to render result: ", err)
		return false
	}
	fmt.Println(string(data))
	return true
}
