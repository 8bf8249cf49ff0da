package runtime

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	debugLock        sync.Mutex
	prevDebugMessage = time.Now()
	longestDebugName = 0
	nextColor        = 0
	debugColors      = []string{
		"34", // Blue
		"33", // Yellow
		"32", // Green
		"31", // Red
		"35", // Magenta
		"36", // Cyan
		"90", // Dark gray
	}
)

var debugPattern = func() *regexp.Regexp {
	debug := os.Getenv("DEBUG")
	if debug == "" {
		return nil
	}
	// Credits: github.com/tj/go-debug
	debug = regexp.QuoteMeta(debug)
	debug = strings.Replace(debug, "\\*", ".*?", -1)
	debug = strings.Replace(debug, ",", "|", -1)
	return regexp.MustCompile("^(" + debug + ")$")
}()

func debugDisabled(string, ...interface{}) {}

// Debug returns a debug(format, args...) function that prints to stderr, if
// the DEBUG environment variable matches name. Patterns like DEBUG='*' or
// DEBUG='system,engine' are supported.
//
// This is for development debugging only, messages of any production value
// belong on a Monitor.
func Debug(name string) func(string, ...interface{}) {
	if debugPattern == nil || !debugPattern.MatchString(name) {
		return debugDisabled
	}

	debugLock.Lock()
	defer debugLock.Unlock()

	color := debugColors[nextColor%len(debugColors)]
	nextColor++

	if longestDebugName < len(name) {
		longestDebugName = len(name)
	}

	return func(format string, args ...interface{}) {
		debugLock.Lock()
		now := time.Now()
		delay := now.Sub(prevDebugMessage)
		prevDebugMessage = now
		paddedName := name + strings.Repeat(" ", longestDebugName-len(name))
		debugLock.Unlock()

		s := fmt.Sprintf(" %s \033[%sm\033[1m%s\033[0m | ", humanizeNano(delay.Nanoseconds()), color, paddedName)
		s += fmt.Sprintf(format, args...)
		fmt.Fprintln(os.Stderr, s)
	}
}

// humanizeNano renders a nanosecond delay for debug output.
// Credits: github.com/tj/go-debug
func humanizeNano(n int64) string {
	suffix := "ns"
	switch {
	case n > 1000000000:
		n /= 1000000000
		suffix = "s"
	case n > 1000000:
		n /= 1000000
		suffix = "ms"
	case n > 1000:
		n /= 1000
		suffix = "us"
	}
	return fmt.Sprintf("%-6s", strconv.Itoa(int(n))+suffix)
}
