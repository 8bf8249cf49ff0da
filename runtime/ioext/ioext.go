// Package ioext contains io helpers used across the process engine.
package ioext

import "io"

// CloseIgnoringErrors closes all given closers, skipping nil entries and
// discarding errors. Intended for cleanup paths where the handles must be
// released exactly once and the close error carries no information.
func CloseIgnoringErrors(closers ...io.Closer) {
	for _, c := range closers {
		if c != nil {
			c.Close()
		}
	}
}
