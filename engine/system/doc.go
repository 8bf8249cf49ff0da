// Package system implements the platform-specific half of the process
// engine: pipe creation, child-process spawning, output draining and
// termination-status decoding.
//
// The package exposes one capability with four operations:
//      system.Backend.Spawn(plan) (*Child, error)
//      system.Backend.Drain(child) (stdout, stderr []byte, err error)
//      system.Backend.Wait(child) (Status, error)
//      system.Backend.Encode(status) int
// with a POSIX and a Windows implementation selected at build time. Callers
// never branch on the platform, they hold a Backend and the build tags pick
// the concrete type.
package system

import "github.com/zorba-modules/process/runtime"

var debug = runtime.Debug("system")
