package system

// A LaunchPlan is the exact launch form a backend needs to spawn a child.
// Exactly one of Line and Argv is meaningful, selected by Shell.
type LaunchPlan struct {
	Shell bool     // run Line through the system shell
	Line  string   // pre-assembled shell command line, when Shell is set
	Argv  []string // program followed by arguments, when Shell is not set
	Env   []string // KEY=VALUE entries replacing the inherited environment,
	//              empty or nil to inherit the parent environment
}

// Options for New.
type Options struct {
	// Shell overrides the system shell used for LaunchPlan.Line, defaults to
	// /bin/sh on POSIX and cmd.exe on Windows.
	Shell string

	// PipeBufferSize is the requested capacity of the stdout and stderr
	// pipes in bytes, zero for the platform default. Only the Windows
	// backend can size its pipes, POSIX pipes have a fixed kernel capacity.
	PipeBufferSize int

	// StripCarriageReturns removes '\r' bytes from captured output.
	// See DefaultStripCarriageReturns for the platform default.
	StripCarriageReturns bool
}

// Backend spawns child processes and captures their output. Implementations
// exist for POSIX and Windows, construct one with New.
//
// A Child obtained from Spawn must be passed through Drain and Wait exactly
// once, in that order. Wait releases all handles held for the child, on
// every path.
type Backend interface {
	// Spawn creates the stdio pipes and the child process. On failure no
	// child is left running and all created pipe endpoints are closed.
	Spawn(plan LaunchPlan) (*Child, error)

	// Drain reads the child's stdout and stderr pipes to end-of-stream into
	// two independent buffers. The two streams are drained concurrently, a
	// child filling one pipe while the other is idle cannot deadlock the
	// engine. On read errors other than end-of-stream both captures are
	// discarded and the pipe read ends are closed.
	Drain(child *Child) (stdout, stderr []byte, err error)

	// Wait blocks until the child has terminated and reports its
	// termination status. All pipe and process handles are released before
	// Wait returns, also when the status cannot be obtained.
	Wait(child *Child) (Status, error)

	// Encode maps a termination status to the single normalized exit code:
	// the plain code for a normal exit, 128 plus the signal number for a
	// signaled or stopped child, and 255 when the status is unknown.
	Encode(status Status) int
}

// New returns the Backend for the platform this binary was built for.
func New(options Options) Backend {
	return newBackend(options)
}

// DefaultStripCarriageReturns reports whether the backend for this platform
// strips carriage-return bytes from captured output by default. Windows
// output is CRLF-terminated, so the Windows backend strips '\r' to produce
// the same text a POSIX child would have written. The POSIX backend captures
// output verbatim.
func DefaultStripCarriageReturns() bool {
	return defaultStripCarriageReturns
}
