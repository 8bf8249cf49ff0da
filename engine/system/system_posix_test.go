//go:build !windows

package system

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, backend Backend, plan LaunchPlan) (string, string, Status) {
	child, err := backend.Spawn(plan)
	require.NoError(t, err)
	stdout, stderr, err := backend.Drain(child)
	require.NoError(t, err)
	status, err := backend.Wait(child)
	require.NoError(t, err)
	return string(stdout), string(stderr), status
}

func TestBackend(t *testing.T) {
	backend := New(Options{})

	t.Run("ExitZero", func(t *testing.T) {
		_, _, status := run(t, backend, LaunchPlan{Argv: []string{"true"}})
		require.Equal(t, 0, backend.Encode(status))
	})

	t.Run("ExitNonZero", func(t *testing.T) {
		_, _, status := run(t, backend, LaunchPlan{
			Shell: true, Line: `"sh" -c "exit 7"`,
		})
		require.Equal(t, 7, backend.Encode(status))
	})

	t.Run("CapturesBothStreams", func(t *testing.T) {
		stdout, stderr, status := run(t, backend, LaunchPlan{
			Argv: []string{"sh", "-c", "printf hello-stdout; printf hello-stderr 1>&2"},
		})
		require.Equal(t, "hello-stdout", stdout)
		require.Equal(t, "hello-stderr", stderr)
		require.Equal(t, 0, backend.Encode(status))
	})

	t.Run("SignaledChild", func(t *testing.T) {
		_, _, status := run(t, backend, LaunchPlan{
			Argv: []string{"sh", "-c", "kill -9 $$"},
		})
		require.Equal(t, 128+9, backend.Encode(status))
	})

	t.Run("EnvironmentReplaced", func(t *testing.T) {
		// Probe a custom variable, shells substitute built-in defaults
		// for unset well-known variables like PATH.
		t.Setenv("SOME_PARENT_VARIABLE", "parent-value")
		stdout, _, _ := run(t, backend, LaunchPlan{
			Argv: []string{"sh", "-c", "echo FOO=$FOO PARENT=$SOME_PARENT_VARIABLE"},
			Env:  []string{"FOO=bar"},
		})
		require.Contains(t, stdout, "FOO=bar")
		require.Contains(t, stdout, "PARENT=\n")
	})

	t.Run("EnvironmentInherited", func(t *testing.T) {
		t.Setenv("SOME_INHERITED_VARIABLE", "inherited-value")
		stdout, _, _ := run(t, backend, LaunchPlan{
			Argv: []string{"sh", "-c", "echo $SOME_INHERITED_VARIABLE"},
		})
		require.Contains(t, stdout, "inherited-value")
	})

	t.Run("MissingExecutable", func(t *testing.T) {
		child, err := backend.Spawn(LaunchPlan{
			Argv: []string{"/no/such/binary-anywhere"},
		})
		require.Error(t, err)
		require.Nil(t, child)
	})

	t.Run("LargerThanPipeBuffer", func(t *testing.T) {
		// 256 KiB on each stream, written concurrently, well beyond the
		// kernel pipe capacity. Serialized drains would deadlock here.
		stdout, stderr, status := run(t, backend, LaunchPlan{
			Argv: []string{"sh", "-c",
				"(yes | head -c 262144) & (yes | head -c 262144 1>&2) & wait"},
		})
		require.Len(t, stdout, 262144)
		require.Len(t, stderr, 262144)
		require.Equal(t, 0, backend.Encode(status))
	})

	t.Run("ShellLine", func(t *testing.T) {
		stdout, _, status := run(t, backend, LaunchPlan{
			Shell: true, Line: `"echo" shell-mode`,
		})
		require.Equal(t, "shell-mode\n", stdout)
		require.Equal(t, 0, backend.Encode(status))
	})
}

func TestBackendCustomShell(t *testing.T) {
	backend := New(Options{Shell: "/bin/sh"})
	child, err := backend.Spawn(LaunchPlan{Shell: true, Line: `"true"`})
	require.NoError(t, err)
	_, _, err = backend.Drain(child)
	require.NoError(t, err)
	status, err := backend.Wait(child)
	require.NoError(t, err)
	require.Equal(t, 0, backend.Encode(status))
}

func TestBackendStripCarriageReturns(t *testing.T) {
	backend := New(Options{StripCarriageReturns: true})
	stdout, _, _ := run(t, backend, LaunchPlan{
		Argv: []string{"printf", `crlf\r\n`},
	})
	require.Equal(t, "crlf\n", stdout)
	require.False(t, strings.Contains(stdout, "\r"))
}
