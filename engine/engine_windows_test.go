//go:build windows

package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zorba-modules/process/runtime/monitoring"
)

func newTestEngine() *Engine {
	return New(Options{
		Monitor: monitoring.NewMockMonitor(true),
	})
}

func TestExecute(t *testing.T) {
	eng := newTestEngine()

	t.Run("HelloStdout", func(t *testing.T) {
		// The Windows backend strips '\r' by default, so the CRLF written
		// by cmd.exe comes back as a plain newline.
		result, err := eng.Execute(ProgramCommand("cmd.exe", []string{"/C", "echo hello-stdout"}, nil))
		require.NoError(t, err)
		require.Equal(t, 0, result.ExitCode)
		require.Equal(t, "hello-stdout\n", result.Stdout)
		require.Empty(t, result.Stderr)
	})

	t.Run("HelloStderr", func(t *testing.T) {
		result, err := eng.Execute(ProgramCommand("cmd.exe", []string{"/C", "echo hello-stderr 1>&2"}, nil))
		require.NoError(t, err)
		require.Equal(t, 0, result.ExitCode)
		require.Equal(t, "hello-stderr \n", result.Stderr)
	})

	t.Run("ExitCodePreserved", func(t *testing.T) {
		result, err := eng.Execute(ProgramCommand("cmd.exe", []string{"/C", "exit 42"}, nil))
		require.NoError(t, err)
		require.Equal(t, 42, result.ExitCode)
	})

	t.Run("ShellStringMode", func(t *testing.T) {
		result, err := eng.Execute(ShellCommand("echo", "hello"))
		require.NoError(t, err)
		require.Equal(t, 0, result.ExitCode)
		require.Equal(t, "hello\n", result.Stdout)
	})

	t.Run("MissingProgramIsSpawnError", func(t *testing.T) {
		result, err := eng.Execute(ProgramCommand(`C:\no\such\program.exe`, nil, nil))
		require.Error(t, err)
		require.True(t, IsSpawnError(err))
		require.Equal(t, ExecutionResult{}, result)
	})
}
