package commands

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zorba-modules/process/config"
)

type fakeCommand struct{}

func (fakeCommand) Summary() string { return "A fake command" }
func (fakeCommand) Usage() string   { return "usage: process fake" }

func (fakeCommand) Execute(args map[string]interface{}) bool { return true }

func TestRegister(t *testing.T) {
	Register("fake", fakeCommand{})
	require.Contains(t, Commands(), "fake")
	require.Panics(t, func() {
		Register("fake", fakeCommand{})
	})
}

func TestLoadConfigFromArguments(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		c, ok := LoadConfig(map[string]interface{}{})
		require.True(t, ok)
		require.Equal(t, "warning", c.LogLevel)
	})

	t.Run("LogLevelOverride", func(t *testing.T) {
		c, ok := LoadConfig(map[string]interface{}{"--log-level": "debug"})
		require.True(t, ok)
		require.Equal(t, "debug", c.LogLevel)
	})

	t.Run("MissingConfigFile", func(t *testing.T) {
		_, ok := LoadConfig(map[string]interface{}{"--config": "/no/such/file.yml"})
		require.False(t, ok)
	})

	t.Run("StripModePreserved", func(t *testing.T) {
		c, ok := LoadConfig(map[string]interface{}{})
		require.True(t, ok)
		require.Equal(t, config.StripPlatformDefault, c.StripCarriageReturns)
	})
}
