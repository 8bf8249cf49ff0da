package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zorba-modules/process/engine/system"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load(map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, "warning", c.LogLevel)
	assert.Equal(t, StripPlatformDefault, c.StripCarriageReturns)
	assert.Empty(t, c.Shell)
	assert.Zero(t, c.PipeBufferSize)
}

func TestLoadValidConfig(t *testing.T) {
	c, err := Load(map[string]interface{}{
		"logLevel":             "debug",
		"shell":                "/bin/bash",
		"pipeBufferSize":       float64(1024 * 1024),
		"stripCarriageReturns": "never",
	})
	require.NoError(t, err)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "/bin/bash", c.Shell)
	assert.Equal(t, 1024*1024, c.PipeBufferSize)
	assert.Equal(t, StripNever, c.StripCarriageReturns)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	t.Run("BadLogLevel", func(t *testing.T) {
		_, err := Load(map[string]interface{}{"logLevel": "loud"})
		require.Error(t, err)
	})

	t.Run("UnknownProperty", func(t *testing.T) {
		_, err := Load(map[string]interface{}{"noSuchOption": true})
		require.Error(t, err)
	})

	t.Run("PipeBufferTooSmall", func(t *testing.T) {
		_, err := Load(map[string]interface{}{"pipeBufferSize": float64(16)})
		require.Error(t, err)
	})
}

func TestResolveStripCarriageReturns(t *testing.T) {
	assert.True(t, Config{StripCarriageReturns: StripAlways}.ResolveStripCarriageReturns())
	assert.False(t, Config{StripCarriageReturns: StripNever}.ResolveStripCarriageReturns())
	assert.Equal(t,
		system.DefaultStripCarriageReturns(),
		Config{StripCarriageReturns: StripPlatformDefault}.ResolveStripCarriageReturns(),
	)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "config.yml")
	content := "logLevel: info\nstripCarriageReturns: always\npipeBufferSize: 131072\n"
	require.NoError(t, ioutil.WriteFile(filename, []byte(content), 0600))

	c, err := LoadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, StripAlways, c.StripCarriageReturns)
	assert.Equal(t, 131072, c.PipeBufferSize)
	assert.True(t, c.ResolveStripCarriageReturns())
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(os.TempDir(), "no-such-config-file.yml"))
	require.Error(t, err)
}

func TestSchemaRenders(t *testing.T) {
	s := Schema.Schema()
	require.Equal(t, "object", s["type"])
	require.Contains(t, s, "properties")
}
