package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "svlinks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	c := Default()

	assert.Equal(t, runtime.NumCPU(), c.Workers)
	assert.Equal(t, 5, c.Links.MaxAssemblyJumps)
	assert.Equal(t, 2, c.Links.MaxTransitiveJumps)
	assert.Equal(t, 25, c.Links.MaxAlternatives)
	assert.Equal(t, 500000, c.Links.MaxVariants)
	assert.Equal(t, 30, c.Links.MinTransitiveDistance)
	assert.Equal(t, 1000, c.Links.AlternativeAdditionalDistance)
	assert.Equal(t, 1000, c.Links.AlternativeSeekDistance)
	assert.Equal(t, 1000, c.Links.TransitiveAdditionalDistance)
	assert.Equal(t, 2000, c.Links.TransitiveSeekDistance)
	assert.Equal(t, 500, c.Links.MaxIterations)
	assert.NoError(t, c.Validate())
}

func TestLoad_NoFile(t *testing.T) {
	c, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, Default(), c)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
workers: 3
links:
  max-transitive-jumps: 4
  transitive-seek-distance: 5000
`)

	c, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, c.Workers)
	assert.Equal(t, 4, c.Links.MaxTransitiveJumps)
	assert.Equal(t, 5000, c.Links.TransitiveSeekDistance)
	assert.Equal(t, 5, c.Links.MaxAssemblyJumps)
}

func TestLoad_FlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, `
workers: 3
links:
  max-transitive-jumps: 4
  max-alternatives: 10
`)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(flags)
	require.NoError(t, flags.Parse([]string{"--max-transitive-jumps=1", "--workers=2"}))

	c, err := Load(path, flags)
	require.NoError(t, err)

	assert.Equal(t, 2, c.Workers)
	assert.Equal(t, 1, c.Links.MaxTransitiveJumps)
	// unset flags leave file values alone
	assert.Equal(t, 10, c.Links.MaxAlternatives)
}

func TestLoad_UnknownKey(t *testing.T) {
	path := writeConfig(t, `
links:
  max-jumps: 4
`)

	_, err := Load(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode config")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoad_Invalid(t *testing.T) {
	path := writeConfig(t, `
workers: 0
links:
  min-transitive-distance: -1
  max-iterations: 0
`)

	_, err := Load(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workers must be positive")
	assert.Contains(t, err.Error(), "links.min-transitive-distance must not be negative")
	assert.Contains(t, err.Error(), "links.max-iterations must be positive")
}

func TestFromOverrides(t *testing.T) {
	c, err := FromOverrides(map[string]any{
		"max-alternatives": 2,
		"max-iterations":   10,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, c.Links.MaxAlternatives)
	assert.Equal(t, 10, c.Links.MaxIterations)
	assert.Equal(t, 5, c.Links.MaxAssemblyJumps)
}

func TestFromOverrides_Empty(t *testing.T) {
	c, err := FromOverrides(nil)
	require.NoError(t, err)

	assert.Equal(t, Default(), c)
}

func TestFromOverrides_UnknownKey(t *testing.T) {
	_, err := FromOverrides(map[string]any{"max-hops": 2})
	assert.Error(t, err)
}
