package cliconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegerot/quick-lint-js/scope"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, ".quick-lint-js.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadParsesExtraGlobals(t *testing.T) {
	path := writeConfig(t, `
globals:
  - name: myFramework
    writable: false
  - name: myMutableGlobal
    writable: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.ExtraGlobals, 2)
	assert.Equal(t, "myFramework", cfg.ExtraGlobals[0].Name)
	assert.False(t, cfg.ExtraGlobals[0].Writable)
	assert.True(t, cfg.ExtraGlobals[1].Writable)
}

func TestApplyToDoesNotMutateBase(t *testing.T) {
	base := scope.DefaultGlobals()
	baseWritableCount := len(base.Writable)

	cfg := &Config{ExtraGlobals: []GlobalEntry{{Name: "myFramework", Writable: true}}}
	extended := cfg.ApplyTo(base)

	assert.Len(t, base.Writable, baseWritableCount)
	assert.True(t, extended.Writable["myFramework"])
	assert.False(t, base.Writable["myFramework"])
}

func TestApplyToNonWritableExtraGlobal(t *testing.T) {
	base := scope.DefaultGlobals()
	cfg := &Config{ExtraGlobals: []GlobalEntry{{Name: "MY_CONST", Writable: false}}}
	extended := cfg.ApplyTo(base)
	assert.True(t, extended.NonWritable["MY_CONST"])
}
