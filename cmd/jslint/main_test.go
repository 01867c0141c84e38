package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vegerot/quick-lint-js/scope"
)

func writeJS(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "input.js")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLintOneFileCleanSourceHasNoDiagnostics(t *testing.T) {
	path := writeJS(t, "let x = 1;\nconsole.log(x);\n")
	result := lintOneFile(path, scope.DefaultGlobals(), zap.NewNop())
	assert.Empty(t, result.collector.Diagnostics)
}

func TestLintOneFileReportsUndeclaredUse(t *testing.T) {
	path := writeJS(t, "thisIsNotDeclared;\n")
	result := lintOneFile(path, scope.DefaultGlobals(), zap.NewNop())
	assert.NotEmpty(t, result.collector.Diagnostics)
}

func TestLintOneFileMissingFileIsReportedNotPanicked(t *testing.T) {
	result := lintOneFile(filepath.Join(t.TempDir(), "missing.js"), scope.DefaultGlobals(), zap.NewNop())
	assert.Empty(t, result.collector.Diagnostics)
}

func TestLintFilesProcessesAllPaths(t *testing.T) {
	a := writeJS(t, "let a = 1;\n")
	b := writeJS(t, "undeclaredVariable;\n")
	cmd := newRootCommand()
	results := lintFiles(cmd, []string{a, b}, scope.DefaultGlobals(), zap.NewNop())
	require.Len(t, results, 2)
	assert.Empty(t, results[0].collector.Diagnostics)
	assert.NotEmpty(t, results[1].collector.Diagnostics)
}
