package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegerot/quick-lint-js/diag"
	"github.com/vegerot/quick-lint-js/parser"
	"github.com/vegerot/quick-lint-js/scope"
	"github.com/vegerot/quick-lint-js/source"
)

func lint(t *testing.T, src string) (*source.Buffer, *diag.Collector) {
	t.Helper()
	buf := source.NewBufferString(src)
	var c diag.Collector
	p := parser.New(buf, &c)
	a := scope.New(buf, &c, scope.DefaultGlobals())
	p.ParseModule(a)
	return buf, &c
}

func TestPrinterReportsLineAndColumn(t *testing.T) {
	buf, c := lint(t, "x;\nundefined = 1;\n")
	require.NotEmpty(t, c.Diagnostics)

	p := NewPrinter("test.js", buf, true)
	var out strings.Builder
	p.Print(&out, c)

	assert.Contains(t, out.String(), "test.js:1:1")
	assert.Contains(t, out.String(), "test.js:2:1")
}

func TestPrinterNoColorOmitsEscapeCodes(t *testing.T) {
	buf, c := lint(t, "x;")
	p := NewPrinter("test.js", buf, true)
	var out strings.Builder
	p.Print(&out, c)
	assert.NotContains(t, out.String(), "\x1b[")
}

func TestPrinterIncludesNoteForRedeclaration(t *testing.T) {
	buf, c := lint(t, "let dup; let dup;")
	p := NewPrinter("test.js", buf, true)
	var out strings.Builder
	p.Print(&out, c)
	assert.Contains(t, out.String(), "note:")
}
