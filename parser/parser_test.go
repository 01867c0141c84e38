package parser

import (
	"testing"

	"github.com/vegerot/quick-lint-js/ast"
	"github.com/vegerot/quick-lint-js/diag"
	"github.com/vegerot/quick-lint-js/lexer"
	"github.com/vegerot/quick-lint-js/source"
	"github.com/vegerot/quick-lint-js/visit"
)

type captureVisitor struct {
	visit.NoopVisitor
	declarations []string
	uses         []string
}

func (c *captureVisitor) VariableDeclaration(name lexer.Identifier, kind visit.VariableKind) {
	c.declarations = append(c.declarations, "decl")
}
func (c *captureVisitor) VariableUse(name lexer.Identifier) {
	c.uses = append(c.uses, "use")
}

func mustParse(t *testing.T, src string) (*Parser, *diag.Collector, *captureVisitor) {
	t.Helper()
	buf := source.NewBufferString(src)
	var c diag.Collector
	p := New(buf, &c)
	var v captureVisitor
	p.ParseModule(&v)
	return p, &c, &v
}

func TestParseSimpleVarDeclaration(t *testing.T) {
	_, c, v := mustParse(t, "var x = 1;")
	if len(c.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", c.Diagnostics)
	}
	if len(v.declarations) != 1 {
		t.Fatalf("got declarations %v", v.declarations)
	}
}

func TestParseBinaryExpressionFlattensOperands(t *testing.T) {
	p, c, _ := mustParse(t, "1 + 2 + 3;")
	if len(c.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", c.Diagnostics)
	}
	for i := 0; i < p.Arena().Len(); i++ {
		e := p.Arena().At(ast.ExprRef(i))
		if e.Kind == ast.KindBinaryOperator && len(e.Children) == 3 {
			return
		}
	}
	t.Fatalf("no binary operator node with 3 operands")
}

func TestParseFunctionDeclarationScopesParameters(t *testing.T) {
	buf := source.NewBufferString("function f(a, b) { return a + b; }")
	var c diag.Collector
	p := New(buf, &c)
	var v captureVisitor
	p.ParseModule(&v)
	if len(c.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", c.Diagnostics)
	}
	if len(v.declarations) != 3 { // f, a, b
		t.Fatalf("got declarations %v", v.declarations)
	}
}

func TestParseArrowFunctionExpressionBody(t *testing.T) {
	_, c, v := mustParse(t, "const add = (a, b) => a + b;")
	if len(c.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", c.Diagnostics)
	}
	if len(v.uses) != 2 { // a, b inside the body
		t.Fatalf("got uses %v", v.uses)
	}
}

func TestParseIfElseStatement(t *testing.T) {
	_, c, _ := mustParse(t, "if (x) { y; } else { z; }")
	if len(c.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", c.Diagnostics)
	}
}

func TestParseForOfLoop(t *testing.T) {
	_, c, v := mustParse(t, "for (const item of items) { use(item); }")
	if len(c.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", c.Diagnostics)
	}
	if len(v.declarations) != 1 {
		t.Fatalf("got declarations %v", v.declarations)
	}
}

func TestParseMissingOperand(t *testing.T) {
	_, c, _ := mustParse(t, "2 + ;")
	found := false
	for _, d := range c.Diagnostics {
		if d.Kind == diag.KindMissingOperandForOperator {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected missing_operand_for_operator, got %+v", c.Diagnostics)
	}
}

func TestParseObjectLiteralShorthand(t *testing.T) {
	_, c, v := mustParse(t, "const o = { x, y: 2 };")
	if len(c.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", c.Diagnostics)
	}
	if len(v.uses) != 1 {
		t.Fatalf("got uses %v", v.uses)
	}
}

func TestParseClassDeclaration(t *testing.T) {
	_, c, v := mustParse(t, "class Foo { bar() { return 1; } }")
	if len(c.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", c.Diagnostics)
	}
	if len(v.declarations) != 1 {
		t.Fatalf("got declarations %v", v.declarations)
	}
}

func TestParseExpressionStandalone(t *testing.T) {
	buf := source.NewBufferString("a ? b : c")
	var c diag.Collector
	p := New(buf, &c)
	var v captureVisitor
	ref := p.ParseExpression(&v)
	if p.Arena().At(ref).Kind != ast.KindConditional {
		t.Fatalf("got kind %d", p.Arena().At(ref).Kind)
	}
	if len(v.uses) != 3 {
		t.Fatalf("got uses %v", v.uses)
	}
}
