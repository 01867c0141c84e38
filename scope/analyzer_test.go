package scope

import (
	"testing"

	"github.com/vegerot/quick-lint-js/diag"
	"github.com/vegerot/quick-lint-js/parser"
	"github.com/vegerot/quick-lint-js/source"
)

func analyze(t *testing.T, src string) *diag.Collector {
	t.Helper()
	buf := source.NewBufferString(src)
	var c diag.Collector
	p := parser.New(buf, &c)
	a := New(buf, &c, DefaultGlobals())
	p.ParseModule(a)
	return &c
}

func hasKind(c *diag.Collector, k diag.Kind) bool {
	for _, d := range c.Diagnostics {
		if d.Kind == k {
			return true
		}
	}
	return false
}

func TestLetAssignmentIsLegal(t *testing.T) {
	c := analyze(t, "let x; x = 1;")
	if len(c.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", c.Diagnostics)
	}
}

func TestAssignmentToConstReported(t *testing.T) {
	c := analyze(t, "const x = 1; x = 2;")
	if !hasKind(c, diag.KindAssignmentToConstVariable) {
		t.Fatalf("expected assignment_to_const_variable, got %+v", c.Diagnostics)
	}
}

func TestUseOfUndeclaredVariableAtModuleScope(t *testing.T) {
	c := analyze(t, "x;")
	if !hasKind(c, diag.KindUseOfUndeclaredVariable) {
		t.Fatalf("expected use_of_undeclared_variable, got %+v", c.Diagnostics)
	}
}

func TestTypeofNeverDeclaredIsSilent(t *testing.T) {
	c := analyze(t, "typeof neverDeclared;")
	if len(c.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", c.Diagnostics)
	}
}

func TestRedeclarationOfVariableReported(t *testing.T) {
	c := analyze(t, "let x; let x;")
	if !hasKind(c, diag.KindRedeclarationOfVariable) {
		t.Fatalf("expected redeclaration_of_variable, got %+v", c.Diagnostics)
	}
}

func TestMissingOperandForOperator(t *testing.T) {
	c := analyze(t, "2 + ;")
	if !hasKind(c, diag.KindMissingOperandForOperator) {
		t.Fatalf("expected missing_operand_for_operator, got %+v", c.Diagnostics)
	}
}

func TestUnclosedBlockCommentPropagates(t *testing.T) {
	c := analyze(t, "/* unterminated")
	if !hasKind(c, diag.KindUnclosedBlockComment) {
		t.Fatalf("expected unclosed_block_comment, got %+v", c.Diagnostics)
	}
}

func TestVarHoistingAcrossAssignmentAndDeclaration(t *testing.T) {
	c := analyze(t, "function f() { x = 1; var x; }")
	if len(c.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", c.Diagnostics)
	}
}

func TestLetUseBeforeDeclarationInSameScope(t *testing.T) {
	c := analyze(t, "{ y; let y; }")
	if !hasKind(c, diag.KindVariableUsedBeforeDeclaration) {
		t.Fatalf("expected variable_used_before_declaration, got %+v", c.Diagnostics)
	}
}

func TestFunctionParameterShadowsOuterVariable(t *testing.T) {
	c := analyze(t, "let x; function f(x) { return x; }")
	if len(c.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", c.Diagnostics)
	}
}

func TestGlobalPredefinedVariableIsUsable(t *testing.T) {
	c := analyze(t, "console.log(1);")
	if len(c.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", c.Diagnostics)
	}
}

func TestAssignmentToNonWritableGlobalReported(t *testing.T) {
	c := analyze(t, "undefined = 1;")
	if !hasKind(c, diag.KindAssignmentToConstGlobalVariable) {
		t.Fatalf("expected assignment_to_const_global_variable, got %+v", c.Diagnostics)
	}
}

func TestVarRedeclaringParameterIsLegal(t *testing.T) {
	c := analyze(t, "function f(x) { var x; }")
	if len(c.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", c.Diagnostics)
	}
}

func TestFunctionRedeclaringParameterIsLegal(t *testing.T) {
	c := analyze(t, "function f(x) { function x() {} }")
	if len(c.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", c.Diagnostics)
	}
}

func TestLetRedeclaringParameterIsReported(t *testing.T) {
	c := analyze(t, "function f(x) { let x; }")
	if !hasKind(c, diag.KindRedeclarationOfVariable) {
		t.Fatalf("expected redeclaration_of_variable, got %+v", c.Diagnostics)
	}
}

func TestAssignmentToImportBindingReported(t *testing.T) {
	c := analyze(t, `import { x } from "mod"; x = 1;`)
	if !hasKind(c, diag.KindAssignmentToConstVariable) {
		t.Fatalf("expected assignment_to_const_variable, got %+v", c.Diagnostics)
	}
}

func TestAssignmentToImportBindingBeforeItsDeclarationReported(t *testing.T) {
	c := analyze(t, `x = 1; import { x } from "mod";`)
	if !hasKind(c, diag.KindAssignmentToConstVariableBeforeItsDeclaration) {
		t.Fatalf("expected assignment_to_const_variable_before_its_declaration, got %+v", c.Diagnostics)
	}
}

func TestAssignmentBeforeLetDeclarationReported(t *testing.T) {
	c := analyze(t, "{ y = 1; let y; }")
	if !hasKind(c, diag.KindAssignmentBeforeVariableDeclaration) {
		t.Fatalf("expected assignment_before_variable_declaration, got %+v", c.Diagnostics)
	}
}
