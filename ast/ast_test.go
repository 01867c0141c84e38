package ast

import (
	"testing"

	"github.com/vegerot/quick-lint-js/lexer"
	"github.com/vegerot/quick-lint-js/source"
)

func TestArenaAllocatesDistinctRefs(t *testing.T) {
	a := NewArena(0)
	r1 := a.New(Expr{Kind: KindLiteral, Literal: lexer.KindNumber})
	r2 := a.New(Expr{Kind: KindLiteral, Literal: lexer.KindString})
	if r1 == r2 {
		t.Fatalf("expected distinct refs, got %d and %d", r1, r2)
	}
	if a.At(r1).Literal != lexer.KindNumber {
		t.Errorf("r1 literal kind = %d", a.At(r1).Literal)
	}
	if a.At(r2).Literal != lexer.KindString {
		t.Errorf("r2 literal kind = %d", a.At(r2).Literal)
	}
	if a.Len() != 2 {
		t.Errorf("Len() = %d, want 2", a.Len())
	}
}

func TestNilExprIsRecognized(t *testing.T) {
	a := NewArena(0)
	if !a.IsNil(NilExpr) {
		t.Fatal("NilExpr should be nil")
	}
	ref := a.New(Expr{Kind: KindInvalid})
	if a.IsNil(ref) {
		t.Fatal("allocated ref should not be nil")
	}
}

func TestBinaryOperatorFlattensOperands(t *testing.T) {
	a := NewArena(0)
	one := a.New(Expr{Kind: KindLiteral, Literal: lexer.KindNumber, Span: source.Span{Begin: 0, End: 1}})
	two := a.New(Expr{Kind: KindLiteral, Literal: lexer.KindNumber, Span: source.Span{Begin: 4, End: 5}})
	three := a.New(Expr{Kind: KindLiteral, Literal: lexer.KindNumber, Span: source.Span{Begin: 8, End: 9}})
	sum := a.New(Expr{
		Kind:     KindBinaryOperator,
		Operator: lexer.Kind('+'),
		Children: []ExprRef{one, two, three},
	})
	if got := len(a.At(sum).Children); got != 3 {
		t.Fatalf("expected 3 flattened operands, got %d", got)
	}
}
