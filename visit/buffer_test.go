package visit

import (
	"testing"

	"github.com/vegerot/quick-lint-js/lexer"
	"github.com/vegerot/quick-lint-js/source"
)

type recordingVisitor struct {
	NoopVisitor
	declared []string
	used     []string
}

func ident(name string) lexer.Identifier {
	return lexer.Identifier{Span: source.Span{Begin: 0, End: source.Offset(len(name))}}
}

func (r *recordingVisitor) VariableDeclaration(name lexer.Identifier, kind VariableKind) {
	r.declared = append(r.declared, "decl")
}
func (r *recordingVisitor) VariableUse(name lexer.Identifier) {
	r.used = append(r.used, "use")
}

func TestBufferReplayPreservesOrder(t *testing.T) {
	var buf Buffer
	buf.EnterFunctionScope()
	buf.VariableDeclaration(ident("x"), KindParameter)
	buf.VariableUse(ident("x"))
	buf.ExitFunctionScope()
	buf.EndOfModule()

	if buf.Empty() {
		t.Fatal("buffer should not be empty after recording events")
	}

	var rv recordingVisitor
	buf.Replay(&rv)

	if len(rv.declared) != 1 || len(rv.used) != 1 {
		t.Fatalf("got declared=%v used=%v", rv.declared, rv.used)
	}
	if !buf.Empty() {
		t.Fatal("buffer should be empty after Replay")
	}
}
