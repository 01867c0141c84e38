package lexer

import (
	"testing"

	"github.com/vegerot/quick-lint-js/diag"
	"github.com/vegerot/quick-lint-js/source"
)

func lexAll(t *testing.T, src string) ([]Token, *diag.Collector) {
	t.Helper()
	buf := source.NewBufferString(src)
	var c diag.Collector
	l := New(buf, &c)
	var toks []Token
	for {
		tok := l.Peek()
		toks = append(toks, tok)
		if tok.IsEOF() {
			break
		}
		l.Skip()
	}
	return toks, &c
}

func TestLexerPunctuators(t *testing.T) {
	toks, c := lexAll(t, "a+++b")
	if len(c.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", c.Diagnostics)
	}
	wantKinds := []Kind{KindIdentifier, KindPlusPlus, Kind('+'), KindIdentifier, KindEOF}
	if len(toks) != len(wantKinds) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(wantKinds), toks)
	}
	for i, want := range wantKinds {
		if toks[i].Kind != want {
			t.Errorf("token %d: got kind %d, want %d", i, toks[i].Kind, want)
		}
	}
}

func TestLexerKeywordVsIdentifier(t *testing.T) {
	toks, _ := lexAll(t, "let x = asyncFn")
	if toks[0].Kind != KindIdentifier {
		t.Errorf("let should lex as identifier (contextual keyword), got %d", toks[0].Kind)
	}
	if toks[3].Kind != KindIdentifier {
		t.Errorf("asyncFn should lex as identifier, got %d", toks[3].Kind)
	}
}

func TestLexerUnclosedBlockComment(t *testing.T) {
	_, c := lexAll(t, "/* hello")
	if len(c.Diagnostics) != 1 || c.Diagnostics[0].Kind != diag.KindUnclosedBlockComment {
		t.Fatalf("got diagnostics %+v", c.Diagnostics)
	}
}

func TestLexerUnclosedString(t *testing.T) {
	_, c := lexAll(t, `"hello`)
	if len(c.Diagnostics) != 1 || c.Diagnostics[0].Kind != diag.KindUnclosedString {
		t.Fatalf("got diagnostics %+v", c.Diagnostics)
	}
}

func TestLexerIdentifierEscape(t *testing.T) {
	buf := source.NewBufferString(`\u{61}bc`)
	var c diag.Collector
	l := New(buf, &c)
	tok := l.Peek()
	if tok.Kind != KindIdentifier {
		t.Fatalf("got kind %d", tok.Kind)
	}
	if got := buf.Slice(tok.Begin, tok.NormalizedIdentifierEnd); got != "abc" {
		t.Errorf("normalized identifier = %q, want %q", got, "abc")
	}
	if len(c.Diagnostics) != 0 {
		t.Errorf("unexpected diagnostics: %+v", c.Diagnostics)
	}
}

func TestLexerKeywordWithEscapeIsDisallowed(t *testing.T) {
	_, c := lexAll(t, `\u{69}f (true) {}`) // "if" spelled with an escape
	found := false
	for _, d := range c.Diagnostics {
		if d.Kind == diag.KindKeywordsCannotContainEscapeSequences {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected keywords_cannot_contain_escape_sequences, got %+v", c.Diagnostics)
	}
}

func TestLexerNumberLiterals(t *testing.T) {
	cases := []string{"0", "123", "1.5", "1e10", "0x1F", "0b101", "0o17", "1_000", "123n"}
	for _, src := range cases {
		toks, c := lexAll(t, src)
		if len(c.Diagnostics) != 0 {
			t.Errorf("%q: unexpected diagnostics %+v", src, c.Diagnostics)
		}
		if toks[0].Kind != KindNumber {
			t.Errorf("%q: got kind %d", src, toks[0].Kind)
		}
	}
}

func TestLexerNumberTrailingUnderscore(t *testing.T) {
	_, c := lexAll(t, "1_")
	if len(c.Diagnostics) != 1 || c.Diagnostics[0].Kind != diag.KindNumberLiteralContainsTrailingUnderscores {
		t.Fatalf("got diagnostics %+v", c.Diagnostics)
	}
}

func TestLexerTemplateLiteralComplete(t *testing.T) {
	toks, c := lexAll(t, "`hello`")
	if len(c.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", c.Diagnostics)
	}
	if toks[0].Kind != KindTemplateComplete {
		t.Fatalf("got kind %d", toks[0].Kind)
	}
}

func TestLexerTemplateLiteralWithSubstitution(t *testing.T) {
	buf := source.NewBufferString("`a${b}c`")
	var c diag.Collector
	l := New(buf, &c)
	head := l.Peek()
	if head.Kind != KindTemplateHead {
		t.Fatalf("got kind %d", head.Kind)
	}
	l.Skip()
	ident := l.Peek()
	if ident.Kind != KindIdentifier {
		t.Fatalf("got kind %d", ident.Kind)
	}
	l.Skip() // lexes '}' as a punctuator
	if l.Peek().Kind != Kind('}') {
		t.Fatalf("expected '}' punctuator, got %d", l.Peek().Kind)
	}
	tail := l.SkipInTemplate(head.Begin)
	if tail.Kind != KindTemplateTail {
		t.Fatalf("got kind %d", tail.Kind)
	}
}

func TestLexerReparseAsRegExp(t *testing.T) {
	buf := source.NewBufferString("/ab+c/gi")
	var c diag.Collector
	l := New(buf, &c)
	if l.Peek().Kind != Kind('/') {
		t.Fatalf("expected initial '/' punctuator, got %d", l.Peek().Kind)
	}
	tok := l.ReparseAsRegExp()
	if tok.Kind != KindRegExp {
		t.Fatalf("got kind %d", tok.Kind)
	}
	if got := buf.Slice(tok.Begin, tok.End); got != "/ab+c/gi" {
		t.Errorf("regexp span = %q", got)
	}
}

func TestLexerASIInsertSemicolon(t *testing.T) {
	buf := source.NewBufferString("x\ny")
	var c diag.Collector
	l := New(buf, &c)
	if l.Peek().Kind != KindIdentifier {
		t.Fatalf("got kind %d", l.Peek().Kind)
	}
	l.Skip()
	if !l.Peek().HasLeadingNewline {
		t.Fatalf("expected HasLeadingNewline on second identifier")
	}
	l.InsertSemicolon()
	if l.Peek().Kind != Kind(';') {
		t.Fatalf("got kind %d after InsertSemicolon", l.Peek().Kind)
	}
}
