// Package parser turns a token stream into visit.Visitor events and
// ast.Expr trees, per spec.md §4.2. It never stops on a syntax error: every
// unrecognized construct is exactly one diag.Sink call plus a best-effort
// recovery, mirroring the lexer's error-tolerant contract so that a single
// file is always fully visited even when it contains mistakes.
package parser

import (
	"github.com/vegerot/quick-lint-js/ast"
	"github.com/vegerot/quick-lint-js/diag"
	"github.com/vegerot/quick-lint-js/lexer"
	"github.com/vegerot/quick-lint-js/source"
	"github.com/vegerot/quick-lint-js/visit"
)

// Parser holds one lexer, one arena, and the sink both report through.
// A Parser is single-use: create one per module.
type Parser struct {
	lex   *lexer.Lexer
	arena *ast.Arena
	sink  diag.Sink
	buf   *source.Buffer
}

// New constructs a Parser over buf's contents, reporting through sink.
func New(buf *source.Buffer, sink diag.Sink) *Parser {
	return &Parser{
		lex:   lexer.New(buf, sink),
		arena: ast.NewArena(64),
		sink:  sink,
		buf:   buf,
	}
}

// Arena returns the expression arena populated by parsing. Valid to call
// any time after New; expressions accumulate as parsing proceeds.
func (p *Parser) Arena() *ast.Arena { return p.arena }

func (p *Parser) peek() lexer.Token { return p.lex.Peek() }
func (p *Parser) skip()             { p.lex.Skip() }

func (p *Parser) identifierAt(tok lexer.Token) lexer.Identifier {
	return lexer.Identifier{
		Span:          tok.Span(),
		NormalizedEnd: tok.NormalizedIdentifierEnd,
	}
}

// ParseModule parses an entire source file as a module, emitting visit
// events to v and terminating with EndOfModule (spec.md §4.2's top-level
// entry point).
func (p *Parser) ParseModule(v visit.Visitor) {
	for !p.peek().IsEOF() {
		p.parseStatement(v)
	}
	v.EndOfModule()
}

// ParseExpression parses a single expression and returns its arena
// reference, for callers (and tests) that only need expression-level
// parsing without a surrounding statement or module (spec.md §6's
// standalone entry point).
func (p *Parser) ParseExpression(v visit.Visitor) ast.ExprRef {
	return p.parseExpression(v)
}

// expect consumes the current token if its kind matches want, reporting
// nothing; it returns the consumed token, or a zero-width token positioned
// at the previous token's end if the current token didn't match, plus false.
// Callers use this to recover instead of aborting.
func (p *Parser) expect(want lexer.Kind) (lexer.Token, bool) {
	tok := p.peek()
	if tok.Kind == want {
		p.skip()
		return tok, true
	}
	return lexer.Token{Begin: p.lex.EndOfPreviousToken(), End: p.lex.EndOfPreviousToken()}, false
}

// consumeSemicolon implements ASI (spec.md §4.2): an explicit `;` is
// consumed normally; otherwise a semicolon is inserted if the next token is
// `}`, EOF, or begins on a new line, and reported as missing only when none
// of those conditions hold.
func (p *Parser) consumeSemicolon() {
	tok := p.peek()
	if tok.Kind == Kind(';') {
		p.skip()
		return
	}
	if tok.Kind == Kind('}') || tok.IsEOF() || tok.HasLeadingNewline {
		p.lex.InsertSemicolon()
		p.skip()
		return
	}
	p.sink.MissingSemicolonAfterExpression(source.Span{Begin: p.lex.EndOfPreviousToken(), End: p.lex.EndOfPreviousToken()})
}
