package parser

import (
	"github.com/vegerot/quick-lint-js/ast"
	"github.com/vegerot/quick-lint-js/lexer"
	"github.com/vegerot/quick-lint-js/source"
	"github.com/vegerot/quick-lint-js/visit"
)

// parseStatement dispatches on the current token to the right statement
// form, per spec.md §4.2. Every branch always consumes at least one token,
// so a completely unrecognized statement still makes forward progress.
func (p *Parser) parseStatement(v visit.Visitor) {
	tok := p.peek()
	switch tok.Kind {
	case Kind('{'):
		p.parseBlockStatement(v)
	case Kind(';'):
		p.skip()
	case lexer.KindKwVar:
		p.parseVariableDeclaration(v, visit.KindVar, true)
		p.consumeSemicolon()
	case lexer.KindKwConst:
		p.parseVariableDeclaration(v, visit.KindConst, false)
		p.consumeSemicolon()
	case lexer.KindIdentifier:
		if p.buf.Slice(tok.Begin, tok.NormalizedIdentifierEnd) == "let" {
			p.parseLetDeclaration(v)
			p.consumeSemicolon()
			return
		}
		p.parseLabeledOrExpressionStatement(v)
	case lexer.KindKwFunction:
		p.parseFunctionDeclaration(v)
	case lexer.KindKwClass:
		p.parseClassDeclaration(v)
	case lexer.KindKwIf:
		p.parseIfStatement(v)
	case lexer.KindKwWhile:
		p.parseWhileStatement(v)
	case lexer.KindKwDo:
		p.parseDoWhileStatement(v)
	case lexer.KindKwFor:
		p.parseForStatement(v)
	case lexer.KindKwReturn:
		p.skip()
		if p.peek().Kind != Kind(';') && p.peek().Kind != Kind('}') && !p.peek().IsEOF() && !p.peek().HasLeadingNewline {
			p.parseExpression(v)
		}
		p.consumeSemicolon()
	case lexer.KindKwBreak, lexer.KindKwContinue:
		p.skip()
		if p.peek().Kind == lexer.KindIdentifier && !p.peek().HasLeadingNewline {
			p.skip()
		}
		p.consumeSemicolon()
	case lexer.KindKwThrow:
		p.skip()
		p.parseExpression(v)
		p.consumeSemicolon()
	case lexer.KindKwTry:
		p.parseTryStatement(v)
	case lexer.KindKwSwitch:
		p.parseSwitchStatement(v)
	case lexer.KindKwDebugger:
		p.skip()
		p.consumeSemicolon()
	case lexer.KindKwImport:
		p.parseImportStatement(v)
	case lexer.KindKwExport:
		p.skip()
		if p.peek().Kind != Kind('{') {
			p.parseStatement(v)
		} else {
			p.parseBlockStatement(v) // export { a, b } -- reuse brace-skipping path
		}
	default:
		p.parseLabeledOrExpressionStatement(v)
	}
}

// parseBlockInto parses a `{ ... }` block's statements into v directly
// (used for arrow/function bodies that need their own visit.Buffer).
func (p *Parser) parseBlockInto(v visit.Visitor) {
	p.expect(Kind('{'))
	for p.peek().Kind != Kind('}') && !p.peek().IsEOF() {
		p.parseStatement(v)
	}
	p.expect(Kind('}'))
}

func (p *Parser) parseBlockStatement(v visit.Visitor) {
	v.EnterBlockScope()
	p.parseBlockInto(v)
	v.ExitBlockScope()
}

// parseVariableDeclaration parses a comma-separated `var`/`const` binding
// list, already past the leading keyword having been checked but not yet
// consumed. allowBindingWithoutInit is not consulted: `const x;` (a grammar
// error the scope analyzer does not need to know about; quick-lint-js itself
// reports this at parse time, but that diagnostic isn't part of this
// taxonomy) is accepted here exactly like `var x;`.
func (p *Parser) parseVariableDeclaration(v visit.Visitor, kind visit.VariableKind, allowBindingWithoutInit bool) {
	p.skip() // 'var'/'const'
	for {
		p.parseBindingWithOptionalInit(v, kind)
		if p.peek().Kind == Kind(',') {
			p.skip()
			continue
		}
		break
	}
}

// parseLetDeclaration handles `let`, which is a contextual keyword (it
// lexes as KindIdentifier): spec.md's SUPPLEMENTED FEATURES call out
// `let let = ...` and `class let {}` as specifically disallowed; `let let`
// is checked here before falling through to ordinary declaration parsing,
// and `class let` in parseClassDeclaration.
func (p *Parser) parseLetDeclaration(v visit.Visitor) {
	letTok := p.peek()
	p.skip()
	if p.peek().Kind == lexer.KindIdentifier && p.buf.Slice(p.peek().Begin, p.peek().NormalizedIdentifierEnd) == "let" {
		p.sink.CannotDeclareVariableNamedLetWithLet(p.peek().Span())
	}
	if p.peek().Kind == Kind(';') || p.peek().Kind == Kind('}') || p.peek().IsEOF() {
		p.sink.LetWithNoBindings(letTok.Span())
		return
	}
	for {
		p.parseBindingWithOptionalInit(v, visit.KindLet)
		if p.peek().Kind == Kind(',') {
			p.skip()
			continue
		}
		break
	}
}

// parseBindingWithOptionalInit parses one `pattern` or `pattern = init`
// entry of a declaration list.
func (p *Parser) parseBindingWithOptionalInit(v visit.Visitor, kind visit.VariableKind) {
	pattern := p.parseBindingPattern(v)
	if p.peek().Kind == Kind('=') {
		p.skip()
		p.parseAssignment(v)
	}
	p.declareBindingPattern(v, pattern, kind)
}

// parseBindingPattern parses an identifier, array pattern, or object
// pattern as a plain expression (reusing parseAssignment's array/object
// literal grammar), without yet emitting any VariableDeclaration events --
// those are emitted afterward by declareBindingPattern once the whole
// pattern (and any default values nested within it) has been parsed.
func (p *Parser) parseBindingPattern(v visit.Visitor) ast.ExprRef {
	tok := p.peek()
	switch tok.Kind {
	case lexer.KindIdentifier:
		p.skip()
		id := p.identifierAt(tok)
		return p.arena.New(ast.Expr{Kind: ast.KindVariable, Name: id, Span: tok.Span()})
	case Kind('['):
		return p.parseArrayLiteral(v)
	case Kind('{'):
		return p.parseObjectLiteral(v)
	default:
		p.sink.InvalidBindingInLetStatement(tok.Span())
		p.skip()
		return p.arena.New(ast.Expr{Kind: ast.KindInvalid, Span: tok.Span()})
	}
}

// declareBindingPattern walks a parsed pattern and emits
// VariableDeclaration for every binding it introduces, per spec.md §4.3's
// hoisting rule for destructuring declarations.
func (p *Parser) declareBindingPattern(v visit.Visitor, pattern ast.ExprRef, kind visit.VariableKind) {
	e := p.arena.At(pattern)
	switch e.Kind {
	case ast.KindVariable:
		v.VariableDeclaration(e.Name, kind)
	case ast.KindAssignment:
		p.declareBindingPattern(v, e.Assignment[0], kind)
	case ast.KindArray:
		for _, elem := range e.Children {
			if elem != ast.NilExpr {
				p.declareBindingPattern(v, elem, kind)
			}
		}
	case ast.KindObject:
		for _, entry := range e.Entries {
			p.declareBindingPattern(v, entry.Value, kind)
		}
	case ast.KindSpread:
		p.declareBindingPattern(v, e.Child, kind)
	}
}

func (p *Parser) parseLabeledOrExpressionStatement(v visit.Visitor) {
	tok := p.peek()
	if tok.Kind == lexer.KindIdentifier {
		// Speculative one-token lookahead for `label:` is unnecessary here
		// since the lexer only ever produces a single token at a time; a
		// colon immediately following a bare identifier is unambiguous in
		// statement position (it cannot also start a valid expression
		// continuation), so check it directly.
		save := p.peek()
		p.skip()
		if p.peek().Kind == Kind(':') {
			p.skip()
			p.parseStatement(v)
			return
		}
		id := p.identifierAt(save)
		if p.peek().Kind == lexer.KindEqualGreater && !p.peek().HasLeadingNewline {
			p.parseArrowFromSingleParam(v, id)
			p.consumeSemicolon()
			return
		}
		// A bare identifier immediately followed by `=` is a pure
		// assignment target, not a read; everything else (compound
		// assignment, member access, binary operators, ...) does read the
		// identifier's current value, so it's a use there.
		if p.peek().Kind != Kind('=') {
			v.VariableUse(id)
		}
		expr := p.arena.New(ast.Expr{Kind: ast.KindVariable, Name: id, Span: save.Span()})
		expr = p.parsePostfixFrom(v, expr)
		expr = p.continueBinaryFromPostfix(v, expr)
		p.consumeSemicolon()
		return
	}
	p.parseExpression(v)
	p.consumeSemicolon()
}

// continueBinaryFromPostfix resumes full expression-grammar parsing
// (binary/conditional/assignment/comma) once a label-candidate identifier
// has already been consumed as a postfix-chain expression.
func (p *Parser) continueBinaryFromPostfix(v visit.Visitor, left ast.ExprRef) ast.ExprRef {
	for {
		op := p.peek().Kind
		power, ok := binaryPrecedence(op)
		if !ok {
			break
		}
		p.skip()
		right := p.parseBinary(v, power+2)
		left = p.foldBinary(left, op, right)
	}
	if p.peek().Kind == Kind('?') {
		p.skip()
		then := p.parseAssignment(v)
		p.expectColon()
		els := p.parseAssignment(v)
		left = p.arena.New(ast.Expr{Kind: ast.KindConditional, Conditional: [3]ast.ExprRef{left, then, els},
			Span: source.Span{Begin: p.arena.At(left).Span.Begin, End: p.arena.At(els).Span.End}})
	}
	if isAssignmentOperator(p.peek().Kind) {
		op := p.peek().Kind
		p.skip()
		rhs := p.parseAssignment(v)
		p.visitAssignmentTarget(v, left)
		kind := ast.KindCompoundAssignment
		if op == Kind('=') {
			kind = ast.KindAssignment
		}
		left = p.arena.New(ast.Expr{Kind: kind, Operator: op, Assignment: [2]ast.ExprRef{left, rhs},
			Span: source.Span{Begin: p.arena.At(left).Span.Begin, End: p.arena.At(rhs).Span.End}})
	}
	for p.peek().Kind == Kind(',') {
		p.skip()
		p.parseAssignment(v)
	}
	return left
}

func (p *Parser) parseFunctionDeclaration(v visit.Visitor) {
	p.skip() // 'function'
	if p.peek().Kind == Kind('*') {
		p.skip() // generator
	}
	nameTok, hasName := p.expect(lexer.KindIdentifier)
	if hasName {
		v.VariableDeclaration(p.identifierAt(nameTok), visit.KindFunction)
	}
	p.parseFunctionTail(v, p.identifierAt(nameTok))
}

// parseFunctionExpression and parseFunctionTail share the parameter-list
// and body parsing used by function declarations, function expressions,
// and object-literal method shorthand.
func (p *Parser) parseFunctionExpression(v visit.Visitor) ast.ExprRef {
	begin := p.peek().Begin
	p.skip() // 'function'
	if p.peek().Kind == Kind('*') {
		p.skip()
	}
	var name lexer.Identifier
	hasName := false
	if p.peek().Kind == lexer.KindIdentifier {
		nameTok := p.peek()
		p.skip()
		name = p.identifierAt(nameTok)
		hasName = true
	}
	ref := p.parseFunctionTail(v, name)
	e := p.arena.At(ref)
	e.Span.Begin = begin
	if hasName {
		e.Kind = ast.KindNamedFunction
	}
	return ref
}

// parseFunctionTail parses `(params) { body }`, emitting
// EnterNamedFunctionScope (if name.Span is non-empty) /
// EnterFunctionScope, parameter declarations, a buffered body replay, and
// ExitFunctionScope, per spec.md §4.4.
func (p *Parser) parseFunctionTail(v visit.Visitor, name lexer.Identifier) ast.ExprRef {
	begin := p.peek().Begin
	if !name.Span.IsEmpty() {
		v.EnterNamedFunctionScope(name)
	} else {
		v.EnterFunctionScope()
	}

	params := p.parseParameterList(v)

	var buffered visit.Buffer
	v.EnterFunctionScopeBody()
	p.parseBlockInto(&buffered)
	buffered.Replay(v)
	v.ExitFunctionScope()

	kind := ast.KindFunction
	if !name.Span.IsEmpty() {
		kind = ast.KindNamedFunction
	}
	return p.arena.New(ast.Expr{
		Kind:   kind,
		Name:   name,
		Params: params,
		Span:   source.Span{Begin: begin, End: p.lex.EndOfPreviousToken()},
	})
}

func (p *Parser) parseParameterList(v visit.Visitor) []ast.ExprRef {
	p.expect(Kind('('))
	var params []ast.ExprRef
	for p.peek().Kind != Kind(')') && !p.peek().IsEOF() {
		var param ast.ExprRef
		if p.peek().Kind == lexer.KindDotDotDot {
			begin := p.peek().Begin
			p.skip()
			inner := p.parseBindingPattern(v)
			param = p.arena.New(ast.Expr{Kind: ast.KindSpread, Child: inner, Span: source.Span{Begin: begin, End: p.arena.At(inner).Span.End}})
		} else {
			param = p.parseBindingPattern(v)
			if p.peek().Kind == Kind('=') {
				p.skip()
				def := p.parseAssignment(v)
				param = p.arena.New(ast.Expr{Kind: ast.KindAssignment, Assignment: [2]ast.ExprRef{param, def},
					Span: source.Span{Begin: p.arena.At(param).Span.Begin, End: p.arena.At(def).Span.End}})
			}
		}
		p.declareParameter(v, param)
		params = append(params, param)
		if p.peek().Kind == Kind(',') {
			p.skip()
			continue
		}
		break
	}
	p.expect(Kind(')'))
	return params
}

// parseClassDeclaration parses a class's name and heritage clause and then
// skips its body as balanced braces: spec.md's data model does not need
// per-member visit events (Non-goals exclude type/member-level analysis),
// but PropertyDeclaration is still emitted for named methods (an identifier
// followed by `(`; fields get no event) so a scope analyzer extension point
// exists, mirroring quick-lint-js's own class-body visitation.
func (p *Parser) parseClassDeclaration(v visit.Visitor) {
	p.skip() // 'class'
	if p.peek().Kind == lexer.KindIdentifier {
		nameTok := p.peek()
		p.skip()
		if p.buf.Slice(nameTok.Begin, nameTok.NormalizedIdentifierEnd) == "let" {
			p.sink.CannotDeclareClassNamedLet(nameTok.Span())
		}
		v.VariableDeclaration(p.identifierAt(nameTok), visit.KindClass)
	}
	if p.peek().Kind == lexer.KindKwExtends {
		p.skip()
		p.parseBinary(v, precNone)
	}
	v.EnterClassScope()
	p.expect(Kind('{'))
	depth := 1
	for depth > 0 && !p.peek().IsEOF() {
		if p.peek().Kind == lexer.KindIdentifier {
			memberTok := p.peek()
			p.skip()
			if p.peek().Kind == Kind('(') {
				v.PropertyDeclaration(p.identifierAt(memberTok))
				var buffered visit.Buffer
				v.EnterFunctionScope()
				p.parseParameterList(&buffered)
				v.EnterFunctionScopeBody()
				p.parseBlockInto(&buffered)
				buffered.Replay(v)
				v.ExitFunctionScope()
			}
			continue
		}
		switch p.peek().Kind {
		case Kind('{'):
			depth++
			p.skip()
		case Kind('}'):
			depth--
			p.skip()
		default:
			p.skip()
		}
	}
	v.ExitClassScope()
}

func (p *Parser) parseIfStatement(v visit.Visitor) {
	p.skip() // 'if'
	p.expect(Kind('('))
	p.parseExpression(v)
	p.expect(Kind(')'))
	p.parseStatement(v)
	if p.peek().Kind == lexer.KindKwElse {
		p.skip()
		p.parseStatement(v)
	}
}

func (p *Parser) parseWhileStatement(v visit.Visitor) {
	p.skip() // 'while'
	p.expect(Kind('('))
	p.parseExpression(v)
	p.expect(Kind(')'))
	p.parseStatement(v)
}

func (p *Parser) parseDoWhileStatement(v visit.Visitor) {
	p.skip() // 'do'
	p.parseStatement(v)
	p.expect(lexer.KindKwWhile)
	p.expect(Kind('('))
	p.parseExpression(v)
	p.expect(Kind(')'))
	p.consumeSemicolon()
}

// parseForStatement handles all three for-loop forms: classic
// `for (init; cond; update)`, `for (x in obj)`, and `for (x of iterable)`
// (spec.md §4.2/§4.3's EnterForScope/ExitForScope span the head and the
// body so a `let`/`const` loop variable is scoped to the loop, not the
// enclosing block).
func (p *Parser) parseForStatement(v visit.Visitor) {
	p.skip() // 'for'
	p.expect(Kind('('))
	v.EnterForScope()

	isDeclaration := false
	declKind := visit.VariableKind(visit.KindVar)
	switch p.peek().Kind {
	case lexer.KindKwVar:
		isDeclaration = true
		declKind = visit.KindVar
		p.skip()
	case lexer.KindKwConst:
		isDeclaration = true
		declKind = visit.KindConst
		p.skip()
	case lexer.KindIdentifier:
		if p.buf.Slice(p.peek().Begin, p.peek().NormalizedIdentifierEnd) == "let" {
			isDeclaration = true
			declKind = visit.KindLet
			p.skip()
		}
	}

	if p.peek().Kind == Kind(';') && !isDeclaration {
		p.skip()
		p.parseClassicForTail(v)
		p.parseStatement(v)
		v.ExitForScope()
		return
	}

	var firstBinding ast.ExprRef
	if isDeclaration {
		firstBinding = p.parseBindingPattern(v)
	} else {
		firstBinding = p.parseLeftHandSideForForHead(v)
	}

	switch p.peek().Kind {
	case lexer.KindKwIn:
		p.skip()
		if isDeclaration {
			p.declareBindingPattern(v, firstBinding, declKind)
		} else {
			p.visitAssignmentTarget(v, firstBinding)
		}
		p.parseExpression(v)
		p.expect(Kind(')'))
		p.parseStatement(v)
		v.ExitForScope()
		return
	case lexer.KindIdentifier:
		if p.buf.Slice(p.peek().Begin, p.peek().NormalizedIdentifierEnd) == "of" {
			p.skip()
			if isDeclaration {
				p.declareBindingPattern(v, firstBinding, declKind)
			} else {
				p.visitAssignmentTarget(v, firstBinding)
			}
			p.parseAssignment(v)
			p.expect(Kind(')'))
			p.parseStatement(v)
			v.ExitForScope()
			return
		}
	}

	// Classic for loop: firstBinding (with optional `= init`) was the first
	// declarator.
	if p.peek().Kind == Kind('=') {
		p.skip()
		p.parseAssignment(v)
	}
	if isDeclaration {
		p.declareBindingPattern(v, firstBinding, declKind)
	}
	for p.peek().Kind == Kind(',') {
		p.skip()
		p.parseBindingWithOptionalInit(v, declKind)
	}
	p.expect(Kind(';'))
	p.parseClassicForTail(v)
	p.parseStatement(v)
	v.ExitForScope()
}

func (p *Parser) parseLeftHandSideForForHead(v visit.Visitor) ast.ExprRef {
	return p.parseBinary(v, precNone)
}

func (p *Parser) parseClassicForTail(v visit.Visitor) {
	if p.peek().Kind != Kind(';') {
		p.parseExpression(v)
	}
	p.expect(Kind(';'))
	if p.peek().Kind != Kind(')') {
		p.parseExpression(v)
	}
	p.expect(Kind(')'))
}

func (p *Parser) parseTryStatement(v visit.Visitor) {
	p.skip() // 'try'
	p.parseBlockStatement(v)
	if p.peek().Kind == lexer.KindKwCatch {
		p.skip()
		v.EnterBlockScope()
		if p.peek().Kind == Kind('(') {
			p.skip()
			pattern := p.parseBindingPattern(v)
			p.declareBindingPattern(v, pattern, visit.KindCatch)
			p.expect(Kind(')'))
		}
		p.parseBlockInto(v)
		v.ExitBlockScope()
	}
	if p.peek().Kind == lexer.KindKwFinally {
		p.skip()
		p.parseBlockStatement(v)
	}
}

func (p *Parser) parseSwitchStatement(v visit.Visitor) {
	p.skip() // 'switch'
	p.expect(Kind('('))
	p.parseExpression(v)
	p.expect(Kind(')'))
	v.EnterBlockScope()
	p.expect(Kind('{'))
	for p.peek().Kind != Kind('}') && !p.peek().IsEOF() {
		switch p.peek().Kind {
		case lexer.KindKwCase:
			p.skip()
			p.parseExpression(v)
			p.expect(Kind(':'))
		case lexer.KindKwDefault:
			p.skip()
			p.expect(Kind(':'))
		default:
			p.parseStatement(v)
		}
	}
	p.expect(Kind('}'))
	v.ExitBlockScope()
}

// parseImportStatement accepts the default/named/namespace import forms and
// declares each bound local name as a KindImport variable, then skips the
// `from "module"` clause. Re-exports and dynamic import() are out of scope.
func (p *Parser) parseImportStatement(v visit.Visitor) {
	p.skip() // 'import'
	if p.peek().Kind == lexer.KindString {
		p.skip()
		p.consumeSemicolon()
		return
	}
	if p.peek().Kind == lexer.KindIdentifier {
		nameTok := p.peek()
		p.skip()
		v.VariableDeclaration(p.identifierAt(nameTok), visit.KindImport)
		if p.peek().Kind == Kind(',') {
			p.skip()
		}
	}
	if p.peek().Kind == Kind('*') {
		p.skip()
		p.expect(lexer.KindIdentifier) // 'as'
		nameTok, _ := p.expect(lexer.KindIdentifier)
		v.VariableDeclaration(p.identifierAt(nameTok), visit.KindImport)
	} else if p.peek().Kind == Kind('{') {
		p.skip()
		for p.peek().Kind != Kind('}') && !p.peek().IsEOF() {
			nameTok, _ := p.expect(lexer.KindIdentifier)
			local := nameTok
			if p.peek().Kind == lexer.KindIdentifier && p.buf.Slice(p.peek().Begin, p.peek().NormalizedIdentifierEnd) == "as" {
				p.skip()
				local, _ = p.expect(lexer.KindIdentifier)
			}
			v.VariableDeclaration(p.identifierAt(local), visit.KindImport)
			if p.peek().Kind == Kind(',') {
				p.skip()
			}
		}
		p.expect(Kind('}'))
	}
	if p.peek().Kind == lexer.KindIdentifier && p.buf.Slice(p.peek().Begin, p.peek().NormalizedIdentifierEnd) == "from" {
		p.skip()
		p.expect(lexer.KindString)
	}
	p.consumeSemicolon()
}
