package scope

import (
	"github.com/vegerot/quick-lint-js/diag"
	"github.com/vegerot/quick-lint-js/lexer"
	"github.com/vegerot/quick-lint-js/source"
	"github.com/vegerot/quick-lint-js/visit"
)

// Analyzer implements visit.Visitor, consuming a parser's event stream and
// reporting scope diagnostics through Sink, per spec.md §4.3. It holds a
// stack of Scope frames; declarations land in the frame appropriate to
// their VariableKind (hoisted for var/function, block-scoped otherwise),
// and unresolved uses propagate up the stack as each frame closes.
type Analyzer struct {
	buf     *source.Buffer
	sink    diag.Sink
	globals *GlobalVariables
	scopes  []*Scope
}

// New constructs an Analyzer over buf's already-normalized identifier text,
// reporting through sink, seeded with globals (use scope.DefaultGlobals()
// for the standard set).
func New(buf *source.Buffer, sink diag.Sink, globals *GlobalVariables) *Analyzer {
	a := &Analyzer{buf: buf, sink: sink, globals: globals}
	a.scopes = []*Scope{newScope(ScopeModule)}
	return a
}

func (a *Analyzer) top() *Scope { return a.scopes[len(a.scopes)-1] }

func (a *Analyzer) push(kind ScopeKind) { a.scopes = append(a.scopes, newScope(kind)) }

func (a *Analyzer) pop() *Scope {
	s := a.top()
	a.scopes = a.scopes[:len(a.scopes)-1]
	return s
}

func (a *Analyzer) name(id lexer.Identifier) string {
	return a.buf.Slice(id.Span.Begin, id.NormalizedEnd)
}

// EnterBlockScope, EnterClassScope, EnterForScope push a lexical frame that
// does not receive hoisted var/function declarations.
func (a *Analyzer) EnterBlockScope() { a.push(ScopeBlock) }
func (a *Analyzer) EnterClassScope() { a.push(ScopeClass) }
func (a *Analyzer) EnterForScope()   { a.push(ScopeFor) }

// EnterFunctionScope pushes the frame that hoisted var/function
// declarations from nested blocks land in.
func (a *Analyzer) EnterFunctionScope() { a.push(ScopeFunction) }

// EnterFunctionScopeBody is a no-op for scope tracking purposes: parameters
// were already declared into the function scope by the time this fires
// (spec.md §4.4). The parser opens no separate block scope for the body, so
// the body's top-level let/const/class declarations land in the same
// function scope as the parameters.
func (a *Analyzer) EnterFunctionScopeBody() {}

// EnterNamedFunctionScope pushes a function scope and immediately declares
// the function's own name inside it (spec.md §4.3: a named function
// expression's name is visible to its own body but not to the enclosing
// scope).
func (a *Analyzer) EnterNamedFunctionScope(name lexer.Identifier) {
	a.push(ScopeFunction)
	a.declareIn(a.top(), name, KindFunction)
}

func (a *Analyzer) ExitBlockScope()    { a.closeScope() }
func (a *Analyzer) ExitClassScope()    { a.closeScope() }
func (a *Analyzer) ExitForScope()      { a.closeScope() }
func (a *Analyzer) ExitFunctionScope() { a.closeScope() }

func (a *Analyzer) PropertyDeclaration(name lexer.Identifier) {}

// VariableDeclaration records a new binding, hoisting var/function
// declarations up to the nearest function or module scope (spec.md §4.3).
func (a *Analyzer) VariableDeclaration(name lexer.Identifier, kind VariableKind) {
	target := a.top()
	if kind == KindVar || kind == KindFunction {
		target = a.hoistTarget()
	}
	a.declareIn(target, name, kind)
}

// hoistTarget walks up the scope stack to the nearest function or module
// frame, skipping block/for/class frames along the way.
func (a *Analyzer) hoistTarget() *Scope {
	for i := len(a.scopes) - 1; i >= 0; i-- {
		if a.scopes[i].kind == ScopeFunction || a.scopes[i].kind == ScopeModule {
			return a.scopes[i]
		}
	}
	return a.scopes[0]
}

func (a *Analyzer) declareIn(target *Scope, name lexer.Identifier, kind VariableKind) {
	key := a.name(name)

	if existing, ok := target.decls[key]; ok {
		if isHoistedKind(existing.Kind) && isHoistedKind(kind) {
			// var/function/parameter redeclaring one another is compatible
			// (e.g. `function f(x) { var x; }`); the later declaration wins.
			target.decls[key] = DeclaredVariable{Name: name, Kind: kind}
			return
		}
		a.sink.RedeclarationOfVariable(name.Span, existing.Name.Span)
		return
	}

	if target.kind == ScopeModule && a.globals.NonWritable[key] && kind != KindVar && kind != KindFunction {
		a.sink.RedeclarationOfGlobalVariable(name.Span)
	}

	target.decls[key] = DeclaredVariable{Name: name, Kind: kind}
	target.order = append(target.order, key)
}

// isHoistedKind reports whether k is never subject to the temporal dead
// zone and freely redeclares alongside other hoisted kinds: var and
// function are hoisted to the top of their scope, and a parameter is
// already bound before any code in the function body runs, so `var x` (or
// `function x() {}`) redeclaring an existing parameter `x` is legal
// (spec.md §4.3: "var with any existing var/function/parameter: allowed"),
// unlike `let x`/`const x`/`class x` redeclaring a parameter, which is
// still a conflict.
func isHoistedKind(k VariableKind) bool {
	return k == KindVar || k == KindFunction || k == KindParameter
}

// VariableAssignment records an assignment target as a use with IsAssigned
// set, deferring legality checking to scope-exit resolution (spec.md
// §4.3's assignment-legality rules).
func (a *Analyzer) VariableAssignment(name lexer.Identifier) {
	a.top().uses = append(a.top().uses, UsedVariable{Name: name, IsAssigned: true})
}

// VariableTypeofUse records a `typeof x` operand: unlike an ordinary use,
// resolving against nothing is never an error (spec.md §4.3).
func (a *Analyzer) VariableTypeofUse(name lexer.Identifier) {
	a.top().uses = append(a.top().uses, UsedVariable{Name: name, IsTypeof: true})
}

func (a *Analyzer) VariableUse(name lexer.Identifier) {
	a.top().uses = append(a.top().uses, UsedVariable{Name: name})
}

// closeScope resolves every use recorded in the top scope against that
// scope's own declarations, then propagates whatever remains unresolved to
// the new top of the stack (spec.md §4.3's scope-exit propagation).
func (a *Analyzer) closeScope() {
	s := a.pop()
	parent := a.top()
	for _, use := range s.uses {
		key := a.name(use.Name)
		if decl, ok := s.decls[key]; ok {
			a.resolveUse(decl, use)
			continue
		}
		parent.uses = append(parent.uses, use)
	}
}

// resolveUse applies the assignment-legality and use-before-declaration
// rules once a use has found its declaration (spec.md §4.3).
func (a *Analyzer) resolveUse(decl DeclaredVariable, use UsedVariable) {
	declaredBeforeUse := decl.Name.Span.Begin <= use.Name.Span.Begin || isHoistedKind(decl.Kind)

	if use.IsAssigned {
		if decl.Kind == KindConst || decl.Kind == KindImport {
			// const and import bindings are never assignable, regardless of
			// where the assignment sits relative to the declaration.
			if declaredBeforeUse {
				a.sink.AssignmentToConstVariable(decl.Name.Span, use.Name.Span, toDiagKind(decl.Kind))
			} else {
				a.sink.AssignmentToConstVariableBeforeItsDeclaration(decl.Name.Span, use.Name.Span, toDiagKind(decl.Kind))
			}
			return
		}
		if !declaredBeforeUse {
			// Assigning a writable binding (let/class/catch) before its own
			// declaration is a distinct TDZ violation from reading it early.
			a.sink.AssignmentBeforeVariableDeclaration(use.Name.Span, decl.Name.Span)
		}
		return
	}

	if use.IsTypeof {
		return
	}

	if !declaredBeforeUse && isTemporalDeadZoneKind(decl.Kind) {
		a.sink.VariableUsedBeforeDeclaration(use.Name.Span, decl.Name.Span)
	}
}

func isTemporalDeadZoneKind(k VariableKind) bool {
	return k == KindLet || k == KindConst || k == KindClass
}

// EndOfModule closes the implicit module scope and resolves whatever uses
// remain against the global seed table (spec.md §4.3's final step).
func (a *Analyzer) EndOfModule() {
	s := a.pop()
	for _, use := range s.uses {
		key := a.name(use.Name)
		if decl, ok := s.decls[key]; ok {
			a.resolveUse(decl, use)
			continue
		}
		a.resolveAgainstGlobals(key, use)
	}
}

func (a *Analyzer) resolveAgainstGlobals(key string, use UsedVariable) {
	if a.globals.Writable[key] {
		return
	}
	if a.globals.NonWritable[key] {
		if use.IsAssigned {
			a.sink.AssignmentToConstGlobalVariable(use.Name.Span)
		}
		return
	}
	switch {
	case use.IsAssigned:
		a.sink.AssignmentToUndeclaredVariable(use.Name.Span)
	case use.IsTypeof:
		// typeof of a never-declared variable is not a diagnostic.
	default:
		a.sink.UseOfUndeclaredVariable(use.Name.Span)
	}
}

var _ visit.Visitor = (*Analyzer)(nil)
