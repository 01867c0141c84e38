// Package visit defines the parser-to-scope-analyzer boundary: one method
// call per syntactic event, in source order, rather than a materialized AST
// walk (spec.md §3 "visit event" / §4.2). This lets the scope analyzer stay
// entirely ignorant of expression/statement grammar; it only ever reacts to
// events.
package visit

import "github.com/vegerot/quick-lint-js/lexer"

// VariableKind is re-exported here (rather than imported from diag) because
// visit is a lower-level package the parser depends on and diag depends on
// source only; a scope.VariableKind alias ties the three together without a
// dependency cycle.
type VariableKind int

const (
	KindCatch VariableKind = iota
	KindClass
	KindConst
	KindFunction
	KindImport
	KindLet
	KindParameter
	KindVar
)

// Visitor receives the events the parser emits while walking a module,
// exactly as spec.md §3 enumerates them. Implementations that only care
// about a handful of events should embed NoopVisitor.
type Visitor interface {
	EnterBlockScope()
	EnterClassScope()
	EnterForScope()
	EnterFunctionScope()
	EnterFunctionScopeBody()
	EnterNamedFunctionScope(name lexer.Identifier)
	ExitBlockScope()
	ExitClassScope()
	ExitForScope()
	ExitFunctionScope()

	PropertyDeclaration(name lexer.Identifier)
	VariableDeclaration(name lexer.Identifier, kind VariableKind)
	VariableAssignment(name lexer.Identifier)
	VariableTypeofUse(name lexer.Identifier)
	VariableUse(name lexer.Identifier)

	EndOfModule()
}

// NoopVisitor implements Visitor with every method a no-op. Embed it to
// implement only the events you care about.
type NoopVisitor struct{}

func (NoopVisitor) EnterBlockScope()                             {}
func (NoopVisitor) EnterClassScope()                             {}
func (NoopVisitor) EnterForScope()                                {}
func (NoopVisitor) EnterFunctionScope()                           {}
func (NoopVisitor) EnterFunctionScopeBody()                       {}
func (NoopVisitor) EnterNamedFunctionScope(name lexer.Identifier) {}
func (NoopVisitor) ExitBlockScope()                               {}
func (NoopVisitor) ExitClassScope()                               {}
func (NoopVisitor) ExitForScope()                                 {}
func (NoopVisitor) ExitFunctionScope()                            {}

func (NoopVisitor) PropertyDeclaration(name lexer.Identifier)              {}
func (NoopVisitor) VariableDeclaration(name lexer.Identifier, k VariableKind) {}
func (NoopVisitor) VariableAssignment(name lexer.Identifier)               {}
func (NoopVisitor) VariableTypeofUse(name lexer.Identifier)                {}
func (NoopVisitor) VariableUse(name lexer.Identifier)                      {}

func (NoopVisitor) EndOfModule() {}

var _ Visitor = NoopVisitor{}
