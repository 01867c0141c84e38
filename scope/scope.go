// Package scope implements the scope analyzer (spec.md §4.3): it consumes
// visit.Visitor events and reports declaration-conflict, use-before-
// declaration, and assignment-legality diagnostics through a diag.Sink.
package scope

import (
	"github.com/vegerot/quick-lint-js/diag"
	"github.com/vegerot/quick-lint-js/lexer"
	"github.com/vegerot/quick-lint-js/visit"
)

// VariableKind is an alias of visit.VariableKind so analyzer.go's switches
// read naturally; its values are numerically identical to
// diag.VariableKind's, so a bare conversion is always correct.
type VariableKind = visit.VariableKind

const (
	KindCatch     = visit.KindCatch
	KindClass     = visit.KindClass
	KindConst     = visit.KindConst
	KindFunction  = visit.KindFunction
	KindImport    = visit.KindImport
	KindLet       = visit.KindLet
	KindParameter = visit.KindParameter
	KindVar       = visit.KindVar
)

func toDiagKind(k VariableKind) diag.VariableKind { return diag.VariableKind(k) }

// ScopeKind distinguishes the handful of scope-exit behaviors spec.md §4.3
// describes: var/function declarations are hoisted past block scopes,
// function scopes are where var/function declarations actually land, and
// scopes opened for a for-loop head behave like a block except that they
// also hold the loop variable.
type ScopeKind int

const (
	ScopeBlock ScopeKind = iota
	ScopeFunction
	ScopeFor
	ScopeClass
	ScopeModule
)

// DeclaredVariable is one name bound in a Scope, per spec.md §3.
type DeclaredVariable struct {
	Name lexer.Identifier
	Kind VariableKind
}

// UsedVariable is one unresolved reference recorded in a Scope awaiting
// resolution against an enclosing scope, per spec.md §3.
type UsedVariable struct {
	Name       lexer.Identifier
	IsTypeof   bool
	IsAssigned bool
}

// Scope is one entry of the analyzer's scope stack. Names are keyed by their
// normalized (escape-decoded) text, which the Analyzer computes via its
// Buffer before touching any Scope; Scope itself never reads source bytes.
type Scope struct {
	kind  ScopeKind
	decls map[string]DeclaredVariable
	order []string // insertion order of decls, for deterministic redeclaration checks
	uses  []UsedVariable
}

func newScope(kind ScopeKind) *Scope {
	return &Scope{kind: kind, decls: make(map[string]DeclaredVariable)}
}
