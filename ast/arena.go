// Package ast is the expression arena and node model for parsed
// expressions (spec.md §3 "expression node" / §4.2). Where
// T14Raptor-go-fAST's own arena (parser/arena.go) bump-allocates nodes
// behind unsafe.Pointer and hands out raw pointers, this arena hands out
// small integer ExprRef indices into a growable slice instead: spec.md's own
// design notes call out that a Go port should prefer arena indices over a
// pointer-heavy AST, since slice growth and the garbage collector make
// indices both cheaper and safer here than in C++ or in a manually managed
// arena.
package ast

// ExprRef is an index into an Arena's node slice. NilExpr (-1) never refers
// to a real node; the zero value refers to the first node allocated.
type ExprRef int32

// NilExpr is the reference returned in place of "no expression" (e.g. an
// omitted array element, or a conditional expression with no branches yet
// parsed).
const NilExpr ExprRef = -1

// Arena owns every Expr produced while parsing a single module. Expressions
// are never freed individually; the whole Arena is dropped together once
// the visit pass that needs it has run (spec.md §5).
type Arena struct {
	nodes []Expr
}

// NewArena returns an empty arena. capacityHint, if positive, is used to
// presize the backing slice to avoid reallocation during a large parse.
func NewArena(capacityHint int) *Arena {
	a := &Arena{}
	if capacityHint > 0 {
		a.nodes = make([]Expr, 0, capacityHint)
	}
	return a
}

// New appends e to the arena and returns its reference.
func (a *Arena) New(e Expr) ExprRef {
	ref := ExprRef(len(a.nodes))
	a.nodes = append(a.nodes, e)
	return ref
}

// At dereferences ref. Precondition: ref != NilExpr and ref was returned by
// this same Arena.
func (a *Arena) At(ref ExprRef) *Expr { return &a.nodes[ref] }

// Len is the number of nodes allocated so far.
func (a *Arena) Len() int { return len(a.nodes) }
