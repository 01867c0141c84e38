package ast

import (
	"github.com/vegerot/quick-lint-js/lexer"
	"github.com/vegerot/quick-lint-js/source"
)

// ExprKind tags which fields of Expr are meaningful (spec.md §3 "expression
// node ... kind is drawn from a closed set").
type ExprKind int

const (
	KindInvalid ExprKind = iota
	KindLiteral
	KindVariable
	KindDot
	KindIndex
	KindCall
	KindNew
	KindUnary
	KindRWUnaryPrefix // ++x, --x
	KindRWUnarySuffix // x++, x--
	KindTypeof
	KindAwait
	KindSpread
	KindBinaryOperator
	KindConditional
	KindAssignment
	KindCompoundAssignment
	KindArray
	KindObject
	KindTemplate
	KindTaggedTemplate
	KindFunction
	KindNamedFunction
	KindArrowWithExpression
	KindArrowWithStatements
	KindImport
	KindNewTarget
	KindSuper
)

// ObjectEntry is one `key: value` (or shorthand, or spread) slot of an
// object literal. Property is NilExpr for a spread entry (`...rest`), in
// which case Value holds the spread operand.
type ObjectEntry struct {
	Property ExprRef
	Value    ExprRef
}

// Expr is a single arena node. Only the fields relevant to Kind are
// populated; this mirrors quick-lint-js's own tagged-union expression type
// but, per the arena-index design (see arena.go), holds ExprRef children
// instead of pointers.
type Expr struct {
	Kind ExprKind
	Span source.Span

	// KindVariable, KindDot (property name), KindNamedFunction (function
	// name), KindArrowWithExpression/KindArrowWithStatements parameter
	// names are carried via Params instead.
	Name lexer.Identifier

	// Child is the single operand for KindUnary, KindRWUnaryPrefix,
	// KindRWUnarySuffix, KindTypeof, KindAwait, KindSpread, and the object
	// expression of KindDot/KindIndex.
	Child ExprRef

	// Index is the computed-property operand of KindIndex (`a[b]`).
	Index ExprRef

	// Children holds:
	//   KindBinaryOperator: operands left-to-right (flattened n-ary chain,
	//     spec.md §4.2's "binary operator expression ... combine a run of
	//     same-precedence binary operators into one n-ary node")
	//   KindCall/KindNew: callee at [0], arguments at [1:]
	//   KindArray: elements (NilExpr entries represent elisions)
	//   KindTemplate: substitution expressions
	//   KindTaggedTemplate: the tag at [0] and the template expression at [1]
	Children []ExprRef

	// Conditional holds cond/then/else for KindConditional.
	Conditional [3]ExprRef

	// Assignment holds lhs/rhs for KindAssignment and KindCompoundAssignment.
	Assignment [2]ExprRef
	// Operator is the compound-assignment operator's lexer.Kind, e.g.
	// lexer.KindPlusEqual, for KindCompoundAssignment, and, for
	// KindBinaryOperator, the token kind of the chain's first operator (a
	// chain such as `x + y - z` mixes operators of one precedence level).
	Operator lexer.Kind

	// Entries holds KindObject's key/value pairs.
	Entries []ObjectEntry

	// Params holds parameter binding expressions for KindFunction,
	// KindNamedFunction, KindArrowWithExpression, and
	// KindArrowWithStatements. Each parameter is itself an expression to
	// allow default values and destructuring (`{a, b = 1}`) the same way
	// quick-lint-js's own parser does.
	Params []ExprRef

	// ArrowBody is the expression body of KindArrowWithExpression
	// (`x => x + 1`). KindArrowWithStatements, KindFunction, and
	// KindNamedFunction instead have their bodies replayed from a
	// visit.Buffer recorded while parsing the body (spec.md §4.4); Expr
	// itself carries no statement-level content.
	ArrowBody ExprRef

	// Literal carries KindLiteral's token kind (lexer.KindNumber,
	// KindString, KindRegExp, KindKwTrue, KindKwFalse, KindKwNull) so
	// callers can tell literal flavors apart without re-lexing.
	Literal lexer.Kind
}

// IsNil reports whether ref refers to no expression.
func (a *Arena) IsNil(ref ExprRef) bool { return ref == NilExpr }
