// Package diag defines the fixed diagnostic taxonomy reported by the lexer,
// parser, and scope analyzer, and the Sink capability they report through.
//
// Every diagnostic kind is its own Sink method with typed span parameters --
// never a shared "message string" entry point -- so that locality is always
// carried by source.Span values, never by free-form text (spec.md §6/§7). The kind
// names and payload shapes are grounded on
// original_source/src/quick-lint-js/error.h.
package diag

import "github.com/vegerot/quick-lint-js/source"

// VariableKind mirrors spec.md §3 "Variable kind": the binding form used to
// introduce a name, needed by some diagnostics (e.g. which flavor of
// "assignment to const" fired).
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

func (k VariableKind) String() string {
	switch k {
	case KindCatch:
		return "catch"
	case KindClass:
		return "class"
	case KindConst:
		return "const"
	case KindFunction:
		return "function"
	case KindImport:
		return "import"
	case KindLet:
		return "let"
	case KindParameter:
		return "parameter"
	case KindVar:
		return "var"
	default:
		return "unknown"
	}
}

// Sink is the capability the lexer, parser, and scope analyzer depend on to
// report diagnostics. It never returns an error and never aborts: every
// recoverable malformed construct is exactly one Sink call (spec.md §7).
//
// Method names and payloads follow error.h's QLJS_X_ERROR_TYPES list.
type Sink interface {
	// Lexer diagnostics.
	UnclosedBlockComment(commentOpen source.Span)
	UnclosedString(literal source.Span)
	UnclosedTemplate(incompleteTemplate source.Span)
	UnclosedRegexp(regexpLiteral source.Span)
	UnexpectedCharactersInNumber(characters source.Span)
	UnexpectedCharactersInOctalNumber(characters source.Span)
	BigIntLiteralContainsDecimalPoint(where source.Span)
	BigIntLiteralContainsExponent(where source.Span)
	BigIntLiteralContainsLeadingZero(where source.Span)
	NumberLiteralContainsConsecutiveUnderscores(underscores source.Span)
	NumberLiteralContainsTrailingUnderscores(underscores source.Span)
	UnexpectedControlCharacter(character source.Span)
	UnexpectedAtCharacter(character source.Span)
	UnexpectedBackslashInIdentifier(backslash source.Span)
	UnclosedIdentifierEscapeSequence(escapeSequence source.Span)
	EscapedCharacterDisallowedInIdentifiers(escapeSequence source.Span)
	EscapedCodePointInIdentifierOutOfRange(escapeSequence source.Span)
	KeywordsCannotContainEscapeSequences(escapeSequence source.Span)
	ExpectedHexDigitsInUnicodeEscape(escapeSequence source.Span)
	RegexpLiteralFlagsCannotContainUnicodeEscapes(escapeSequence source.Span)
	InvalidCharacter(character source.Span)

	// Parser diagnostics.
	MissingOperandForOperator(where source.Span)
	MissingSemicolonAfterExpression(where source.Span)
	UnmatchedParenthesis(where source.Span)
	InvalidExpressionLeftOfAssignment(where source.Span)
	MissingCommaBetweenObjectLiteralEntries(where source.Span)
	StrayCommaInLetStatement(where source.Span)
	InvalidBindingInLetStatement(where source.Span)
	LetWithNoBindings(where source.Span)
	UnexpectedIdentifier(where source.Span)
	UnexpectedHashCharacter(where source.Span)
	CannotDeclareVariableNamedLetWithLet(name source.Span)
	CannotDeclareClassNamedLet(name source.Span)
	ExpectedExpressionBeforeNewline(where source.Span)
	ExpectedExpressionBeforeSemicolon(where source.Span)

	// Scope analyzer diagnostics.
	AssignmentBeforeVariableDeclaration(assignment, declaration source.Span)
	AssignmentToConstGlobalVariable(assignment source.Span)
	AssignmentToConstVariable(declaration, assignment source.Span, kind VariableKind)
	AssignmentToConstVariableBeforeItsDeclaration(declaration, assignment source.Span, kind VariableKind)
	AssignmentToUndeclaredVariable(assignment source.Span)
	RedeclarationOfGlobalVariable(redeclaration source.Span)
	RedeclarationOfVariable(redeclaration, originalDeclaration source.Span)
	UseOfUndeclaredVariable(name source.Span)
	VariableUsedBeforeDeclaration(use, declaration source.Span)

	// CLI diagnostic (spec.md §6 "external collaborator").
	UnrecognizedOption(option string)
}
