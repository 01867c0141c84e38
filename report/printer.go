// Package report renders a diag.Collector's findings for a terminal,
// turning byte-offset spans back into line:column positions and painting
// severity with github.com/charmbracelet/lipgloss the way the rest of the
// ambient CLI stack (cobra, zap) is drawn from the corpus rather than
// hand-rolled (spec.md §6 "external collaborator: a renderer that turns
// diagnostics into human-readable text").
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/vegerot/quick-lint-js/diag"
	"github.com/vegerot/quick-lint-js/source"
)

var (
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	locationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	noteStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// Printer formats diagnostics against a single file's contents.
type Printer struct {
	path     string
	buf      *source.Buffer
	noColor  bool
	lineMap  []source.Offset // byte offset of each line's first character
}

// NewPrinter builds the line-offset table once so every diagnostic's
// position can be looked up in O(log n) instead of rescanning the file.
func NewPrinter(path string, buf *source.Buffer, noColor bool) *Printer {
	p := &Printer{path: path, buf: buf, noColor: noColor}
	p.lineMap = append(p.lineMap, 0)
	for i := source.Offset(0); i < buf.End(); i++ {
		if buf.At(i) == '\n' {
			p.lineMap = append(p.lineMap, i+1)
		}
	}
	return p
}

// lineColumn converts a byte offset to a 1-based (line, column) pair via
// binary search over lineMap.
func (p *Printer) lineColumn(pos source.Offset) (line, column int) {
	lo, hi := 0, len(p.lineMap)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if p.lineMap[mid] <= pos {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo + 1, int(pos-p.lineMap[lo]) + 1
}

// Print writes every diagnostic in c, in order, to w. Each line is
// "path:line:col: error: message", with a dim secondary line for diagnostics that
// carry a note span, matching quick-lint-js's own CLI output shape.
func (p *Printer) Print(w io.Writer, c *diag.Collector) {
	for _, d := range c.Diagnostics {
		p.printOne(w, d)
	}
}

func (p *Printer) printOne(w io.Writer, d diag.Diagnostic) {
	line, col := p.lineColumn(d.Primary.Begin)
	location := fmt.Sprintf("%s:%d:%d", p.path, line, col)
	message := messageFor(d)

	if p.noColor {
		fmt.Fprintf(w, "%s: error: %s\n", location, message)
	} else {
		fmt.Fprintf(w, "%s: %s %s\n", locationStyle.Render(location), errorStyle.Render("error:"), message)
	}

	if !d.Secondary.IsEmpty() {
		noteLine, noteCol := p.lineColumn(d.Secondary.Begin)
		noteLocation := fmt.Sprintf("%s:%d:%d", p.path, noteLine, noteCol)
		note := "see here"
		if p.noColor {
			fmt.Fprintf(w, "%s: note: %s\n", noteLocation, note)
		} else {
			fmt.Fprintf(w, "%s: %s\n", locationStyle.Render(noteLocation), noteStyle.Render("note: "+note))
		}
	}
}

// messageFor renders a human-readable sentence for d's kind. This is the
// one place in the package allowed to turn a typed diagnostic into free
// text: Sink/Collector never do, keeping that conversion isolated to the
// presentation layer (spec.md §7).
func messageFor(d diag.Diagnostic) string {
	switch d.Kind {
	case diag.KindUnclosedBlockComment:
		return "unclosed block comment"
	case diag.KindUnclosedString:
		return "unclosed string literal"
	case diag.KindUnclosedTemplate:
		return "unclosed template literal"
	case diag.KindUnclosedRegexp:
		return "unclosed regexp literal"
	case diag.KindUnexpectedCharactersInNumber:
		return "unexpected characters in number literal"
	case diag.KindUnexpectedCharactersInOctalNumber:
		return "unexpected characters in octal literal"
	case diag.KindBigIntLiteralContainsDecimalPoint:
		return "BigInt literal contains decimal point"
	case diag.KindBigIntLiteralContainsExponent:
		return "BigInt literal contains exponent"
	case diag.KindBigIntLiteralContainsLeadingZero:
		return "BigInt literal contains leading zero"
	case diag.KindNumberLiteralContainsConsecutiveUnderscores:
		return "number literal contains consecutive underscores"
	case diag.KindNumberLiteralContainsTrailingUnderscores:
		return "number literal contains trailing underscore(s)"
	case diag.KindUnexpectedControlCharacter:
		return "unexpected control character"
	case diag.KindUnexpectedAtCharacter:
		return "unexpected '@'"
	case diag.KindUnexpectedBackslashInIdentifier:
		return "unexpected '\\' in identifier"
	case diag.KindUnclosedIdentifierEscapeSequence:
		return "unclosed identifier escape sequence"
	case diag.KindEscapedCharacterDisallowedInIdentifiers:
		return "escaped character is not allowed in identifiers"
	case diag.KindEscapedCodePointInIdentifierOutOfRange:
		return "escaped code point in identifier is out of range"
	case diag.KindKeywordsCannotContainEscapeSequences:
		return "keywords cannot contain escape sequences"
	case diag.KindExpectedHexDigitsInUnicodeEscape:
		return "expected hex digits in Unicode escape sequence"
	case diag.KindRegexpLiteralFlagsCannotContainUnicodeEscapes:
		return "regexp literal flags cannot contain Unicode escapes"
	case diag.KindInvalidCharacter:
		return "invalid character"
	case diag.KindMissingOperandForOperator:
		return "missing operand for operator"
	case diag.KindMissingSemicolonAfterExpression:
		return "missing semicolon after expression"
	case diag.KindUnmatchedParenthesis:
		return "unmatched parenthesis"
	case diag.KindInvalidExpressionLeftOfAssignment:
		return "invalid expression left of assignment"
	case diag.KindMissingCommaBetweenObjectLiteralEntries:
		return "missing comma between object literal entries"
	case diag.KindStrayCommaInLetStatement:
		return "stray comma in let statement"
	case diag.KindInvalidBindingInLetStatement:
		return "invalid binding in let statement"
	case diag.KindLetWithNoBindings:
		return "let statement with no bindings"
	case diag.KindUnexpectedIdentifier:
		return "unexpected identifier"
	case diag.KindUnexpectedHashCharacter:
		return "unexpected '#'"
	case diag.KindCannotDeclareVariableNamedLetWithLet:
		return "cannot declare variable named 'let' with 'let'"
	case diag.KindCannotDeclareClassNamedLet:
		return "cannot declare class named 'let'"
	case diag.KindExpectedExpressionBeforeNewline:
		return "expected expression before newline"
	case diag.KindExpectedExpressionBeforeSemicolon:
		return "expected expression before semicolon"
	case diag.KindAssignmentBeforeVariableDeclaration:
		return "assignment before variable declaration"
	case diag.KindAssignmentToConstGlobalVariable:
		return "assignment to constant global variable"
	case diag.KindAssignmentToConstVariable:
		return fmt.Sprintf("assignment to const %s", d.VarKind)
	case diag.KindAssignmentToConstVariableBeforeItsDeclaration:
		return fmt.Sprintf("assignment to const %s before its declaration", d.VarKind)
	case diag.KindAssignmentToUndeclaredVariable:
		return "assignment to undeclared variable"
	case diag.KindRedeclarationOfGlobalVariable:
		return "redeclaration of global variable"
	case diag.KindRedeclarationOfVariable:
		return "redeclaration of variable"
	case diag.KindUseOfUndeclaredVariable:
		return "use of undeclared variable"
	case diag.KindVariableUsedBeforeDeclaration:
		return "variable used before declaration"
	case diag.KindUnrecognizedOption:
		return fmt.Sprintf("unrecognized option: %s", d.Option)
	default:
		return string(d.Kind)
	}
}
