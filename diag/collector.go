package diag

import "github.com/vegerot/quick-lint-js/source"

// Kind names one of the closed set of diagnostic kinds a Collector recorded.
// It exists purely for tests and for the report package's switch over
// Diagnostic.Kind; the Sink interface itself never dispatches on it.
type Kind string

const (
	KindUnclosedBlockComment                         Kind = "unclosed_block_comment"
	KindUnclosedString                               Kind = "unclosed_string_literal"
	KindUnclosedTemplate                             Kind = "unclosed_template"
	KindUnclosedRegexp                                Kind = "unclosed_regexp_literal"
	KindUnexpectedCharactersInNumber                  Kind = "unexpected_characters_in_number"
	KindUnexpectedCharactersInOctalNumber             Kind = "unexpected_characters_in_octal_number"
	KindBigIntLiteralContainsDecimalPoint             Kind = "big_int_literal_contains_decimal_point"
	KindBigIntLiteralContainsExponent                 Kind = "big_int_literal_contains_exponent"
	KindBigIntLiteralContainsLeadingZero              Kind = "big_int_literal_contains_leading_zero"
	KindNumberLiteralContainsConsecutiveUnderscores   Kind = "number_literal_contains_consecutive_underscores"
	KindNumberLiteralContainsTrailingUnderscores      Kind = "number_literal_contains_trailing_underscores"
	KindUnexpectedControlCharacter                    Kind = "unexpected_control_character"
	KindUnexpectedAtCharacter                         Kind = "unexpected_at_character"
	KindUnexpectedBackslashInIdentifier                Kind = "unexpected_backslash_in_identifier"
	KindUnclosedIdentifierEscapeSequence               Kind = "unclosed_identifier_escape_sequence"
	KindEscapedCharacterDisallowedInIdentifiers        Kind = "escaped_character_disallowed_in_identifiers"
	KindEscapedCodePointInIdentifierOutOfRange          Kind = "escaped_code_point_in_identifier_out_of_range"
	KindKeywordsCannotContainEscapeSequences           Kind = "keywords_cannot_contain_escape_sequences"
	KindExpectedHexDigitsInUnicodeEscape               Kind = "expected_hex_digits_in_unicode_escape"
	KindRegexpLiteralFlagsCannotContainUnicodeEscapes   Kind = "regexp_literal_flags_cannot_contain_unicode_escapes"
	KindInvalidCharacter                               Kind = "invalid_character"
	KindMissingOperandForOperator                      Kind = "missing_operand_for_operator"
	KindMissingSemicolonAfterExpression                Kind = "missing_semicolon_after_expression"
	KindUnmatchedParenthesis                           Kind = "unmatched_parenthesis"
	KindInvalidExpressionLeftOfAssignment               Kind = "invalid_expression_left_of_assignment"
	KindMissingCommaBetweenObjectLiteralEntries         Kind = "missing_comma_between_object_literal_entries"
	KindStrayCommaInLetStatement                       Kind = "stray_comma_in_let_statement"
	KindInvalidBindingInLetStatement                   Kind = "invalid_binding_in_let_statement"
	KindLetWithNoBindings                              Kind = "let_with_no_bindings"
	KindUnexpectedIdentifier                           Kind = "unexpected_identifier"
	KindUnexpectedHashCharacter                        Kind = "unexpected_hash_character"
	KindCannotDeclareVariableNamedLetWithLet            Kind = "cannot_declare_variable_named_let_with_let"
	KindCannotDeclareClassNamedLet                     Kind = "cannot_declare_class_named_let"
	KindExpectedExpressionBeforeNewline                 Kind = "expected_expression_before_newline"
	KindExpectedExpressionBeforeSemicolon               Kind = "expected_expression_before_semicolon"
	KindAssignmentBeforeVariableDeclaration             Kind = "assignment_before_variable_declaration"
	KindAssignmentToConstGlobalVariable                 Kind = "assignment_to_const_global_variable"
	KindAssignmentToConstVariable                       Kind = "assignment_to_const_variable"
	KindAssignmentToConstVariableBeforeItsDeclaration    Kind = "assignment_to_const_variable_before_its_declaration"
	KindAssignmentToUndeclaredVariable                  Kind = "assignment_to_undeclared_variable"
	KindRedeclarationOfGlobalVariable                   Kind = "redeclaration_of_global_variable"
	KindRedeclarationOfVariable                         Kind = "redeclaration_of_variable"
	KindUseOfUndeclaredVariable                         Kind = "use_of_undeclared_variable"
	KindVariableUsedBeforeDeclaration                   Kind = "variable_used_before_declaration"
	KindUnrecognizedOption                              Kind = "unrecognized_option"
)

// Diagnostic is a recorded, kind-tagged report. Collector is the in-memory
// Sink implementation used by tests and by cmd/jslint to gather a file's
// diagnostics before handing them to report.Print.
type Diagnostic struct {
	Kind      Kind
	Primary   source.Span
	Secondary source.Span // zero value if unused
	VarKind   VariableKind
	HasVarKind bool
	Option    string // only set for KindUnrecognizedOption
}

// Collector implements Sink by appending every call to a slice, in report
// order (spec.md §5: diagnostics are reported in source order for a given
// scope's exit).
type Collector struct {
	Diagnostics []Diagnostic
}

func (c *Collector) add(d Diagnostic) { c.Diagnostics = append(c.Diagnostics, d) }

func (c *Collector) UnclosedBlockComment(s source.Span) {
	c.add(Diagnostic{Kind: KindUnclosedBlockComment, Primary: s})
}
func (c *Collector) UnclosedString(s source.Span) {
	c.add(Diagnostic{Kind: KindUnclosedString, Primary: s})
}
func (c *Collector) UnclosedTemplate(s source.Span) {
	c.add(Diagnostic{Kind: KindUnclosedTemplate, Primary: s})
}
func (c *Collector) UnclosedRegexp(s source.Span) {
	c.add(Diagnostic{Kind: KindUnclosedRegexp, Primary: s})
}
func (c *Collector) UnexpectedCharactersInNumber(s source.Span) {
	c.add(Diagnostic{Kind: KindUnexpectedCharactersInNumber, Primary: s})
}
func (c *Collector) UnexpectedCharactersInOctalNumber(s source.Span) {
	c.add(Diagnostic{Kind: KindUnexpectedCharactersInOctalNumber, Primary: s})
}
func (c *Collector) BigIntLiteralContainsDecimalPoint(s source.Span) {
	c.add(Diagnostic{Kind: KindBigIntLiteralContainsDecimalPoint, Primary: s})
}
func (c *Collector) BigIntLiteralContainsExponent(s source.Span) {
	c.add(Diagnostic{Kind: KindBigIntLiteralContainsExponent, Primary: s})
}
func (c *Collector) BigIntLiteralContainsLeadingZero(s source.Span) {
	c.add(Diagnostic{Kind: KindBigIntLiteralContainsLeadingZero, Primary: s})
}
func (c *Collector) NumberLiteralContainsConsecutiveUnderscores(s source.Span) {
	c.add(Diagnostic{Kind: KindNumberLiteralContainsConsecutiveUnderscores, Primary: s})
}
func (c *Collector) NumberLiteralContainsTrailingUnderscores(s source.Span) {
	c.add(Diagnostic{Kind: KindNumberLiteralContainsTrailingUnderscores, Primary: s})
}
func (c *Collector) UnexpectedControlCharacter(s source.Span) {
	c.add(Diagnostic{Kind: KindUnexpectedControlCharacter, Primary: s})
}
func (c *Collector) UnexpectedAtCharacter(s source.Span) {
	c.add(Diagnostic{Kind: KindUnexpectedAtCharacter, Primary: s})
}
func (c *Collector) UnexpectedBackslashInIdentifier(s source.Span) {
	c.add(Diagnostic{Kind: KindUnexpectedBackslashInIdentifier, Primary: s})
}
func (c *Collector) UnclosedIdentifierEscapeSequence(s source.Span) {
	c.add(Diagnostic{Kind: KindUnclosedIdentifierEscapeSequence, Primary: s})
}
func (c *Collector) EscapedCharacterDisallowedInIdentifiers(s source.Span) {
	c.add(Diagnostic{Kind: KindEscapedCharacterDisallowedInIdentifiers, Primary: s})
}
func (c *Collector) EscapedCodePointInIdentifierOutOfRange(s source.Span) {
	c.add(Diagnostic{Kind: KindEscapedCodePointInIdentifierOutOfRange, Primary: s})
}
func (c *Collector) KeywordsCannotContainEscapeSequences(s source.Span) {
	c.add(Diagnostic{Kind: KindKeywordsCannotContainEscapeSequences, Primary: s})
}
func (c *Collector) ExpectedHexDigitsInUnicodeEscape(s source.Span) {
	c.add(Diagnostic{Kind: KindExpectedHexDigitsInUnicodeEscape, Primary: s})
}
func (c *Collector) RegexpLiteralFlagsCannotContainUnicodeEscapes(s source.Span) {
	c.add(Diagnostic{Kind: KindRegexpLiteralFlagsCannotContainUnicodeEscapes, Primary: s})
}
func (c *Collector) InvalidCharacter(s source.Span) {
	c.add(Diagnostic{Kind: KindInvalidCharacter, Primary: s})
}
func (c *Collector) MissingOperandForOperator(s source.Span) {
	c.add(Diagnostic{Kind: KindMissingOperandForOperator, Primary: s})
}
func (c *Collector) MissingSemicolonAfterExpression(s source.Span) {
	c.add(Diagnostic{Kind: KindMissingSemicolonAfterExpression, Primary: s})
}
func (c *Collector) UnmatchedParenthesis(s source.Span) {
	c.add(Diagnostic{Kind: KindUnmatchedParenthesis, Primary: s})
}
func (c *Collector) InvalidExpressionLeftOfAssignment(s source.Span) {
	c.add(Diagnostic{Kind: KindInvalidExpressionLeftOfAssignment, Primary: s})
}
func (c *Collector) MissingCommaBetweenObjectLiteralEntries(s source.Span) {
	c.add(Diagnostic{Kind: KindMissingCommaBetweenObjectLiteralEntries, Primary: s})
}
func (c *Collector) StrayCommaInLetStatement(s source.Span) {
	c.add(Diagnostic{Kind: KindStrayCommaInLetStatement, Primary: s})
}
func (c *Collector) InvalidBindingInLetStatement(s source.Span) {
	c.add(Diagnostic{Kind: KindInvalidBindingInLetStatement, Primary: s})
}
func (c *Collector) LetWithNoBindings(s source.Span) {
	c.add(Diagnostic{Kind: KindLetWithNoBindings, Primary: s})
}
func (c *Collector) UnexpectedIdentifier(s source.Span) {
	c.add(Diagnostic{Kind: KindUnexpectedIdentifier, Primary: s})
}
func (c *Collector) UnexpectedHashCharacter(s source.Span) {
	c.add(Diagnostic{Kind: KindUnexpectedHashCharacter, Primary: s})
}
func (c *Collector) CannotDeclareVariableNamedLetWithLet(s source.Span) {
	c.add(Diagnostic{Kind: KindCannotDeclareVariableNamedLetWithLet, Primary: s})
}
func (c *Collector) CannotDeclareClassNamedLet(s source.Span) {
	c.add(Diagnostic{Kind: KindCannotDeclareClassNamedLet, Primary: s})
}
func (c *Collector) ExpectedExpressionBeforeNewline(s source.Span) {
	c.add(Diagnostic{Kind: KindExpectedExpressionBeforeNewline, Primary: s})
}
func (c *Collector) ExpectedExpressionBeforeSemicolon(s source.Span) {
	c.add(Diagnostic{Kind: KindExpectedExpressionBeforeSemicolon, Primary: s})
}
func (c *Collector) AssignmentBeforeVariableDeclaration(assignment, declaration source.Span) {
	c.add(Diagnostic{Kind: KindAssignmentBeforeVariableDeclaration, Primary: assignment, Secondary: declaration})
}
func (c *Collector) AssignmentToConstGlobalVariable(s source.Span) {
	c.add(Diagnostic{Kind: KindAssignmentToConstGlobalVariable, Primary: s})
}
func (c *Collector) AssignmentToConstVariable(declaration, assignment source.Span, kind VariableKind) {
	c.add(Diagnostic{Kind: KindAssignmentToConstVariable, Primary: assignment, Secondary: declaration, VarKind: kind, HasVarKind: true})
}
func (c *Collector) AssignmentToConstVariableBeforeItsDeclaration(declaration, assignment source.Span, kind VariableKind) {
	c.add(Diagnostic{Kind: KindAssignmentToConstVariableBeforeItsDeclaration, Primary: assignment, Secondary: declaration, VarKind: kind, HasVarKind: true})
}
func (c *Collector) AssignmentToUndeclaredVariable(s source.Span) {
	c.add(Diagnostic{Kind: KindAssignmentToUndeclaredVariable, Primary: s})
}
func (c *Collector) RedeclarationOfGlobalVariable(s source.Span) {
	c.add(Diagnostic{Kind: KindRedeclarationOfGlobalVariable, Primary: s})
}
func (c *Collector) RedeclarationOfVariable(redeclaration, originalDeclaration source.Span) {
	c.add(Diagnostic{Kind: KindRedeclarationOfVariable, Primary: redeclaration, Secondary: originalDeclaration})
}
func (c *Collector) UseOfUndeclaredVariable(s source.Span) {
	c.add(Diagnostic{Kind: KindUseOfUndeclaredVariable, Primary: s})
}
func (c *Collector) VariableUsedBeforeDeclaration(use, declaration source.Span) {
	c.add(Diagnostic{Kind: KindVariableUsedBeforeDeclaration, Primary: use, Secondary: declaration})
}
func (c *Collector) UnrecognizedOption(option string) {
	c.add(Diagnostic{Kind: KindUnrecognizedOption, Option: option})
}

var _ Sink = (*Collector)(nil)
