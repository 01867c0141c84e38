package lexer

import "github.com/vegerot/quick-lint-js/source"

// scanTemplate scans a template literal starting at its opening backtick. It
// produces either a complete template (no substitutions) or a template head,
// stopping just after the `${` that begins the first substitution; the
// parser then parses the substitution expression and calls SkipInTemplate to
// resume scanning the template's continuation (spec.md §4.1).
func (l *Lexer) scanTemplate(begin source.Offset, newline bool) Token {
	l.pos = begin + 1
	return l.scanTemplatePart(begin, newline, KindTemplateComplete, KindTemplateHead)
}

// SkipInTemplate re-lexes the current token (which must be the `}` closing a
// template substitution) as the continuation of a template literal,
// producing a template middle or template tail token. This is how the
// lexer and parser cooperate to handle `${...}` nesting without the lexer
// needing to track bracket depth itself (spec.md §4.1).
func (l *Lexer) SkipInTemplate(templateBegin source.Offset) Token {
	begin := l.tok.Begin // the '}' token's position
	l.pos = begin + 1
	tok := l.scanTemplatePart(begin, false, KindTemplateTail, KindTemplateMiddle)
	l.prevTokEnd = begin
	l.tok = tok
	return tok
}

// scanTemplatePart scans template characters from l.pos (just past the
// opening backtick or closing brace) up to either a closing backtick
// (producing closeKind) or a `${` (producing headKind), handling escapes and
// ${'s nested only insofar as it must not stop at a brace that isn't
// preceded by `$`.
func (l *Lexer) scanTemplatePart(begin source.Offset, newline bool, closeKind, headKind Kind) Token {
	for {
		if l.atEOF(l.pos) {
			l.sink.UnclosedTemplate(source.Span{Begin: begin, End: l.pos})
			return Token{Kind: closeKind, Begin: begin, End: l.pos, HasLeadingNewline: newline}
		}
		b := l.byteAt(l.pos)
		switch b {
		case '`':
			l.pos++
			return Token{Kind: closeKind, Begin: begin, End: l.pos, HasLeadingNewline: newline}
		case '\\':
			l.pos++
			if !l.atEOF(l.pos) {
				l.pos++
			}
		case '$':
			if !l.atEOF(l.pos+1) && l.byteAt(l.pos+1) == '{' {
				l.pos += 2
				return Token{Kind: headKind, Begin: begin, End: l.pos, HasLeadingNewline: newline}
			}
			l.pos++
		default:
			l.pos++
		}
	}
}
