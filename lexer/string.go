package lexer

import "github.com/vegerot/quick-lint-js/source"

// scanString scans a single- or double-quoted string literal. Escape
// sequences are not decoded into a separate value (spec.md's data model only
// needs the literal's span for scope analysis purposes; value decoding is a
// parser/evaluator concern this pipeline does not perform). An escape is
// skipped as a backslash plus the next character (or CR LF pair) without
// being validated; only an unterminated string is diagnosed here.
func (l *Lexer) scanString(begin source.Offset, quote byte, newline bool) Token {
	l.pos = begin + 1
	for {
		if l.atEOF(l.pos) {
			l.sink.UnclosedString(source.Span{Begin: begin, End: l.pos})
			return Token{Kind: KindString, Begin: begin, End: l.pos, HasLeadingNewline: newline}
		}
		b := l.byteAt(l.pos)
		switch {
		case b == quote:
			l.pos++
			return Token{Kind: KindString, Begin: begin, End: l.pos, HasLeadingNewline: newline}
		case b == '\\':
			l.pos++
			if l.atEOF(l.pos) {
				continue
			}
			if l.byteAt(l.pos) == '\r' {
				l.pos++
				if !l.atEOF(l.pos) && l.byteAt(l.pos) == '\n' {
					l.pos++
				}
				continue
			}
			l.pos++
		case b == '\n':
			l.sink.UnclosedString(source.Span{Begin: begin, End: l.pos})
			return Token{Kind: KindString, Begin: begin, End: l.pos, HasLeadingNewline: newline}
		default:
			l.pos++
		}
	}
}
