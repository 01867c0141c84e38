package lexer

import "github.com/vegerot/quick-lint-js/source"

// ReparseAsRegExp re-lexes the current token -- which must begin with '/' or
// '/=' as scanned by scanPunctuator -- as a regular expression literal
// instead. The parser calls this only in grammar positions where a regex is
// legal and a division operator is not (spec.md §4.1).
func (l *Lexer) ReparseAsRegExp() Token {
	begin := l.tok.Begin
	l.pos = begin + 1
	inClass := false
	for {
		if l.atEOF(l.pos) {
			l.sink.UnclosedRegexp(source.Span{Begin: begin, End: l.pos})
			l.tok = Token{Kind: KindRegExp, Begin: begin, End: l.pos}
			return l.tok
		}
		b := l.byteAt(l.pos)
		switch b {
		case '\\':
			l.pos++
			if !l.atEOF(l.pos) {
				l.pos++
			}
		case '[':
			inClass = true
			l.pos++
		case ']':
			inClass = false
			l.pos++
		case '/':
			if inClass {
				l.pos++
				continue
			}
			l.pos++
			l.scanRegexpFlags()
			l.tok = Token{Kind: KindRegExp, Begin: begin, End: l.pos}
			return l.tok
		case '\n', '\r':
			l.sink.UnclosedRegexp(source.Span{Begin: begin, End: l.pos})
			l.tok = Token{Kind: KindRegExp, Begin: begin, End: l.pos}
			return l.tok
		default:
			l.pos++
		}
	}
}

// scanRegexpFlags consumes trailing identifier-like flag characters (g, i,
// m, u, ...), reporting an escape inside the flags section since \u escapes
// are never legal there even though they are legal inside identifiers.
func (l *Lexer) scanRegexpFlags() {
	for !l.atEOF(l.pos) {
		b := l.byteAt(l.pos)
		if b == '\\' {
			escBegin := l.pos
			l.pos++
			if !l.atEOF(l.pos) && l.byteAt(l.pos) == 'u' {
				l.pos++
				for !l.atEOF(l.pos) && isHexDigit(l.byteAt(l.pos)) {
					l.pos++
				}
			}
			l.sink.RegexpLiteralFlagsCannotContainUnicodeEscapes(source.Span{Begin: escBegin, End: l.pos})
			continue
		}
		r, size := l.peekRune(l.pos)
		if !isIdentifierPart(r) {
			break
		}
		l.pos += source.Offset(size)
	}
}
