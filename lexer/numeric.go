package lexer

import "github.com/vegerot/quick-lint-js/source"

// scanNumber recognizes decimal, binary, octal, hex, and legacy octal number
// literals, including numeric separators (1_000) and BigInt suffixes (123n),
// per spec.md §4.1. Grounded on
// T14Raptor-go-fAST/parser/scanner/numeric.go's readZero/readNonDecimal
// split, adapted to report typed diagnostics instead of TODO stubs.
func (l *Lexer) scanNumber(begin source.Offset, newline bool) Token {
	if l.byteAt(begin) == '0' && !l.atEOF(begin+1) {
		switch l.byteAt(begin + 1) {
		case 'x', 'X':
			return l.scanRadixNumber(begin, newline, isHexDigit)
		case 'b', 'B':
			return l.scanRadixNumber(begin, newline, isBinaryDigit)
		case 'o', 'O':
			return l.scanRadixNumber(begin, newline, isOctalDigit)
		}
		if isDigit(l.byteAt(begin + 1)) {
			return l.scanLegacyOctalOrDecimal(begin, newline)
		}
	}
	return l.scanDecimalNumber(begin, newline)
}

func isDigit(b byte) bool        { return b >= '0' && b <= '9' }
func isBinaryDigit(b byte) bool  { return b == '0' || b == '1' }
func isOctalDigit(b byte) bool   { return b >= '0' && b <= '7' }

// scanRadixNumber scans 0x/0b/0o prefixed integers, allowing internal `_`
// separators and a trailing `n` BigInt suffix.
func (l *Lexer) scanRadixNumber(begin source.Offset, newline bool, isDigitFn func(byte) bool) Token {
	l.pos = begin + 2
	digitsBegin := l.pos
	lastWasUnderscore := false
	sawDigit := false
	for !l.atEOF(l.pos) {
		b := l.byteAt(l.pos)
		if isDigitFn(b) {
			sawDigit = true
			lastWasUnderscore = false
			l.pos++
			continue
		}
		if b == '_' {
			if lastWasUnderscore || !sawDigit {
				l.reportConsecutiveOrLeadingUnderscore(l.pos)
			}
			lastWasUnderscore = true
			l.pos++
			continue
		}
		break
	}
	if lastWasUnderscore {
		l.sink.NumberLiteralContainsTrailingUnderscores(source.Span{Begin: digitsBegin, End: l.pos})
	}
	if !l.atEOF(l.pos) && l.byteAt(l.pos) == 'n' {
		l.pos++
	}
	end := l.consumeTrailingIdentifierGarbage(begin)
	return Token{Kind: KindNumber, Begin: begin, End: end, HasLeadingNewline: newline}
}

func (l *Lexer) reportConsecutiveOrLeadingUnderscore(pos source.Offset) {
	l.sink.NumberLiteralContainsConsecutiveUnderscores(source.Span{Begin: pos, End: pos + 1})
}

// scanLegacyOctalOrDecimal handles a leading-zero numeral like 0123, which is
// either a legacy octal literal (all digits 0-7) or, if it contains 8/9 or a
// decimal point, a decimal number that begins with a disallowed leading
// zero.
func (l *Lexer) scanLegacyOctalOrDecimal(begin source.Offset, newline bool) Token {
	pos := begin + 1
	allOctal := true
	for !l.atEOF(pos) && isDigit(l.byteAt(pos)) {
		if !isOctalDigit(l.byteAt(pos)) {
			allOctal = false
		}
		pos++
	}
	hasFraction := !l.atEOF(pos) && l.byteAt(pos) == '.'
	hasExponent := !l.atEOF(pos) && (l.byteAt(pos) == 'e' || l.byteAt(pos) == 'E')
	if allOctal && !hasFraction && !hasExponent {
		l.pos = pos
		end := l.consumeTrailingIdentifierGarbage(begin)
		return Token{Kind: KindNumber, Begin: begin, End: end, HasLeadingNewline: newline}
	}
	l.pos = pos
	tok := l.scanDecimalNumberBody(begin, newline)
	if !allOctal {
		l.sink.UnexpectedCharactersInOctalNumber(source.Span{Begin: begin, End: tok.End})
	}
	return tok
}

// scanDecimalNumber scans an ordinary decimal literal (including a leading
// digit) or a BigInt-suffixed decimal integer.
func (l *Lexer) scanDecimalNumber(begin source.Offset, newline bool) Token {
	l.pos = begin
	return l.scanDecimalNumberBody(begin, newline)
}

// scanDecimalNumberBody continues from wherever the integer part scanning
// left l.pos, handling underscores, fraction, exponent, and BigInt suffix.
func (l *Lexer) scanDecimalNumberBody(begin source.Offset, newline bool) Token {
	l.consumeDigitsWithSeparators()

	isBigInt := false
	if !l.atEOF(l.pos) && l.byteAt(l.pos) == '.' {
		l.pos++
		l.consumeDigitsWithSeparators()
	} else if !l.atEOF(l.pos) && l.byteAt(l.pos) == 'n' {
		isBigInt = true
		l.pos++
	}

	if !l.atEOF(l.pos) && (l.byteAt(l.pos) == 'e' || l.byteAt(l.pos) == 'E') {
		expBegin := l.pos
		l.pos++
		if !l.atEOF(l.pos) && (l.byteAt(l.pos) == '+' || l.byteAt(l.pos) == '-') {
			l.pos++
		}
		l.consumeDigitsWithSeparators()
		if isBigInt {
			l.sink.BigIntLiteralContainsExponent(source.Span{Begin: expBegin, End: l.pos})
		}
	}

	if isBigInt && begin+1 < l.pos && l.byteAt(begin) == '0' {
		l.sink.BigIntLiteralContainsLeadingZero(source.Span{Begin: begin, End: l.pos})
	}

	end := l.consumeTrailingIdentifierGarbage(begin)
	return Token{Kind: KindNumber, Begin: begin, End: end, HasLeadingNewline: newline}
}

func (l *Lexer) consumeDigitsWithSeparators() {
	lastWasUnderscore := false
	sawDigit := false
	for !l.atEOF(l.pos) {
		b := l.byteAt(l.pos)
		if isDigit(b) {
			sawDigit = true
			lastWasUnderscore = false
			l.pos++
			continue
		}
		if b == '_' {
			if lastWasUnderscore || !sawDigit {
				l.reportConsecutiveOrLeadingUnderscore(l.pos)
			}
			lastWasUnderscore = true
			l.pos++
			continue
		}
		break
	}
	if lastWasUnderscore {
		l.sink.NumberLiteralContainsTrailingUnderscores(source.Span{Begin: l.pos - 1, End: l.pos})
	}
}

// consumeTrailingIdentifierGarbage absorbs any identifier-like characters
// immediately following a number literal (e.g. `123abc`), reporting them as
// unexpected rather than silently splitting into two tokens.
func (l *Lexer) consumeTrailingIdentifierGarbage(begin source.Offset) source.Offset {
	garbageBegin := l.pos
	for !l.atEOF(l.pos) {
		r, size := l.peekRune(l.pos)
		if !isIdentifierPart(r) && r != '\\' {
			break
		}
		l.pos += source.Offset(size)
	}
	if l.pos != garbageBegin {
		l.sink.UnexpectedCharactersInNumber(source.Span{Begin: garbageBegin, End: l.pos})
	}
	return l.pos
}
