package lexer

import (
	"unicode/utf8"

	"github.com/nukilabs/unicodeid"
)

// asciiStart/asciiContinue are a fast ASCII path for the overwhelmingly
// common case; non-ASCII code points fall back to unicodeid's Unicode
// property tables. Grounded on
// T14Raptor-go-fAST/parser/scanner/identifier.go, which uses the same
// ASCII-table-plus-unicodeid-fallback split.
var asciiStart, asciiContinue [128]bool

func init() {
	for i := 0; i < 128; i++ {
		if i >= 'a' && i <= 'z' || i >= 'A' && i <= 'Z' || i == '$' || i == '_' {
			asciiStart[i] = true
			asciiContinue[i] = true
		}
		if i >= '0' && i <= '9' {
			asciiContinue[i] = true
		}
	}
}

func isIdentifierStart(r rune) bool {
	if r < 0 {
		return false
	}
	if r < utf8.RuneSelf {
		return asciiStart[r]
	}
	return unicodeid.IsIDStartUnicode(r)
}

func isIdentifierPart(r rune) bool {
	if r < 0 {
		return false
	}
	if r < utf8.RuneSelf {
		return asciiContinue[r]
	}
	return unicodeid.IsIDContinueUnicode(r)
}
