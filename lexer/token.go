package lexer

import "github.com/vegerot/quick-lint-js/source"

// Kind is a token's lexical category. Following quick-lint-js's own
// token_type encoding (and spec.md §3 "kind is drawn from ... single
// character punctuators identified by their ASCII code"), a single-character
// punctuator's Kind *is* its ASCII byte value -- `'+'`, `'('`, `'}'`, and so
// on are all valid Kind values in [0, 127]. Everything else (multi-character
// punctuators, literals, identifiers, keywords, end-of-file) is assigned a
// value starting at 256 so the two ranges never collide.
type Kind int32

const firstSyntheticKind Kind = 256

const (
	KindInvalid Kind = firstSyntheticKind + iota
	KindEOF

	// Multi-character punctuators.
	KindEqualEqual               // ==
	KindEqualEqualEqual          // ===
	KindBangEqual                // !=
	KindBangEqualEqual           // !==
	KindLessEqual                // <=
	KindGreaterEqual             // >=
	KindLessLess                 // <<
	KindGreaterGreater           // >>
	KindGreaterGreaterGreater    // >>>
	KindLessLessEqual            // <<=
	KindGreaterGreaterEqual      // >>=
	KindGreaterGreaterGreaterEq  // >>>=
	KindPlusEqual                // +=
	KindMinusEqual               // -=
	KindStarEqual                // *=
	KindStarStar                 // **
	KindStarStarEqual            // **=
	KindSlashEqual                // /=
	KindPercentEqual              // %=
	KindAmpEqual                  // &=
	KindPipeEqual                 // |=
	KindCaretEqual                // ^=
	KindAmpAmp                    // &&
	KindPipePipe                  // ||
	KindAmpAmpEqual               // &&=
	KindPipePipeEqual             // ||=
	KindQuestionQuestion          // ??
	KindQuestionQuestionEqual     // ??=
	KindQuestionDot               // ?.
	KindPlusPlus                  // ++
	KindMinusMinus                // --
	KindEqualGreater              // =>
	KindDotDotDot                 // ...

	// Literals.
	KindNumber
	KindString
	KindRegExp
	KindTemplateComplete // `...`
	KindTemplateHead     // `...${
	KindTemplateMiddle   // }...${
	KindTemplateTail     // }...`

	KindIdentifier
	KindPrivateIdentifier

	// Reserved words. Contextual keywords (get, set, async, from, of, as,
	// static, yield, await, let) are lexed as KindIdentifier; the parser
	// reinterprets them contextually, per spec.md §4.1.
	KindKwBreak
	KindKwCase
	KindKwCatch
	KindKwClass
	KindKwConst
	KindKwContinue
	KindKwDebugger
	KindKwDefault
	KindKwDelete
	KindKwDo
	KindKwElse
	KindKwExport
	KindKwExtends
	KindKwFalse
	KindKwFinally
	KindKwFor
	KindKwFunction
	KindKwIf
	KindKwImport
	KindKwIn
	KindKwInstanceof
	KindKwNew
	KindKwNull
	KindKwReturn
	KindKwSuper
	KindKwSwitch
	KindKwThis
	KindKwThrow
	KindKwTrue
	KindKwTry
	KindKwTypeof
	KindKwVar
	KindKwVoid
	KindKwWhile
	KindKwWith
)

// Token is the lexer's single unit of output: a kind plus the span it
// covers, plus the ASI/identifier-normalization metadata spec.md §3
// specifies.
type Token struct {
	Kind  Kind
	Begin source.Offset
	End   source.Offset

	// HasLeadingNewline records whether whitespace skipped before this
	// token contained a line terminator (spec.md §3), needed for ASI and
	// to forbid a line break before postfix ++/--.
	HasLeadingNewline bool

	// NormalizedIdentifierEnd is only meaningful when Kind is
	// KindIdentifier, KindPrivateIdentifier, or a keyword: it is the end of
	// the decoded bytes after identifier-escape normalization (spec.md
	// §4.1). When the identifier had no escapes, it equals End.
	NormalizedIdentifierEnd source.Offset
}

// Span returns the token's (possibly normalized) source span.
func (t Token) Span() source.Span { return source.Span{Begin: t.Begin, End: t.End} }

// IsEOF reports whether t is the synthetic end-of-file token.
func (t Token) IsEOF() bool { return t.Kind == KindEOF }

// Identifier is a lexed identifier: its span plus where its normalized
// (escape-decoded) text ends, per spec.md §3.
type Identifier struct {
	Span          source.Span
	NormalizedEnd source.Offset
}

// NormalizedSpan returns the sub-span [Span.Begin, NormalizedEnd) covering
// the decoded identifier text.
func (id Identifier) NormalizedSpan() source.Span {
	return source.Span{Begin: id.Span.Begin, End: id.NormalizedEnd}
}
