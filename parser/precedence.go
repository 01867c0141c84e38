package parser

import "github.com/vegerot/quick-lint-js/lexer"

// binding power encoding grounded on T14Raptor-go-fAST/parser/precedence.go:
// left-associative operators get an even power, right-associative operators
// get power+1 (odd), and a recursive-descent call asks for the minimum power
// it will accept by XOR-ing the associativity bit back in. This lets one
// table double as both "can this operator continue the current expression"
// and "should the right operand itself be parsed with this same operator
// eligible again" without a second associativity switch at each call site.
const (
	precNone = iota * 2
	precAssignment
	precConditional
	precNullish
	precLogicalOr
	precLogicalAnd
	precBitwiseOr
	precBitwiseXor
	precBitwiseAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
	precExponent
)

// rightAssoc marks an operator as right-associative by setting the low bit,
// matching the teacher's encoding.
const rightAssoc = 1

func binaryPrecedence(k lexer.Kind) (power int, ok bool) {
	switch k {
	case lexer.KindPipePipe:
		return precLogicalOr, true
	case lexer.KindAmpAmp:
		return precLogicalAnd, true
	case lexer.KindQuestionQuestion:
		return precNullish, true
	case Kind('|'):
		return precBitwiseOr, true
	case Kind('^'):
		return precBitwiseXor, true
	case Kind('&'):
		return precBitwiseAnd, true
	case lexer.KindEqualEqual, lexer.KindBangEqual, lexer.KindEqualEqualEqual, lexer.KindBangEqualEqual:
		return precEquality, true
	case Kind('<'), Kind('>'), lexer.KindLessEqual, lexer.KindGreaterEqual, lexer.KindKwInstanceof, lexer.KindKwIn:
		return precRelational, true
	case lexer.KindLessLess, lexer.KindGreaterGreater, lexer.KindGreaterGreaterGreater:
		return precShift, true
	case Kind('+'), Kind('-'):
		return precAdditive, true
	case Kind('*'), Kind('/'), Kind('%'):
		return precMultiplicative, true
	case lexer.KindStarStar:
		return precExponent + rightAssoc, true
	default:
		return 0, false
	}
}

func isAssignmentOperator(k lexer.Kind) bool {
	switch k {
	case Kind('='), lexer.KindPlusEqual, lexer.KindMinusEqual, lexer.KindStarEqual, lexer.KindSlashEqual,
		lexer.KindPercentEqual, lexer.KindStarStarEqual, lexer.KindLessLessEqual, lexer.KindGreaterGreaterEqual,
		lexer.KindGreaterGreaterGreaterEq, lexer.KindAmpEqual, lexer.KindPipeEqual, lexer.KindCaretEqual,
		lexer.KindAmpAmpEqual, lexer.KindPipePipeEqual, lexer.KindQuestionQuestionEqual:
		return true
	default:
		return false
	}
}

// Kind is a convenience alias so parser code can write Kind('+') instead of
// spelling out lexer.Kind('+') at every single-character comparison.
type Kind = lexer.Kind
