package lexer

// keywords maps reserved words to their dedicated Kind. Names not present
// here (including contextual keywords like "async", "get", "set", "of",
// "from", "as", "static", "let", "yield", "await") lex as KindIdentifier;
// the parser reinterprets them based on surrounding context (spec.md
// §4.1/§4.2), matching quick-lint-js's own treatment of contextual
// keywords.
var keywords = map[string]Kind{
	"break":      KindKwBreak,
	"case":       KindKwCase,
	"catch":      KindKwCatch,
	"class":      KindKwClass,
	"const":      KindKwConst,
	"continue":   KindKwContinue,
	"debugger":   KindKwDebugger,
	"default":    KindKwDefault,
	"delete":     KindKwDelete,
	"do":         KindKwDo,
	"else":       KindKwElse,
	"export":     KindKwExport,
	"extends":    KindKwExtends,
	"false":      KindKwFalse,
	"finally":    KindKwFinally,
	"for":        KindKwFor,
	"function":   KindKwFunction,
	"if":         KindKwIf,
	"import":     KindKwImport,
	"in":         KindKwIn,
	"instanceof": KindKwInstanceof,
	"new":        KindKwNew,
	"null":       KindKwNull,
	"return":     KindKwReturn,
	"super":      KindKwSuper,
	"switch":     KindKwSwitch,
	"this":       KindKwThis,
	"throw":      KindKwThrow,
	"true":       KindKwTrue,
	"try":        KindKwTry,
	"typeof":     KindKwTypeof,
	"var":        KindKwVar,
	"void":       KindKwVoid,
	"while":      KindKwWhile,
	"with":       KindKwWith,
}

// matchKeyword looks normalized identifier text up in the keyword table,
// returning (kind, true) for a reserved word and (KindIdentifier, false)
// otherwise.
func matchKeyword(normalized string) (Kind, bool) {
	if k, ok := keywords[normalized]; ok {
		return k, true
	}
	return KindIdentifier, false
}
