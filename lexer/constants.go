package lexer

// Canonical keyword tags. Both language variants of a reserved word map to
// the same tag, so the parser never cares which spelling the source used.
const (
	KwProgram   = "program"
	KwBegin     = "begin"
	KwEnd       = "end"
	KwIf        = "if"
	KwThen      = "then"
	KwElse      = "else"
	KwVar       = "var"
	KwConst     = "const"
	KwType      = "type"
	KwArray     = "array"
	KwOf        = "of"
	KwWhile     = "while"
	KwDo        = "do"
	KwFor       = "for"
	KwTo        = "to"
	KwDownto    = "downto"
	KwProcedure = "procedure"
	KwFunction  = "function"
	KwInteger   = "integer"
	KwReal      = "real"
	KwBoolean   = "boolean"
	KwChar      = "char"
)

// Canonical operator tags for the word-form operators. The symbol operators
// use their own spelling as the tag (":=", "<=", "..", ...).
const (
	OpAnd = "and"
	OpOr  = "or"
	OpNot = "not"
	OpDiv = "div"
	OpMod = "mod"
)

var (
	// Keywords maps every reserved-word spelling, English and Indonesian,
	// to its canonical tag. Lookups are done on the lowercased lexeme.
	Keywords = map[string]string{
		"program":    KwProgram,
		"begin":      KwBegin,
		"mulai":      KwBegin,
		"end":        KwEnd,
		"selesai":    KwEnd,
		"if":         KwIf,
		"jika":       KwIf,
		"then":       KwThen,
		"maka":       KwThen,
		"else":       KwElse,
		"selain_itu": KwElse,
		"var":        KwVar,
		"variabel":   KwVar,
		"const":      KwConst,
		"konstanta":  KwConst,
		"type":       KwType,
		"tipe":       KwType,
		"array":      KwArray,
		"larik":      KwArray,
		"of":         KwOf,
		"dari":       KwOf,
		"while":      KwWhile,
		"selama":     KwWhile,
		"do":         KwDo,
		"lakukan":    KwDo,
		"for":        KwFor,
		"untuk":      KwFor,
		"to":         KwTo,
		"ke":         KwTo,
		"downto":     KwDownto,
		"turun_ke":   KwDownto,
		"procedure":  KwProcedure,
		"prosedur":   KwProcedure,
		"function":   KwFunction,
		"fungsi":     KwFunction,
		"integer":    KwInteger,
		"real":       KwReal,
		"boolean":    KwBoolean,
		"char":       KwChar,
	}

	// WordOperators maps word-form operator spellings to their canonical
	// operator tag. These reclassify from identifier after the DFA accepts,
	// exactly like keywords do.
	WordOperators = map[string]string{
		"and":   OpAnd,
		"dan":   OpAnd,
		"or":    OpOr,
		"atau":  OpOr,
		"not":   OpNot,
		"tidak": OpNot,
		"div":   OpDiv,
		"bagi":  OpDiv,
		"mod":   OpMod,
	}

	// Operators is the set of symbol-operator accept kinds coming out of
	// the DFA.
	Operators = map[string]bool{
		":=": true,
		"<=": true,
		">=": true,
		"<>": true,
		"..": true,
		"+":  true,
		"-":  true,
		"*":  true,
		"/":  true,
		"<":  true,
		">":  true,
		"=":  true,
	}

	// Delimiters is the set of delimiter accept kinds coming out of the DFA.
	Delimiters = map[string]bool{
		";": true,
		",": true,
		":": true,
		"(": true,
		")": true,
		"[": true,
		"]": true,
		".": true,
	}
)
