package parser

import "pascals/lexer"

// Operator precedence levels, lowest binds weakest. Relational operators
// are non-associative: the climb never takes two of them in a row.
const (
	_ int = iota
	LOWEST
	LOGICAL     // and or
	RELATIONAL  // = <> < <= > >=
	SUM         // + -
	PRODUCT     // * / div mod
	PREFIX      // -x, not x
)

// binaryPrecedences keys on the canonical operator tag, so both spellings
// of a word operator land on the same level.
var binaryPrecedences = map[string]int{
	lexer.OpAnd: LOGICAL,
	lexer.OpOr:  LOGICAL,
	"=":         RELATIONAL,
	"<>":        RELATIONAL,
	"<":         RELATIONAL,
	"<=":        RELATIONAL,
	">":         RELATIONAL,
	">=":        RELATIONAL,
	"+":         SUM,
	"-":         SUM,
	"*":         PRODUCT,
	"/":         PRODUCT,
	lexer.OpDiv: PRODUCT,
	lexer.OpMod: PRODUCT,
}

// syncKeywords are the keywords sync stops in front of: each can start a
// declaration or a statement, so parsing can pick up cleanly there.
var syncKeywords = map[string]bool{
	lexer.KwBegin:     true,
	lexer.KwEnd:       true,
	lexer.KwIf:        true,
	lexer.KwWhile:     true,
	lexer.KwFor:       true,
	lexer.KwConst:     true,
	lexer.KwType:      true,
	lexer.KwVar:       true,
	lexer.KwProcedure: true,
	lexer.KwFunction:  true,
}
