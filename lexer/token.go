package lexer

type TokenKind = string

const (
	TokenIdentifier TokenKind = "identifier"
	TokenIntLit     TokenKind = "integer literal"
	TokenRealLit    TokenKind = "real literal"
	TokenStringLit  TokenKind = "string literal"
	TokenCharLit    TokenKind = "char literal"
	TokenKeyword    TokenKind = "keyword"
	TokenOperator   TokenKind = "operator"
	TokenDelimiter  TokenKind = "delimiter"
	TokenInvalid    TokenKind = "invalid"
	TokenEOF        TokenKind = "end of file"
)

// Reasons carried in the Tag of an Invalid token.
const (
	ReasonInvalidCharacter    = "invalid character"
	ReasonUnterminatedString  = "unterminated string"
	ReasonUnterminatedComment = "unterminated comment"
)

// Position locates a token in the source: 1-based line and column, 0-based
// rune offset. Immutable once stamped on a token.
type Position struct {
	Line   int
	Col    int
	Offset int
}

// Token is one lexeme classified by the scanner. Tag holds the canonical
// form for keywords, operators and delimiters (both `jika` and `if` carry
// the tag "if"), or the error reason for Invalid tokens; it is empty for
// identifiers and literals.
type Token struct {
	Kind   TokenKind
	Tag    string
	Lexeme string
	Pos    Position
}

// IsKeyword reports whether the token is the keyword with the given
// canonical tag, in either language variant.
func (t Token) IsKeyword(tag string) bool {
	return t.Kind == TokenKeyword && t.Tag == tag
}

// IsOperator reports whether the token is the operator with the given
// canonical tag.
func (t Token) IsOperator(tag string) bool {
	return t.Kind == TokenOperator && t.Tag == tag
}

// IsDelimiter reports whether the token is the given delimiter.
func (t Token) IsDelimiter(tag string) bool {
	return t.Kind == TokenDelimiter && t.Tag == tag
}
