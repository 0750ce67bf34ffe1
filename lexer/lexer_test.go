package lexer

import (
	"testing"

	"github.com/go-test/deep"
)

func TestBilingualKeywords(t *testing.T) {
	tokens := NewLexer("", "jika if").Tokenize()

	expected := []Token{
		{Kind: TokenKeyword, Tag: KwIf, Lexeme: "jika", Pos: Position{Line: 1, Col: 1, Offset: 0}},
		{Kind: TokenKeyword, Tag: KwIf, Lexeme: "if", Pos: Position{Line: 1, Col: 6, Offset: 5}},
		{Kind: TokenEOF, Pos: Position{Line: 1, Col: 8, Offset: 7}},
	}

	if diff := deep.Equal(tokens, expected); diff != nil {
		t.Error(diff)
	}
}

func TestKeywordLookupIsCaseInsensitive(t *testing.T) {
	tokens := NewLexer("", "MULAI Begin").Tokenize()

	for _, tok := range tokens[:2] {
		if tok.Kind != TokenKeyword || tok.Tag != KwBegin {
			t.Errorf("%q: got kind %q tag %q, want keyword %q", tok.Lexeme, tok.Kind, tok.Tag, KwBegin)
		}
	}
}

func TestKeywordPrefixStaysIdentifier(t *testing.T) {
	tokens := NewLexer("", "ifx").Tokenize()

	if tokens[0].Kind != TokenIdentifier {
		t.Errorf("got kind %q, want identifier", tokens[0].Kind)
	}
	if tokens[0].Tag != "" {
		t.Errorf("identifier carries tag %q, want none", tokens[0].Tag)
	}
}

func TestMaximalMunchLessOrEqual(t *testing.T) {
	tokens := NewLexer("", "a<=b").Tokenize()

	expected := []Token{
		{Kind: TokenIdentifier, Lexeme: "a", Pos: Position{Line: 1, Col: 1, Offset: 0}},
		{Kind: TokenOperator, Tag: "<=", Lexeme: "<=", Pos: Position{Line: 1, Col: 2, Offset: 1}},
		{Kind: TokenIdentifier, Lexeme: "b", Pos: Position{Line: 1, Col: 4, Offset: 3}},
		{Kind: TokenEOF, Pos: Position{Line: 1, Col: 5, Offset: 4}},
	}

	if diff := deep.Equal(tokens, expected); diff != nil {
		t.Error(diff)
	}
}

func TestWordOperators(t *testing.T) {
	tokens := NewLexer("", "dan and atau or tidak not bagi div mod").Tokenize()

	expectedTags := []string{OpAnd, OpAnd, OpOr, OpOr, OpNot, OpNot, OpDiv, OpDiv, OpMod}
	for idx, tag := range expectedTags {
		tok := tokens[idx]
		if tok.Kind != TokenOperator || tok.Tag != tag {
			t.Errorf("%q: got kind %q tag %q, want operator %q", tok.Lexeme, tok.Kind, tok.Tag, tag)
		}
	}
}

func TestSubrangeOperator(t *testing.T) {
	tokens := NewLexer("", "1..10").Tokenize()

	expected := []Token{
		{Kind: TokenIntLit, Lexeme: "1", Pos: Position{Line: 1, Col: 1, Offset: 0}},
		{Kind: TokenOperator, Tag: "..", Lexeme: "..", Pos: Position{Line: 1, Col: 2, Offset: 1}},
		{Kind: TokenIntLit, Lexeme: "10", Pos: Position{Line: 1, Col: 4, Offset: 3}},
		{Kind: TokenEOF, Pos: Position{Line: 1, Col: 6, Offset: 5}},
	}

	if diff := deep.Equal(tokens, expected); diff != nil {
		t.Error(diff)
	}
}

func TestCommentStripping(t *testing.T) {
	tokens := NewLexer("", "{ one\n two }x").Tokenize()

	expected := []Token{
		{Kind: TokenIdentifier, Lexeme: "x", Pos: Position{Line: 2, Col: 7, Offset: 12}},
		{Kind: TokenEOF, Pos: Position{Line: 2, Col: 8, Offset: 13}},
	}

	if diff := deep.Equal(tokens, expected); diff != nil {
		t.Error(diff)
	}
}

func TestUnterminatedCommentSingleInvalid(t *testing.T) {
	tokens := NewLexer("", "begin { oops").Tokenize()

	expected := []Token{
		{Kind: TokenKeyword, Tag: KwBegin, Lexeme: "begin", Pos: Position{Line: 1, Col: 1, Offset: 0}},
		{Kind: TokenInvalid, Tag: ReasonUnterminatedComment, Lexeme: "{ oops", Pos: Position{Line: 1, Col: 7, Offset: 6}},
		{Kind: TokenEOF, Pos: Position{Line: 1, Col: 13, Offset: 12}},
	}

	if diff := deep.Equal(tokens, expected); diff != nil {
		t.Error(diff)
	}
}

func TestUnterminatedParenCommentSingleInvalid(t *testing.T) {
	tokens := NewLexer("", "x := (* gone").Tokenize()

	kinds := []TokenKind{}
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	expectedKinds := []TokenKind{TokenIdentifier, TokenOperator, TokenInvalid, TokenEOF}
	if diff := deep.Equal(kinds, expectedKinds); diff != nil {
		t.Fatal(diff)
	}

	invalid := tokens[2]
	if invalid.Tag != ReasonUnterminatedComment {
		t.Errorf("got reason %q, want %q", invalid.Tag, ReasonUnterminatedComment)
	}
	if invalid.Lexeme != "(* gone" {
		t.Errorf("got lexeme %q, want the whole consumed span", invalid.Lexeme)
	}
}

func TestUnterminatedString(t *testing.T) {
	tokens := NewLexer("", "'abc").Tokenize()

	if tokens[0].Kind != TokenInvalid || tokens[0].Tag != ReasonUnterminatedString {
		t.Errorf("got kind %q tag %q, want invalid/unterminated string", tokens[0].Kind, tokens[0].Tag)
	}
}

func TestInvalidCharacterRecovery(t *testing.T) {
	tokens := NewLexer("", "a @ b").Tokenize()

	expected := []Token{
		{Kind: TokenIdentifier, Lexeme: "a", Pos: Position{Line: 1, Col: 1, Offset: 0}},
		{Kind: TokenInvalid, Tag: ReasonInvalidCharacter, Lexeme: "@", Pos: Position{Line: 1, Col: 3, Offset: 2}},
		{Kind: TokenIdentifier, Lexeme: "b", Pos: Position{Line: 1, Col: 5, Offset: 4}},
		{Kind: TokenEOF, Pos: Position{Line: 1, Col: 6, Offset: 5}},
	}

	if diff := deep.Equal(tokens, expected); diff != nil {
		t.Error(diff)
	}
}

func TestCharVersusStringLiterals(t *testing.T) {
	tokens := NewLexer("", "'a' 'ab' ''").Tokenize()

	expectedKinds := []TokenKind{TokenCharLit, TokenStringLit, TokenStringLit, TokenEOF}
	for idx, kind := range expectedKinds {
		if tokens[idx].Kind != kind {
			t.Errorf("token %d: got kind %q, want %q", idx, tokens[idx].Kind, kind)
		}
	}

	if got := Quoted(tokens[1].Lexeme); got != "ab" {
		t.Errorf("Quoted: got %q, want %q", got, "ab")
	}
}

func TestNumericLiterals(t *testing.T) {
	tokens := NewLexer("", "42 3.14").Tokenize()

	if tokens[0].Kind != TokenIntLit || tokens[0].Lexeme != "42" {
		t.Errorf("got %q %q, want an integer literal", tokens[0].Kind, tokens[0].Lexeme)
	}
	if tokens[1].Kind != TokenRealLit || tokens[1].Lexeme != "3.14" {
		t.Errorf("got %q %q, want a real literal", tokens[1].Kind, tokens[1].Lexeme)
	}
}

func TestPositionRoundTrip(t *testing.T) {
	code := `program demo;
var x: integer; { state }
begin
  x := 10 + 2;
  tulis('hasil', x)
end.`

	source := []rune(code)
	tokens := NewLexer("", code).Tokenize()

	for _, tok := range tokens {
		if tok.Kind == TokenEOF {
			continue
		}
		length := len([]rune(tok.Lexeme))
		slice := string(source[tok.Pos.Offset : tok.Pos.Offset+length])
		if slice != tok.Lexeme {
			t.Errorf("offset %d: source slice %q does not round-trip lexeme %q", tok.Pos.Offset, slice, tok.Lexeme)
		}
	}
}

func TestSingleEOF(t *testing.T) {
	tokens := NewLexer("", "   { just trivia } ").Tokenize()

	if len(tokens) != 1 || tokens[0].Kind != TokenEOF {
		t.Errorf("got %d tokens, want exactly one EOF", len(tokens))
	}
}
