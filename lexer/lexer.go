package lexer

import (
	"strings"

	"pascals/dfa"
)

// Lexer drives the DFA over a character stream and yields tokens one at a
// time. A Lexer is single use: once EOF is produced the sequence is
// exhausted, and rescanning means building a new Lexer from the source.
type Lexer struct {
	stream *Stream
	table  *dfa.Table
	// help mainly in error reporting when lexing multiple files
	FilePath string
	done     bool
}

func NewLexer(filePath string, content string) *Lexer {
	return &Lexer{
		stream:   NewStream(content),
		table:    dfa.Rules(),
		FilePath: filePath,
	}
}

// NextToken scans forward to the next token, discarding whitespace and
// comments. Lexical errors come back as Invalid tokens and scanning
// continues past them; the caller decides whether to care.
func (l *Lexer) NextToken() Token {
	for {
		if l.stream.AtEnd() {
			tok := Token{Kind: TokenEOF, Pos: l.stream.Pos()}
			l.done = true
			return tok
		}

		pos := l.stream.Pos()
		res, err := l.table.Run(l.stream.Source(), pos.Offset)

		if err != nil {
			tok := Token{
				Kind:   TokenInvalid,
				Tag:    err.Reason,
				Lexeme: l.stream.Slice(err.Length),
				Pos:    pos,
			}
			l.stream.Advance(err.Length)
			return tok
		}

		lexeme := l.stream.Slice(res.Length)
		l.stream.Advance(res.Length)

		if res.Kind == dfa.AcceptWhitespace || res.Kind == dfa.AcceptComment {
			continue
		}

		return l.classify(res.Kind, lexeme, pos)
	}
}

// Tokenize scans the whole source, ending with exactly one EOF token.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			break
		}
	}
	return tokens
}

// classify turns a DFA accept kind into a token, applying the post-accept
// reclassification of identifiers into keywords and word operators.
func (l *Lexer) classify(kind string, lexeme string, pos Position) Token {
	tok := Token{Lexeme: lexeme, Pos: pos}

	switch kind {
	case dfa.AcceptIdentifier:
		// reserved-word lookup is case-insensitive
		lower := strings.ToLower(lexeme)
		if tag, isKeyword := Keywords[lower]; isKeyword {
			tok.Kind = TokenKeyword
			tok.Tag = tag
		} else if tag, isOp := WordOperators[lower]; isOp {
			tok.Kind = TokenOperator
			tok.Tag = tag
		} else {
			tok.Kind = TokenIdentifier
		}

	case dfa.AcceptInteger:
		tok.Kind = TokenIntLit

	case dfa.AcceptReal:
		tok.Kind = TokenRealLit

	case dfa.AcceptQuoted:
		// single rune of content is a char literal, anything else a string
		content := []rune(lexeme)
		if len(content) == 3 {
			tok.Kind = TokenCharLit
		} else {
			tok.Kind = TokenStringLit
		}

	default:
		tok.Tag = kind
		if Operators[kind] {
			tok.Kind = TokenOperator
		} else if Delimiters[kind] {
			tok.Kind = TokenDelimiter
		} else {
			tok.Kind = TokenInvalid
			tok.Tag = ReasonInvalidCharacter
		}
	}

	return tok
}

// Quoted strips the delimiters from a string or char literal lexeme.
func Quoted(lexeme string) string {
	content := []rune(lexeme)
	if len(content) < 2 {
		return lexeme
	}
	return string(content[1 : len(content)-1])
}
