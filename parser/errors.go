package parser

import (
	"fmt"

	"pascals/lexer"
)

// Error kinds a parse can produce. UnclosedBlock and MalformedDeclaration
// are refinements of the generic unexpected-token case, kept separate so
// tooling can group diagnostics.
const (
	UnexpectedToken      = "unexpected token"
	UnclosedBlock        = "unclosed block"
	MalformedDeclaration = "malformed declaration"
)

// SyntaxError is one recorded diagnostic. Found is the offending token,
// Expected a human description of what would have been legal there.
type SyntaxError struct {
	FilePath string
	Kind     string
	Expected string
	Found    lexer.Token
}

func (se *SyntaxError) Error() string {
	found := se.Found.Lexeme
	if se.Found.Kind == lexer.TokenEOF {
		found = "end of file"
	}
	return fmt.Sprintf("\033[1;90m%s:%d:%d:\033[0m ERROR: %s: expected %s, found %q",
		se.FilePath, se.Found.Pos.Line, se.Found.Pos.Col, se.Kind, se.Expected, found)
}
