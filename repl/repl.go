package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/peterh/liner"

	"pascals/lexer"
	"pascals/parser"
)

const prompt = ">>> "

// historyFile is where the REPL keeps its line history between sessions.
func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pascals_history")
}

// Start runs the interactive loop: each line is scanned and parsed, and
// either the tree or the diagnostics come back. A line starting with the
// program keyword parses as a whole program, anything else as a single
// statement.
func Start(out io.Writer) {
	rl := liner.NewLiner()
	defer rl.Close()
	rl.SetCtrlCAborts(true)

	if path := historyFile(); path != "" {
		if f, err := os.Open(path); err == nil {
			rl.ReadHistory(f)
			f.Close()
		}
	}

	for {
		input, err := rl.Prompt(prompt)
		if err == liner.ErrPromptAborted || err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintln(out, err)
			break
		}
		if input == "" {
			continue
		}
		rl.AppendHistory(input)

		tokens := lexer.NewLexer("", input).Tokenize()
		for _, tok := range tokens {
			if tok.Kind == lexer.TokenInvalid {
				fmt.Fprintf(out, "\033[1;90mrepl:%d:%d:\033[0m ERROR: %s: %q\n",
					tok.Pos.Line, tok.Pos.Col, tok.Tag, tok.Lexeme)
			}
		}

		p := parser.NewParser(tokens, "repl")
		var tree fmt.Stringer
		if len(tokens) > 0 && tokens[0].IsKeyword(lexer.KwProgram) {
			tree = p.Parse()
		} else if stmt := p.ParseStatement(); stmt != nil {
			tree = stmt
		}

		if len(p.Errors) != 0 {
			for _, err := range p.Errors {
				fmt.Fprintln(out, err)
			}
			continue
		}
		if tree != nil {
			fmt.Fprintln(out, tree.String())
		}
	}

	if path := historyFile(); path != "" {
		if f, err := os.Create(path); err == nil {
			rl.WriteHistory(f)
			f.Close()
		}
	}
}
