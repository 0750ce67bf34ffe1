package dfa

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"
	"unicode"
)

// Accept kinds produced by the rule set. Single-character operators and
// delimiters use their own spelling as the kind, so only the named classes
// of lexemes need constants here.
const (
	AcceptIdentifier = "identifier"
	AcceptInteger    = "integer"
	AcceptReal       = "real"
	AcceptQuoted     = "quoted"
	AcceptComment    = "comment"
	AcceptWhitespace = "whitespace"
)

// Error reasons carried by LexError. The lexer maps these onto Invalid tokens.
const (
	ErrInvalidCharacter    = "invalid character"
	ErrUnterminatedString  = "unterminated string"
	ErrUnterminatedComment = "unterminated comment"
)

// Class is an input-character class. Every rune maps to exactly one class;
// the rule set keys its transitions on class names.
type Class int

const (
	ClassLetter Class = iota
	ClassDigit
	ClassUnderscore
	ClassQuote
	ClassSpace
	ClassLBrace
	ClassRBrace
	ClassLParen
	ClassRParen
	ClassLBracket
	ClassRBracket
	ClassStar
	ClassPlus
	ClassMinus
	ClassSlash
	ClassLess
	ClassGreater
	ClassEqual
	ClassColon
	ClassDot
	ClassSemicolon
	ClassComma
	ClassOther

	classCount
)

var classNames = map[string]Class{
	"letter":     ClassLetter,
	"digit":      ClassDigit,
	"underscore": ClassUnderscore,
	"quote":      ClassQuote,
	"space":      ClassSpace,
	"lbrace":     ClassLBrace,
	"rbrace":     ClassRBrace,
	"lparen":     ClassLParen,
	"rparen":     ClassRParen,
	"lbracket":   ClassLBracket,
	"rbracket":   ClassRBracket,
	"star":       ClassStar,
	"plus":       ClassPlus,
	"minus":      ClassMinus,
	"slash":      ClassSlash,
	"less":       ClassLess,
	"greater":    ClassGreater,
	"equal":      ClassEqual,
	"colon":      ClassColon,
	"dot":        ClassDot,
	"semicolon":  ClassSemicolon,
	"comma":      ClassComma,
	"other":      ClassOther,
}

// Classify maps a rune to its input class.
func Classify(char rune) Class {
	switch char {
	case '_':
		return ClassUnderscore
	case '\'':
		return ClassQuote
	case '{':
		return ClassLBrace
	case '}':
		return ClassRBrace
	case '(':
		return ClassLParen
	case ')':
		return ClassRParen
	case '[':
		return ClassLBracket
	case ']':
		return ClassRBracket
	case '*':
		return ClassStar
	case '+':
		return ClassPlus
	case '-':
		return ClassMinus
	case '/':
		return ClassSlash
	case '<':
		return ClassLess
	case '>':
		return ClassGreater
	case '=':
		return ClassEqual
	case ':':
		return ClassColon
	case '.':
		return ClassDot
	case ';':
		return ClassSemicolon
	case ',':
		return ClassComma
	}

	switch {
	case unicode.IsLetter(char):
		return ClassLetter
	case unicode.IsDigit(char):
		return ClassDigit
	case unicode.IsSpace(char):
		return ClassSpace
	}

	return ClassOther
}

// ruleSet is the raw declarative form of the automaton, as stored in
// rules.json. It is compiled into a Table once and never touched again.
type ruleSet struct {
	Start  string `json:"start"`
	States map[string]struct {
		Accept string `json:"accept"`
		Error  string `json:"error"`
	} `json:"states"`
	Transitions map[string]map[string]string `json:"transitions"`
}

// Table is the compiled, immutable automaton: a dense transition matrix
// indexed by (state id, class), plus per-state accept kinds and error
// reasons. Safe for concurrent use, it is never mutated after Load.
type Table struct {
	start  int
	accept []string
	reason []string
	trans  [][]int
}

//go:embed rules.json
var rulesFS embed.FS

var (
	rulesOnce sync.Once
	rulesTab  *Table
	rulesErr  error
)

// Rules returns the process-wide table compiled from the embedded rule set.
// The table is built on first use and shared by every lexer afterwards.
func Rules() *Table {
	rulesOnce.Do(func() {
		data, err := rulesFS.ReadFile("rules.json")
		if err != nil {
			rulesErr = err
			return
		}
		rulesTab, rulesErr = Load(data)
	})
	if rulesErr != nil {
		panic(fmt.Sprintf("dfa: embedded rule set is broken: %v", rulesErr))
	}
	return rulesTab
}

// Load compiles a declarative rule set into a transition table.
func Load(data []byte) (*Table, error) {
	var rules ruleSet
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("dfa: decoding rule set: %w", err)
	}

	if _, ok := rules.States[rules.Start]; !ok {
		return nil, fmt.Errorf("dfa: start state %q is not declared", rules.Start)
	}

	ids := make(map[string]int, len(rules.States))
	names := make([]string, 0, len(rules.States))
	for name := range rules.States {
		ids[name] = len(names)
		names = append(names, name)
	}

	table := &Table{
		start:  ids[rules.Start],
		accept: make([]string, len(names)),
		reason: make([]string, len(names)),
		trans:  make([][]int, len(names)),
	}

	for name, state := range rules.States {
		id := ids[name]
		table.accept[id] = state.Accept
		table.reason[id] = state.Error

		row := make([]int, classCount)
		for cls := range row {
			row[cls] = -1
		}
		table.trans[id] = row
	}

	for from, edges := range rules.Transitions {
		fromID, ok := ids[from]
		if !ok {
			return nil, fmt.Errorf("dfa: transition from undeclared state %q", from)
		}

		// The "any" wildcard fills every class first, then explicit
		// classes override it.
		if to, ok := edges["any"]; ok {
			toID, ok := ids[to]
			if !ok {
				return nil, fmt.Errorf("dfa: transition %q -> undeclared state %q", from, to)
			}
			for cls := range table.trans[fromID] {
				table.trans[fromID][cls] = toID
			}
		}

		for className, to := range edges {
			if className == "any" {
				continue
			}
			cls, ok := classNames[className]
			if !ok {
				return nil, fmt.Errorf("dfa: unknown character class %q in state %q", className, from)
			}
			toID, ok := ids[to]
			if !ok {
				return nil, fmt.Errorf("dfa: transition %q -> undeclared state %q", from, to)
			}
			table.trans[fromID][cls] = toID
		}
	}

	return table, nil
}
