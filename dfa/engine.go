package dfa

import "fmt"

// Result is a successful match: the accept kind of the longest lexeme found
// and its length in runes.
type Result struct {
	Kind   string
	Length int
}

// LexError reports a failed match. Length is the number of runes the engine
// consumed before giving up, so the caller can skip past the bad region.
type LexError struct {
	Reason string
	Length int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexical error: %s", e.Reason)
}

// Run simulates the automaton over source starting at offset start, applying
// maximal munch: it keeps transitioning while an edge exists, remembers the
// most recent accepting state, and falls back to it when a longer path dies.
// With no recorded accept it fails, classifying the failure by the state the
// simulation got stuck in.
func (t *Table) Run(source []rune, start int) (Result, *LexError) {
	state := t.start
	cur := start

	bestKind := ""
	bestLen := 0

	for cur < len(source) {
		next := t.trans[state][Classify(source[cur])]
		if next < 0 {
			break
		}
		state = next
		cur++

		if t.accept[state] != "" {
			bestKind = t.accept[state]
			bestLen = cur - start
		}
	}

	// End of input inside an error-flagged state (an open comment or string)
	// is a lexical error even when a shorter accept was recorded earlier:
	// backtracking out of "(* ..." to the bare "(" would silently re-lex the
	// comment body as code.
	atEOF := cur >= len(source)
	if bestLen > 0 && !(atEOF && t.reason[state] != "") {
		return Result{Kind: bestKind, Length: bestLen}, nil
	}

	reason := t.reason[state]
	if reason == "" {
		reason = ErrInvalidCharacter
	}

	consumed := cur - start
	if consumed < 1 {
		consumed = 1
	}
	return Result{}, &LexError{Reason: reason, Length: consumed}
}
