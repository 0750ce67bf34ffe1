package dfa

import (
	"testing"

	"github.com/go-test/deep"
)

func run(t *testing.T, source string) (Result, *LexError) {
	t.Helper()
	return Rules().Run([]rune(source), 0)
}

func TestMaximalMunchOperators(t *testing.T) {
	cases := map[string]Result{
		"<=":  {Kind: "<=", Length: 2},
		">=":  {Kind: ">=", Length: 2},
		"<>":  {Kind: "<>", Length: 2},
		":=":  {Kind: ":=", Length: 2},
		"..":  {Kind: "..", Length: 2},
		"<":   {Kind: "<", Length: 1},
		":":   {Kind: ":", Length: 1},
		"<=x": {Kind: "<=", Length: 2},
	}

	for source, expected := range cases {
		res, err := run(t, source)
		if err != nil {
			t.Errorf("%q: unexpected error %v", source, err)
			continue
		}
		if diff := deep.Equal(res, expected); diff != nil {
			t.Errorf("%q: %v", source, diff)
		}
	}
}

func TestBacktrackOnIntegerDot(t *testing.T) {
	// `1..10` must come out as integer, range operator, integer: the run
	// that sees `1.` goes past the recorded integer accept and backs up.
	source := []rune("1..10")

	expected := []Result{
		{Kind: AcceptInteger, Length: 1},
		{Kind: "..", Length: 2},
		{Kind: AcceptInteger, Length: 2},
	}

	offset := 0
	for _, want := range expected {
		res, err := Rules().Run(source, offset)
		if err != nil {
			t.Fatalf("offset %d: unexpected error %v", offset, err)
		}
		if diff := deep.Equal(res, want); diff != nil {
			t.Errorf("offset %d: %v", offset, diff)
		}
		offset += res.Length
	}
}

func TestRealLiteral(t *testing.T) {
	res, err := run(t, "3.14")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if diff := deep.Equal(res, Result{Kind: AcceptReal, Length: 4}); diff != nil {
		t.Error(diff)
	}
}

func TestComments(t *testing.T) {
	cases := map[string]Result{
		"{ a comment }":        {Kind: AcceptComment, Length: 13},
		"(* star *x *)":        {Kind: AcceptComment, Length: 13},
		"(* x *)":              {Kind: AcceptComment, Length: 7},
		"{ spans\ntwo lines }": {Kind: AcceptComment, Length: 19},
	}

	for source, expected := range cases {
		res, err := run(t, source)
		if err != nil {
			t.Errorf("%q: unexpected error %v", source, err)
			continue
		}
		if diff := deep.Equal(res, expected); diff != nil {
			t.Errorf("%q: %v", source, diff)
		}
	}
}

func TestParenWithoutStarIsDelimiter(t *testing.T) {
	res, err := run(t, "(a")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if diff := deep.Equal(res, Result{Kind: "(", Length: 1}); diff != nil {
		t.Error(diff)
	}
}

func TestUnterminatedBraceComment(t *testing.T) {
	_, err := run(t, "{ no end")
	if err == nil {
		t.Fatal("expected an error")
	}
	if diff := deep.Equal(err, &LexError{Reason: ErrUnterminatedComment, Length: 8}); diff != nil {
		t.Error(diff)
	}
}

func TestUnterminatedParenComment(t *testing.T) {
	// the `(` accept recorded before entering the comment must not win:
	// the whole consumed span reports as one unterminated comment.
	_, err := run(t, "(* x")
	if err == nil {
		t.Fatal("expected an error")
	}
	if diff := deep.Equal(err, &LexError{Reason: ErrUnterminatedComment, Length: 4}); diff != nil {
		t.Error(diff)
	}
}

func TestUnterminatedString(t *testing.T) {
	_, err := run(t, "'abc")
	if err == nil {
		t.Fatal("expected an error")
	}
	if diff := deep.Equal(err, &LexError{Reason: ErrUnterminatedString, Length: 4}); diff != nil {
		t.Error(diff)
	}
}

func TestQuotedString(t *testing.T) {
	res, err := run(t, "'ab'")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if diff := deep.Equal(res, Result{Kind: AcceptQuoted, Length: 4}); diff != nil {
		t.Error(diff)
	}
}

func TestInvalidCharacter(t *testing.T) {
	_, err := run(t, "@")
	if err == nil {
		t.Fatal("expected an error")
	}
	if diff := deep.Equal(err, &LexError{Reason: ErrInvalidCharacter, Length: 1}); diff != nil {
		t.Error(diff)
	}
}

func TestLoadRejectsBrokenRuleSets(t *testing.T) {
	cases := map[string]string{
		"bad start":     `{"start":"missing","states":{"a":{"accept":""}},"transitions":{}}`,
		"unknown class": `{"start":"a","states":{"a":{"accept":""}},"transitions":{"a":{"blorp":"a"}}}`,
		"unknown state": `{"start":"a","states":{"a":{"accept":""}},"transitions":{"a":{"digit":"b"}}}`,
	}

	for name, data := range cases {
		if _, err := Load([]byte(data)); err == nil {
			t.Errorf("%s: expected Load to fail", name)
		}
	}
}
