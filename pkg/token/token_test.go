package token

import "testing"

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		ILLEGAL:  "ILLEGAL",
		EOF:      "EOF",
		IDENT:    "IDENT",
		NUMBER:   "NUMBER",
		STRING:   "STRING",
		KEYWORD:  "KEYWORD",
		OPERATOR: "OPERATOR",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func TestLookupIdent(t *testing.T) {
	if LookupIdent("function") != KEYWORD {
		t.Error("expected 'function' to be a keyword")
	}
	if LookupIdent("myVar") != IDENT {
		t.Error("expected 'myVar' to be an identifier")
	}
	if LookupIdent("async") != KEYWORD {
		t.Error("'async' must be a keyword per the KEYWORDS set")
	}
}

func TestKeywordsSetSize(t *testing.T) {
	// Guards against accidental additions/removals to the exact contract set.
	const want = 64
	if got := len(KEYWORDS); got != want {
		t.Errorf("len(KEYWORDS) = %d, want %d", got, want)
	}
}

func TestOperatorsLongestMatchOrder(t *testing.T) {
	lastLen := 4
	for _, op := range OPERATORS {
		if len(op) > lastLen {
			t.Fatalf("OPERATORS not in longest-first order at %q", op)
		}
		lastLen = len(op)
	}
}

func TestPositionString(t *testing.T) {
	p := Position{Line: 3, Column: 7}
	if got := p.String(); got != "3:7" {
		t.Errorf("Position.String() = %q, want 3:7", got)
	}
}

func TestBuiltinsContainsUndefinedAlias(t *testing.T) {
	found := false
	for _, b := range Builtins {
		if b == "undefined" {
			found = true
		}
	}
	if !found {
		t.Error("Builtins must contain 'undefined' so the keyword-literal and builtin resolve to the same symbol")
	}
}
