package lexer

import (
	"testing"

	"github.com/openclassroom/jslite/pkg/token"
)

func allTokens(src string) []token.Token {
	l := New(src)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks
}

func TestEmptySourceYieldsOnlyEOF(t *testing.T) {
	toks := allTokens("")
	if len(toks) != 1 || toks[0].Kind != token.EOF {
		t.Fatalf("expected single EOF token, got %v", toks)
	}
}

func TestKeywordVsIdentifier(t *testing.T) {
	toks := allTokens("let x = foo;")
	kinds := []token.Kind{token.KEYWORD, token.IDENT, token.OPERATOR, token.IDENT, token.PUNCTUATOR, token.EOF}
	if len(toks) != len(kinds) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(kinds), toks)
	}
	for i, k := range kinds {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %s, want %s (%q)", i, toks[i].Kind, k, toks[i].Lexeme)
		}
	}
}

func TestNumberForms(t *testing.T) {
	cases := []string{"123", "3.14", "1e10", "1.5e-3", "0xFF", "0b1010"}
	for _, src := range cases {
		toks := allTokens(src)
		if len(toks) != 2 || toks[0].Kind != token.NUMBER || toks[0].Lexeme != src {
			t.Errorf("readNumber(%q) = %v", src, toks)
		}
	}
}

func TestStringEscapes(t *testing.T) {
	toks := allTokens(`"a\nb\tc\\d\"e"`)
	if len(toks) != 2 || toks[0].Kind != token.STRING {
		t.Fatalf("unexpected tokens: %v", toks)
	}
	want := "\"a\nb\tc\\d\"e\""
	if toks[0].Lexeme != want {
		t.Errorf("got %q, want %q", toks[0].Lexeme, want)
	}
}

func TestUnterminatedStringIsLexError(t *testing.T) {
	l := New(`"abc`)
	tok := l.NextToken()
	if tok.Kind != token.STRING {
		t.Fatalf("expected STRING kind even when unterminated, got %s", tok.Kind)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("expected exactly one lex error, got %d", len(l.Errors()))
	}
	next := l.NextToken()
	if next.Kind != token.EOF {
		t.Errorf("expected EOF immediately after unterminated string, got %s", next.Kind)
	}
}

func TestTemplateLiteralPreservesInterpolationVerbatim(t *testing.T) {
	toks := allTokens("`hi ${1 + 2}!`")
	if len(toks) != 2 || toks[0].Kind != token.TEMPLATE {
		t.Fatalf("unexpected tokens: %v", toks)
	}
	if toks[0].Lexeme != "`hi ${1 + 2}!`" {
		t.Errorf("got %q", toks[0].Lexeme)
	}
}

func TestLongestMatchOperators(t *testing.T) {
	cases := map[string]string{
		"===": "===", "!==": "!==", "**=": "**=", "==": "==", "=": "=",
		">>>": ">>>", "&&": "&&", "=>": "=>",
	}
	for src, want := range cases {
		toks := allTokens(src)
		if len(toks) != 2 || toks[0].Lexeme != want {
			t.Errorf("longest-match(%q) = %v, want %q", src, toks, want)
		}
	}
}

func TestPunctuators(t *testing.T) {
	toks := allTokens("...?.")
	if len(toks) != 3 || toks[0].Lexeme != "..." || toks[1].Lexeme != "?." {
		t.Fatalf("got %v", toks)
	}
}

func TestUnexpectedCharacterAdvancesAndReportsError(t *testing.T) {
	l := New("@")
	tok := l.NextToken()
	if tok.Kind != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %s", tok.Kind)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("expected one lex error, got %d", len(l.Errors()))
	}
	next := l.NextToken()
	if next.Kind != token.EOF {
		t.Errorf("expected forward progress to EOF, got %s", next.Kind)
	}
}

func TestLineAndColumnTracking(t *testing.T) {
	toks := allTokens("let x\n= 1;")
	if toks[0].Start.Line != 1 || toks[0].Start.Column != 1 {
		t.Errorf("let: %v", toks[0].Start)
	}
	if toks[2].Start.Line != 2 || toks[2].Start.Column != 1 {
		t.Errorf("=: %v", toks[2].Start)
	}
}

func TestLineCommentSkippedFromParsingButEmitted(t *testing.T) {
	toks := allTokens("// hi\nlet")
	if toks[0].Kind != token.COMMENT || toks[1].Kind != token.KEYWORD {
		t.Fatalf("got %v", toks)
	}
}

func TestBlockCommentUnterminated(t *testing.T) {
	l := New("/* abc")
	tok := l.NextToken()
	if tok.Kind != token.COMMENT {
		t.Fatalf("expected COMMENT kind even when unterminated, got %s", tok.Kind)
	}
	if len(l.Errors()) != 1 {
		t.Errorf("expected one lex error for unterminated block comment, got %d", len(l.Errors()))
	}
}

func TestPositionMonotonicity(t *testing.T) {
	toks := allTokens("const PI = 3.14; let x = PI + 1;")
	for i := 1; i < len(toks); i++ {
		prev, cur := toks[i-1], toks[i]
		if cur.Kind == token.EOF {
			continue
		}
		if cur.Start.Line < prev.Start.Line || (cur.Start.Line == prev.Start.Line && cur.Start.Column < prev.Start.Column) {
			t.Fatalf("position went backwards between %v and %v", prev, cur)
		}
	}
}

func TestConstDeclarationTokenCount(t *testing.T) {
	toks := allTokens("const PI = 3.14;")
	nonEOF := 0
	for _, tok := range toks {
		if tok.Kind != token.EOF {
			nonEOF++
		}
	}
	if nonEOF != 5 {
		t.Errorf("token_count = %d, want 5", nonEOF)
	}
}
