package report

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/openclassroom/jslite/internal/lexer"
	"github.com/openclassroom/jslite/internal/parser"
	"github.com/openclassroom/jslite/internal/semantic"
	"github.com/openclassroom/jslite/pkg/token"
)

func lexAll(src string) []token.Token {
	l := lexer.New(src)
	var toks []token.Token
	for {
		t := l.NextToken()
		toks = append(toks, t)
		if t.Kind == token.EOF {
			break
		}
	}
	return toks
}

func TestLexicalReportSnapshot(t *testing.T) {
	toks := lexAll("const PI = 3.14;")
	snaps.MatchSnapshot(t, "lexical_const_pi", Lexical(toks, nil))
}

func TestLexicalReportCapsTokenTable(t *testing.T) {
	var src string
	for i := 0; i < 60; i++ {
		src += "x;\n"
	}
	toks := lexAll(src)
	out := Lexical(toks, nil)
	if !strings.Contains(out, "tokens más") {
		t.Errorf("expected the token table to note overflow, got:\n%s", out)
	}
}

func TestSyntacticReportSnapshot(t *testing.T) {
	p := parser.New("let x = 1 + 2;")
	prog := p.ParseProgram()
	snaps.MatchSnapshot(t, "syntactic_let_sum", Syntactic(prog, p.Errors()))
}

func TestSemanticReportKeepsSameNameSymbolsInDifferentScopes(t *testing.T) {
	p := parser.New("function f(x) { return x; } function g(x) { return x; }")
	prog := p.ParseProgram()
	a := semantic.New()
	a.Analyze(prog)
	out := Semantic(a)
	if strings.Count(out, "x: parameter") != 2 {
		t.Fatalf("expected both functions' 'x' parameter to appear, got:\n%s", out)
	}
}

func TestSemanticReportSnapshot(t *testing.T) {
	p := parser.New("const PI = 3.14;")
	prog := p.ParseProgram()
	a := semantic.New()
	a.Analyze(prog)
	snaps.MatchSnapshot(t, "semantic_const_pi", Semantic(a))
}
