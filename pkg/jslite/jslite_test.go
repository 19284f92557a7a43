package jslite

import (
	"strings"
	"testing"
)

func TestLexTokenCount(t *testing.T) {
	r := Lex("const PI = 3.14;")
	if r.TokenCount != 5 {
		t.Fatalf("expected token_count 5, got %d", r.TokenCount)
	}
	if r.LexErrorCount != 0 || r.SyntaxErrorCount != 0 {
		t.Fatalf("expected no errors, got lex=%d syntax=%d", r.LexErrorCount, r.SyntaxErrorCount)
	}
	if r.AST == nil || len(r.AST.Statements) != 1 {
		t.Fatalf("expected a 1-statement AST, got %+v", r.AST)
	}
}

func TestAnalyzeSemanticUnusedConst(t *testing.T) {
	r := AnalyzeSemantic("const PI = 3.14;")
	if r.ErrorCount != 0 {
		t.Fatalf("expected 0 errors, got %d: %+v", r.ErrorCount, r.Errors)
	}
	if r.WarningCount != 1 || r.Warnings[0].Message != "Variable 'PI' is declared but never used" {
		t.Fatalf("expected exactly 1 unused warning, got %+v", r.Warnings)
	}
}

func TestAnalyzeSemanticConstWithoutInitializerIsSemanticError(t *testing.T) {
	r := AnalyzeSemantic("const K;")
	if r.ErrorCount != 1 || r.Errors[0].Message != "Missing initializer in const declaration 'K'" {
		t.Fatalf("expected exactly 1 missing-initializer error, got %+v", r.Errors)
	}
	if !strings.Contains(r.Report, "Missing initializer in const declaration 'K'") {
		t.Fatalf("expected the rendered report to include the error, got:\n%s", r.Report)
	}
	if !strings.Contains(r.Report, "Errores: 1") {
		t.Fatalf("expected the report's error count to match ErrorCount, got:\n%s", r.Report)
	}
}

func TestAnalyzeSemanticWiresRealParser(t *testing.T) {
	// An undeclared-call error can only surface if the analyzer resolves
	// against a real parsed Program rather than a regex-based mock AST.
	r := AnalyzeSemantic("foo();")
	if r.ErrorCount != 1 || r.Errors[0].Message != "'foo' is not defined" {
		t.Fatalf("expected exactly 1 undefined error, got %+v", r.Errors)
	}
}

func TestAnalyzeSemanticIsDeterministic(t *testing.T) {
	src := "let x = 1; if (x) { console.trace(x); }"
	a := AnalyzeSemantic(src)
	b := AnalyzeSemantic(src)
	if len(a.Warnings) != len(b.Warnings) {
		t.Fatalf("expected identical warning counts across runs, got %d vs %d", len(a.Warnings), len(b.Warnings))
	}
	for i := range a.Warnings {
		if a.Warnings[i] != b.Warnings[i] {
			t.Fatalf("expected byte-identical diagnostics, diverged at %d: %+v vs %+v", i, a.Warnings[i], b.Warnings[i])
		}
	}
}
