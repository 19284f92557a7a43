// Package jslite is the public entry point of the lexer/parser/semantic
// analyzer pipeline: a caller hands it a source string and gets back the
// structured result of one stage (or all three), matching the external
// interface contract of the IDE that embeds it.
package jslite

import (
	"github.com/openclassroom/jslite/internal/diag"
	"github.com/openclassroom/jslite/internal/lexer"
	"github.com/openclassroom/jslite/internal/parser"
	"github.com/openclassroom/jslite/internal/report"
	"github.com/openclassroom/jslite/internal/semantic"
	"github.com/openclassroom/jslite/pkg/ast"
	"github.com/openclassroom/jslite/pkg/token"
)

// PositionedDiagnostic is the wire shape of one error/warning entry in
// LexResult/SemanticResult: {message, line, column, node}.
type PositionedDiagnostic struct {
	Message string
	Line    int
	Column  int
	Node    string
}

func toPositioned(ds []diag.Diagnostic) []PositionedDiagnostic {
	out := make([]PositionedDiagnostic, len(ds))
	for i, d := range ds {
		out[i] = PositionedDiagnostic{
			Message: d.Message,
			Line:    d.Pos.Line,
			Column:  d.Pos.Column,
			Node:    d.Node,
		}
	}
	return out
}

// LexResult is the lex-analysis entry point's output structure.
type LexResult struct {
	LexicalReport   string
	SyntacticReport string
	LexErrorCount   int
	SyntaxErrorCount int
	TokenCount      int // excludes EOF
	AST             *ast.Program // never nil: parsing recovers from every syntax error
}

// Lex tokenizes and parses source, returning both the lexical and syntactic
// reports together: the IDE's "Lex" action runs both lower stages at once.
func Lex(source string) LexResult {
	l := lexer.New(source)
	toks := tokenize(l)

	p := parser.New(source)
	prog := p.ParseProgram()

	// parser.New prepends the same lexer's diagnostics to its own bag before
	// adding syntax errors; the lexer is deterministic (P5), so the prefix
	// lengths match and a plain subtraction recovers the syntax-only count.
	syntaxErrorCount := len(p.Errors()) - len(l.Errors())

	return LexResult{
		LexicalReport:    report.Lexical(toks, l.Errors()),
		SyntacticReport:  report.Syntactic(prog, p.Errors()),
		LexErrorCount:    len(l.Errors()),
		SyntaxErrorCount: syntaxErrorCount,
		TokenCount:       len(toks),
		AST:              prog,
	}
}

func tokenize(l *lexer.Lexer) []token.Token {
	var toks []token.Token
	for {
		t := l.NextToken()
		if t.Kind == token.EOF {
			break
		}
		toks = append(toks, t)
	}
	return toks
}

// SemanticResult is the semantic-analysis entry point's output structure.
type SemanticResult struct {
	Report       string
	ErrorCount   int
	WarningCount int
	Errors       []PositionedDiagnostic
	Warnings     []PositionedDiagnostic
}

// AnalyzeSemantic re-parses source with the real parser, never a string-
// matching mock, then runs the analyzer over the resulting AST.
func AnalyzeSemantic(source string) SemanticResult {
	return AnalyzeSemanticWithOptions(source)
}

// AnalyzeSemanticWithOptions is AnalyzeSemantic with analyzer configuration
// attached, e.g. extra preloaded builtins or suppressed warning categories
// sourced from a .jslite.yaml config file.
func AnalyzeSemanticWithOptions(source string, opts ...semantic.Option) SemanticResult {
	p := parser.New(source)
	prog := p.ParseProgram()

	a := semantic.New(opts...)
	a.Analyze(prog)

	errs := append([]diag.Diagnostic{}, p.Errors()...)
	errs = append(errs, a.Errors()...)

	return SemanticResult{
		Report:       report.Semantic(a),
		ErrorCount:   len(errs),
		WarningCount: len(a.Warnings()),
		Errors:       toPositioned(errs),
		Warnings:     toPositioned(a.Warnings()),
	}
}
