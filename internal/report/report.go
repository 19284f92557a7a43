// Package report renders the Spanish-language human-readable text the IDE
// displays verbatim for each analysis stage: lexical, syntactic and
// semantic. It is a pure formatter — it owns no analysis state, it only
// reads the diagnostics, tokens, AST and scope tree produced upstream.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kr/pretty"
	"github.com/maruel/natural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/openclassroom/jslite/internal/diag"
	"github.com/openclassroom/jslite/internal/semantic"
	"github.com/openclassroom/jslite/pkg/ast"
	"github.com/openclassroom/jslite/pkg/token"
)

const tokenTableLimit = 50

// printer formats counts with Spanish-locale thousands grouping in the
// statistics footer of every report section.
func printer() *message.Printer {
	return message.NewPrinter(language.Spanish)
}

// Stat is one "label: value" line of a report's statistics footer.
type Stat struct {
	Label string
	Value int
}

func footer(stats []Stat) string {
	p := printer()
	var sb strings.Builder
	sb.WriteString("--- Estadísticas ---\n")
	for _, s := range stats {
		sb.WriteString(p.Sprintf("%s: %d\n", s.Label, s.Value))
	}
	return sb.String()
}

func writeNumbered(sb *strings.Builder, label string, ds []diag.Diagnostic) {
	if len(ds) == 0 {
		return
	}
	sb.WriteString(label)
	sb.WriteString(":\n")
	for i, d := range ds {
		sb.WriteString(d.Numbered(i + 1))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}

// Lexical renders the `=== ANÁLISIS LÉXICO ===` section: counts, enumerated
// lex errors, a token table capped at the first 50 entries, and a
// statistics footer.
func Lexical(tokens []token.Token, errs []diag.Diagnostic) string {
	var sb strings.Builder
	sb.WriteString("=== ANÁLISIS LÉXICO ===\n\n")
	writeNumbered(&sb, "Errores léxicos", errs)

	sb.WriteString("Tabla de tokens:\n")
	limit := len(tokens)
	if limit > tokenTableLimit {
		limit = tokenTableLimit
	}
	for _, t := range tokens[:limit] {
		fmt.Fprintf(&sb, "  %s @ %s\n", t.String(), t.Start.String())
	}
	if len(tokens) > tokenTableLimit {
		fmt.Fprintf(&sb, "... y %d tokens más\n", len(tokens)-tokenTableLimit)
	}
	sb.WriteString("\n")

	sb.WriteString(footer([]Stat{
		{"Tokens totales", len(tokens)},
		{"Errores léxicos", len(errs)},
	}))
	return sb.String()
}

// Syntactic renders the `=== ANÁLISIS SINTÁCTICO ===` section: counts,
// enumerated syntax errors, an AST pretty-print, and a statistics footer.
func Syntactic(prog *ast.Program, errs []diag.Diagnostic) string {
	var sb strings.Builder
	sb.WriteString("=== ANÁLISIS SINTÁCTICO ===\n\n")
	writeNumbered(&sb, "Errores sintácticos", errs)

	sb.WriteString("AST:\n")
	sb.WriteString(pretty.Sprint(prog))
	sb.WriteString("\n\n")

	sb.WriteString(footer([]Stat{
		{"Sentencias de nivel superior", len(prog.Statements)},
		{"Errores sintácticos", len(errs)},
	}))
	return sb.String()
}

// Semantic renders the `=== ANÁLISIS SEMÁNTICO ===` section: counts,
// enumerated errors and warnings, a symbol-table dump, and a statistics
// footer.
func Semantic(a *semantic.Analyzer) string {
	errs := a.Errors()
	warns := a.Warnings()

	var sb strings.Builder
	sb.WriteString("=== ANÁLISIS SEMÁNTICO ===\n\n")
	writeNumbered(&sb, "Errores", errs)
	writeNumbered(&sb, "Advertencias", warns)

	sb.WriteString("Tabla de símbolos:\n")
	sb.WriteString(symbolTableDump(a.GlobalScope()))
	sb.WriteString("\n")

	sb.WriteString(footer([]Stat{
		{"Errores", len(errs)},
		{"Advertencias", len(warns)},
	}))
	return sb.String()
}

// symbolTableDump renders the scope tree depth-first, one indented section
// per scope, so that two symbols sharing a name in separate scopes (e.g. a
// parameter `x` in two different functions) both appear instead of one
// colliding with the other in a flat name-keyed map. Within a scope, its own
// symbols are sorted in natural order by name (maruel/natural) purely for a
// stable, human-friendly reading order — internal resolution is unaffected
// and still walks the scope chain in declaration order.
func symbolTableDump(global *semantic.Scope) string {
	var sb strings.Builder
	dumpScope(&sb, global, 0)
	return sb.String()
}

func dumpScope(sb *strings.Builder, s *semantic.Scope, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(sb, "%s%s:\n", indent, scopeLabel(s, depth))

	syms := s.Symbols()
	sort.Slice(syms, func(i, j int) bool { return natural.Less(syms[i].Name, syms[j].Name) })
	for _, sym := range syms {
		fmt.Fprintf(sb, "%s  %s: %s (initialized=%v, used=%v, builtin=%v)\n",
			indent, sym.Name, sym.Kind, sym.Initialized, sym.Used || sym.Assigned, sym.Builtin)
	}

	for _, child := range s.Children() {
		dumpScope(sb, child, depth+1)
	}
}

func scopeLabel(s *semantic.Scope, depth int) string {
	switch s.Kind {
	case semantic.GlobalScope:
		return "global"
	case semantic.FunctionScope:
		return fmt.Sprintf("function scope (depth %d)", depth)
	default:
		return fmt.Sprintf("block scope (depth %d)", depth)
	}
}
