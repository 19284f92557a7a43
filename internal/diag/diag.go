// Package diag provides the shared Diagnostic record used by the lexer,
// parser and semantic analyzer, plus source-context formatting adapted from
// the compiler's original error-reporting idiom.
package diag

import (
	"fmt"
	"strings"

	"github.com/openclassroom/jslite/pkg/token"
)

// Severity distinguishes a program-incorrect Error from a stylistic Warning.
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "error"
}

// Diagnostic is a single error or warning carrying source coordinates and,
// where known, the AST node kind that produced it.
type Diagnostic struct {
	Severity Severity
	Message  string
	Pos      token.Position
	Node     string // originating AST node kind, empty if not applicable
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s at %s: %s", d.Severity, d.Pos, d.Message)
}

// Numbered renders a diagnostic the way report sections enumerate them:
// "N. [Línea L, Columna C] <message>".
func (d Diagnostic) Numbered(n int) string {
	return fmt.Sprintf("%d. [Línea %d, Columna %d] %s", n, d.Pos.Line, d.Pos.Column, d.Message)
}

// Bag accumulates diagnostics in strict insertion order and never discards
// one diagnostic to make room for another; every stage records and
// continues.
type Bag struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// AddError appends a diagnostic of Error severity.
func (b *Bag) AddError(pos token.Position, node, format string, args ...any) {
	b.Errors = append(b.Errors, Diagnostic{
		Severity: Error,
		Message:  fmt.Sprintf(format, args...),
		Pos:      pos,
		Node:     node,
	})
}

// AddWarning appends a diagnostic of Warning severity.
func (b *Bag) AddWarning(pos token.Position, node, format string, args ...any) {
	b.Warnings = append(b.Warnings, Diagnostic{
		Severity: Warning,
		Message:  fmt.Sprintf(format, args...),
		Pos:      pos,
		Node:     node,
	})
}

// ErrorCount and WarningCount mirror the counts surfaced at the library's
// external interface.
func (b *Bag) ErrorCount() int   { return len(b.Errors) }
func (b *Bag) WarningCount() int { return len(b.Warnings) }

// SourceContext renders the offending source line with a line-number gutter
// and a caret pointing at pos.Column, the way the compiler's original
// CompilerError.Format rendered a single-line context block.
func SourceContext(source string, pos token.Position) string {
	lines := strings.Split(source, "\n")
	if pos.Line < 1 || pos.Line > len(lines) {
		return ""
	}
	line := lines[pos.Line-1]

	var sb strings.Builder
	gutter := fmt.Sprintf("%4d | ", pos.Line)
	sb.WriteString(gutter)
	sb.WriteString(line)
	sb.WriteString("\n")
	col := pos.Column - 1
	if col < 0 {
		col = 0
	}
	sb.WriteString(strings.Repeat(" ", len(gutter)+col))
	sb.WriteString("^")
	return sb.String()
}

// FormatWithContext renders a full diagnostic block: header, source context,
// and message, mirroring CompilerError.FormatWithContext but generalized to
// both errors and warnings.
func FormatWithContext(d Diagnostic, source, file string) string {
	label := "Error"
	if d.Severity == Warning {
		label = "Warning"
	}

	var sb strings.Builder
	if file != "" {
		fmt.Fprintf(&sb, "%s in %s:%s: %s\n", label, file, d.Pos, d.Message)
	} else {
		fmt.Fprintf(&sb, "%s at %s: %s\n", label, d.Pos, d.Message)
	}
	if ctx := SourceContext(source, d.Pos); ctx != "" {
		sb.WriteString(ctx)
	}
	return sb.String()
}
