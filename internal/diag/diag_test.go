package diag

import (
	"strings"
	"testing"

	"github.com/openclassroom/jslite/pkg/token"
)

func TestBagOrdering(t *testing.T) {
	var b Bag
	b.AddError(token.Position{Line: 1, Column: 1}, "Identifier", "'%s' is not defined", "foo")
	b.AddWarning(token.Position{Line: 2, Column: 3}, "VariableDeclaration", "Variable '%s' is declared but never used", "x")

	if b.ErrorCount() != 1 || b.WarningCount() != 1 {
		t.Fatalf("got %d errors, %d warnings", b.ErrorCount(), b.WarningCount())
	}
	if b.Errors[0].Message != "'foo' is not defined" {
		t.Errorf("unexpected error message: %q", b.Errors[0].Message)
	}
}

func TestNumbered(t *testing.T) {
	d := Diagnostic{Message: "boom", Pos: token.Position{Line: 4, Column: 2}}
	want := "1. [Línea 4, Columna 2] boom"
	if got := d.Numbered(1); got != want {
		t.Errorf("Numbered() = %q, want %q", got, want)
	}
}

func TestSourceContextCaretPosition(t *testing.T) {
	src := "let x = 1;\nx +\n"
	ctx := SourceContext(src, token.Position{Line: 2, Column: 3})
	lines := strings.Split(ctx, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), ctx)
	}
	if !strings.Contains(lines[0], "x +") {
		t.Errorf("gutter line missing source text: %q", lines[0])
	}
	caretCol := strings.Index(lines[1], "^")
	gutterLen := len(lines[0]) - len("x +")
	if caretCol != gutterLen+2 {
		t.Errorf("caret at column %d, want %d", caretCol, gutterLen+2)
	}
}

func TestSourceContextOutOfRange(t *testing.T) {
	if got := SourceContext("one line", token.Position{Line: 5, Column: 1}); got != "" {
		t.Errorf("expected empty context for out-of-range line, got %q", got)
	}
}
