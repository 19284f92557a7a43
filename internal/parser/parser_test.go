package parser

import (
	"testing"

	"github.com/openclassroom/jslite/pkg/ast"
)

func parseProgram(t *testing.T, src string) (*ast.Program, *Parser) {
	t.Helper()
	p := New(src)
	prog := p.ParseProgram()
	return prog, p
}

func TestEmptyProgram(t *testing.T) {
	prog, p := parseProgram(t, "")
	if len(prog.Statements) != 0 {
		t.Errorf("expected empty Program, got %d statements", len(prog.Statements))
	}
	if len(p.Errors()) != 0 {
		t.Errorf("expected no errors, got %v", p.Errors())
	}
}

func TestVariableDeclarationWithInit(t *testing.T) {
	prog, p := parseProgram(t, "const PI = 3.14;")
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", p.Errors())
	}
	if len(prog.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Statements))
	}
	decl, ok := prog.Statements[0].(*ast.VariableDeclaration)
	if !ok {
		t.Fatalf("expected *ast.VariableDeclaration, got %T", prog.Statements[0])
	}
	if decl.Kind != ast.Const || len(decl.Declarators) != 1 {
		t.Fatalf("unexpected declaration shape: %+v", decl)
	}
	if decl.Declarators[0].ID.Name != "PI" {
		t.Errorf("declarator id = %q, want PI", decl.Declarators[0].ID.Name)
	}
}

func TestConstWithoutInitializerParsesWithNilInit(t *testing.T) {
	// The parser accepts a const declarator with no initializer; rejecting
	// it is the semantic analyzer's job, not the grammar's.
	prog, p := parseProgram(t, "const K;")
	if len(p.Errors()) != 0 {
		t.Fatalf("expected 0 parse errors, got %d: %v", len(p.Errors()), p.Errors())
	}
	decl := prog.Statements[0].(*ast.VariableDeclaration)
	if decl.Declarators[0].Init != nil {
		t.Fatalf("expected nil Init, got %+v", decl.Declarators[0].Init)
	}
}

func TestAssignmentRightAssociative(t *testing.T) {
	prog, p := parseProgram(t, "a = b = 1;")
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", p.Errors())
	}
	es := prog.Statements[0].(*ast.ExpressionStatement)
	outer := es.Expression.(*ast.AssignmentExpression)
	if _, ok := outer.Right.(*ast.AssignmentExpression); !ok {
		t.Errorf("expected right-associative nesting, got %s", outer.String())
	}
}

func TestPrecedenceLadder(t *testing.T) {
	prog, p := parseProgram(t, "1 + 2 * 3;")
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", p.Errors())
	}
	es := prog.Statements[0].(*ast.ExpressionStatement)
	bin := es.Expression.(*ast.BinaryExpression)
	if bin.Operator != "+" {
		t.Fatalf("top-level operator = %q, want +", bin.Operator)
	}
	if _, ok := bin.Right.(*ast.BinaryExpression); !ok {
		t.Errorf("expected multiplicative subtree on the right, got %T", bin.Right)
	}
}

func TestConditionalExpression(t *testing.T) {
	prog, p := parseProgram(t, "a ? 1 : 2;")
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", p.Errors())
	}
	es := prog.Statements[0].(*ast.ExpressionStatement)
	if _, ok := es.Expression.(*ast.ConditionalExpression); !ok {
		t.Errorf("expected ConditionalExpression, got %T", es.Expression)
	}
}

func TestDoubleNegationParsesNestedUnary(t *testing.T) {
	prog, _ := parseProgram(t, "!!x;")
	es := prog.Statements[0].(*ast.ExpressionStatement)
	outer := es.Expression.(*ast.UnaryExpression)
	if outer.Operator != "!" {
		t.Fatalf("outer operator = %q", outer.Operator)
	}
	if _, ok := outer.Argument.(*ast.UnaryExpression); !ok {
		t.Errorf("expected nested UnaryExpression, got %T", outer.Argument)
	}
}

func TestCallAndMemberChaining(t *testing.T) {
	prog, p := parseProgram(t, "console.log(1, 2);")
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", p.Errors())
	}
	es := prog.Statements[0].(*ast.ExpressionStatement)
	call := es.Expression.(*ast.CallExpression)
	if len(call.Arguments) != 2 {
		t.Errorf("expected 2 arguments, got %d", len(call.Arguments))
	}
	member := call.Callee.(*ast.MemberExpression)
	if member.Computed {
		t.Error("console.log should not be computed")
	}
}

func TestForLoopThreePartHeader(t *testing.T) {
	prog, p := parseProgram(t, "for (let i = 0; i < 10; i = i + 1) { }")
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", p.Errors())
	}
	loop := prog.Statements[0].(*ast.ForStatement)
	if _, ok := loop.Init.(*ast.VariableDeclaration); !ok {
		t.Errorf("expected VariableDeclaration init, got %T", loop.Init)
	}
	if loop.Test == nil || loop.Update == nil {
		t.Error("expected both test and update to be present")
	}
}

func TestArrayHoles(t *testing.T) {
	prog, p := parseProgram(t, "[1, , 3];")
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", p.Errors())
	}
	es := prog.Statements[0].(*ast.ExpressionStatement)
	arr := es.Expression.(*ast.ArrayExpression)
	if len(arr.Elements) != 3 || arr.Elements[1] != nil {
		t.Fatalf("expected a hole at index 1, got %+v", arr.Elements)
	}
}

func TestObjectDuplicateKeysNotRejectedByParser(t *testing.T) {
	prog, p := parseProgram(t, "({ a: 1, a: 2 });")
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", p.Errors())
	}
	es := prog.Statements[0].(*ast.ExpressionStatement)
	obj := es.Expression.(*ast.ObjectExpression)
	if len(obj.Properties) != 2 {
		t.Fatalf("expected both duplicate keys preserved, got %d", len(obj.Properties))
	}
}

func TestSyntaxErrorRecoveryPreservesFollowingStatements(t *testing.T) {
	prog, p := parseProgram(t, "let x = ; let y = 2;")
	if len(p.Errors()) == 0 {
		t.Fatal("expected at least one syntax error")
	}
	var foundY bool
	for _, s := range prog.Statements {
		if decl, ok := s.(*ast.VariableDeclaration); ok {
			for _, d := range decl.Declarators {
				if d.ID.Name == "y" {
					foundY = true
				}
			}
		}
	}
	if !foundY {
		t.Errorf("expected recovery to still parse 'y', statements: %v", prog.Statements)
	}
}

func TestMissingSemicolonDoesNotAbortParsing(t *testing.T) {
	prog, p := parseProgram(t, "let x = 1\nlet y = 2;")
	if len(prog.Statements) != 2 {
		t.Fatalf("expected 2 statements despite missing ';', got %d", len(prog.Statements))
	}
	if len(p.Errors()) != 1 {
		t.Fatalf("expected exactly 1 missing-semicolon error, got %d: %v", len(p.Errors()), p.Errors())
	}
}

func TestDeeplyNestedParenthesesDoNotExplode(t *testing.T) {
	src := "("
	for i := 0; i < 100; i++ {
		src += "("
	}
	src += "1"
	for i := 0; i < 100; i++ {
		src += ")"
	}
	src += ");"
	_, p := parseProgram(t, src)
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected errors on deep nesting: %v", p.Errors())
	}
}

func TestFunctionDeclaration(t *testing.T) {
	prog, p := parseProgram(t, "function f(a, b) { return a + b; }")
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", p.Errors())
	}
	fn := prog.Statements[0].(*ast.FunctionDeclaration)
	if fn.ID.Name != "f" || len(fn.Params) != 2 {
		t.Fatalf("unexpected function shape: %+v", fn)
	}
}

func TestUndefinedKeywordProducesIdentifier(t *testing.T) {
	prog, p := parseProgram(t, "x = undefined;")
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", p.Errors())
	}
	es := prog.Statements[0].(*ast.ExpressionStatement)
	assign := es.Expression.(*ast.AssignmentExpression)
	id, ok := assign.Right.(*ast.Identifier)
	if !ok || id.Name != "undefined" {
		t.Fatalf("expected Identifier(undefined), got %#v", assign.Right)
	}
}
