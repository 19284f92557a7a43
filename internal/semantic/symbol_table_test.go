package semantic

import (
	"testing"

	"github.com/openclassroom/jslite/pkg/token"
)

func TestResolveWalksParentChain(t *testing.T) {
	global := NewScope(GlobalScope, nil)
	global.Define(&Symbol{Name: "x", Kind: VariableSymbol})
	child := NewScope(BlockScope, global)

	sym, owner, ok := child.Resolve("x")
	if !ok || sym.Name != "x" || owner != global {
		t.Fatalf("expected to resolve 'x' in the global scope, got sym=%v owner=%v ok=%v", sym, owner, ok)
	}
}

func TestResolveUnknownFails(t *testing.T) {
	global := NewScope(GlobalScope, nil)
	if _, _, ok := global.Resolve("missing"); ok {
		t.Fatal("expected resolution of an unknown name to fail")
	}
}

func TestIsDeclaredInCurrentScopeDoesNotSeeParent(t *testing.T) {
	global := NewScope(GlobalScope, nil)
	global.Define(&Symbol{Name: "x", Kind: VariableSymbol})
	child := NewScope(BlockScope, global)

	if _, ok := child.IsDeclaredInCurrentScope("x"); ok {
		t.Fatal("child scope must not report a parent's symbol as its own")
	}
}

func TestShadowingResolvesToInnermost(t *testing.T) {
	global := NewScope(GlobalScope, nil)
	global.Define(&Symbol{Name: "x", Kind: VariableSymbol, Pos: positionAt(1)})
	child := NewScope(BlockScope, global)
	child.Define(&Symbol{Name: "x", Kind: VariableSymbol, Pos: positionAt(2)})

	sym, owner, ok := child.Resolve("x")
	if !ok || sym.Pos.Line != 2 || owner != child {
		t.Fatalf("expected shadowing symbol from child scope, got %+v from %v", sym, owner)
	}
}

func TestWalkVisitsEveryDescendant(t *testing.T) {
	global := NewScope(GlobalScope, nil)
	a := NewScope(BlockScope, global)
	NewScope(BlockScope, a)
	NewScope(BlockScope, global)

	var count int
	global.Walk(func(*Scope) { count++ })
	if count != 4 {
		t.Fatalf("expected 4 scopes visited, got %d", count)
	}
}

func TestSymbolsPreservesDeclarationOrder(t *testing.T) {
	s := NewScope(GlobalScope, nil)
	s.Define(&Symbol{Name: "b", Kind: VariableSymbol})
	s.Define(&Symbol{Name: "a", Kind: VariableSymbol})

	names := s.Symbols()
	if len(names) != 2 || names[0].Name != "b" || names[1].Name != "a" {
		t.Fatalf("expected insertion order [b a], got %+v", names)
	}
}

func positionAt(line int) token.Position {
	return token.Position{Line: line}
}
