// Package semantic implements the scope-aware analyzer: a symbol table with
// a non-owning parent pointer (the scope tree is owned top-down from the
// global scope, mirroring the compiler's original SymbolTable), and an
// Analyzer that walks the AST once, recording diagnostics and never
// aborting on any single one.
package semantic

import (
	"github.com/openclassroom/jslite/pkg/ast"
	"github.com/openclassroom/jslite/pkg/token"
)

// SymbolKind classifies what a Symbol names.
type SymbolKind int

const (
	VariableSymbol SymbolKind = iota
	ConstSymbol
	FunctionSymbol
	ParameterSymbol
)

func (k SymbolKind) String() string {
	switch k {
	case ConstSymbol:
		return "const"
	case FunctionSymbol:
		return "function"
	case ParameterSymbol:
		return "parameter"
	default:
		return "variable"
	}
}

// Symbol is a named binding in a scope.
type Symbol struct {
	Name        string
	Kind        SymbolKind
	Pos         token.Position
	Initialized bool
	Hoisted     bool
	Builtin     bool
	Params      []string // captured parameter names, for FunctionSymbol only

	// Used is set only by a genuine read (identifier resolution in an
	// expression position, the callee of a call, or the read half of an
	// update expression). Assigned is set only by an identifier on the left
	// side of an assignment, plain or compound. Either flag keeps the
	// variable out of the final unused-symbol warning; the used-before-init
	// check reads Initialized, not these flags.
	Used     bool
	Assigned bool

	// LitKind, when HasLitKind is true, is the literal class of the direct
	// literal this symbol was initialized from (e.g. `let n = 1;` tags n as
	// NumberLiteral). The analyzer's arithmetic/comparison heuristics chase
	// one identifier hop through this tag so that `s + n` is flagged the
	// same way `"a" + 1` would be, without doing any real type inference.
	LitKind    ast.LiteralKind
	HasLitKind bool
}

// ScopeKind identifies what introduced a Scope, which governs whether
// function hoisting applies when it is entered.
type ScopeKind int

const (
	GlobalScope ScopeKind = iota
	FunctionScope
	BlockScope
)

// Scope is one node of the scope tree. outer is a non-owning back-reference;
// the tree is owned top-down starting at the global scope.
type Scope struct {
	Kind     ScopeKind
	outer    *Scope
	children []*Scope
	symbols  map[string]*Symbol
	order    []string // declaration order, for deterministic scope dumps
}

// NewScope creates a scope of the given kind, enclosed by outer (nil for the
// global scope).
func NewScope(kind ScopeKind, outer *Scope) *Scope {
	s := &Scope{
		Kind:    kind,
		outer:   outer,
		symbols: make(map[string]*Symbol),
	}
	if outer != nil {
		outer.children = append(outer.children, s)
	}
	return s
}

// Outer returns the enclosing scope, or nil at the global scope.
func (s *Scope) Outer() *Scope { return s.outer }

// Children returns the scopes nested directly inside s, in creation order.
func (s *Scope) Children() []*Scope { return s.children }

// Define installs sym in this scope under sym.Name. Callers must check
// IsDeclaredInCurrentScope first; Define unconditionally overwrites.
func (s *Scope) Define(sym *Symbol) {
	if _, exists := s.symbols[sym.Name]; !exists {
		s.order = append(s.order, sym.Name)
	}
	s.symbols[sym.Name] = sym
}

// IsDeclaredInCurrentScope reports whether name is already bound in this
// exact scope (not an ancestor).
func (s *Scope) IsDeclaredInCurrentScope(name string) (*Symbol, bool) {
	sym, ok := s.symbols[name]
	return sym, ok
}

// Resolve walks the scope chain outward, returning the symbol and the scope
// that owns it.
func (s *Scope) Resolve(name string) (*Symbol, *Scope, bool) {
	for scope := s; scope != nil; scope = scope.outer {
		if sym, ok := scope.symbols[name]; ok {
			return sym, scope, true
		}
	}
	return nil, nil, false
}

// Symbols returns this scope's own symbols in declaration order.
func (s *Scope) Symbols() []*Symbol {
	syms := make([]*Symbol, 0, len(s.order))
	for _, name := range s.order {
		syms = append(syms, s.symbols[name])
	}
	return syms
}

// Walk visits s and every descendant scope, depth-first, calling fn on each.
func (s *Scope) Walk(fn func(*Scope)) {
	fn(s)
	for _, c := range s.children {
		c.Walk(fn)
	}
}
