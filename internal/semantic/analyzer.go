package semantic

import (
	"github.com/openclassroom/jslite/internal/diag"
	"github.com/openclassroom/jslite/pkg/ast"
	"github.com/openclassroom/jslite/pkg/token"
)

// functionFrame tracks whether the function currently being walked has seen
// a return statement yet.
type functionFrame struct {
	name      string
	hasReturn bool
}

// Analyzer performs a single forward walk of an ast.Program, building a
// scope tree and recording errors and warnings. It never aborts on any one
// diagnostic; a catastrophic internal error is caught at the top of Analyze
// and reported as one fatal diagnostic instead of propagating a panic.
type Analyzer struct {
	global     *Scope
	current    *Scope
	bag        diag.Bag
	funcStack  []*functionFrame
	suppressed map[string]bool
}

// Warning category names, used with WithSuppressedWarnings to silence a
// whole class of warnings from a .jslite.yaml config file.
const (
	WarnUnusedVariable     = "unused-variable"
	WarnMissingReturn      = "missing-return"
	WarnArgumentCount      = "argument-count"
	WarnNotAFunction       = "not-a-function"
	WarnLooseEquality      = "loose-equality"
	WarnArithmeticMismatch = "arithmetic-mismatch"
	WarnDoubleNegation     = "double-negation"
	WarnDeleteBareIdent    = "delete-bare-identifier"
	WarnDeadBranch         = "dead-branch"
	WarnInfiniteLoop       = "infinite-loop"
	WarnUnknownConsole     = "unknown-console-method"
	WarnDuplicateKey       = "duplicate-object-key"
	WarnUnknownNode        = "unknown-node"
)

// Option configures an Analyzer at construction time.
type Option func(*Analyzer)

// WithExtraBuiltins preloads additional global identifiers alongside
// token.Builtins, e.g. host-provided globals listed under a project's
// .jslite.yaml.
func WithExtraBuiltins(names []string) Option {
	return func(a *Analyzer) {
		for _, name := range names {
			a.global.Define(&Symbol{
				Name:        name,
				Kind:        VariableSymbol,
				Builtin:     true,
				Initialized: true,
			})
		}
	}
}

// WithSuppressedWarnings silences the named warning categories; errors are
// never suppressible.
func WithSuppressedWarnings(categories []string) Option {
	return func(a *Analyzer) {
		for _, c := range categories {
			a.suppressed[c] = true
		}
	}
}

// New returns an Analyzer with a fresh global scope preloaded with the
// builtins of token.Builtins, then applies opts in order.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{suppressed: make(map[string]bool)}
	a.global = NewScope(GlobalScope, nil)
	a.current = a.global
	for _, name := range token.Builtins {
		a.global.Define(&Symbol{
			Name:        name,
			Kind:        VariableSymbol,
			Builtin:     true,
			Initialized: true,
		})
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// warn records a warning unless its category is suppressed.
func (a *Analyzer) warn(category string, pos token.Position, node, format string, args ...any) {
	if a.suppressed[category] {
		return
	}
	a.bag.AddWarning(pos, node, format, args...)
}

// Errors and Warnings return the accumulated diagnostics, in source order.
func (a *Analyzer) Errors() []diag.Diagnostic   { return a.bag.Errors }
func (a *Analyzer) Warnings() []diag.Diagnostic { return a.bag.Warnings }

// GlobalScope exposes the root of the scope tree, e.g. for a report's
// symbol-table dump.
func (a *Analyzer) GlobalScope() *Scope { return a.global }

// Analyze walks prog once. A malformed-AST panic is converted into a single
// fatal diagnostic rather than propagating.
func (a *Analyzer) Analyze(prog *ast.Program) (scope *Scope, err error) {
	defer func() {
		if r := recover(); r != nil {
			a.bag.AddError(token.Position{}, "Program", "Internal analyzer failure: %v", r)
		}
	}()
	a.hoistFunctions(prog.Statements)
	for _, stmt := range prog.Statements {
		a.analyzeStatement(stmt)
	}
	a.global.Walk(a.checkUnused)
	return a.global, nil
}

func (a *Analyzer) checkUnused(s *Scope) {
	for _, sym := range s.Symbols() {
		if sym.Builtin || sym.Kind == FunctionSymbol {
			continue
		}
		if !sym.Used && !sym.Assigned {
			a.warn(WarnUnusedVariable, sym.Pos, "", "Variable '%s' is declared but never used", sym.Name)
		}
	}
}

// hoistFunctions pre-installs every immediate FunctionDeclaration of a
// global/function-kind scope before its statements are walked.
func (a *Analyzer) hoistFunctions(stmts []ast.Statement) {
	for _, stmt := range stmts {
		fn, ok := stmt.(*ast.FunctionDeclaration)
		if !ok {
			continue
		}
		if _, exists := a.current.IsDeclaredInCurrentScope(fn.ID.Name); exists {
			a.bag.AddError(fn.Pos.P, "FunctionDeclaration", "Variable '%s' is already declared in this scope", fn.ID.Name)
			continue
		}
		params := make([]string, len(fn.Params))
		for i, p := range fn.Params {
			params[i] = p.Name
		}
		a.current.Define(&Symbol{
			Name:        fn.ID.Name,
			Kind:        FunctionSymbol,
			Pos:         fn.Pos.P,
			Initialized: true,
			Hoisted:     true,
			Params:      params,
		})
	}
}

func (a *Analyzer) analyzeStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.VariableDeclaration:
		a.analyzeVariableDeclaration(s)
	case *ast.FunctionDeclaration:
		a.analyzeFunctionDeclaration(s)
	case *ast.BlockStatement:
		a.analyzeBlock(s)
	case *ast.ExpressionStatement:
		a.analyzeExpression(s.Expression)
	case *ast.IfStatement:
		a.checkCondition(s.Test, false)
		a.analyzeExpression(s.Test)
		a.analyzeStatement(s.Consequent)
		if s.Alternate != nil {
			a.analyzeStatement(s.Alternate)
		}
	case *ast.WhileStatement:
		a.checkCondition(s.Test, true)
		a.analyzeExpression(s.Test)
		a.analyzeStatement(s.Body)
	case *ast.ForStatement:
		a.analyzeForStatement(s)
	case *ast.ReturnStatement:
		a.analyzeReturnStatement(s)
	default:
		a.warn(WarnUnknownNode, token.Position{}, "", "Unknown AST node kind encountered during analysis")
	}
}

func (a *Analyzer) analyzeVariableDeclaration(decl *ast.VariableDeclaration) {
	for _, d := range decl.Declarators {
		if d.Init != nil {
			a.analyzeExpression(d.Init)
		}
		a.declareOne(decl.Kind, d)
	}
}

func (a *Analyzer) declareOne(kind ast.VariableKind, d *ast.VariableDeclarator) {
	name := d.ID.Name
	if kind == ast.Const && d.Init == nil {
		a.bag.AddError(d.Pos.P, "VariableDeclaration", "Missing initializer in const declaration '%s'", name)
	}
	if existing, ok := a.current.IsDeclaredInCurrentScope(name); ok {
		if symbolKindOf(kind) != existing.Kind {
			a.bag.AddError(d.Pos.P, "VariableDeclaration", "Identifier '%s' has already been declared with different kind", name)
		} else {
			a.bag.AddError(d.Pos.P, "VariableDeclaration", "Variable '%s' is already declared in this scope", name)
		}
		return
	}
	sym := &Symbol{
		Name:        name,
		Kind:        symbolKindOf(kind),
		Pos:         d.Pos.P,
		Initialized: d.Init != nil,
	}
	if lit, ok := d.Init.(*ast.Literal); ok {
		sym.LitKind = lit.Kind
		sym.HasLitKind = true
	}
	a.current.Define(sym)
}

func symbolKindOf(kind ast.VariableKind) SymbolKind {
	if kind == ast.Const {
		return ConstSymbol
	}
	return VariableSymbol
}

// analyzeFunctionDeclaration handles both the global/function-scope case
// (where the symbol already exists from hoisting) and a block-nested
// declaration, which is never hoisted and so must be declared here.
func (a *Analyzer) analyzeFunctionDeclaration(fn *ast.FunctionDeclaration) {
	if existing, ok := a.current.IsDeclaredInCurrentScope(fn.ID.Name); !ok || !existing.Hoisted {
		if ok {
			a.bag.AddError(fn.Pos.P, "FunctionDeclaration", "Variable '%s' is already declared in this scope", fn.ID.Name)
		} else {
			params := make([]string, len(fn.Params))
			for i, p := range fn.Params {
				params[i] = p.Name
			}
			a.current.Define(&Symbol{
				Name:        fn.ID.Name,
				Kind:        FunctionSymbol,
				Pos:         fn.Pos.P,
				Initialized: true,
				Params:      params,
			})
		}
	}
	a.analyzeFunctionBody(fn)
}

func (a *Analyzer) analyzeFunctionBody(fn *ast.FunctionDeclaration) {
	outer := a.current
	funcScope := NewScope(FunctionScope, outer)
	a.current = funcScope

	for _, p := range fn.Params {
		if _, exists := funcScope.IsDeclaredInCurrentScope(p.Name); exists {
			a.bag.AddError(p.Pos.P, "FunctionDeclaration", "Variable '%s' is already declared in this scope", p.Name)
			continue
		}
		funcScope.Define(&Symbol{
			Name:        p.Name,
			Kind:        ParameterSymbol,
			Pos:         p.Pos.P,
			Initialized: true,
		})
	}

	a.hoistFunctions(fn.Body.Statements)
	a.funcStack = append(a.funcStack, &functionFrame{name: fn.ID.Name})
	for _, stmt := range fn.Body.Statements {
		a.analyzeStatement(stmt)
	}
	frame := a.funcStack[len(a.funcStack)-1]
	a.funcStack = a.funcStack[:len(a.funcStack)-1]
	if !frame.hasReturn && fn.ID.Name != "main" {
		a.warn(WarnMissingReturn, fn.Pos.P, "FunctionDeclaration", "Function '%s' does not have a return statement", fn.ID.Name)
	}

	a.current = outer
}

func (a *Analyzer) analyzeBlock(b *ast.BlockStatement) {
	outer := a.current
	a.current = NewScope(BlockScope, outer)
	for _, stmt := range b.Statements {
		a.analyzeStatement(stmt)
	}
	a.current = outer
}

func (a *Analyzer) analyzeForStatement(f *ast.ForStatement) {
	outer := a.current
	a.current = NewScope(BlockScope, outer)

	switch init := f.Init.(type) {
	case *ast.VariableDeclaration:
		a.analyzeVariableDeclaration(init)
	case ast.Expression:
		a.analyzeExpression(init)
	}

	if f.Test != nil {
		a.checkCondition(f.Test, false)
		a.analyzeExpression(f.Test)
	}
	if f.Update != nil {
		a.analyzeExpression(f.Update)
	}
	a.analyzeStatement(f.Body)

	a.current = outer
}

func (a *Analyzer) analyzeReturnStatement(r *ast.ReturnStatement) {
	if len(a.funcStack) == 0 {
		a.bag.AddError(r.Pos.P, "ReturnStatement", "Return statement outside of function")
	} else {
		a.funcStack[len(a.funcStack)-1].hasReturn = true
	}
	if r.Argument != nil {
		a.analyzeExpression(r.Argument)
	}
}

// checkCondition applies the always-truthy/always-falsy dead-branch
// heuristics. isWhile merges the generic "always truthy" warning into the
// more specific infinite-loop wording rather than emitting both, matching
// the single-warning shape of the while(1){} scenario.
func (a *Analyzer) checkCondition(test ast.Expression, isWhile bool) {
	pos := nodePos(test)
	switch {
	case isAlwaysTruthy(test):
		if isWhile {
			a.warn(WarnInfiniteLoop, pos, "", "Potential infinite loop: condition is always truthy")
		} else {
			a.warn(WarnDeadBranch, pos, "", "Condition is always truthy")
		}
	case isAlwaysFalsy(test):
		a.warn(WarnDeadBranch, pos, "", "Condition is always falsy")
	}
}

func nodePos(n ast.Node) token.Position {
	return token.Position{Line: n.Line(), Column: n.Column()}
}
