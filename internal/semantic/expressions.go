package semantic

import (
	"fmt"

	"github.com/openclassroom/jslite/pkg/ast"
)

var allowedConsoleMethods = map[string]bool{
	"log": true, "warn": true, "error": true, "info": true, "debug": true,
}

func (a *Analyzer) analyzeExpression(expr ast.Expression) {
	if expr == nil {
		return
	}
	switch e := expr.(type) {
	case *ast.Identifier:
		a.analyzeIdentifierRead(e)
	case *ast.Literal, *ast.TemplateLiteral:
		// leaves, nothing to resolve
	case *ast.ArrayExpression:
		for _, el := range e.Elements {
			if el != nil {
				a.analyzeExpression(el)
			}
		}
	case *ast.ObjectExpression:
		a.analyzeObjectExpression(e)
	case *ast.AssignmentExpression:
		a.analyzeAssignment(e)
	case *ast.ConditionalExpression:
		a.checkCondition(e.Test, false)
		a.analyzeExpression(e.Test)
		a.analyzeExpression(e.Consequent)
		a.analyzeExpression(e.Alternate)
	case *ast.LogicalExpression:
		a.analyzeExpression(e.Left)
		a.analyzeExpression(e.Right)
	case *ast.BinaryExpression:
		a.analyzeBinaryExpression(e)
	case *ast.UnaryExpression:
		a.analyzeUnaryExpression(e)
	case *ast.UpdateExpression:
		a.analyzeUpdateExpression(e)
	case *ast.CallExpression:
		a.analyzeCallExpression(e)
	case *ast.MemberExpression:
		a.analyzeMemberExpression(e)
	default:
		a.warn(WarnUnknownNode, nodePos(expr), "", "Unknown AST node kind encountered during analysis")
	}
}

func (a *Analyzer) analyzeIdentifierRead(id *ast.Identifier) {
	sym, _, ok := a.current.Resolve(id.Name)
	if !ok {
		a.bag.AddError(id.Pos.P, "Identifier", "'%s' is not defined", id.Name)
		return
	}
	sym.Used = true
	if !sym.Initialized && sym.Kind != FunctionSymbol && !sym.Builtin {
		a.bag.AddError(id.Pos.P, "Identifier", "Variable '%s' is used before being initialized", id.Name)
	}
}

func (a *Analyzer) analyzeObjectExpression(obj *ast.ObjectExpression) {
	seen := make(map[string]bool)
	for _, prop := range obj.Properties {
		a.analyzeExpression(prop.Value)
		key := propertyKeyString(prop.Key)
		if seen[key] {
			a.warn(WarnDuplicateKey, nodePos(prop.Key), "ObjectExpression", "Duplicate key '%s' in object literal", key)
		}
		seen[key] = true
	}
}

func propertyKeyString(key ast.Expression) string {
	switch k := key.(type) {
	case *ast.Identifier:
		return k.Name
	case *ast.Literal:
		return fmt.Sprintf("%v", k.Value)
	default:
		return key.String()
	}
}

func (a *Analyzer) analyzeAssignment(assign *ast.AssignmentExpression) {
	a.analyzeExpression(assign.Right)

	if id, ok := assign.Left.(*ast.Identifier); ok {
		sym, _, found := a.current.Resolve(id.Name)
		switch {
		case !found:
			a.bag.AddError(id.Pos.P, "AssignmentExpression", "Cannot assign to undeclared variable '%s'", id.Name)
		case sym.Kind == ConstSymbol && sym.Initialized:
			a.bag.AddError(id.Pos.P, "AssignmentExpression", "Cannot assign to const variable '%s'", id.Name)
		default:
			sym.Initialized = true
			sym.Assigned = true
		}
	} else {
		a.analyzeExpression(assign.Left)
	}

	switch assign.Operator {
	case "+=":
		a.checkArithmeticCompatibility(assign.Left, assign.Right)
	case "-=", "*=", "/=", "%=":
		a.checkNumericOperation(assign.Left, assign.Right)
	}
}

func (a *Analyzer) analyzeUpdateExpression(u *ast.UpdateExpression) {
	id, ok := u.Argument.(*ast.Identifier)
	if !ok {
		a.analyzeExpression(u.Argument)
		return
	}
	sym, _, found := a.current.Resolve(id.Name)
	switch {
	case !found:
		a.bag.AddError(id.Pos.P, "UpdateExpression", "Cannot assign to undeclared variable '%s'", id.Name)
	case sym.Kind == ConstSymbol:
		a.bag.AddError(id.Pos.P, "UpdateExpression", "Cannot assign to const variable '%s'", id.Name)
	default:
		sym.Used = true
		if !sym.Initialized && !sym.Builtin {
			a.bag.AddError(id.Pos.P, "UpdateExpression", "Variable '%s' is used before being initialized", id.Name)
		}
	}
}

func (a *Analyzer) analyzeCallExpression(call *ast.CallExpression) {
	if id, ok := call.Callee.(*ast.Identifier); ok {
		sym, _, found := a.current.Resolve(id.Name)
		if !found {
			a.bag.AddError(id.Pos.P, "CallExpression", "'%s' is not defined", id.Name)
		} else {
			sym.Used = true
			if sym.Kind != FunctionSymbol {
				a.warn(WarnNotAFunction, id.Pos.P, "CallExpression", "'%s' is not a function", id.Name)
			} else if sym.Params != nil && len(sym.Params) != len(call.Arguments) {
				a.warn(WarnArgumentCount, call.Pos.P, "CallExpression", "Function '%s' expects %d arguments, got %d", id.Name, len(sym.Params), len(call.Arguments))
			}
		}
	} else {
		a.analyzeExpression(call.Callee)
	}
	for _, arg := range call.Arguments {
		a.analyzeExpression(arg)
	}
}

func (a *Analyzer) analyzeMemberExpression(m *ast.MemberExpression) {
	a.analyzeExpression(m.Object)
	if m.Computed {
		a.analyzeExpression(m.Property)
		return
	}
	if obj, ok := m.Object.(*ast.Identifier); ok && obj.Name == "console" {
		if prop, ok := m.Property.(*ast.Identifier); ok && !allowedConsoleMethods[prop.Name] {
			a.warn(WarnUnknownConsole, prop.Pos.P, "MemberExpression", "Unknown console method: %s", prop.Name)
		}
	}
}

func (a *Analyzer) analyzeUnaryExpression(u *ast.UnaryExpression) {
	a.analyzeExpression(u.Argument)
	if u.Operator == "!" {
		if inner, ok := u.Argument.(*ast.UnaryExpression); ok && inner.Operator == "!" {
			a.warn(WarnDoubleNegation, u.Pos.P, "UnaryExpression", "Double negation '!!' has no effect beyond boolean coercion")
		}
	}
	if u.Operator == "delete" {
		if id, ok := u.Argument.(*ast.Identifier); ok {
			a.warn(WarnDeleteBareIdent, u.Pos.P, "UnaryExpression", "Delete of unqualified identifier '%s' in strict mode", id.Name)
		}
	}
}

func (a *Analyzer) analyzeBinaryExpression(b *ast.BinaryExpression) {
	a.analyzeExpression(b.Left)
	a.analyzeExpression(b.Right)

	switch b.Operator {
	case "==", "!=":
		a.warn(WarnLooseEquality, b.Pos.P, "BinaryExpression", "Use '===' / '!==' for strict comparison")
	case "+":
		a.checkArithmeticCompatibility(b.Left, b.Right)
	case "-", "*", "/", "%":
		a.checkNumericOperation(b.Left, b.Right)
	case "<", ">", "<=", ">=":
		a.checkComparisonCoercion(b)
	}
}

// checkArithmeticCompatibility warns when '+'/'+=' mixes a string literal
// and a number literal, the one case the analyzer's literal-class
// inspection is required to catch exactly.
func (a *Analyzer) checkArithmeticCompatibility(left, right ast.Expression) {
	lk, lok := a.literalKindOf(left)
	rk, rok := a.literalKindOf(right)
	if lok && rok && lk != rk && (lk == ast.StringLiteral || rk == ast.StringLiteral) && (lk == ast.NumberLiteral || rk == ast.NumberLiteral) {
		a.warn(WarnArithmeticMismatch, nodePos(left), "BinaryExpression", "Adding string and number might produce unexpected results")
	}
}

// checkNumericOperation warns when a non-additive arithmetic operator has a
// string-classed operand.
func (a *Analyzer) checkNumericOperation(left, right ast.Expression) {
	if lk, ok := a.literalKindOf(left); ok && lk == ast.StringLiteral {
		a.warn(WarnArithmeticMismatch, nodePos(left), "BinaryExpression", "Using a string literal in a numeric operation might produce unexpected results")
		return
	}
	if rk, ok := a.literalKindOf(right); ok && rk == ast.StringLiteral {
		a.warn(WarnArithmeticMismatch, nodePos(right), "BinaryExpression", "Using a string literal in a numeric operation might produce unexpected results")
	}
}

// checkComparisonCoercion warns when a relational comparison's two operands
// are of different JavaScript primitive classes.
func (a *Analyzer) checkComparisonCoercion(b *ast.BinaryExpression) {
	lk, lok := a.literalKindOf(b.Left)
	rk, rok := a.literalKindOf(b.Right)
	if lok && rok && lk != rk {
		a.warn(WarnArithmeticMismatch, b.Pos.P, "BinaryExpression", "Comparing values of different types might produce unexpected results")
	}
}

// literalKindOf reports e's literal class directly for a Literal node, or,
// for an Identifier, the literal class it was tagged with at declaration
// time (one hop through the symbol table, not real type inference — see
// Symbol.LitKind).
func (a *Analyzer) literalKindOf(e ast.Expression) (ast.LiteralKind, bool) {
	switch v := e.(type) {
	case *ast.Literal:
		return v.Kind, true
	case *ast.Identifier:
		if sym, _, found := a.current.Resolve(v.Name); found && sym.HasLitKind {
			return sym.LitKind, true
		}
	}
	return 0, false
}
