package ast

import "strings"

// VariableKind is the declaration keyword used: var, let or const.
type VariableKind string

const (
	Var   VariableKind = "var"
	Let   VariableKind = "let"
	Const VariableKind = "const"
)

// VariableDeclarator is one `id` or `id = init` entry of a declaration list.
type VariableDeclarator struct {
	Pos
	ID   *Identifier
	Init Expression // nil if no initializer
}

func (v *VariableDeclarator) String() string {
	if v.Init == nil {
		return v.ID.String()
	}
	return v.ID.String() + " = " + v.Init.String()
}

// VariableDeclaration is `var|let|const a, b = 1, ...;`.
type VariableDeclaration struct {
	Pos
	Kind        VariableKind
	Declarators []*VariableDeclarator
}

func (v *VariableDeclaration) statementNode() {}
func (v *VariableDeclaration) String() string {
	parts := make([]string, len(v.Declarators))
	for i, d := range v.Declarators {
		parts[i] = d.String()
	}
	return string(v.Kind) + " " + strings.Join(parts, ", ") + ";"
}

// FunctionDeclaration is `function name(params) { body }`.
type FunctionDeclaration struct {
	Pos
	ID     *Identifier
	Params []*Identifier
	Body   *BlockStatement
}

func (f *FunctionDeclaration) statementNode() {}
func (f *FunctionDeclaration) String() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Name
	}
	return "function " + f.ID.Name + "(" + strings.Join(params, ", ") + ") " + f.Body.String()
}

// BlockStatement is `{ stmt* }`.
type BlockStatement struct {
	Pos
	Statements []Statement
}

func (b *BlockStatement) statementNode() {}
func (b *BlockStatement) String() string {
	var sb strings.Builder
	sb.WriteString("{ ")
	for _, s := range b.Statements {
		sb.WriteString(s.String())
		sb.WriteString(" ")
	}
	sb.WriteString("}")
	return sb.String()
}

// ExpressionStatement wraps a bare expression used as a statement.
type ExpressionStatement struct {
	Pos
	Expression Expression
}

func (e *ExpressionStatement) statementNode() {}
func (e *ExpressionStatement) String() string { return e.Expression.String() + ";" }

// IfStatement is `if (test) consequent [else alternate]`.
type IfStatement struct {
	Pos
	Test       Expression
	Consequent Statement
	Alternate  Statement // nil if no else branch
}

func (i *IfStatement) statementNode() {}
func (i *IfStatement) String() string {
	out := "if (" + i.Test.String() + ") " + i.Consequent.String()
	if i.Alternate != nil {
		out += " else " + i.Alternate.String()
	}
	return out
}

// WhileStatement is `while (test) body`.
type WhileStatement struct {
	Pos
	Test Expression
	Body Statement
}

func (w *WhileStatement) statementNode() {}
func (w *WhileStatement) String() string {
	return "while (" + w.Test.String() + ") " + w.Body.String()
}

// ForStatement is the three-part `for (init; test; update) body`; each of
// Init, Test and Update may be nil.
type ForStatement struct {
	Pos
	Init   Node // *VariableDeclaration or Expression, or nil
	Test   Expression
	Update Expression
	Body   Statement
}

func (f *ForStatement) statementNode() {}
func (f *ForStatement) String() string {
	init := ""
	if f.Init != nil {
		init = f.Init.String()
	}
	test := ""
	if f.Test != nil {
		test = f.Test.String()
	}
	update := ""
	if f.Update != nil {
		update = f.Update.String()
	}
	return "for (" + init + "; " + test + "; " + update + ") " + f.Body.String()
}

// ReturnStatement is `return [argument];`.
type ReturnStatement struct {
	Pos
	Argument Expression // nil if bare `return;`
}

func (r *ReturnStatement) statementNode() {}
func (r *ReturnStatement) String() string {
	if r.Argument == nil {
		return "return;"
	}
	return "return " + r.Argument.String() + ";"
}
