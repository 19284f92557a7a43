// Package ast defines the closed, tagged-variant Abstract Syntax Tree
// produced by the parser. Every node embeds Pos and carries its own
// line/column; trees are owned top-down by their parent and are never
// mutated once built — the semantic analyzer only ever reads them.
package ast

import (
	"bytes"
	"strings"

	"github.com/openclassroom/jslite/pkg/token"
)

// Node is implemented by every AST node.
type Node interface {
	Line() int
	Column() int
	String() string
}

// Statement is a Node that can appear in a statement position.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that can appear in an expression position.
type Expression interface {
	Node
	expressionNode()
}

// Pos is embedded by every concrete node to satisfy Node's position methods.
type Pos struct {
	P token.Position
}

func (p Pos) Line() int   { return p.P.Line }
func (p Pos) Column() int { return p.P.Column }

// Program is the root node: an ordered sequence of top-level statements.
type Program struct {
	Pos
	Statements []Statement
}

func (p *Program) String() string {
	var sb bytes.Buffer
	for _, s := range p.Statements {
		sb.WriteString(s.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// Identifier names a binding, either declared or referenced.
type Identifier struct {
	Pos
	Name string
}

func (i *Identifier) expressionNode() {}
func (i *Identifier) String() string  { return i.Name }

// LiteralKind distinguishes the primitive classes a Literal can hold.
type LiteralKind int

const (
	NullLiteral LiteralKind = iota
	BooleanLiteral
	NumberLiteral
	StringLiteral
)

// Literal is a primary literal expression: null, boolean, number or string.
// Raw retains the exact source form (e.g. the surrounding quotes of a
// string), Value holds the decoded Go value.
type Literal struct {
	Pos
	Kind  LiteralKind
	Value any
	Raw   string
}

func (l *Literal) expressionNode() {}
func (l *Literal) String() string  { return l.Raw }

// TemplateLiteral is a backtick template; Raw includes the backticks and any
// ${...} interpolation text verbatim, unparsed.
type TemplateLiteral struct {
	Pos
	Raw string
}

func (t *TemplateLiteral) expressionNode() {}
func (t *TemplateLiteral) String() string  { return t.Raw }

// Element of an ArrayExpression; a nil Expression models an elided "hole"
// (e.g. the middle slot of [1, , 3]).
type ArrayExpression struct {
	Pos
	Elements []Expression
}

func (a *ArrayExpression) expressionNode() {}
func (a *ArrayExpression) String() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		if e == nil {
			parts[i] = ""
			continue
		}
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Property is one key:value entry of an ObjectExpression. Kind is always
// "init" in this dialect (no getters/setters/shorthand methods).
type Property struct {
	Key   Expression
	Value Expression
	Kind  string
}

type ObjectExpression struct {
	Pos
	Properties []Property
}

func (o *ObjectExpression) expressionNode() {}
func (o *ObjectExpression) String() string {
	parts := make([]string, len(o.Properties))
	for i, p := range o.Properties {
		parts[i] = p.Key.String() + ": " + p.Value.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
