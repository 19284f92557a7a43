package ast

import "fmt"

// AssignmentExpression covers `=`, `+=`, `-=`, `*=`, `/=`, `%=`.
type AssignmentExpression struct {
	Pos
	Operator string
	Left     Expression
	Right    Expression
}

func (a *AssignmentExpression) expressionNode() {}
func (a *AssignmentExpression) String() string {
	return fmt.Sprintf("(%s %s %s)", a.Left, a.Operator, a.Right)
}

// ConditionalExpression is the ternary `test ? consequent : alternate`.
type ConditionalExpression struct {
	Pos
	Test       Expression
	Consequent Expression
	Alternate  Expression
}

func (c *ConditionalExpression) expressionNode() {}
func (c *ConditionalExpression) String() string {
	return fmt.Sprintf("(%s ? %s : %s)", c.Test, c.Consequent, c.Alternate)
}

// LogicalExpression covers `&&` and `||`.
type LogicalExpression struct {
	Pos
	Operator string
	Left     Expression
	Right    Expression
}

func (l *LogicalExpression) expressionNode() {}
func (l *LogicalExpression) String() string {
	return fmt.Sprintf("(%s %s %s)", l.Left, l.Operator, l.Right)
}

// BinaryExpression covers equality, relational, additive, multiplicative,
// `**`, `in` and `instanceof`.
type BinaryExpression struct {
	Pos
	Operator string
	Left     Expression
	Right    Expression
}

func (b *BinaryExpression) expressionNode() {}
func (b *BinaryExpression) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Operator, b.Right)
}

// UnaryExpression covers the prefix operators `!`, `-`, `+`, `typeof`,
// `void`, `delete`. Prefix is always true for this node; see UpdateExpression
// for the `++`/`--` family which can be prefix or postfix.
type UnaryExpression struct {
	Pos
	Operator string
	Argument Expression
	Prefix   bool
}

func (u *UnaryExpression) expressionNode() {}
func (u *UnaryExpression) String() string {
	if u.Prefix {
		return fmt.Sprintf("(%s%s)", u.Operator, u.Argument)
	}
	return fmt.Sprintf("(%s%s)", u.Argument, u.Operator)
}

// UpdateExpression covers `++`/`--`, prefix or postfix.
type UpdateExpression struct {
	Pos
	Operator string
	Argument Expression
	Prefix   bool
}

func (u *UpdateExpression) expressionNode() {}
func (u *UpdateExpression) String() string {
	if u.Prefix {
		return fmt.Sprintf("(%s%s)", u.Operator, u.Argument)
	}
	return fmt.Sprintf("(%s%s)", u.Argument, u.Operator)
}

// CallExpression is `callee(arg, arg, ...)`.
type CallExpression struct {
	Pos
	Callee    Expression
	Arguments []Expression
}

func (c *CallExpression) expressionNode() {}
func (c *CallExpression) String() string {
	args := make([]string, len(c.Arguments))
	for i, a := range c.Arguments {
		args[i] = a.String()
	}
	out := c.Callee.String() + "("
	for i, a := range args {
		if i > 0 {
			out += ", "
		}
		out += a
	}
	return out + ")"
}

// MemberExpression is `object.property` (Computed=false) or
// `object[property]` (Computed=true).
type MemberExpression struct {
	Pos
	Object   Expression
	Property Expression
	Computed bool
}

func (m *MemberExpression) expressionNode() {}
func (m *MemberExpression) String() string {
	if m.Computed {
		return fmt.Sprintf("%s[%s]", m.Object, m.Property)
	}
	return fmt.Sprintf("%s.%s", m.Object, m.Property)
}
