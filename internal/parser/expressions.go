package parser

import (
	"strconv"
	"strings"

	"github.com/openclassroom/jslite/pkg/ast"
	"github.com/openclassroom/jslite/pkg/token"
)

// binaryPrecedence is the precedence ladder, lowest to highest. Assignment
// and the conditional (?:) live above this table since they are right-assoc
// and have their own dedicated parse functions; everything from logical down
// to multiplicative is handled by one generic left-associative climber.
var binaryPrecedence = map[string]int{
	"||": 1, "&&": 1,
	"==": 2, "===": 2, "!=": 2, "!==": 2,
	"<": 3, ">": 3, "<=": 3, ">=": 3, "in": 3, "instanceof": 3,
	"+": 4, "-": 4,
	"*": 5, "/": 5, "%": 5, "**": 5,
}

const lowestPrecedence = 1

var assignmentOperators = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
}

func (p *Parser) binaryOperator() (string, bool) {
	t := p.cur()
	if t.Kind == token.OPERATOR || (t.Kind == token.KEYWORD && (t.Lexeme == "in" || t.Lexeme == "instanceof")) {
		if _, ok := binaryPrecedence[t.Lexeme]; ok {
			return t.Lexeme, true
		}
	}
	return "", false
}

// parseExpression is the grammar's entry point for any expression position.
func (p *Parser) parseExpression() ast.Expression {
	return p.parseAssignment()
}

// parseAssignment is right-associative: `a = b = c` parses as `a = (b = c)`.
func (p *Parser) parseAssignment() ast.Expression {
	left := p.parseConditional()
	t := p.cur()
	if t.Kind == token.OPERATOR && assignmentOperators[t.Lexeme] {
		pos := t.Start
		op := t.Lexeme
		p.advance()
		right := p.parseAssignment()
		return &ast.AssignmentExpression{Pos: ast.Pos{P: pos}, Operator: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseConditional() ast.Expression {
	test := p.parseBinary(lowestPrecedence)
	if p.curIsOp("?") {
		pos := p.cur().Start
		p.advance()
		consequent := p.parseAssignment()
		p.expectColon()
		alternate := p.parseAssignment()
		return &ast.ConditionalExpression{Pos: ast.Pos{P: pos}, Test: test, Consequent: consequent, Alternate: alternate}
	}
	return test
}

func (p *Parser) expectColon() {
	if p.curIsOp(":") {
		p.advance()
		return
	}
	p.fail(p.cur().Start, "Expected ':' but found '%s'", p.cur().Lexeme)
}

// parseBinary implements precedence climbing over binaryPrecedence; all
// operators here are left-associative.
func (p *Parser) parseBinary(minPrec int) ast.Expression {
	left := p.parseUnary()
	for {
		op, ok := p.binaryOperator()
		if !ok {
			return left
		}
		prec := binaryPrecedence[op]
		if prec < minPrec {
			return left
		}
		pos := p.cur().Start
		p.advance()
		right := p.parseBinary(prec + 1)
		if op == "&&" || op == "||" {
			left = &ast.LogicalExpression{Pos: ast.Pos{P: pos}, Operator: op, Left: left, Right: right}
		} else {
			left = &ast.BinaryExpression{Pos: ast.Pos{P: pos}, Operator: op, Left: left, Right: right}
		}
	}
}

var unaryOperators = map[string]bool{
	"!": true, "-": true, "+": true, "typeof": true, "void": true, "delete": true,
}

func (p *Parser) parseUnary() ast.Expression {
	t := p.cur()
	if (t.Kind == token.OPERATOR || t.Kind == token.KEYWORD) && unaryOperators[t.Lexeme] {
		pos := t.Start
		p.advance()
		arg := p.parseUnary()
		return &ast.UnaryExpression{Pos: ast.Pos{P: pos}, Operator: t.Lexeme, Argument: arg, Prefix: true}
	}
	if t.Kind == token.OPERATOR && (t.Lexeme == "++" || t.Lexeme == "--") {
		pos := t.Start
		p.advance()
		arg := p.parseUnary()
		return &ast.UpdateExpression{Pos: ast.Pos{P: pos}, Operator: t.Lexeme, Argument: arg, Prefix: true}
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() ast.Expression {
	expr := p.parseCallOrMember()
	t := p.cur()
	if t.Kind == token.OPERATOR && (t.Lexeme == "++" || t.Lexeme == "--") {
		p.advance()
		return &ast.UpdateExpression{Pos: ast.Pos{P: t.Start}, Operator: t.Lexeme, Argument: expr, Prefix: false}
	}
	return expr
}

func (p *Parser) parseCallOrMember() ast.Expression {
	expr := p.parsePrimary()
	for {
		switch {
		case p.curIsPunct("."):
			pos := p.cur().Start
			p.advance()
			prop := p.expectIdent()
			expr = &ast.MemberExpression{Pos: ast.Pos{P: pos}, Object: expr, Property: prop, Computed: false}
		case p.curIsPunct("["):
			pos := p.cur().Start
			p.advance()
			prop := p.parseExpression()
			p.expectPunct("]")
			expr = &ast.MemberExpression{Pos: ast.Pos{P: pos}, Object: expr, Property: prop, Computed: true}
		case p.curIsPunct("("):
			pos := p.cur().Start
			p.advance()
			args := p.parseArgumentList()
			p.expectPunct(")")
			expr = &ast.CallExpression{Pos: ast.Pos{P: pos}, Callee: expr, Arguments: args}
		default:
			return expr
		}
	}
}

func (p *Parser) parseArgumentList() []ast.Expression {
	var args []ast.Expression
	if p.curIsPunct(")") {
		return args
	}
	for {
		args = append(args, p.parseAssignment())
		if p.curIsPunct(",") {
			p.advance()
			continue
		}
		break
	}
	return args
}

func (p *Parser) parsePrimary() ast.Expression {
	t := p.cur()
	switch {
	case t.Kind == token.IDENT:
		p.advance()
		return &ast.Identifier{Pos: ast.Pos{P: t.Start}, Name: t.Lexeme}
	case t.Kind == token.NUMBER:
		p.advance()
		return &ast.Literal{Pos: ast.Pos{P: t.Start}, Kind: ast.NumberLiteral, Value: parseNumberValue(t.Lexeme), Raw: t.Lexeme}
	case t.Kind == token.STRING:
		p.advance()
		return &ast.Literal{Pos: ast.Pos{P: t.Start}, Kind: ast.StringLiteral, Value: stripQuotes(t.Lexeme), Raw: t.Lexeme}
	case t.Kind == token.TEMPLATE:
		p.advance()
		return &ast.TemplateLiteral{Pos: ast.Pos{P: t.Start}, Raw: t.Lexeme}
	case t.Kind == token.KEYWORD && t.Lexeme == "true":
		p.advance()
		return &ast.Literal{Pos: ast.Pos{P: t.Start}, Kind: ast.BooleanLiteral, Value: true, Raw: "true"}
	case t.Kind == token.KEYWORD && t.Lexeme == "false":
		p.advance()
		return &ast.Literal{Pos: ast.Pos{P: t.Start}, Kind: ast.BooleanLiteral, Value: false, Raw: "false"}
	case t.Kind == token.KEYWORD && t.Lexeme == "null":
		p.advance()
		return &ast.Literal{Pos: ast.Pos{P: t.Start}, Kind: ast.NullLiteral, Value: nil, Raw: "null"}
	case t.Kind == token.KEYWORD && t.Lexeme == "undefined":
		// undefined is not in token.KEYWORDS, so the lexer emits it as IDENT
		// and the IDENT case above already yields this same Identifier; either
		// way it resolves through the preloaded builtin of the same name.
		p.advance()
		return &ast.Identifier{Pos: ast.Pos{P: t.Start}, Name: "undefined"}
	case p.curIsPunct("("):
		p.advance()
		expr := p.parseExpression()
		p.expectPunct(")")
		return expr
	case p.curIsPunct("["):
		return p.parseArrayExpression()
	case p.curIsPunct("{"):
		return p.parseObjectExpression()
	}

	pos := t.Start
	lexeme := t.Lexeme
	p.bag.AddError(pos, "", "Unexpected token: '%s'", lexeme)
	// The offending token is left in place: synchronize() skips it as its
	// first step, so a statement that follows it is not swallowed.
	panic(parseError{})
}

func (p *Parser) parseArrayExpression() *ast.ArrayExpression {
	pos := p.cur().Start
	p.advance() // '['
	var elements []ast.Expression
	for !p.curIsPunct("]") && !p.atEOF() {
		if p.curIsPunct(",") {
			elements = append(elements, nil)
			p.advance()
			continue
		}
		elements = append(elements, p.parseAssignment())
		if p.curIsPunct(",") {
			p.advance()
		} else {
			break
		}
	}
	p.expectPunct("]")
	return &ast.ArrayExpression{Pos: ast.Pos{P: pos}, Elements: elements}
}

func (p *Parser) parseObjectExpression() *ast.ObjectExpression {
	pos := p.cur().Start
	p.advance() // '{'
	var props []ast.Property
	for !p.curIsPunct("}") && !p.atEOF() {
		key := p.parsePropertyKey()
		p.expectColon()
		value := p.parseAssignment()
		props = append(props, ast.Property{Key: key, Value: value, Kind: "init"})
		if p.curIsPunct(",") {
			p.advance()
		} else {
			break
		}
	}
	p.expectPunct("}")
	return &ast.ObjectExpression{Pos: ast.Pos{P: pos}, Properties: props}
}

func (p *Parser) parsePropertyKey() ast.Expression {
	t := p.cur()
	switch {
	case t.Kind == token.IDENT || t.Kind == token.KEYWORD:
		p.advance()
		return &ast.Identifier{Pos: ast.Pos{P: t.Start}, Name: t.Lexeme}
	case t.Kind == token.STRING:
		p.advance()
		return &ast.Literal{Pos: ast.Pos{P: t.Start}, Kind: ast.StringLiteral, Value: stripQuotes(t.Lexeme), Raw: t.Lexeme}
	case t.Kind == token.NUMBER:
		p.advance()
		return &ast.Literal{Pos: ast.Pos{P: t.Start}, Kind: ast.NumberLiteral, Value: parseNumberValue(t.Lexeme), Raw: t.Lexeme}
	}
	p.fail(t.Start, "Expected object key but found '%s'", t.Lexeme)
	return nil
}

func stripQuotes(lexeme string) string {
	if len(lexeme) >= 2 {
		return lexeme[1 : len(lexeme)-1]
	}
	return lexeme
}

func parseNumberValue(lexeme string) float64 {
	if strings.HasPrefix(lexeme, "0x") || strings.HasPrefix(lexeme, "0X") {
		n, _ := strconv.ParseInt(lexeme[2:], 16, 64)
		return float64(n)
	}
	if strings.HasPrefix(lexeme, "0b") || strings.HasPrefix(lexeme, "0B") {
		n, _ := strconv.ParseInt(lexeme[2:], 2, 64)
		return float64(n)
	}
	f, _ := strconv.ParseFloat(lexeme, 64)
	return f
}
