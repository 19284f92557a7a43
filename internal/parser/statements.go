package parser

import (
	"github.com/openclassroom/jslite/pkg/ast"
	"github.com/openclassroom/jslite/pkg/token"
)

func (p *Parser) parseStatement() ast.Statement {
	t := p.cur()
	if t.Kind == token.KEYWORD {
		switch t.Lexeme {
		case "function":
			return p.parseFunctionDeclaration()
		case "var", "let", "const":
			decl := p.parseVariableDeclaration()
			p.expectSemicolon()
			return decl
		case "if":
			return p.parseIfStatement()
		case "while":
			return p.parseWhileStatement()
		case "for":
			return p.parseForStatement()
		case "return":
			return p.parseReturnStatement()
		}
	}
	if p.curIsPunct("{") {
		return p.parseBlockStatement()
	}
	return p.parseExpressionStatement()
}

func (p *Parser) parseFunctionDeclaration() *ast.FunctionDeclaration {
	pos := p.cur().Start
	p.advance() // 'function'
	id := p.expectIdent()
	p.expectPunct("(")
	params := p.parseParamList()
	p.expectPunct(")")
	body := p.parseBlockStatement()
	return &ast.FunctionDeclaration{Pos: ast.Pos{P: pos}, ID: id, Params: params, Body: body}
}

func (p *Parser) parseParamList() []*ast.Identifier {
	var params []*ast.Identifier
	if p.curIsPunct(")") {
		return params
	}
	for {
		params = append(params, p.expectIdent())
		if p.curIsPunct(",") {
			p.advance()
			continue
		}
		break
	}
	return params
}

// parseVariableDeclaration parses `var|let|const decl, decl, ...` without
// consuming a trailing terminator; callers decide how the declaration ends
// (a ';' in a plain statement, a ';' boundary inside a for-header).
func (p *Parser) parseVariableDeclaration() *ast.VariableDeclaration {
	pos := p.cur().Start
	kind := ast.VariableKind(p.cur().Lexeme)
	p.advance()

	var decls []*ast.VariableDeclarator
	for {
		dPos := p.cur().Start
		id := p.expectIdent()
		var init ast.Expression
		if p.curIsOp("=") {
			p.advance()
			init = p.parseAssignment()
		}
		decls = append(decls, &ast.VariableDeclarator{Pos: ast.Pos{P: dPos}, ID: id, Init: init})
		if p.curIsPunct(",") {
			p.advance()
			continue
		}
		break
	}
	return &ast.VariableDeclaration{Pos: ast.Pos{P: pos}, Kind: kind, Declarators: decls}
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	pos := p.cur().Start
	p.expectPunct("{")
	var stmts []ast.Statement
	for !p.curIsPunct("}") && !p.atEOF() {
		if stmt := p.parseStatementRecovering(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	p.expectPunct("}")
	return &ast.BlockStatement{Pos: ast.Pos{P: pos}, Statements: stmts}
}

func (p *Parser) parseIfStatement() *ast.IfStatement {
	pos := p.cur().Start
	p.advance() // 'if'
	p.expectPunct("(")
	test := p.parseExpression()
	p.expectPunct(")")
	consequent := p.parseStatement()
	var alternate ast.Statement
	if p.curIsKeyword("else") {
		p.advance()
		alternate = p.parseStatement()
	}
	return &ast.IfStatement{Pos: ast.Pos{P: pos}, Test: test, Consequent: consequent, Alternate: alternate}
}

func (p *Parser) parseWhileStatement() *ast.WhileStatement {
	pos := p.cur().Start
	p.advance() // 'while'
	p.expectPunct("(")
	test := p.parseExpression()
	p.expectPunct(")")
	body := p.parseStatement()
	return &ast.WhileStatement{Pos: ast.Pos{P: pos}, Test: test, Body: body}
}

// parseForStatement accepts the standard three-part header uniformly: init
// is either a var/let/const declaration or a bare expression, followed by a
// ';'-separated test and update, each optional.
func (p *Parser) parseForStatement() *ast.ForStatement {
	pos := p.cur().Start
	p.advance() // 'for'
	p.expectPunct("(")

	var init ast.Node
	if p.curIsKeyword("var") || p.curIsKeyword("let") || p.curIsKeyword("const") {
		init = p.parseVariableDeclaration()
	} else if !p.curIsPunct(";") {
		init = p.parseExpression()
	}
	p.expectPunct(";")

	var test ast.Expression
	if !p.curIsPunct(";") {
		test = p.parseExpression()
	}
	p.expectPunct(";")

	var update ast.Expression
	if !p.curIsPunct(")") {
		update = p.parseExpression()
	}
	p.expectPunct(")")

	body := p.parseStatement()
	return &ast.ForStatement{Pos: ast.Pos{P: pos}, Init: init, Test: test, Update: update, Body: body}
}

func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	pos := p.cur().Start
	p.advance() // 'return'
	var arg ast.Expression
	if !p.curIsPunct(";") && !p.curIsPunct("}") && !p.atEOF() {
		arg = p.parseExpression()
	}
	p.expectSemicolon()
	return &ast.ReturnStatement{Pos: ast.Pos{P: pos}, Argument: arg}
}

func (p *Parser) parseExpressionStatement() *ast.ExpressionStatement {
	pos := p.cur().Start
	expr := p.parseExpression()
	p.expectSemicolon()
	return &ast.ExpressionStatement{Pos: ast.Pos{P: pos}, Expression: expr}
}
