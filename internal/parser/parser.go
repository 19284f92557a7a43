// Package parser implements the recursive-descent, precedence-climbing
// parser that turns a token stream into an ast.Program, with panic-mode
// error recovery so a single syntax error never aborts the whole parse.
package parser

import (
	"github.com/openclassroom/jslite/internal/diag"
	"github.com/openclassroom/jslite/internal/lexer"
	"github.com/openclassroom/jslite/pkg/ast"
	"github.com/openclassroom/jslite/pkg/token"
)

// statementStarters are the tokens synchronize() treats as safe resumption
// points after a syntax error.
var statementStarters = map[string]bool{
	"function": true, "var": true, "let": true, "const": true,
	"if": true, "while": true, "for": true, "return": true,
}

// Parser consumes a token stream and builds an ast.Program.
type Parser struct {
	c   *cursor
	bag diag.Bag
}

// New lexes src completely and returns a Parser ready to produce a Program.
func New(src string) *Parser {
	l := lexer.New(src)
	var toks []token.Token
	for {
		t := l.NextToken()
		toks = append(toks, t)
		if t.Kind == token.EOF {
			break
		}
	}
	p := &Parser{c: newCursor(toks)}
	p.bag.Errors = append(p.bag.Errors, l.Errors()...)
	return p
}

// Errors returns the accumulated syntax diagnostics, lex diagnostics first
// (they were appended at construction) in source order.
func (p *Parser) Errors() []diag.Diagnostic { return p.bag.Errors }

// parseError is the sentinel panicked by fail() to unwind to the nearest
// statement boundary; it carries no data, the diagnostic is already
// recorded in p.bag by the time it is thrown.
type parseError struct{}

func (p *Parser) fail(pos token.Position, format string, args ...any) {
	p.bag.AddError(pos, "", format, args...)
	panic(parseError{})
}

func (p *Parser) cur() token.Token  { return p.c.current() }
func (p *Parser) peek(n int) token.Token { return p.c.peek(n) }
func (p *Parser) advance() token.Token   { return p.c.advance() }
func (p *Parser) atEOF() bool            { return p.c.atEOF() }

func (p *Parser) curIsPunct(lexeme string) bool {
	t := p.cur()
	return t.Kind == token.PUNCTUATOR && t.Lexeme == lexeme
}

func (p *Parser) curIsOp(lexeme string) bool {
	t := p.cur()
	return t.Kind == token.OPERATOR && t.Lexeme == lexeme
}

func (p *Parser) curIsKeyword(word string) bool {
	t := p.cur()
	return t.Kind == token.KEYWORD && t.Lexeme == word
}

// expectPunct consumes the punctuator if present, otherwise fails with a
// recoverable syntax error.
func (p *Parser) expectPunct(lexeme string) token.Token {
	if p.curIsPunct(lexeme) {
		return p.advance()
	}
	p.fail(p.cur().Start, "Expected '%s' but found '%s'", lexeme, p.cur().Lexeme)
	return token.Token{}
}

// expectSemicolon records a syntax error on a missing ';' but, per the
// grammar's error-tolerance contract, does not trigger panic-mode recovery:
// a missing terminator must not eat the next statement.
func (p *Parser) expectSemicolon() {
	if p.curIsPunct(";") {
		p.advance()
		return
	}
	p.bag.AddError(p.cur().Start, "", "Missing expected token: ';'")
}

func (p *Parser) expectIdent() *ast.Identifier {
	t := p.cur()
	if t.Kind == token.IDENT {
		p.advance()
		return &ast.Identifier{Pos: ast.Pos{P: t.Start}, Name: t.Lexeme}
	}
	p.fail(t.Start, "Expected identifier but found '%s'", t.Lexeme)
	return nil
}

// ParseProgram parses the whole token stream, recovering from every syntax
// error at the statement level so later, well-formed statements still
// appear in the result.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.atEOF() {
		if stmt := p.parseStatementRecovering(); stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
	}
	return prog
}

func (p *Parser) parseStatementRecovering() (stmt ast.Statement) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				p.synchronize()
				stmt = nil
				return
			}
			panic(r)
		}
	}()
	return p.parseStatement()
}

// synchronize implements panic-mode recovery: advance at least one token
// (guaranteeing forward progress), then skip tokens until a ';' (consumed)
// or a statement-starting keyword (left in place) or EOF is reached.
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEOF() {
		if p.curIsPunct(";") {
			p.advance()
			return
		}
		if p.cur().Kind == token.KEYWORD && statementStarters[p.cur().Lexeme] {
			return
		}
		p.advance()
	}
}
