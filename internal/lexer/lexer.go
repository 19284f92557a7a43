// Package lexer implements the hand-written scanner that turns a source
// string into a stream of positioned pkg/token.Token values plus lex errors.
// The design — a rune cursor over the raw string, a switch on the current
// character plus a longest-match scan over the operator and punctuator
// tables, and an explicit save/restore
// of lexer state for lookahead — follows the compiler-front-end idiom this
// module was adapted from.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/openclassroom/jslite/internal/diag"
	"github.com/openclassroom/jslite/pkg/token"
)

// Lexer scans a single source string. Column positions count Unicode code
// points from the start of the line, not byte offsets or display width.
type Lexer struct {
	input        string
	bag          diag.Bag
	position     int
	readPosition int
	line         int
	column       int
	ch           rune
}

// State is a snapshot of the lexer's cursor, sufficient to rewind scanning
// for speculative parsing.
type State struct {
	position     int
	readPosition int
	line         int
	column       int
	ch           rune
}

// New creates a Lexer over input, stripping a leading UTF-8 BOM if present.
func New(input string) *Lexer {
	if len(input) >= 3 && input[0] == 0xEF && input[1] == 0xBB && input[2] == 0xBF {
		input = input[3:]
	}
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

// Errors returns the accumulated lex diagnostics in source order.
func (l *Lexer) Errors() []diag.Diagnostic { return l.bag.Errors }

func (l *Lexer) addError(pos token.Position, format string, args ...any) {
	l.bag.AddError(pos, "", format, args...)
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		l.column++
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += size
	l.column++
}

func (l *Lexer) advanceLineIfNewline(consumed rune) {
	if consumed == '\n' {
		l.line++
		l.column = 1
	}
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) peekCharN(n int) rune {
	pos := l.readPosition
	var r rune
	for i := 0; i < n; i++ {
		if pos >= len(l.input) {
			return 0
		}
		var size int
		r, size = utf8.DecodeRuneInString(l.input[pos:])
		pos += size
	}
	return r
}

func (l *Lexer) currentPos() token.Position {
	return token.Position{Line: l.line, Column: l.column, Offset: l.position}
}

// SaveState snapshots the scanning cursor for backtracking.
func (l *Lexer) SaveState() State {
	return State{l.position, l.readPosition, l.line, l.column, l.ch}
}

// RestoreState rewinds the cursor to a previously saved State.
func (l *Lexer) RestoreState(s State) {
	l.position, l.readPosition, l.line, l.column, l.ch = s.position, s.readPosition, s.line, s.column, s.ch
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.advanceOne()
	}
}

// NextToken scans and returns the next token. It always makes progress: an
// unrecognized rune yields an ILLEGAL token and advances one codepoint.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()
	pos := l.currentPos()

	switch {
	case l.ch == 0:
		return token.Token{Kind: token.EOF, Start: pos, End: pos}
	case isIdentStart(l.ch):
		lit := l.readIdentifier()
		end := l.currentPos()
		kind := token.LookupIdent(lit)
		return token.Token{Kind: kind, Lexeme: lit, Start: pos, End: end}
	case isDigit(l.ch):
		lit := l.readNumber()
		return token.Token{Kind: token.NUMBER, Lexeme: lit, Start: pos, End: l.currentPos()}
	case l.ch == '"' || l.ch == '\'':
		lit, ok := l.readString(l.ch)
		if !ok {
			l.addError(pos, "Unterminated string literal")
		}
		return token.Token{Kind: token.STRING, Lexeme: lit, Start: pos, End: l.currentPos()}
	case l.ch == '`':
		lit, ok := l.readTemplate()
		if !ok {
			l.addError(pos, "Unterminated template literal")
		}
		return token.Token{Kind: token.TEMPLATE, Lexeme: lit, Start: pos, End: l.currentPos()}
	case l.ch == '/' && l.peekChar() == '/':
		lit := l.readLineComment()
		return token.Token{Kind: token.COMMENT, Lexeme: lit, Start: pos, End: l.currentPos()}
	case l.ch == '/' && l.peekChar() == '*':
		lit, ok := l.readBlockComment()
		if !ok {
			l.addError(pos, "Unterminated block comment")
		}
		return token.Token{Kind: token.COMMENT, Lexeme: lit, Start: pos, End: l.currentPos()}
	}

	// Operators and punctuators share one longest match: "?." is a
	// punctuator even though its first character alone is the "?" operator.
	save := l.SaveState()
	opLit, opOK := l.matchLongestOperator()
	afterOp := l.SaveState()
	l.RestoreState(save)
	if lit, ok := l.matchLongestPunctuator(); ok && (!opOK || len(lit) > len(opLit)) {
		return token.Token{Kind: token.PUNCTUATOR, Lexeme: lit, Start: pos, End: l.currentPos()}
	}
	if opOK {
		l.RestoreState(afterOp)
		return token.Token{Kind: token.OPERATOR, Lexeme: opLit, Start: pos, End: l.currentPos()}
	}

	bad := l.ch
	l.advanceOne()
	l.addError(pos, "Unexpected character: '%c'", bad)
	return token.Token{Kind: token.ILLEGAL, Lexeme: string(bad), Start: pos, End: l.currentPos()}
}

// advanceOne consumes exactly one codepoint, tracking line/column.
func (l *Lexer) advanceOne() {
	ch := l.ch
	l.readChar()
	l.advanceLineIfNewline(ch)
}

func isIdentStart(ch rune) bool {
	return ch == '_' || ch == '$' || unicode.IsLetter(ch)
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || unicode.IsDigit(ch)
}

func isDigit(ch rune) bool { return ch >= '0' && ch <= '9' }

func (l *Lexer) readIdentifier() string {
	var sb strings.Builder
	for isIdentPart(l.ch) {
		sb.WriteRune(l.ch)
		l.advanceOne()
	}
	return sb.String()
}

func (l *Lexer) readNumber() string {
	var sb strings.Builder

	if l.ch == '0' && (l.peekChar() == 'x' || l.peekChar() == 'X') {
		sb.WriteRune(l.ch)
		l.advanceOne()
		sb.WriteRune(l.ch)
		l.advanceOne()
		for isHexDigit(l.ch) {
			sb.WriteRune(l.ch)
			l.advanceOne()
		}
		return sb.String()
	}
	if l.ch == '0' && (l.peekChar() == 'b' || l.peekChar() == 'B') {
		sb.WriteRune(l.ch)
		l.advanceOne()
		sb.WriteRune(l.ch)
		l.advanceOne()
		for l.ch == '0' || l.ch == '1' {
			sb.WriteRune(l.ch)
			l.advanceOne()
		}
		return sb.String()
	}

	for isDigit(l.ch) {
		sb.WriteRune(l.ch)
		l.advanceOne()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		sb.WriteRune(l.ch)
		l.advanceOne()
		for isDigit(l.ch) {
			sb.WriteRune(l.ch)
			l.advanceOne()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		save := l.SaveState()
		var exp strings.Builder
		exp.WriteRune(l.ch)
		l.advanceOne()
		if l.ch == '+' || l.ch == '-' {
			exp.WriteRune(l.ch)
			l.advanceOne()
		}
		if isDigit(l.ch) {
			for isDigit(l.ch) {
				exp.WriteRune(l.ch)
				l.advanceOne()
			}
			sb.WriteString(exp.String())
		} else {
			l.RestoreState(save)
		}
	}
	return sb.String()
}

func isHexDigit(ch rune) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// readString scans a quoted string, decoding \n \t \r \\ \<quote> and
// passing any other escaped character through literally. It returns the
// lexeme including surrounding quotes and whether the string was closed.
func (l *Lexer) readString(quote rune) (string, bool) {
	var sb strings.Builder
	sb.WriteRune(quote)
	l.advanceOne()

	for {
		if l.ch == 0 {
			return sb.String(), false
		}
		if l.ch == quote {
			sb.WriteRune(quote)
			l.advanceOne()
			return sb.String(), true
		}
		if l.ch == '\\' {
			l.advanceOne()
			switch l.ch {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '\\':
				sb.WriteByte('\\')
			case quote:
				sb.WriteRune(quote)
			default:
				sb.WriteRune(l.ch)
			}
			l.advanceOne()
			continue
		}
		sb.WriteRune(l.ch)
		l.advanceOne()
	}
}

// readTemplate scans a backtick template literal. Interpolations ${ ... }
// are balanced-brace counted but never re-lexed; their raw text is kept
// verbatim in the lexeme.
func (l *Lexer) readTemplate() (string, bool) {
	var sb strings.Builder
	sb.WriteRune('`')
	l.advanceOne()

	for {
		if l.ch == 0 {
			return sb.String(), false
		}
		if l.ch == '`' {
			sb.WriteRune('`')
			l.advanceOne()
			return sb.String(), true
		}
		if l.ch == '$' && l.peekChar() == '{' {
			sb.WriteRune('$')
			l.advanceOne()
			depth := 0
			for {
				if l.ch == 0 {
					return sb.String(), false
				}
				sb.WriteRune(l.ch)
				if l.ch == '{' {
					depth++
				}
				if l.ch == '}' {
					depth--
				}
				closing := l.ch == '}' && depth == 0
				l.advanceOne()
				if closing {
					break
				}
			}
			continue
		}
		sb.WriteRune(l.ch)
		l.advanceOne()
	}
}

func (l *Lexer) readLineComment() string {
	var sb strings.Builder
	sb.WriteString("//")
	l.advanceOne()
	l.advanceOne()
	for l.ch != '\n' && l.ch != 0 {
		sb.WriteRune(l.ch)
		l.advanceOne()
	}
	return sb.String()
}

func (l *Lexer) readBlockComment() (string, bool) {
	var sb strings.Builder
	sb.WriteString("/*")
	l.advanceOne()
	l.advanceOne()
	for {
		if l.ch == 0 {
			return sb.String(), false
		}
		if l.ch == '*' && l.peekChar() == '/' {
			sb.WriteString("*/")
			l.advanceOne()
			l.advanceOne()
			return sb.String(), true
		}
		sb.WriteRune(l.ch)
		l.advanceOne()
	}
}

// matchLongestOperator greedily tries a 3-, then 2-, then 1-character match
// against token.OPERATORS.
func (l *Lexer) matchLongestOperator() (string, bool) {
	for _, n := range []int{3, 2, 1} {
		cand := l.peekN(n)
		if len(cand) != n {
			continue
		}
		for _, op := range token.OPERATORS {
			if op == cand {
				l.advanceN(n)
				return op, true
			}
		}
	}
	return "", false
}

func (l *Lexer) matchLongestPunctuator() (string, bool) {
	for _, n := range []int{3, 2, 1} {
		cand := l.peekN(n)
		if len(cand) != n {
			continue
		}
		for _, p := range token.PUNCTUATORS {
			if p == cand {
				l.advanceN(n)
				return p, true
			}
		}
	}
	return "", false
}

// peekN returns the next n runes (including the current one) as a string,
// without consuming them.
func (l *Lexer) peekN(n int) string {
	var sb strings.Builder
	if l.ch == 0 {
		return ""
	}
	sb.WriteRune(l.ch)
	for i := 1; i < n; i++ {
		r := l.peekCharN(i)
		if r == 0 {
			return sb.String()
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advanceOne()
	}
}
