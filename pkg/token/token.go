// Package token defines the lexical vocabulary shared by the lexer, parser
// and semantic analyzer: token kinds, the immutable Token value, and the
// KEYWORDS/OPERATORS/PUNCTUATORS tables.
package token

import "fmt"

// Kind identifies the lexical category of a Token.
type Kind int

const (
	ILLEGAL Kind = iota // unrecognized character
	EOF                 // end of input
	COMMENT             // // line or /* block */ comment

	literalBegin
	IDENT    // identifiers, including undefined (true, false and null are KEYWORDs)
	NUMBER   // decimal/hex/binary numeric literal
	STRING   // single or double quoted string literal
	TEMPLATE // backtick template literal
	literalEnd

	keywordBegin
	KEYWORD // any word in the KEYWORDS set
	keywordEnd

	operatorBegin
	OPERATOR // any lexeme in the OPERATORS set
	operatorEnd

	PUNCTUATOR // any lexeme in the PUNCTUATORS set
)

var kindStrings = [...]string{
	ILLEGAL:    "ILLEGAL",
	EOF:        "EOF",
	COMMENT:    "COMMENT",
	IDENT:      "IDENT",
	NUMBER:     "NUMBER",
	STRING:     "STRING",
	TEMPLATE:   "TEMPLATE",
	KEYWORD:    "KEYWORD",
	OPERATOR:   "OPERATOR",
	PUNCTUATOR: "PUNCTUATOR",
}

// String returns the name of a token Kind, e.g. "IDENT".
func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindStrings) && kindStrings[k] != "" {
		return kindStrings[k]
	}
	return "UNKNOWN"
}

// IsLiteral reports whether k is one of the literal-bearing kinds.
func (k Kind) IsLiteral() bool { return k > literalBegin && k < literalEnd }

// IsKeyword reports whether k is the keyword kind.
func (k Kind) IsKeyword() bool { return k > keywordBegin && k < keywordEnd }

// IsOperator reports whether k is the operator kind.
func (k Kind) IsOperator() bool { return k > operatorBegin && k < operatorEnd }

// Position is a 1-based line/column pair plus the byte offset it corresponds
// to. Column counts Unicode code points from the start of the line, not
// display width or byte count, matching the lexer's rune-based cursor.
type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is an immutable atom of source produced by the lexer. Strings and
// templates retain their surrounding quotes/backticks in Lexeme.
type Token struct {
	Kind    Kind
	Lexeme  string
	Start   Position
	End     Position
}

func (t Token) String() string {
	if t.Lexeme == "" {
		return t.Kind.String()
	}
	return fmt.Sprintf("%s(%q)", t.Kind, t.Lexeme)
}

// KEYWORDS is the exact reserved-word set recognized by the lexer. Presence
// here turns an otherwise-IDENT lexeme into a KEYWORD token.
var KEYWORDS = map[string]bool{
	"abstract": true, "await": true, "boolean": true, "break": true,
	"byte": true, "case": true, "catch": true, "char": true, "class": true,
	"const": true, "continue": true, "debugger": true, "default": true,
	"delete": true, "do": true, "double": true, "else": true, "enum": true,
	"export": true, "extends": true, "false": true, "final": true,
	"finally": true, "float": true, "for": true, "function": true,
	"goto": true, "if": true, "implements": true, "import": true, "in": true,
	"instanceof": true, "int": true, "interface": true, "let": true,
	"long": true, "native": true, "new": true, "null": true, "package": true,
	"private": true, "protected": true, "public": true, "return": true,
	"short": true, "static": true, "super": true, "switch": true,
	"synchronized": true, "this": true, "throw": true, "throws": true,
	"transient": true, "true": true, "try": true, "typeof": true, "var": true,
	"void": true, "volatile": true, "while": true, "with": true,
	"yield": true, "async": true, "of": true,
}

// OPERATORS is the exact set of operator lexemes the lexer produces,
// longest-match first. Ordered by length (3, 2, 1) for use by the lexer's
// greedy-match loop.
var OPERATORS = []string{
	// 3-character
	"===", "!==", ">>>", "**=",
	// 2-character
	"==", "!=", ">=", "<=", "&&", "||", "++", "--",
	"+=", "-=", "*=", "/=", "%=", "=>", "**", "<<", ">>",
	// 1-character
	"+", "-", "*", "/", "%", "=", ">", "<", "!", "&", "|", "^", "~", "?", ":",
}

// PUNCTUATORS is the exact set of punctuator lexemes, longest-match first.
var PUNCTUATORS = []string{
	"...", "?.",
	"{", "}", "[", "]", "(", ")", ";", ",", ".",
}

// Builtins is the ordered list of identifiers preloaded into the global
// scope by the semantic analyzer, each marked builtin=true, initialized=true.
var Builtins = []string{
	"console", "window", "document", "Array", "Object", "String", "Number",
	"Boolean", "Date", "RegExp", "Math", "JSON", "parseInt", "parseFloat",
	"isNaN", "isFinite", "eval", "setTimeout", "setInterval", "clearTimeout",
	"clearInterval", "undefined", "NaN", "Infinity",
}

// LookupIdent classifies a raw identifier lexeme as KEYWORD or IDENT.
func LookupIdent(ident string) Kind {
	if KEYWORDS[ident] {
		return KEYWORD
	}
	return IDENT
}
