// Package golang lexes the lexical grammar of the Go programming
// language: keywords, identifiers, operators and punctuation, integer,
// floating-point, imaginary, rune and string literals, and comments.
//
// Semicolon insertion is a parser concern and is not performed here; the
// token stream contains exactly what appears in the source.
package golang

import (
	"regexp"
	"strings"

	"github.com/lexkit/lex"
)

// TokenType identifies the closed set of Go tokens.
type TokenType int

const (
	Ident TokenType = iota
	Keyword
	Operator
	Int
	Float
	Imag
	Rune
	String
	Comment
)

var descriptors = map[TokenType]string{
	Ident:    "Ident",
	Keyword:  "Keyword",
	Operator: "Operator",
	Int:      "Int",
	Float:    "Float",
	Imag:     "Imag",
	Rune:     "Rune",
	String:   "String",
	Comment:  "Comment",
}

// Token is one Go token. Text is the raw lexeme, quotes and comment
// markers included.
type Token struct {
	Type TokenType
	Text string
}

func (t Token) Describe() string   { return t.Text }
func (t Token) Descriptor() string { return descriptors[t.Type] }

// keywords are all 25 Go keywords, matched before identifiers.
var keywords = []string{
	"break", "case", "chan", "const", "continue",
	"default", "defer", "else", "fallthrough", "for",
	"func", "go", "goto", "if", "import",
	"interface", "map", "package", "range", "return",
	"select", "struct", "switch", "type", "var",
}

// operators and punctuation, longest spellings first so that eg. <<=
// wins over << and <.
var operators = []string{
	"<<=", ">>=", "&^=", "...",
	"&&", "||", "<-", "++", "--", "==", "!=", "<=", ">=", ":=",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<", ">>", "&^",
	"+", "-", "*", "/", "%", "&", "|", "^", "<", ">", "=", "!",
	"(", ")", "[", "]", "{", "}", ",", ";", ".", ":",
}

// runeLit matches a rune literal: a single unicode char, a \u, \U, octal
// or hex byte escape, or an escaped char, in single quotes.
const runeLit = `'([^\\\n]|\\u[0-9A-Fa-f]{4}|\\U[0-9A-Fa-f]{8}|\\[abfnrtv\\'"]|\\[0-7]{3}|\\x[0-9A-Fa-f]{2})'`

func skipWhitespace(source string) string {
	return strings.TrimLeft(source, " \t\r\n")
}

func constructor(typ TokenType) lex.Constructor[Token] {
	return func(m lex.Match) Token {
		return Token{Type: typ, Text: m.Text()}
	}
}

// New compiles the Go lexer. The result is immutable and may be shared.
func New() *lex.Lexer[Token] {
	b := lex.NewBuilder[Token]().
		SkipWhitespaces(skipWhitespace).
		Add(`//[^\n]*\n?`, constructor(Comment)).
		Add(`(?s)/\*.*?\*/`, constructor(Comment)).
		Add(`(?:`+strings.Join(keywords, "|")+`)\b`, constructor(Keyword)).
		Add(`[\p{L}_][\p{L}\p{Nd}_]*`, constructor(Ident)).
		Add(`(?:\d+\.\d*|\.\d+|\d+)(?:[eE][+-]?\d+)?i`, constructor(Imag)).
		Add(`(?:\d+\.\d*|\.\d+)(?:[eE][+-]?\d+)?|\d+[eE][+-]?\d+`, constructor(Float)).
		Add(`0[xX][0-9A-Fa-f]+|\d+`, constructor(Int)).
		Add(runeLit, constructor(Rune)).
		Add("`[^`]*`", constructor(String)).
		Add(`"(?:\\.|[^"\\\n])*"`, constructor(String))
	for _, op := range operators {
		b.Add(regexp.QuoteMeta(op), lex.Constant(Token{Type: Operator, Text: op}))
	}
	return lex.Must(b.Build())
}
