// Package bnf lexes a variant of BNF consisting of the following lexemes:
//
//   - terminals in double quotes (eg. "fn", ">=");
//   - non-terminals in triangle quotes (eg. <Condition>, <Rule>);
//   - two operators: definition (::=) and alternative (|);
//   - the rule delimiter, a semicolon.
//
// The delimiter is optional after the last rule.
package bnf

import (
	"fmt"
	"strings"

	"github.com/lexkit/lex"
)

// TokenType identifies the closed set of BNF tokens.
type TokenType int

const (
	Terminal TokenType = iota
	NonTerminal
	Def
	Alt
	Delimiter
)

// Token is one BNF token. Text carries the payload of Terminal and
// NonTerminal tokens, without the surrounding quotes.
type Token struct {
	Type TokenType
	Text string
}

func (t Token) Describe() string {
	switch t.Type {
	case Terminal:
		return fmt.Sprintf("\"%s\"", t.Text)
	case NonTerminal:
		return fmt.Sprintf("<%s>", t.Text)
	case Def:
		return "::="
	case Alt:
		return "|"
	default:
		return ";"
	}
}

func (t Token) Descriptor() string {
	switch t.Type {
	case Terminal:
		return "Terminal"
	case NonTerminal:
		return "NonTerminal"
	case Def:
		return "::="
	case Alt:
		return "|"
	default:
		return ";"
	}
}

func skipWhitespace(source string) string {
	return strings.TrimLeft(source, " \t\r\n")
}

// New compiles the BNF lexer. The result is immutable and may be shared.
func New() *lex.Lexer[Token] {
	return lex.Must(lex.NewBuilder[Token]().
		SkipWhitespaces(skipWhitespace).
		Add(`;`, lex.Constant(Token{Type: Delimiter})).
		Add(`::=`, lex.Constant(Token{Type: Def})).
		Add(`\|`, lex.Constant(Token{Type: Alt})).
		Add(`<(.+?)>`, func(m lex.Match) Token {
			return Token{Type: NonTerminal, Text: m.Group(1)}
		}).
		Add(`"(.*?)"`, func(m lex.Match) Token {
			return Token{Type: Terminal, Text: m.Group(1)}
		}).
		Build())
}
