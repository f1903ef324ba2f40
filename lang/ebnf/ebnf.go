// Package ebnf lexes EBNF (Extended Backus-Naur Form), consisting of the
// following lexemes:
//
//   - terminals (eg. "fn", ">=");
//   - non-terminals (eg. <Condition>, <Rule>);
//   - two operators: definition (::=) and alternative (|);
//   - repetitions ({, });
//   - options ([, ]);
//   - grouping parenthesis;
//   - the rule delimiter, a semicolon;
//   - comments: // until end of line, or /* ... */.
//
// The delimiter is optional after the last rule.
package ebnf

import (
	"fmt"
	"strings"

	"github.com/lexkit/lex"
)

// TokenType identifies the closed set of EBNF tokens.
type TokenType int

const (
	Terminal TokenType = iota
	NonTerminal
	Def
	Alt
	RepeatStart
	RepeatEnd
	OptionalStart
	OptionalEnd
	GroupStart
	GroupEnd
	Delimiter
	Comment
)

// Token is one EBNF token. Text carries the payload of Terminal,
// NonTerminal and Comment tokens, without the surrounding markers.
type Token struct {
	Type TokenType
	Text string
}

var spellings = map[TokenType]string{
	Def:           "::=",
	Alt:           "|",
	RepeatStart:   "{",
	RepeatEnd:     "}",
	OptionalStart: "[",
	OptionalEnd:   "]",
	GroupStart:    "(",
	GroupEnd:      ")",
	Delimiter:     ";",
}

func (t Token) Describe() string {
	switch t.Type {
	case Terminal:
		return fmt.Sprintf("\"%s\"", t.Text)
	case NonTerminal:
		return fmt.Sprintf("<%s>", t.Text)
	case Comment:
		return fmt.Sprintf("/* %s */\n", t.Text)
	default:
		return spellings[t.Type]
	}
}

func (t Token) Descriptor() string {
	switch t.Type {
	case Terminal:
		return "Terminal"
	case NonTerminal:
		return "NonTerminal"
	case Comment:
		return "Comment"
	default:
		return spellings[t.Type]
	}
}

func skipWhitespace(source string) string {
	return strings.TrimLeft(source, " \t\r\n")
}

// New compiles the EBNF lexer. The result is immutable and may be shared.
func New() *lex.Lexer[Token] {
	return lex.Must(lex.NewBuilder[Token]().
		SkipWhitespaces(skipWhitespace).
		Add(`::=`, lex.Constant(Token{Type: Def})).
		Add(`\|`, lex.Constant(Token{Type: Alt})).
		Add(`<(.+?)>`, func(m lex.Match) Token {
			return Token{Type: NonTerminal, Text: m.Group(1)}
		}).
		Add(`"(.*?)"`, func(m lex.Match) Token {
			return Token{Type: Terminal, Text: m.Group(1)}
		}).
		Add(`\{`, lex.Constant(Token{Type: RepeatStart})).
		Add(`\}`, lex.Constant(Token{Type: RepeatEnd})).
		Add(`\[`, lex.Constant(Token{Type: OptionalStart})).
		Add(`\]`, lex.Constant(Token{Type: OptionalEnd})).
		Add(`\(`, lex.Constant(Token{Type: GroupStart})).
		Add(`\)`, lex.Constant(Token{Type: GroupEnd})).
		Add(`;`, lex.Constant(Token{Type: Delimiter})).
		Add(`//([^\n]*)\n?`, func(m lex.Match) Token {
			return Token{Type: Comment, Text: m.Group(1)}
		}).
		Add(`(?s)/\*(.*?)\*/`, func(m lex.Match) Token {
			return Token{Type: Comment, Text: m.Group(1)}
		}).
		Build())
}

// DropComments wraps a token stream, filtering out Comment tokens.
// Positions and lexemes of the surviving tokens are unchanged, and errors
// pass through as-is.
func DropComments(ts lex.TokenStream[Token]) lex.TokenStream[Token] {
	return lex.Filter[Token](ts, func(tok Token) bool {
		return tok.Type != Comment
	})
}
