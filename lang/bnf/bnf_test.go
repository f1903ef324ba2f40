package bnf

import (
	"io"
	"testing"

	"github.com/lexkit/lex"
	"github.com/stretchr/testify/require"
)

const source = `
<A> ::= <B> | "c" <D> ;
`

var tokens = []Token{
	{Type: NonTerminal, Text: "A"},
	{Type: Def},
	{Type: NonTerminal, Text: "B"},
	{Type: Alt},
	{Type: Terminal, Text: "c"},
	{Type: NonTerminal, Text: "D"},
	{Type: Delimiter},
}

func TestLexer(t *testing.T) {
	metas, err := lex.ReadAll[Token](New().Tokens(source, "test.bnf"))
	require.NoError(t, err)
	require.Equal(t, tokens, lex.Raw(metas))
}

func TestLexerPositions(t *testing.T) {
	metas, err := lex.ReadAll[Token](New().Tokens(`<A> ::= "b"`, "test.bnf"))
	require.NoError(t, err)
	require.Equal(t, []lex.TokenMeta[Token]{
		{Token: Token{Type: NonTerminal, Text: "A"}, Pos: lex.Position{Filename: "test.bnf", Offset: 0, Line: 1, Column: 1}, Lexeme: "<A>"},
		{Token: Token{Type: Def}, Pos: lex.Position{Filename: "test.bnf", Offset: 4, Line: 1, Column: 5}, Lexeme: "::="},
		{Token: Token{Type: Terminal, Text: "b"}, Pos: lex.Position{Filename: "test.bnf", Offset: 8, Line: 1, Column: 9}, Lexeme: `"b"`},
	}, metas)
}

func TestUnrecognizedInput(t *testing.T) {
	stream := New().Tokens(`<A> ::= $`, "test.bnf")

	var got []Token
	for {
		meta, err := stream.Next()
		if err == io.EOF {
			t.Fatal("expected a lex error before EOF")
		}
		if err != nil {
			var uerr *lex.UnrecognizedInputError
			require.ErrorAs(t, err, &uerr)
			require.Equal(t, lex.Position{Filename: "test.bnf", Offset: 8, Line: 1, Column: 9}, uerr.Pos)
			break
		}
		got = append(got, meta.Token)
	}
	require.Equal(t, []Token{
		{Type: NonTerminal, Text: "A"},
		{Type: Def},
	}, got)

	// Nothing after the error.
	_, err := stream.Next()
	require.Equal(t, io.EOF, err)
}

func TestDescribe(t *testing.T) {
	require.Equal(t, `"c"`, Token{Type: Terminal, Text: "c"}.Describe())
	require.Equal(t, "<Rule>", Token{Type: NonTerminal, Text: "Rule"}.Describe())
	require.Equal(t, "::=", Token{Type: Def}.Describe())
	require.Equal(t, "|", Token{Type: Alt}.Describe())
	require.Equal(t, ";", Token{Type: Delimiter}.Describe())
}

func TestDescriptor(t *testing.T) {
	require.Equal(t, "Terminal", Token{Type: Terminal, Text: "c"}.Descriptor())
	require.Equal(t, "NonTerminal", Token{Type: NonTerminal, Text: "Rule"}.Descriptor())
	require.Equal(t, "::=", Token{Type: Def}.Descriptor())
	require.Equal(t, "|", Token{Type: Alt}.Descriptor())
	require.Equal(t, ";", Token{Type: Delimiter}.Descriptor())
}
