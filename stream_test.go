package lex

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStreamPositions(t *testing.T) {
	lexer := wordsAndNumbers(t)
	stream := lexer.Tokens("hello\n123 456\n⌘orld", "sample.txt")

	metas, err := ReadAll[testToken](stream)
	require.NoError(t, err)
	require.Equal(t, []TokenMeta[testToken]{
		{Token: testToken{"Ident", "hello"}, Pos: Position{Filename: "sample.txt", Offset: 0, Line: 1, Column: 1}, Lexeme: "hello"},
		{Token: testToken{"Number", "123"}, Pos: Position{Filename: "sample.txt", Offset: 6, Line: 2, Column: 1}, Lexeme: "123"},
		{Token: testToken{"Number", "456"}, Pos: Position{Filename: "sample.txt", Offset: 10, Line: 2, Column: 5}, Lexeme: "456"},
		{Token: testToken{"Ident", "⌘orld"}, Pos: Position{Filename: "sample.txt", Offset: 14, Line: 3, Column: 1}, Lexeme: "⌘orld"},
	}, metas)

	// The stream is exhausted, not halted by an error.
	_, err = stream.Next()
	require.Equal(t, io.EOF, err)
}

func TestStreamWhitespaceOnlySource(t *testing.T) {
	lexer := wordsAndNumbers(t)
	metas, err := ReadAll[testToken](lexer.Tokens(" \t\r\n ", ""))
	require.NoError(t, err)
	require.Empty(t, metas)
}

func TestStreamEmptySource(t *testing.T) {
	lexer := wordsAndNumbers(t)
	metas, err := ReadAll[testToken](lexer.Tokens("", ""))
	require.NoError(t, err)
	require.Empty(t, metas)
}

func TestStreamErrorPosition(t *testing.T) {
	lexer := wordsAndNumbers(t)
	stream := lexer.Tokens("hello\n  $boom", "bad.txt")

	_, err := stream.Next()
	require.NoError(t, err)

	_, err = stream.Next()
	var uerr *UnrecognizedInputError
	require.ErrorAs(t, err, &uerr)
	require.Equal(t, Position{Filename: "bad.txt", Offset: 8, Line: 2, Column: 3}, uerr.Pos)
	require.Equal(t, "$boom", uerr.Fragment)
	require.Equal(t, `bad.txt:2:3: unrecognized input "$boom"`, uerr.Error())

	// Halted permanently: the error is reported exactly once.
	_, err = stream.Next()
	require.Equal(t, io.EOF, err)
	_, err = stream.Next()
	require.Equal(t, io.EOF, err)
}

func TestStreamDeterminism(t *testing.T) {
	lexer := wordsAndNumbers(t)
	source := "one 2 three\n44 five"

	first, err := ReadAll[testToken](lexer.Tokens(source, "a.txt"))
	require.NoError(t, err)
	second, err := ReadAll[testToken](lexer.Tokens(source, "a.txt"))
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestSharedLexerIndependentStreams(t *testing.T) {
	lexer := wordsAndNumbers(t)
	a := lexer.Tokens("aa bb", "a.txt")
	b := lexer.Tokens("11\n22", "b.txt")

	// Interleave pulls to check the streams do not interfere.
	ma, err := a.Next()
	require.NoError(t, err)
	mb, err := b.Next()
	require.NoError(t, err)
	require.Equal(t, TokenMeta[testToken]{Token: testToken{"Ident", "aa"}, Pos: Position{Filename: "a.txt", Line: 1, Column: 1}, Lexeme: "aa"}, ma)
	require.Equal(t, TokenMeta[testToken]{Token: testToken{"Number", "11"}, Pos: Position{Filename: "b.txt", Line: 1, Column: 1}, Lexeme: "11"}, mb)

	mb, err = b.Next()
	require.NoError(t, err)
	require.Equal(t, Position{Filename: "b.txt", Offset: 3, Line: 2, Column: 1}, mb.Pos)
	ma, err = a.Next()
	require.NoError(t, err)
	require.Equal(t, Position{Filename: "a.txt", Offset: 3, Line: 1, Column: 4}, ma.Pos)
}

func TestStreamLazy(t *testing.T) {
	// A constructor side effect proves tokens are built one pull at a time.
	built := 0
	lexer, err := NewBuilder[testToken]().
		SkipWhitespaces(skipSpaces).
		Add(`[a-z]+`, func(m Match) testToken {
			built++
			return testToken{kind: "Ident", text: m.Text()}
		}).
		Build()
	require.NoError(t, err)

	stream := lexer.Tokens("a b c", "")
	require.Equal(t, 0, built)
	_, err = stream.Next()
	require.NoError(t, err)
	require.Equal(t, 1, built)
	_, err = stream.Next()
	require.NoError(t, err)
	require.Equal(t, 2, built)
}

func TestRaw(t *testing.T) {
	metas := []TokenMeta[testToken]{
		{Token: testToken{"Ident", "a"}, Lexeme: "a"},
		{Token: testToken{"Number", "1"}, Lexeme: "1"},
	}
	require.Equal(t, []testToken{{"Ident", "a"}, {"Number", "1"}}, Raw(metas))
}

func TestPositionString(t *testing.T) {
	require.Equal(t, "x.bnf:3:7", Position{Filename: "x.bnf", Line: 3, Column: 7}.String())
	require.Equal(t, "<source>:1:1", Position{Line: 1, Column: 1}.String())
}
