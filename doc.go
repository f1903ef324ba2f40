// Package lex implements a generic, table-driven lexical analyser.
//
// A lexer is declared as an ordered list of (pattern, constructor) rules
// plus a whitespace classifier, assembled with a Builder:
//
//	lexer, err := lex.NewBuilder[MyToken]().
//	    SkipWhitespaces(skipSpaces).
//	    Add(`;`, lex.Constant[MyToken](Semicolon{})).
//	    Add(`[a-z]+`, func(m lex.Match) MyToken { return Word{Name: m.Text()} }).
//	    Build()
//
// Patterns are matched anchored at the current cursor, in registration
// order; the first rule that matches wins, regardless of match length.
// Build compiles and validates every pattern up front, so malformed
// configuration can never surface mid-tokenization.
//
// The compiled Lexer is immutable and may be shared freely. Tokenization
// state lives in a Stream, opened per source text:
//
//	stream := lexer.Tokens(source, "example.my")
//	for {
//	    meta, err := stream.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err // unrecognized input, with position
//	    }
//	    fmt.Println(meta.Pos, meta.Token.Describe())
//	}
//
// Streams are lazy: each token is matched only when pulled. Adapters such
// as Filter compose over any TokenStream without knowledge of the concrete
// token type; see lang/ebnf.DropComments for a typical use.
//
// Front-ends for specific notations live under lang/. Each declares its
// own closed token set implementing the Token interface.
package lex
