package lex

import "io"

// A TokenStream produces position-annotated tokens on demand. Next
// returns io.EOF at end of input. Stream and the adapters in this package
// implement it.
type TokenStream[T Token] interface {
	Next() (TokenMeta[T], error)
}

// Stream is a stateful cursor over one source text, driving a shared
// Lexer to lazily produce tokens. A Stream cannot be rewound or
// restarted; open a new one to re-tokenize. It must be confined to a
// single consumer.
type Stream[T Token] struct {
	lexer  *Lexer[T]
	rest   string
	pos    Position
	halted bool
}

// Tokens opens a Stream over source, positioned at line 1, column 1.
// filename is used only for diagnostics and may be empty.
func (l *Lexer[T]) Tokens(source, filename string) *Stream[T] {
	return &Stream[T]{
		lexer: l,
		rest:  source,
		pos:   Position{Filename: filename, Line: 1, Column: 1},
	}
}

// Next produces the next token. Nothing is matched ahead of the cursor;
// each token is computed by the pull that returns it.
//
// At end of input it returns io.EOF. If no rule matches the remaining
// input it returns an *UnrecognizedInputError positioned at the offending
// character, exactly once; the Stream then halts permanently and every
// subsequent call returns io.EOF.
func (s *Stream[T]) Next() (TokenMeta[T], error) {
	if s.halted {
		return TokenMeta[T]{}, io.EOF
	}
	lexeme, rest, err := s.lexer.Next(s.rest)
	if err == io.EOF {
		s.halted = true
		s.rest = rest
		return TokenMeta[T]{}, io.EOF
	}
	if err != nil {
		// rest is the input after the whitespace skip; advancing over the
		// skipped span positions the error at the offending character.
		s.pos.advance(s.rest[:len(s.rest)-len(rest)])
		s.halted = true
		if uerr, ok := err.(*UnrecognizedInputError); ok {
			uerr.Pos = s.pos
		}
		return TokenMeta[T]{}, err
	}
	skipped := len(s.rest) - len(rest) - len(lexeme.Text)
	s.pos.advance(s.rest[:skipped])
	meta := TokenMeta[T]{Token: lexeme.Token, Pos: s.pos, Lexeme: lexeme.Text}
	s.pos.advance(lexeme.Text)
	s.rest = rest
	return meta, nil
}

// ReadAll drains a TokenStream, returning all tokens up to end of input or
// the first error.
func ReadAll[T Token](ts TokenStream[T]) ([]TokenMeta[T], error) {
	var out []TokenMeta[T]
	for {
		meta, err := ts.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, meta)
	}
}
