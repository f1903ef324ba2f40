package lex

// Token is the capability contract every front-end token type must
// satisfy. The engine itself never inspects token payloads; both methods
// exist purely for diagnostics.
type Token interface {
	// Describe returns a human-readable rendering of the token including
	// its payload, eg. `"fn"` for a terminal or `<Rule>` for a
	// non-terminal.
	Describe() string
	// Descriptor returns a stable, payload-independent category label,
	// eg. "Terminal". Suitable for messages such as
	// `expected X but found <descriptor> '<lexeme>'`.
	Descriptor() string
}

// TokenMeta is a token annotated with the position and source text span it
// was produced from.
type TokenMeta[T Token] struct {
	Token T
	// Pos is the position of the first character of the lexeme, after any
	// whitespace skipped.
	Pos Position
	// Lexeme is the literal text span consumed to produce the token.
	Lexeme string
}

// Raw strips position metadata from a slice of tokens.
func Raw[T Token](metas []TokenMeta[T]) []T {
	tokens := make([]T, len(metas))
	for i, m := range metas {
		tokens[i] = m.Token
	}
	return tokens
}
