package lex

// Filter wraps a TokenStream, discarding tokens the predicate rejects.
//
// Surviving tokens keep their position and lexeme untouched, and errors
// from the inner stream (including io.EOF) are propagated unchanged and
// immediately. The filter is lazy: each pull consumes the inner stream
// only until the next retained token.
func Filter[T Token](ts TokenStream[T], keep func(T) bool) TokenStream[T] {
	return &filterStream[T]{inner: ts, keep: keep}
}

type filterStream[T Token] struct {
	inner TokenStream[T]
	keep  func(T) bool
}

func (f *filterStream[T]) Next() (TokenMeta[T], error) {
	for {
		meta, err := f.inner.Next()
		if err != nil {
			return meta, err
		}
		if f.keep(meta.Token) {
			return meta, nil
		}
	}
}

// MapTokens wraps a TokenStream, applying fn to every token it yields.
// Errors pass through unchanged. Typical uses normalize payloads, eg.
// unquoting string literals.
func MapTokens[T Token](ts TokenStream[T], fn func(TokenMeta[T]) TokenMeta[T]) TokenStream[T] {
	return &mapStream[T]{inner: ts, fn: fn}
}

type mapStream[T Token] struct {
	inner TokenStream[T]
	fn    func(TokenMeta[T]) TokenMeta[T]
}

func (m *mapStream[T]) Next() (TokenMeta[T], error) {
	meta, err := m.inner.Next()
	if err != nil {
		return meta, err
	}
	return m.fn(meta), nil
}
