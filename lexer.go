package lex

import (
	"io"
	"regexp"
)

// Match is the result of one successful pattern match, handed to the
// rule's constructor.
type Match struct {
	groups []string
}

// Text returns the full matched lexeme.
func (m Match) Text() string {
	if len(m.groups) == 0 {
		return ""
	}
	return m.groups[0]
}

// Group returns the text of capture group i, where group 0 is the whole
// match. Returns "" for groups that did not participate in the match or
// are out of range.
func (m Match) Group(i int) string {
	if i < 0 || i >= len(m.groups) {
		return ""
	}
	return m.groups[i]
}

// A Constructor builds one token from a successful match. Constructors
// must be total over any input their pattern can match; payload
// validation belongs in the pattern.
type Constructor[T Token] func(Match) T

type rule[T Token] struct {
	pattern   string
	re        *regexp.Regexp
	construct Constructor[T]
}

// A Lexeme is a token paired with the text span that produced it.
type Lexeme[T Token] struct {
	Token T
	Text  string
}

// Lexer is a compiled, immutable lexer. It holds no mutable state and may
// be shared by any number of concurrent Streams. Instances are created by
// (*Builder).Build.
type Lexer[T Token] struct {
	skip  SkipFunc
	rules []rule[T]
}

// Next skips leading whitespace, then tries each rule in registration
// order against the start of input. The first rule whose pattern matches
// wins, regardless of how much text another rule would have matched.
//
// On a match it returns the lexeme and the input remaining after it.
// If only whitespace remains it returns io.EOF. If input remains but no
// rule matches it returns an *UnrecognizedInputError carrying the
// offending fragment; the returned rest is the input after the whitespace
// skip, so callers can locate the failure.
func (l *Lexer[T]) Next(input string) (Lexeme[T], string, error) {
	rest := input
	if l.skip != nil {
		rest = l.skip(rest)
	}
	if rest == "" {
		return Lexeme[T]{}, rest, io.EOF
	}
	for _, r := range l.rules {
		groups := r.re.FindStringSubmatch(rest)
		if groups == nil {
			continue
		}
		lexeme := groups[0]
		return Lexeme[T]{Token: r.construct(Match{groups}), Text: lexeme}, rest[len(lexeme):], nil
	}
	return Lexeme[T]{}, rest, &UnrecognizedInputError{Fragment: fragment(rest)}
}

const fragmentRunes = 10

func fragment(input string) string {
	n := 0
	for i := range input {
		if n == fragmentRunes {
			return input[:i]
		}
		n++
	}
	return input
}
