package lex

import (
	"errors"
	"regexp"
)

// A SkipFunc strips leading insignificant text, returning the remaining
// suffix. It must never return a string longer than its input and must be
// idempotent: applying it to its own output is a no-op.
type SkipFunc func(string) string

// Builder accumulates an ordered rule table and compiles it into a Lexer.
//
// Rule priority is implicit: when several patterns match at the same
// cursor, the rule added first wins. Front-ends should therefore register
// reserved words and other specific patterns before general ones.
type Builder[T Token] struct {
	skip  SkipFunc
	rules []rule[T]
}

// NewBuilder returns an empty Builder.
func NewBuilder[T Token]() *Builder[T] {
	return &Builder[T]{}
}

// SkipWhitespaces installs the whitespace classifier, replacing any
// previous one. Without one, no input is ever skipped.
func (b *Builder[T]) SkipWhitespaces(fn SkipFunc) *Builder[T] {
	b.skip = fn
	return b
}

// Add appends a rule. The pattern is compiled by Build, anchored so it
// matches only at the current cursor.
func (b *Builder[T]) Add(pattern string, construct Constructor[T]) *Builder[T] {
	b.rules = append(b.rules, rule[T]{pattern: pattern, construct: construct})
	return b
}

// skipProbe exercises a classifier on whitespace followed by text.
const skipProbe = " \t\r\n x"

// Build compiles all registered patterns and returns the immutable Lexer.
//
// Any pattern that fails to compile, or that can match the empty string,
// is reported here as an *InvalidPatternError; malformed configuration
// never surfaces as a mid-stream tokenization error. The whitespace
// classifier is sanity-checked on a sample input.
func (b *Builder[T]) Build() (*Lexer[T], error) {
	if b.skip != nil {
		once := b.skip(skipProbe)
		if len(once) > len(skipProbe) {
			return nil, errors.New("whitespace classifier grew its input")
		}
		if twice := b.skip(once); twice != once {
			return nil, errors.New("whitespace classifier is not idempotent")
		}
	}
	rules := make([]rule[T], 0, len(b.rules))
	for _, r := range b.rules {
		re, err := regexp.Compile(`\A(?:` + r.pattern + `)`)
		if err != nil {
			return nil, &InvalidPatternError{Pattern: r.pattern, Err: err}
		}
		if re.MatchString("") {
			return nil, &InvalidPatternError{Pattern: r.pattern, Err: errors.New("pattern matches the empty string")}
		}
		r.re = re
		rules = append(rules, r)
	}
	return &Lexer[T]{skip: b.skip, rules: rules}, nil
}

// Must takes the result of Build and panics on error.
//
// eg.
//
//	lexer := lex.Must(builder.Build())
func Must[T Token](lexer *Lexer[T], err error) *Lexer[T] {
	if err != nil {
		panic(err)
	}
	return lexer
}

// Constant returns a constructor that ignores the match and always
// produces tok. Useful for operators, delimiters and other tokens with no
// payload.
func Constant[T Token](tok T) Constructor[T] {
	return func(Match) T { return tok }
}
