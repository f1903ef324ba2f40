package lex

import "fmt"

// FormatError formats a message with positional context.
func FormatError(pos Position, message string) string {
	return fmt.Sprintf("%s: %s", pos, message)
}

// InvalidPatternError is returned by Build when a rule's pattern fails to
// compile. It can only surface at build time, never during tokenization.
type InvalidPatternError struct {
	// Pattern is the offending pattern as registered, without the anchor
	// the builder adds.
	Pattern string
	Err     error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %s", e.Pattern, e.Err)
}

func (e *InvalidPatternError) Unwrap() error { return e.Err }

// UnrecognizedInputError is returned when input remains after whitespace
// skipping but no rule matches it. It is terminal for the Stream that
// produced it.
type UnrecognizedInputError struct {
	Pos Position
	// Fragment is a short prefix of the offending input.
	Fragment string
}

func (e *UnrecognizedInputError) Error() string {
	return FormatError(e.Pos, fmt.Sprintf("unrecognized input %q", e.Fragment))
}
