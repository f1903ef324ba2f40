package lex

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Position of a token within a source text.
type Position struct {
	Filename string
	Offset   int // byte offset, 0-based
	Line     int // 1-based
	Column   int // 1-based, counted in runes
}

func (p Position) String() string {
	filename := p.Filename
	if filename == "" {
		filename = "<source>"
	}
	return fmt.Sprintf("%s:%d:%d", filename, p.Line, p.Column)
}

// advance moves the position past the consumed span.
func (p *Position) advance(span string) {
	p.Offset += len(span)
	lines := strings.Count(span, "\n")
	p.Line += lines
	if lines == 0 {
		p.Column += utf8.RuneCountInString(span)
	} else {
		// The slice starts at the last newline, so the count includes it
		// and yields a 1-based column.
		p.Column = utf8.RuneCountInString(span[strings.LastIndex(span, "\n"):])
	}
}
