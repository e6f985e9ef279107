package source

import (
	"fmt"
)

type Position struct {
	Filename string
	Line     int
	Column   int
	Offset   int
}

// Span is a half-open range of source text. Nodes get their span once, from
// the parser, and never change it.
type Span struct {
	From Position
	To   Position
}

func (p Position) String() string {
	if p.Filename == "" {
		p.Filename = "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%d:%d", s.From, s.To.Line, s.To.Column)
}

// Length is the number of bytes covered by the span.
func (s Span) Length() int {
	if s.To.Offset < s.From.Offset {
		return 0
	}
	return s.To.Offset - s.From.Offset
}

func (s Span) IsZero() bool {
	return s == Span{}
}

func SingleCharSpan(p Position) Span {
	to := p
	to.Column++
	to.Offset++
	return Span{p, to}
}

func NewSpan(filename string, line, column, offset, length int) Span {
	from := Position{Filename: filename, Line: line, Column: column, Offset: offset}
	to := Position{Filename: filename, Line: line, Column: column + length, Offset: offset + length}
	return Span{from, to}
}
