// Package span provides source positions attached to AST nodes by the
// external parser that produced them.
package span

import "fmt"

// Pos is a position in the source a program document was parsed from.
// The zero Pos means the producer supplied no position.
type Pos struct {
	Line   int `json:"line"`   // 1-based line number
	Column int `json:"column"` // 1-based column number
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsZero reports whether the position is unset.
func (p Pos) IsZero() bool {
	return p.Line == 0 && p.Column == 0
}

// Span is a source range. Programmatically built trees carry zero spans;
// error messages include a position only when one is present.
type Span struct {
	Start Pos `json:"start"`
	End   Pos `json:"end"`
}

func (s Span) String() string {
	return fmt.Sprintf("%s..%s", s.Start, s.End)
}

// IsZero reports whether the span is unset.
func (s Span) IsZero() bool {
	return s.Start.IsZero() && s.End.IsZero()
}
