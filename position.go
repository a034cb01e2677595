package textscan

import "fmt"

// Position is a location in a text, identified by 1-based line and column
// numbers. The zero value means "not positioned in any text".
type Position struct {
	Line   int
	Column int
}

// At creates a Position with the given line and column numbers.
// No validation is performed.
func At(line, column int) Position {
	return Position{Line: line, Column: column}
}

// IsValid reports whether p points into a text. Line and column numbers
// start at 1, so the zero value is invalid.
func (p Position) IsValid() bool {
	return p.Line > 0
}

// AdvanceChar advances the position by one ordinary (non-line-break)
// character.
func (p *Position) AdvanceChar() {
	p.Column++
}

// AdvanceLine advances the position by one line and sets the column to the
// first character of the new line.
func (p *Position) AdvanceLine() {
	p.Line++
	p.Column = 1
}

func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
