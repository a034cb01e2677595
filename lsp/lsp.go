// Package lsp converts between textscan positions (1-based line/column in
// runes) and Language Server Protocol positions (0-based line, character
// measured in UTF-16 code units).
package lsp

import (
	"unicode/utf16"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/textscan"
)

// ToProtocol converts a position within src to an LSP position. Positions
// past the end of a line or of the text clamp to what src actually
// contains. An unset position maps to 0:0.
func ToProtocol(src string, p textscan.Position) protocol.Position {
	if !p.IsValid() {
		return protocol.Position{}
	}

	c := textscan.New(src)
	skipToLine(c, p.Line)

	var character protocol.UInteger
	for c.Position().Line == p.Line && c.Position().Column < p.Column {
		r, ok := c.PeekNext()
		if !ok || isLineTerminator(r) {
			break
		}
		c.Next()
		character += protocol.UInteger(utf16.RuneLen(r))
	}

	return protocol.Position{
		Line:      protocol.UInteger(p.Line - 1),
		Character: character,
	}
}

// FromProtocol converts an LSP position to a position within src. A
// character offset beyond the end of the line clamps to the position just
// after the line's last rune, per the LSP specification.
func FromProtocol(src string, p protocol.Position) textscan.Position {
	line := int(p.Line) + 1

	c := textscan.New(src)
	skipToLine(c, line)

	var units protocol.UInteger
	for units < p.Character && c.Position().Line == line {
		r, ok := c.PeekNext()
		if !ok || isLineTerminator(r) {
			break
		}
		c.Next()
		units += protocol.UInteger(utf16.RuneLen(r))
	}

	return c.Position()
}

// skipToLine consumes runes until the cursor stands at the start of the
// given line. Consuming a CR already moves the cursor to the next line, so
// the LF of a CRLF pair is still pending afterwards and must be swallowed
// too.
func skipToLine(c *textscan.Cursor, line int) {
	var last rune
	for c.Position().Line < line {
		r, ok := c.Next()
		if !ok {
			return
		}
		last = r
	}
	if last == '\r' {
		if r, ok := c.PeekNext(); ok && r == '\n' {
			c.Next()
		}
	}
}

func isLineTerminator(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
