package textscan

import (
	"iter"
	"unicode/utf8"
)

// Cursor reads a text rune by rune while tracking the line/column position
// of the next unread rune. It supports one rune of lookahead and a single
// marker from which the consumed portion of the text can be sliced back out
// without copying.
type Cursor struct {
	src string
	off int // decode frontier: bytes consumed or held in the lookahead buffer

	pos Position // position of the next rune Next will return

	peeked     rune
	peekedSize int
	hasPeeked  bool

	marker    int // byte offset of the marked read position, -1 when unset
	lastWasCR bool
}

// New creates a cursor over the given source text, positioned at line 1,
// column 1.
func New(src string) *Cursor {
	return &Cursor{
		src:    src,
		pos:    At(1, 1),
		marker: -1,
	}
}

// Position returns the position of the next rune that Next will return.
// Peeking does not move it.
func (c *Cursor) Position() Position {
	return c.pos
}

// Offset returns the byte offset of the next rune that Next will return.
func (c *Cursor) Offset() int {
	return c.readPos()
}

// EOF reports whether the input is exhausted.
func (c *Cursor) EOF() bool {
	return c.readPos() >= len(c.src)
}

// readPos is the byte offset of the read position: a buffered lookahead
// rune has been decoded but not consumed, so it still counts as unread.
func (c *Cursor) readPos() int {
	if c.hasPeeked {
		return c.off - c.peekedSize
	}
	return c.off
}

// PeekNext returns the next rune without consuming it, or false at end of
// input. Repeated calls return the same rune and never move the position.
func (c *Cursor) PeekNext() (rune, bool) {
	if !c.hasPeeked {
		if c.off >= len(c.src) {
			return 0, false
		}
		r, size := utf8.DecodeRuneInString(c.src[c.off:])
		c.peeked = r
		c.peekedSize = size
		c.hasPeeked = true
		c.off += size
	}
	return c.peeked, true
}

// Next consumes and returns the next rune and advances the position
// according to the line-break classification, or returns false at end of
// input. Once it has returned false, all further calls return false.
func (c *Cursor) Next() (rune, bool) {
	var r rune
	if c.hasPeeked {
		r = c.peeked
		c.hasPeeked = false
		c.peekedSize = 0
	} else {
		if c.off >= len(c.src) {
			return 0, false
		}
		var size int
		r, size = utf8.DecodeRuneInString(c.src[c.off:])
		c.off += size
	}
	c.advancePosition(r)
	return r, true
}

// Runes returns an iterator that consumes the remaining runes. Draining it
// leaves the cursor exhausted.
func (c *Cursor) Runes() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for {
			r, ok := c.Next()
			if !ok || !yield(r) {
				return
			}
		}
	}
}

// advancePosition applies the line-break classification to a consumed rune.
// A LF directly following a CR is the second half of a CRLF pair and does
// not advance the line again. Vertical tab bumps the line counter without
// resetting the column.
func (c *Cursor) advancePosition(r rune) {
	switch r {
	case '\r':
		c.lastWasCR = true
		c.pos.AdvanceLine()
	case '\n':
		if !c.lastWasCR {
			c.pos.AdvanceLine()
		}
		c.lastWasCR = false
	case '\v':
		c.pos.Line++
		c.lastWasCR = false
	case '\f', '\u0085', '\u2028', '\u2029':
		c.lastWasCR = false
		c.pos.AdvanceLine()
	default:
		c.lastWasCR = false
		c.pos.AdvanceChar()
	}
}

// SetMarker places the marker at the current read position, replacing any
// previous marker. A buffered lookahead rune is still unread and stays
// ahead of the marker.
func (c *Cursor) SetMarker() {
	c.marker = c.readPos()
}

// ClearMarker removes the marker if one is set.
func (c *Cursor) ClearMarker() {
	c.marker = -1
}

// HasMarker reports whether a marker is set.
func (c *Cursor) HasMarker() bool {
	return c.marker >= 0
}

// SliceFromMarker returns the portion of the source text from the marker up
// to (excluding) the current read position. The result aliases the source
// text; no copy is made. It panics when no marker is set.
func (c *Cursor) SliceFromMarker() string {
	if c.marker < 0 {
		panic("textscan: SliceFromMarker called without a marker")
	}
	return c.src[c.marker:c.readPos()]
}
