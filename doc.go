// Package textscan provides the scanning primitive underneath hand-written
// lexers: a rune cursor over an in-memory text that tracks 1-based
// line/column positions across the Unicode line-terminator conventions
// (LF, CR, CRLF, VT, FF, NEL, LS, PS), with one rune of lookahead and
// zero-copy extraction of the text between a marker and the current read
// position.
//
// The contract, in short:
//
//   - Position always describes the next unread rune; PeekNext never moves
//     it, and repeated peeks return the same rune.
//   - A CRLF pair advances the line exactly once.
//   - SetMarker checkpoints the read position; SliceFromMarker later returns
//     the exact source bytes between the marker and the read position, no
//     matter how many peeks happened in between. Calling it without a marker
//     is a caller bug and panics.
//   - End of input is ordinary control flow: Next and PeekNext return false,
//     and keep returning false.
//
// A Cursor is not safe for concurrent use; give each goroutine its own.
// The source text must not change while a cursor or a slice taken from it
// is alive.
package textscan
