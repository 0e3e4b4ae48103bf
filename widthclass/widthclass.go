// Package widthclass classifies the terminal display width of runes and
// grapheme clusters, the groundwork every cell-grid operation in the
// framework builds on.
package widthclass

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Rune returns the East-Asian display width (0, 1, or 2) of a single rune.
// ansi.StringWidth already does the bulk of this work for whole strings; for
// a single rune we fall back to go-runewidth, which covers a few control
// and ambiguous-width code points ansi's per-string tables don't classify
// in isolation.
func Rune(r rune) int {
	w := ansi.StringWidth(string(r))
	if w == 0 && r != 0 {
		return runewidth.RuneWidth(r)
	}
	return w
}

// String returns the total display width of s, honoring wide CJK graphemes
// and zero-width combining marks.
func String(s string) int {
	return ansi.StringWidth(s)
}

// Grapheme is one user-perceived character (a base rune plus any combining
// marks) together with its display width.
type Grapheme struct {
	Text  string
	Width int
}

// Graphemes splits s into grapheme clusters using Unicode text segmentation
// (UAX #29 via uniseg), each tagged with its display width. This is the
// unit cell writes operate on: a wide grapheme occupies two cells
// atomically and must never be split across a boundary.
func Graphemes(s string) []Grapheme {
	var out []Grapheme
	state := -1
	for len(s) > 0 {
		cluster, rest, width, newState := uniseg.FirstGraphemeClusterInString(s, state)
		out = append(out, Grapheme{Text: cluster, Width: width})
		s = rest
		state = newState
	}
	return out
}

// IsWide reports whether a grapheme cluster occupies two cells.
func IsWide(g Grapheme) bool { return g.Width >= 2 }
