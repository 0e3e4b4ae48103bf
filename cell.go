package tui

// HyperlinkID identifies an OSC-8 hyperlink target registered on a surface.
type HyperlinkID int

// Cell is a single grid position: a grapheme cluster plus its visual
// attributes and display width. A wide grapheme occupies two
// adjacent cells: the leading cell carries DisplayWidth 2 and the rune,
// the trailing cell is a continuation with DisplayWidth 0 and an empty
// Char.
type Cell struct {
	Char         string
	FG, BG       OptionalColor
	Attrs        Attrs
	DisplayWidth int
	Hyperlink    HyperlinkID
	HasHyperlink bool
}

// blankCell is a single-width space with no styling — the value every
// surface is filled with on construction/clear.
var blankCell = Cell{Char: " ", DisplayWidth: 1}

// continuationCell marks the trailing half of a wide grapheme.
var continuationCell = Cell{Char: "", DisplayWidth: 0}

// IsContinuation reports whether c is the zero-width right half of a wide
// grapheme.
func (c Cell) IsContinuation() bool { return c.DisplayWidth == 0 }

// IsTransparent reports whether both colors are unset, letting an
// underlying composite layer's colors show through.
func (c Cell) IsTransparent() bool { return !c.FG.Set && !c.BG.Set }

// Equal is full structural equality, including display width — the basis
// for the cell differ's row-ordered comparison.
func (c Cell) Equal(other Cell) bool {
	return c.Char == other.Char &&
		c.FG == other.FG &&
		c.BG == other.BG &&
		c.Attrs == other.Attrs &&
		c.DisplayWidth == other.DisplayWidth &&
		c.HasHyperlink == other.HasHyperlink &&
		(!c.HasHyperlink || c.Hyperlink == other.Hyperlink)
}

// WithFG returns c with the foreground color set.
func (c Cell) WithFG(fg Color) Cell { c.FG = Some(fg); return c }

// WithBG returns c with the background color set.
func (c Cell) WithBG(bg Color) Cell { c.BG = Some(bg); return c }

// WithAttrs returns c with attrs merged in.
func (c Cell) WithAttrs(attrs Attrs) Cell { c.Attrs = c.Attrs.With(attrs); return c }
