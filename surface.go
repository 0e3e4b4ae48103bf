package tui

import "github.com/brackenfield/tuicore/widthclass"

// Surface is a rectangular grid of cells, row-major. It is
// the unit of rendering: every node renders into a Surface, and the
// differ compares two Surfaces of identical dimensions frame over frame.
type Surface struct {
	Width, Height int
	cells         []Cell
}

// NewSurface allocates a cleared surface of the given size.
func NewSurface(width, height int) *Surface {
	s := &Surface{Width: max(0, width), Height: max(0, height)}
	s.cells = make([]Cell, s.Width*s.Height)
	s.Clear()
	return s
}

func (s *Surface) index(x, y int) int { return y*s.Width + x }

func (s *Surface) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.Width && y < s.Height
}

// At returns the cell at (x, y). Out-of-bounds reads return the blank cell.
func (s *Surface) At(x, y int) Cell {
	if !s.inBounds(x, y) {
		return blankCell
	}
	return s.cells[s.index(x, y)]
}

// Set writes a single cell, silently ignoring out-of-bounds writes.
func (s *Surface) Set(x, y int, c Cell) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[s.index(x, y)] = c
}

// GetRow returns a copy of row y's cells, or nil if y is out of range.
func (s *Surface) GetRow(y int) []Cell {
	if y < 0 || y >= s.Height {
		return nil
	}
	row := make([]Cell, s.Width)
	copy(row, s.cells[s.index(0, y):s.index(0, y)+s.Width])
	return row
}

// Clear resets every cell to blank.
func (s *Surface) Clear() {
	for i := range s.cells {
		s.cells[i] = blankCell
	}
}

// Fill paints every cell in rect (clipped to the surface) with c.
func (s *Surface) Fill(rect Rect, c Cell) {
	clipped := rect.Intersect(Rect{Width: s.Width, Height: s.Height})
	for y := clipped.Y; y < clipped.Y+clipped.Height; y++ {
		for x := clipped.X; x < clipped.X+clipped.Width; x++ {
			s.Set(x, y, c)
		}
	}
}

// Clone returns an independent copy of the surface.
func (s *Surface) Clone() *Surface {
	out := &Surface{Width: s.Width, Height: s.Height, cells: make([]Cell, len(s.cells))}
	copy(out.cells, s.cells)
	return out
}

// AsSpan returns the raw backing slice (row-major, length Width*Height).
// Callers must not retain it across a Clear/resize.
func (s *Surface) AsSpan() []Cell { return s.cells }

// WriteText writes text at (x, y), clipping width-aware: characters fully
// off the left edge are skipped, and a wide grapheme that would straddle
// the right edge is replaced with a single space rather than split
// Returns the number of columns actually written.
func (s *Surface) WriteText(x, y int, text string, fg, bg OptionalColor, attrs Attrs) int {
	if y < 0 || y >= s.Height {
		return 0
	}
	col := x
	written := 0
	for _, g := range widthclass.Graphemes(text) {
		w := g.Width
		if w == 0 {
			// Zero-width combining content with no preceding base cell in
			// view; nothing to anchor it to, so drop it.
			continue
		}
		if col+w <= 0 {
			col += w
			continue
		}
		if col >= s.Width {
			break
		}
		if col < 0 {
			// Grapheme straddles the left edge; it cannot be partially
			// rendered, so skip it entirely.
			col += w
			continue
		}
		if w == 2 && col+1 >= s.Width {
			// Wide grapheme doesn't fit before the right edge: substitute
			// a single space rather than splitting it.
			s.Set(col, y, Cell{Char: " ", DisplayWidth: 1, FG: fg, BG: bg, Attrs: attrs})
			col++
			written++
			break
		}
		s.Set(col, y, Cell{Char: g.Text, DisplayWidth: w, FG: fg, BG: bg, Attrs: attrs})
		if w == 2 {
			s.Set(col+1, y, Cell{Char: "", DisplayWidth: 0, FG: fg, BG: bg, Attrs: attrs})
		}
		col += w
		written += w
	}
	return written
}

// Composite overlays src onto s at offset (dx, dy), clipped to clip
// (relative to s). Blank transparent cells in src (a space with both
// colors unset) leave the destination's existing cell untouched; every
// other src cell overwrites it.
func (s *Surface) Composite(src *Surface, dx, dy int, clip Rect) {
	region := clip.Intersect(Rect{Width: s.Width, Height: s.Height})
	for sy := 0; sy < src.Height; sy++ {
		ty := sy + dy
		if ty < region.Y || ty >= region.Y+region.Height {
			continue
		}
		for sx := 0; sx < src.Width; sx++ {
			tx := sx + dx
			if tx < region.X || tx >= region.X+region.Width {
				continue
			}
			c := src.At(sx, sy)
			if c.IsTransparent() && c.Char == " " {
				continue
			}
			s.Set(tx, ty, c)
		}
	}
}
