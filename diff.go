package tui

// CellChange is one cell that differs between two surfaces.
type CellChange struct {
	X, Y int
	Cell Cell
}

// ChangeList is a diff result, always sorted by (Y asc, X asc).
type ChangeList []CellChange

// Diff compares prev and curr. If their dimensions differ, prev is
// treated as a blank surface of curr's size. Cell equality is full
// structural equality including display width.
func Diff(prev, curr *Surface) ChangeList {
	if prev.Width != curr.Width || prev.Height != curr.Height {
		prev = NewSurface(curr.Width, curr.Height)
	}
	var changes ChangeList
	for y := 0; y < curr.Height; y++ {
		for x := 0; x < curr.Width; x++ {
			a, b := prev.At(x, y), curr.At(x, y)
			if !a.Equal(b) {
				changes = append(changes, CellChange{X: x, Y: y, Cell: b})
			}
		}
	}
	return changes
}

// Apply returns a copy of base with every change in cl written onto it.
// Used to verify the differ's correctness invariant: Apply(Diff(A,B)) == B
// to the new surface's contents.
func Apply(base *Surface, cl ChangeList) *Surface {
	out := base.Clone()
	for _, c := range cl {
		out.Set(c.X, c.Y, c.Cell)
	}
	return out
}
