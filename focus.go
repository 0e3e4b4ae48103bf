package tui

// FocusRing tracks the ordered set of focusable nodes in a tree and the
// currently focused one. Rebuild runs after arrange, every frame.
type FocusRing struct {
	order   []Node
	focused Node
}

// Rebuild performs a depth-first pre-order walk over root, collecting
// every node with is_focusable=true in traversal order. Focus identity is
// preserved across frames when the same node pointer is still present in
// the new order; otherwise focus falls back to index 0.
func (f *FocusRing) Rebuild(root Node) {
	var order []Node
	var walk func(n Node)
	walk = func(n Node) {
		if n == nil {
			return
		}
		if n.Base().Focusable {
			order = append(order, n)
		}
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(root)

	for _, n := range f.order {
		if n != f.focused {
			n.Base().Focused = false
		}
	}

	f.order = order
	still := false
	for _, n := range order {
		if n == f.focused {
			still = true
			break
		}
	}
	if !still {
		f.focused = nil
	}
	f.EnsureFocus()
}

// EnsureFocus focuses the first entry in the ring if nothing is currently
// focused.
func (f *FocusRing) EnsureFocus() {
	if f.focused == nil && len(f.order) > 0 {
		f.setFocused(f.order[0])
	}
}

func (f *FocusRing) setFocused(n Node) {
	if f.focused != nil {
		f.focused.Base().Focused = false
	}
	f.focused = n
	if n != nil {
		n.Base().Focused = true
	}
}

// Focused returns the currently focused node, or nil.
func (f *FocusRing) Focused() Node { return f.focused }

func (f *FocusRing) index() int {
	for i, n := range f.order {
		if n == f.focused {
			return i
		}
	}
	return -1
}

// FocusNext cycles focus forward with wraparound.
func (f *FocusRing) FocusNext() {
	if len(f.order) == 0 {
		return
	}
	i := f.index()
	f.setFocused(f.order[(i+1+len(f.order))%len(f.order)])
}

// FocusPrev cycles focus backward with wraparound.
func (f *FocusRing) FocusPrev() {
	if len(f.order) == 0 {
		return
	}
	i := f.index()
	if i < 0 {
		i = 0
	}
	f.setFocused(f.order[(i-1+len(f.order))%len(f.order)])
}

// Focus sets focus directly to n, if n is present in the ring.
func (f *FocusRing) Focus(n Node) {
	for _, c := range f.order {
		if c == n {
			f.setFocused(n)
			return
		}
	}
}

// HitTest scans the ring from topmost (last-added, meaning the most
// recently arranged overlay) to bottommost and returns the first node
// whose bounds contain (x, y).
func (f *FocusRing) HitTest(x, y int) Node {
	for i := len(f.order) - 1; i >= 0; i-- {
		if f.order[i].Base().Bounds().Contains(x, y) {
			return f.order[i]
		}
	}
	return nil
}
