package tui

import "time"

// Router resolves input events against the root bindings, the node chain
// from the focused node up to the root, the focused node's own handler,
// and finally framework defaults (Tab/Shift+Tab, optional Ctrl+C exit).
type Router struct {
	Root            *BindingSet
	Focus           *FocusRing
	EnableCtrlCExit bool
	OnExit          func()

	chord      chordState
	nodeChords map[Node]*chordState
}

// ancestorChain returns the path from root to target (inclusive),
// innermost-last, used to walk node-level bindings innermost-first.
func ancestorChain(root, target Node) []Node {
	var path []Node
	var find func(n Node) bool
	find = func(n Node) bool {
		if n == nil {
			return false
		}
		path = append(path, n)
		if n == target {
			return true
		}
		for _, c := range n.Children() {
			if find(c) {
				return true
			}
		}
		path = path[:len(path)-1]
		return false
	}
	find(root)
	return path
}

// RouteKey resolves a single key event against root's tree. Returns true
// if some handler consumed it.
func (r *Router) RouteKey(root Node, ev KeyEvent, now time.Time) bool {
	if r.Root != nil {
		if action, consumed := evaluate(r.Root.keyBindings, ev, &r.chord, now); action != nil {
			action()
			return true
		} else if consumed {
			return true
		}
	}

	focused := r.Focus.Focused()
	if focused != nil {
		chain := ancestorChain(root, focused)
		for i := len(chain) - 1; i >= 0; i-- {
			base := chain[i].Base()
			if base.Bindings == nil {
				continue
			}
			if r.nodeChords == nil {
				r.nodeChords = make(map[Node]*chordState)
			}
			chord, ok := r.nodeChords[chain[i]]
			if !ok {
				chord = &chordState{}
				r.nodeChords[chain[i]] = chord
			}
			if action, consumed := evaluate(base.Bindings.keyBindings, ev, chord, now); action != nil {
				action()
				return true
			} else if consumed {
				return true
			}
		}
		if h, ok := focused.(InputHandler); ok {
			if h.HandleInput(ev) {
				return true
			}
		}
	}

	switch {
	case ev.Key == KeyTab && ev.Modifiers == 0:
		r.Focus.FocusNext()
		return true
	case ev.Key == KeyTab && ev.Modifiers == ModShift:
		r.Focus.FocusPrev()
		return true
	case r.EnableCtrlCExit && ev.Key == KeyRune && ev.Ch == 'c' && ev.Modifiers == ModCtrl:
		if r.OnExit != nil {
			r.OnExit()
		}
		return true
	}
	return false
}

// RouteMouse hit-tests the event's position, moves focus to a focusable
// target on click, then resolves bindings attached to the hit node.
func (r *Router) RouteMouse(root Node, ev MouseEvent) bool {
	target := r.Focus.HitTest(ev.X, ev.Y)
	if target != nil && ev.Action == MouseDown {
		r.Focus.Focus(target)
	}
	if target == nil {
		return false
	}
	base := target.Base()
	if base.Bindings == nil {
		return false
	}
	for i := range base.Bindings.mouseBindings {
		mb := &base.Bindings.mouseBindings[i]
		if mb.matches(ev) {
			if mb.Handler != nil {
				mb.Handler(ev)
			}
			return true
		}
	}
	return false
}
