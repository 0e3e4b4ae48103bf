package tui

import "reflect"

// Reconcile updates existing with widget's description, or builds a new
// node if existing is nil or its concrete type doesn't match what widget
// expects. A type mismatch on a non-nil existing node is not an error:
// the node is silently replaced.
//
// Children are reconciled by the widget's own Reconcile method (through
// Reconcile or ReconcileChildren). After that call returns,
// common-to-all-widgets fields (size hints, bindings configurator) are
// applied.
func Reconcile(widget Widget, existing Node) Node {
	if widget == nil {
		return newEmptyNode()
	}

	var reused Node
	if existing != nil && reflect.TypeOf(existing) == widget.NodeType() {
		reused = existing
	}

	node := widget.Reconcile(reused)
	applyCommonFields(widget, node)
	return node
}

// ReconcileChildren reconciles a new list of child widget descriptions
// against a parent's previous child node list. Matching policy: if the
// new widget carries an explicit key, match by key against any previous
// child sharing it; otherwise match positionally. Old children left
// unmatched are dropped, discarding their subtrees.
func ReconcileChildren(children []Widget, prevChildren []Node) []Node {
	prevByKey := make(map[string]Node, len(prevChildren))
	for _, c := range prevChildren {
		if c.Base().Key() != "" {
			prevByKey[c.Base().Key()] = c
		}
	}

	out := make([]Node, len(children))
	usedPositional := make(map[int]bool, len(prevChildren))

	for i, w := range children {
		if w == nil {
			out[i] = newEmptyNode()
			continue
		}
		var existing Node
		key := ""
		if kw, ok := w.(Keyed); ok {
			key = kw.Key()
		}
		if key != "" {
			if prev, ok := prevByKey[key]; ok {
				existing = prev
			}
		} else if i < len(prevChildren) && !usedPositional[i] {
			existing = prevChildren[i]
			usedPositional[i] = true
		}
		node := Reconcile(w, existing)
		node.Base().SetKey(key)
		out[i] = node
	}
	return out
}
