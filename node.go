package tui

import "reflect"

// NodeBase is embedded by every concrete node type. It carries the state
// the reconciler, layout engine, focus ring, and input router all need
// regardless of node kind.
type NodeBase struct {
	key    string
	bounds Rect
	Hints  SizeHints

	Bindings *BindingSet

	Focusable bool
	Focused   bool
	Hovered   bool
}

// Base satisfies Node for types embedding NodeBase directly.
func (b *NodeBase) Base() *NodeBase { return b }

// Bounds returns the rect committed by the most recent Arrange call.
func (b *NodeBase) Bounds() Rect { return b.bounds }

// SetBounds is how Arrange implementations commit their final rect.
func (b *NodeBase) SetBounds(r Rect) { b.bounds = r }

// Key returns the node's reconciliation key, if it has one.
func (b *NodeBase) Key() string { return b.key }

// SetKey sets the node's reconciliation key. Called by ReconcileChildren.
func (b *NodeBase) SetKey(k string) { b.key = k }

// Node is a persistent element of the reconciled UI tree. Its identity
// (the pointer) is stable across frames as long as the reconciler decides
// to reuse it; layout, focus, and input state hang off that identity.
type Node interface {
	Base() *NodeBase

	// Children returns this node's child nodes in arrange order (the
	// order later children overlay earlier ones for hit-testing).
	Children() []Node

	// Measure returns this node's preferred size clamped to c. Pure with
	// respect to the node's own properties and its subtree; never
	// mutates bounds.
	Measure(c Constraints) Size

	// Arrange commits this node's final rect and cascades to children.
	Arrange(r Rect)

	// Render draws this node (and, for containers, its children) onto
	// surf using ctx for theme/clip lookups.
	Render(surf *Surface, ctx *RenderContext)
}

// NodeTypeOf returns the reflect.Type a Widget.NodeType() implementation
// should return for a concrete node type N, e.g. NodeTypeOf[*TextNode]().
func NodeTypeOf[N Node]() reflect.Type {
	var zero N
	return reflect.TypeOf(zero)
}

// InputHandler is implemented by nodes with built-in input behavior
// (list navigation, text editing) consulted after binding resolution but
// before framework defaults.
type InputHandler interface {
	HandleInput(ev KeyEvent) bool
}

// ClipProvider is implemented by scroll viewport nodes to support
// virtualized rendering without allocating sub-surfaces. Descendants
// consult the nearest ancestor ClipProvider found by walking the render
// context's clip stack.
type ClipProvider interface {
	ShouldRenderAt(x, y int) bool
	ClipString(x, y int, text string) (int, string)
}

// emptyNode is what a nil widget child slot collapses to: a focusable-less,
// zero-size, renderless placeholder that still satisfies Node.
type emptyNode struct{ NodeBase }

func newEmptyNode() *emptyNode { return &emptyNode{} }

func (n *emptyNode) Children() []Node          { return nil }
func (n *emptyNode) Measure(c Constraints) Size { return c.ConstrainSize(Size{}) }
func (n *emptyNode) Arrange(r Rect)             { n.SetBounds(Rect{X: r.X, Y: r.Y}) }
func (n *emptyNode) Render(surf *Surface, ctx *RenderContext) {}
