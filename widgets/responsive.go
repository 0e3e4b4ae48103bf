package widgets

import (
	"reflect"

	tui "github.com/brackenfield/tuicore"
)

// Responsive embeds the core responsive branch selector and adapts it to
// the Widget/Node contract: the branch matching r.Width is chosen once at
// reconcile time and reconciled as this node's sole child, so later
// measure/arrange/render see only the selected variant.
type Responsive struct {
	tui.Responsive
}

func (r *Responsive) NodeType() reflect.Type { return tui.NodeTypeOf[*ResponsiveNode]() }

func (r *Responsive) Reconcile(existing tui.Node) tui.Node {
	var n *ResponsiveNode
	if existing != nil {
		n = existing.(*ResponsiveNode)
	} else {
		n = &ResponsiveNode{}
	}
	selected := tui.SelectResponsiveChild(&r.Responsive)
	n.child = tui.Reconcile(selected, n.child)
	return n
}

// ResponsiveNode is the persistent node a Responsive widget reconciles
// into. It delegates every operation to whichever child was selected at
// reconcile time.
type ResponsiveNode struct {
	tui.NodeBase
	child tui.Node
}

func (n *ResponsiveNode) Children() []tui.Node { return []tui.Node{n.child} }

func (n *ResponsiveNode) Measure(c tui.Constraints) tui.Size { return n.child.Measure(c) }

func (n *ResponsiveNode) Arrange(r tui.Rect) {
	n.SetBounds(r)
	n.child.Arrange(r)
}

func (n *ResponsiveNode) Render(surf *tui.Surface, ctx *tui.RenderContext) {
	n.child.Render(surf, ctx)
}
