package widgets

import (
	"reflect"

	tui "github.com/brackenfield/tuicore"
)

// ThemingPanel pushes a theme overlay before rendering its child and pops
// it afterward, so a subtree can override a subset of theme tokens
// without affecting siblings.
type ThemingPanel struct {
	tui.BaseWidget
	Child   tui.Widget
	Overlay tui.Theme
}

func (p *ThemingPanel) NodeType() reflect.Type { return tui.NodeTypeOf[*ThemingPanelNode]() }

func (p *ThemingPanel) Reconcile(existing tui.Node) tui.Node {
	var n *ThemingPanelNode
	if existing != nil {
		n = existing.(*ThemingPanelNode)
	} else {
		n = &ThemingPanelNode{}
	}
	n.overlay = p.Overlay
	n.child = tui.Reconcile(p.Child, n.child)
	return n
}

// ThemingPanelNode is the persistent node a ThemingPanel widget
// reconciles into.
type ThemingPanelNode struct {
	tui.NodeBase
	child   tui.Node
	overlay tui.Theme
}

func (n *ThemingPanelNode) Children() []tui.Node { return []tui.Node{n.child} }

func (n *ThemingPanelNode) Measure(c tui.Constraints) tui.Size {
	return n.child.Measure(c)
}

func (n *ThemingPanelNode) Arrange(r tui.Rect) {
	n.SetBounds(r)
	n.child.Arrange(r)
}

func (n *ThemingPanelNode) Render(surf *tui.Surface, ctx *tui.RenderContext) {
	ctx.Themes.Push(n.overlay)
	n.child.Render(surf, ctx)
	ctx.Themes.Pop()
}
