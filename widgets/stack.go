// Package widgets provides the minimal widget catalogue exercising the
// measure/arrange/render/input contracts the core framework exposes:
// stacks, text, lists, scrollable viewports, a splitter, a themed panel,
// and a responsive container.
package widgets

import (
	"reflect"

	tui "github.com/brackenfield/tuicore"
	"github.com/brackenfield/tuicore/layout"
)

// Stack lays out children along one axis: sum their sizes along the
// stack axis, max along the cross axis. Fixed-size children are measured
// first; remaining space is divided among flexible children by their
// fill_weight hint, ties broken by source order.
type Stack struct {
	tui.BaseWidget
	Axis       layout.Axis
	MainAlign  layout.MainAxisAlignment
	CrossAlign layout.CrossAxisAlignment
	Spacing    int
	Children   []tui.Widget
}

// VStack is a vertical Stack.
func VStack(children ...tui.Widget) *Stack {
	return &Stack{Axis: layout.Vertical, Children: children}
}

// HStack is a horizontal Stack.
func HStack(children ...tui.Widget) *Stack {
	return &Stack{Axis: layout.Horizontal, Children: children}
}

func (s *Stack) NodeType() reflect.Type { return tui.NodeTypeOf[*StackNode]() }

func (s *Stack) Reconcile(existing tui.Node) tui.Node {
	var n *StackNode
	if existing != nil {
		n = existing.(*StackNode)
	} else {
		n = &StackNode{}
	}
	n.axis = s.Axis
	n.mainAlign = s.MainAlign
	n.crossAlign = s.CrossAlign
	n.spacing = s.Spacing
	n.children = tui.ReconcileChildren(s.Children, n.children)
	return n
}

// StackNode is the persistent node a Stack widget reconciles into.
type StackNode struct {
	tui.NodeBase
	axis       layout.Axis
	mainAlign  layout.MainAxisAlignment
	crossAlign layout.CrossAxisAlignment
	spacing    int
	children   []tui.Node
}

func (n *StackNode) Children() []tui.Node { return n.children }

func (n *StackNode) Measure(c tui.Constraints) tui.Size {
	if len(n.children) == 0 {
		return c.ConstrainSize(tui.Size{})
	}
	horizontal := n.axis == layout.Horizontal
	childConstraints := c.UnboundedAxis(horizontal)

	var mainTotal, crossMax int
	for i, child := range n.children {
		sz := child.Measure(childConstraints)
		if i > 0 {
			mainTotal += n.spacing
		}
		if horizontal {
			mainTotal += sz.Width
			crossMax = max(crossMax, sz.Height)
		} else {
			mainTotal += sz.Height
			crossMax = max(crossMax, sz.Width)
		}
	}
	if horizontal {
		return c.ConstrainSize(tui.Size{Width: mainTotal, Height: crossMax})
	}
	return c.ConstrainSize(tui.Size{Width: crossMax, Height: mainTotal})
}

func (n *StackNode) Arrange(r tui.Rect) {
	n.SetBounds(r)
	if len(n.children) == 0 {
		return
	}
	horizontal := n.axis == layout.Horizontal
	mainSize := r.Width
	crossSize := r.Height
	if !horizontal {
		mainSize = r.Height
		crossSize = r.Width
	}

	type measured struct {
		size tui.Size
		flex float64
	}
	info := make([]measured, len(n.children))
	var fixedTotal int
	var totalFlex float64
	for i, child := range n.children {
		hints := child.Base().Hints
		dim := hints.Width
		if !horizontal {
			dim = hints.Height
		}
		if dim.IsFlex() {
			info[i].flex = dim.FlexValue()
			totalFlex += info[i].flex
			continue
		}
		unbounded := tui.Unbounded().UnboundedAxis(horizontal)
		sz := child.Measure(unbounded)
		info[i].size = sz
		if horizontal {
			fixedTotal += sz.Width
		} else {
			fixedTotal += sz.Height
		}
	}
	fixedTotal += n.spacing * max(0, len(n.children)-1)
	remaining := max(0, mainSize-fixedTotal)

	extraGap := 0
	leading := 0
	if totalFlex == 0 {
		switch n.mainAlign {
		case layout.MainAxisCenter:
			leading = remaining / 2
		case layout.MainAxisEnd:
			leading = remaining
		case layout.MainAxisSpaceBetween:
			if len(n.children) > 1 {
				extraGap = remaining / (len(n.children) - 1)
			}
		case layout.MainAxisSpaceAround:
			if len(n.children) > 0 {
				extraGap = remaining / len(n.children)
				leading = extraGap / 2
			}
		case layout.MainAxisSpaceEvenly:
			extraGap = remaining / (len(n.children) + 1)
			leading = extraGap
		}
	}

	main := r.X + leading
	if !horizontal {
		main = r.Y + leading
	}
	for i, child := range n.children {
		var childMain int
		if info[i].flex > 0 && totalFlex > 0 {
			childMain = int(float64(remaining) * info[i].flex / totalFlex)
			tight := tui.Constraints{MinWidth: 0, MaxWidth: crossSize, MinHeight: 0, MaxHeight: crossSize}
			if horizontal {
				tight = tui.Constraints{MinWidth: childMain, MaxWidth: childMain, MinHeight: 0, MaxHeight: crossSize}
			} else {
				tight = tui.Constraints{MinWidth: 0, MaxWidth: crossSize, MinHeight: childMain, MaxHeight: childMain}
			}
			info[i].size = child.Measure(tight)
		} else if horizontal {
			childMain = info[i].size.Width
		} else {
			childMain = info[i].size.Height
		}

		var childRect tui.Rect
		crossOffset := crossOffsetFor(n.crossAlign, crossSize, crossCompOf(horizontal, info[i].size))
		if horizontal {
			childRect = tui.Rect{X: main, Y: r.Y + crossOffset, Width: childMain, Height: crossSizeFor(n.crossAlign, crossSize, info[i].size.Height)}
		} else {
			childRect = tui.Rect{X: r.X + crossOffset, Y: main, Width: crossSizeFor(n.crossAlign, crossSize, info[i].size.Width), Height: childMain}
		}
		child.Arrange(childRect)
		main += childMain + n.spacing + extraGap
	}
}

func crossCompOf(horizontal bool, sz tui.Size) int {
	if horizontal {
		return sz.Height
	}
	return sz.Width
}

func crossOffsetFor(align layout.CrossAxisAlignment, crossSize, childCross int) int {
	switch align {
	case layout.CrossAxisEnd:
		return crossSize - childCross
	case layout.CrossAxisCenter:
		return (crossSize - childCross) / 2
	default:
		return 0
	}
}

func crossSizeFor(align layout.CrossAxisAlignment, crossSize, childCross int) int {
	if align == layout.CrossAxisStretch {
		return crossSize
	}
	return childCross
}

func (n *StackNode) Render(surf *tui.Surface, ctx *tui.RenderContext) {
	for _, child := range n.children {
		child.Render(surf, ctx)
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
