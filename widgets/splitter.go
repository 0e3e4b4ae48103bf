package widgets

import (
	"reflect"

	tui "github.com/brackenfield/tuicore"
	"github.com/brackenfield/tuicore/layout"
)

const splitterKeyStep = 0.05

// Splitter divides its available space between two children along one
// axis, drawing a one-cell divider line between them at Position (a
// fraction of the axis, 0-1), clamped so each pane keeps at least
// MinPaneSize cells.
type Splitter struct {
	tui.BaseWidget
	First, Second tui.Widget
	Axis          layout.Axis
	Position      float64
	MinPaneSize   int
	DisableFocus  bool
	DividerFG     tui.OptionalColor
	DividerFocusFG tui.OptionalColor
}

func (s *Splitter) NodeType() reflect.Type { return tui.NodeTypeOf[*SplitterNode]() }

func (s *Splitter) Reconcile(existing tui.Node) tui.Node {
	var n *SplitterNode
	if existing != nil {
		n = existing.(*SplitterNode)
	} else {
		n = &SplitterNode{position: s.Position}
	}
	n.Focusable = !s.DisableFocus
	n.axis = s.Axis
	n.minPaneSize = s.MinPaneSize
	if n.minPaneSize <= 0 {
		n.minPaneSize = 1
	}
	n.fg = s.DividerFG
	n.focusFG = s.DividerFocusFG
	n.first = tui.Reconcile(s.First, n.first)
	n.second = tui.Reconcile(s.Second, n.second)
	return n
}

// SplitterNode is the persistent node a Splitter widget reconciles into.
type SplitterNode struct {
	tui.NodeBase
	first, second tui.Node
	axis          layout.Axis
	position      float64
	minPaneSize   int
	fg, focusFG   tui.OptionalColor

	dividerOffset int
	dividerSize   int
}

func (n *SplitterNode) Children() []tui.Node { return []tui.Node{n.first, n.second} }

func (n *SplitterNode) Measure(c tui.Constraints) tui.Size {
	return c.ConstrainSize(tui.Size{Width: c.MaxWidth, Height: c.MaxHeight})
}

func (n *SplitterNode) axisSize(r tui.Rect) int {
	if n.axis == layout.Horizontal {
		return r.Width
	}
	return r.Height
}

func (n *SplitterNode) resolveOffset(axisSize int) int {
	available := max0(axisSize - 1)
	if available <= 0 {
		return 0
	}
	offset := int(float64(available) * clamp01(n.position))
	minPane := n.minPaneSize
	if available < 2*minPane {
		return available / 2
	}
	if offset < minPane {
		offset = minPane
	}
	if offset > available-minPane {
		offset = available - minPane
	}
	return offset
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func (n *SplitterNode) Arrange(r tui.Rect) {
	n.SetBounds(r)
	axisSize := n.axisSize(r)
	n.dividerSize = 1
	if axisSize <= 0 {
		n.first.Arrange(r)
		n.second.Arrange(tui.Rect{X: r.X, Y: r.Y})
		return
	}
	n.dividerOffset = n.resolveOffset(axisSize)

	if n.axis == layout.Horizontal {
		n.first.Arrange(tui.Rect{X: r.X, Y: r.Y, Width: n.dividerOffset, Height: r.Height})
		secondX := r.X + n.dividerOffset + 1
		n.second.Arrange(tui.Rect{X: secondX, Y: r.Y, Width: max0(r.X + r.Width - secondX), Height: r.Height})
		return
	}
	n.first.Arrange(tui.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: n.dividerOffset})
	secondY := r.Y + n.dividerOffset + 1
	n.second.Arrange(tui.Rect{X: r.X, Y: secondY, Width: r.Width, Height: max0(r.Y + r.Height - secondY)})
}

func (n *SplitterNode) Render(surf *tui.Surface, ctx *tui.RenderContext) {
	n.first.Render(surf, ctx)
	n.second.Render(surf, ctx)

	b := n.Bounds()
	fg := n.fg
	if n.Focused && n.focusFG.Set {
		fg = n.focusFG
	}
	if n.axis == layout.Horizontal {
		x := b.X + n.dividerOffset
		for y := b.Y; y < b.Y+b.Height; y++ {
			surf.Set(x, y, tui.Cell{Char: "│", DisplayWidth: 1, FG: fg})
		}
		return
	}
	y := b.Y + n.dividerOffset
	for x := b.X; x < b.X+b.Width; x++ {
		surf.Set(x, y, tui.Cell{Char: "─", DisplayWidth: 1, FG: fg})
	}
}

// HandleInput nudges the divider position with the arrow keys matching
// the split's axis (or h/l, j/k as vi-style equivalents).
func (n *SplitterNode) HandleInput(ev tui.KeyEvent) bool {
	if n.axis == layout.Horizontal {
		switch {
		case ev.Key == tui.KeyLeft || (ev.Key == tui.KeyRune && ev.Ch == 'h'):
			n.position = clamp01(n.position - splitterKeyStep)
			return true
		case ev.Key == tui.KeyRight || (ev.Key == tui.KeyRune && ev.Ch == 'l'):
			n.position = clamp01(n.position + splitterKeyStep)
			return true
		}
		return false
	}
	switch {
	case ev.Key == tui.KeyUp || (ev.Key == tui.KeyRune && ev.Ch == 'k'):
		n.position = clamp01(n.position - splitterKeyStep)
		return true
	case ev.Key == tui.KeyDown || (ev.Key == tui.KeyRune && ev.Ch == 'j'):
		n.position = clamp01(n.position + splitterKeyStep)
		return true
	}
	return false
}
