package widgets

import (
	"reflect"

	tui "github.com/brackenfield/tuicore"
	"github.com/brackenfield/tuicore/layout"
	"github.com/brackenfield/tuicore/widthclass"
)

// Scrollable wraps a single child in a vertically scrolling viewport. The
// child is measured with an unbounded height to find its natural content
// size; when that exceeds the viewport, a one-column scrollbar is
// reserved on the right and keyboard scrolling is enabled.
type Scrollable struct {
	tui.BaseWidget
	Child               tui.Widget
	DisableScroll       bool
	Padding             tui.EdgeInsets
	ScrollbarThumbColor tui.OptionalColor
	ScrollbarTrackColor tui.OptionalColor
}

func (s *Scrollable) NodeType() reflect.Type { return tui.NodeTypeOf[*ScrollableNode]() }

func (s *Scrollable) Reconcile(existing tui.Node) tui.Node {
	var n *ScrollableNode
	if existing != nil {
		n = existing.(*ScrollableNode)
	} else {
		n = &ScrollableNode{}
		n.Focusable = true
	}
	n.disableScroll = s.DisableScroll
	n.padding = s.Padding
	n.thumbColor = s.ScrollbarThumbColor
	n.trackColor = s.ScrollbarTrackColor
	n.child = tui.Reconcile(s.Child, n.child)
	return n
}

// ScrollableNode is the persistent node a Scrollable widget reconciles
// into. It implements tui.ClipProvider so descendants skip rows scrolled
// out of view instead of being measured against a sub-surface.
type ScrollableNode struct {
	tui.NodeBase
	child         tui.Node
	disableScroll bool
	padding       tui.EdgeInsets
	thumbColor    tui.OptionalColor
	trackColor    tui.OptionalColor

	box layout.BoxModel
}

func (n *ScrollableNode) Children() []tui.Node { return []tui.Node{n.child} }

func (n *ScrollableNode) scrollbarWidth() int {
	if n.disableScroll {
		return 0
	}
	return 1
}

func (n *ScrollableNode) Measure(c tui.Constraints) tui.Size {
	hInset := n.padding.Horizontal() + n.scrollbarWidth()
	vInset := n.padding.Vertical()
	childConstraints := tui.Constraints{
		MinWidth: 0, MaxWidth: max0(c.MaxWidth - hInset),
		MinHeight: 0, MaxHeight: tui.Unbounded().MaxHeight,
	}
	childSize := n.child.Measure(childConstraints)
	return c.ConstrainSize(tui.Size{Width: childSize.Width + hInset, Height: childSize.Height + vInset})
}

func max0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func (n *ScrollableNode) Arrange(r tui.Rect) {
	n.SetBounds(r)
	hInset := n.padding.Horizontal() + n.scrollbarWidth()
	viewportWidth := max0(r.Width - hInset)

	childConstraints := tui.Constraints{
		MinWidth: 0, MaxWidth: viewportWidth,
		MinHeight: 0, MaxHeight: tui.Unbounded().MaxHeight,
	}
	childSize := n.child.Measure(childConstraints)

	box := layout.BoxModel{}.
		WithSize(r.Width, r.Height).
		WithPadding(n.padding).
		WithScrollbarWidth(n.scrollbarWidth()).
		WithVirtualSize(childSize.Width, childSize.Height)
	n.box = box.WithClampedScrollOffset()

	ox, oy := n.box.ContentOrigin()
	usable := n.box.UsableContentBox()
	n.child.Arrange(tui.Rect{
		X:      r.X + ox,
		Y:      r.Y + oy - n.box.ScrollOffsetY,
		Width:  usable.Width,
		Height: childSize.Height,
	})
}

// ShouldRenderAt reports whether (x, y), in absolute surface coordinates,
// falls within the node's visible viewport (content box minus the
// reserved scrollbar column).
func (n *ScrollableNode) ShouldRenderAt(x, y int) bool {
	b := n.Bounds()
	ox, _ := n.box.ContentOrigin()
	usable := n.box.UsableContentBox()
	left := b.X + ox
	return b.Contains(x, y) && x >= left && x < left+usable.Width
}

// ClipString truncates text so it does not cross the viewport's right
// edge (accounting for padding and the reserved scrollbar column); x is
// returned unchanged since Scrollable only clips vertically and on the
// right.
func (n *ScrollableNode) ClipString(x, y int, text string) (int, string) {
	ox, _ := n.box.ContentOrigin()
	usable := n.box.UsableContentBox()
	limit := n.Bounds().X + ox + usable.Width
	if x >= limit {
		return x, ""
	}
	avail := limit - x
	return x, truncateToWidth(text, avail)
}

func truncateToWidth(text string, maxWidth int) string {
	width := 0
	consumed := 0
	for _, g := range widthclass.Graphemes(text) {
		if width+g.Width > maxWidth {
			break
		}
		width += g.Width
		consumed += len(g.Text)
	}
	return text[:consumed]
}

func (n *ScrollableNode) Render(surf *tui.Surface, ctx *tui.RenderContext) {
	ctx.PushClip(n)
	n.child.Render(surf, ctx)
	ctx.PopClip()

	if n.disableScroll || !n.box.IsScrollableY() {
		return
	}
	n.renderScrollbar(surf)
}

// renderScrollbar paints the one-column scrollbar: an up arrow and down
// arrow at the track ends bracketing a thumb/track fill, mirroring the
// arrow-button-plus-thumb scrollbar every terminal multiplexer draws.
// Tracks too short to fit both arrows plus at least one fill row fall back
// to a plain thumb/track column so nothing renders out of bounds.
func (n *ScrollableNode) renderScrollbar(surf *tui.Surface) {
	b := n.Bounds()
	x := b.X + b.Width - 1
	trackHeight := b.Height
	if trackHeight <= 0 {
		return
	}

	thumbColor := n.thumbColor
	if !thumbColor.Set {
		if n.Focused {
			thumbColor = tui.Some(tui.BrightCyan)
		} else {
			thumbColor = tui.Some(tui.White)
		}
	}
	trackColor := n.trackColor
	if !trackColor.Set {
		trackColor = tui.Some(tui.BrightBlack)
	}

	fillY := b.Y
	fillHeight := trackHeight
	const arrows = 2
	if trackHeight > arrows {
		surf.Set(x, b.Y, tui.Cell{Char: "▲", DisplayWidth: 1, FG: thumbColor})
		surf.Set(x, b.Y+trackHeight-1, tui.Cell{Char: "▼", DisplayWidth: 1, FG: thumbColor})
		fillY = b.Y + 1
		fillHeight = trackHeight - arrows
	}
	if fillHeight <= 0 {
		return
	}

	virtual := n.box.VirtualContentRect()
	thumbHeight := max0((fillHeight * fillHeight) / virtual.Height)
	if thumbHeight < 1 {
		thumbHeight = 1
	}
	if thumbHeight > fillHeight {
		thumbHeight = fillHeight
	}

	visible := n.box.VisibleContentRect()
	maxScroll := n.box.MaxScrollY()
	thumbY := 0
	if maxScroll > 0 {
		thumbY = (visible.Y * (fillHeight - thumbHeight)) / maxScroll
	}

	for y := 0; y < fillHeight; y++ {
		if y >= thumbY && y < thumbY+thumbHeight {
			surf.Set(x, fillY+y, tui.Cell{Char: "█", DisplayWidth: 1, FG: thumbColor})
		} else {
			surf.Set(x, fillY+y, tui.Cell{Char: "░", DisplayWidth: 1, FG: trackColor})
		}
	}
}

// HandleInput scrolls the viewport with arrow/vim keys, page up/down, and
// home/end, mirroring the keyboard bindings a scrollable list offers.
func (n *ScrollableNode) HandleInput(ev tui.KeyEvent) bool {
	if n.disableScroll || !n.box.IsScrollableY() {
		return false
	}
	switch {
	case ev.Key == tui.KeyUp || (ev.Key == tui.KeyRune && ev.Ch == 'k'):
		n.scrollBy(-1)
		return true
	case ev.Key == tui.KeyDown || (ev.Key == tui.KeyRune && ev.Ch == 'j'):
		n.scrollBy(1)
		return true
	case ev.Key == tui.KeyPageUp:
		n.scrollBy(-n.box.ContentHeight() / 2)
		return true
	case ev.Key == tui.KeyPageDown:
		n.scrollBy(n.box.ContentHeight() / 2)
		return true
	case ev.Key == tui.KeyHome || (ev.Key == tui.KeyRune && ev.Ch == 'g'):
		n.box.ScrollOffsetY = 0
		return true
	case ev.Key == tui.KeyEnd || (ev.Key == tui.KeyRune && ev.Ch == 'G'):
		n.box.ScrollOffsetY = n.box.MaxScrollY()
		return true
	}
	return false
}

func (n *ScrollableNode) scrollBy(delta int) {
	n.box.ScrollOffsetY = n.box.ClampScrollOffsetY(n.box.ScrollOffsetY + delta)
}
