package widgets

import (
	"reflect"

	tui "github.com/brackenfield/tuicore"
	"github.com/brackenfield/tuicore/widthclass"
)

// List renders a vertical list of string items with a selection
// indicator. Measured width is the widest item's display width plus the
// indicator width (default 2 columns); measured height is the item count,
// clamped to constraints.
type List struct {
	tui.BaseWidget
	Items         []string
	Selected      int
	IndicatorText string
	OnSelect      func(index int)
}

func (l *List) NodeType() reflect.Type { return tui.NodeTypeOf[*ListNode]() }

func (l *List) Reconcile(existing tui.Node) tui.Node {
	var n *ListNode
	if existing != nil {
		n = existing.(*ListNode)
	} else {
		n = &ListNode{}
		n.Focusable = true
	}
	n.items = l.Items
	n.selected = clampSelection(l.Selected, len(l.Items))
	n.indicator = l.IndicatorText
	if n.indicator == "" {
		n.indicator = "> "
	}
	n.onSelect = l.OnSelect
	return n
}

func clampSelection(sel, count int) int {
	if count == 0 {
		return 0
	}
	if sel < 0 {
		return 0
	}
	if sel >= count {
		return count - 1
	}
	return sel
}

// ListNode is the persistent node a List widget reconciles into.
type ListNode struct {
	tui.NodeBase
	items     []string
	selected  int
	indicator string
	onSelect  func(index int)
}

func (n *ListNode) Children() []tui.Node { return nil }

func (n *ListNode) Measure(c tui.Constraints) tui.Size {
	indicatorWidth := widthclass.String(n.indicator)
	maxItem := 0
	for _, item := range n.items {
		if w := widthclass.String(item); w > maxItem {
			maxItem = w
		}
	}
	return c.ConstrainSize(tui.Size{Width: maxItem + indicatorWidth, Height: len(n.items)})
}

func (n *ListNode) Arrange(r tui.Rect) { n.SetBounds(r) }

func (n *ListNode) Render(surf *tui.Surface, ctx *tui.RenderContext) {
	b := n.Bounds()
	clip := ctx.NearestClip()
	indicatorWidth := widthclass.String(n.indicator)
	for i, item := range n.items {
		if i >= b.Height {
			break
		}
		y := b.Y + i
		if clip != nil && !clip.ShouldRenderAt(b.X, y) {
			continue
		}
		if i == n.selected {
			indX, ind := b.X, n.indicator
			if clip != nil {
				indX, ind = clip.ClipString(indX, y, ind)
			}
			surf.WriteText(indX, y, ind, tui.OptionalColor{}, tui.OptionalColor{}, tui.AttrBold)
		}
		itemX, itemText := b.X+indicatorWidth, item
		if clip != nil {
			itemX, itemText = clip.ClipString(itemX, y, itemText)
		}
		surf.WriteText(itemX, y, itemText, tui.OptionalColor{}, tui.OptionalColor{}, 0)
	}
}

// HandleInput moves the selection with Up/Down and fires OnSelect on
// Enter, consistent with the framework's built-in list navigation.
func (n *ListNode) HandleInput(ev tui.KeyEvent) bool {
	switch ev.Key {
	case tui.KeyUp:
		if n.selected > 0 {
			n.selected--
		}
		return true
	case tui.KeyDown:
		if n.selected < len(n.items)-1 {
			n.selected++
		}
		return true
	case tui.KeyEnter:
		if n.onSelect != nil {
			n.onSelect(n.selected)
		}
		return true
	}
	return false
}
