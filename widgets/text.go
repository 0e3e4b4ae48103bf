package widgets

import (
	"reflect"

	tui "github.com/brackenfield/tuicore"
	"github.com/brackenfield/tuicore/layout"
)

// Text is a block of text. Its measured width is the display width of the
// widest (unicode-aware) line; height is the number of lines, counting
// explicit newlines and, when wrapping is enabled, wrapped lines.
// Wrapping never splits a wide grapheme.
type Text struct {
	tui.BaseWidget
	Content string
	Wrap    layout.WrapMode
	FG, BG  tui.OptionalColor
	Attrs   tui.Attrs
}

func (t *Text) NodeType() reflect.Type { return tui.NodeTypeOf[*TextNode]() }

func (t *Text) Reconcile(existing tui.Node) tui.Node {
	var n *TextNode
	if existing != nil {
		n = existing.(*TextNode)
	} else {
		n = &TextNode{}
	}
	n.content = t.Content
	n.wrap = t.Wrap
	n.fg, n.bg, n.attrs = t.FG, t.BG, t.Attrs
	return n
}

// TextNode is the persistent node a Text widget reconciles into.
type TextNode struct {
	tui.NodeBase
	content string
	wrap    layout.WrapMode
	fg, bg  tui.OptionalColor
	attrs   tui.Attrs
}

func (n *TextNode) Children() []tui.Node { return nil }

func (n *TextNode) Measure(c tui.Constraints) tui.Size {
	maxWidth := 0
	if c.HasBoundedWidth() {
		maxWidth = c.MaxWidth
	}
	w, h := layout.MeasureText(n.content, n.wrap, maxWidth)
	if h == 0 {
		h = 1
	}
	return c.ConstrainSize(tui.Size{Width: w, Height: h})
}

func (n *TextNode) Arrange(r tui.Rect) { n.SetBounds(r) }

func (n *TextNode) Render(surf *tui.Surface, ctx *tui.RenderContext) {
	b := n.Bounds()
	clip := ctx.NearestClip()
	lines := layout.WrapLines(n.content, n.wrap, b.Width)
	for i, line := range lines {
		if i >= b.Height {
			break
		}
		y := b.Y + i
		x := b.X
		if clip != nil {
			if !clip.ShouldRenderAt(x, y) {
				continue
			}
			x, line = clip.ClipString(x, y, line)
		}
		surf.WriteText(x, y, line, n.fg, n.bg, n.attrs)
	}
}
