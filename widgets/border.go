package widgets

import (
	"reflect"

	tui "github.com/brackenfield/tuicore"
	"github.com/brackenfield/tuicore/layout"
)

// Border wraps a single child with a one-cell line-drawn frame, optional
// padding between the frame and the child, and optional margin reserving
// blank space outside the frame, using layout.BoxModel to compute the
// four nested boxes (content, padding, border, margin) from those insets.
type Border struct {
	tui.BaseWidget
	Child   tui.Widget
	Padding tui.EdgeInsets
	Margin  tui.EdgeInsets
	FG, BG  tui.OptionalColor
	Title   string
}

func (b *Border) NodeType() reflect.Type { return tui.NodeTypeOf[*BorderNode]() }

func (b *Border) Reconcile(existing tui.Node) tui.Node {
	var n *BorderNode
	if existing != nil {
		n = existing.(*BorderNode)
	} else {
		n = &BorderNode{}
	}
	n.padding = b.Padding
	n.margin = b.Margin
	n.fg, n.bg = b.FG, b.BG
	n.title = b.Title
	n.child = tui.Reconcile(b.Child, n.child)
	return n
}

// BorderNode is the persistent node a Border widget reconciles into.
type BorderNode struct {
	tui.NodeBase
	child   tui.Node
	padding tui.EdgeInsets
	margin  tui.EdgeInsets
	fg, bg  tui.OptionalColor
	title   string
}

func (n *BorderNode) Children() []tui.Node { return []tui.Node{n.child} }

// box builds the BoxModel for a margin box of the given size: the
// border-box dimensions are the margin box shrunk by the margin insets.
func (n *BorderNode) box(marginBoxW, marginBoxH int) layout.BoxModel {
	return layout.BoxModel{}.
		WithSize(max0(marginBoxW-n.margin.Horizontal()), max0(marginBoxH-n.margin.Vertical())).
		WithPadding(n.padding).
		WithBorder(tui.EdgeInsetsAll(1)).
		WithMargin(n.margin)
}

func (n *BorderNode) Measure(c tui.Constraints) tui.Size {
	inset := 2 + n.padding.Horizontal() + n.margin.Horizontal()
	vinset := 2 + n.padding.Vertical() + n.margin.Vertical()
	childConstraints := c.Shrink(inset, vinset)
	childSize := n.child.Measure(childConstraints)

	box := layout.BoxModel{}.
		WithSize(childSize.Width+2+n.padding.Horizontal(), childSize.Height+2+n.padding.Vertical()).
		WithPadding(n.padding).
		WithBorder(tui.EdgeInsetsAll(1)).
		WithMargin(n.margin)
	return c.ConstrainSize(tui.Size{Width: box.MarginBoxWidth(), Height: box.MarginBoxHeight()})
}

func (n *BorderNode) Arrange(r tui.Rect) {
	n.SetBounds(r)
	box := n.box(r.Width, r.Height)
	ox, oy := box.ContentOrigin()
	content := box.ContentBox()
	n.child.Arrange(tui.Rect{
		X:      r.X + ox,
		Y:      r.Y + oy,
		Width:  content.Width,
		Height: content.Height,
	})
}

func (n *BorderNode) Render(surf *tui.Surface, ctx *tui.RenderContext) {
	r := n.Bounds()
	box := n.box(r.Width, r.Height)
	frame := box.BorderBox()
	frameRect := tui.Rect{X: r.X + frame.X, Y: r.Y + frame.Y, Width: frame.Width, Height: frame.Height}

	if n.bg.Set {
		n.fillBackground(surf, box, r)
	}
	if frameRect.Width < 2 || frameRect.Height < 2 {
		n.child.Render(surf, ctx)
		return
	}
	n.drawFrame(surf, frameRect)
	n.child.Render(surf, ctx)
}

// fillBackground paints the padding box (border-box minus border, i.e. the
// padding ring plus content area) with the configured background so padded
// space around the child isn't left showing the surface underneath.
func (n *BorderNode) fillBackground(surf *tui.Surface, box layout.BoxModel, r tui.Rect) {
	pb := box.PaddingBox()
	for y := 0; y < pb.Height; y++ {
		for x := 0; x < pb.Width; x++ {
			surf.Set(r.X+pb.X+x, r.Y+pb.Y+y, tui.Cell{Char: " ", BG: n.bg, DisplayWidth: 1})
		}
	}
}

func (n *BorderNode) drawFrame(surf *tui.Surface, b tui.Rect) {
	top, bottom := b.Y, b.Y+b.Height-1
	left, right := b.X, b.X+b.Width-1

	surf.Set(left, top, tui.Cell{Char: "┌", FG: n.fg, BG: n.bg, DisplayWidth: 1})
	surf.Set(right, top, tui.Cell{Char: "┐", FG: n.fg, BG: n.bg, DisplayWidth: 1})
	surf.Set(left, bottom, tui.Cell{Char: "└", FG: n.fg, BG: n.bg, DisplayWidth: 1})
	surf.Set(right, bottom, tui.Cell{Char: "┘", FG: n.fg, BG: n.bg, DisplayWidth: 1})

	for x := left + 1; x < right; x++ {
		surf.Set(x, top, tui.Cell{Char: "─", FG: n.fg, BG: n.bg, DisplayWidth: 1})
		surf.Set(x, bottom, tui.Cell{Char: "─", FG: n.fg, BG: n.bg, DisplayWidth: 1})
	}
	for y := top + 1; y < bottom; y++ {
		surf.Set(left, y, tui.Cell{Char: "│", FG: n.fg, BG: n.bg, DisplayWidth: 1})
		surf.Set(right, y, tui.Cell{Char: "│", FG: n.fg, BG: n.bg, DisplayWidth: 1})
	}

	if n.title != "" && b.Width > 4 {
		surf.WriteText(left+2, top, n.title, n.fg, n.bg, 0)
	}
}
