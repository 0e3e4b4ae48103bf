package widgets

import (
	"testing"

	tui "github.com/brackenfield/tuicore"
	"github.com/stretchr/testify/assert"
)

func renderWidget(w tui.Widget, width, height int) *tui.Surface {
	node := tui.Reconcile(w, nil)
	node.Measure(tui.TightDims(width, height))
	node.Arrange(tui.Rect{Width: width, Height: height})
	surf := tui.NewSurface(width, height)
	node.Render(surf, tui.NewRenderContext(tui.DefaultTheme()))
	return surf
}

func TestBorder_DrawsFrameAroundChild(t *testing.T) {
	w := &Border{Child: &Text{Content: "hi"}}
	surf := renderWidget(w, 6, 3)

	assert.Equal(t, "┌", surf.At(0, 0).Char)
	assert.Equal(t, "┐", surf.At(5, 0).Char)
	assert.Equal(t, "└", surf.At(0, 2).Char)
	assert.Equal(t, "┘", surf.At(5, 2).Char)
	assert.Equal(t, "─", surf.At(2, 0).Char)
	assert.Equal(t, "│", surf.At(0, 1).Char)
}

func TestBorder_RendersTitle(t *testing.T) {
	w := &Border{Child: &Text{Content: "x"}, Title: "Hi"}
	surf := renderWidget(w, 10, 3)

	assert.Equal(t, "H", surf.At(2, 0).Char)
	assert.Equal(t, "i", surf.At(3, 0).Char)
}

func TestBorder_MeasureAddsInsetToChildSize(t *testing.T) {
	b := &Border{Child: &Text{Content: "hello"}}
	node := tui.Reconcile(b, nil)

	size := node.Measure(tui.Loose(80, 24))

	assert.Equal(t, 5+2, size.Width)
	assert.Equal(t, 1+2, size.Height)
}

func TestBorder_MeasureIncludesPadding(t *testing.T) {
	b := &Border{Child: &Text{Content: "hi"}, Padding: tui.EdgeInsetsAll(1)}
	node := tui.Reconcile(b, nil)

	size := node.Measure(tui.Loose(80, 24))

	assert.Equal(t, 2+2+2, size.Width)
	assert.Equal(t, 1+2+2, size.Height)
}

func TestBorder_ArrangesChildInsideFrame(t *testing.T) {
	b := &Border{Child: &Text{Content: "hi"}}
	node := tui.Reconcile(b, nil).(*BorderNode)

	node.Measure(tui.TightDims(10, 5))
	node.Arrange(tui.Rect{X: 0, Y: 0, Width: 10, Height: 5})

	childBounds := node.Children()[0].Base().Bounds()
	assert.Equal(t, tui.Rect{X: 1, Y: 1, Width: 8, Height: 3}, childBounds)
}

func TestBorder_TooSmallSkipsFrame(t *testing.T) {
	w := &Border{Child: &Text{Content: "x"}}
	surf := renderWidget(w, 1, 1)

	assert.NotEqual(t, "┌", surf.At(0, 0).Char, "a 1x1 area has no room for a frame")
}

func TestBorder_MarginOffsetsFrameFromAllocatedBounds(t *testing.T) {
	b := &Border{Child: &Text{Content: "hi"}, Margin: tui.EdgeInsetsAll(1)}
	surf := renderWidget(b, 10, 5)

	assert.Equal(t, "┌", surf.At(1, 1).Char, "the frame starts one cell in on every side")
	assert.Equal(t, " ", surf.At(0, 0).Char, "the margin itself is left untouched")
}

func TestBorder_MeasureAddsMarginToChildSize(t *testing.T) {
	b := &Border{Child: &Text{Content: "hi"}, Margin: tui.EdgeInsetsAll(2)}
	node := tui.Reconcile(b, nil)

	size := node.Measure(tui.Loose(80, 24))

	assert.Equal(t, 2+2+4, size.Width)
	assert.Equal(t, 1+2+4, size.Height)
}

func TestBorder_BackgroundFillsPaddingAroundChild(t *testing.T) {
	b := &Border{Child: &Text{Content: "x"}, Padding: tui.EdgeInsetsAll(1), BG: tui.Some(tui.Blue)}
	surf := renderWidget(b, 8, 5)

	assert.True(t, surf.At(1, 1).BG.Set, "the padded cell beside the child is filled with the background")
	assert.Equal(t, tui.Blue, surf.At(1, 1).BG.Color)
}
