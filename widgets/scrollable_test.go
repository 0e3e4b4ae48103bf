package widgets

import (
	"fmt"
	"testing"

	tui "github.com/brackenfield/tuicore"
	"github.com/stretchr/testify/assert"
)

func tallContent(lines int) tui.Widget {
	texts := make([]tui.Widget, lines)
	for i := range texts {
		texts[i] = &Text{Content: fmt.Sprintf("line %d", i)}
	}
	return VStack(texts...)
}

func arrangeScrollable(n *ScrollableNode, width, height int) {
	n.Measure(tui.TightDims(width, height))
	n.Arrange(tui.Rect{Width: width, Height: height})
}

func TestScrollable_ReservesScrollbarColumnWhenContentOverflows(t *testing.T) {
	s := &Scrollable{Child: tallContent(20)}
	n := tui.Reconcile(s, nil).(*ScrollableNode)
	arrangeScrollable(n, 10, 5)

	assert.True(t, n.box.IsScrollableY())
	assert.Equal(t, 9, n.Children()[0].Base().Bounds().Width, "child viewport width shrinks by the scrollbar column")
}

func TestScrollable_NoScrollbarWhenContentFits(t *testing.T) {
	s := &Scrollable{Child: tallContent(2)}
	n := tui.Reconcile(s, nil).(*ScrollableNode)
	arrangeScrollable(n, 10, 5)

	assert.False(t, n.box.IsScrollableY())
}

func TestScrollable_DisableScrollSkipsScrollbarReservation(t *testing.T) {
	s := &Scrollable{Child: tallContent(20), DisableScroll: true}
	n := tui.Reconcile(s, nil).(*ScrollableNode)
	arrangeScrollable(n, 10, 5)

	assert.Equal(t, 10, n.Children()[0].Base().Bounds().Width)
}

func TestScrollable_HandleInput_ArrowDownScrollsForward(t *testing.T) {
	s := &Scrollable{Child: tallContent(20)}
	n := tui.Reconcile(s, nil).(*ScrollableNode)
	arrangeScrollable(n, 10, 5)

	assert.Equal(t, 0, n.box.ScrollOffsetY)
	consumed := n.HandleInput(tui.KeyEvent{Key: tui.KeyDown})
	assert.True(t, consumed)
	assert.Equal(t, 1, n.box.ScrollOffsetY)
}

func TestScrollable_HandleInput_EndJumpsToMaxScroll(t *testing.T) {
	s := &Scrollable{Child: tallContent(20)}
	n := tui.Reconcile(s, nil).(*ScrollableNode)
	arrangeScrollable(n, 10, 5)

	n.HandleInput(tui.KeyEvent{Key: tui.KeyEnd})
	assert.Equal(t, n.box.MaxScrollY(), n.box.ScrollOffsetY)
	assert.Greater(t, n.box.ScrollOffsetY, 0)
}

func TestScrollable_HandleInput_HomeResetsToZero(t *testing.T) {
	s := &Scrollable{Child: tallContent(20)}
	n := tui.Reconcile(s, nil).(*ScrollableNode)
	arrangeScrollable(n, 10, 5)

	n.HandleInput(tui.KeyEvent{Key: tui.KeyEnd})
	n.HandleInput(tui.KeyEvent{Key: tui.KeyHome})
	assert.Equal(t, 0, n.box.ScrollOffsetY)
}

func TestScrollable_HandleInput_DisabledWhenContentFits(t *testing.T) {
	s := &Scrollable{Child: tallContent(2)}
	n := tui.Reconcile(s, nil).(*ScrollableNode)
	arrangeScrollable(n, 10, 5)

	consumed := n.HandleInput(tui.KeyEvent{Key: tui.KeyDown})
	assert.False(t, consumed)
}

func TestScrollable_ShouldRenderAt_ExcludesScrollbarColumn(t *testing.T) {
	s := &Scrollable{Child: tallContent(20)}
	n := tui.Reconcile(s, nil).(*ScrollableNode)
	arrangeScrollable(n, 10, 5)

	assert.True(t, n.ShouldRenderAt(0, 0))
	assert.False(t, n.ShouldRenderAt(9, 0), "the rightmost column is reserved for the scrollbar")
}

func TestScrollable_ClipString_TruncatesAtViewportEdge(t *testing.T) {
	s := &Scrollable{Child: tallContent(20)}
	n := tui.Reconcile(s, nil).(*ScrollableNode)
	arrangeScrollable(n, 10, 5)

	x, clipped := n.ClipString(4, 0, "hello world")
	assert.Equal(t, 4, x)
	assert.Equal(t, "hello", clipped)
}

func TestScrollable_ClipString_EmptyPastViewport(t *testing.T) {
	s := &Scrollable{Child: tallContent(20)}
	n := tui.Reconcile(s, nil).(*ScrollableNode)
	arrangeScrollable(n, 10, 5)

	_, clipped := n.ClipString(9, 0, "hello")
	assert.Equal(t, "", clipped)
}

func TestScrollable_PaddingShrinksViewportAndOffsetsChild(t *testing.T) {
	s := &Scrollable{Child: tallContent(20), Padding: tui.EdgeInsetsAll(1)}
	n := tui.Reconcile(s, nil).(*ScrollableNode)
	arrangeScrollable(n, 10, 5)

	childBounds := n.Children()[0].Base().Bounds()
	assert.Equal(t, 1, childBounds.X, "padding pushes the content in from the left edge")
	assert.Equal(t, 10-2-1, childBounds.Width, "left+right padding plus the scrollbar column are reserved")
}

func TestScrollable_RenderScrollbar_DrawsArrowsAtTrackEnds(t *testing.T) {
	s := &Scrollable{Child: tallContent(20)}
	surf := renderWidget(s, 10, 5)

	assert.Equal(t, "▲", surf.At(9, 0).Char)
	assert.Equal(t, "▼", surf.At(9, 4).Char)
}
