package widgets

import (
	"testing"

	tui "github.com/brackenfield/tuicore"
	"github.com/brackenfield/tuicore/layout"
	"github.com/stretchr/testify/assert"
)

func newSplitterNode(axis layout.Axis, position float64, minPane int) *SplitterNode {
	s := &Splitter{
		First:       &Text{Content: "left"},
		Second:      &Text{Content: "right"},
		Axis:        axis,
		Position:    position,
		MinPaneSize: minPane,
	}
	return tui.Reconcile(s, nil).(*SplitterNode)
}

func TestSplitter_ResolveOffset_AtMidpoint(t *testing.T) {
	n := newSplitterNode(layout.Horizontal, 0.5, 1)

	offset := n.resolveOffset(21)

	assert.Equal(t, 10, offset)
}

func TestSplitter_ResolveOffset_ClampsToMinPaneSize(t *testing.T) {
	n := newSplitterNode(layout.Horizontal, 0.0, 3)

	offset := n.resolveOffset(20)

	assert.Equal(t, 3, offset)
}

func TestSplitter_ResolveOffset_ClampsAgainstFarMinPane(t *testing.T) {
	n := newSplitterNode(layout.Horizontal, 1.0, 3)

	offset := n.resolveOffset(20)

	assert.Equal(t, 20-1-3, offset)
}

func TestSplitter_ResolveOffset_SplitsEvenlyWhenTooSmallForBothMinPanes(t *testing.T) {
	n := newSplitterNode(layout.Horizontal, 0.5, 10)

	offset := n.resolveOffset(10)

	assert.Equal(t, (10-1)/2, offset)
}

func TestSplitter_Arrange_PlacesPanesOnEitherSideOfDivider(t *testing.T) {
	n := newSplitterNode(layout.Horizontal, 0.5, 1)

	n.Arrange(tui.Rect{X: 0, Y: 0, Width: 21, Height: 5})

	first := n.Children()[0].Base().Bounds()
	second := n.Children()[1].Base().Bounds()

	assert.Equal(t, 10, first.Width)
	assert.Equal(t, 10, second.Width)
	assert.Equal(t, 11, second.X, "second pane starts just past the one-cell divider")
}

func TestSplitter_HandleInput_HorizontalArrowsNudgePosition(t *testing.T) {
	n := newSplitterNode(layout.Horizontal, 0.5, 1)

	consumed := n.HandleInput(tui.KeyEvent{Key: tui.KeyRight})

	assert.True(t, consumed)
	assert.InDelta(t, 0.55, n.position, 1e-9)
}

func TestSplitter_HandleInput_HorizontalIgnoresVerticalKeys(t *testing.T) {
	n := newSplitterNode(layout.Horizontal, 0.5, 1)

	consumed := n.HandleInput(tui.KeyEvent{Key: tui.KeyUp})

	assert.False(t, consumed)
	assert.InDelta(t, 0.5, n.position, 1e-9)
}

func TestSplitter_HandleInput_VerticalArrowsNudgePosition(t *testing.T) {
	n := newSplitterNode(layout.Vertical, 0.5, 1)

	consumed := n.HandleInput(tui.KeyEvent{Key: tui.KeyDown})

	assert.True(t, consumed)
	assert.InDelta(t, 0.55, n.position, 1e-9)
}

func TestSplitter_HandleInput_ClampsAtBounds(t *testing.T) {
	n := newSplitterNode(layout.Horizontal, 0.98, 1)

	for i := 0; i < 5; i++ {
		n.HandleInput(tui.KeyEvent{Key: tui.KeyRight})
	}

	assert.InDelta(t, 1.0, n.position, 1e-9)
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, clamp01(-0.5))
	assert.Equal(t, 1.0, clamp01(1.5))
	assert.Equal(t, 0.3, clamp01(0.3))
}
