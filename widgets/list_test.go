package widgets

import (
	"testing"

	tui "github.com/brackenfield/tuicore"
	"github.com/stretchr/testify/assert"
)

func TestList_Measure_UsesWidestItemPlusIndicator(t *testing.T) {
	w := &List{Items: []string{"a", "bbbb", "cc"}}
	n := tui.Reconcile(w, nil)

	size := n.Measure(tui.Loose(80, 24))

	assert.Equal(t, 4+len("> "), size.Width)
	assert.Equal(t, 3, size.Height)
}

func TestList_DefaultsIndicatorWhenEmpty(t *testing.T) {
	w := &List{Items: []string{"a"}}
	n := tui.Reconcile(w, nil).(*ListNode)

	assert.Equal(t, "> ", n.indicator)
}

func TestList_ClampsSelectionWithinBounds(t *testing.T) {
	w := &List{Items: []string{"a", "b"}, Selected: 99}
	n := tui.Reconcile(w, nil).(*ListNode)

	assert.Equal(t, 1, n.selected)
}

func TestList_ClampsNegativeSelectionToZero(t *testing.T) {
	w := &List{Items: []string{"a", "b"}, Selected: -5}
	n := tui.Reconcile(w, nil).(*ListNode)

	assert.Equal(t, 0, n.selected)
}

func TestList_IsFocusableOnlyAsNewNode(t *testing.T) {
	w := &List{Items: []string{"a"}}
	n := tui.Reconcile(w, nil)

	assert.True(t, n.Base().Focusable)
}

func TestList_HandleInput_DownMovesSelectionForward(t *testing.T) {
	w := &List{Items: []string{"a", "b", "c"}}
	n := tui.Reconcile(w, nil).(*ListNode)

	consumed := n.HandleInput(tui.KeyEvent{Key: tui.KeyDown})

	assert.True(t, consumed)
	assert.Equal(t, 1, n.selected)
}

func TestList_HandleInput_DownStopsAtLastItem(t *testing.T) {
	w := &List{Items: []string{"a", "b"}, Selected: 1}
	n := tui.Reconcile(w, nil).(*ListNode)

	n.HandleInput(tui.KeyEvent{Key: tui.KeyDown})

	assert.Equal(t, 1, n.selected)
}

func TestList_HandleInput_UpStopsAtZero(t *testing.T) {
	w := &List{Items: []string{"a", "b"}}
	n := tui.Reconcile(w, nil).(*ListNode)

	n.HandleInput(tui.KeyEvent{Key: tui.KeyUp})

	assert.Equal(t, 0, n.selected)
}

func TestList_HandleInput_EnterFiresOnSelectWithCurrentIndex(t *testing.T) {
	var gotIndex = -1
	w := &List{Items: []string{"a", "b", "c"}, Selected: 1, OnSelect: func(i int) { gotIndex = i }}
	n := tui.Reconcile(w, nil).(*ListNode)

	consumed := n.HandleInput(tui.KeyEvent{Key: tui.KeyEnter})

	assert.True(t, consumed)
	assert.Equal(t, 1, gotIndex)
}

func TestList_HandleInput_IgnoresUnboundKeys(t *testing.T) {
	w := &List{Items: []string{"a"}}
	n := tui.Reconcile(w, nil).(*ListNode)

	consumed := n.HandleInput(tui.KeyEvent{Key: tui.KeyEscape})

	assert.False(t, consumed)
}

func TestList_Render_WritesIndicatorAndItems(t *testing.T) {
	w := &List{Items: []string{"alpha", "beta"}, Selected: 0}
	surf := renderWidget(w, 10, 2)

	assert.Equal(t, ">", surf.At(0, 0).Char)
	assert.Equal(t, "a", surf.At(2, 0).Char)
	assert.Equal(t, " ", surf.At(0, 1).Char, "unselected rows get no indicator glyph")
	assert.Equal(t, "b", surf.At(2, 1).Char)
}

func TestList_Render_ClipProviderTruncatesItemText(t *testing.T) {
	w := &List{Items: []string{"hello world"}, Selected: 0}
	n := tui.Reconcile(w, nil)
	n.Arrange(tui.Rect{Width: 20, Height: 1})
	surf := tui.NewSurface(20, 1)
	ctx := tui.NewRenderContext(tui.DefaultTheme())
	ctx.PushClip(&fakeClip{hiddenX: 5})

	n.Render(surf, ctx)

	assert.Equal(t, " ", surf.At(6, 0).Char, "item text past the clip boundary is never written")
}

func TestList_Render_ClipProviderHidesRowEntirely(t *testing.T) {
	w := &List{Items: []string{"alpha", "beta"}, Selected: 0}
	n := tui.Reconcile(w, nil)
	n.Arrange(tui.Rect{X: 5, Y: 0, Width: 5, Height: 2})
	surf := tui.NewSurface(20, 2)
	ctx := tui.NewRenderContext(tui.DefaultTheme())
	ctx.PushClip(&fakeClip{hiddenX: 5})

	n.Render(surf, ctx)

	assert.Equal(t, " ", surf.At(5, 0).Char)
	assert.Equal(t, " ", surf.At(5, 1).Char)
}
