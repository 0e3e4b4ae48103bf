package layout

import (
	"testing"

	tui "github.com/brackenfield/tuicore"
	"github.com/stretchr/testify/assert"
)

func TestBoxModel_ContentDimensions_SubtractPaddingAndBorder(t *testing.T) {
	b := BoxModel{Width: 20, Height: 10, Padding: tui.EdgeInsetsAll(1), Border: tui.EdgeInsetsAll(1)}

	assert.Equal(t, 16, b.ContentWidth())
	assert.Equal(t, 6, b.ContentHeight())
}

func TestBoxModel_ContentDimensions_ClampToZeroWhenInsetsExceedBox(t *testing.T) {
	b := BoxModel{Width: 1, Height: 1, Padding: tui.EdgeInsetsAll(1), Border: tui.EdgeInsetsAll(1)}

	assert.Equal(t, 0, b.ContentWidth())
	assert.Equal(t, 0, b.ContentHeight())
}

func TestBoxModel_ContentBox_PositionedPastInsets(t *testing.T) {
	b := BoxModel{Width: 10, Height: 10, Padding: tui.EdgeInsetsAll(1), Border: tui.EdgeInsetsAll(1), Margin: tui.EdgeInsetsAll(2)}

	got := b.ContentBox()

	assert.Equal(t, tui.Rect{X: 4, Y: 4, Width: 6, Height: 6}, got)
}

func TestBoxModel_MarginBoxAlwaysAtOrigin(t *testing.T) {
	b := BoxModel{Width: 10, Height: 5, Margin: tui.EdgeInsetsAll(2)}

	got := b.MarginBox()

	assert.Equal(t, 0, got.X)
	assert.Equal(t, 0, got.Y)
	assert.Equal(t, 14, got.Width)
	assert.Equal(t, 9, got.Height)
}

func TestBoxModel_EffectiveVirtualSize_FallsBackToContentSize(t *testing.T) {
	b := BoxModel{Width: 10, Height: 10}

	assert.Equal(t, b.ContentWidth(), b.EffectiveVirtualWidth())
	assert.Equal(t, b.ContentHeight(), b.EffectiveVirtualHeight())
}

func TestBoxModel_EffectiveVirtualSize_UsesExplicitVirtualSize(t *testing.T) {
	b := BoxModel{Width: 10, Height: 10, VirtualWidth: 50, VirtualHeight: 30}

	assert.Equal(t, 50, b.EffectiveVirtualWidth())
	assert.Equal(t, 30, b.EffectiveVirtualHeight())
}

func TestBoxModel_IsScrollable_TrueWhenVirtualExceedsContent(t *testing.T) {
	b := BoxModel{Width: 10, Height: 10, VirtualHeight: 100}

	assert.True(t, b.IsScrollableY())
	assert.False(t, b.IsScrollableX())
	assert.True(t, b.IsScrollable())
}

func TestBoxModel_MaxScrollY_IsDifferenceBetweenVirtualAndContent(t *testing.T) {
	b := BoxModel{Width: 10, Height: 10, VirtualHeight: 30}

	assert.Equal(t, 20, b.MaxScrollY())
}

func TestBoxModel_MaxScrollY_ZeroWhenNotScrollable(t *testing.T) {
	b := BoxModel{Width: 10, Height: 10}

	assert.Equal(t, 0, b.MaxScrollY())
}

func TestBoxModel_ClampScrollOffsetY_ClampsToRange(t *testing.T) {
	b := BoxModel{Width: 10, Height: 10, VirtualHeight: 30}

	assert.Equal(t, 0, b.ClampScrollOffsetY(-5))
	assert.Equal(t, 20, b.ClampScrollOffsetY(999))
	assert.Equal(t, 10, b.ClampScrollOffsetY(10))
}

func TestBoxModel_WithClampedScrollOffset_AppliesToBothAxes(t *testing.T) {
	b := BoxModel{Width: 10, Height: 10, VirtualHeight: 30, ScrollOffsetX: 5, ScrollOffsetY: 999}

	got := b.WithClampedScrollOffset()

	assert.Equal(t, 0, got.ScrollOffsetX)
	assert.Equal(t, 20, got.ScrollOffsetY)
}

func TestBoxModel_UsableContentBox_ReservesScrollbarColumn(t *testing.T) {
	b := BoxModel{Width: 10, Height: 10, VirtualHeight: 30, ScrollbarWidth: 1}

	got := b.UsableContentBox()

	assert.Equal(t, 9, got.Width, "vertical scrollbar reserves one column when scrollable")
}

func TestBoxModel_UsableContentBox_NoReservationWhenNotScrollable(t *testing.T) {
	b := BoxModel{Width: 10, Height: 10, ScrollbarWidth: 1}

	got := b.UsableContentBox()

	assert.Equal(t, 10, got.Width)
}

func TestBoxModel_WithSize_ClampsNegativeToZero(t *testing.T) {
	b := BoxModel{}.WithSize(-5, -5)

	assert.Equal(t, 0, b.Width)
	assert.Equal(t, 0, b.Height)
}

func TestBoxModel_Validate_PanicsOnNegativePadding(t *testing.T) {
	b := BoxModel{Padding: tui.EdgeInsets{Left: -1}}

	assert.Panics(t, func() { b.Validate() })
}

func TestBoxModel_Validate_AllowsNegativeMargin(t *testing.T) {
	b := BoxModel{Margin: tui.EdgeInsets{Left: -1}}

	assert.NotPanics(t, func() { b.Validate() })
}
