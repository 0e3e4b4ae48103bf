package widgets

import (
	"testing"

	tui "github.com/brackenfield/tuicore"
	"github.com/stretchr/testify/assert"
)

func TestResponsive_SelectsMatchingBranch(t *testing.T) {
	r := &Responsive{Responsive: tui.Responsive{
		Width: 100,
		Branches: []tui.ResponsiveBranch{
			{When: tui.MinWidth(120), Child: &Text{Content: "wide"}},
			{When: tui.MinWidth(80), Child: &Text{Content: "medium"}},
		},
		Otherwise: &Text{Content: "narrow"},
	}}

	n := tui.Reconcile(r, nil).(*ResponsiveNode)

	textNode := n.child.(*TextNode)
	assert.Equal(t, "medium", textNode.content)
}

func TestResponsive_FallsBackToOtherwise(t *testing.T) {
	r := &Responsive{Responsive: tui.Responsive{
		Width: 10,
		Branches: []tui.ResponsiveBranch{
			{When: tui.MinWidth(120), Child: &Text{Content: "wide"}},
		},
		Otherwise: &Text{Content: "narrow"},
	}}

	n := tui.Reconcile(r, nil).(*ResponsiveNode)

	textNode := n.child.(*TextNode)
	assert.Equal(t, "narrow", textNode.content)
}

func TestResponsive_MeasureArrangeRenderDelegateToSelectedChild(t *testing.T) {
	r := &Responsive{Responsive: tui.Responsive{
		Width:     50,
		Otherwise: &Text{Content: "hello"},
	}}
	n := tui.Reconcile(r, nil)

	size := n.Measure(tui.Loose(80, 24))
	assert.Equal(t, 5, size.Width)

	n.Arrange(tui.Rect{X: 0, Y: 0, Width: 10, Height: 1})
	surf := tui.NewSurface(10, 1)
	n.Render(surf, tui.NewRenderContext(tui.DefaultTheme()))

	assert.Equal(t, "h", surf.At(0, 0).Char)
}

func TestResponsive_ReReconcileSwitchesBranchOnWidthChange(t *testing.T) {
	r := &Responsive{Responsive: tui.Responsive{
		Width: 10,
		Branches: []tui.ResponsiveBranch{
			{When: tui.MinWidth(50), Child: &Text{Content: "wide"}},
		},
		Otherwise: &Text{Content: "narrow"},
	}}
	n := tui.Reconcile(r, nil).(*ResponsiveNode)
	assert.Equal(t, "narrow", n.child.(*TextNode).content)

	r2 := &Responsive{Responsive: tui.Responsive{
		Width: 60,
		Branches: []tui.ResponsiveBranch{
			{When: tui.MinWidth(50), Child: &Text{Content: "wide"}},
		},
		Otherwise: &Text{Content: "narrow"},
	}}
	n2 := tui.Reconcile(r2, n).(*ResponsiveNode)

	assert.Same(t, n, n2)
	assert.Equal(t, "wide", n2.child.(*TextNode).content)
}
