package widgets

import (
	"testing"

	tui "github.com/brackenfield/tuicore"
	"github.com/stretchr/testify/assert"
)

type resolvingProbeNode struct {
	tui.NodeBase
	token    tui.ThemeToken
	resolved tui.Color
	found    bool
}

func (n *resolvingProbeNode) Children() []tui.Node           { return nil }
func (n *resolvingProbeNode) Measure(c tui.Constraints) tui.Size { return tui.Size{} }
func (n *resolvingProbeNode) Arrange(r tui.Rect)              { n.SetBounds(r) }
func (n *resolvingProbeNode) Render(surf *tui.Surface, ctx *tui.RenderContext) {
	n.resolved, n.found = ctx.Resolve(n.token)
}

func newThemingPanelNode(child tui.Node, overlay tui.Theme) *ThemingPanelNode {
	return &ThemingPanelNode{child: child, overlay: overlay}
}

func TestThemingPanel_OverlayAppliesDuringChildRender(t *testing.T) {
	overlay := tui.NewTheme(map[tui.ThemeToken]tui.Color{tui.TokenPrimary: tui.Red})
	probe := &resolvingProbeNode{token: tui.TokenPrimary}
	n := newThemingPanelNode(probe, overlay)

	ctx := tui.NewRenderContext(tui.DefaultTheme())
	n.Render(tui.NewSurface(1, 1), ctx)

	assert.True(t, probe.found)
	assert.Equal(t, tui.Red, probe.resolved)
}

func TestThemingPanel_OverlayPoppedAfterRender(t *testing.T) {
	overlay := tui.NewTheme(map[tui.ThemeToken]tui.Color{tui.TokenPrimary: tui.Red})
	probe := &resolvingProbeNode{token: tui.TokenPrimary}
	n := newThemingPanelNode(probe, overlay)

	ctx := tui.NewRenderContext(tui.DefaultTheme())
	n.Render(tui.NewSurface(1, 1), ctx)

	afterPop, _ := ctx.Resolve(tui.TokenPrimary)
	assert.Equal(t, tui.DefaultTheme()[tui.TokenPrimary], afterPop, "overlay must not leak past the panel's render")
}

func TestThemingPanel_FallsThroughForTokensTheOverlayDoesNotDefine(t *testing.T) {
	overlay := tui.NewTheme(map[tui.ThemeToken]tui.Color{tui.TokenPrimary: tui.Red})
	probe := &resolvingProbeNode{token: tui.TokenSecondary}
	n := newThemingPanelNode(probe, overlay)

	ctx := tui.NewRenderContext(tui.DefaultTheme())
	n.Render(tui.NewSurface(1, 1), ctx)

	assert.True(t, probe.found)
	assert.Equal(t, tui.DefaultTheme()[tui.TokenSecondary], probe.resolved)
}

func TestThemingPanel_MeasureAndArrangeDelegateToChild(t *testing.T) {
	probe := &resolvingProbeNode{}
	n := newThemingPanelNode(probe, nil)

	assert.Equal(t, tui.Size{}, n.Measure(tui.Loose(5, 5)))
	n.Arrange(tui.Rect{X: 1, Y: 2, Width: 3, Height: 4})

	assert.Equal(t, tui.Rect{X: 1, Y: 2, Width: 3, Height: 4}, probe.Bounds())
}
