package tui

// RenderContext carries the state threaded through a render pass: the
// active theme stack and the nearest ancestor clip provider, consulted by
// descendants so virtualized clipping works without allocating
// sub-surfaces.
type RenderContext struct {
	Themes *ThemeStack
	clips  []ClipProvider
}

// NewRenderContext starts a render pass with the given base theme.
func NewRenderContext(base Theme) *RenderContext {
	return &RenderContext{Themes: NewThemeStack(base)}
}

// Resolve looks up a theme token through the active theme stack.
func (ctx *RenderContext) Resolve(token ThemeToken) (Color, bool) {
	return ctx.Themes.Resolve(token)
}

// PushClip adds a clip provider, consulted by descendants until popped.
func (ctx *RenderContext) PushClip(c ClipProvider) { ctx.clips = append(ctx.clips, c) }

// PopClip removes the most recently pushed clip provider.
func (ctx *RenderContext) PopClip() {
	if len(ctx.clips) > 0 {
		ctx.clips = ctx.clips[:len(ctx.clips)-1]
	}
}

// NearestClip returns the innermost active clip provider, or nil if none
// is active.
func (ctx *RenderContext) NearestClip() ClipProvider {
	if len(ctx.clips) == 0 {
		return nil
	}
	return ctx.clips[len(ctx.clips)-1]
}

// RenderNode renders a node into surf by calling its Render method. It
// applies no clipping itself; nodes consult ctx.NearestClip.
func RenderNode(n Node, surf *Surface, ctx *RenderContext) {
	n.Render(surf, ctx)
}
