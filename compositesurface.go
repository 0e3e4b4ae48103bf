package tui

import lru "github.com/hashicorp/golang-lru/v2"

// LayerContext is passed to a computed layer's cell function. It exposes
// the point being resolved plus read access to the layers below the
// current one.
type LayerContext struct {
	X, Y int

	flatten *flattenPass
	layer   int
}

// GetBelow returns the fully composited result of every layer below the
// current one, at the same (x, y).
func (ctx LayerContext) GetBelow() Cell { return ctx.flatten.resolveBelow(ctx.layer, ctx.X, ctx.Y) }

// GetBelowAt is GetBelow at an arbitrary point.
func (ctx LayerContext) GetBelowAt(x, y int) Cell { return ctx.flatten.resolveBelow(ctx.layer, x, y) }

// GetAdjacent resolves a point on the SAME layer, offset by (dx, dy). This
// is how a computed layer may reference its own neighbors; cycles through
// this path are broken by the flatten pass's visited set.
func (ctx LayerContext) GetAdjacent(dx, dy int) Cell {
	return ctx.flatten.resolve(ctx.layer, ctx.X+dx, ctx.Y+dy)
}

// ComputedCellFunc is a pure function from a resolution context to a cell.
type ComputedCellFunc func(ctx LayerContext) Cell

// layer is one entry in a CompositeSurface's stack: either a static
// surface at an offset, or a computed layer of a fixed size.
type layer struct {
	static     *Surface
	dx, dy     int
	computed   ComputedCellFunc
	w, h       int
	isComputed bool
}

// CompositeSurface is an ordered stack of layers resolved on demand into a
// flat Surface. Layers are listed bottom-first; later layers
// paint over earlier ones.
type CompositeSurface struct {
	Width, Height int
	layers        []layer
}

// NewCompositeSurface creates an empty composite surface of the given size.
func NewCompositeSurface(width, height int) *CompositeSurface {
	return &CompositeSurface{Width: width, Height: height}
}

// PushStatic adds a static surface layer at offset (dx, dy).
func (c *CompositeSurface) PushStatic(s *Surface, dx, dy int) {
	c.layers = append(c.layers, layer{static: s, dx: dx, dy: dy})
}

// PushComputed adds a computed layer of size (w, h) at the origin, backed
// by a pure per-cell function.
func (c *CompositeSurface) PushComputed(w, h int, fn ComputedCellFunc) {
	c.layers = append(c.layers, layer{computed: fn, w: w, h: h, isComputed: true})
}

// flattenPass is the per-Flatten memoization and cycle-detection scope.
// Computed cells are memoized per (layer, x, y) within one flatten pass,
// with a visited-set to short-circuit cycles to an empty cell. The cache
// is an LRU bounded to the frame's cell budget so a pathological computed
// layer that allocates heavily per cell cannot grow memory unboundedly
// within one pass.
type flattenPass struct {
	surface *CompositeSurface
	cache   *lru.Cache[resolveKey, Cell]
	visited map[resolveKey]bool
}

type resolveKey struct {
	layer, x, y int
}

func newFlattenPass(s *CompositeSurface) *flattenPass {
	size := max(64, s.Width*s.Height*max(1, len(s.layers)))
	cache, _ := lru.New[resolveKey, Cell](size)
	return &flattenPass{surface: s, cache: cache, visited: make(map[resolveKey]bool)}
}

// resolve computes the cell at (x, y) as contributed by layer index i
// (i.e. i flattened with everything below it), memoized for this pass.
func (p *flattenPass) resolve(i, x, y int) Cell {
	if i < 0 {
		return blankCell
	}
	key := resolveKey{i, x, y}
	if c, ok := p.cache.Get(key); ok {
		return c
	}
	if p.visited[key] {
		// Cycle: resolve to an empty cell rather than recursing forever
		// Breaks cycles from a computed cell that reads its own layer.
		return Cell{}
	}
	p.visited[key] = true
	defer delete(p.visited, key)

	l := p.surface.layers[i]
	var result Cell
	if l.isComputed {
		if x < 0 || y < 0 || x >= l.w || y >= l.h {
			result = p.resolveBelow(i, x, y)
		} else {
			cell := l.computed(LayerContext{X: x, Y: y, flatten: p, layer: i})
			if cell.IsTransparent() {
				result = p.resolveBelow(i, x, y)
			} else {
				result = cell
			}
		}
	} else {
		sx, sy := x-l.dx, y-l.dy
		cell := l.static.At(sx, sy)
		if cell.IsTransparent() && (sx < 0 || sy < 0 || sx >= l.static.Width || sy >= l.static.Height || cell.Char == " ") {
			result = p.resolveBelow(i, x, y)
		} else {
			result = cell
		}
	}
	p.cache.Add(key, result)
	return result
}

// resolveBelow resolves everything strictly below layer index i.
func (p *flattenPass) resolveBelow(i, x, y int) Cell { return p.resolve(i-1, x, y) }

// Flatten resolves the entire layer stack into a single Surface. Each
// (layer, x, y) resolution is memoized once for the duration of this call.
func (c *CompositeSurface) Flatten() *Surface {
	out := NewSurface(c.Width, c.Height)
	if len(c.layers) == 0 {
		return out
	}
	pass := newFlattenPass(c)
	top := len(c.layers) - 1
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			out.Set(x, y, pass.resolve(top, x, y))
		}
	}
	return out
}
