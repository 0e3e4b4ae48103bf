package tui

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// BuildFunc produces the application's widget tree fresh for the next
// frame. It is called once per frame; the result is reconciled against
// the persistent node tree from the previous frame.
type BuildFunc func() Widget

// App drives the frame loop described by the terminal I/O pipeline: drain
// input, route it, rebuild and reconcile the widget tree when dirty,
// measure/arrange/render, diff against the previous surface, and emit the
// resulting tokens through the pipeline.
type App struct {
	Build           BuildFunc
	Pipeline        *Pipeline
	Theme           Theme
	EnableCtrlCExit bool

	root    Node
	focus   FocusRing
	router  Router
	surface *Surface
	sgr     SGRState
	width   int
	height  int
	dirty   bool
	cancel  context.CancelFunc

	crashed *Crash
	log     *logrus.Entry
}

// NewApp builds an App around build and pipeline. If theme is nil, the
// framework's default theme is used.
func NewApp(build BuildFunc, pipeline *Pipeline, theme Theme) *App {
	if theme == nil {
		theme = DefaultTheme()
	}
	a := &App{Build: build, Pipeline: pipeline, Theme: theme, EnableCtrlCExit: true}
	a.log = logrus.WithField("component", "app")
	a.router.Focus = &a.focus
	a.router.EnableCtrlCExit = a.EnableCtrlCExit
	a.router.OnExit = a.requestExit
	return a
}

// Run blocks until ctx is canceled, the app exits via Ctrl+C, or the
// presentation adapter closes a channel, draining input from the pipeline's presentation
// adapter and driving one frame per batch of events (plus an initial
// frame before any input arrives).
func (a *App) Run(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	a.cancel = cancel
	defer cancel()

	presentation := a.Pipeline.Presentation
	if presentation == nil {
		presentation = NewHeadlessAdapter(80, 24)
		a.Pipeline.Presentation = presentation
	}
	if err := presentation.Start(runCtx); err != nil {
		return err
	}
	defer presentation.Shutdown()

	a.width, a.height = presentation.Size()
	a.Pipeline.Begin(a.width, a.height)
	defer a.Pipeline.End()

	a.dirty = true
	a.renderFrame()

	for {
		select {
		case <-runCtx.Done():
			return nil
		case tok, ok := <-presentation.Input():
			if !ok {
				return nil
			}
			batch := []Token{tok}
			batch = append(batch, a.drainAvailable(presentation.Input())...)
			a.Pipeline.ObserveInput(batch)
			for _, t := range batch {
				a.handleInputToken(t, time.Now())
			}
			a.renderFrame()
		case resize, ok := <-presentation.Resize():
			if !ok {
				return nil
			}
			a.width, a.height = resize.Width, resize.Height
			a.Pipeline.ObserveResize(a.width, a.height)
			a.dirty = true
			a.renderFrame()
		}
	}
}

func (a *App) drainAvailable(ch <-chan Token) []Token {
	var extra []Token
	for {
		select {
		case t := <-ch:
			extra = append(extra, t)
		default:
			return extra
		}
	}
}

func (a *App) requestExit() {
	if a.cancel != nil {
		a.cancel()
	}
}

func (a *App) handleInputToken(tok Token, now time.Time) {
	defer rescue(PhaseInput)
	switch v := tok.(type) {
	case KeyToken:
		if a.crashed != nil {
			a.handleCrashKey(v.Event)
			return
		}
		a.router.RouteKey(a.root, v.Event, now)
	case MouseToken:
		if a.crashed == nil {
			a.router.RouteMouse(a.root, v.Event)
		}
	case ResizeToken:
		a.width, a.height = v.Event.Width, v.Event.Height
	}
	a.dirty = true
}

func (a *App) handleCrashKey(ev KeyEvent) {
	switch ev.Key {
	case KeyEnter:
		a.crashed = nil
	case KeyEscape:
		a.requestExit()
	}
}

// renderFrame runs one full pass of the pipeline: rebuild/reconcile (if
// dirty), measure/arrange, focus rebuild, render, diff, and emit. It
// recovers panics from any phase into the error panel rather than letting
// them unwind the frame loop.
func (a *App) renderFrame() {
	if !a.dirty {
		return
	}
	a.dirty = false

	if a.crashed == nil {
		a.reconcileFrame()
		a.layoutFrame()
	}
	if crashes := drainCrashes(); len(crashes) > 0 {
		a.crashed = &crashes[0]
	}
	if a.crashed != nil {
		a.root = newErrorPanelNode(*a.crashed, func() { a.crashed = nil }, a.requestExit)
		a.root.Measure(TightDims(a.width, a.height))
		a.root.Arrange(Rect{Width: a.width, Height: a.height})
	}
	if a.root == nil {
		return
	}

	a.focus.Rebuild(a.root)

	curr := a.renderSurface()
	if crashes := drainCrashes(); len(crashes) > 0 && a.crashed == nil {
		a.crashed = &crashes[0]
		a.root = newErrorPanelNode(*a.crashed, func() { a.crashed = nil }, a.requestExit)
		a.root.Measure(TightDims(a.width, a.height))
		a.root.Arrange(Rect{Width: a.width, Height: a.height})
		curr = a.renderSurface()
	}
	if a.surface == nil {
		a.surface = NewSurface(a.width, a.height)
	}
	changes := Diff(a.surface, curr)
	tokens, sgr := Emit(changes, a.sgr)
	a.sgr = sgr
	a.surface = curr

	if len(tokens) > 0 {
		if err := a.Pipeline.Emit(tokens); err != nil {
			a.log.WithError(err).Warn("emit failed")
		}
	}
	a.Pipeline.FrameComplete()
}

func (a *App) reconcileFrame() {
	defer rescue(PhaseReconcile)
	widget := a.Build()
	a.root = Reconcile(widget, a.root)
}

func (a *App) layoutFrame() {
	defer rescue(PhaseRender)
	c := TightDims(a.width, a.height)
	a.root.Measure(c)
	a.root.Arrange(Rect{Width: a.width, Height: a.height})
}

func (a *App) renderSurface() *Surface {
	defer rescue(PhaseRender)
	surf := NewSurface(a.width, a.height)
	ctx := NewRenderContext(a.Theme)
	a.root.Render(surf, ctx)
	return surf
}
