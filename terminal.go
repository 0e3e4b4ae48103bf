package tui

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/term"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// WorkloadFilter observes the output and input token streams without
// altering them. Workload filters run in headless mode too, which is what
// makes recording and programmatic snapshotting possible without a real
// TTY attached.
type WorkloadFilter interface {
	OnSessionStart(w, h int, elapsed time.Duration)
	OnOutput(tokens []Token, elapsed time.Duration)
	OnFrameComplete(elapsed time.Duration)
	OnInput(tokens []Token, elapsed time.Duration)
	OnResize(w, h int, elapsed time.Duration)
	OnSessionEnd(elapsed time.Duration)
}

// PresentationFilter sits between the renderer and the presentation
// adapter and may rewrite the output token stream before bytes leave the
// process.
type PresentationFilter interface {
	OnOutput(tokens []Token, elapsed time.Duration) []Token
}

// BaseFilter is embedded by filters that only care about a subset of
// WorkloadFilter's events, so they don't have to stub out the rest.
type BaseFilter struct{}

func (BaseFilter) OnSessionStart(w, h int, elapsed time.Duration) {}
func (BaseFilter) OnOutput(tokens []Token, elapsed time.Duration) {}
func (BaseFilter) OnFrameComplete(elapsed time.Duration)          {}
func (BaseFilter) OnInput(tokens []Token, elapsed time.Duration)  {}
func (BaseFilter) OnResize(w, h int, elapsed time.Duration)       {}
func (BaseFilter) OnSessionEnd(elapsed time.Duration)             {}

// PresentationAdapter is the TTY side of the pipeline: it serializes
// output tokens to the real terminal and produces tokenized input. Absent
// in headless mode, in which case workload filters still receive every
// event, enabling programmatic snapshots without a TTY.
type PresentationAdapter interface {
	// Start puts the terminal into the modes the framework needs (raw
	// input, alternate screen, mouse reporting) and begins the reader
	// goroutine that feeds Input.
	Start(ctx context.Context) error
	// Write serializes and sends tokens to the terminal.
	Write(tokens []Token) error
	// Input is the channel of decoded input tokens.
	Input() <-chan Token
	// Resize is the channel of resize notifications (SIGWINCH-driven).
	Resize() <-chan ResizeEvent
	// Size returns the terminal's current dimensions.
	Size() (w, h int)
	// Shutdown restores the terminal to its original state. Safe to call
	// more than once.
	Shutdown() error
}

// TTYAdapter is the PresentationAdapter backed by the real stdin/stdout
// TTY. Raw-mode, alternate-screen, and mouse-reporting are scoped
// acquisitions: Start pairs with Shutdown, which is guaranteed safe to
// call on every exit path including from a recovered panic.
type TTYAdapter struct {
	in, out *os.File

	origInState  *term.State
	origOutState *term.State
	rawState     *term.State

	width, height int

	inputCh  chan Token
	resizeCh chan ResizeEvent

	tokenizer *Tokenizer

	group  *errgroup.Group
	cancel context.CancelFunc

	sgrState SGRState
}

// NewTTYAdapter builds a TTYAdapter over the given files, typically
// os.Stdin and os.Stdout.
func NewTTYAdapter(in, out *os.File) *TTYAdapter {
	return &TTYAdapter{
		in:        in,
		out:       out,
		tokenizer: NewTokenizer(),
		inputCh:   make(chan Token, 256),
		resizeCh:  make(chan ResizeEvent, 8),
	}
}

var enableSequences = []string{
	ansi.SetModeAltScreenSaveCursor,
	ansi.ResetModeTextCursorEnable,
	ansi.SetModeMouseNormal,
	ansi.SetModeMouseButtonEvent,
	ansi.SetModeMouseAnyEvent,
	ansi.SetModeMouseExtSgr,
}

var disableSequences = []string{
	ansi.ResetModeMouseExtSgr,
	ansi.ResetModeMouseAnyEvent,
	ansi.ResetModeMouseButtonEvent,
	ansi.ResetModeMouseNormal,
	ansi.SetModeTextCursorEnable,
	ansi.ResetModeAltScreenSaveCursor,
}

// Start snapshots the original TTY state, enters raw mode, and writes the
// sequences that put the terminal into alternate-screen, cursor-hidden,
// mouse-reporting mode. It then launches the reader goroutine.
func (t *TTYAdapter) Start(ctx context.Context) error {
	if term.IsTerminal(t.in.Fd()) {
		state, err := term.GetState(t.in.Fd())
		if err != nil {
			return &IOError{cause: err}
		}
		t.origInState = state
		raw, err := term.MakeRaw(t.in.Fd())
		if err != nil {
			return &IOError{cause: err}
		}
		t.rawState = raw
	}
	if term.IsTerminal(t.out.Fd()) {
		if state, err := term.GetState(t.out.Fd()); err == nil {
			t.origOutState = state
		}
	}

	w, h, err := term.GetSize(t.out.Fd())
	if err != nil {
		w, h = 80, 24
	}
	t.width, t.height = w, h

	for _, seq := range enableSequences {
		if _, err := t.out.WriteString(seq); err != nil {
			return &IOError{cause: err}
		}
	}

	runCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	group, gctx := errgroup.WithContext(runCtx)
	t.group = group
	group.Go(func() error { return t.readLoop(gctx) })
	return nil
}

// readLoop is the dedicated I/O worker that reads bytes off the TTY,
// tokenizes them, and pushes tokens onto the input channel. It never
// touches the node tree directly.
func (t *TTYAdapter) readLoop(ctx context.Context) error {
	buf := make([]byte, 4096)
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		n, err := t.in.Read(buf)
		if n > 0 {
			for _, tok := range t.tokenizer.Feed(buf[:n], time.Now()) {
				if resize, ok := tok.(ResizeToken); ok {
					select {
					case t.resizeCh <- resize.Event:
					case <-ctx.Done():
						return nil
					}
					continue
				}
				select {
				case t.inputCh <- tok:
				case <-ctx.Done():
					return nil
				}
			}
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return &IOError{cause: err}
		}
	}
}

// Write serializes tokens to ANSI bytes and writes them to stdout,
// threading the running SGR state across calls.
func (t *TTYAdapter) Write(tokens []Token) error {
	bytes := Serialize(tokens)
	t.sgrState = t.trackSGR(tokens)
	if _, err := t.out.Write(bytes); err != nil {
		return &IOError{cause: err}
	}
	return nil
}

func (t *TTYAdapter) trackSGR(tokens []Token) SGRState {
	state := t.sgrState
	for _, tok := range tokens {
		if sgr, ok := tok.(SGRToken); ok {
			state = SGRState{FG: sgr.FG, BG: sgr.BG, Attrs: sgr.Attrs}
		}
	}
	return state
}

func (t *TTYAdapter) Input() <-chan Token          { return t.inputCh }
func (t *TTYAdapter) Resize() <-chan ResizeEvent    { return t.resizeCh }
func (t *TTYAdapter) Size() (int, int)              { return t.width, t.height }

// Shutdown restores the terminal to its pre-Start state. Idempotent.
func (t *TTYAdapter) Shutdown() error {
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	for _, seq := range disableSequences {
		_, _ = t.out.WriteString(seq)
	}
	if t.rawState != nil {
		_ = term.Restore(t.in.Fd(), t.origInState)
		t.rawState = nil
	}
	if t.origOutState != nil {
		_ = term.Restore(t.out.Fd(), t.origOutState)
	}
	if t.group != nil {
		_ = t.group.Wait()
		t.group = nil
	}
	return nil
}

// HeadlessAdapter is a PresentationAdapter stand-in that never touches a
// real TTY: Write is dropped, and Input/Resize produce only what
// InjectInput/InjectResize feed them. Used
// when no presentation adapter is configured so workload filters still
// receive every event off a programmatically-driven session.
type HeadlessAdapter struct {
	width, height int
	inputCh       chan Token
	resizeCh      chan ResizeEvent
}

// NewHeadlessAdapter creates a no-op presentation adapter of the given
// size, for headless rendering and snapshot testing.
func NewHeadlessAdapter(w, h int) *HeadlessAdapter {
	return &HeadlessAdapter{width: w, height: h, inputCh: make(chan Token), resizeCh: make(chan ResizeEvent)}
}

func (h *HeadlessAdapter) Start(ctx context.Context) error      { return nil }
func (h *HeadlessAdapter) Write(tokens []Token) error           { return nil }
func (h *HeadlessAdapter) Input() <-chan Token                  { return h.inputCh }
func (h *HeadlessAdapter) Resize() <-chan ResizeEvent           { return h.resizeCh }
func (h *HeadlessAdapter) Size() (int, int)                     { return h.width, h.height }
func (h *HeadlessAdapter) Shutdown() error                      { return nil }

// InjectResize lets a headless driver simulate a terminal resize.
func (h *HeadlessAdapter) InjectResize(w, hh int) {
	h.width, h.height = w, hh
	h.resizeCh <- ResizeEvent{Width: w, Height: hh}
}

// InjectInput lets a headless driver simulate input tokens arriving from
// the TTY, used by tests driving the app loop without a real terminal.
func (h *HeadlessAdapter) InjectInput(toks ...Token) {
	for _, t := range toks {
		h.inputCh <- t
	}
}

// WorkloadAdapter is the application side of the pipeline: it exposes an
// input-event channel. It receives no output tokens.
type WorkloadAdapter interface {
	Events() <-chan Token
}

// ChannelWorkloadAdapter is a WorkloadAdapter that forwards whatever
// arrives on the token channel it wraps. App.Run does not use it; it reads
// the presentation adapter's Input channel directly.
type ChannelWorkloadAdapter struct {
	events <-chan Token
}

// NewChannelWorkloadAdapter wraps an input token channel as a WorkloadAdapter.
func NewChannelWorkloadAdapter(events <-chan Token) *ChannelWorkloadAdapter {
	return &ChannelWorkloadAdapter{events: events}
}

func (c *ChannelWorkloadAdapter) Events() <-chan Token { return c.events }

// Pipeline wires an optional presentation adapter together with ordered
// workload and presentation filters. Output flows renderer -> workload
// filters observe -> presentation filters rewrite -> presentation adapter
// serializes.
type Pipeline struct {
	Presentation PresentationAdapter // nil = headless
	Workload     []WorkloadFilter
	Filters      []PresentationFilter

	start time.Time
	log   *logrus.Entry
}

// NewPipeline creates a Pipeline. If presentation is nil the pipeline runs
// headless: filters still see every event, but no bytes are written
// anywhere.
func NewPipeline(presentation PresentationAdapter) *Pipeline {
	return &Pipeline{Presentation: presentation, log: logrus.WithField("component", "terminal-pipeline")}
}

// Begin marks session start and fans the event out to every workload filter.
func (p *Pipeline) Begin(w, h int) {
	p.start = time.Now()
	for _, f := range p.Workload {
		f.OnSessionStart(w, h, 0)
	}
}

func (p *Pipeline) elapsed() time.Duration { return time.Since(p.start) }

// Emit runs the output side of the pipeline: workload filters observe the
// tokens, presentation filters may rewrite them, then (if a presentation
// adapter is attached) the result is serialized to the TTY.
func (p *Pipeline) Emit(tokens []Token) error {
	elapsed := p.elapsed()
	for _, f := range p.Workload {
		f.OnOutput(tokens, elapsed)
	}
	out := tokens
	for _, f := range p.Filters {
		out = f.OnOutput(out, elapsed)
	}
	if p.Presentation != nil {
		if err := p.Presentation.Write(out); err != nil {
			p.log.WithError(err).Warn("presentation adapter write failed")
			return err
		}
	}
	return nil
}

// FrameComplete notifies workload filters that the current frame's bytes
// have been fully written.
func (p *Pipeline) FrameComplete() {
	elapsed := p.elapsed()
	for _, f := range p.Workload {
		f.OnFrameComplete(elapsed)
	}
}

// ObserveInput notifies workload filters of decoded input tokens, called
// by the app loop right after draining them off the presentation adapter.
func (p *Pipeline) ObserveInput(tokens []Token) {
	elapsed := p.elapsed()
	for _, f := range p.Workload {
		f.OnInput(tokens, elapsed)
	}
}

// ObserveResize notifies workload filters of a resize.
func (p *Pipeline) ObserveResize(w, h int) {
	elapsed := p.elapsed()
	for _, f := range p.Workload {
		f.OnResize(w, h, elapsed)
	}
}

// End notifies workload filters that the session is over.
func (p *Pipeline) End() {
	elapsed := p.elapsed()
	for _, f := range p.Workload {
		f.OnSessionEnd(elapsed)
	}
}
