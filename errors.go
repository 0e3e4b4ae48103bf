package tui

import (
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/pkg/errors"
)

// Phase names where in the frame pipeline an error or panic originated,
// used to route the right rescue behavior and to label the error panel.
type Phase int

const (
	PhaseBuild Phase = iota
	PhaseReconcile
	PhaseRender
	PhaseInput
)

func (p Phase) String() string {
	switch p {
	case PhaseBuild:
		return "build"
	case PhaseReconcile:
		return "reconcile"
	case PhaseRender:
		return "render"
	case PhaseInput:
		return "input"
	default:
		return "unknown"
	}
}

// ConstructionError wraps a failure building or configuring a widget or
// node (bad dimension, nil required child, and the like).
type ConstructionError struct{ cause error }

func (e *ConstructionError) Error() string { return "construction: " + e.cause.Error() }
func (e *ConstructionError) Unwrap() error { return e.cause }

// IOError wraps a failure in the terminal I/O pipeline (raw-mode
// enter/exit, socket read/write, adapter setup).
type IOError struct{ cause error }

func (e *IOError) Error() string { return "terminal io: " + e.cause.Error() }
func (e *IOError) Unwrap() error { return e.cause }

// ReconcileError wraps a failure during widget-to-node reconciliation.
type ReconcileError struct{ cause error }

func (e *ReconcileError) Error() string { return "reconcile: " + e.cause.Error() }
func (e *ReconcileError) Unwrap() error { return e.cause }

// LayoutError wraps a failure during measure/arrange, most commonly an
// unresolved unbounded constraint reaching a node that requires a finite
// one (a text block wrapping under an unbounded width, for instance).
type LayoutError struct{ cause error }

func (e *LayoutError) Error() string { return "layout: " + e.cause.Error() }
func (e *LayoutError) Unwrap() error { return e.cause }

// TokenizerError wraps an unrecoverable tokenizer failure. Malformed
// sequences alone don't raise this — they produce a MalformedToken and the
// tokenizer resynchronizes; this is reserved for conditions the tokenizer
// cannot recover from at all (buffer exhaustion guards tripping).
type TokenizerError struct{ cause error }

func (e *TokenizerError) Error() string { return "tokenizer: " + e.cause.Error() }
func (e *TokenizerError) Unwrap() error { return e.cause }

// HandlerError wraps a panic or error raised from inside a binding action
// or input handler.
type HandlerError struct{ cause error }

func (e *HandlerError) Error() string { return "handler: " + e.cause.Error() }
func (e *HandlerError) Unwrap() error { return e.cause }

func wrapErrf(cause error, format string, args ...any) error {
	return errors.Wrapf(cause, format, args...)
}

// Crash is a captured panic or fatal error: which phase it happened in,
// the recovered value, and a stack trace taken at the point of recovery.
type Crash struct {
	Phase      Phase
	Message    string
	StackTrace string
}

var (
	crashStoreMu sync.Mutex
	crashStore   []Crash
)

// recordCrash stores a crash for the rescue panel to render on the next
// frame instead of tearing down the whole app loop.
func recordCrash(c Crash) {
	crashStoreMu.Lock()
	defer crashStoreMu.Unlock()
	crashStore = append(crashStore, c)
}

func drainCrashes() []Crash {
	crashStoreMu.Lock()
	defer crashStoreMu.Unlock()
	out := crashStore
	crashStore = nil
	return out
}

// rescue recovers a panic from phase, recording it as a Crash rather than
// letting it unwind past the app loop. Call via defer at the top of each
// pipeline phase.
func rescue(phase Phase) {
	if r := recover(); r != nil {
		recordCrash(Crash{
			Phase:      phase,
			Message:    fmt.Sprint(r),
			StackTrace: string(debug.Stack()),
		})
	}
}

// RescueAction is one action offered on the error panel (Retry re-enters
// the phase that crashed; Abort ends the app loop).
type RescueAction int

const (
	RescueRetry RescueAction = iota
	RescueAbort
)

// errorPanelNode renders the most recent Crash as a scrollable stack/details
// pane with Retry/Abort bindings, and participates in the focus ring like
// any other focusable node so the actions are keyboard-reachable.
type errorPanelNode struct {
	NodeBase
	crash        Crash
	scrollOffset int
	onRetry      func()
	onAbort      func()
}

func newErrorPanelNode(crash Crash, onRetry, onAbort func()) *errorPanelNode {
	n := &errorPanelNode{crash: crash, onRetry: onRetry, onAbort: onAbort}
	n.Focusable = true
	return n
}

func (n *errorPanelNode) Children() []Node { return nil }

func (n *errorPanelNode) Measure(c Constraints) Size {
	return c.ConstrainSize(Size{Width: c.MaxWidth, Height: c.MaxHeight})
}

func (n *errorPanelNode) Arrange(r Rect) { n.SetBounds(r) }

func (n *errorPanelNode) Render(surf *Surface, ctx *RenderContext) {
	b := n.Bounds()
	title := fmt.Sprintf("error in %s: %s", n.crash.Phase, n.crash.Message)
	surf.WriteText(b.X, b.Y, title, OptionalColor{}, OptionalColor{}, 0)
	lines := splitLines(n.crash.StackTrace)
	for i := 1; i < b.Height-1 && n.scrollOffset+i-1 < len(lines); i++ {
		surf.WriteText(b.X, b.Y+i, lines[n.scrollOffset+i-1], OptionalColor{}, OptionalColor{}, 0)
	}
	footer := "[enter] retry   [esc] abort"
	if b.Height > 0 {
		surf.WriteText(b.X, b.Y+b.Height-1, footer, OptionalColor{}, OptionalColor{}, 0)
	}
}

func (n *errorPanelNode) HandleInput(ev KeyEvent) bool {
	switch ev.Key {
	case KeyEnter:
		if n.onRetry != nil {
			n.onRetry()
		}
		return true
	case KeyEscape:
		if n.onAbort != nil {
			n.onAbort()
		}
		return true
	case KeyUp:
		if n.scrollOffset > 0 {
			n.scrollOffset--
		}
		return true
	case KeyDown:
		n.scrollOffset++
		return true
	}
	return false
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
