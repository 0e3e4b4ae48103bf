package tui

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"
)

// AsciicastHeader is the first line of an asciicast v2 recording: a
// standalone JSON object describing the session before any frames follow.
type AsciicastHeader struct {
	Version   int               `json:"version"`
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	Timestamp int64             `json:"timestamp"`
	Env       map[string]string `json:"env,omitempty"`
}

// RecorderFilter is a WorkloadFilter that writes an asciicast v2 recording:
// the header line above, followed by one [elapsed_seconds, event_type,
// payload] array per line, where event_type is "o" (output), "i" (input),
// "r" (resize "WxH"), or "m" (marker). It observes the workload side of the
// pipeline only and never rewrites anything.
//
// Elapsed time handed to each On* call already comes from
// Pipeline.elapsed(), which is time.Since(start) and therefore
// non-decreasing on its own; lastSeconds still clamps defensively so a
// filter driven directly (outside a Pipeline, in a test) can't emit a
// frame that runs the recording backwards.
type RecorderFilter struct {
	BaseFilter

	mu          sync.Mutex
	w           *bufio.Writer
	env         map[string]string
	lastSeconds float64
}

// NewRecorderFilter creates a RecorderFilter writing to w. env, if non-nil,
// is copied verbatim into the header's env field.
func NewRecorderFilter(w io.Writer, env map[string]string) *RecorderFilter {
	return &RecorderFilter{w: bufio.NewWriter(w), env: env}
}

// OnSessionStart writes the asciicast header line.
func (r *RecorderFilter) OnSessionStart(width, height int, elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	header := AsciicastHeader{
		Version:   2,
		Width:     width,
		Height:    height,
		Timestamp: time.Now().Unix(),
		Env:       r.env,
	}
	line, err := json.Marshal(header)
	if err != nil {
		return
	}
	r.w.Write(line)
	r.w.WriteByte('\n')
}

// OnOutput writes an "o" frame carrying the ANSI bytes the serializer would
// send to the terminal for these tokens.
func (r *RecorderFilter) OnOutput(tokens []Token, elapsed time.Duration) {
	r.writeFrame(elapsed, "o", string(Serialize(tokens)))
}

// OnInput writes an "i" frame per decoded input token, rendered as the
// text a replayer would feed back into a real TTY.
func (r *RecorderFilter) OnInput(tokens []Token, elapsed time.Duration) {
	for _, tok := range tokens {
		if text := inputReplayText(tok); text != "" {
			r.writeFrame(elapsed, "i", text)
		}
	}
}

// OnResize writes an "r" frame with the new dimensions as "WxH".
func (r *RecorderFilter) OnResize(width, height int, elapsed time.Duration) {
	r.writeFrame(elapsed, "r", fmt.Sprintf("%dx%d", width, height))
}

// Mark writes an "m" marker frame at the given elapsed time. Markers aren't
// part of the WorkloadFilter contract; callers hold onto the concrete
// *RecorderFilter and call this directly to label points of interest.
func (r *RecorderFilter) Mark(label string, elapsed time.Duration) {
	r.writeFrame(elapsed, "m", label)
}

// Flush drains any buffered output to the underlying writer, the
// cooperative flush entry point a recorder must expose so a session can be
// read back mid-recording.
func (r *RecorderFilter) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.w.Flush()
}

func (r *RecorderFilter) writeFrame(elapsed time.Duration, kind, payload string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seconds := elapsed.Seconds()
	if seconds < r.lastSeconds {
		seconds = r.lastSeconds
	}
	r.lastSeconds = seconds
	line, err := json.Marshal([]any{seconds, kind, payload})
	if err != nil {
		return
	}
	r.w.Write(line)
	r.w.WriteByte('\n')
}

// inputReplayText renders an input token as text suitable for an asciicast
// "i" frame. Plain unmodified runes, decoded UTF-8 text, and raw CSI/OSC
// or malformed sequences round-trip verbatim. Other keys render as a
// bracketed key name, mouse reports as "<mouse x,y>", and focus changes
// as "<focus-in>"/"<focus-out>", since the original raw bytes for
// recognized key/mouse/focus sequences aren't retained past tokenization.
func inputReplayText(tok Token) string {
	switch v := tok.(type) {
	case InputTextToken:
		return v.Text
	case RawCSIToken:
		return v.Raw
	case RawOSCToken:
		return v.Raw
	case MalformedToken:
		return string(v.Raw)
	case KeyToken:
		if v.Event.Key == KeyRune && v.Event.Modifiers == 0 {
			return string(v.Event.Ch)
		}
		return "<" + v.Event.String() + ">"
	case MouseToken:
		return fmt.Sprintf("<mouse %d,%d>", v.Event.X, v.Event.Y)
	case FocusToken:
		if v.Event.Focused {
			return "<focus-in>"
		}
		return "<focus-out>"
	default:
		return ""
	}
}
