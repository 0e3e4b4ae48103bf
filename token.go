package tui

// Token is the unit the terminal I/O pipeline moves in both directions:
// the emitter produces output tokens (CursorToken/SGRToken/TextToken),
// the input tokenizer produces input tokens (KeyToken/MouseToken/
// FocusToken/RawCSIToken/RawOSCToken/MalformedToken). Filters on either side
// observe (and, on the presentation side, may rewrite) a []Token.
type Token interface {
	isToken()
}

// TextToken is a run of printable text sharing one SGR state.
type TextToken struct{ Text string }

func (TextToken) isToken() {}

// CursorToken is an absolute cursor placement, 1-indexed to match the
// wire format (CUP row;col H).
type CursorToken struct{ Row, Col int }

func (CursorToken) isToken() {}

// SGRToken carries the full resolved style to apply before the next text
// run. Emitted only when (fg,bg,attrs) differ from the prior run.
type SGRToken struct {
	FG, BG OptionalColor
	Attrs  Attrs
	Reset  bool // true if a bare reset (SGR 0) must precede the attribute set
}

func (SGRToken) isToken() {}

// ModeToken toggles a terminal mode (alt screen, cursor visibility, mouse
// reporting, kitty keyboard).
type ModeToken struct {
	Sequence string
}

func (ModeToken) isToken() {}

// KeyToken wraps a decoded key press.
type KeyToken struct{ Event KeyEvent }

func (KeyToken) isToken() {}

// MouseToken wraps a decoded mouse report.
type MouseToken struct{ Event MouseEvent }

func (MouseToken) isToken() {}

// ResizeToken wraps a decoded resize.
type ResizeToken struct{ Event ResizeEvent }

func (ResizeToken) isToken() {}

// FocusToken wraps a decoded focus-in/focus-out report.
type FocusToken struct{ Event FocusEvent }

func (FocusToken) isToken() {}

// InputTextToken is decoded printable UTF-8 text arriving outside of a
// recognized key/CSI/OSC sequence.
type InputTextToken struct{ Text string }

func (InputTextToken) isToken() {}

// RawCSIToken/RawOSCToken surface an escape sequence the tokenizer
// recognized structurally but didn't map to a higher-level event — kept so
// filters/recorders can still observe and replay it verbatim.
type RawCSIToken struct{ Raw string }

func (RawCSIToken) isToken() {}

type RawOSCToken struct{ Raw string }

func (RawOSCToken) isToken() {}

// MalformedToken replaces a sequence the tokenizer could not parse. The
// tokenizer resumes decoding right after the bytes it carries.
type MalformedToken struct{ Raw []byte }

func (MalformedToken) isToken() {}
