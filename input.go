package tui

import "fmt"

// Modifiers is a bitset of held modifier keys.
type Modifiers uint8

const (
	ModCtrl Modifiers = 1 << iota
	ModShift
	ModAlt
)

// Key identifies a non-printable or named key. Printable keys are carried
// in KeyEvent.Ch instead, with Key set to KeyRune.
type Key int

const (
	KeyRune Key = iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyEscape
	KeySpace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDelete
	KeyInsert
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

var keyNames = map[Key]string{
	KeyEnter: "enter", KeyTab: "tab", KeyBackspace: "backspace",
	KeyEscape: "escape", KeySpace: "space", KeyUp: "up", KeyDown: "down",
	KeyLeft: "left", KeyRight: "right", KeyHome: "home", KeyEnd: "end",
	KeyPageUp: "pageup", KeyPageDown: "pagedown", KeyDelete: "delete",
	KeyInsert: "insert", KeyF1: "f1", KeyF2: "f2", KeyF3: "f3", KeyF4: "f4",
	KeyF5: "f5", KeyF6: "f6", KeyF7: "f7", KeyF8: "f8", KeyF9: "f9",
	KeyF10: "f10", KeyF11: "f11", KeyF12: "f12",
}

// KeyEvent is a single key press.
type KeyEvent struct {
	Key       Key
	Ch        rune
	Modifiers Modifiers
}

// String renders a canonical "ctrl+shift+x" style name, used both for
// debugging and as the basis for chord-step matching.
func (k KeyEvent) String() string {
	var s string
	if k.Key == KeyRune {
		s = string(k.Ch)
	} else {
		s = keyNames[k.Key]
		if s == "" {
			s = fmt.Sprintf("key(%d)", k.Key)
		}
	}
	prefix := ""
	if k.Modifiers&ModCtrl != 0 {
		prefix += "ctrl+"
	}
	if k.Modifiers&ModAlt != 0 {
		prefix += "alt+"
	}
	if k.Modifiers&ModShift != 0 {
		prefix += "shift+"
	}
	return prefix + s
}

// MouseButton identifies which mouse button an event pertains to.
type MouseButton int

const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonMiddle
	MouseButtonRight
	MouseWheelUp
	MouseWheelDown
)

// MouseAction is the phase of a mouse event.
type MouseAction int

const (
	MouseDown MouseAction = iota
	MouseUp
	MouseMove
)

// MouseEvent is a single mouse report. ClickCount is set by
// the tokenizer using a double/multi-click window.
type MouseEvent struct {
	Button     MouseButton
	Action     MouseAction
	X, Y       int
	Modifiers  Modifiers
	ClickCount int
}

// ResizeEvent reports a terminal resize.
type ResizeEvent struct {
	Width, Height int
}

// FocusEvent reports a terminal focus-in/focus-out report.
type FocusEvent struct {
	Focused bool
}
