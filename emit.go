package tui

import (
	"fmt"
	"strconv"
	"strings"
)

// SGRState is the terminal's currently-applied style, tracked across
// Emit calls so consecutive frames don't re-emit redundant SGR tokens.
type SGRState struct {
	FG, BG OptionalColor
	Attrs  Attrs
}

// Emit converts a sorted ChangeList into a deterministic token stream,
// given the style the terminal is currently in. It returns
// the resulting SGRState so the caller can thread it into the next frame.
func Emit(changes ChangeList, prevSGR SGRState) ([]Token, SGRState) {
	var tokens []Token
	state := prevSGR

	cursorSet := false
	cursorRow, cursorCol := 0, 0

	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			tokens = append(tokens, TextToken{Text: text.String()})
			text.Reset()
		}
	}

	skipRow, skipCol := -1, -1

	for _, ch := range changes {
		if ch.Y == skipRow && ch.X == skipCol && ch.Cell.IsContinuation() {
			skipRow = -1
			continue
		}

		needCUP := !cursorSet || ch.Y != cursorRow || ch.X != cursorCol
		if needCUP {
			flush()
			tokens = append(tokens, CursorToken{Row: ch.Y + 1, Col: ch.X + 1})
		}

		if ch.Cell.FG != state.FG || ch.Cell.BG != state.BG || ch.Cell.Attrs != state.Attrs {
			flush()
			turnedOff := state.Attrs &^ ch.Cell.Attrs
			tokens = append(tokens, SGRToken{FG: ch.Cell.FG, BG: ch.Cell.BG, Attrs: ch.Cell.Attrs, Reset: turnedOff != 0})
			state.FG, state.BG, state.Attrs = ch.Cell.FG, ch.Cell.BG, ch.Cell.Attrs
		}

		text.WriteString(ch.Cell.Char)

		switch {
		case ch.Cell.DisplayWidth == 2:
			cursorRow, cursorCol = ch.Y, ch.X+2
			skipRow, skipCol = ch.Y, ch.X+1
		default:
			cursorRow, cursorCol = ch.Y, ch.X+1
		}
		cursorSet = true
	}
	flush()
	return tokens, state
}

// Serialize renders a token stream to raw ANSI bytes. The emitted
// sequence set is a fixed CSI/SGR subset chosen directly
// (absolute cursor placement, 24-bit SGR color, attribute codes) rather
// than anything terminfo-capability-negotiated — see DESIGN.md for why
// xo/terminfo was dropped.
func Serialize(tokens []Token) []byte {
	var b strings.Builder
	for _, t := range tokens {
		switch v := t.(type) {
		case TextToken:
			b.WriteString(v.Text)
		case CursorToken:
			fmt.Fprintf(&b, "\x1b[%d;%dH", v.Row, v.Col)
		case SGRToken:
			b.WriteString(sgrSequence(v))
		case ModeToken:
			b.WriteString(v.Sequence)
		}
	}
	return []byte(b.String())
}

// sgrSequence builds the escape sequence for an SGRToken: a leading reset
// when an attribute must be turned off, then the full resolved parameter
// list.
func sgrSequence(t SGRToken) string {
	var params []string
	if t.Reset {
		params = append(params, "0")
	}
	if t.Attrs.Has(AttrBold) {
		params = append(params, "1")
	}
	if t.Attrs.Has(AttrDim) {
		params = append(params, "2")
	}
	if t.Attrs.Has(AttrItalic) {
		params = append(params, "3")
	}
	if t.Attrs.Has(AttrUnderline) {
		params = append(params, "4")
	}
	if t.Attrs.Has(AttrBlink) {
		params = append(params, "5")
	}
	if t.Attrs.Has(AttrReverse) {
		params = append(params, "7")
	}
	if t.Attrs.Has(AttrStrikethrough) {
		params = append(params, "9")
	}
	if t.FG.Set {
		r, g, bl := t.FG.Color.RGB()
		params = append(params, "38", "2", strconv.Itoa(int(r)), strconv.Itoa(int(g)), strconv.Itoa(int(bl)))
	}
	if t.BG.Set {
		r, g, bl := t.BG.Color.RGB()
		params = append(params, "48", "2", strconv.Itoa(int(r)), strconv.Itoa(int(g)), strconv.Itoa(int(bl)))
	}
	if len(params) == 0 {
		return "\x1b[0m"
	}
	return "\x1b[" + strings.Join(params, ";") + "m"
}
