package widgets

import (
	"reflect"

	tui "github.com/brackenfield/tuicore"
	"github.com/brackenfield/tuicore/widthclass"
)

// ButtonVariant selects which theme tokens a Button resolves its colors
// from.
type ButtonVariant int

const (
	ButtonDefault ButtonVariant = iota
	ButtonPrimary
	ButtonAccent
	ButtonSuccess
	ButtonError
	ButtonWarning
	ButtonInfo
)

func variantToken(v ButtonVariant) tui.ThemeToken {
	switch v {
	case ButtonPrimary:
		return tui.TokenPrimary
	case ButtonAccent:
		return tui.TokenAccent
	case ButtonSuccess:
		return tui.TokenSuccess
	case ButtonError:
		return tui.TokenError
	case ButtonWarning:
		return tui.TokenWarning
	case ButtonInfo:
		return tui.TokenInfo
	default:
		return tui.TokenSurface
	}
}

// Button is a focusable widget rendered as "[label]" and pressed with
// Enter or Space when focused.
type Button struct {
	tui.BaseWidget
	Label        string
	Variant      ButtonVariant
	OnPress      func()
	DisableFocus bool
}

func (btn *Button) NodeType() reflect.Type { return tui.NodeTypeOf[*ButtonNode]() }

func (btn *Button) Reconcile(existing tui.Node) tui.Node {
	var n *ButtonNode
	if existing != nil {
		n = existing.(*ButtonNode)
	} else {
		n = &ButtonNode{}
	}
	n.Focusable = !btn.DisableFocus
	n.label = btn.Label
	n.variant = btn.Variant
	n.onPress = btn.OnPress
	return n
}

// ButtonNode is the persistent node a Button widget reconciles into.
type ButtonNode struct {
	tui.NodeBase
	label   string
	variant ButtonVariant
	onPress func()
}

func (n *ButtonNode) Children() []tui.Node { return nil }

func (n *ButtonNode) displayText() string { return "[" + n.label + "]" }

func (n *ButtonNode) Measure(c tui.Constraints) tui.Size {
	w := widthclass.String(n.displayText())
	return c.ConstrainSize(tui.Size{Width: w, Height: 1})
}

func (n *ButtonNode) Arrange(r tui.Rect) { n.SetBounds(r) }

func (n *ButtonNode) Render(surf *tui.Surface, ctx *tui.RenderContext) {
	b := n.Bounds()
	token := tui.TokenText
	bgToken := tui.TokenSurface
	if n.Focused {
		token = tui.TokenTextOnPrimary
		bgToken = variantToken(n.variant)
	}
	fg, _ := ctx.Resolve(token)
	bg, _ := ctx.Resolve(bgToken)
	surf.WriteText(b.X, b.Y, n.displayText(), tui.Some(fg), tui.Some(bg), 0)
}

func (n *ButtonNode) press() {
	if n.onPress != nil {
		n.onPress()
	}
}

// HandleInput presses the button on Enter or Space.
func (n *ButtonNode) HandleInput(ev tui.KeyEvent) bool {
	switch {
	case ev.Key == tui.KeyEnter:
		n.press()
		return true
	case ev.Key == tui.KeySpace:
		n.press()
		return true
	case ev.Key == tui.KeyRune && ev.Ch == ' ':
		n.press()
		return true
	}
	return false
}
