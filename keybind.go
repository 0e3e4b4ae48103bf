package tui

import "time"

// ChordStep matches one key event by its key and an equality mask over
// modifiers: a binding requiring no modifiers does not match the same key
// held with Ctrl.
type ChordStep struct {
	Key       Key
	Ch        rune
	Modifiers Modifiers
}

func (s ChordStep) matches(ev KeyEvent) bool {
	if s.Modifiers != ev.Modifiers {
		return false
	}
	if s.Key == KeyRune {
		return ev.Key == KeyRune && ev.Ch == s.Ch
	}
	return ev.Key == s.Key
}

// KeyBinding is a non-empty sequence of chord steps with an action.
// A single-step binding fires immediately; a multi-step one requires the
// router to hold a pending prefix across calls.
type KeyBinding struct {
	Name   string
	Steps  []ChordStep
	Action func()
}

// MouseBinding fires when button, action, and modifiers equal the event's
// and the event's click count is at least RequiredClicks. RequiredClicks=0
// behaves like 1: any count matches.
type MouseBinding struct {
	Button         MouseButton
	Action         MouseAction
	Modifiers      Modifiers
	RequiredClicks int
	Handler        func(ev MouseEvent)
}

// BindingSet holds the key and mouse bindings attached to one node (or,
// for the root set, the application).
type BindingSet struct {
	keyBindings   []KeyBinding
	mouseBindings []MouseBinding
}

// OnKeys registers a chord sequence binding.
func (b *BindingSet) OnKeys(name string, action func(), steps ...ChordStep) {
	b.keyBindings = append(b.keyBindings, KeyBinding{Name: name, Steps: steps, Action: action})
}

// OnKey registers a single-step binding.
func (b *BindingSet) OnKey(name string, key Key, mods Modifiers, action func()) {
	b.OnKeys(name, action, ChordStep{Key: key, Modifiers: mods})
}

// OnRune registers a single-step binding matched by rune rather than a
// named Key.
func (b *BindingSet) OnRune(name string, ch rune, mods Modifiers, action func()) {
	b.OnKeys(name, action, ChordStep{Key: KeyRune, Ch: ch, Modifiers: mods})
}

// OnMouse registers a mouse binding.
func (b *BindingSet) OnMouse(button MouseButton, action MouseAction, mods Modifiers, requiredClicks int, handler func(ev MouseEvent)) {
	b.mouseBindings = append(b.mouseBindings, MouseBinding{
		Button: button, Action: action, Modifiers: mods,
		RequiredClicks: requiredClicks, Handler: handler,
	})
}

func (b *MouseBinding) matches(ev MouseEvent) bool {
	if b.Button != ev.Button || b.Action != ev.Action || b.Modifiers != ev.Modifiers {
		return false
	}
	required := b.RequiredClicks
	if required == 0 {
		required = 1
	}
	return ev.ClickCount >= required
}

// DefaultChordTimeout is how long a pending multi-step chord prefix is
// held before it is cleared.
const DefaultChordTimeout = time.Second

// chordState is the per-router pending-prefix state machine described for
// binding matching: a partially matched multi-step binding waits here
// until the next key event or its deadline, whichever comes first.
type chordState struct {
	pending  []KeyEvent
	deadline time.Time
}

func (c *chordState) clear() { c.pending = nil }

func (c *chordState) expired(now time.Time) bool {
	return len(c.pending) > 0 && now.After(c.deadline)
}

// evaluate runs one key event against bindings given the chord state c,
// mutating c as needed. It returns the action to run (nil if no binding
// fired) and whether the event was consumed by extending a pending prefix.
func evaluate(bindings []KeyBinding, ev KeyEvent, c *chordState, now time.Time) (action func(), consumed bool) {
	if c.expired(now) {
		c.clear()
	}
	depth := len(c.pending)

	var candidates []KeyBinding
	for _, kb := range bindings {
		if depth >= len(kb.Steps) {
			continue
		}
		if !kb.Steps[depth].matches(ev) {
			continue
		}
		if depth > 0 {
			mismatch := false
			for i := 0; i < depth; i++ {
				if !kb.Steps[i].matches(c.pending[i]) {
					mismatch = true
					break
				}
			}
			if mismatch {
				continue
			}
		}
		candidates = append(candidates, kb)
	}

	if len(candidates) == 0 {
		c.clear()
		return nil, false
	}

	for _, kb := range candidates {
		if len(kb.Steps) == depth+1 {
			c.clear()
			return kb.Action, true
		}
	}

	c.pending = append(c.pending, ev)
	c.deadline = now.Add(DefaultChordTimeout)
	return nil, true
}
