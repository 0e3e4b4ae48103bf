package tui

import "reflect"

// Widget is an immutable description of one node in the application's UI
// tree, produced fresh by the application's builder every frame. A widget
// never mutates its own tree directly; it tells the reconciler how to
// update a persistent Node.
type Widget interface {
	// NodeType returns the concrete node type the widget expects,
	// typically reflect.TypeOf((*ConcreteNode)(nil)). The reconciler
	// reuses an existing node only when its concrete type matches.
	NodeType() reflect.Type

	// Reconcile mutates existing in place if it is non-nil and of this
	// widget's node type, or builds and returns a new node otherwise.
	Reconcile(existing Node) Node
}

// SizeHinted is implemented by widgets carrying optional width/height
// hints. These are applied to the reconciled node after the per-type
// Reconcile call, alongside every other common-to-all-widgets field.
type SizeHinted interface {
	SizeHints() SizeHints
}

// BindingConfigurator is an optional closure a widget attaches to
// configure the key/mouse bindings of its reconciled node.
type BindingConfigurator func(b *BindingSet)

// BindingConfigured is implemented by widgets carrying a bindings
// configurator closure.
type BindingConfigured interface {
	BindingConfigurator() BindingConfigurator
}

// Keyed is implemented by widgets supplying an explicit reconciliation
// key, used to match old and new child lists by identity rather than
// position.
type Keyed interface {
	Key() string
}

// BaseWidget is embedded by concrete widget types to supply the common
// fields every widget carries: size hints, a bindings configurator, and
// an optional reconciliation key. Concrete widgets set these by assigning
// the embedded BaseWidget's fields.
type BaseWidget struct {
	Hints       SizeHints
	Bindings    BindingConfigurator
	ExplicitKey string
}

func (b BaseWidget) SizeHints() SizeHints                     { return b.Hints }
func (b BaseWidget) BindingConfigurator() BindingConfigurator { return b.Bindings }
func (b BaseWidget) Key() string                              { return b.ExplicitKey }

// applyCommonFields copies size hints and the bindings configurator from
// widget onto node, after the widget's own type-specific reconcile has
// run. This is the "common-to-all-widgets fields" step that runs
// unconditionally regardless of whether the node was reused or built new.
func applyCommonFields(w Widget, n Node) {
	base := n.Base()
	if sh, ok := w.(SizeHinted); ok {
		base.Hints = sh.SizeHints()
	} else {
		base.Hints = SizeHints{}
	}
	if bc, ok := w.(BindingConfigured); ok {
		if cfg := bc.BindingConfigurator(); cfg != nil {
			if base.Bindings == nil {
				base.Bindings = &BindingSet{}
			}
			base.Bindings.keyBindings = nil
			base.Bindings.mouseBindings = nil
			cfg(base.Bindings)
		} else {
			base.Bindings = nil
		}
	} else {
		base.Bindings = nil
	}
}
