package tui

// BreakpointPredicate tests a candidate branch's applicability against the
// width a responsive container is being arranged at.
type BreakpointPredicate func(arrangeWidth int) bool

// MinWidth returns a predicate matching when the arrange width is at
// least w.
func MinWidth(w int) BreakpointPredicate {
	return func(arrangeWidth int) bool { return arrangeWidth >= w }
}

// ResponsiveBranch pairs a predicate with the widget to use when it
// matches.
type ResponsiveBranch struct {
	When  BreakpointPredicate
	Child Widget
}

// Responsive selects among candidate widgets by the first matching
// predicate on the arrange width, falling back to Otherwise. Selection
// happens at reconcile time, via SelectResponsiveChild, so measurement
// reflects the chosen variant rather than re-deciding during render.
type Responsive struct {
	BaseWidget
	Branches  []ResponsiveBranch
	Otherwise Widget
	Width     int // arrange width to evaluate branches against
}

// SelectResponsiveChild returns the widget chosen for the given width.
func SelectResponsiveChild(r *Responsive) Widget {
	for _, b := range r.Branches {
		if b.When != nil && b.When(r.Width) {
			return b.Child
		}
	}
	return r.Otherwise
}
