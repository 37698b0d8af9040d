package cont

import "github.com/ib-77/mon/pkg/mon"

// ApplyBranch runs the function of the populated side and keeps the result on
// that side. The opposite function is never called. Applying to an invalid
// Branch panics with an invalid-access error.
func ApplyBranch[L, L2, R, R2 any](c Continuation[L, L2, R, R2], b mon.Branch[L, R]) mon.Branch[L2, R2] {
	if b.HasLeft() {
		return mon.Left[L2, R2](c.onLeft(b.LeftValue()))
	}
	return mon.Right[L2](c.onRight(b.RightValue()))
}

// ApplyPresent wraps the left result in Present. A left function returning a
// variant panics with a *mon.WiringError; use BindPresent for it.
func ApplyPresent[L, L2, R, R2 any](c Continuation[L, L2, R, R2], p mon.Present[L]) mon.Present[L2] {
	mon.MustWrap[L2]()
	return mon.Just(c.onLeft(p.Value()))
}

// BindPresent returns the variant produced by the left function as is.
func BindPresent[L any, M mon.Variant, R, R2 any](c Continuation[L, M, R, R2], p mon.Present[L]) M {
	return c.onLeft(p.Value())
}

// ApplyOptional wraps the left result in Some. When o is absent the right
// function is called with the zero R, its result discarded, and None returned.
// Like ApplyPresent it rejects variant-returning left functions.
func ApplyOptional[L, L2, R, R2 any](c Continuation[L, L2, R, R2], o mon.Optional[L]) mon.Optional[L2] {
	mon.MustWrap[L2]()
	if v, ok := o.Get(); ok {
		return mon.Some(c.onLeft(v))
	}
	var zero R
	c.onRight(zero)
	return mon.None[L2]()
}

// BindOptional is ApplyOptional for left functions that already return an
// Optional, letting a stage short-circuit with absence.
func BindOptional[L, U, R, R2 any](c Continuation[L, mon.Optional[U], R, R2], o mon.Optional[L]) mon.Optional[U] {
	if v, ok := o.Get(); ok {
		return c.onLeft(v)
	}
	var zero R
	c.onRight(zero)
	return mon.None[U]()
}
