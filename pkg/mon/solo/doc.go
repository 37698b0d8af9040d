// Package solo contains single-function piping primitives over the mon
// variants. They form the synchronous building blocks for chains that do not
// need a two-sided Continuation.
//
// Highlights:
// - Map/Bind: pipe a Present into a plain or variant-returning function
// - MapOptional/AndThen/AndAlso: left-biased piping of an Optional
// - OrElse/OrElseValue/OrElseEval/FirstOf: first-success-wins fallbacks
// - MapLeft/MapRight/BindLeft: one-sided Branch transforms
// - Validate/ValidateAll/Try: produce a Branch[T, error]
// - Tee/DoubleTee: side-effect helpers
// - Finally/FinallyOptional: reduce to a concrete value
package solo
