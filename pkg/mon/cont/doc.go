// Package cont provides Continuation, a pair of transformations (one per
// side of a Branch) that composes with other continuations and applies to
// every result variant of package mon.
//
// Go methods cannot introduce type parameters, so applying and composing are
// package functions:
//
//   - ApplyBranch: run the populated side, keep the side
//   - ApplyPresent / ApplyOptional: run the left function, wrap the result
//   - BindPresent / BindOptional: run the left function, return the produced
//     variant unchanged (no double wrapping)
//   - Compose / Then / ComposeAll: build new continuations
//
// Whether a stage flattens or wraps is fixed by the declared result type of
// its left function: one returning a mon variant goes through Bind*, any
// other through Apply*.
package cont
