// Package mon defines the three chainable result variants: Present (exactly
// one value), Optional (zero or one value) and Branch (exactly one of a left
// or a right value).
//
// All variants are immutable values. Dereferencing an absent Optional or the
// unpopulated side of a Branch is a contract violation and panics with an
// *AccessError wrapping ErrInvalidAccess. Use HasValue/HasLeft/HasRight, Get,
// or the ...Or/...OrEval accessors to read safely.
//
// Piping variants into functions and continuations lives in the cont and
// solo sub-packages.
package mon
