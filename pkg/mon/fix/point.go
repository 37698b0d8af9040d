package fix

import (
	"errors"
	"math"
)

var (
	ErrNoConvergence = errors.New("fix: no convergence")
	ErrNotFinite     = errors.New("fix: iteration left the finite range")
	ErrDomain        = errors.New("fix: argument out of domain")
)

// Point returns x with |f(x) - x| below the tolerance, starting from guess.
func Point(f func(float64) float64, guess float64, opts ...Option) (float64, error) {
	o := newOptions(opts)

	x := guess
	for i := 0; i < o.maxIterations; i++ {
		next := f(x)
		if o.observer != nil {
			o.observer(i, next)
		}
		if math.IsNaN(next) || math.IsInf(next, 0) {
			return x, ErrNotFinite
		}
		if math.Abs(next-x) < o.tolerance {
			return next, nil
		}
		x = next
	}
	return x, ErrNoConvergence
}

// Damped averages x with f(x), which makes oscillating iterations converge.
func Damped(f func(float64) float64) func(float64) float64 {
	return func(x float64) float64 {
		return (x + f(x)) / 2
	}
}

const dx = 1e-5

// Derivative approximates g' by a forward difference.
func Derivative(g func(float64) float64) func(float64) float64 {
	return func(x float64) float64 {
		return (g(x+dx) - g(x)) / dx
	}
}

// Newton finds a root of g as the fixed point of x - g(x)/g'(x).
func Newton(g func(float64) float64, guess float64, opts ...Option) (float64, error) {
	dg := Derivative(g)
	return Point(func(x float64) float64 {
		return x - g(x)/dg(x)
	}, guess, opts...)
}

// Sqrt is the fixed point of y -> x/y under average damping.
func Sqrt(x float64, opts ...Option) (float64, error) {
	if x < 0 {
		return math.NaN(), ErrDomain
	}
	if x == 0 {
		return 0, nil
	}
	return Point(Damped(func(y float64) float64 {
		return x / y
	}), 1, opts...)
}

// CubeRoot solves y^3 - x = 0 with Newton's method.
func CubeRoot(x float64, opts ...Option) (float64, error) {
	if x == 0 {
		return 0, nil
	}
	return Newton(func(y float64) float64 {
		return y*y*y - x
	}, 1, opts...)
}
