package solo

import (
	"errors"

	"github.com/ib-77/mon/pkg/mon"
)

// Map pipes p into f and wraps the result. It panics with a *mon.WiringError
// when U is a variant; use Bind for such functions.
func Map[T, U any](p mon.Present[T], f func(T) U) mon.Present[U] {
	mon.MustWrap[U]()
	return mon.Just(f(p.Value()))
}

// Bind pipes p into f and returns the produced variant unchanged.
func Bind[T any, M mon.Variant](p mon.Present[T], f func(T) M) M {
	return f(p.Value())
}

// MapOptional applies f only when o holds a value. Like Map it rejects
// variant results; use AndThen for those.
func MapOptional[T, U any](o mon.Optional[T], f func(T) U) mon.Optional[U] {
	mon.MustWrap[U]()
	if v, ok := o.Get(); ok {
		return mon.Some(f(v))
	}
	return mon.None[U]()
}

// AndThen chains f when o is populated and short-circuits to None otherwise.
func AndThen[T, U any](o mon.Optional[T], f func(T) mon.Optional[U]) mon.Optional[U] {
	if v, ok := o.Get(); ok {
		return f(v)
	}
	return mon.None[U]()
}

// AndAlso returns next when o is populated, otherwise None.
func AndAlso[T, U any](o mon.Optional[T], next mon.Optional[U]) mon.Optional[U] {
	if o.HasValue() {
		return next
	}
	return mon.None[U]()
}

func OrElse[T any](o mon.Optional[T], other mon.Optional[T]) mon.Optional[T] {
	return o.Or(other)
}

func OrElseValue[T any](o mon.Optional[T], v T) T {
	return o.ValueOr(v)
}

func OrElseEval[T any](o mon.Optional[T], thunk func() T) T {
	return o.ValueOrEval(thunk)
}

// FirstOf returns the first populated Optional, or None.
func FirstOf[T any](opts ...mon.Optional[T]) mon.Optional[T] {
	for _, o := range opts {
		if o.HasValue() {
			return o
		}
	}
	return mon.None[T]()
}

// FirstOfEval evaluates candidates lazily and stops at the first populated one.
func FirstOfEval[T any](candidates ...func() mon.Optional[T]) mon.Optional[T] {
	for _, c := range candidates {
		if o := c(); o.HasValue() {
			return o
		}
	}
	return mon.None[T]()
}

func MapLeft[L, L2, R any](b mon.Branch[L, R], f func(L) L2) mon.Branch[L2, R] {
	if b.HasLeft() {
		return mon.Left[L2, R](f(b.LeftValue()))
	}
	return mon.Right[L2](b.RightValue())
}

func MapRight[L, R, R2 any](b mon.Branch[L, R], f func(R) R2) mon.Branch[L, R2] {
	if b.HasRight() {
		return mon.Right[L](f(b.RightValue()))
	}
	return mon.Left[L, R2](b.LeftValue())
}

// BindLeft chains a Branch-returning function on the left side.
func BindLeft[L, L2, R any](b mon.Branch[L, R], f func(L) mon.Branch[L2, R]) mon.Branch[L2, R] {
	if b.HasLeft() {
		return f(b.LeftValue())
	}
	return mon.Right[L2](b.RightValue())
}

func Tee[T any](o mon.Optional[T], onValue func(T)) mon.Optional[T] {
	if v, ok := o.Get(); ok {
		onValue(v)
	}
	return o
}

func DoubleTee[L, R any](b mon.Branch[L, R], onLeft func(L), onRight func(R)) mon.Branch[L, R] {
	if b.HasLeft() {
		if onLeft != nil {
			onLeft(b.LeftValue())
		}
	} else if b.HasRight() {
		if onRight != nil {
			onRight(b.RightValue())
		}
	}
	return b
}

func Finally[L, R, Out any](b mon.Branch[L, R], onLeft func(L) Out, onRight func(R) Out) Out {
	if b.HasLeft() {
		return onLeft(b.LeftValue())
	}
	return onRight(b.RightValue())
}

func FinallyOptional[T, Out any](o mon.Optional[T], onValue func(T) Out, onEmpty func() Out) Out {
	if v, ok := o.Get(); ok {
		return onValue(v)
	}
	return onEmpty()
}

// Validate puts v on the left when it passes, else the message on the right.
func Validate[T any](v T, validate func(in T) (isValid bool, errMsg string)) mon.Branch[T, error] {
	if isValid, errMsg := validate(v); !isValid {
		return mon.Right[T](errors.New(errMsg))
	}
	return mon.Left[T, error](v)
}

// AndValidate validates a Branch that is still on the left side.
func AndValidate[T any](b mon.Branch[T, error], validate func(in T) (isValid bool, errMsg string)) mon.Branch[T, error] {
	if b.HasLeft() {
		return Validate(b.LeftValue(), validate)
	}
	return b
}

// ValidateAll runs validators in order. With breakOnError the first failure
// is returned; otherwise all failures are joined.
func ValidateAll[T any](b mon.Branch[T, error], breakOnError bool,
	validators ...func(in T) mon.Branch[T, error]) mon.Branch[T, error] {

	if !b.HasLeft() || len(validators) == 0 {
		return b
	}

	value := b.LeftValue()
	var err error
	for _, validate := range validators {
		res := validate(value)
		if res.HasLeft() {
			continue
		}
		if breakOnError {
			return res
		}
		e := mon.GetErrors(err)
		e = append(e, res.RightValue())
		err = errors.Join(e...)
	}

	if mon.IsNil(err) {
		return b
	}
	return mon.Right[T](err)
}

// Try converts a (U, error) call into a Branch.
func Try[T, U any](o mon.Optional[T], try func(T) (U, error)) mon.Branch[U, error] {
	v, ok := o.Get()
	if !ok {
		return mon.Right[U](error(&mon.AccessError{Variant: mon.KindOptional}))
	}
	out, err := try(v)
	if err != nil {
		return mon.Right[U](err)
	}
	return mon.Left[U, error](out)
}
