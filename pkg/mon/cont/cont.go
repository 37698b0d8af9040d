package cont

import (
	"errors"

	"github.com/ib-77/mon/pkg/mon"
)

// ErrNilFunc is raised when a continuation is built from a nil function.
var ErrNilFunc = errors.New("cont: nil transformation function")

// Continuation transforms L to L2 on the left side and R to R2 on the right.
type Continuation[L, L2, R, R2 any] struct {
	onLeft  func(L) L2
	onRight func(R) R2
}

// New panics with ErrNilFunc if either function is nil. Use LeftOnly or
// RightOnly to keep one side as identity.
func New[L, L2, R, R2 any](onLeft func(L) L2, onRight func(R) R2) Continuation[L, L2, R, R2] {
	if onLeft == nil || onRight == nil {
		panic(ErrNilFunc)
	}
	return Continuation[L, L2, R, R2]{onLeft: onLeft, onRight: onRight}
}

func identity[T any](v T) T {
	return v
}

// LeftOnly transforms the left side and passes the right side through. The
// right type comes first so that L and L2 are inferred from f.
func LeftOnly[R, L, L2 any](f func(L) L2) Continuation[L, L2, R, R] {
	return New(f, identity[R])
}

// RightOnly transforms the right side and passes the left side through.
func RightOnly[L, R, R2 any](f func(R) R2) Continuation[L, L, R, R2] {
	return New(identity[L], f)
}

func Identity[L, R any]() Continuation[L, L, R, R] {
	return New(identity[L], identity[R])
}

// Check maps input to Some(input) when pred holds, otherwise to None. It is
// meant as a filter stage through BindOptional.
func Check[R, T any](pred func(T) bool) Continuation[T, mon.Optional[T], R, R] {
	return CheckOr[R](pred, nil)
}

// CheckOr is Check with a callback for rejected inputs. onEmpty may be nil.
func CheckOr[R, T any](pred func(T) bool, onEmpty func(T)) Continuation[T, mon.Optional[T], R, R] {
	if pred == nil {
		panic(ErrNilFunc)
	}
	return LeftOnly[R](func(in T) mon.Optional[T] {
		if pred(in) {
			return mon.Some(in)
		}
		if onEmpty != nil {
			onEmpty(in)
		}
		return mon.None[T]()
	})
}

func (c Continuation[L, L2, R, R2]) OnLeft() func(L) L2 {
	return c.onLeft
}

func (c Continuation[L, L2, R, R2]) OnRight() func(R) R2 {
	return c.onRight
}

// Call applies the left function to a bare value.
func (c Continuation[L, L2, R, R2]) Call(v L) L2 {
	return c.onLeft(v)
}
