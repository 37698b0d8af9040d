package stages

import (
	"reflect"

	"github.com/ib-77/mon/pkg/mon"
	"github.com/ib-77/mon/pkg/mon/cont"
)

var erasedType = reflect.TypeFor[mon.Erased]()

// Stage is a named, type-erased step of a Pipeline.
type Stage struct {
	name string
	in   reflect.Type
	out  reflect.Type
	next reflect.Type
	fn   func(any) (mon.Erased, bool)
}

// Func builds a stage from f. A variant returned by f is kept as is, any
// other result is wrapped in mon.Present.
func Func[In, Out any](name string, f func(In) Out) Stage {
	if f == nil {
		panic(cont.ErrNilFunc)
	}
	return Stage{
		name: name,
		in:   reflect.TypeFor[In](),
		out:  reflect.TypeFor[Out](),
		next: continueType[Out](),
		fn: func(v any) (mon.Erased, bool) {
			var in In
			if v != nil {
				var ok bool
				if in, ok = v.(In); !ok {
					return nil, false
				}
			}
			out := f(in)
			if e, ok := any(out).(mon.Erased); ok {
				return e, true
			}
			return mon.Just(out), true
		},
	}
}

// Filter keeps values satisfying pred and ends the run otherwise.
func Filter[T any](name string, pred func(T) bool) Stage {
	return FromContinuation(name, cont.Check[struct{}](pred))
}

// FromContinuation uses the left function of c. The right side never runs in
// a left-biased pipeline.
func FromContinuation[L, L2, R, R2 any](name string, c cont.Continuation[L, L2, R, R2]) Stage {
	return Func(name, c.OnLeft())
}

func (s Stage) Name() string {
	return s.name
}

func (s Stage) In() reflect.Type {
	return s.in
}

func (s Stage) Out() reflect.Type {
	return s.out
}

// continueType is the type the following stage receives.
func continueType[Out any]() reflect.Type {
	t := reflect.TypeFor[Out]()
	if t.Kind() == reflect.Interface || !t.Implements(erasedType) {
		return t
	}
	var zero Out
	return any(zero).(mon.Erased).ContinueType()
}

// convert returns v as a value of the stage input type. Values of a type
// that is only assignable to it, such as a named slice, are converted.
func (s Stage) convert(v any) (any, bool) {
	if v == nil {
		return nil, s.in.Kind() == reflect.Interface
	}
	t := reflect.TypeOf(v)
	switch {
	case t == s.in:
		return v, true
	case s.in.Kind() == reflect.Interface:
		return v, t.Implements(s.in)
	case t.AssignableTo(s.in):
		return reflect.ValueOf(v).Convert(s.in).Interface(), true
	default:
		return nil, false
	}
}
