package chain

import (
	"github.com/ib-77/mon/pkg/mon"
	"github.com/ib-77/mon/pkg/mon/cont"
	"github.com/ib-77/mon/pkg/mon/solo"
)

type Chain[T any] struct {
	res mon.Optional[T]
}

func Start[T any](o mon.Optional[T]) Chain[T] {
	return Chain[T]{res: o}
}

func FromValue[T any](v T) Chain[T] {
	return Start(mon.Some(v))
}

func Empty[T any]() Chain[T] {
	return Start(mon.None[T]())
}

func (c Chain[T]) Result() mon.Optional[T] {
	return c.res
}

// Then composes functions that already return mon.Optional[T]
func (c Chain[T]) Then(step func(T) mon.Optional[T]) Chain[T] {
	return Chain[T]{res: solo.AndThen(c.res, step)}
}

// Map transforms the held value
func (c Chain[T]) Map(f func(T) T) Chain[T] {
	return Chain[T]{res: solo.MapOptional(c.res, f)}
}

// Check drops the value unless pred holds
func (c Chain[T]) Check(pred func(T) bool) Chain[T] {
	return Chain[T]{res: cont.BindOptional(cont.Check[struct{}](pred), c.res)}
}

func (c Chain[T]) RepeatUntil(step func(T) mon.Optional[T], until func(T) bool) Chain[T] {
	if !c.res.HasValue() {
		return c
	}

	for {
		c = c.Then(step)

		if !c.res.HasValue() || !until(c.res.Value()) {
			return c
		}
	}
}

func (c Chain[T]) While(step func(T) mon.Optional[T], while func(T) bool) Chain[T] {
	for c.res.HasValue() && while(c.res.Value()) {
		c = c.Then(step)
	}
	return c
}

// Or returns the first populated chain among c and alternatives.
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	for _, ch := range append([]Chain[T]{c}, alternatives...) {
		if ch.res.HasValue() {
			return ch
		}
	}
	return c
}

// And returns the last chain when every chain is populated, else the first
// empty one.
func (c Chain[T]) And(required ...Chain[T]) Chain[T] {
	last := c
	for _, ch := range append([]Chain[T]{c}, required...) {
		if !ch.res.HasValue() {
			return ch
		}
		last = ch
	}
	return last
}

// Ensure triggers side effects without changing the result. Either callback
// may be nil.
func (c Chain[T]) Ensure(onValue func(T), onEmpty func()) Chain[T] {
	if v, ok := c.res.Get(); ok {
		if onValue != nil {
			onValue(v)
		}
		return c
	}
	if onEmpty != nil {
		onEmpty()
	}
	return c
}

func (c Chain[T]) Finally(onValue func(T) T, onEmpty func() T) T {
	return solo.FinallyOptional(c.res, onValue, onEmpty)
}

// Then chains a step that changes the value type.
func Then[T, U any](c Chain[T], step func(T) mon.Optional[U]) Chain[U] {
	return Chain[U]{res: solo.AndThen(c.res, step)}
}

// Map chains a pure transformation that changes the value type.
func Map[T, U any](c Chain[T], f func(T) U) Chain[U] {
	return Chain[U]{res: solo.MapOptional(c.res, f)}
}

// Through applies a continuation to the chain's Optional. When the chain is
// empty the continuation's right function observes the zero R.
func Through[T, U, R, R2 any](c Chain[T], k cont.Continuation[T, U, R, R2]) Chain[U] {
	return Chain[U]{res: cont.ApplyOptional(k, c.res)}
}
