package mon

import "fmt"

// Optional holds zero or one value. The zero Optional is absent.
type Optional[T any] struct {
	value T
	ok    bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr returns Some(*p), or None when p is nil.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// FromPair builds an Optional from the comma-ok idiom.
func FromPair[T any](v T, ok bool) Optional[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

func (o Optional[T]) HasValue() bool {
	return o.ok
}

// Value returns the held value. It panics if o is absent.
func (o Optional[T]) Value() T {
	if !o.ok {
		invalidAccess(KindOptional, "")
	}
	return o.value
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o Optional[T]) ValueOr(d T) T {
	if o.ok {
		return o.value
	}
	return d
}

// ValueOrEval calls thunk only when o is absent.
func (o Optional[T]) ValueOrEval(thunk func() T) T {
	if o.ok {
		return o.value
	}
	return thunk()
}

// Or returns o if populated, else other.
func (o Optional[T]) Or(other Optional[T]) Optional[T] {
	if o.ok {
		return o
	}
	return other
}

// Ptr returns a pointer to a copy of the value, or nil.
func (o Optional[T]) Ptr() *T {
	if !o.ok {
		return nil
	}
	v := o.value
	return &v
}

func (o Optional[T]) Kind() Kind {
	return KindOptional
}

func (o Optional[T]) Populated() bool {
	return o.ok
}

func (o Optional[T]) String() string {
	if !o.ok {
		return "Optional(absent)"
	}
	return fmt.Sprintf("Optional(%v)", o.value)
}

func (Optional[T]) variant() {}

// Flatten collapses a nested Optional.
func Flatten[T any](o Optional[Optional[T]]) Optional[T] {
	if !o.ok {
		return None[T]()
	}
	return o.value
}
