package mon

import "fmt"

// Present holds exactly one value.
type Present[T any] struct {
	value T
}

// Just wraps v.
func Just[T any](v T) Present[T] {
	return Present[T]{value: v}
}

func (p Present[T]) Value() T {
	return p.value
}

// Optional converts p into a populated Optional.
func (p Present[T]) Optional() Optional[T] {
	return Some(p.value)
}

func (p Present[T]) Kind() Kind {
	return KindPresent
}

func (p Present[T]) Populated() bool {
	return true
}

func (p Present[T]) String() string {
	return fmt.Sprintf("Present(%v)", p.value)
}

func (Present[T]) variant() {}

// FlattenPresent collapses a nested Present.
func FlattenPresent[T any](p Present[Present[T]]) Present[T] {
	return p.value
}
