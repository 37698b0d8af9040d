package mon

import "reflect"

// Erased gives type-erased, left-biased access to a variant for pipelines
// assembled at runtime. Present always continues, Optional continues when
// populated and Branch continues on its left side.
type Erased interface {
	Variant
	Continue() (any, bool)
	// ContinueType is the static type of the value returned by Continue.
	ContinueType() reflect.Type
}

func (p Present[T]) Continue() (any, bool) {
	return p.value, true
}

func (p Present[T]) ContinueType() reflect.Type {
	return reflect.TypeFor[T]()
}

func (o Optional[T]) Continue() (any, bool) {
	if !o.ok {
		return nil, false
	}
	return o.value, true
}

func (o Optional[T]) ContinueType() reflect.Type {
	return reflect.TypeFor[T]()
}

func (b Branch[L, R]) Continue() (any, bool) {
	if b.side != leftSide {
		return nil, false
	}
	return b.left, true
}

func (b Branch[L, R]) ContinueType() reflect.Type {
	return reflect.TypeFor[L]()
}
