package mon

import (
	"errors"
	"reflect"
)

var (
	// ErrInvalidAccess is wrapped by every panic raised on dereferencing an
	// absent value.
	ErrInvalidAccess = errors.New("mon: invalid access")
	// ErrBranchExclusive is returned when a Branch would hold both sides or none.
	ErrBranchExclusive = errors.New("mon: branch must hold exactly one side")
	// ErrNestedVariant is wrapped by the panic raised when a wrapping function
	// is wired to a function that already returns a variant.
	ErrNestedVariant = errors.New("mon: function already returns a variant, use a Bind function")
)

var variantType = reflect.TypeFor[Variant]()

// WiringError reports a function whose result type cannot be wrapped.
type WiringError struct {
	Type reflect.Type
}

func (e *WiringError) Error() string {
	return ErrNestedVariant.Error() + ": " + e.Type.String()
}

func (e *WiringError) Unwrap() error {
	return ErrNestedVariant
}

// MustWrap panics with a *WiringError if T is a variant type. Functions that
// wrap a result in Present or Optional call it so that a variant-returning
// function is never wrapped twice.
func MustWrap[T any]() {
	if t := reflect.TypeFor[T](); t.Implements(variantType) {
		panic(&WiringError{Type: t})
	}
}

// AccessError describes an invalid dereference.
type AccessError struct {
	Variant Kind
	Side    string
}

func (e *AccessError) Error() string {
	if e.Side == "" {
		return ErrInvalidAccess.Error() + ": " + e.Variant.String() + " is absent"
	}
	return ErrInvalidAccess.Error() + ": " + e.Variant.String() + " has no " + e.Side + " value"
}

func (e *AccessError) Unwrap() error {
	return ErrInvalidAccess
}

func invalidAccess(k Kind, side string) {
	panic(&AccessError{Variant: k, Side: side})
}

// IsNil reports whether i is nil or a nil pointer.
func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// GetErrors splits an error produced by errors.Join back into its parts.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// Recover converts a recovered invalid-access panic into an error. Any other
// panic value is re-raised.
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if ae, ok := r.(*AccessError); ok {
		*err = ae
		return
	}
	panic(r)
}
