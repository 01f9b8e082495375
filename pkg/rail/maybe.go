package rail

import (
	"github.com/xavierjohn/FunctionalDDD-sub013/pkg/rail/fail"
)

// Maybe is an optional value: Some(value) or None. For comparable T two
// Maybe values compare with == the way the optional algebra requires: two
// None are equal, Some(x) equals Some(y) iff x == y.
type Maybe[T any] struct {
	value    T
	hasValue bool
}

// Some wraps a present value. Panics on a nil pointer or nil interface;
// use From when absence should map to None instead.
func Some[T any](value T) Maybe[T] {
	if IsNil(value) {
		panic("rail: Some called with nil value")
	}
	return Maybe[T]{value: value, hasValue: true}
}

// None is the absent value.
func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// From maps nil pointers and nil interfaces to None, anything else to Some.
func From[T any](value T) Maybe[T] {
	if IsNil(value) {
		return None[T]()
	}
	return Maybe[T]{value: value, hasValue: true}
}

// FromPtr dereferences p into Some, or None when p is nil.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return None[T]()
	}
	return Maybe[T]{value: *p, hasValue: true}
}

func (m Maybe[T]) HasValue() bool   { return m.hasValue }
func (m Maybe[T]) HasNoValue() bool { return !m.hasValue }

// MustValue returns the value, panicking on None. An optional message
// replaces the default panic text.
func (m Maybe[T]) MustValue(message ...string) T {
	if !m.hasValue {
		if len(message) > 0 {
			panic("rail: " + message[0])
		}
		panic("rail: MustValue read on None")
	}
	return m.value
}

// ValueOr returns the value or fallback on None.
func (m Maybe[T]) ValueOr(fallback T) T {
	if m.hasValue {
		return m.value
	}
	return fallback
}

// ValueOrElse returns the value or computes a fallback on None.
func (m Maybe[T]) ValueOrElse(f func() T) T {
	if m.hasValue {
		return m.value
	}
	return f()
}

// ToPtr returns a pointer to a copy of the value, or nil on None.
func (m Maybe[T]) ToPtr() *T {
	if !m.hasValue {
		return nil
	}
	v := m.value
	return &v
}

// ToResult converts Some to Success and None to a failure carrying e.
func (m Maybe[T]) ToResult(e fail.Error) Result[T] {
	if m.hasValue {
		return Success(m.value)
	}
	return Failure[T](e)
}

// ToResultFunc is ToResult with the error built lazily, only on None.
func (m Maybe[T]) ToResultFunc(f func() fail.Error) Result[T] {
	if m.hasValue {
		return Success(m.value)
	}
	return Failure[T](f())
}

// MapMaybe transforms the value inside Some, passing None through.
func MapMaybe[In, Out any](m Maybe[In], f func(In) Out) Maybe[Out] {
	if !m.hasValue {
		return None[Out]()
	}
	return From(f(m.value))
}

// BindMaybe chains an optional-producing function, passing None through.
func BindMaybe[In, Out any](m Maybe[In], f func(In) Maybe[Out]) Maybe[Out] {
	if !m.hasValue {
		return None[Out]()
	}
	return f(m.value)
}
