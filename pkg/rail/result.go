package rail

import (
	"time"

	"github.com/xavierjohn/FunctionalDDD-sub013/pkg/rail/fail"
)

// Result is a discriminated success-or-failure value. It is either a
// success holding a value of T or a failure holding a non-empty fail.List,
// never both and never neither.
//
// Reading Value on a failure or Errors on a success is a contract violation
// by the caller, not a domain failure, and panics immediately.
type Result[T any] struct {
	value     T
	errs      fail.List
	isSuccess bool
	createdAt time.Time
}

// Success wraps a value on the success track. Panics if value is a nil
// pointer or nil interface: a present-but-nil success is an invariant
// violation at the construction site.
func Success[T any](value T) Result[T] {
	if IsNil(value) {
		panic("rail: Success called with nil value")
	}
	return Result[T]{
		value:     value,
		isSuccess: true,
		createdAt: time.Now().UTC(),
	}
}

// Failure puts one or more errors on the failure track. Panics when called
// with no errors: a failure must always carry at least one.
func Failure[T any](errs ...fail.Error) Result[T] {
	return FailureList[T](fail.List(errs))
}

// FailureList is Failure for an already-built list.
func FailureList[T any](list fail.List) Result[T] {
	if len(list) == 0 {
		panic("rail: failure Result requires at least one error")
	}
	return Result[T]{
		errs:      list,
		isSuccess: false,
		createdAt: time.Now().UTC(),
	}
}

// FailureFrom carries a failed Result's errors across a type change.
// Panics if from is a success.
func FailureFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		errs:      from.Errors(),
		isSuccess: false,
		createdAt: from.createdAt,
	}
}

func (r Result[T]) IsSuccess() bool { return r.isSuccess }
func (r Result[T]) IsFailure() bool { return !r.isSuccess }

// Value returns the success value. Panics on a failure.
func (r Result[T]) Value() T {
	if !r.isSuccess {
		panic("rail: Value read on a failed Result")
	}
	return r.value
}

// Errors returns the failure list. Panics on a success.
func (r Result[T]) Errors() fail.List {
	if r.isSuccess {
		panic("rail: Errors read on a successful Result")
	}
	return r.errs
}

// FirstError returns the first error of a failure. Panics on a success.
func (r Result[T]) FirstError() fail.Error {
	return r.Errors().First()
}

// Unwrap exposes the result in Go's (value, error) convention for callers
// leaving the railway. The error of a failure is the fail.List itself.
func (r Result[T]) Unwrap() (T, error) {
	if r.isSuccess {
		return r.value, nil
	}
	var zero T
	return zero, r.errs
}

// ValueOr returns the success value or fallback on failure.
func (r Result[T]) ValueOr(fallback T) T {
	if r.isSuccess {
		return r.value
	}
	return fallback
}

// ToMaybe drops the failure information, mapping failure to None.
func (r Result[T]) ToMaybe() Maybe[T] {
	if r.isSuccess {
		return Some(r.value)
	}
	return None[T]()
}

// CreatedAt is the UTC instant this Result was constructed.
func (r Result[T]) CreatedAt() time.Time { return r.createdAt }
