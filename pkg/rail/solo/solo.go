package solo

import (
	"context"

	"github.com/xavierjohn/FunctionalDDD-sub013/pkg/rail"
	"github.com/xavierjohn/FunctionalDDD-sub013/pkg/rail/fail"
)

func Succeed[T any](input T) rail.Result[T] {
	return rail.Success(input)
}

func Fail[T any](errs ...fail.Error) rail.Result[T] {
	return rail.Failure[T](errs...)
}

// Bind is the sequencing operator: on success it invokes onSuccess and
// returns its Result directly, flattening the nesting; on failure it
// short-circuits without invoking onSuccess, carrying the errors untouched.
func Bind[In, Out any](ctx context.Context, input rail.Result[In],
	onSuccess func(ctx context.Context, value In) rail.Result[Out]) rail.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return rail.FailureFrom[In, Out](input)
}

// Map transforms the successful value, wrapping the output as a success.
// A failure passes through untouched and onSuccess is never invoked.
func Map[In, Out any](ctx context.Context, input rail.Result[In],
	onSuccess func(ctx context.Context, value In) Out) rail.Result[Out] {

	if input.IsSuccess() {
		return rail.Success(onSuccess(ctx, input.Value()))
	}
	return rail.FailureFrom[In, Out](input)
}

// Ensure converts a success into a failure carrying e when the predicate
// rejects the value; otherwise the value passes through unchanged.
func Ensure[T any](ctx context.Context, input rail.Result[T],
	predicate func(ctx context.Context, value T) bool, e fail.Error) rail.Result[T] {

	if input.IsSuccess() {
		if !predicate(ctx, input.Value()) {
			return rail.Failure[T](e)
		}
	}
	return input
}

// EnsureWith runs an independent validation against the value and merges
// its failure into the track; the validation's success value is discarded
// and the original value passes through.
func EnsureWith[T any](ctx context.Context, input rail.Result[T],
	check func(ctx context.Context, value T) rail.Result[T]) rail.Result[T] {

	if input.IsSuccess() {
		if checked := check(ctx, input.Value()); checked.IsFailure() {
			return checked
		}
	}
	return input
}

// Tap invokes a side effect on the successful value and passes the result
// through unchanged. A failure is a no-op pass-through.
func Tap[T any](ctx context.Context, input rail.Result[T],
	action func(ctx context.Context, value T)) rail.Result[T] {

	if input.IsSuccess() {
		action(ctx, input.Value())
	}
	return input
}

// TapError is the failure-side counterpart of Tap.
func TapError[T any](ctx context.Context, input rail.Result[T],
	action func(ctx context.Context, errs fail.List)) rail.Result[T] {

	if input.IsFailure() {
		action(ctx, input.Errors())
	}
	return input
}

// TapBoth invokes exactly one of the two side effects and passes the
// result through unchanged.
func TapBoth[T any](ctx context.Context, input rail.Result[T],
	onSuccess func(ctx context.Context, value T),
	onFailure func(ctx context.Context, errs fail.List)) rail.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	} else {
		onFailure(ctx, input.Errors())
	}
	return input
}

// Try lifts a (value, error) function onto the railway. A non-nil error is
// converted through fail.FromError, so typed errors keep their kind and
// anything else becomes Unexpected.
func Try[In, Out any](ctx context.Context, input rail.Result[In],
	execute func(ctx context.Context, value In) (Out, error)) rail.Result[Out] {

	if input.IsFailure() {
		return rail.FailureFrom[In, Out](input)
	}

	out, err := execute(ctx, input.Value())
	if err != nil {
		return rail.FailureList[Out](fail.FromError(err))
	}
	return rail.Success(out)
}

// Finally is the terminal fold: exactly one branch executes, producing the
// unified boundary type.
func Finally[In, Out any](ctx context.Context, input rail.Result[In],
	onSuccess func(ctx context.Context, value In) Out,
	onFailure func(ctx context.Context, errs fail.List) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return onFailure(ctx, input.Errors())
}
