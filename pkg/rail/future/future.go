package future

import (
	"context"

	"github.com/xavierjohn/FunctionalDDD-sub013/pkg/rail"
	"github.com/xavierjohn/FunctionalDDD-sub013/pkg/rail/fail"
)

// Future is a pending rail.Result. The producing goroutine runs once; Await
// can be called any number of times and always observes the same settled
// result.
type Future[T any] struct {
	done chan struct{}
	res  rail.Result[T]
}

// Go starts f on its own goroutine immediately and returns its future.
// A panic-free f is the caller's responsibility, as with any goroutine.
func Go[T any](ctx context.Context, f func(ctx context.Context) rail.Result[T]) *Future[T] {
	fut := &Future[T]{done: make(chan struct{})}
	go func() {
		fut.res = f(ctx)
		close(fut.done)
	}()
	return fut
}

// FromResult wraps an already-settled result.
func FromResult[T any](r rail.Result[T]) *Future[T] {
	fut := &Future[T]{done: make(chan struct{}), res: r}
	close(fut.done)
	return fut
}

// Await blocks until the future settles or ctx is done, whichever comes
// first. A context end surfaces as an Unexpected failure; the producing
// goroutine keeps running and its eventual result is dropped.
func (f *Future[T]) Await(ctx context.Context) rail.Result[T] {
	select {
	case <-f.done:
		return f.res
	case <-ctx.Done():
		return rail.Failure[T](fail.NewUnexpected(ctx.Err().Error()))
	}
}

// IsSettled reports whether the result is already available.
func (f *Future[T]) IsSettled() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Bind sequences a result-returning step after input settles. The step only
// starts once the awaited predecessor completes; a failure short-circuits
// without invoking onSuccess.
func Bind[In, Out any](ctx context.Context, input *Future[In],
	onSuccess func(ctx context.Context, value In) rail.Result[Out]) *Future[Out] {

	return Go(ctx, func(ctx context.Context) rail.Result[Out] {
		settled := input.Await(ctx)
		if settled.IsFailure() {
			return rail.FailureFrom[In, Out](settled)
		}
		return onSuccess(ctx, settled.Value())
	})
}

// Map transforms the successful value after input settles.
func Map[In, Out any](ctx context.Context, input *Future[In],
	onSuccess func(ctx context.Context, value In) Out) *Future[Out] {

	return Bind(ctx, input, func(ctx context.Context, value In) rail.Result[Out] {
		return rail.Success(onSuccess(ctx, value))
	})
}

// Tap runs a side effect on success after input settles, passing the
// settled result through unchanged.
func Tap[T any](ctx context.Context, input *Future[T],
	action func(ctx context.Context, value T)) *Future[T] {

	return Go(ctx, func(ctx context.Context) rail.Result[T] {
		settled := input.Await(ctx)
		if settled.IsSuccess() {
			action(ctx, settled.Value())
		}
		return settled
	})
}

// Ensure fails the settled value with e when the predicate rejects it.
func Ensure[T any](ctx context.Context, input *Future[T],
	predicate func(ctx context.Context, value T) bool, e fail.Error) *Future[T] {

	return Go(ctx, func(ctx context.Context) rail.Result[T] {
		settled := input.Await(ctx)
		if settled.IsSuccess() && !predicate(ctx, settled.Value()) {
			return rail.Failure[T](e)
		}
		return settled
	})
}

// Finally awaits input and collapses it into a final value. Exactly one
// branch executes.
func Finally[In, Out any](ctx context.Context, input *Future[In],
	onSuccess func(ctx context.Context, value In) Out,
	onFailure func(ctx context.Context, errs fail.List) Out) Out {

	settled := input.Await(ctx)
	if settled.IsSuccess() {
		return onSuccess(ctx, settled.Value())
	}
	return onFailure(ctx, settled.Errors())
}
