package chain

import (
	"context"

	"github.com/xavierjohn/FunctionalDDD-sub013/pkg/rail"
	"github.com/xavierjohn/FunctionalDDD-sub013/pkg/rail/fail"
	"github.com/xavierjohn/FunctionalDDD-sub013/pkg/rail/solo"
)

// Chain wraps a rail.Result with context to enable fluent composition.
type Chain[T any] struct {
	ctx context.Context
	res rail.Result[T]
}

// Start creates a new chain from a rail.Result.
func Start[T any](ctx context.Context, result rail.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: result}
}

// FromValue creates a new chain from a successful value.
func FromValue[T any](ctx context.Context, value T) Chain[T] {
	return Start(ctx, rail.Success(value))
}

// Result returns the underlying rail.Result.
func (c Chain[T]) Result() rail.Result[T] {
	return c.res
}

// Then composes a function that already returns rail.Result[T].
func (c Chain[T]) Then(onSuccess func(ctx context.Context, value T) rail.Result[T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Bind(c.ctx, c.res, onSuccess)}
}

// ThenTry composes a function that returns (T, error), like repo calls.
func (c Chain[T]) ThenTry(try func(ctx context.Context, value T) (T, error)) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Try(c.ctx, c.res, try)}
}

// Map transforms the successful value to a new value of the same type.
func (c Chain[T]) Map(onSuccess func(ctx context.Context, value T) T) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Map(c.ctx, c.res, onSuccess)}
}

// Ensure fails the chain with e when the predicate rejects the value.
func (c Chain[T]) Ensure(predicate func(ctx context.Context, value T) bool, e fail.Error) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Ensure(c.ctx, c.res, predicate, e)}
}

// Tap runs a side effect on success without changing the result.
func (c Chain[T]) Tap(onSuccess func(ctx context.Context, value T)) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Tap(c.ctx, c.res, onSuccess)}
}

// TapError runs a side effect on failure without changing the result.
func (c Chain[T]) TapError(onFailure func(ctx context.Context, errs fail.List)) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.TapError(c.ctx, c.res, onFailure)}
}

// Finally collapses the chain into a final value using solo.Finally.
func (c Chain[T]) Finally(onSuccess func(ctx context.Context, value T) T,
	onFailure func(ctx context.Context, errs fail.List) T) T {
	return solo.Finally(c.ctx, c.res, onSuccess, onFailure)
}

// Then chains a function that changes the value type. Type-changing steps
// are package functions because methods cannot add type parameters.
func Then[T, U any](c Chain[T], onSuccess func(ctx context.Context, value T) rail.Result[U]) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.Bind(c.ctx, c.res, onSuccess)}
}

// ThenTry chains a type-changing function that returns (U, error).
func ThenTry[T, U any](c Chain[T], try func(ctx context.Context, value T) (U, error)) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.Try(c.ctx, c.res, try)}
}

// Map chains a type-changing pure transformation.
func Map[T, U any](c Chain[T], onSuccess func(ctx context.Context, value T) U) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.Map(c.ctx, c.res, onSuccess)}
}

// Finally collapses the chain into a final value of any type.
func Finally[T, U any](c Chain[T], onSuccess func(ctx context.Context, value T) U,
	onFailure func(ctx context.Context, errs fail.List) U) U {
	return solo.Finally(c.ctx, c.res, onSuccess, onFailure)
}
