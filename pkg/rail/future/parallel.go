package future

import (
	"context"

	"github.com/xavierjohn/FunctionalDDD-sub013/pkg/rail"
)

// The Parallel helpers start every supplied function concurrently, await
// them all, and settle in call order. On failure they surface ONLY the
// first failure by call position, never a merge: merging belongs to
// solo.Combine, which works on already-evaluated results. Physical
// completion order does not influence which failure wins.

// Parallel2 runs two functions concurrently and pairs their values.
func Parallel2[A, B any](ctx context.Context,
	fa func(ctx context.Context) rail.Result[A],
	fb func(ctx context.Context) rail.Result[B]) rail.Result[rail.Pair[A, B]] {

	futA := Go(ctx, fa)
	futB := Go(ctx, fb)

	a := futA.Await(ctx)
	b := futB.Await(ctx)

	if a.IsFailure() {
		return rail.FailureFrom[A, rail.Pair[A, B]](a)
	}
	if b.IsFailure() {
		return rail.FailureFrom[B, rail.Pair[A, B]](b)
	}
	return rail.Success(rail.NewPair(a.Value(), b.Value()))
}

// Parallel3 runs three functions concurrently and triples their values.
func Parallel3[A, B, C any](ctx context.Context,
	fa func(ctx context.Context) rail.Result[A],
	fb func(ctx context.Context) rail.Result[B],
	fc func(ctx context.Context) rail.Result[C]) rail.Result[rail.Triple[A, B, C]] {

	futA := Go(ctx, fa)
	futB := Go(ctx, fb)
	futC := Go(ctx, fc)

	a := futA.Await(ctx)
	b := futB.Await(ctx)
	c := futC.Await(ctx)

	if a.IsFailure() {
		return rail.FailureFrom[A, rail.Triple[A, B, C]](a)
	}
	if b.IsFailure() {
		return rail.FailureFrom[B, rail.Triple[A, B, C]](b)
	}
	if c.IsFailure() {
		return rail.FailureFrom[C, rail.Triple[A, B, C]](c)
	}
	return rail.Success(rail.NewTriple(a.Value(), b.Value(), c.Value()))
}

// ParallelAll runs any number of same-typed functions concurrently. Success
// yields the values in call order; failure yields the first failure by call
// position.
func ParallelAll[T any](ctx context.Context,
	fs ...func(ctx context.Context) rail.Result[T]) rail.Result[[]T] {

	futs := make([]*Future[T], len(fs))
	for i, f := range fs {
		futs[i] = Go(ctx, f)
	}

	settled := make([]rail.Result[T], len(futs))
	for i, fut := range futs {
		settled[i] = fut.Await(ctx)
	}

	values := make([]T, 0, len(settled))
	for _, r := range settled {
		if r.IsFailure() {
			return rail.FailureFrom[T, []T](r)
		}
		values = append(values, r.Value())
	}
	return rail.Success(values)
}
