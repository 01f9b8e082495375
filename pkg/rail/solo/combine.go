package solo

import (
	"context"

	"github.com/xavierjohn/FunctionalDDD-sub013/pkg/rail"
	"github.com/xavierjohn/FunctionalDDD-sub013/pkg/rail/fail"
)

// Combine gathers two independently evaluated results. Both failure lists
// are concatenated in argument order; this is the one place errors
// accumulate instead of short-circuiting. On double success the values are
// paired.
func Combine[A, B any](a rail.Result[A], b rail.Result[B]) rail.Result[rail.Pair[A, B]] {
	if a.IsFailure() || b.IsFailure() {
		return rail.FailureList[rail.Pair[A, B]](mergeFailures(failuresOf(a), failuresOf(b)))
	}
	return rail.Success(rail.NewPair(a.Value(), b.Value()))
}

// Combine3 is Combine over three results.
func Combine3[A, B, C any](a rail.Result[A], b rail.Result[B], c rail.Result[C]) rail.Result[rail.Triple[A, B, C]] {
	if a.IsFailure() || b.IsFailure() || c.IsFailure() {
		return rail.FailureList[rail.Triple[A, B, C]](mergeFailures(failuresOf(a), failuresOf(b), failuresOf(c)))
	}
	return rail.Success(rail.NewTriple(a.Value(), b.Value(), c.Value()))
}

// CombineAll gathers any number of same-typed results, merging all failure
// lists in argument order or succeeding with the values in argument order.
func CombineAll[T any](results ...rail.Result[T]) rail.Result[[]T] {
	var errs fail.List
	values := make([]T, 0, len(results))

	for _, r := range results {
		if r.IsFailure() {
			errs = errs.Append(r.Errors()...)
		} else {
			values = append(values, r.Value())
		}
	}

	if len(errs) > 0 {
		return rail.FailureList[[]T](errs)
	}
	return rail.Success(values)
}

// ValidateAll runs every validator against the successful input value and
// merges all failures in validator order, so one pass reports every
// violated rule. A failed input short-circuits: no validator runs.
func ValidateAll[T any](ctx context.Context, input rail.Result[T],
	validators ...func(ctx context.Context, value T) rail.Result[T]) rail.Result[T] {

	if input.IsFailure() {
		return input
	}

	var errs fail.List
	for _, validate := range validators {
		if checked := validate(ctx, input.Value()); checked.IsFailure() {
			errs = errs.Append(checked.Errors()...)
		}
	}

	if len(errs) > 0 {
		return rail.FailureList[T](errs)
	}
	return input
}

func failuresOf[T any](r rail.Result[T]) fail.List {
	if r.IsFailure() {
		return r.Errors()
	}
	return nil
}

func mergeFailures(lists ...fail.List) fail.List {
	var out fail.List
	for _, l := range lists {
		out = out.Append(l...)
	}
	return out
}
