package raillog

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/xavierjohn/FunctionalDDD-sub013/pkg/rail"
	"github.com/xavierjohn/FunctionalDDD-sub013/pkg/rail/fail"
)

// Tap logs the outcome of op and passes the result through unchanged.
// Success logs at debug, failure at warn with the full error list.
func Tap[T any](ctx context.Context, input rail.Result[T], logger *zerolog.Logger, op string) rail.Result[T] {
	if input.IsSuccess() {
		logger.Debug().
			Ctx(ctx).
			Str("op", op).
			Time("created_at", input.CreatedAt()).
			Msg("operation succeeded")
		return input
	}

	logger.Warn().
		Ctx(ctx).
		Str("op", op).
		Array("errors", errorsArray(input.Errors())).
		Msg("operation failed")
	return input
}

// Success returns a solo.Tap-compatible side effect logging at debug.
func Success[T any](logger *zerolog.Logger, op string) func(ctx context.Context, value T) {
	return func(ctx context.Context, _ T) {
		logger.Debug().Ctx(ctx).Str("op", op).Msg("operation succeeded")
	}
}

// Failure returns a solo.TapError-compatible side effect logging at warn.
func Failure(logger *zerolog.Logger, op string) func(ctx context.Context, errs fail.List) {
	return func(ctx context.Context, errs fail.List) {
		logger.Warn().Ctx(ctx).Str("op", op).Array("errors", errorsArray(errs)).Msg("operation failed")
	}
}

func errorsArray(errs fail.List) *zerolog.Array {
	arr := zerolog.Arr()
	for _, e := range errs {
		d := zerolog.Dict().
			Str("kind", e.Kind().String()).
			Str("code", e.Code()).
			Str("message", e.Message())
		if e.Field() != "" {
			d = d.Str("field", e.Field())
		}
		arr = arr.Dict(d)
	}
	return arr
}
