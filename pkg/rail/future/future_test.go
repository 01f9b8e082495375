package future

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierjohn/FunctionalDDD-sub013/pkg/rail"
	"github.com/xavierjohn/FunctionalDDD-sub013/pkg/rail/fail"
)

func TestGoAndAwait(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fut := Go(ctx, func(ctx context.Context) rail.Result[int] {
		return rail.Success(42)
	})

	out := fut.Await(ctx)
	require.True(t, out.IsSuccess())
	assert.Equal(t, 42, out.Value())
}

func TestAwait_Repeatable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var runs int32
	fut := Go(ctx, func(ctx context.Context) rail.Result[int] {
		atomic.AddInt32(&runs, 1)
		return rail.Success(1)
	})

	first := fut.Await(ctx)
	second := fut.Await(ctx)

	assert.Equal(t, first.Value(), second.Value())
	assert.Equal(t, int32(1), atomic.LoadInt32(&runs), "producer must run once")
}

func TestAwait_ContextEnd(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fut := Go(context.Background(), func(ctx context.Context) rail.Result[int] {
		time.Sleep(50 * time.Millisecond)
		return rail.Success(1)
	})

	out := fut.Await(ctx)
	require.True(t, out.IsFailure())
	assert.Equal(t, fail.Unexpected, out.FirstError().Kind())
}

func TestFromResult_AlreadySettled(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fut := FromResult(rail.Success("x"))
	assert.True(t, fut.IsSettled())
	assert.Equal(t, "x", fut.Await(ctx).Value())
}

func TestBind_SequentialOrdering(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var order []string
	first := Go(ctx, func(ctx context.Context) rail.Result[int] {
		time.Sleep(20 * time.Millisecond)
		order = append(order, "first")
		return rail.Success(1)
	})

	second := Bind(ctx, first, func(ctx context.Context, v int) rail.Result[int] {
		order = append(order, "second")
		return rail.Success(v + 1)
	})

	out := second.Await(ctx)
	require.True(t, out.IsSuccess())
	assert.Equal(t, 2, out.Value())
	assert.Equal(t, []string{"first", "second"}, order,
		"a later step only starts once its predecessor settled")
}

func TestBind_ShortCircuit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	e := fail.NewNotFound("gone")
	first := FromResult(rail.Failure[int](e))

	called := false
	second := Bind(ctx, first, func(ctx context.Context, v int) rail.Result[string] {
		called = true
		return rail.Success("x")
	})

	out := second.Await(ctx)
	require.True(t, out.IsFailure())
	assert.True(t, out.FirstError().Equals(e))
	assert.False(t, called)
}

func TestMapAndTapAndEnsure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tapped := 0
	fut := Map(ctx, FromResult(rail.Success(5)), func(ctx context.Context, v int) int { return v * 2 })
	fut = Tap(ctx, fut, func(ctx context.Context, v int) { tapped = v })

	e := fail.NewValidation("too big")
	fut = Ensure(ctx, fut, func(ctx context.Context, v int) bool { return v < 100 }, e)

	out := fut.Await(ctx)
	require.True(t, out.IsSuccess())
	assert.Equal(t, 10, out.Value())
	assert.Equal(t, 10, tapped)

	rejected := Ensure(ctx, FromResult(rail.Success(500)),
		func(ctx context.Context, v int) bool { return v < 100 }, e).Await(ctx)
	require.True(t, rejected.IsFailure())
	assert.True(t, rejected.FirstError().Equals(e))
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := Finally(ctx, FromResult(rail.Success(3)),
		func(ctx context.Context, v int) string { return "ok" },
		func(ctx context.Context, errs fail.List) string { return "err" })
	assert.Equal(t, "ok", got)

	got = Finally(ctx, FromResult(rail.Failure[int](fail.NewConflict("c"))),
		func(ctx context.Context, v int) string { return "ok" },
		func(ctx context.Context, errs fail.List) string { return "err" })
	assert.Equal(t, "err", got)
}
