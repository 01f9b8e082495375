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

func TestParallel2_BothSucceed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Parallel2(ctx,
		func(ctx context.Context) rail.Result[int] { return rail.Success(1) },
		func(ctx context.Context) rail.Result[string] { return rail.Success("a") })

	require.True(t, out.IsSuccess())
	assert.Equal(t, rail.NewPair(1, "a"), out.Value())
}

func TestParallel2_StartsConcurrently(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var running int32
	bothRunning := make(chan struct{})

	waitForPeer := func(ctx context.Context) rail.Result[int] {
		if atomic.AddInt32(&running, 1) == 2 {
			close(bothRunning)
		}
		select {
		case <-bothRunning:
			return rail.Success(1)
		case <-time.After(2 * time.Second):
			return rail.Failure[int](fail.NewUnexpected("peer never started"))
		}
	}

	out := Parallel2(ctx, waitForPeer, waitForPeer)
	require.True(t, out.IsSuccess(), "both functions must run concurrently")
}

func TestParallel3_MiddleFailureOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	e2 := fail.NewValidation("f2 failed")
	out := Parallel3(ctx,
		func(ctx context.Context) rail.Result[int] { return rail.Success(1) },
		func(ctx context.Context) rail.Result[string] { return rail.Failure[string](e2) },
		func(ctx context.Context) rail.Result[bool] { return rail.Success(true) })

	require.True(t, out.IsFailure())
	require.Len(t, out.Errors(), 1, "parallel must not merge failures")
	assert.True(t, out.FirstError().Equals(e2))
}

func TestParallelAll_FirstByCallOrderWins(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	eSlow := fail.NewValidation("slow failure, first position")
	eFast := fail.NewValidation("fast failure, last position")

	out := ParallelAll(ctx,
		func(ctx context.Context) rail.Result[int] {
			time.Sleep(50 * time.Millisecond)
			return rail.Failure[int](eSlow)
		},
		func(ctx context.Context) rail.Result[int] { return rail.Success(2) },
		func(ctx context.Context) rail.Result[int] { return rail.Failure[int](eFast) })

	require.True(t, out.IsFailure())
	require.Len(t, out.Errors(), 1)
	assert.True(t, out.FirstError().Equals(eSlow),
		"the first failure by call order wins even when a later one settles first")
}

func TestParallelAll_SuccessKeepsCallOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := ParallelAll(ctx,
		func(ctx context.Context) rail.Result[int] {
			time.Sleep(30 * time.Millisecond)
			return rail.Success(1)
		},
		func(ctx context.Context) rail.Result[int] { return rail.Success(2) },
		func(ctx context.Context) rail.Result[int] { return rail.Success(3) })

	require.True(t, out.IsSuccess())
	assert.Equal(t, []int{1, 2, 3}, out.Value(),
		"values follow call order, not completion order")
}

func TestParallelAll_Empty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := ParallelAll[int](ctx)
	require.True(t, out.IsSuccess())
	assert.Empty(t, out.Value())
}
