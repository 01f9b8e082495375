// Package future provides asynchronous railway composition over pending
// results.
//
// A Future[T] is a Result[T] that settles once; Await is repeatable and
// always observes the same settled value. Bind/Map/Tap/Ensure sequence
// steps strictly: a later step only starts once its awaited predecessor
// completes, so chaining adds no implicit parallelism.
//
// Parallel2/Parallel3/ParallelAll are the only fan-out constructs. They
// start all supplied functions immediately, await them all, and on failure
// surface only the first failure by call order. No cancellation is threaded
// implicitly; callers propagate their context into each supplied function.
package future
