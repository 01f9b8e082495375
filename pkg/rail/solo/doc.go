// Package solo contains single-value, synchronous railway primitives that
// operate on rail.Result[T]. These functions form the core building blocks
// for error-aware pipelines without channels.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Bind: sequence result-returning steps, short-circuiting on failure
// - Map: transform successful values
// - Ensure/EnsureWith: turn rejected values into failures
// - Tap/TapError/TapBoth: side-effect helpers
// - Try: call a function (Out, error) and convert error to failure
// - Combine/Combine3/CombineAll: merge independently evaluated results,
//   accumulating every failure in order
// - ValidateAll: report all violated rules for one value in one pass
// - Finally: reduce to a concrete value via success/failure handlers
package solo
