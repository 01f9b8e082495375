// Package chain provides a fluent wrapper around Result[T] for building
// synchronous railway pipelines using solo primitives.
//
// It composes Bind, Map, Try, Tap, Ensure, and Finally behind a convenient
// Chain[T] type. This enables ergonomic pipelines without dealing directly
// with branching results at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map: transform the successful value
// - Ensure: fail on a rejected value
// - Tap/TapError: run side effects without changing the result
// - Finally: collapse the chain into a final value via handlers
//
// Same-type steps are methods; type-changing steps are the package-level
// Then/ThenTry/Map/Finally functions.
package chain
