// Package domain provides the tactical DDD base types: value objects with
// structural equality over an ordered component sequence, entities with
// Id-based identity, and aggregates that collect uncommitted domain events
// for an external persistence boundary.
//
// Validated construction follows the TryCreate convention: a concrete value
// object exposes a factory returning rail.Result so invalid raw input never
// produces an instance.
package domain
