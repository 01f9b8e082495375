// Package rail defines the core railway types: Result[T], a discriminated
// success-or-failure value carrying a typed error list, and Maybe[T], an
// optional value convertible to Result given an error for the None case.
//
// Combinators over these types live in the subpackages: solo for
// synchronous function-style composition, chain for a fluent wrapper, and
// future for asynchronous composition and parallel fan-out.
package rail
