// Package raillog provides zerolog-backed tap helpers for railway
// pipelines. The core combinators stay logging-free; callers opt in by
// inserting these side effects through Tap/TapError.
package raillog
