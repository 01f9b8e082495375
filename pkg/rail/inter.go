package rail

import (
	"time"

	"github.com/xavierjohn/FunctionalDDD-sub013/pkg/rail/fail"
)

// ValueProvider abstracts the success side of a Result.
type ValueProvider[T any] interface {
	// Value returns the successful value
	Value() T
	// CreatedAt time of creation (UTC)
	CreatedAt() time.Time
}

// WithErrors abstracts over types that are either a value or a failure list.
type WithErrors[T any] interface {
	ValueProvider[T]
	// Errors returns the failure list if the operation failed
	Errors() fail.List
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

var _ WithErrors[int] = Result[int]{}
