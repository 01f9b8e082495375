package fail

import (
	"strings"
)

// List is an ordered collection of Errors attached to a failed result.
// Insertion order is preserved: it drives the order of entries in API error
// bodies and must stay deterministic.
//
// A List attached to a failure is never empty; that invariant is enforced
// at the failure construction site, not here.
type List []Error

// NewList builds a List from one or more errors.
func NewList(first Error, rest ...Error) List {
	l := make(List, 0, 1+len(rest))
	l = append(l, first)
	return append(l, rest...)
}

// Append returns a new List with errs added at the end. The receiver is not
// modified.
func (l List) Append(errs ...Error) List {
	out := make(List, 0, len(l)+len(errs))
	out = append(out, l...)
	return append(out, errs...)
}

// Merge concatenates two lists, preserving order: l first, then other.
func (l List) Merge(other List) List {
	return l.Append(other...)
}

// First returns the first error. Panics on an empty list, which only occurs
// through misuse.
func (l List) First() Error {
	return l[0]
}

// Has reports whether any error in the list is of the given kind.
func (l List) Has(kind Kind) bool {
	for _, e := range l {
		if e.kind == kind {
			return true
		}
	}
	return false
}

// Messages returns the messages in order.
func (l List) Messages() []string {
	out := make([]string, len(l))
	for i, e := range l {
		out[i] = e.message
	}
	return out
}

// Error implements the error interface by joining entries in order.
func (l List) Error() string {
	parts := make([]string, len(l))
	for i, e := range l {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "; ")
}

// FromError lifts a plain error into a List. Typed errors pass through
// unchanged; joined errors are flattened in order; anything else becomes a
// single Unexpected entry.
func FromError(err error) List {
	switch e := err.(type) {
	case nil:
		return nil
	case Error:
		return List{e}
	case List:
		return e
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out List
		for _, inner := range joined.Unwrap() {
			out = append(out, FromError(inner)...)
		}
		if len(out) > 0 {
			return out
		}
	}

	return List{NewUnexpected(err.Error())}
}
