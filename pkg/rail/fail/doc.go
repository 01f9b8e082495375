// Package fail defines the closed error taxonomy used on the failure track
// of a railway pipeline.
//
// An Error is an immutable (kind, code, message) value with an optional
// field tag for validation reporting. A List aggregates several errors in
// insertion order, which is how multi-field validation reports every
// violation in one response instead of stopping at the first.
//
// Key operations:
// - NewValidation/NewNotFound/NewConflict/NewUnauthorized/NewUnexpected:
//   per-kind factories with a fixed default code
// - WithCode/WithField: derive modified copies
// - List.Append/Merge: order-preserving aggregation
// - FromError: lift plain or joined errors into the taxonomy
package fail
