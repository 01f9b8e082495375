package domain

// Aggregate is the embeddable base for aggregate roots: an Entity that
// additionally collects uncommitted domain events. Domain methods record
// events as they mutate state; the repository reads them after persisting
// and calls AcceptChanges.
//
// The event list is not safe for concurrent mutation of the same instance;
// single-writer discipline is assumed, consistent with aggregate-per-request
// usage.
type Aggregate[ID comparable] struct {
	Entity[ID]
	events []DomainEvent
}

// NewAggregate builds the aggregate base for embedding.
func NewAggregate[ID comparable](id ID) Aggregate[ID] {
	return Aggregate[ID]{Entity: NewEntity(id)}
}

// RecordEvent appends an event to the uncommitted list in call order.
func (a *Aggregate[ID]) RecordEvent(e DomainEvent) {
	a.events = append(a.events, e)
}

// UncommittedEvents returns a snapshot of the recorded events in insertion
// order. The snapshot is unaffected by later mutations.
func (a *Aggregate[ID]) UncommittedEvents() []DomainEvent {
	out := make([]DomainEvent, len(a.events))
	copy(out, a.events)
	return out
}

// AcceptChanges clears the uncommitted events, typically after the
// persistence boundary has durably stored them.
func (a *Aggregate[ID]) AcceptChanges() {
	a.events = nil
}

// IsChanged reports whether any events are pending.
func (a *Aggregate[ID]) IsChanged() bool {
	return len(a.events) > 0
}
