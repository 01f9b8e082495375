package domain

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is something that happened in the domain that the rest of the
// system may need to react to. Events are recorded by aggregates and read
// by the persistence boundary.
type DomainEvent interface {
	// EventName is a stable identifier used for routing
	EventName() string
	// OccurredAt is the UTC instant the event was recorded
	OccurredAt() time.Time
	// AggregateID identifies the aggregate that recorded the event
	AggregateID() string
}

// BaseEvent carries the common event fields; concrete events embed it.
type BaseEvent struct {
	id          uuid.UUID
	name        string
	aggregateID string
	occurredAt  time.Time
}

// NewBaseEvent stamps a fresh event with a unique id and UTC time.
func NewBaseEvent(name, aggregateID string) BaseEvent {
	return BaseEvent{
		id:          uuid.New(),
		name:        name,
		aggregateID: aggregateID,
		occurredAt:  time.Now().UTC(),
	}
}

func (e BaseEvent) EventID() uuid.UUID    { return e.id }
func (e BaseEvent) EventName() string     { return e.name }
func (e BaseEvent) AggregateID() string   { return e.aggregateID }
func (e BaseEvent) OccurredAt() time.Time { return e.occurredAt }
