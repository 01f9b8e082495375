package domain

import (
	"reflect"
)

// Identifiable is implemented by entities exposing their identity.
type Identifiable[ID comparable] interface {
	ID() ID
}

// Entity is the embeddable identity base. Equality is by Id only, never by
// other fields; an unassigned (zero) Id never matches anything.
type Entity[ID comparable] struct {
	id ID
}

// NewEntity builds the identity base for embedding in a concrete entity.
func NewEntity[ID comparable](id ID) Entity[ID] {
	return Entity[ID]{id: id}
}

// ID returns the entity's identity.
func (e Entity[ID]) ID() ID {
	return e.id
}

// HasIdentity reports whether the Id has been assigned.
func (e Entity[ID]) HasIdentity() bool {
	var zero ID
	return e.id != zero
}

// SameIdentity reports entity equality: same concrete type and equal
// non-zero Ids. For comparable dynamic types reference equality
// short-circuits to true, so an entity always equals itself even before
// its Id is assigned.
func SameIdentity[ID comparable](a, b Identifiable[ID]) bool {
	if a == nil || b == nil {
		return false
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}
	if ta.Comparable() && a == b {
		return true
	}
	var zero ID
	if a.ID() == zero || b.ID() == zero {
		return false
	}
	return a.ID() == b.ID()
}
