package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type user struct {
	Entity[string]
	name string
}

func newUser(id, name string) *user {
	return &user{Entity: NewEntity(id), name: name}
}

type robot struct {
	Entity[string]
}

func TestSameIdentity_EqualIdsSameType(t *testing.T) {
	t.Parallel()

	a := newUser("u-1", "Alice")
	b := newUser("u-1", "completely different name")

	assert.True(t, SameIdentity[string](a, b),
		"identity equality ignores non-Id fields")
}

func TestSameIdentity_DifferentIds(t *testing.T) {
	t.Parallel()

	a := newUser("u-1", "Alice")
	b := newUser("u-2", "Alice")

	assert.False(t, SameIdentity[string](a, b))
}

func TestSameIdentity_DefaultIdNeverMatches(t *testing.T) {
	t.Parallel()

	a := newUser("", "Alice")
	b := newUser("", "Alice")
	c := newUser("u-1", "Alice")

	assert.False(t, SameIdentity[string](a, b), "two unassigned identities are not equal")
	assert.False(t, SameIdentity[string](a, c))
	assert.False(t, SameIdentity[string](c, a))
}

func TestSameIdentity_ReferenceEqualityShortCircuits(t *testing.T) {
	t.Parallel()

	a := newUser("", "Alice")
	assert.True(t, SameIdentity[string](a, a),
		"an entity equals itself even before its Id is assigned")
}

func TestSameIdentity_ConcreteTypeMatters(t *testing.T) {
	t.Parallel()

	u := newUser("id-1", "Alice")
	r := &robot{Entity: NewEntity("id-1")}

	assert.False(t, SameIdentity[string](u, r),
		"equal Ids across different concrete types are not the same entity")
}

// journal satisfies Identifiable through value receivers while its events
// slice makes the dynamic type non-comparable.
type journal struct {
	Aggregate[string]
}

func TestSameIdentity_NonComparableConcreteType(t *testing.T) {
	t.Parallel()

	a := journal{Aggregate: NewAggregate("j-1")}
	b := journal{Aggregate: NewAggregate("j-1")}
	c := journal{Aggregate: NewAggregate("j-2")}

	assert.NotPanics(t, func() { SameIdentity[string](a, b) })
	assert.True(t, SameIdentity[string](a, b))
	assert.False(t, SameIdentity[string](a, c))
	assert.False(t, SameIdentity[string](journal{}, journal{}),
		"unassigned identities never match")
}

func TestSameIdentity_Nil(t *testing.T) {
	t.Parallel()

	a := newUser("u-1", "Alice")
	assert.False(t, SameIdentity[string](a, nil))
	assert.False(t, SameIdentity[string](nil, a))
}

func TestHasIdentity(t *testing.T) {
	t.Parallel()

	assert.False(t, newUser("", "x").HasIdentity())
	assert.True(t, newUser("u-9", "x").HasIdentity())
	assert.Equal(t, "u-9", newUser("u-9", "x").ID())
}
