package domain

import (
	"fmt"
	"hash/fnv"
	"reflect"
	"strings"
	"sync"
	"time"
)

// ValueObject is a domain type whose identity is entirely defined by an
// ordered sequence of equality components. Implementations must be treated
// as immutable after construction: the component sequence may not change.
type ValueObject interface {
	EqualityComponents() []any
}

// Equal reports structural equality. The concrete type takes part in
// identity: instances of different types are never equal, even with
// identical components.
func Equal(a, b ValueObject) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}

	ca, cb := a.EqualityComponents(), b.EqualityComponents()
	if len(ca) != len(cb) {
		return false
	}
	for i := range ca {
		if !reflect.DeepEqual(ca[i], cb[i]) {
			return false
		}
	}
	return true
}

// Hash computes a structural hash consistent with Equal: equal value
// objects share a hash.
func Hash(v ValueObject) uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%T", v)
	for _, c := range v.EqualityComponents() {
		fmt.Fprintf(h, "|%v", c)
	}
	return h.Sum64()
}

// HashCache memoizes a value object's hash. Embed one by pointer access and
// call Hash through it; the hash is computed once, which is safe because
// components never mutate after construction.
type HashCache struct {
	once sync.Once
	hash uint64
}

func (hc *HashCache) Hash(v ValueObject) uint64 {
	hc.once.Do(func() {
		hc.hash = Hash(v)
	})
	return hc.hash
}

// Compare orders value objects lexicographically over their component
// sequences using each component's natural ordering; nil components sort
// before non-nil ones. Instances of different types order by type name so
// mixed collections still sort deterministically.
func Compare(a, b ValueObject) int {
	if ta, tb := fmt.Sprintf("%T", a), fmt.Sprintf("%T", b); ta != tb {
		return strings.Compare(ta, tb)
	}

	ca, cb := a.EqualityComponents(), b.EqualityComponents()
	n := len(ca)
	if len(cb) < n {
		n = len(cb)
	}
	for i := 0; i < n; i++ {
		if c := compareComponent(ca[i], cb[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(ca) < len(cb):
		return -1
	case len(ca) > len(cb):
		return 1
	default:
		return 0
	}
}

func compareComponent(a, b any) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}

	if av, ok := a.(time.Time); ok {
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv)
		}
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() == vb.Type() {
		switch va.Kind() {
		case reflect.String:
			return strings.Compare(va.String(), vb.String())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return compareOrdered(va.Int(), vb.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return compareOrdered(va.Uint(), vb.Uint())
		case reflect.Float32, reflect.Float64:
			return compareOrdered(va.Float(), vb.Float())
		case reflect.Bool:
			switch {
			case va.Bool() == vb.Bool():
				return 0
			case vb.Bool():
				return -1
			default:
				return 1
			}
		}
	}

	// mismatched or unordered component types fall back to a stable
	// textual ordering
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func compareOrdered[T int64 | uint64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
