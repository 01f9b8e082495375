package rail

import (
	"reflect"
)

// IsNil reports whether i is nil or a typed nil pointer. Used by the
// Success/Some constructors to reject present-but-nil values.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
