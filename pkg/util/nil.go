package util

import "reflect"

// IsNil reports whether v boxes a nil value: a nil interface, or a typed
// nil pointer, map, slice, channel or function. Non-nilable kinds are
// never nil.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}
