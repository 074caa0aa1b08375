// Package nilcheck detects nil dependencies, including typed nils held in interfaces.
package nilcheck

import "reflect"

// IsNil reports whether v is nil or a typed nil pointer, map, slice, func, chan or interface.
// Values of any other kind, such as structs, are never nil.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
