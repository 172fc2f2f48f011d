package display

import (
	"io"
	"reflect"
)

// unmounted reports whether w is nil, including a nil pointer stored in the
// interface such as (*bytes.Buffer)(nil).
func unmounted(w io.Writer) bool {
	if w == nil {
		return true
	}
	v := reflect.ValueOf(w)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
