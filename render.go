package results

import (
	"fmt"
	"reflect"

	json "github.com/goccy/go-json"
)

// renderValue converts an arbitrary contained value into a diagnostic
// string. Errors, Stringers and scalars keep their natural textual
// form; composite values fall back to a structured JSON rendering,
// and keep the plain %v form when marshalling is impossible.
func renderValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "<nil>"
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	case string:
		return x
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array, reflect.Pointer:
		if b, err := json.Marshal(v); err == nil {
			return string(b)
		}
	}

	return fmt.Sprintf("%v", v)
}
