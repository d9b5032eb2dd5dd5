package validator

import (
	"reflect"

	"github.com/dmitrymomot/ducks/pkg/sanitizer"
)

// Prune returns a deep copy of payload with every field that fails validation
// deleted. Containing mappings are kept even when they end up empty; the payload
// itself is never modified.
func Prune(schemas Schemas, payload map[string]any, opts ...Option) map[string]any {
	if payload == nil {
		return nil
	}
	out := sanitizer.CloneMap(payload)
	if errs := Validate(schemas, payload, opts...); errs != nil {
		removeFailing(reflect.ValueOf(out), errs)
	}
	return out
}

// MakePruner returns a function pruning invalid fields from payloads.
func MakePruner(schemas Schemas, opts ...Option) func(payload map[string]any) map[string]any {
	return func(payload map[string]any) map[string]any {
		return Prune(schemas, payload, opts...)
	}
}

func removeFailing(values reflect.Value, errs Errors) {
	for name, e := range errs {
		switch e := e.(type) {
		case []string:
			values.SetMapIndex(mapKey(values, name), reflect.Value{})
		case Errors:
			v, _ := field(values, name)
			if nested, ok := mapping(v); ok {
				removeFailing(nested, e)
			}
		}
	}
}
