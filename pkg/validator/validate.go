package validator

import "reflect"

// Validate checks payload against the schema registered for its type.
// It returns nil when the type has no schema or every present field passes.
//
// Fields absent from the payload are not evaluated. Branch nodes whose payload
// value is not a mapping are skipped.
func Validate(schemas Schemas, payload map[string]any, opts ...Option) Errors {
	root, ok := schemas.For(payload)
	if !ok || root.IsLeaf() {
		return nil
	}
	o := newOptions(opts)
	return validateFields(root.fields, reflect.ValueOf(payload), o)
}

// MakeValidator returns a function validating payloads against schemas.
func MakeValidator(schemas Schemas, opts ...Option) func(payload map[string]any) Errors {
	return func(payload map[string]any) Errors {
		return Validate(schemas, payload, opts...)
	}
}

func validateFields(fields map[string]Node, values reflect.Value, o options) Errors {
	var errs Errors
	for name, node := range fields {
		value, present := field(values, name)
		if !present {
			continue
		}

		var result any
		if node.IsLeaf() {
			if msgs := check(node.rules, value, o); len(msgs) > 0 {
				result = msgs
			}
		} else if nested, ok := mapping(value); ok {
			if sub := validateFields(node.fields, nested, o); sub != nil {
				result = sub
			}
		}

		if result != nil {
			if errs == nil {
				errs = make(Errors)
			}
			errs[name] = result
		}
	}
	return errs
}

func check(rules []Rule, value any, o options) []string {
	var msgs []string
	for _, r := range rules {
		if r.Check == nil || r.Check(value) {
			continue
		}
		msgs = append(msgs, r.Message)
		if !o.allFailures {
			break
		}
	}
	return msgs
}

// mapping reports whether v is a map with string keys, whatever its concrete type.
func mapping(v any) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return reflect.Value{}, false
	}
	return rv, true
}

func field(m reflect.Value, name string) (any, bool) {
	v := m.MapIndex(mapKey(m, name))
	if !v.IsValid() {
		return nil, false
	}
	return v.Interface(), true
}

func mapKey(m reflect.Value, name string) reflect.Value {
	return reflect.ValueOf(name).Convert(m.Type().Key())
}
