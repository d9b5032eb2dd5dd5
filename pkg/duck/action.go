package duck

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Action is a dispatched action: a plain mapping carrying its type under "type".
type Action map[string]any

// NewAction builds an action of the given type with extra fields.
// A "type" entry in fields is overridden by typ.
func NewAction(typ string, fields map[string]any) Action {
	a := make(Action, len(fields)+1)
	for k, v := range fields {
		a[k] = v
	}
	a["type"] = typ
	return a
}

// Type returns the action type, or "" when missing or not a string.
func (a Action) Type() string {
	typ, _ := a["type"].(string)
	return typ
}

// DecodePayload decodes the fields of action into out, a pointer to a struct
// using `mapstructure` tags. Numeric strings and similar loose input are converted.
func DecodePayload(action Action, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	if err := dec.Decode(map[string]any(action)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return nil
}
