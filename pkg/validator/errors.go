package validator

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrValidationFailed is matched by errors.Is for any Errors value.
var ErrValidationFailed = errors.New("validation failed")

// Errors mirrors the shape of a payload. Values are either []string holding the
// failure messages of a field, or a nested Errors for a mapping field. A valid
// payload is always reported as nil, never as an empty Errors.
type Errors map[string]any

// Error lists every failing path with its messages. A nil or empty Errors
// reports valid input and formats as an empty string.
func (e Errors) Error() string {
	flat := e.Flatten()
	if len(flat) == 0 {
		return ""
	}

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(flat[k], ", ")))
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

func (e Errors) Is(target error) bool {
	return target == ErrValidationFailed
}

// Has reports whether the field at path failed validation.
func (e Errors) Has(path ...string) bool {
	return len(e.Get(path...)) > 0
}

// Get returns the messages for the field at path.
func (e Errors) Get(path ...string) []string {
	if len(path) == 0 {
		return nil
	}
	cur := e
	for i, key := range path {
		v, ok := cur[key]
		if !ok {
			return nil
		}
		if i == len(path)-1 {
			msgs, _ := v.([]string)
			return msgs
		}
		next, ok := v.(Errors)
		if !ok {
			return nil
		}
		cur = next
	}
	return nil
}

// Paths returns the path of every failing field, sorted.
func (e Errors) Paths() [][]string {
	var paths [][]string
	collectPaths(&paths, nil, e)
	sort.Slice(paths, func(i, j int) bool {
		return strings.Join(paths[i], "\x00") < strings.Join(paths[j], "\x00")
	})
	return paths
}

func collectPaths(paths *[][]string, prefix []string, e Errors) {
	for k, v := range e {
		path := append(append([]string{}, prefix...), k)
		switch v := v.(type) {
		case []string:
			*paths = append(*paths, path)
		case Errors:
			collectPaths(paths, path, v)
		}
	}
}

// Flatten returns failure messages keyed by dot-separated field path.
func (e Errors) Flatten() map[string][]string {
	out := make(map[string][]string)
	flatten(out, "", e)
	return out
}

func flatten(out map[string][]string, prefix string, e Errors) {
	for k, v := range e {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch v := v.(type) {
		case []string:
			out[key] = v
		case Errors:
			flatten(out, key, v)
		}
	}
}

// ExtractErrors returns the Errors wrapped in err, if any.
func ExtractErrors(err error) Errors {
	if err == nil {
		return nil
	}
	var e Errors
	if errors.As(err, &e) {
		return e
	}
	return nil
}

func IsValidationError(err error) bool {
	return ExtractErrors(err) != nil
}
