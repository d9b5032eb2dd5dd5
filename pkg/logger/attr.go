package logger

import (
	"log/slog"
	"sort"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// ActionType records the dispatched action type under the key "action_type".
func ActionType(typ string) slog.Attr {
	return slog.String("action_type", typ)
}

// ActionID records the dispatch identifier under the key "action_id".
// If id is nil, it returns an empty Attr.
func ActionID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("action_id", id)
}

// Duck records the duck name under the key "duck".
func Duck(name string) slog.Attr {
	return slog.String("duck", name)
}

// Machine records a machine name and its state under the key "machine".
func Machine(name, state string) slog.Attr {
	return slog.Group("machine", slog.String("name", name), slog.String("state", state))
}

// ValidationErrors groups failure messages by field path under the key
// "validation_errors". Keys are sorted; an empty map yields an empty Attr.
func ValidationErrors(fields map[string][]string) slog.Attr {
	if len(fields) == 0 {
		return slog.Attr{}
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]slog.Attr, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, fields[k]))
	}
	return slog.Attr{Key: "validation_errors", Value: slog.GroupValue(attrs...)}
}
