package duck

import "errors"

// ErrInvalidPayload is returned when an action cannot be decoded into a typed payload.
var ErrInvalidPayload = errors.New("invalid action payload")
