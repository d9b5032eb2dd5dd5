package store

import "errors"

var (
	ErrNilDuck         = errors.New("store requires a duck")
	ErrEmptyActionType = errors.New("action type is required")
	ErrActionRejected  = errors.New("action rejected")
	ErrInvalidConfig   = errors.New("invalid store config")
)
