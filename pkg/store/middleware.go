package store

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/ducks/pkg/duck"
	"github.com/dmitrymomot/ducks/pkg/logger"
	"github.com/dmitrymomot/ducks/pkg/sanitizer"
	"github.com/dmitrymomot/ducks/pkg/validator"
)

// LogValidation logs validation failures and lets the action through unchanged.
func LogValidation(validate func(duck.Action) validator.Errors, log *slog.Logger) Middleware {
	if log == nil {
		log = logger.Discard()
	}
	return func(next Dispatcher) Dispatcher {
		return func(ctx context.Context, action duck.Action) error {
			if errs := validate(action); errs != nil {
				log.WarnContext(ctx, "action payload failed validation",
					logger.ActionType(action.Type()),
					logger.ValidationErrors(errs.Flatten()),
				)
			}
			return next(ctx, action)
		}
	}
}

// RejectInvalid stops actions failing validation. The returned error matches
// ErrActionRejected and carries the validator.Errors.
func RejectInvalid(validate func(duck.Action) validator.Errors) Middleware {
	return func(next Dispatcher) Dispatcher {
		return func(ctx context.Context, action duck.Action) error {
			if errs := validate(action); errs != nil {
				return errors.Join(ErrActionRejected, errs)
			}
			return next(ctx, action)
		}
	}
}

// Transform passes every action through transforms before it is reduced.
func Transform(transforms ...func(duck.Action) duck.Action) Middleware {
	apply := sanitizer.Compose(transforms...)
	return func(next Dispatcher) Dispatcher {
		return func(ctx context.Context, action duck.Action) error {
			return next(ctx, apply(action))
		}
	}
}

// PruneInvalid removes invalid fields from actions before they are reduced.
func PruneInvalid(prune func(duck.Action) duck.Action) Middleware {
	return Transform(prune)
}
