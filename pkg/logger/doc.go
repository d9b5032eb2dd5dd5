// Package logger builds *slog.Logger values with functional options and provides
// attribute helpers with consistent keys for dispatch logging.
//
//	log := logger.New(
//	    logger.WithDevelopment("store"),
//	    logger.WithContextValue("action_id", actionIDKey),
//	)
//	log.InfoContext(ctx, "action dispatched", logger.ActionType(action.Type()))
//
// New picks slog.NewTextHandler or slog.NewJSONHandler from the configured format
// and wraps it in a ContextHandler which runs the registered ContextExtractor
// callbacks for every record. ParseLevel and ParseFormat convert configuration
// strings; they return ErrInvalidLevel and ErrInvalidFormat.
//
// Error and ActionID return an empty Attr for nil input, which slog drops, so
// callers can pass them without a nil check.
package logger
