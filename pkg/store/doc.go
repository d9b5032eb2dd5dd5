// Package store is a minimal host for ducks: it keeps application state,
// reduces dispatched actions with a duck and notifies subscribers.
//
//	d := duck.Create(duck.Spec[State]{...})
//	st := store.MustNew(d,
//	    store.WithMiddleware[State](store.RejectInvalid(d.Validate)),
//	)
//	err := st.Dispatch(ctx, duck.NewAction(d.Types["FETCH"], nil))
//
// Middleware wraps the dispatch chain in registration order. LogValidation,
// RejectInvalid and PruneInvalid connect a duck's validators to dispatch;
// WithConfig enables them from a Config loaded with LoadConfig (DUCKS_LOG_LEVEL,
// DUCKS_LOG_FORMAT, DUCKS_LOG_VALIDATION, DUCKS_REJECT_INVALID,
// DUCKS_PRUNE_INVALID).
//
// Reductions are serialized under a mutex and subscribers are called after the
// lock is released, with the state produced by that dispatch.
package store
