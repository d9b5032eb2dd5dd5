package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/ducks/pkg/duck"
	"github.com/dmitrymomot/ducks/pkg/logger"
)

// Dispatcher delivers an action to the next stage of the dispatch chain.
type Dispatcher func(ctx context.Context, action duck.Action) error

// Middleware wraps a Dispatcher. Middleware registered first runs first.
type Middleware func(next Dispatcher) Dispatcher

// Store holds application state and reduces dispatched actions with a duck.
// It is safe for concurrent use; reductions are serialized.
type Store[S any] struct {
	duck       *duck.Duck[S]
	log        *slog.Logger
	middleware []Middleware
	dispatch   Dispatcher

	mu        sync.RWMutex
	state     S
	listeners map[string]func(S)
}

// New creates a store reducing actions with d, starting from d.InitialState.
func New[S any](d *duck.Duck[S], opts ...Option[S]) (*Store[S], error) {
	if d == nil {
		return nil, ErrNilDuck
	}

	s := &Store[S]{
		duck:      d,
		log:       logger.Discard(),
		state:     d.InitialState,
		listeners: make(map[string]func(S)),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	s.dispatch = s.reduce
	for i := len(s.middleware) - 1; i >= 0; i-- {
		s.dispatch = s.middleware[i](s.dispatch)
	}
	return s, nil
}

// MustNew is like New but panics on error.
func MustNew[S any](d *duck.Duck[S], opts ...Option[S]) *Store[S] {
	s, err := New(d, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create store: %v", err))
	}
	return s
}

// Dispatch runs action through the middleware chain and the duck's reducer,
// then notifies subscribers. Every dispatch gets an id available through
// ActionIDFromContext; loggers built with ActionIDExtractor record it.
func (s *Store[S]) Dispatch(ctx context.Context, action duck.Action) error {
	if action.Type() == "" {
		return ErrEmptyActionType
	}

	id := uuid.NewString()
	ctx = context.WithValue(ctx, actionIDKey{}, id)
	log := s.log.With(logger.ActionType(action.Type()))

	if err := s.dispatch(ctx, action); err != nil {
		log.WarnContext(ctx, "action not applied", logger.Error(err))
		return err
	}
	log.DebugContext(ctx, "action applied")
	return nil
}

// State returns the current state.
func (s *Store[S]) State() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers fn to receive the state after every applied action.
// The returned function removes the subscription.
func (s *Store[S]) Subscribe(fn func(S)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	id := uuid.NewString()
	s.mu.Lock()
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Store[S]) reduce(_ context.Context, action duck.Action) error {
	s.mu.Lock()
	s.state = s.duck.Reduce(s.state, action)
	state := s.state
	listeners := make([]func(S), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(state)
	}
	return nil
}

type actionIDKey struct{}

// ActionIDFromContext returns the id of the action being dispatched.
func ActionIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(actionIDKey{}).(string)
	return id
}

// ActionIDExtractor adds the dispatch id to records logged with a dispatch context.
func ActionIDExtractor(ctx context.Context) (slog.Attr, bool) {
	id := ActionIDFromContext(ctx)
	if id == "" {
		return slog.Attr{}, false
	}
	return logger.ActionID(id), true
}
