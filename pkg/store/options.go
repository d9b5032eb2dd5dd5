package store

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/ducks/pkg/config"
	"github.com/dmitrymomot/ducks/pkg/logger"
)

// Option configures a store during construction.
type Option[S any] func(*Store[S]) error

// WithLogger sets the logger used for dispatch records.
func WithLogger[S any](log *slog.Logger) Option[S] {
	return func(s *Store[S]) error {
		if log != nil {
			s.log = log
		}
		return nil
	}
}

// WithMiddleware appends middleware to the dispatch chain.
func WithMiddleware[S any](mw ...Middleware) Option[S] {
	return func(s *Store[S]) error {
		for _, m := range mw {
			if m != nil {
				s.middleware = append(s.middleware, m)
			}
		}
		return nil
	}
}

// WithInitialState replaces the duck's initial state.
func WithInitialState[S any](state S) Option[S] {
	return func(s *Store[S]) error {
		s.state = state
		return nil
	}
}

// Config describes a store through environment variables prefixed with DUCKS_.
type Config struct {
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat     string `env:"LOG_FORMAT" envDefault:"json"`
	LogValidation bool   `env:"LOG_VALIDATION" envDefault:"true"`
	RejectInvalid bool   `env:"REJECT_INVALID" envDefault:"false"`
	PruneInvalid  bool   `env:"PRUNE_INVALID" envDefault:"false"`
}

// LoadConfig reads Config from the environment.
func LoadConfig(opts ...config.Option) (Config, error) {
	var cfg Config
	opts = append([]config.Option{config.WithPrefix("DUCKS_")}, opts...)
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WithConfig builds the store logger and validation middleware from cfg using
// the duck's validators. Validation middleware runs in the order log, reject, prune.
// logOpts are applied after the configured level and format.
func WithConfig[S any](cfg Config, logOpts ...logger.Option) Option[S] {
	return func(s *Store[S]) error {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		format, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}

		s.log = logger.New(append([]logger.Option{
			logger.WithLevel(level),
			logger.WithFormat(format),
			logger.WithContextExtractors(ActionIDExtractor),
			logger.WithAttr(logger.Component("store")),
		}, logOpts...)...)

		if cfg.LogValidation {
			s.middleware = append(s.middleware, LogValidation(s.duck.Validate, s.log))
		}
		if cfg.RejectInvalid {
			s.middleware = append(s.middleware, RejectInvalid(s.duck.Validate))
		}
		if cfg.PruneInvalid {
			s.middleware = append(s.middleware, PruneInvalid(s.duck.Prune))
		}
		return nil
	}
}
