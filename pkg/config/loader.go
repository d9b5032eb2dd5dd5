package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option adjusts how Load reads the environment.
type Option func(*options)

type options struct {
	prefix      string
	environment map[string]string
	dotenv      []string
}

// WithPrefix prepends prefix to every env tag, e.g. "DUCKS_".
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvironment reads values from env instead of the process environment.
func WithEnvironment(env map[string]string) Option {
	return func(o *options) { o.environment = env }
}

// WithDotenv loads the given files into the process environment before parsing.
// Missing files are ignored; variables already set are not overwritten.
func WithDotenv(files ...string) Option {
	return func(o *options) {
		if len(files) == 0 {
			files = []string{".env"}
		}
		o.dotenv = append(o.dotenv, files...)
	}
}

// Load fills v from environment variables according to its `env` and
// `envDefault` struct tags.
//
//	type StoreConfig struct {
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg StoreConfig
//	err := config.Load(&cfg, config.WithPrefix("DUCKS_"))
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	for _, file := range o.dotenv {
		// the file might not exist and that's ok
		_ = godotenv.Load(file)
	}

	if err := env.ParseWithOptions(v, env.Options{
		Prefix:      o.prefix,
		Environment: o.environment,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(err)
	}
}
