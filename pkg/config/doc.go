// Package config loads configuration structs from environment variables.
//
// It is a thin layer over github.com/caarlos0/env with optional .env file
// loading through github.com/joho/godotenv. Fields are described with `env` and
// `envDefault` tags; WithPrefix namespaces them and WithEnvironment supplies an
// explicit variable map, which keeps tests independent of the process
// environment.
//
// Parsing failures are returned wrapped with ErrParsingConfig.
package config
