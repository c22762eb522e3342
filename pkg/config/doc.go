// Package config loads application configuration from environment
// variables into typed structs.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - The default `.env` file in the working directory is read once, if present.
//     LoadEnv reads additional files explicitly.
//   - Load parses the environment into any struct annotated with `env` tags.
//   - Each configuration type is parsed once and cached; ResetCache drops the
//     cache, which is handy in tests.
//
// # Usage
//
//	type Config struct {
//	    Addr     string        `env:"APP_ADDR" envDefault:":8080"`
//	    Env      string        `env:"APP_ENV" envDefault:"development"`
//	    LogLevel string        `env:"LOG_LEVEL" envDefault:"info"`
//	    RedisURL string        `env:"REDIS_URL"`
//	    DraftTTL time.Duration `env:"DRAFT_TTL" envDefault:"30m"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`: failed to parse env vars into struct.
//   - `ErrLoadingEnvFile`: an explicit .env file could not be read.
//   - `ErrNilPointer`: nil pointer passed to `Load`/`MustLoad`.
package config
