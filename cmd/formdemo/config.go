package main

import (
	"time"

	"github.com/dmitrymomot/formstate/pkg/httpserver"
	"github.com/dmitrymomot/formstate/pkg/redis"
)

// Config is the demo server configuration, read from the environment
// and an optional .env file.
type Config struct {
	Name     string        `env:"APP_NAME" envDefault:"formdemo"`
	Env      string        `env:"APP_ENV" envDefault:"development"`
	LogLevel string        `env:"LOG_LEVEL"` // overrides the environment's default level when set
	DraftTTL time.Duration `env:"DRAFT_TTL" envDefault:"30m"`

	HTTP  httpserver.Config
	Redis redis.Config
}
