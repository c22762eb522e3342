package redis

import "time"

// Config describes how to reach the Redis server holding form drafts.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL"`                                // redis://:password@localhost:6379/0; empty disables Redis
	KeyPrefix      string        `env:"REDIS_KEY_PREFIX" envDefault:"formstate:"` // prefix for every key written by this module
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`      // connection attempts before giving up
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`     // pause between attempts
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`   // overall connect deadline
}

// Enabled reports whether a connection URL is configured.
func (c Config) Enabled() bool {
	return c.ConnectionURL != ""
}
