package redis

import "errors"

var (
	ErrNoURL             = errors.New("redis connection URL is not set")
	ErrInvalidURL        = errors.New("invalid redis connection URL")
	ErrNotReady          = errors.New("redis is not reachable")
	ErrHealthcheckFailed = errors.New("redis healthcheck failed")
)
