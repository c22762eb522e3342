// Package redis connects to the Redis server used for form drafts.
//
// It wraps github.com/redis/go-redis/v9 and adds:
//
//   - Connect, which pings the server with retries before handing out a client.
//   - Healthcheck, a probe function for readiness endpoints.
//
// Config is populated from environment variables with package config:
//
//	var cfg redis.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//	if cfg.Enabled() {
//	    client, err := redis.Connect(ctx, cfg)
//	    if err != nil {
//	        return err
//	    }
//	    defer client.Close()
//	}
package redis
