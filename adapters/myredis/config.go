package myredis

import (
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// NewRedisUniversalClient parses a redis:// URL into a universal client. Options are applied to the parsed
// single-node options before conversion. The client is lazy: no connection is made here.
func NewRedisUniversalClient(redisAddr string, options ...ConfigOption) (redis.UniversalClient, error) {
	opts, err := redis.ParseURL(redisAddr)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	for _, opt := range options {
		opt(opts)
	}
	return redis.NewUniversalClient(toUniversal(opts)), nil
}

// ConfigOption adjusts the parsed client options.
type ConfigOption func(*redis.Options)

// WithTimeout sets dial, read and write timeouts to d. Non-positive d keeps the library defaults.
func WithTimeout(d time.Duration) ConfigOption {
	return func(o *redis.Options) {
		if d <= 0 {
			return
		}
		o.DialTimeout = d
		o.ReadTimeout = d
		o.WriteTimeout = d
	}
}

func toUniversal(o *redis.Options) *redis.UniversalOptions {
	return &redis.UniversalOptions{
		Addrs:        []string{o.Addr},
		DB:           o.DB,
		Username:     o.Username,
		Password:     o.Password,
		DialTimeout:  o.DialTimeout,
		ReadTimeout:  o.ReadTimeout,
		WriteTimeout: o.WriteTimeout,
		MaxRetries:   o.MaxRetries,
		PoolSize:     o.PoolSize,
		PoolTimeout:  o.PoolTimeout,
		MinIdleConns: o.MinIdleConns,
		IdleTimeout:  o.IdleTimeout,
		TLSConfig:    o.TLSConfig,
	}
}
