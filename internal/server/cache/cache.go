// Package cache holds serialized list responses between writes. The backend
// can run with no cache, an in-process map, or redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrCacheMiss is returned by Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

const (
	TypeNone   = "none"
	TypeMemory = "memory"
	TypeRedis  = "redis"
)

// Cache stores serialized list responses. Get returns ErrCacheMiss for
// absent or expired keys.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	// Clear drops every entry owned by this cache.
	Clear(ctx context.Context) error
	Close() error
}

// Options selects and configures a Cache implementation.
type Options struct {
	Type          string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	KeyPrefix     string
}

// New builds the Cache named by opts.Type. An empty type means none.
func New(ctx context.Context, opts Options) (Cache, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Type)) {
	case "", TypeNone:
		return Nop{}, nil
	case TypeMemory:
		return NewMemoryCache(time.Minute), nil
	case TypeRedis:
		return NewRedisCache(ctx, RedisOptions{
			Addr:      opts.RedisAddr,
			Password:  opts.RedisPassword,
			DB:        opts.RedisDB,
			KeyPrefix: opts.KeyPrefix,
		})
	}
	return nil, fmt.Errorf("unknown cache type %q", opts.Type)
}

// Nop never stores anything.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, error)              { return nil, ErrCacheMiss }
func (Nop) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (Nop) Delete(context.Context, ...string) error                  { return nil }
func (Nop) Clear(context.Context) error                              { return nil }
func (Nop) Close() error                                             { return nil }
