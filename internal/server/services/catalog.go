// Package services implements the backend catalog operations on top of the
// repositories, with transactional cascades and list caching.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/gametracker/internal/logging"
	"github.com/dmitrijs2005/gametracker/internal/server/cache"
	"github.com/dmitrijs2005/gametracker/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

const (
	keyGames       = "games"
	keyReviews     = "reviews"
	keyGameReviews = "reviews:game:"
)

// CatalogService serves games and reviews.
type CatalogService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	cache       cache.Cache
	cacheTTL    time.Duration
	logger      logging.Logger

	// generation is bumped by every invalidation; a list loaded across a
	// bump is not cached.
	generation atomic.Uint64

	now   func() time.Time
	newID func() string
}

// NewCatalogService returns a service over db. A nil cache disables caching;
// ttl bounds how long a cached list is served.
func NewCatalogService(db *sql.DB, m repomanager.RepositoryManager, c cache.Cache, ttl time.Duration, l logging.Logger) *CatalogService {
	if c == nil {
		c = cache.Nop{}
	}
	return &CatalogService{
		db:          db,
		repomanager: m,
		cache:       c,
		cacheTTL:    ttl,
		logger:      l.With("module", "catalog"),
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// timestamp returns the current time at the precision the store keeps.
func (s *CatalogService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

// invalidate drops every cached list. Game edits change the populated game
// embedded in reviews, so lists are not evicted selectively.
func (s *CatalogService) invalidate(ctx context.Context) {
	s.generation.Add(1)
	if err := s.cache.Clear(ctx); err != nil {
		s.logger.Warn(ctx, "cache clear failed", "error", err)
	}
}

// cached returns the value stored under key, or loads, stores and returns it.
// Cache failures are logged and bypassed.
func cached[T any](ctx context.Context, s *CatalogService, key string, load func() (T, error)) (T, error) {
	b, err := s.cache.Get(ctx, key)
	if err == nil {
		var v T
		if err := json.Unmarshal(b, &v); err == nil {
			return v, nil
		}
		s.logger.Warn(ctx, "dropping undecodable cache entry", "key", key)
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn(ctx, "cache read failed", "key", key, "error", err)
	}

	gen := s.generation.Load()
	v, err := load()
	if err != nil {
		return v, err
	}

	b, err = json.Marshal(v)
	if err != nil || s.generation.Load() != gen {
		return v, nil
	}
	if err := s.cache.Set(ctx, key, b, s.cacheTTL); err != nil {
		s.logger.Warn(ctx, "cache write failed", "key", key, "error", err)
		return v, nil
	}
	// an invalidation that ran between the check and Set may have cleared
	// the cache before the stale entry landed
	if s.generation.Load() != gen {
		if err := s.cache.Delete(ctx, key); err != nil {
			s.logger.Warn(ctx, "cache delete failed", "key", key, "error", err)
		}
	}
	return v, nil
}
