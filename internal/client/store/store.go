package store

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/dmitrijs2005/gametracker/internal/logging"
	"github.com/dmitrijs2005/gametracker/internal/models"
)

// ErrStaleResult is returned by a refresh whose result was discarded because a
// newer refresh of the same list started or its context ended.
var ErrStaleResult = errors.New("stale result discarded")

// ErrEmptyScope is returned for a review scope that names no game.
var ErrEmptyScope = errors.New("review scope has no game")

// Fetcher is the read side of the remote gateway.
type Fetcher interface {
	ListGames(ctx context.Context) ([]models.Game, error)
	GetGame(ctx context.Context, id string) (models.Game, error)
	ListReviews(ctx context.Context) ([]models.Review, error)
	ListReviewsByGame(ctx context.Context, gameID string) ([]models.Review, error)
}

// LoadState describes a cached list.
type LoadState int

const (
	// Loading: no successful fetch yet, one may be in flight.
	Loading LoadState = iota
	Ready
	// Failed: the initial fetch failed and nothing is cached.
	Failed
)

func (s LoadState) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Scope selects which reviews a list holds. The zero Scope selects nothing
// and is rejected by RefreshReviews.
type Scope struct {
	all    bool
	gameID string
}

// AllReviews is the scope of every review in the catalog.
var AllReviews = Scope{all: true}

// ReviewsOf is the scope of the reviews of one game. An empty id does not
// widen it to AllReviews.
func ReviewsOf(gameID string) Scope { return Scope{gameID: gameID} }

// GameID returns the game of a per-game scope, or "".
func (s Scope) GameID() string { return s.gameID }

// IsAll reports whether s is AllReviews.
func (s Scope) IsAll() bool { return s.all }

func (s Scope) valid() bool { return s.all || s.gameID != "" }

func (s Scope) String() string {
	if s.IsAll() {
		return "all"
	}
	if !s.valid() {
		return "none"
	}
	return "game:" + s.gameID
}

type slot[T any] struct {
	value  T
	state  LoadState
	err    error
	ticket uint64
}

// Store is the collection cache. It is safe for concurrent use.
type Store struct {
	fetch Fetcher
	log   logging.Logger

	mu      sync.RWMutex
	seq     uint64
	games   *slot[[]models.Game]
	reviews map[Scope]*slot[[]models.Review]
	details map[string]*slot[models.Game]
}

// New returns an empty Store reading from f. Every list starts Loading.
func New(f Fetcher, log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	return &Store{
		fetch:   f,
		log:     log.With("component", "store"),
		games:   &slot[[]models.Game]{},
		reviews: make(map[Scope]*slot[[]models.Review]),
		details: make(map[string]*slot[models.Game]),
	}
}

// RefreshGames re-fetches the game list.
func (s *Store) RefreshGames(ctx context.Context) error {
	_, err := refresh(ctx, s, "games", func() *slot[[]models.Game] { return s.games }, s.fetch.ListGames)
	return err
}

// RefreshReviews re-fetches the reviews of scope. A per-game scope with an
// empty id fails with ErrEmptyScope before anything is fetched.
func (s *Store) RefreshReviews(ctx context.Context, scope Scope) error {
	if !scope.valid() {
		return ErrEmptyScope
	}
	get := func() *slot[[]models.Review] {
		sl, ok := s.reviews[scope]
		if !ok {
			sl = &slot[[]models.Review]{}
			s.reviews[scope] = sl
		}
		return sl
	}
	fetch := s.fetch.ListReviews
	if !scope.IsAll() {
		fetch = func(ctx context.Context) ([]models.Review, error) {
			return s.fetch.ListReviewsByGame(ctx, scope.gameID)
		}
	}
	_, err := refresh(ctx, s, "reviews:"+scope.String(), get, fetch)
	return err
}

// RefreshGame re-fetches a single game for the detail view.
func (s *Store) RefreshGame(ctx context.Context, id string) error {
	get := func() *slot[models.Game] {
		sl, ok := s.details[id]
		if !ok {
			sl = &slot[models.Game]{}
			s.details[id] = sl
		}
		return sl
	}
	fetch := func(ctx context.Context) (models.Game, error) { return s.fetch.GetGame(ctx, id) }
	_, err := refresh(ctx, s, "game:"+id, get, fetch)
	return err
}

func refresh[T any](ctx context.Context, s *Store, key string, get func() *slot[T], fetch func(context.Context) (T, error)) (T, error) {
	var zero T

	s.mu.Lock()
	s.seq++
	ticket := s.seq
	sl := get()
	sl.ticket = ticket
	if sl.state == Failed {
		sl.state = Loading
	}
	s.mu.Unlock()

	v, err := fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if sl.ticket != ticket || ctx.Err() != nil {
		s.log.Debug(ctx, "discarding stale result", "key", key, "ticket", ticket)
		return zero, ErrStaleResult
	}
	if err != nil {
		sl.err = err
		if sl.state != Ready {
			sl.state = Failed
		}
		s.log.Warn(ctx, "refresh failed", "key", key, "err", err)
		return zero, err
	}

	sl.value = v
	sl.state = Ready
	sl.err = nil
	return v, nil
}

// Games returns a copy of the cached game list.
func (s *Store) Games() []models.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.games.value)
}

// GamesState returns the load state of the game list and the last refresh error.
func (s *Store) GamesState() (LoadState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.games.state, s.games.err
}

// Reviews returns a copy of the cached reviews of scope.
func (s *Store) Reviews(scope Scope) []models.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sl, ok := s.reviews[scope]
	if !ok {
		return nil
	}
	return slices.Clone(sl.value)
}

// ReviewsState returns the load state of scope and the error of its last
// failed refresh, if any.
func (s *Store) ReviewsState(scope Scope) (LoadState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sl, ok := s.reviews[scope]
	if !ok {
		return Loading, nil
	}
	return sl.state, sl.err
}

// HasReviews reports whether scope has been fetched successfully at least once.
func (s *Store) HasReviews(scope Scope) bool {
	st, _ := s.ReviewsState(scope)
	return st == Ready
}

// Game returns the cached detail record of id.
func (s *Store) Game(id string) (models.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sl, ok := s.details[id]
	if !ok || sl.state != Ready {
		return models.Game{}, false
	}
	return sl.value, true
}

// GameState is ReviewsState for the detail slot of game id.
func (s *Store) GameState(id string) (LoadState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sl, ok := s.details[id]
	if !ok {
		return Loading, nil
	}
	return sl.state, sl.err
}

// Forget drops the detail record and per-game reviews of id. In-flight
// refreshes for them become stale.
func (s *Store) Forget(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sl, ok := s.details[id]; ok {
		sl.ticket = 0
		delete(s.details, id)
	}
	if sl, ok := s.reviews[ReviewsOf(id)]; ok {
		sl.ticket = 0
		delete(s.reviews, ReviewsOf(id))
	}
}
