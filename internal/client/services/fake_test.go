package services

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/dmitrijs2005/gametracker/internal/client/client"
	"github.com/dmitrijs2005/gametracker/internal/models"
)

// fakeGateway is an in-memory client.Client that records mutating calls.
type fakeGateway struct {
	mu      sync.Mutex
	games   []models.Game
	reviews []models.Review
	nextID  int
	calls   []string
	// failOps makes the named operations fail with a 500 NetworkError.
	failOps map[string]bool
}

var _ client.Client = (*fakeGateway)(nil)

func newFakeGateway() *fakeGateway {
	return &fakeGateway{failOps: map[string]bool{}}
}

func (f *fakeGateway) fail(op string) error {
	if f.failOps[op] {
		return &client.NetworkError{Op: op, Method: http.MethodPost, URL: "http://test/" + op, StatusCode: 500, Message: "server exploded"}
	}
	return nil
}

func (f *fakeGateway) record(op string) {
	f.calls = append(f.calls, op)
}

func (f *fakeGateway) ListGames(ctx context.Context) ([]models.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("list games"); err != nil {
		return nil, err
	}
	return append([]models.Game(nil), f.games...), nil
}

func (f *fakeGateway) GetGame(ctx context.Context, id string) (models.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, g := range f.games {
		if g.ID == id {
			return g, nil
		}
	}
	return models.Game{}, &client.NetworkError{Op: "get game", StatusCode: 404}
}

func (f *fakeGateway) CreateGame(ctx context.Context, in models.GameInput) (models.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("create game")
	if err := f.fail("create game"); err != nil {
		return models.Game{}, err
	}
	f.nextID++
	g := in.Build(fmt.Sprintf("g%d", f.nextID))
	f.games = append(f.games, g)
	return g, nil
}

func (f *fakeGateway) UpdateGame(ctx context.Context, id string, in models.GameInput) (models.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("update game")
	if err := f.fail("update game"); err != nil {
		return models.Game{}, err
	}
	for i := range f.games {
		if f.games[i].ID == id {
			f.games[i] = in.Build(id)
			return f.games[i], nil
		}
	}
	return models.Game{}, &client.NetworkError{Op: "update game", StatusCode: 404}
}

func (f *fakeGateway) DeleteGame(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("delete game")
	if err := f.fail("delete game"); err != nil {
		return err
	}
	out := f.games[:0]
	for _, g := range f.games {
		if g.ID != id {
			out = append(out, g)
		}
	}
	f.games = out
	kept := f.reviews[:0]
	for _, r := range f.reviews {
		if r.GameID() != id {
			kept = append(kept, r)
		}
	}
	f.reviews = kept
	return nil
}

func (f *fakeGateway) ListReviews(ctx context.Context) ([]models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Review(nil), f.reviews...), nil
}

func (f *fakeGateway) ListReviewsByGame(ctx context.Context, gameID string) ([]models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Review
	for _, r := range f.reviews {
		if r.GameID() == gameID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeGateway) CreateReview(ctx context.Context, in models.ReviewInput) (models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("create review")
	if err := f.fail("create review"); err != nil {
		return models.Review{}, err
	}
	f.nextID++
	r := in.Build(fmt.Sprintf("r%d", f.nextID), nil, models.Now())
	f.reviews = append(f.reviews, r)
	return r, nil
}

func (f *fakeGateway) UpdateReview(ctx context.Context, id string, in models.ReviewInput) (models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("update review")
	if err := f.fail("update review"); err != nil {
		return models.Review{}, err
	}
	for i := range f.reviews {
		if f.reviews[i].ID == id {
			f.reviews[i] = in.Build(id, nil, f.reviews[i].CreatedAt)
			return f.reviews[i], nil
		}
	}
	return models.Review{}, &client.NetworkError{Op: "update review", StatusCode: 404}
}

func (f *fakeGateway) DeleteReview(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("delete review")
	if err := f.fail("delete review"); err != nil {
		return err
	}
	out := f.reviews[:0]
	for _, r := range f.reviews {
		if r.ID != id {
			out = append(out, r)
		}
	}
	f.reviews = out
	return nil
}

type noticeRecorder struct {
	mu      sync.Mutex
	notices []Notice
}

func (r *noticeRecorder) Notify(_ context.Context, n Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

func (r *noticeRecorder) last() Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notices) == 0 {
		return Notice{}
	}
	return r.notices[len(r.notices)-1]
}
