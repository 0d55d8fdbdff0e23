package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/gametracker/internal/common"
	"github.com/dmitrijs2005/gametracker/internal/logging"
	"github.com/dmitrijs2005/gametracker/internal/models"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// HTTPClient talks to the catalog backend over HTTP/JSON.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) { h.http = c }
}

// NewHTTPClient returns a gateway rooted at baseURL. A trailing slash on
// baseURL is ignored.
func NewHTTPClient(baseURL string, log logging.Logger, opts ...Option) *HTTPClient {
	if log == nil {
		log = logging.Nop()
	}
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     log.With("component", "gateway"),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// ListGames fetches GET /game.
func (c *HTTPClient) ListGames(ctx context.Context) ([]models.Game, error) {
	var out []models.Game
	if err := c.do(ctx, "list games", http.MethodGet, "/game", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetGame fetches GET /game/{id}.
func (c *HTTPClient) GetGame(ctx context.Context, id string) (models.Game, error) {
	var out models.Game
	err := c.do(ctx, "get game", http.MethodGet, "/game/"+url.PathEscape(id), nil, &out)
	return out, err
}

// CreateGame posts in to /game and returns the stored game.
func (c *HTTPClient) CreateGame(ctx context.Context, in models.GameInput) (models.Game, error) {
	var out models.Game
	err := c.do(ctx, "create game", http.MethodPost, "/game", in, &out)
	return out, err
}

// UpdateGame replaces game id with in.
func (c *HTTPClient) UpdateGame(ctx context.Context, id string, in models.GameInput) (models.Game, error) {
	var out models.Game
	err := c.do(ctx, "update game", http.MethodPut, "/game/"+url.PathEscape(id), in, &out)
	return out, err
}

// DeleteGame deletes game id; the backend removes its reviews too.
func (c *HTTPClient) DeleteGame(ctx context.Context, id string) error {
	return c.do(ctx, "delete game", http.MethodDelete, "/game/"+url.PathEscape(id), nil, nil)
}

// ListReviews fetches every review, each with its game populated when the
// backend does so.
func (c *HTTPClient) ListReviews(ctx context.Context) ([]models.Review, error) {
	var out []models.Review
	if err := c.do(ctx, "list reviews", http.MethodGet, "/review", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListReviewsByGame fetches GET /review/juego/{gameID}.
func (c *HTTPClient) ListReviewsByGame(ctx context.Context, gameID string) ([]models.Review, error) {
	var out []models.Review
	if err := c.do(ctx, "list game reviews", http.MethodGet, "/review/juego/"+url.PathEscape(gameID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateReview posts in to /review and returns the stored review.
func (c *HTTPClient) CreateReview(ctx context.Context, in models.ReviewInput) (models.Review, error) {
	var out models.Review
	err := c.do(ctx, "create review", http.MethodPost, "/review", in, &out)
	return out, err
}

// UpdateReview replaces review id with in.
func (c *HTTPClient) UpdateReview(ctx context.Context, id string, in models.ReviewInput) (models.Review, error) {
	var out models.Review
	err := c.do(ctx, "update review", http.MethodPut, "/review/"+url.PathEscape(id), in, &out)
	return out, err
}

// DeleteReview deletes review id.
func (c *HTTPClient) DeleteReview(ctx context.Context, id string) error {
	return c.do(ctx, "delete review", http.MethodDelete, "/review/"+url.PathEscape(id), nil, nil)
}

// do performs one request. The "data" member of the response envelope, or the
// whole body when there is no envelope, is decoded into out when out is not nil.
func (c *HTTPClient) do(ctx context.Context, op, method, path string, body, out any) error {
	target := c.baseURL + path
	fail := func(status int, msg string, err error) error {
		return &NetworkError{Op: op, Method: method, URL: target, StatusCode: status, Message: msg, Err: err}
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fail(0, "", fmt.Errorf("%w: %w", errEncode, err))
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fail(0, "", err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeader, reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug(ctx, "request failed", "op", op, "method", method, "url", target, "request_id", reqID, "err", err)
		return fail(0, "", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	c.log.Debug(ctx, "request", "op", op, "method", method, "url", target, "request_id", reqID,
		"status", resp.StatusCode, "duration", time.Since(start))
	if err != nil {
		return fail(resp.StatusCode, "", fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fail(resp.StatusCode, errorMessage(raw), nil)
	}

	if out == nil {
		return nil
	}

	payload := raw
	if gjson.ValidBytes(raw) {
		if data := gjson.GetBytes(raw, "data"); data.Exists() {
			payload = []byte(data.Raw)
		}
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fail(resp.StatusCode, "", fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// errorMessage extracts a human readable message from an error body.
func errorMessage(raw []byte) string {
	if gjson.ValidBytes(raw) {
		for _, path := range []string{"error.message", "message", "error"} {
			if r := gjson.GetBytes(raw, path); r.Exists() && r.Type == gjson.String && r.String() != "" {
				return r.String()
			}
		}
	}
	return truncate(strings.TrimSpace(string(raw)), maxMessageLen)
}

const maxMessageLen = 200

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
