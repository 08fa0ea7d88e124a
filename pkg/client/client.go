// Package client is a typed API client for the dashboard endpoints.
// Each Resource mirrors one endpoint group: reads serve from a local
// list cache, mutations mark it stale and surface failures through
// the notifier. There is no retry or offline behavior here.
package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// Notifier receives a user-facing message when a request fails.
type Notifier func(message string)

// Envelope is the server's uniform response wrapper.
type Envelope[T any] struct {
	Data  T      `json:"data"`
	Error string `json:"error"`
}

// Client carries the shared HTTP client, the list cache and the
// failure notifier.
type Client struct {
	http   *resty.Client
	cache  *listCache
	notify Notifier
}

// New builds a client for baseURL authenticating with token. notify
// may be nil.
func New(baseURL, token string, notify Notifier) *Client {
	if notify == nil {
		notify = func(string) {}
	}
	return &Client{
		http:   resty.New().SetBaseURL(baseURL).SetAuthToken(token),
		cache:  newListCache(),
		notify: notify,
	}
}

// InvalidateList marks the named list cache stale.
func (c *Client) InvalidateList(key string) {
	c.cache.markStale(key)
}

// Resource is the typed accessor for one endpoint group.
type Resource[T any] struct {
	c        *Client
	path     string
	cacheKey string
}

// NewResource binds path (e.g. "/api/tenants") under cacheKey.
func NewResource[T any](c *Client, path, cacheKey string) *Resource[T] {
	return &Resource[T]{c: c, path: path, cacheKey: cacheKey}
}

func (r *Resource[T]) do(ctx context.Context, method, url string, body any, out any) error {
	req := r.c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, url)
	if err != nil {
		r.c.notify("request failed: " + err.Error())
		return err
	}

	if resp.IsError() {
		var env Envelope[json.RawMessage]
		msg := resp.Status()
		if jsonErr := json.Unmarshal(resp.Body(), &env); jsonErr == nil && env.Error != "" {
			msg = env.Error
		}
		r.c.notify(msg)
		return fmt.Errorf("%s %s: %s", method, url, msg)
	}

	return json.Unmarshal(resp.Body(), out)
}

// List returns the owned rows, serving the cached list when it is
// still fresh.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	if cached, ok := r.c.cache.get(r.cacheKey); ok {
		return cached.([]T), nil
	}

	var env Envelope[[]T]
	if err := r.do(ctx, "GET", r.path, nil, &env); err != nil {
		return nil, err
	}
	r.c.cache.set(r.cacheKey, env.Data)
	return env.Data, nil
}

func (r *Resource[T]) Get(ctx context.Context, id string) (*T, error) {
	var env Envelope[T]
	if err := r.do(ctx, "GET", r.path+"/"+id, nil, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (r *Resource[T]) Create(ctx context.Context, payload any) (*T, error) {
	var env Envelope[T]
	if err := r.do(ctx, "POST", r.path, payload, &env); err != nil {
		return nil, err
	}
	r.c.cache.markStale(r.cacheKey)
	return &env.Data, nil
}

func (r *Resource[T]) Patch(ctx context.Context, id string, payload any) (*T, error) {
	var env Envelope[T]
	if err := r.do(ctx, "PATCH", r.path+"/"+id, payload, &env); err != nil {
		return nil, err
	}
	r.c.cache.markStale(r.cacheKey)
	return &env.Data, nil
}

type idObject struct {
	ID string `json:"id"`
}

func (r *Resource[T]) Delete(ctx context.Context, id string) (string, error) {
	var env Envelope[idObject]
	if err := r.do(ctx, "DELETE", r.path+"/"+id, nil, &env); err != nil {
		return "", err
	}
	r.c.cache.markStale(r.cacheKey)
	return env.Data.ID, nil
}

// BulkDelete removes ids and returns the subset actually deleted.
func (r *Resource[T]) BulkDelete(ctx context.Context, ids []string) ([]string, error) {
	var env Envelope[[]idObject]
	body := map[string][]string{"ids": ids}
	if err := r.do(ctx, "POST", r.path+"/bulk-delete", body, &env); err != nil {
		return nil, err
	}
	r.c.cache.markStale(r.cacheKey)

	deleted := make([]string, 0, len(env.Data))
	for _, obj := range env.Data {
		deleted = append(deleted, obj.ID)
	}
	return deleted, nil
}
