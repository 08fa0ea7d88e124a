package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tenantRow struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newTestServer(t *testing.T, listCalls *int) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/tenants", func(w http.ResponseWriter, r *http.Request) {
		*listCalls++
		json.NewEncoder(w).Encode(map[string]any{
			"data": []tenantRow{{ID: "t1", Name: "Alice"}},
		})
	})
	mux.HandleFunc("GET /api/tenants/t1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data": tenantRow{ID: "t1", Name: "Alice"},
		})
	})
	mux.HandleFunc("DELETE /api/tenants/t1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]string{"id": "t1"},
		})
	})
	mux.HandleFunc("POST /api/tenants/bulk-delete", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Ids []string `json:"ids"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]string{{"id": req.Ids[0]}},
		})
	})
	mux.HandleFunc("GET /api/tenants/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "not found"})
	})
	return httptest.NewServer(mux)
}

func TestListCachedUntilMutation(t *testing.T) {
	listCalls := 0
	srv := newTestServer(t, &listCalls)
	defer srv.Close()

	c := New(srv.URL, "token", nil)
	tenants := NewResource[tenantRow](c, "/api/tenants", "tenants")
	ctx := context.Background()

	rows, err := tenants.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Alice", rows[0].Name)
	assert.Equal(t, 1, listCalls)

	// second read serves the cache
	_, err = tenants.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, listCalls)

	// a mutation marks the list stale, forcing a refetch
	id, err := tenants.Delete(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "t1", id)

	_, err = tenants.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, listCalls)
}

func TestGet(t *testing.T) {
	listCalls := 0
	srv := newTestServer(t, &listCalls)
	defer srv.Close()

	c := New(srv.URL, "token", nil)
	tenants := NewResource[tenantRow](c, "/api/tenants", "tenants")

	row, err := tenants.Get(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", row.Name)
}

func TestBulkDelete(t *testing.T) {
	listCalls := 0
	srv := newTestServer(t, &listCalls)
	defer srv.Close()

	c := New(srv.URL, "token", nil)
	tenants := NewResource[tenantRow](c, "/api/tenants", "tenants")

	deleted, err := tenants.BulkDelete(context.Background(), []string{"t1", "t2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, deleted)
}

func TestFailureNotifiesWithoutRetry(t *testing.T) {
	listCalls := 0
	srv := newTestServer(t, &listCalls)
	defer srv.Close()

	var messages []string
	c := New(srv.URL, "token", func(msg string) { messages = append(messages, msg) })
	tenants := NewResource[tenantRow](c, "/api/tenants", "tenants")

	_, err := tenants.Get(context.Background(), "missing")
	require.Error(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "not found", messages[0])
}

func TestInvalidateList(t *testing.T) {
	listCalls := 0
	srv := newTestServer(t, &listCalls)
	defer srv.Close()

	c := New(srv.URL, "token", nil)
	tenants := NewResource[tenantRow](c, "/api/tenants", "tenants")
	ctx := context.Background()

	_, err := tenants.List(ctx)
	require.NoError(t, err)
	c.InvalidateList("tenants")

	_, err = tenants.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, listCalls)
}
