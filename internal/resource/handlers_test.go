package resource

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nyumbani/internal/common"
)

// memStore is an in-memory Store for handler tests. Ownership
// filtering mirrors the SQL: every lookup is keyed by user and id.
type memStore struct {
	rows map[string]*widget
}

func newMemStore() *memStore {
	return &memStore{rows: map[string]*widget{}}
}

func (s *memStore) List(_ context.Context, userID string) ([]*widget, error) {
	var out []*widget
	for _, w := range s.rows {
		if w.UserID == userID {
			copied := *w
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s *memStore) GetByID(_ context.Context, userID, id string) (*widget, error) {
	w, ok := s.rows[id]
	if !ok || w.UserID != userID {
		return nil, common.ErrNotFound
	}
	copied := *w
	return &copied, nil
}

func (s *memStore) Create(_ context.Context, userID, id string, p *widgetPayload) (*widget, error) {
	w := &widget{ID: id, UserID: userID, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	if p.Name != nil {
		w.Name = *p.Name
	}
	if p.Qty != nil {
		w.Qty = *p.Qty
	}
	s.rows[id] = w
	copied := *w
	return &copied, nil
}

func (s *memStore) Patch(_ context.Context, userID, id string, p *widgetPayload) (*widget, error) {
	w, ok := s.rows[id]
	if !ok || w.UserID != userID {
		return nil, common.ErrNotFound
	}
	if p.Name != nil {
		w.Name = *p.Name
	}
	if p.Qty != nil {
		w.Qty = *p.Qty
	}
	w.UpdatedAt = time.Now()
	copied := *w
	return &copied, nil
}

func (s *memStore) Delete(_ context.Context, userID, id string) (string, error) {
	w, ok := s.rows[id]
	if !ok || w.UserID != userID {
		return "", common.ErrNotFound
	}
	delete(s.rows, id)
	return id, nil
}

func (s *memStore) BulkDelete(_ context.Context, userID string, ids []string) ([]string, error) {
	deleted := []string{}
	for _, id := range ids {
		if w, ok := s.rows[id]; ok && w.UserID == userID {
			delete(s.rows, id)
			deleted = append(deleted, id)
		}
	}
	return deleted, nil
}

type handlerFixture struct {
	e        *echo.Echo
	store    *memStore
	handlers *Handlers[widget, widgetPayload]
}

func newHandlerFixture() *handlerFixture {
	store := newMemStore()
	svc := NewService[widget, widgetPayload](store, widgetDef)
	return &handlerFixture{
		e:        echo.New(),
		store:    store,
		handlers: NewHandlers[widget, widgetPayload](svc),
	}
}

// call invokes handler with an optional authenticated user and an
// optional :id path param.
func (f *handlerFixture) call(t *testing.T, handler echo.HandlerFunc, userID, id, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(http.MethodPost, "/", reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if userID != "" {
		req = req.WithContext(common.WithUserID(req.Context(), userID))
	}

	rec := httptest.NewRecorder()
	c := f.e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)

	require.NoError(t, handler(c))
	return rec
}

func TestHandlers_UnauthenticatedEveryOperation(t *testing.T) {
	f := newHandlerFixture()

	cases := []struct {
		name    string
		handler echo.HandlerFunc
		id      string
		body    string
	}{
		{"list", f.handlers.List, "", ""},
		{"get", f.handlers.Get, "some-id", ""},
		{"create", f.handlers.Create, "", `{"name":"x","qty":1}`},
		{"patch", f.handlers.Patch, "some-id", `{"name":"x"}`},
		{"delete", f.handlers.Delete, "some-id", ""},
		{"bulk-delete", f.handlers.BulkDelete, "", `{"ids":["a"]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := f.call(t, tc.handler, "", tc.id, tc.body)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestHandlers_MissingIDBeforeStore(t *testing.T) {
	f := newHandlerFixture()

	for name, handler := range map[string]echo.HandlerFunc{
		"get":    f.handlers.Get,
		"patch":  f.handlers.Patch,
		"delete": f.handlers.Delete,
	} {
		t.Run(name, func(t *testing.T) {
			rec := f.call(t, handler, "user-a", "", `{}`)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandlers_ListEmpty(t *testing.T) {
	f := newHandlerFixture()

	rec := f.call(t, f.handlers.List, "user-a", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
}

func TestHandlers_CreateValidationFailure(t *testing.T) {
	f := newHandlerFixture()

	rec := f.call(t, f.handlers.Create, "user-a", "", `{"qty":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp common.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "validation failed", resp.Error)
	assert.Contains(t, resp.Fields, "name")
	assert.Empty(t, f.store.rows)
}

func TestHandlers_CreateMintsServerID(t *testing.T) {
	f := newHandlerFixture()

	rec := f.call(t, f.handlers.Create, "user-a", "", `{"name":"first","qty":2}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data widget `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	_, err := uuid.Parse(resp.Data.ID)
	assert.NoError(t, err)
	assert.Equal(t, "user-a", f.store.rows[resp.Data.ID].UserID)
}

func TestHandlers_OwnershipScenario(t *testing.T) {
	f := newHandlerFixture()

	// user A creates a row
	rec := f.call(t, f.handlers.Create, "user-a", "", `{"name":"alice","qty":500}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var created struct {
		Data widget `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	id := created.Data.ID

	// A reads it back
	rec = f.call(t, f.handlers.Get, "user-a", id, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var fetched struct {
		Data widget `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, "alice", fetched.Data.Name)
	assert.Equal(t, 500, fetched.Data.Qty)

	// B cannot see or delete it
	rec = f.call(t, f.handlers.Get, "user-b", id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = f.call(t, f.handlers.Delete, "user-b", id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// A deletes it
	rec = f.call(t, f.handlers.Delete, "user-a", id, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"id":"`+id+`"}}`, rec.Body.String())

	// now gone
	rec = f.call(t, f.handlers.Get, "user-a", id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlers_PatchChangesOnlyProvidedFields(t *testing.T) {
	f := newHandlerFixture()

	rec := f.call(t, f.handlers.Create, "user-a", "", `{"name":"before","qty":7}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var created struct {
		Data widget `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = f.call(t, f.handlers.Patch, "user-a", created.Data.ID, `{"name":"after"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var patched struct {
		Data widget `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &patched))
	assert.Equal(t, "after", patched.Data.Name)
	assert.Equal(t, 7, patched.Data.Qty)
}

func TestHandlers_PatchRejectsValuesCreateWouldReject(t *testing.T) {
	f := newHandlerFixture()

	rec := f.call(t, f.handlers.Create, "user-a", "", `{"name":"before","qty":7}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var created struct {
		Data widget `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	id := created.Data.ID

	// the same values a create turns away
	rec = f.call(t, f.handlers.Create, "user-a", "", `{"name":"","qty":-5}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.call(t, f.handlers.Patch, "user-a", id, `{"name":"","qty":-5}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp common.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "validation failed", resp.Error)
	assert.Contains(t, resp.Fields, "name")
	assert.Contains(t, resp.Fields, "qty")

	// the row is untouched
	assert.Equal(t, "before", f.store.rows[id].Name)
	assert.Equal(t, 7, f.store.rows[id].Qty)
}

func TestHandlers_BulkDeleteSkipsUnowned(t *testing.T) {
	f := newHandlerFixture()

	f.store.rows["mine-1"] = &widget{ID: "mine-1", UserID: "user-a"}
	f.store.rows["mine-2"] = &widget{ID: "mine-2", UserID: "user-a"}
	f.store.rows["theirs"] = &widget{ID: "theirs", UserID: "user-b"}

	rec := f.call(t, f.handlers.BulkDelete, "user-a", "",
		`{"ids":["mine-1","theirs","missing","mine-2"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []IDResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []IDResponse{{ID: "mine-1"}, {ID: "mine-2"}}, resp.Data)

	// the other user's row survived
	assert.Contains(t, f.store.rows, "theirs")
	assert.NotContains(t, f.store.rows, "mine-1")
}

func TestHandlers_BulkDeleteRequiresIds(t *testing.T) {
	f := newHandlerFixture()

	rec := f.call(t, f.handlers.BulkDelete, "user-a", "", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp common.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "ids")
}
