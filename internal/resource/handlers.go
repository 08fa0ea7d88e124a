package resource

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"nyumbani/internal/common"
)

// IDResponse is the envelope payload for delete operations.
type IDResponse struct {
	ID string `json:"id"`
}

// BulkDeleteRequest carries the ids to remove.
type BulkDeleteRequest struct {
	Ids []string `json:"ids"`
}

// Handlers exposes one entity's CRUD group over HTTP. Structural
// validation of params and bodies runs first, identity is checked
// before any store access, and every result goes out in the
// {data}/{error} envelope.
type Handlers[T any, P any] struct {
	svc API[T, P]
}

func NewHandlers[T any, P any](svc API[T, P]) *Handlers[T, P] {
	return &Handlers[T, P]{svc: svc}
}

// Register mounts the group's routes on g.
func (h *Handlers[T, P]) Register(g *echo.Group) {
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.POST("/bulk-delete", h.BulkDelete)
	g.PATCH("/:id", h.Patch)
	g.DELETE("/:id", h.Delete)
}

func (h *Handlers[T, P]) List(c echo.Context) error {
	userID, ok := common.GetUserIDFromContext(c.Request().Context())
	if !ok {
		return common.SendError(c, common.ErrUnauthenticated)
	}

	items, err := h.svc.List(c.Request().Context(), userID)
	if err != nil {
		return common.SendError(c, err)
	}
	if items == nil {
		items = []*T{}
	}
	return common.SendData(c, http.StatusOK, items)
}

func (h *Handlers[T, P]) Get(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return common.SendError(c, common.ErrInvalidInput)
	}

	userID, ok := common.GetUserIDFromContext(c.Request().Context())
	if !ok {
		return common.SendError(c, common.ErrUnauthenticated)
	}

	item, err := h.svc.GetByID(c.Request().Context(), userID, id)
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendData(c, http.StatusOK, item)
}

func (h *Handlers[T, P]) Create(c echo.Context) error {
	var payload P
	if err := c.Bind(&payload); err != nil {
		return common.SendError(c, common.NewValidationError("body", "invalid request body"))
	}

	userID, ok := common.GetUserIDFromContext(c.Request().Context())
	if !ok {
		return common.SendError(c, common.ErrUnauthenticated)
	}

	item, err := h.svc.Create(c.Request().Context(), userID, &payload)
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendData(c, http.StatusOK, item)
}

func (h *Handlers[T, P]) BulkDelete(c echo.Context) error {
	var req BulkDeleteRequest
	if err := c.Bind(&req); err != nil {
		return common.SendError(c, common.NewValidationError("body", "invalid request body"))
	}
	if req.Ids == nil {
		return common.SendError(c, common.NewValidationError("ids", "ids is required"))
	}

	userID, ok := common.GetUserIDFromContext(c.Request().Context())
	if !ok {
		return common.SendError(c, common.ErrUnauthenticated)
	}

	deleted, err := h.svc.BulkDelete(c.Request().Context(), userID, req.Ids)
	if err != nil {
		return common.SendError(c, err)
	}

	out := make([]IDResponse, 0, len(deleted))
	for _, id := range deleted {
		out = append(out, IDResponse{ID: id})
	}
	return common.SendData(c, http.StatusOK, out)
}

func (h *Handlers[T, P]) Patch(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return common.SendError(c, common.ErrInvalidInput)
	}

	var payload P
	if err := c.Bind(&payload); err != nil {
		return common.SendError(c, common.NewValidationError("body", "invalid request body"))
	}

	userID, ok := common.GetUserIDFromContext(c.Request().Context())
	if !ok {
		return common.SendError(c, common.ErrUnauthenticated)
	}

	item, err := h.svc.Patch(c.Request().Context(), userID, id, &payload)
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendData(c, http.StatusOK, item)
}

func (h *Handlers[T, P]) Delete(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return common.SendError(c, common.ErrInvalidInput)
	}

	userID, ok := common.GetUserIDFromContext(c.Request().Context())
	if !ok {
		return common.SendError(c, common.ErrUnauthenticated)
	}

	deletedID, err := h.svc.Delete(c.Request().Context(), userID, id)
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendData(c, http.StatusOK, IDResponse{ID: deletedID})
}
