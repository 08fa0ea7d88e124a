package common

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// DataResponse is the uniform success envelope.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// ErrorResponse is the uniform failure envelope. Fields is only set
// for schema validation failures.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// SendData wraps payload in the {data: ...} envelope.
func SendData(c echo.Context, status int, payload interface{}) error {
	return c.JSON(status, DataResponse{Data: payload})
}

// SendError maps a resource error to its status code and envelope.
func SendError(c echo.Context, err error) error {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: ve.Error(), Fields: ve.Fields})
	case errors.Is(err, ErrUnauthenticated):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: ErrUnauthenticated.Error()})
	case errors.Is(err, ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: ErrInvalidInput.Error()})
	case errors.Is(err, ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: ErrNotFound.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
