package middleware

import (
	"net/http"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"nyumbani/internal/common"
)

// NewAuthMiddleware validates bearer tokens and injects the caller's
// user id (the token subject) into the request context. With jwksURL
// set, signatures are verified against the remote key set a hosted
// auth provider publishes; otherwise the local HS256 secret is used.
func NewAuthMiddleware(secret, jwksURL string) (echo.MiddlewareFunc, error) {
	cfg := echojwt.Config{
		SuccessHandler: func(c echo.Context) {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return
			}
			sub, err := token.Claims.GetSubject()
			if err != nil || sub == "" {
				return
			}
			c.SetRequest(c.Request().WithContext(common.WithUserID(c.Request().Context(), sub)))
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, common.ErrUnauthenticated.Error())
		},
	}

	if jwksURL != "" {
		jwks, err := keyfunc.Get(jwksURL, keyfunc.Options{
			RefreshInterval:   time.Hour,
			RefreshUnknownKID: true,
		})
		if err != nil {
			return nil, err
		}
		cfg.KeyFunc = jwks.Keyfunc
	} else {
		cfg.SigningKey = []byte(secret)
	}

	return echojwt.WithConfig(cfg), nil
}
